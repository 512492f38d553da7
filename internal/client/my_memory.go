package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/arsenstet/quizzy-cards-bot/internal/models"
)

type MyMemoryAPI struct {
	client *http.Client
}

func NewMyMemoryAPI(client *http.Client) *MyMemoryAPI {
	return &MyMemoryAPI{client: client}
}

func (m *MyMemoryAPI) TranslatePair(ctx context.Context, text, sourceLang, targetLang string) (models.TranslationResult, error) {
	reqURL := fmt.Sprintf(
		"https://api.mymemory.translated.net/get?q=%s&langpair=%s|%s",
		url.QueryEscape(text), sourceLang, targetLang,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return models.TranslationResult{}, err
	}
	resp, err := m.client.Do(req)
	if err != nil {
		return models.TranslationResult{}, err
	}
	defer resp.Body.Close()

	var data models.MyMemoryResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return models.TranslationResult{}, err
	}

	if data.ResponseBody.ResponseStatus != 200 {
		return models.TranslationResult{}, fmt.Errorf("mymemory: %s", data.ResponseBody.ResponseDetails)
	}

	var alternatives []string
	for _, match := range data.Matches {
		if match.Translation != data.ResponseBody.TranslatedText {
			alternatives = append(alternatives, match.Translation)
		}
	}

	return models.TranslationResult{
		Text:         data.ResponseBody.TranslatedText,
		Match:        data.ResponseBody.Match,
		Source:       sourceLang,
		Target:       targetLang,
		Alternatives: alternatives,
	}, nil
}
