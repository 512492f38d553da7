package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const googleTranslateURL = "https://translate.googleapis.com/translate_a/single"

type GoogleTranslateAPI struct {
	client *http.Client
}

func NewGoogleTranslateAPI(client *http.Client) *GoogleTranslateAPI {
	return &GoogleTranslateAPI{client: client}
}

// Translate asks the gtx endpoint for a translation of text into targetLang,
// detecting the source language. The result is lowercased so it can be
// compared against a case-folded user answer directly.
func (g *GoogleTranslateAPI) Translate(ctx context.Context, text, targetLang string) (string, error) {
	params := url.Values{}
	params.Set("client", "gtx")
	params.Set("sl", "auto")
	params.Set("tl", targetLang)
	params.Set("dt", "t")
	params.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, googleTranslateURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", err
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("translate request failed with status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	translated, err := parseGtxResponse(body)
	if err != nil {
		return "", fmt.Errorf("failed to parse translation of %q: %w", text, err)
	}

	return strings.ToLower(strings.TrimSpace(translated)), nil
}

// parseGtxResponse digs the translated text out of the gtx nested-array
// payload: [[["<translation>","<source>",...],...],...].
func parseGtxResponse(body []byte) (string, error) {
	var outer []json.RawMessage
	if err := json.Unmarshal(body, &outer); err != nil {
		return "", err
	}
	if len(outer) == 0 {
		return "", fmt.Errorf("empty response")
	}

	var sentences [][]interface{}
	if err := json.Unmarshal(outer[0], &sentences); err != nil {
		return "", err
	}
	if len(sentences) == 0 || len(sentences[0]) == 0 {
		return "", fmt.Errorf("no translation in response")
	}

	translated, ok := sentences[0][0].(string)
	if !ok || translated == "" {
		return "", fmt.Errorf("unexpected translation payload")
	}

	return translated, nil
}
