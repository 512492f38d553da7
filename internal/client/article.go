package client

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

type ArticleAPI struct {
	client *http.Client
}

func NewArticleAPI(client *http.Client) *ArticleAPI {
	return &ArticleAPI{client: client}
}

// ExtractText fetches the page and joins the text of its paragraph nodes.
// Markup, scripts and navigation are left behind; whatever the page keeps
// in <p> tags is what the quiz is built from.
func (a *ArticleAPI) ExtractText(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", err
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to fetch %s: status %d", pageURL, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s: %w", pageURL, err)
	}

	var parts []string
	doc.Find("p").Each(func(_ int, sel *goquery.Selection) {
		if text := strings.TrimSpace(sel.Text()); text != "" {
			parts = append(parts, text)
		}
	})

	if len(parts) == 0 {
		return "", fmt.Errorf("no paragraph text found at %s", pageURL)
	}

	return strings.Join(parts, " "), nil
}
