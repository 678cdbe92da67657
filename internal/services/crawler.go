package services

import (
	"context"
	"fmt"
	"html"
	"net/http"
	"strings"
	"time"

	readability "github.com/go-shiori/go-readability"
	"github.com/microcosm-cc/bluemonday"
)

// CrawlerService fetches a web page and extracts its article text.
type CrawlerService struct {
	client *http.Client
	strict *bluemonday.Policy
}

func NewCrawlerService() *CrawlerService {
	return &CrawlerService{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		strict: bluemonday.StrictPolicy(),
	}
}

// FetchArticleText downloads url, runs readability over it and returns plain text.
func (s *CrawlerService) FetchArticleText(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; yanews-importer/1.0)")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "ru-RU,ru;q=0.9,en;q=0.8")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch %s: status %d", url, resp.StatusCode)
	}

	article, err := readability.FromReader(resp.Body, nil)
	if err != nil {
		return "", fmt.Errorf("extract article: %w", err)
	}

	return s.PlainText(article.Content), nil
}

// FetchWithFallback is FetchArticleText that returns "" instead of an error.
func (s *CrawlerService) FetchWithFallback(ctx context.Context, url string) string {
	text, err := s.FetchArticleText(ctx, url)
	if err != nil {
		return ""
	}
	return text
}

// PlainText strips every tag from s and collapses blank lines.
func (s *CrawlerService) PlainText(src string) string {
	text := html.UnescapeString(s.strict.Sanitize(src))
	lines := strings.Split(text, "\n")
	out := lines[:0]
	for _, l := range lines {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return strings.Join(out, "\n\n")
}
