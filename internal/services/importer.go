package services

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"
	"yanews/internal/models"

	"github.com/mmcdole/gofeed"
	"gorm.io/gorm"
)

// Importer is the content process that publishes news: demo seeding and RSS/Atom import.
type Importer struct {
	db      *gorm.DB
	parser  *gofeed.Parser
	crawler *CrawlerService

	// FullText makes Import fetch each item's page instead of using the feed summary.
	FullText bool
}

func NewImporter(db *gorm.DB) *Importer {
	parser := gofeed.NewParser()
	parser.Client = &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        10,
			IdleConnTimeout:     30 * time.Second,
			MaxIdleConnsPerHost: 2,
		},
	}

	return &Importer{
		db:      db,
		parser:  parser,
		crawler: NewCrawlerService(),
	}
}

// Import parses the feed and stores up to limit new items as news (limit <= 0 means all).
// Items whose title is already published are skipped.
func (im *Importer) Import(ctx context.Context, feedURL string, limit int) (int, error) {
	feed, err := im.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return 0, fmt.Errorf("parse feed %s: %w", feedURL, err)
	}

	created := 0
	for _, item := range feed.Items {
		if limit > 0 && created >= limit {
			break
		}

		news, ok := im.itemToNews(ctx, item)
		if !ok {
			continue
		}

		var exists int64
		if err := im.db.WithContext(ctx).Model(&models.News{}).Where("title = ?", news.Title).Count(&exists).Error; err != nil {
			return created, fmt.Errorf("check news %q: %w", news.Title, err)
		}
		if exists > 0 {
			continue
		}

		if err := im.db.WithContext(ctx).Create(&news).Error; err != nil {
			log.Printf("Failed to store feed item %q: %v", news.Title, err)
			continue
		}
		created++
	}

	return created, nil
}

func (im *Importer) itemToNews(ctx context.Context, item *gofeed.Item) (models.News, bool) {
	title := strings.TrimSpace(item.Title)
	if title == "" {
		return models.News{}, false
	}
	if len([]rune(title)) > 200 {
		title = string([]rune(title)[:200])
	}

	date := time.Now().UTC()
	if item.PublishedParsed != nil {
		date = *item.PublishedParsed
	} else if item.UpdatedParsed != nil {
		date = *item.UpdatedParsed
	}

	// content:encoded first, then description
	text := ""
	if im.FullText && item.Link != "" {
		text = im.crawler.FetchWithFallback(ctx, item.Link)
	}
	if text == "" && item.Content != "" {
		text = im.crawler.PlainText(item.Content)
	}
	if text == "" {
		text = im.crawler.PlainText(item.Description)
	}
	if text == "" {
		text = item.Link
	}

	return models.News{Title: title, Text: text, Date: date.UTC()}, true
}

// SeedDemo publishes count demo items dated today, yesterday and so on.
func (im *Importer) SeedDemo(ctx context.Context, count int) (int, error) {
	if count <= 0 {
		return 0, nil
	}

	today := time.Now().UTC()
	items := make([]models.News, 0, count)
	for i := 0; i < count; i++ {
		items = append(items, models.News{
			Title: fmt.Sprintf("Новость %d", i),
			Text:  "Просто текст.",
			Date:  today.AddDate(0, 0, -i),
		})
	}

	if err := im.db.WithContext(ctx).Create(&items).Error; err != nil {
		return 0, fmt.Errorf("seed news: %w", err)
	}
	return len(items), nil
}
