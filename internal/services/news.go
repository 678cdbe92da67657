package services

import (
	"context"
	"errors"
	"fmt"
	"time"
	"yanews/internal/models"
	"yanews/internal/utils"

	"gorm.io/gorm"
)

const homeCacheKey = "news:home"

// NewsService serves the home listing and per-item comment lists.
type NewsService struct {
	db       *gorm.DB
	pageSize int
	cache    *utils.Cache
	cacheTTL time.Duration
}

// NewNewsService returns a listing service showing pageSize items on the home page.
// A zero cacheTTL disables the home page cache.
func NewNewsService(db *gorm.DB, pageSize int, cacheTTL time.Duration) *NewsService {
	return &NewsService{
		db:       db,
		pageSize: pageSize,
		cache:    utils.NewCache(16),
		cacheTTL: cacheTTL,
	}
}

// ListHome returns the newest news items, at most PageSize of them.
func (s *NewsService) ListHome(ctx context.Context) ([]models.News, error) {
	if s.cacheTTL > 0 {
		if cached, ok := s.cache.Get(homeCacheKey).([]models.News); ok {
			return append([]models.News(nil), cached...), nil
		}
	}

	items := make([]models.News, 0, s.pageSize)
	err := s.db.WithContext(ctx).
		Order("date DESC").
		Order("id DESC").
		Limit(s.pageSize).
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("list home news: %w", err)
	}

	if err := s.fillCommentCounts(ctx, items); err != nil {
		return nil, err
	}

	if s.cacheTTL > 0 {
		s.cache.Set(homeCacheKey, append([]models.News(nil), items...), s.cacheTTL)
	}

	return items, nil
}

// ListLatest returns up to limit news items, newest first, without comment counts.
func (s *NewsService) ListLatest(ctx context.Context, limit int) ([]models.News, error) {
	items := make([]models.News, 0)
	err := s.db.WithContext(ctx).
		Order("date DESC").
		Order("id DESC").
		Limit(limit).
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("list latest news: %w", err)
	}
	return items, nil
}

// InvalidateHome drops the cached home listing.
func (s *NewsService) InvalidateHome() {
	s.cache.Delete(homeCacheKey)
}

// fillCommentCounts sets CommentCount on every item with one grouped query.
func (s *NewsService) fillCommentCounts(ctx context.Context, items []models.News) error {
	if len(items) == 0 {
		return nil
	}

	ids := make([]uint, len(items))
	for i, n := range items {
		ids[i] = n.ID
	}

	type countResult struct {
		NewsID uint
		Count  int
	}
	var results []countResult
	err := s.db.WithContext(ctx).Model(&models.Comment{}).
		Select("news_id, COUNT(*) as count").
		Where("news_id IN ?", ids).
		Group("news_id").
		Scan(&results).Error
	if err != nil {
		return fmt.Errorf("count comments: %w", err)
	}

	counts := make(map[uint]int, len(results))
	for _, r := range results {
		counts[r.NewsID] = r.Count
	}
	for i := range items {
		items[i].CommentCount = counts[items[i].ID]
	}
	return nil
}

func (s *NewsService) GetNews(ctx context.Context, id uint) (*models.News, error) {
	var n models.News
	if err := s.db.WithContext(ctx).First(&n, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get news %d: %w", id, err)
	}
	return &n, nil
}

// ListComments returns the comments of a news item, oldest first, with authors loaded.
func (s *NewsService) ListComments(ctx context.Context, newsID uint) ([]models.Comment, error) {
	_, comments, err := s.GetNewsWithComments(ctx, newsID)
	return comments, err
}

// GetNewsWithComments loads a news item and its comments with a single lookup of the item.
func (s *NewsService) GetNewsWithComments(ctx context.Context, id uint) (*models.News, []models.Comment, error) {
	n, err := s.GetNews(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	comments := make([]models.Comment, 0)
	err = s.db.WithContext(ctx).
		Preload("Author").
		Where("news_id = ?", id).
		Order("created_at ASC").
		Order("id ASC").
		Find(&comments).Error
	if err != nil {
		return nil, nil, fmt.Errorf("list comments of news %d: %w", id, err)
	}
	return n, comments, nil
}

// CountComments returns the total number of stored comments.
func (s *NewsService) CountComments(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Comment{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count comments: %w", err)
	}
	return count, nil
}
