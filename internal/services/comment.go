package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"yanews/internal/models"

	"gorm.io/gorm"
)

// MsgRequired is the field error for a blank comment.
const MsgRequired = "Обязательное поле."

// CommentService implements comment create/edit/delete with author-only access.
type CommentService struct {
	db     *gorm.DB
	news   *NewsService
	filter *ContentFilter
}

func NewCommentService(db *gorm.DB, news *NewsService, filter *ContentFilter) *CommentService {
	return &CommentService{
		db:     db,
		news:   news,
		filter: filter,
	}
}

func (s *CommentService) validate(text string) error {
	if strings.TrimSpace(text) == "" {
		return &ValidationError{Field: "text", Message: MsgRequired}
	}
	return s.filter.Validate(text).Err()
}

// Create stores a new comment by user on the news item.
// Anonymous users get ErrUnauthorized, forbidden words a *ValidationError.
func (s *CommentService) Create(ctx context.Context, user *models.User, newsID uint, text string) (*models.Comment, error) {
	if user == nil {
		return nil, ErrUnauthorized
	}

	if _, err := s.news.GetNews(ctx, newsID); err != nil {
		return nil, err
	}

	if err := s.validate(text); err != nil {
		return nil, err
	}

	comment := models.Comment{
		NewsID:    newsID,
		AuthorID:  user.ID,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.db.WithContext(ctx).Create(&comment).Error; err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	comment.Author = *user

	s.news.InvalidateHome()

	return &comment, nil
}

// GetOwned loads a comment that belongs to user.
// A missing comment and someone else's comment both yield ErrNotFound.
func (s *CommentService) GetOwned(ctx context.Context, user *models.User, commentID uint) (*models.Comment, error) {
	if user == nil {
		return nil, ErrNotFound
	}

	var comment models.Comment
	err := s.db.WithContext(ctx).
		Where("id = ? AND author_id = ?", commentID, user.ID).
		First(&comment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get comment %d: %w", commentID, err)
	}

	if !CanModify(user, &comment) {
		return nil, ErrNotFound
	}
	comment.Author = *user

	return &comment, nil
}

// Edit replaces the text of the user's own comment. CreatedAt is left untouched.
func (s *CommentService) Edit(ctx context.Context, user *models.User, commentID uint, newText string) (*models.Comment, error) {
	comment, err := s.GetOwned(ctx, user, commentID)
	if err != nil {
		return nil, err
	}

	if err := s.validate(newText); err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("id = ?", comment.ID).
		Update("text", newText).Error
	if err != nil {
		return nil, fmt.Errorf("update comment %d: %w", commentID, err)
	}
	comment.Text = newText

	return comment, nil
}

// Delete removes the user's own comment and returns the id of its news item.
func (s *CommentService) Delete(ctx context.Context, user *models.User, commentID uint) (uint, error) {
	comment, err := s.GetOwned(ctx, user, commentID)
	if err != nil {
		return 0, err
	}

	if err := s.db.WithContext(ctx).Delete(&models.Comment{}, comment.ID).Error; err != nil {
		return 0, fmt.Errorf("delete comment %d: %w", commentID, err)
	}

	s.news.InvalidateHome()

	return comment.NewsID, nil
}
