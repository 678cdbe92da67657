package services

import (
	"context"
	"testing"
	"yanews/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreate_AnonymousIsNoop(t *testing.T) {
	f := newFixture(t, 10)

	_, err := f.comments.Create(context.Background(), nil, f.item.ID, commentText)
	require.ErrorIs(t, err, ErrUnauthorized)
	require.EqualValues(t, 1, f.commentCount(t))
}

func TestCreate_ByUser(t *testing.T) {
	f := newFixture(t, 10)
	require.NoError(t, f.db.Delete(&models.Comment{}, f.comment.ID).Error)

	c, err := f.comments.Create(context.Background(), f.reader, f.item.ID, commentText)
	require.NoError(t, err)
	require.EqualValues(t, 1, f.commentCount(t))

	var stored models.Comment
	require.NoError(t, f.db.First(&stored, c.ID).Error)
	assert.Equal(t, commentText, stored.Text)
	assert.Equal(t, f.item.ID, stored.NewsID)
	assert.Equal(t, f.reader.ID, stored.AuthorID)
	assert.False(t, stored.CreatedAt.IsZero())
	assert.Equal(t, f.reader.Username, c.Author.Username)
}

func TestCreate_ForbiddenWords(t *testing.T) {
	for _, word := range badWords {
		t.Run(word, func(t *testing.T) {
			f := newFixture(t, 10)

			_, err := f.comments.Create(context.Background(), f.reader, f.item.ID, "Какой-то текст, "+word+", еще текст")

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, "text", verr.Field)
			assert.Equal(t, warningText, verr.Message)
			require.EqualValues(t, 1, f.commentCount(t))
		})
	}
}

func TestCreate_BlankText(t *testing.T) {
	f := newFixture(t, 10)

	_, err := f.comments.Create(context.Background(), f.reader, f.item.ID, "   ")

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, MsgRequired, verr.Message)
	require.EqualValues(t, 1, f.commentCount(t))
}

func TestCreate_MissingNews(t *testing.T) {
	f := newFixture(t, 10)

	_, err := f.comments.Create(context.Background(), f.reader, 9999, commentText)
	require.ErrorIs(t, err, ErrNotFound)
	require.EqualValues(t, 1, f.commentCount(t))
}

func TestEdit_ByAuthor(t *testing.T) {
	f := newFixture(t, 10)
	ctx := context.Background()

	var before models.Comment
	require.NoError(t, f.db.First(&before, f.comment.ID).Error)

	c, err := f.comments.Edit(ctx, f.author, f.comment.ID, newCommentText)
	require.NoError(t, err)
	assert.Equal(t, newCommentText, c.Text)

	var after models.Comment
	require.NoError(t, f.db.First(&after, f.comment.ID).Error)
	assert.Equal(t, newCommentText, after.Text)
	assert.True(t, before.CreatedAt.Equal(after.CreatedAt))
	assert.Equal(t, before.AuthorID, after.AuthorID)
	assert.Equal(t, before.NewsID, after.NewsID)
}

func TestEdit_ForbiddenWordKeepsText(t *testing.T) {
	f := newFixture(t, 10)

	_, err := f.comments.Edit(context.Background(), f.author, f.comment.ID, "ты негодяй")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	var stored models.Comment
	require.NoError(t, f.db.First(&stored, f.comment.ID).Error)
	assert.Equal(t, commentText, stored.Text)
}

func TestEdit_NotAuthor(t *testing.T) {
	tests := []struct {
		name string
		user func(f *fixture) *models.User
	}{
		{"reader", func(f *fixture) *models.User { return f.reader }},
		{"anonymous", func(f *fixture) *models.User { return nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, 10)

			_, err := f.comments.Edit(context.Background(), tt.user(f), f.comment.ID, newCommentText)
			require.ErrorIs(t, err, ErrNotFound)

			var stored models.Comment
			require.NoError(t, f.db.First(&stored, f.comment.ID).Error)
			assert.Equal(t, commentText, stored.Text)
			assert.Equal(t, f.author.ID, stored.AuthorID)
			assert.Equal(t, f.item.ID, stored.NewsID)
		})
	}
}

func TestDelete_ByAuthor(t *testing.T) {
	f := newFixture(t, 10)

	newsID, err := f.comments.Delete(context.Background(), f.author, f.comment.ID)
	require.NoError(t, err)
	assert.Equal(t, f.item.ID, newsID)
	require.EqualValues(t, 0, f.commentCount(t))
}

func TestDelete_NotAuthor(t *testing.T) {
	f := newFixture(t, 10)

	_, err := f.comments.Delete(context.Background(), f.reader, f.comment.ID)
	require.ErrorIs(t, err, ErrNotFound)
	require.EqualValues(t, 1, f.commentCount(t))
}

func TestMissingAndForeignCommentLookSame(t *testing.T) {
	f := newFixture(t, 10)
	ctx := context.Background()

	_, errForeign := f.comments.GetOwned(ctx, f.reader, f.comment.ID)
	_, errMissing := f.comments.GetOwned(ctx, f.reader, 9999)
	require.ErrorIs(t, errForeign, ErrNotFound)
	require.ErrorIs(t, errMissing, ErrNotFound)
	assert.Equal(t, errMissing.Error(), errForeign.Error())
}
