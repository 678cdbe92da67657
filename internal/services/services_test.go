package services

// Shared fixtures for the service tests: an in-memory sqlite database migrated with the
// real models, plus an author, a reader, one news item and one comment.

import (
	"context"
	"testing"
	"time"
	"yanews/internal/config"
	"yanews/internal/db"
	"yanews/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const (
	commentText    = "Текст комментария"
	newCommentText = "Обновлённый комментарий"
	warningText    = "Не ругайтесь!"
)

var badWords = []string{"редиска", "негодяй"}

type fixture struct {
	db       *gorm.DB
	news     *NewsService
	comments *CommentService
	auth     *AuthService

	author  *models.User
	reader  *models.User
	item    *models.News
	comment *models.Comment
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	g, err := db.Open(config.DriverSQLite, ":memory:")
	require.NoError(t, err)
	require.NoError(t, db.Migrate(g))
	t.Cleanup(func() {
		if sqlDB, err := g.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return g
}

func createUser(t *testing.T, g *gorm.DB, name string) *models.User {
	t.Helper()
	u := models.User{Username: name, Password: "-"}
	require.NoError(t, g.Create(&u).Error)
	return &u
}

func createNews(t *testing.T, g *gorm.DB, title string, date time.Time) *models.News {
	t.Helper()
	n := models.News{Title: title, Text: "Текст новости", Date: date}
	require.NoError(t, g.Create(&n).Error)
	return &n
}

func createComment(t *testing.T, g *gorm.DB, news *models.News, author *models.User, text string, at time.Time) *models.Comment {
	t.Helper()
	c := models.Comment{NewsID: news.ID, AuthorID: author.ID, Text: text, CreatedAt: at}
	require.NoError(t, g.Create(&c).Error)
	return &c
}

func newFixture(t *testing.T, pageSize int) *fixture {
	t.Helper()
	g := newTestDB(t)

	f := &fixture{db: g}
	f.news = NewNewsService(g, pageSize, 0)
	f.comments = NewCommentService(g, f.news, NewContentFilter(badWords, warningText))
	f.auth = NewAuthService(g)

	f.author = createUser(t, g, "Лев Толстой")
	f.reader = createUser(t, g, "Читатель простой")
	f.item = createNews(t, g, "Заголовок", time.Time{})
	f.comment = createComment(t, g, f.item, f.author, commentText, time.Time{})
	return f
}

func (f *fixture) commentCount(t *testing.T) int64 {
	t.Helper()
	n, err := f.news.CountComments(context.Background())
	require.NoError(t, err)
	return n
}
