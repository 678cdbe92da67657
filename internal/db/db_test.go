package db

import (
	"testing"
	"time"
	"yanews/internal/config"
	"yanews/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openMemory(t *testing.T) *gorm.DB {
	t.Helper()
	g, err := Open(config.DriverSQLite, ":memory:")
	require.NoError(t, err)
	require.NoError(t, Migrate(g))
	t.Cleanup(func() {
		if sqlDB, err := g.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return g
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open("mysql", "whatever")
	require.Error(t, err)
}

func TestOpen_SQLiteMigrateAndPing(t *testing.T) {
	g := openMemory(t)
	require.NoError(t, Ping(g))

	for _, table := range []string{"users", "news", "comments"} {
		require.True(t, g.Migrator().HasTable(table), table)
	}
}

func TestNews_DateDefaultsToToday(t *testing.T) {
	g := openMemory(t)

	n := models.News{Title: "Заголовок", Text: "Текст новости"}
	require.NoError(t, g.Create(&n).Error)

	now := time.Now().UTC()
	require.Equal(t, now.Year(), n.Date.Year())
	require.Equal(t, now.YearDay(), n.Date.YearDay())
	require.Zero(t, n.Date.Hour())
}

func TestComment_CascadeOnNewsDelete(t *testing.T) {
	g := openMemory(t)

	u := models.User{Username: "Лев Толстой", Password: "x"}
	require.NoError(t, g.Create(&u).Error)
	n := models.News{Title: "Заголовок", Text: "Текст"}
	require.NoError(t, g.Create(&n).Error)
	c := models.Comment{NewsID: n.ID, AuthorID: u.ID, Text: "Текст комментария"}
	require.NoError(t, g.Create(&c).Error)
	require.False(t, c.CreatedAt.IsZero())

	require.NoError(t, g.Delete(&n).Error)

	var count int64
	require.NoError(t, g.Model(&models.Comment{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestComment_ForeignKeyEnforced(t *testing.T) {
	g := openMemory(t)

	c := models.Comment{NewsID: 999, AuthorID: 999, Text: "orphan"}
	require.Error(t, g.Create(&c).Error)
}

func TestInit_ReturnsMigratedHandle(t *testing.T) {
	g := Init(config.DBConfig{Driver: config.DriverSQLite, URL: ":memory:"})
	t.Cleanup(func() {
		if sqlDB, err := g.DB(); err == nil {
			sqlDB.Close()
		}
	})

	require.NoError(t, Ping(g))
	require.True(t, g.Migrator().HasTable(&models.Comment{}))
}
