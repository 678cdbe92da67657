package models

import (
	"time"

	"gorm.io/gorm"
)

// News is a published news item. Site users only read it.
type News struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:200;not null" json:"title"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	Date      time.Time `gorm:"not null;index" json:"date"` // publish date, defaults to today
	CreatedAt time.Time `json:"created_at"`

	// 非数据库字段，列表页填充
	CommentCount int `gorm:"-" json:"comment_count"`
}

func (News) TableName() string {
	return "news"
}

// BeforeCreate fills Date with the current day when it was left empty.
func (n *News) BeforeCreate(tx *gorm.DB) error {
	if n.Date.IsZero() {
		now := time.Now().UTC()
		n.Date = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	} else {
		n.Date = n.Date.UTC()
	}
	return nil
}
