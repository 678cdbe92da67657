package models

import (
	"time"

	"gorm.io/gorm"
)

type Comment struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	NewsID   uint   `gorm:"not null;index" json:"news_id"`
	News     News   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	AuthorID uint   `gorm:"not null;index" json:"author_id"`
	Author   User   `gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"author"`
	Text     string `gorm:"type:text;not null" json:"text"`
	// CreatedAt is only filled by gorm when zero, so fixtures can pin it.
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

// BeforeCreate keeps every stored timestamp in UTC so ordering is consistent across drivers.
func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	} else {
		c.CreatedAt = c.CreatedAt.UTC()
	}
	return nil
}
