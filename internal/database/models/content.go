package models

import "time"

// StaticContent is a CMS page such as the FAQ or the terms of service
type StaticContent struct {
	ID              uint          `gorm:"primarykey" json:"id"`
	Slug            string        `gorm:"size:200;uniqueIndex;not null" json:"slug"`
	Title           string        `gorm:"size:200;not null" json:"title"`
	Body            string        `gorm:"not null" json:"body"`
	ContentType     ContentType   `gorm:"size:20;not null" json:"content_type"`
	Category        *string       `gorm:"size:100" json:"category,omitempty"`
	MetaTitle       *string       `gorm:"size:200" json:"meta_title,omitempty"`
	MetaDescription *string       `json:"meta_description,omitempty"`
	Keywords        *string       `gorm:"size:500" json:"keywords,omitempty"`
	AuthorID        *uint         `gorm:"index" json:"author_id,omitempty"`
	PublishedAt     *time.Time    `json:"published_at,omitempty"`
	UpdatedAt       time.Time     `json:"updated_at"`
	Status          ContentStatus `gorm:"size:20;not null;default:borrador" json:"status"`
	Views           int           `gorm:"not null;default:0" json:"views"`
}

// TableName overrides the table name
func (StaticContent) TableName() string {
	return "static_contents"
}
