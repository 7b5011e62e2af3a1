package models

import "time"

// Notification is an in-app message for a user. It is stored only; nothing in
// the application delivers it.
type Notification struct {
	ID           uint             `gorm:"primarykey" json:"id"`
	UserID       *uint            `gorm:"index" json:"user_id,omitempty"`
	RestaurantID *uint            `gorm:"index" json:"restaurant_id,omitempty"`
	Type         NotificationType `gorm:"size:30;not null" json:"type"`
	Title        string           `gorm:"size:200;not null" json:"title"`
	Message      string           `gorm:"not null" json:"message"`
	Read         bool             `gorm:"column:is_read;not null;default:false" json:"read"`
	Important    bool             `gorm:"not null;default:false" json:"important"`
	Link         *string          `gorm:"size:500" json:"link,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
}

// TableName overrides the table name
func (Notification) TableName() string {
	return "notifications"
}
