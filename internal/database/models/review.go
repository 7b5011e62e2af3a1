package models

import "time"

type Review struct {
	ID             uint         `gorm:"primarykey" json:"id"`
	UserID         uint         `gorm:"not null;index" json:"user_id"`
	RestaurantID   uint         `gorm:"not null;index" json:"restaurant_id"`
	OrderID        *uint        `gorm:"index" json:"order_id,omitempty"`
	Rating         int          `gorm:"not null" json:"rating"` // 1 to 5
	Title          *string      `gorm:"size:200" json:"title,omitempty"`
	Comment        *string      `json:"comment,omitempty"`
	Pros           *string      `json:"pros,omitempty"`
	Cons           *string      `json:"cons,omitempty"`
	WouldRecommend *bool        `json:"would_recommend,omitempty"`
	Photo          *string      `gorm:"size:500" json:"photo,omitempty"`
	Status         ReviewStatus `gorm:"size:20;not null;default:pendiente" json:"status"`
	HelpfulYes     int          `gorm:"not null;default:0" json:"helpful_yes"`
	HelpfulNo      int          `gorm:"not null;default:0" json:"helpful_no"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// TableName overrides the table name
func (Review) TableName() string {
	return "reviews"
}
