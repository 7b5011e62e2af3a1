package models

import (
	"time"

	"gorm.io/datatypes"
)

// Promotion is a discount code. A nil RestaurantID means it is platform-wide.
type Promotion struct {
	ID              uint            `gorm:"primarykey" json:"id"`
	RestaurantID    *uint           `gorm:"index" json:"restaurant_id,omitempty"`
	Code            string          `gorm:"size:50;uniqueIndex;not null" json:"code"`
	Name            string          `gorm:"size:200;not null" json:"name"`
	Description     *string         `json:"description,omitempty"`
	DiscountType    DiscountType    `gorm:"size:20;not null" json:"discount_type"`
	DiscountValue   float64         `gorm:"type:numeric(10,2);not null" json:"discount_value"`
	UsageType       UsageType       `gorm:"size:20;not null;default:multiple" json:"usage_type"`
	UsageLimit      *int            `json:"usage_limit,omitempty"`
	UsageCount      int             `gorm:"not null;default:0" json:"usage_count"`
	StartsOn        time.Time       `gorm:"type:date;not null" json:"starts_on"`
	EndsOn          time.Time       `gorm:"type:date;not null" json:"ends_on"`
	StartsAt        *string         `gorm:"size:8" json:"starts_at,omitempty"`
	EndsAt          *string         `gorm:"size:8" json:"ends_at,omitempty"`
	MinimumPurchase float64         `gorm:"type:numeric(10,2);not null;default:0" json:"minimum_purchase"`
	MaximumDiscount *float64        `gorm:"type:numeric(10,2)" json:"maximum_discount,omitempty"`
	AppliesDelivery bool            `gorm:"not null;default:false" json:"applies_delivery"`
	AppliesPickup   bool            `gorm:"not null;default:false" json:"applies_pickup"`
	AppliesDineIn   bool            `gorm:"not null;default:false" json:"applies_dine_in"`
	Status          PromotionStatus `gorm:"size:20;not null;default:activo" json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`

	Usages []PromotionUsage `gorm:"foreignKey:PromotionID" json:"usages,omitempty"`
}

// TableName overrides the table name
func (Promotion) TableName() string {
	return "promotions"
}

// PromotionUsage records one redemption of a promotion code
type PromotionUsage struct {
	ID              uint      `gorm:"primarykey" json:"id"`
	PromotionID     uint      `gorm:"not null;index" json:"promotion_id"`
	UserID          *uint     `gorm:"index" json:"user_id,omitempty"`
	OrderID         *uint     `gorm:"index" json:"order_id,omitempty"`
	CodeUsed        *string   `gorm:"size:50" json:"code_used,omitempty"`
	DiscountApplied *float64  `gorm:"type:numeric(10,2)" json:"discount_applied,omitempty"`
	UsedAt          time.Time `gorm:"autoCreateTime" json:"used_at"`
}

// TableName overrides the table name
func (PromotionUsage) TableName() string {
	return "promotion_usages"
}

type PromoBanner struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	Title          string         `gorm:"size:200;not null" json:"title"`
	Description    *string        `json:"description,omitempty"`
	ImageURL       string         `gorm:"column:image_url;size:500;not null" json:"image_url"`
	TargetURL      *string        `gorm:"column:target_url;size:500" json:"target_url,omitempty"`
	BannerType     BannerType     `gorm:"size:20;not null;default:principal" json:"banner_type"`
	Position       BannerPosition `gorm:"size:20;not null;default:top" json:"position"`
	Active         *bool          `gorm:"not null;default:true" json:"active"`
	StartsOn       *time.Time     `gorm:"type:date" json:"starts_on,omitempty"`
	EndsOn         *time.Time     `gorm:"type:date" json:"ends_on,omitempty"`
	DisplayOrder   int            `gorm:"not null;default:0" json:"display_order"`
	TargetAudience datatypes.JSON `json:"target_audience,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// TableName overrides the table name
func (PromoBanner) TableName() string {
	return "promo_banners"
}
