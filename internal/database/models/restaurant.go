package models

import "time"

// Restaurant is a listed venue together with its service flags
type Restaurant struct {
	ID                   uint             `gorm:"primarykey" json:"id"`
	Name                 string           `gorm:"size:200;not null" json:"name"`
	Slug                 *string          `gorm:"size:200;uniqueIndex" json:"slug,omitempty"`
	Description          *string          `json:"description,omitempty"`
	CuisineType          *string          `gorm:"size:100" json:"cuisine_type,omitempty"`
	Rating               float64          `gorm:"type:numeric(2,1);not null;default:0" json:"rating"`
	ReviewCount          int              `gorm:"not null;default:0" json:"review_count"`
	Distance             *string          `gorm:"size:20" json:"distance,omitempty"`
	PriceRange           *string          `gorm:"size:10" json:"price_range,omitempty"`
	Address              *string          `json:"address,omitempty"`
	City                 *string          `gorm:"size:100" json:"city,omitempty"`
	PostalCode           *string          `gorm:"size:10" json:"postal_code,omitempty"`
	Latitude             *float64         `json:"latitude,omitempty"`
	Longitude            *float64         `json:"longitude,omitempty"`
	Phone                *string          `gorm:"size:20" json:"phone,omitempty"`
	WhatsApp             *string          `gorm:"column:whatsapp;size:20" json:"whatsapp,omitempty"`
	Email                *string          `gorm:"size:255" json:"email,omitempty"`
	Website              *string          `gorm:"size:255" json:"website,omitempty"`
	OpeningTime          *string          `gorm:"size:8" json:"opening_time,omitempty"`
	ClosingTime          *string          `gorm:"size:8" json:"closing_time,omitempty"`
	OpenDays             *string          `gorm:"size:100" json:"open_days,omitempty"`
	Delivery             bool             `gorm:"not null;default:false" json:"delivery"`
	Pickup               bool             `gorm:"not null;default:false" json:"pickup"`
	DineIn               bool             `gorm:"not null;default:false" json:"dine_in"`
	HomeService          bool             `gorm:"not null;default:false" json:"home_service"`
	Wifi                 bool             `gorm:"not null;default:false" json:"wifi"`
	Parking              bool             `gorm:"not null;default:false" json:"parking"`
	AirConditioning      bool             `gorm:"not null;default:false" json:"air_conditioning"`
	WheelchairAccessible bool             `gorm:"not null;default:false" json:"wheelchair_accessible"`
	KidsArea             bool             `gorm:"not null;default:false" json:"kids_area"`
	CoverImage           *string          `gorm:"size:500" json:"cover_image,omitempty"`
	Logo                 *string          `gorm:"size:500" json:"logo,omitempty"`
	Status               RestaurantStatus `gorm:"size:20;not null;default:pendiente" json:"status"`
	CreatedAt            time.Time        `json:"created_at"`
	UpdatedAt            time.Time        `json:"updated_at"`

	// Owned collections
	MenuCategories []MenuCategory       `gorm:"foreignKey:RestaurantID" json:"menu_categories,omitempty"`
	MenuItems      []MenuItem           `gorm:"foreignKey:RestaurantID" json:"menu_items,omitempty"`
	Schedules      []RestaurantSchedule `gorm:"foreignKey:RestaurantID" json:"schedules,omitempty"`
}

// TableName overrides the table name
func (Restaurant) TableName() string {
	return "restaurants"
}

type MenuCategory struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	RestaurantID uint      `gorm:"not null;index" json:"restaurant_id"`
	Name         string    `gorm:"size:100;not null" json:"name"`
	Description  *string   `json:"description,omitempty"`
	SortOrder    int       `gorm:"not null;default:0" json:"sort_order"`
	Visible      *bool     `gorm:"not null;default:true" json:"visible"`
	CreatedAt    time.Time `json:"created_at"`

	Items []MenuItem `gorm:"foreignKey:CategoryID" json:"items,omitempty"`
}

// TableName overrides the table name
func (MenuCategory) TableName() string {
	return "menu_categories"
}

// MenuItem is a dish on a restaurant menu. CategoryLabel is free text kept
// next to the optional CategoryID reference.
type MenuItem struct {
	ID                 uint      `gorm:"primarykey" json:"id"`
	RestaurantID       uint      `gorm:"not null;index" json:"restaurant_id"`
	CategoryID         *uint     `gorm:"index" json:"category_id,omitempty"`
	Name               string    `gorm:"size:200;not null" json:"name"`
	Description        *string   `json:"description,omitempty"`
	Price              float64   `gorm:"type:numeric(10,2);not null" json:"price"`
	DiscountPrice      *float64  `gorm:"type:numeric(10,2)" json:"discount_price,omitempty"`
	CategoryLabel      *string   `gorm:"size:100" json:"category_label,omitempty"`
	Subcategory        *string   `gorm:"size:100" json:"subcategory,omitempty"`
	ImageURL           *string   `gorm:"column:image_url;size:500" json:"image_url,omitempty"`
	Available          *bool     `gorm:"not null;default:true" json:"available"`
	PreparationMinutes *int      `json:"preparation_minutes,omitempty"`
	Calories           *int      `json:"calories,omitempty"`
	Vegetarian         bool      `gorm:"not null;default:false" json:"vegetarian"`
	Vegan              bool      `gorm:"not null;default:false" json:"vegan"`
	GlutenFree         bool      `gorm:"not null;default:false" json:"gluten_free"`
	Spicy              bool      `gorm:"not null;default:false" json:"spicy"`
	Featured           bool      `gorm:"not null;default:false" json:"featured"`
	SortOrder          int       `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// TableName overrides the table name
func (MenuItem) TableName() string {
	return "menu_items"
}

// RestaurantSchedule is the opening window of a restaurant for one weekday.
// Times are stored as HH:MM:SS strings.
type RestaurantSchedule struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	RestaurantID uint      `gorm:"not null;uniqueIndex:uq_schedule_restaurant_weekday" json:"restaurant_id"`
	Weekday      Weekday   `gorm:"size:20;not null;uniqueIndex:uq_schedule_restaurant_weekday" json:"weekday"`
	OpensAt      string    `gorm:"size:8;not null" json:"opens_at"`
	ClosesAt     string    `gorm:"size:8;not null" json:"closes_at"`
	Open         *bool     `gorm:"column:is_open;not null;default:true" json:"open"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName overrides the table name
func (RestaurantSchedule) TableName() string {
	return "restaurant_schedules"
}
