package models

import "time"

// Order is a food order placed by a user at a restaurant
type Order struct {
	ID                       uint        `gorm:"primarykey" json:"id"`
	UserID                   uint        `gorm:"not null;index" json:"user_id"`
	RestaurantID             uint        `gorm:"not null;index" json:"restaurant_id"`
	Code                     *string     `gorm:"size:20;uniqueIndex" json:"code,omitempty"`
	Subtotal                 float64     `gorm:"type:numeric(10,2);not null" json:"subtotal"`
	Taxes                    float64     `gorm:"type:numeric(10,2);not null;default:0" json:"taxes"`
	DeliveryFee              float64     `gorm:"type:numeric(10,2);not null;default:0" json:"delivery_fee"`
	Discount                 float64     `gorm:"type:numeric(10,2);not null;default:0" json:"discount"`
	Total                    float64     `gorm:"type:numeric(10,2);not null" json:"total"`
	Status                   OrderStatus `gorm:"size:20;not null;default:pendiente" json:"status"`
	PaymentMethod            PaymentKind `gorm:"size:20;not null" json:"payment_method"`
	DeliveryAddress          *string     `json:"delivery_address,omitempty"`
	DeliveryCoordinates      *string     `gorm:"size:100" json:"delivery_coordinates,omitempty"`
	DeliveryInstructions     *string     `json:"delivery_instructions,omitempty"`
	ContactPhone             *string     `gorm:"size:20" json:"contact_phone,omitempty"`
	RecipientName            *string     `gorm:"size:200" json:"recipient_name,omitempty"`
	OrderedAt                time.Time   `gorm:"autoCreateTime" json:"ordered_at"`
	PreparedAt               *time.Time  `json:"prepared_at,omitempty"`
	ShippedAt                *time.Time  `json:"shipped_at,omitempty"`
	DeliveredAt              *time.Time  `json:"delivered_at,omitempty"`
	EstimatedDeliveryMinutes *int        `json:"estimated_delivery_minutes,omitempty"`
	CreatedAt                time.Time   `json:"created_at"`
	UpdatedAt                time.Time   `json:"updated_at"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// TableName overrides the table name
func (Order) TableName() string {
	return "orders"
}

// OrderItem is one line of an order. Name and price are copied from the menu
// item at order time, so the line survives the menu item being removed.
type OrderItem struct {
	ID              uint      `gorm:"primarykey" json:"id"`
	OrderID         uint      `gorm:"not null;index" json:"order_id"`
	MenuItemID      *uint     `gorm:"index" json:"menu_item_id,omitempty"`
	ItemName        string    `gorm:"size:200;not null" json:"item_name"`
	ItemDescription *string   `json:"item_description,omitempty"`
	Quantity        int       `gorm:"not null" json:"quantity"`
	UnitPrice       float64   `gorm:"type:numeric(10,2);not null" json:"unit_price"`
	Subtotal        float64   `gorm:"type:numeric(10,2);not null" json:"subtotal"`
	Notes           *string   `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// TableName overrides the table name
func (OrderItem) TableName() string {
	return "order_items"
}
