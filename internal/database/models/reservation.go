package models

import "time"

// Reservation is a table booking made by a user at a restaurant
type Reservation struct {
	ID                       uint              `gorm:"primarykey" json:"id"`
	UserID                   uint              `gorm:"not null;index" json:"user_id"`
	RestaurantID             uint              `gorm:"not null;index" json:"restaurant_id"`
	ReservationDate          time.Time         `gorm:"type:date;not null" json:"reservation_date"`
	ReservationTime          string            `gorm:"size:8;not null" json:"reservation_time"`
	PartySize                int               `gorm:"not null" json:"party_size"`
	ContactName              *string           `gorm:"size:200" json:"contact_name,omitempty"`
	ContactEmail             *string           `gorm:"size:255" json:"contact_email,omitempty"`
	ContactPhone             *string           `gorm:"size:20" json:"contact_phone,omitempty"`
	SpecialRequests          *string           `json:"special_requests,omitempty"`
	Code                     *string           `gorm:"size:20;uniqueIndex" json:"code,omitempty"`
	Status                   ReservationStatus `gorm:"size:20;not null;default:pendiente" json:"status"`
	PaymentMethod            PaymentKind       `gorm:"size:20;not null;default:efectivo" json:"payment_method"`
	DepositPaid              *float64          `gorm:"type:numeric(10,2)" json:"deposit_paid,omitempty"`
	Total                    float64           `gorm:"type:numeric(10,2);not null;default:0" json:"total"`
	EstimatedDurationMinutes *int              `json:"estimated_duration_minutes,omitempty"`
	TableLabel               *string           `gorm:"size:20" json:"table_label,omitempty"`
	TableZone                *TableZone        `gorm:"size:20" json:"table_zone,omitempty"`
	CreatedAt                time.Time         `json:"created_at"`
	UpdatedAt                time.Time         `json:"updated_at"`
	CancelledAt              *time.Time        `json:"cancelled_at,omitempty"`
	CancellationReason       *string           `json:"cancellation_reason,omitempty"`
}

// TableName overrides the table name
func (Reservation) TableName() string {
	return "reservations"
}
