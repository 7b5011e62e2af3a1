package models

import (
	"strings"
	"time"

	"gorm.io/datatypes"
)

// Administrator is a back-office staff account, separate from User
type Administrator struct {
	ID               uint       `gorm:"primarykey" json:"id"`
	FirstName        string     `gorm:"size:100;not null" json:"first_name"`
	LastName         string     `gorm:"size:100;not null" json:"last_name"`
	Email            string     `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash     string     `gorm:"size:255;not null" json:"-"`
	Phone            *string    `gorm:"size:20" json:"phone,omitempty"`
	ProfilePhoto     *string    `gorm:"size:500" json:"profile_photo,omitempty"`
	Department       *string    `gorm:"size:100" json:"department,omitempty"`
	HiredOn          *time.Time `gorm:"type:date" json:"hired_on,omitempty"`
	Salary           *float64   `gorm:"type:numeric(10,2)" json:"-"`
	LastLoginAt      *time.Time `json:"last_login_at,omitempty"`
	LastLoginIP      *string    `gorm:"column:last_login_ip;size:45" json:"last_login_ip,omitempty"`
	Status           UserStatus `gorm:"size:20;not null;default:activo" json:"status"`
	Verified         bool       `gorm:"not null;default:false" json:"verified"`
	TwoFactorEnabled bool       `gorm:"not null;default:false" json:"two_factor_enabled"`
	TwoFactorSecret  *string    `gorm:"size:100" json:"-"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// TableName overrides the table name
func (Administrator) TableName() string {
	return "administrators"
}

// SetPassword stores a salted bcrypt hash of password
func (a *Administrator) SetPassword(password string) error {
	hash, err := hashPassword(password)
	if err != nil {
		return err
	}
	a.PasswordHash = hash
	return nil
}

func (a *Administrator) CheckPassword(password string) bool {
	return checkPassword(a.PasswordHash, password)
}

func (a *Administrator) DisplayName() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}

// SupportTicket is a help request raised by a user, a restaurant or staff
type SupportTicket struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	UserID          *uint          `gorm:"index" json:"user_id,omitempty"`
	AssignedAdminID *uint          `gorm:"index" json:"assigned_admin_id,omitempty"`
	RestaurantID    *uint          `gorm:"index" json:"restaurant_id,omitempty"`
	Code            *string        `gorm:"size:20;uniqueIndex" json:"code,omitempty"`
	Subject         string         `gorm:"size:200;not null" json:"subject"`
	Description     string         `gorm:"not null" json:"description"`
	Priority        TicketPriority `gorm:"size:20;not null;default:media" json:"priority"`
	Category        TicketCategory `gorm:"size:20;not null" json:"category"`
	Status          TicketStatus   `gorm:"size:30;not null;default:abierto" json:"status"`
	Origin          TicketOrigin   `gorm:"size:20;not null;default:usuario" json:"origin"`
	Attachments     datatypes.JSON `json:"attachments,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	ClosedAt        *time.Time     `json:"closed_at,omitempty"`
}

// TableName overrides the table name
func (SupportTicket) TableName() string {
	return "support_tickets"
}
