package models

import (
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// User represents a registered customer, restaurant owner or staff account
type User struct {
	ID            uint       `gorm:"primarykey" json:"id"`
	FirstName     string     `gorm:"size:100;not null" json:"first_name"`
	LastName      string     `gorm:"size:100;not null" json:"last_name"`
	Email         string     `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash  string     `gorm:"size:255;not null" json:"-"`
	Phone         *string    `gorm:"size:20" json:"phone,omitempty"`
	Address       *string    `json:"address,omitempty"`
	City          *string    `gorm:"size:100" json:"city,omitempty"`
	PostalCode    *string    `gorm:"size:10" json:"postal_code,omitempty"`
	RegisteredAt  time.Time  `gorm:"autoCreateTime" json:"registered_at"`
	LastSessionAt *time.Time `json:"last_session_at,omitempty"`
	Status        UserStatus `gorm:"size:20;not null;default:activo" json:"status"`
	Role          UserRole   `gorm:"size:20;not null;default:usuario" json:"role"`
	Verified      bool       `gorm:"not null;default:false" json:"verified"`
	Gender        *Gender    `gorm:"size:20" json:"gender,omitempty"`
	BirthDate     *time.Time `gorm:"type:date" json:"birth_date,omitempty"`
	ProfilePhoto  *string    `gorm:"size:500" json:"profile_photo,omitempty"`

	// Owned collections
	Favorites      []Favorite      `gorm:"foreignKey:UserID" json:"favorites,omitempty"`
	Reservations   []Reservation   `gorm:"foreignKey:UserID" json:"reservations,omitempty"`
	Orders         []Order         `gorm:"foreignKey:UserID" json:"orders,omitempty"`
	Reviews        []Review        `gorm:"foreignKey:UserID" json:"reviews,omitempty"`
	Addresses      []UserAddress   `gorm:"foreignKey:UserID" json:"addresses,omitempty"`
	PaymentMethods []PaymentMethod `gorm:"foreignKey:UserID" json:"payment_methods,omitempty"`
}

// TableName overrides the table name
func (User) TableName() string {
	return "users"
}

// SetPassword stores a salted bcrypt hash of password; the plaintext is never kept
func (u *User) SetPassword(password string) error {
	hash, err := hashPassword(password)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	return nil
}

// CheckPassword re-derives the hash from password and compares it with the stored one
func (u *User) CheckPassword(password string) bool {
	return checkPassword(u.PasswordHash, password)
}

// DisplayName is the "first last" name shown once the user is logged in
func (u *User) DisplayName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// UserAddress is an extra delivery address saved by a user
type UserAddress struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	UserID       uint      `gorm:"not null;index" json:"user_id"`
	Alias        *string   `gorm:"size:100" json:"alias,omitempty"`
	Address      string    `gorm:"not null" json:"address"`
	City         *string   `gorm:"size:100" json:"city,omitempty"`
	PostalCode   *string   `gorm:"size:10" json:"postal_code,omitempty"`
	Latitude     *float64  `json:"latitude,omitempty"`
	Longitude    *float64  `json:"longitude,omitempty"`
	Instructions *string   `json:"instructions,omitempty"`
	IsDefault    bool      `gorm:"not null;default:false" json:"is_default"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName overrides the table name
func (UserAddress) TableName() string {
	return "user_addresses"
}

// PaymentMethod is a stored way for a user to pay
type PaymentMethod struct {
	ID           uint              `gorm:"primarykey" json:"id"`
	UserID       uint              `gorm:"not null;index" json:"user_id"`
	Type         PaymentMethodType `gorm:"size:20;not null" json:"type"`
	Provider     *string           `gorm:"size:50" json:"provider,omitempty"`
	CardNumber   *string           `gorm:"size:20" json:"-"`
	HolderName   *string           `gorm:"size:200" json:"holder_name,omitempty"`
	ExpiresOn    *time.Time        `gorm:"type:date" json:"expires_on,omitempty"`
	CVV          *string           `gorm:"column:cvv;size:4" json:"-"`
	PaymentEmail *string           `gorm:"size:255" json:"payment_email,omitempty"`
	IsDefault    bool              `gorm:"not null;default:false" json:"is_default"`
	Active       *bool             `gorm:"not null;default:true" json:"active"`
	CreatedAt    time.Time         `json:"created_at"`
}

// TableName overrides the table name
func (PaymentMethod) TableName() string {
	return "payment_methods"
}

// Favorite marks a restaurant as favorite for a user; a pair is stored at most once
type Favorite struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	UserID       uint      `gorm:"not null;uniqueIndex:uq_favorites_user_restaurant" json:"user_id"`
	RestaurantID uint      `gorm:"not null;uniqueIndex:uq_favorites_user_restaurant" json:"restaurant_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName overrides the table name
func (Favorite) TableName() string {
	return "favorites"
}

// MaxPasswordBytes is the longest password bcrypt accepts
const MaxPasswordBytes = 72

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func checkPassword(hash, password string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
