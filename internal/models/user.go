package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User roles
const (
	RoleFarmer = "FARMER"
	RoleBuyer  = "BUYER"
	RoleAdmin  = "ADMIN"
)

// Supported countries
const (
	CountryKenya    = "KENYA"
	CountryUganda   = "UGANDA"
	CountryTanzania = "TANZANIA"
)

// Verification status
const (
	NotVerified = "NOT_VERIFIED"
	Verified    = "VERIFIED"
)

type User struct {
	ID                 string   `gorm:"primaryKey;type:uuid" json:"id"`
	Email              string   `gorm:"uniqueIndex;not null" json:"email"`
	Password           string   `gorm:"column:password_hash;not null" json:"-"`
	FirstName          string   `gorm:"not null" json:"firstName"`
	LastName           string   `gorm:"not null" json:"lastName"`
	PhoneNumber        *string  `json:"phoneNumber,omitempty"`
	Role               string   `gorm:"default:'FARMER';not null" json:"role"`
	Country            string   `gorm:"not null" json:"country"`
	County             *string  `json:"county,omitempty"`
	SubCounty          *string  `json:"subCounty,omitempty"`
	Latitude           *float64 `json:"latitude,omitempty"`
	Longitude          *float64 `json:"longitude,omitempty"`
	VerificationStatus string   `gorm:"default:'NOT_VERIFIED';not null" json:"verificationStatus"`
	// Encrypted at rest, never returned to clients
	IDNumber      *string   `gorm:"column:id_number" json:"-"`
	AvatarURL     *string   `json:"avatarUrl,omitempty"`
	AverageRating *float64  `gorm:"type:decimal(4,2)" json:"averageRating"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// BeforeCreate hook to set UUID before creating a User
func (user *User) BeforeCreate(tx *gorm.DB) (err error) {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	return
}

func (User) TableName() string {
	return "users"
}
