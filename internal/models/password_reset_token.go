package models

import "time"

// PasswordResetToken is an opaque single-use token. It is deleted when
// consumed; expired tokens are rejected and left for cleanup.
type PasswordResetToken struct {
	Token     string    `gorm:"primaryKey" json:"token"`
	UserID    string    `gorm:"type:uuid;not null;index" json:"userId"`
	ExpiresAt time.Time `gorm:"not null" json:"expiresAt"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`

	User User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
}

func (PasswordResetToken) TableName() string {
	return "password_reset_tokens"
}
