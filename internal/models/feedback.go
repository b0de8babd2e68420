package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Feedback is a platform-wide comment, optionally anonymous.
type Feedback struct {
	ID        string    `gorm:"primaryKey;type:uuid" json:"id"`
	UserID    *string   `gorm:"type:uuid;index" json:"userId,omitempty"`
	Name      *string   `json:"name,omitempty"`
	Rating    int       `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment   string    `gorm:"type:varchar(1000);not null" json:"comment"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL;"`
}

func (feedback *Feedback) BeforeCreate(tx *gorm.DB) (err error) {
	if feedback.ID == "" {
		feedback.ID = uuid.New().String()
	}
	return
}

func (Feedback) TableName() string {
	return "feedback"
}
