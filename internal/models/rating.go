package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Rating is a buyer's review of a farmer: four sub-scores, each 1 to 5.
// Rows are immutable after creation.
type Rating struct {
	ID             string    `gorm:"primaryKey;type:uuid" json:"id"`
	RaterID        string    `gorm:"type:uuid;not null;index" json:"raterId"`
	FarmerID       string    `gorm:"type:uuid;not null;index" json:"farmerId"`
	ProductQuality int       `gorm:"not null;check:product_quality >= 1 AND product_quality <= 5" json:"productQuality"`
	ResponseTime   int       `gorm:"not null;check:response_time >= 1 AND response_time <= 5" json:"responseTime"`
	Communication  int       `gorm:"not null;check:communication >= 1 AND communication <= 5" json:"communication"`
	Friendliness   int       `gorm:"not null;check:friendliness >= 1 AND friendliness <= 5" json:"friendliness"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"createdAt"`

	// Associations
	Rater  User `json:"rater,omitempty" gorm:"foreignKey:RaterID;constraint:OnDelete:CASCADE;"`
	Farmer User `json:"farmer,omitempty" gorm:"foreignKey:FarmerID;constraint:OnDelete:CASCADE;"`
}

func (rating *Rating) BeforeCreate(tx *gorm.DB) (err error) {
	if rating.ID == "" {
		rating.ID = uuid.New().String()
	}
	return
}

func (Rating) TableName() string {
	return "ratings"
}
