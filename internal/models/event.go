package models

import (
	"time"

	"gorm.io/datatypes"
)

// Audit event actions
const (
	ActionUserLogin              = "USER_LOGIN"
	ActionUserRegistered         = "USER_REGISTERED"
	ActionProfileUpdated         = "PROFILE_UPDATED"
	ActionPasswordResetRequested = "PASSWORD_RESET_REQUESTED"
	ActionPasswordReset          = "PASSWORD_RESET"
	ActionFeedbackSubmitted      = "FEEDBACK_SUBMITTED"
	ActionRatingSubmitted        = "RATING_SUBMITTED"
)

// Event is an append-only audit record. Nothing in the service reads these
// back; they exist for traceability.
type Event struct {
	ID         int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     *string        `gorm:"type:uuid;index" json:"userId,omitempty"`
	Action     string         `gorm:"not null;index" json:"action"`
	EntityType *string        `json:"entityType,omitempty"`
	EntityID   *string        `json:"entityId,omitempty"`
	Details    datatypes.JSON `json:"details,omitempty"`
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"createdAt"`
}

func (Event) TableName() string {
	return "events"
}
