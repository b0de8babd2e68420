package repository

import (
	"context"

	"farmlink/internal/models"

	"gorm.io/gorm"
)

// EventRepository appends audit records. Nothing reads them back here;
// the table is for operators.
type EventRepository interface {
	Create(ctx context.Context, event *models.Event) error
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(ctx context.Context, event *models.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}
