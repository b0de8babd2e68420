package repository

import (
	"context"

	"gorm.io/gorm"
)

// Store bundles every repository behind one handle so that multi-write
// operations (password reset, rating plus average update) can run inside a
// single database transaction.
type Store interface {
	Users() UserRepository
	Ratings() RatingRepository
	Feedback() FeedbackRepository
	ResetTokens() ResetTokenRepository
	Events() EventRepository
	Products() ProductRepository

	// WithTransaction runs fn against a Store whose repositories share one
	// transaction. fn returning an error rolls everything back.
	WithTransaction(ctx context.Context, fn func(Store) error) error
}

type gormStore struct {
	db *gorm.DB

	users       UserRepository
	ratings     RatingRepository
	feedback    FeedbackRepository
	resetTokens ResetTokenRepository
	events      EventRepository
	products    ProductRepository
}

// NewStore creates the GORM-backed Store.
func NewStore(db *gorm.DB) Store {
	return &gormStore{
		db:          db,
		users:       NewUserRepository(db),
		ratings:     NewRatingRepository(db),
		feedback:    NewFeedbackRepository(db),
		resetTokens: NewResetTokenRepository(db),
		events:      NewEventRepository(db),
		products:    NewProductRepository(db),
	}
}

func (s *gormStore) Users() UserRepository             { return s.users }
func (s *gormStore) Ratings() RatingRepository         { return s.ratings }
func (s *gormStore) Feedback() FeedbackRepository      { return s.feedback }
func (s *gormStore) ResetTokens() ResetTokenRepository { return s.resetTokens }
func (s *gormStore) Events() EventRepository           { return s.events }
func (s *gormStore) Products() ProductRepository       { return s.products }

func (s *gormStore) WithTransaction(ctx context.Context, fn func(Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}
