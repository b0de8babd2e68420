package repository

import (
	"context"
	"database/sql"

	"farmlink/internal/models"

	"gorm.io/gorm"
)

type RatingRepository interface {
	Create(ctx context.Context, rating *models.Rating) error
	ListByFarmer(ctx context.Context, farmerID string) ([]models.Rating, error)
	// AverageForFarmer computes the mean of per-rating sub-score means as a
	// single aggregate inside the database. Returns nil when the farmer has
	// no ratings.
	AverageForFarmer(ctx context.Context, farmerID string) (*float64, error)
	CountByFarmer(ctx context.Context, farmerID string) (int64, error)
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

// Create a new rating
func (r *ratingRepository) Create(ctx context.Context, rating *models.Rating) error {
	return r.db.WithContext(ctx).Create(rating).Error
}

// ListByFarmer retrieves all ratings received by a farmer, newest first
func (r *ratingRepository) ListByFarmer(ctx context.Context, farmerID string) ([]models.Rating, error) {
	var ratings []models.Rating
	err := r.db.WithContext(ctx).
		Where("farmer_id = ?", farmerID).
		Order("created_at DESC").
		Find(&ratings).Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}

func (r *ratingRepository) AverageForFarmer(ctx context.Context, farmerID string) (*float64, error) {
	var avg sql.NullFloat64

	err := r.db.WithContext(ctx).Model(&models.Rating{}).
		Select("AVG((product_quality + response_time + communication + friendliness) / 4.0)").
		Where("farmer_id = ?", farmerID).
		Scan(&avg).Error
	if err != nil {
		return nil, err
	}

	if !avg.Valid {
		return nil, nil
	}
	return &avg.Float64, nil
}

// CountByFarmer counts the total number of ratings received by a farmer
func (r *ratingRepository) CountByFarmer(ctx context.Context, farmerID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Rating{}).
		Where("farmer_id = ?", farmerID).Count(&count).Error
	return count, err
}
