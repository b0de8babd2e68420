package service

import (
	"context"
	"math"

	"gorm.io/gorm"

	"farmlink/internal/apperr"
	"farmlink/internal/audit"
	"farmlink/internal/cache"
	"farmlink/internal/dto"
	"farmlink/internal/models"
	"farmlink/internal/repository"
	"farmlink/internal/validator"
)

var (
	ErrFarmerNotFound  = apperr.NotFound("Farmer not found")
	ErrNotAFarmer      = apperr.BadRequest("Rated user is not a farmer")
	ErrScoreOutOfRange = apperr.BadRequest("Scores must be between 1 and 5")
)

type RatingService interface {
	// Submit persists a rating and recomputes the farmer's average before
	// returning; the write-through cache refresh and audit entry follow.
	Submit(ctx context.Context, raterID string, req *dto.CreateRatingRequest, client audit.ClientInfo) (*dto.RatingResponse, error)
	FarmerRatings(ctx context.Context, farmerID string) (*dto.FarmerRatingsResponse, error)
}

type ratingService struct {
	store     repository.Store
	profiles  *cache.ProfileCache
	recorder  audit.Recorder
	validator *validator.Validator
}

func NewRatingService(
	store repository.Store,
	profiles *cache.ProfileCache,
	recorder audit.Recorder,
	v *validator.Validator,
) RatingService {
	return &ratingService{
		store:     store,
		profiles:  profiles,
		recorder:  recorder,
		validator: v,
	}
}

func (s *ratingService) Submit(ctx context.Context, raterID string, req *dto.CreateRatingRequest, client audit.ClientInfo) (*dto.RatingResponse, error) {
	// The request schema enforces the range too; this layer guards direct
	// internal callers.
	for _, score := range []int{req.ProductQuality, req.ResponseTime, req.Communication, req.Friendliness} {
		if !validator.ScoreInRange(score) {
			return nil, ErrScoreOutOfRange
		}
	}

	farmer, err := s.store.Users().FindByID(ctx, req.FarmerID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrFarmerNotFound
		}
		return nil, err
	}
	if farmer.Role != models.RoleFarmer {
		return nil, ErrNotAFarmer
	}

	rating := &models.Rating{
		RaterID:        raterID,
		FarmerID:       req.FarmerID,
		ProductQuality: req.ProductQuality,
		ResponseTime:   req.ResponseTime,
		Communication:  req.Communication,
		Friendliness:   req.Friendliness,
	}

	// The rating insert, the aggregate and the average write share one
	// transaction, so the persisted average always reflects a
	// serialization of committed ratings.
	err = s.store.WithTransaction(ctx, func(tx repository.Store) error {
		if err := tx.Ratings().Create(ctx, rating); err != nil {
			return err
		}

		average, err := tx.Ratings().AverageForFarmer(ctx, req.FarmerID)
		if err != nil {
			return err
		}
		if average != nil {
			rounded := roundTo2(*average)
			average = &rounded
		}

		return tx.Users().SetAverageRating(ctx, req.FarmerID, average)
	})
	if err != nil {
		return nil, err
	}

	s.refreshFarmerCache(ctx, req.FarmerID)

	s.recorder.Record(&raterID, models.ActionRatingSubmitted, strPtr("RATING"), &rating.ID, client.Details())

	return dto.FromModelToRatingResponse(rating), nil
}

func (s *ratingService) FarmerRatings(ctx context.Context, farmerID string) (*dto.FarmerRatingsResponse, error) {
	farmer, err := s.store.Users().FindByID(ctx, farmerID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrFarmerNotFound
		}
		return nil, err
	}

	ratings, err := s.store.Ratings().ListByFarmer(ctx, farmerID)
	if err != nil {
		return nil, err
	}

	items := make([]dto.RatingItem, 0, len(ratings))
	for _, rating := range ratings {
		items = append(items, dto.RatingItem{
			ProductQuality: rating.ProductQuality,
			ResponseTime:   rating.ResponseTime,
			Communication:  rating.Communication,
			Friendliness:   rating.Friendliness,
			CreatedAt:      rating.CreatedAt,
		})
	}

	return &dto.FarmerRatingsResponse{
		Farmer: dto.FarmerSummary{
			FirstName:     farmer.FirstName,
			LastName:      farmer.LastName,
			AverageRating: farmer.AverageRating,
		},
		Ratings: items,
	}, nil
}

// refreshFarmerCache writes the post-update projection through so cached
// reads see the new average. Best effort: a cache outage costs nothing
// but staleness within the TTL.
func (s *ratingService) refreshFarmerCache(ctx context.Context, farmerID string) {
	farmer, err := s.store.Users().FindByID(ctx, farmerID)
	if err != nil {
		s.profiles.Invalidate(ctx, farmerID)
		return
	}
	profile := dto.FromModelToUserProfile(farmer)
	s.profiles.Set(ctx, &profile)
}

func roundTo2(value float64) float64 {
	return math.Round(value*100) / 100
}
