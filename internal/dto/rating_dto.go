package dto

import (
	"time"

	"farmlink/internal/models"
)

// CreateRatingRequest: payload for a buyer rating a farmer
type CreateRatingRequest struct {
	FarmerID       string `json:"farmerId" binding:"required,uuid"`
	ProductQuality int    `json:"productQuality" binding:"required,min=1,max=5"`
	ResponseTime   int    `json:"responseTime" binding:"required,min=1,max=5"`
	Communication  int    `json:"communication" binding:"required,min=1,max=5"`
	Friendliness   int    `json:"friendliness" binding:"required,min=1,max=5"`
}

// RatingResponse: a created rating echoed back to the caller
type RatingResponse struct {
	ID             string    `json:"id"`
	RaterID        string    `json:"raterId"`
	FarmerID       string    `json:"farmerId"`
	ProductQuality int       `json:"productQuality"`
	ResponseTime   int       `json:"responseTime"`
	Communication  int       `json:"communication"`
	Friendliness   int       `json:"friendliness"`
	CreatedAt      time.Time `json:"createdAt"`
}

func FromModelToRatingResponse(rating *models.Rating) *RatingResponse {
	return &RatingResponse{
		ID:             rating.ID,
		RaterID:        rating.RaterID,
		FarmerID:       rating.FarmerID,
		ProductQuality: rating.ProductQuality,
		ResponseTime:   rating.ResponseTime,
		Communication:  rating.Communication,
		Friendliness:   rating.Friendliness,
		CreatedAt:      rating.CreatedAt,
	}
}

// RatingItem: a single rating as listed on a farmer's page
type RatingItem struct {
	ProductQuality int       `json:"productQuality"`
	ResponseTime   int       `json:"responseTime"`
	Communication  int       `json:"communication"`
	Friendliness   int       `json:"friendliness"`
	CreatedAt      time.Time `json:"createdAt"`
}

// FarmerSummary: the rated farmer's public summary
type FarmerSummary struct {
	FirstName     string   `json:"firstName"`
	LastName      string   `json:"lastName"`
	AverageRating *float64 `json:"averageRating"`
}

// FarmerRatingsResponse: farmer summary plus all received ratings
type FarmerRatingsResponse struct {
	Farmer  FarmerSummary `json:"farmer"`
	Ratings []RatingItem  `json:"ratings"`
}
