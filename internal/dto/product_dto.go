package dto

import (
	"time"

	"farmlink/internal/models"
)

// OwnerSummary: the selling farmer's public summary shown with a product
type OwnerSummary struct {
	FirstName     string   `json:"firstName"`
	LastName      string   `json:"lastName"`
	AverageRating *float64 `json:"averageRating"`
	County        *string  `json:"county,omitempty"`
}

// ProductResponse: a product with its owner summary
type ProductResponse struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Price       float64      `json:"price"`
	Unit        string       `json:"unit"`
	Quantity    int          `json:"quantity"`
	ImageURL    *string      `json:"imageUrl,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
	User        OwnerSummary `json:"user"`
}

func FromModelToProductResponse(product *models.Product) ProductResponse {
	return ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Unit:        product.Unit,
		Quantity:    product.Quantity,
		ImageURL:    product.ImageURL,
		CreatedAt:   product.CreatedAt,
		User: OwnerSummary{
			FirstName:     product.User.FirstName,
			LastName:      product.User.LastName,
			AverageRating: product.User.AverageRating,
			County:        product.User.County,
		},
	}
}
