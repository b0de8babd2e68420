package service

import (
	"context"

	"farmlink/internal/dto"
	"farmlink/internal/repository"
)

type ProductService interface {
	// Featured returns the five most recent listings with owner summaries.
	Featured(ctx context.Context) ([]dto.ProductResponse, error)
}

type productService struct {
	store repository.Store
}

func NewProductService(store repository.Store) ProductService {
	return &productService{store: store}
}

func (s *productService) Featured(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := s.store.Products().Featured(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		responses = append(responses, dto.FromModelToProductResponse(&products[i]))
	}
	return responses, nil
}
