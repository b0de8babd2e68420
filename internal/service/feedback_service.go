package service

import (
	"context"

	"farmlink/internal/apperr"
	"farmlink/internal/audit"
	"farmlink/internal/dto"
	"farmlink/internal/models"
	"farmlink/internal/repository"
	"farmlink/internal/validator"
)

type FeedbackService interface {
	// Submit accepts feedback from anonymous and authenticated callers;
	// userID is nil for the former.
	Submit(ctx context.Context, userID *string, req *dto.CreateFeedbackRequest, client audit.ClientInfo) (*dto.FeedbackResponse, error)
}

type feedbackService struct {
	store     repository.Store
	recorder  audit.Recorder
	validator *validator.Validator
}

func NewFeedbackService(store repository.Store, recorder audit.Recorder, v *validator.Validator) FeedbackService {
	return &feedbackService{store: store, recorder: recorder, validator: v}
}

func (s *feedbackService) Submit(ctx context.Context, userID *string, req *dto.CreateFeedbackRequest, client audit.ClientInfo) (*dto.FeedbackResponse, error) {
	if fieldErrs := s.validator.Struct(req); fieldErrs != nil {
		return nil, apperr.BadRequest("Validation failed").WithDetails(fieldErrs)
	}

	feedback := &models.Feedback{
		UserID:  userID,
		Name:    req.Name,
		Rating:  req.Rating,
		Comment: req.Comment,
	}

	if err := s.store.Feedback().Create(ctx, feedback); err != nil {
		return nil, err
	}

	s.recorder.Record(userID, models.ActionFeedbackSubmitted, strPtr("FEEDBACK"), &feedback.ID, client.Details())

	return &dto.FeedbackResponse{
		Message:    "Feedback submitted successfully",
		FeedbackID: feedback.ID,
	}, nil
}
