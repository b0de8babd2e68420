package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"

	"farmlink/internal/audit"
	"farmlink/internal/dto"
	"farmlink/internal/service"
)

// MockAuthService mocks the service.AuthService interface
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Signup(ctx context.Context, req *dto.SignupRequest, client audit.ClientInfo) (*dto.AuthResponse, error) {
	args := m.Called(ctx, req, client)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AuthResponse), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string, client audit.ClientInfo) (*dto.AuthResponse, error) {
	args := m.Called(ctx, email, password, client)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AuthResponse), args.Error(1)
}

func (m *MockAuthService) RequestPasswordReset(ctx context.Context, email string, client audit.ClientInfo) (string, error) {
	args := m.Called(ctx, email, client)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) ResetPassword(ctx context.Context, token, newPassword string, client audit.ClientInfo) (string, error) {
	args := m.Called(ctx, token, newPassword, client)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) ValidateToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Claims), args.Error(1)
}

// MockProfileService mocks the service.ProfileService interface
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) GetProfile(ctx context.Context, userID string) (*dto.UserProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.UserProfile), args.Error(1)
}

func (m *MockProfileService) UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest, client audit.ClientInfo) (*dto.UserProfile, error) {
	args := m.Called(ctx, userID, req, client)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.UserProfile), args.Error(1)
}

// MockRatingService mocks the service.RatingService interface
type MockRatingService struct {
	mock.Mock
}

func (m *MockRatingService) Submit(ctx context.Context, raterID string, req *dto.CreateRatingRequest, client audit.ClientInfo) (*dto.RatingResponse, error) {
	args := m.Called(ctx, raterID, req, client)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.RatingResponse), args.Error(1)
}

func (m *MockRatingService) FarmerRatings(ctx context.Context, farmerID string) (*dto.FarmerRatingsResponse, error) {
	args := m.Called(ctx, farmerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.FarmerRatingsResponse), args.Error(1)
}

// MockFeedbackService mocks the service.FeedbackService interface
type MockFeedbackService struct {
	mock.Mock
}

func (m *MockFeedbackService) Submit(ctx context.Context, userID *string, req *dto.CreateFeedbackRequest, client audit.ClientInfo) (*dto.FeedbackResponse, error) {
	args := m.Called(ctx, userID, req, client)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.FeedbackResponse), args.Error(1)
}

// MockProductService mocks the service.ProductService interface
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) Featured(ctx context.Context) ([]dto.ProductResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.ProductResponse), args.Error(1)
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}
