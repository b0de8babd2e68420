package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"farmlink/internal/apperr"
	"farmlink/internal/audit"
	"farmlink/internal/auth"
	"farmlink/internal/config"
	"farmlink/internal/dto"
	"farmlink/internal/mail"
	"farmlink/internal/models"
	"farmlink/internal/repository"
)

var (
	ErrInvalidCredentials = apperr.Unauthorized("Invalid email or password")
	ErrEmailInUse         = apperr.Conflict("Email already exists")
	ErrInvalidResetToken  = apperr.BadRequest("Invalid or expired token")
	ErrInvalidToken       = apperr.Unauthorized("Invalid or expired token")
)

// The reset-request response never reveals whether the account exists.
const resetRequestedMessage = "If an account with that email exists, a password reset email has been sent."

// Claims bind a user's identity and role into a bearer token.
type Claims struct {
	UserID string `json:"id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type AuthService interface {
	Signup(ctx context.Context, req *dto.SignupRequest, client audit.ClientInfo) (*dto.AuthResponse, error)
	Login(ctx context.Context, email, password string, client audit.ClientInfo) (*dto.AuthResponse, error)
	// RequestPasswordReset always yields the same message for existing and
	// unknown accounts; only delivery failures surface as errors.
	RequestPasswordReset(ctx context.Context, email string, client audit.ClientInfo) (string, error)
	ResetPassword(ctx context.Context, token, newPassword string, client audit.ClientInfo) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type authService struct {
	store       repository.Store
	cipher      *auth.FieldCipher
	mailer      mail.Mailer
	recorder    audit.Recorder
	jwtSecret   string
	jwtExpiry   time.Duration
	resetExpiry time.Duration
	frontendURL string
}

func NewAuthService(
	store repository.Store,
	cipher *auth.FieldCipher,
	mailer mail.Mailer,
	recorder audit.Recorder,
	cfg *config.Config,
) AuthService {
	return &authService{
		store:       store,
		cipher:      cipher,
		mailer:      mailer,
		recorder:    recorder,
		jwtSecret:   cfg.JWTSecret,
		jwtExpiry:   cfg.JWTExpiry,
		resetExpiry: cfg.ResetTokenExpiry,
		frontendURL: cfg.FrontendURL,
	}
}

// Signup registers a new user and signs them in.
func (s *authService) Signup(ctx context.Context, req *dto.SignupRequest, client audit.ClientInfo) (*dto.AuthResponse, error) {
	if _, err := s.store.Users().FindByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailInUse
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = models.RoleFarmer
	}

	user := &models.User{
		ID:                 uuid.New().String(),
		Email:              req.Email,
		Password:           hashedPassword,
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		PhoneNumber:        req.PhoneNumber,
		Role:               role,
		Country:            req.Country,
		County:             req.County,
		SubCounty:          req.SubCounty,
		Latitude:           req.Latitude,
		Longitude:          req.Longitude,
		AvatarURL:          req.AvatarURL,
		VerificationStatus: models.NotVerified,
	}

	// Supplying an id number verifies the account; the number itself is
	// only ever stored encrypted.
	if req.IDNumber != nil && *req.IDNumber != "" {
		encrypted, err := s.cipher.Encrypt(*req.IDNumber)
		if err != nil {
			return nil, err
		}
		user.IDNumber = &encrypted
		user.VerificationStatus = models.Verified
	}

	if err := s.store.Users().Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}

	s.recorder.Record(&user.ID, models.ActionUserRegistered, strPtr("USER"), &user.ID, client.Details())

	return &dto.AuthResponse{User: dto.FromModelToUserProfile(user), Token: token}, nil
}

// Login authenticates a user and returns the signed-in profile and token.
func (s *authService) Login(ctx context.Context, email, password string, client audit.ClientInfo) (*dto.AuthResponse, error) {
	user, err := s.store.Users().FindByEmail(ctx, email)
	if err != nil {
		// Dummy compare so that unknown emails take as long as bad passwords.
		auth.VerifyPassword(auth.DummyHash, password)
		return nil, ErrInvalidCredentials
	}

	if err := auth.VerifyPassword(user.Password, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}

	s.recorder.Record(&user.ID, models.ActionUserLogin, strPtr("USER"), &user.ID, client.Details())

	return &dto.AuthResponse{User: dto.FromModelToUserProfile(user), Token: token}, nil
}

func (s *authService) RequestPasswordReset(ctx context.Context, email string, client audit.ClientInfo) (string, error) {
	user, err := s.store.Users().FindByEmail(ctx, email)
	if err != nil {
		// Same message either way; account enumeration stays impossible.
		return resetRequestedMessage, nil
	}

	resetToken := &models.PasswordResetToken{
		Token:     uuid.New().String(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(s.resetExpiry),
	}
	if err := s.store.ResetTokens().Create(ctx, resetToken); err != nil {
		return "", err
	}

	resetLink := fmt.Sprintf("%s/reset-password?token=%s", s.frontendURL, resetToken.Token)
	body := fmt.Sprintf("Click this link to reset your password: %s. This link is valid for %s.",
		resetLink, s.resetExpiry)

	if err := s.mailer.Send(user.Email, "Password Reset Request", body); err != nil {
		details := client.Details()
		details["error"] = "Email send failed"
		s.recorder.Record(&user.ID, models.ActionPasswordResetRequested, strPtr("USER"), &user.ID, details)
		return "", apperr.Internal("Failed to send password reset email. Please try again later.")
	}

	s.recorder.Record(&user.ID, models.ActionPasswordResetRequested, strPtr("USER"), &user.ID, client.Details())

	return resetRequestedMessage, nil
}

func (s *authService) ResetPassword(ctx context.Context, token, newPassword string, client audit.ClientInfo) (string, error) {
	resetToken, err := s.store.ResetTokens().FindByToken(ctx, token)
	if err != nil {
		return "", ErrInvalidResetToken
	}
	if time.Now().After(resetToken.ExpiresAt) {
		return "", ErrInvalidResetToken
	}

	hashedPassword, err := auth.HashPassword(newPassword)
	if err != nil {
		return "", err
	}

	// Password update and token consumption succeed or fail together; the
	// delete also guards against a concurrent consumer of the same token.
	err = s.store.WithTransaction(ctx, func(tx repository.Store) error {
		if err := tx.Users().UpdatePassword(ctx, resetToken.UserID, hashedPassword); err != nil {
			return err
		}
		return tx.ResetTokens().DeleteByToken(ctx, token)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidResetToken
		}
		details := client.Details()
		details["error"] = "Transaction failed"
		s.recorder.Record(&resetToken.UserID, models.ActionPasswordReset, strPtr("USER"), &resetToken.UserID, details)
		return "", apperr.Internal("Failed to reset password. Please try again.")
	}

	s.recorder.Record(&resetToken.UserID, models.ActionPasswordReset, strPtr("USER"), &resetToken.UserID,
		client.Details())

	return "Password has been reset successfully.", nil
}

func (s *authService) issueToken(user *models.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtExpiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

func (s *authService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func strPtr(s string) *string {
	return &s
}
