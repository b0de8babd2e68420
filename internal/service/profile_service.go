package service

import (
	"context"

	"gorm.io/gorm"

	"farmlink/internal/apperr"
	"farmlink/internal/audit"
	"farmlink/internal/auth"
	"farmlink/internal/cache"
	"farmlink/internal/dto"
	"farmlink/internal/media"
	"farmlink/internal/models"
	"farmlink/internal/repository"
	"farmlink/internal/validator"
)

var (
	ErrUserNotFound     = apperr.NotFound("User not found")
	ErrEmptyPatch       = apperr.BadRequest("No valid fields provided for update.")
	ErrInvalidAvatarURL = apperr.BadRequest("Invalid avatar URL")
)

type ProfileService interface {
	GetProfile(ctx context.Context, userID string) (*dto.UserProfile, error)
	UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest, client audit.ClientInfo) (*dto.UserProfile, error)
}

type profileService struct {
	store     repository.Store
	profiles  *cache.ProfileCache
	cipher    *auth.FieldCipher
	recorder  audit.Recorder
	validator *validator.Validator
}

func NewProfileService(
	store repository.Store,
	profiles *cache.ProfileCache,
	cipher *auth.FieldCipher,
	recorder audit.Recorder,
	v *validator.Validator,
) ProfileService {
	return &profileService{
		store:     store,
		profiles:  profiles,
		cipher:    cipher,
		recorder:  recorder,
		validator: v,
	}
}

// GetProfile serves the cached projection when present and falls back to
// the canonical record, populating the cache on the way out.
func (s *profileService) GetProfile(ctx context.Context, userID string) (*dto.UserProfile, error) {
	if cached, err := s.profiles.Get(ctx, userID); err == nil {
		return cached, nil
	}

	user, err := s.store.Users().FindByID(ctx, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	profile := dto.FromModelToUserProfile(user)
	s.profiles.Set(ctx, &profile)

	return &profile, nil
}

// UpdateProfile applies a partial update, writes the canonical record and
// then writes the fresh projection through to the cache.
func (s *profileService) UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest, client audit.ClientInfo) (*dto.UserProfile, error) {
	if req.IsEmpty() {
		return nil, ErrEmptyPatch
	}

	if fieldErrs := s.validator.Struct(req); fieldErrs != nil {
		return nil, apperr.BadRequest("Validation failed").WithDetails(fieldErrs)
	}

	if req.AvatarURL != nil && !media.ValidAvatarURL(*req.AvatarURL) {
		return nil, ErrInvalidAvatarURL
	}

	updates := map[string]any{}
	if req.FirstName != nil {
		updates["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		updates["last_name"] = *req.LastName
	}
	if req.PhoneNumber != nil {
		updates["phone_number"] = *req.PhoneNumber
	}
	if req.Country != nil {
		updates["country"] = *req.Country
	}
	if req.County != nil {
		updates["county"] = *req.County
	}
	if req.SubCounty != nil {
		updates["sub_county"] = *req.SubCounty
	}
	if req.Latitude != nil {
		updates["latitude"] = *req.Latitude
	}
	if req.Longitude != nil {
		updates["longitude"] = *req.Longitude
	}
	if req.AvatarURL != nil {
		updates["avatar_url"] = *req.AvatarURL
	}
	if req.IDNumber != nil && *req.IDNumber != "" {
		encrypted, err := s.cipher.Encrypt(*req.IDNumber)
		if err != nil {
			return nil, err
		}
		updates["id_number"] = encrypted
		// Supplying an id number verifies the account. Whether a changed
		// id number should instead reset verification is an open policy
		// decision; today it never downgrades.
		updates["verification_status"] = models.Verified
	}

	user, err := s.store.Users().Update(ctx, userID, updates)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	profile := dto.FromModelToUserProfile(user)
	s.profiles.Set(ctx, &profile)

	details := client.Details()
	details["updatedFields"] = req.UpdatedFields()
	s.recorder.Record(&userID, models.ActionProfileUpdated, strPtr("USER"), &user.ID, details)

	return &profile, nil
}
