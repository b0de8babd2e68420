package dto

import (
	"time"

	"farmlink/internal/models"
)

// UserProfile is the denormalized projection of a user record returned to
// clients and stored in the profile cache. The password hash and encrypted
// id number never appear here.
type UserProfile struct {
	ID                 string    `json:"id"`
	Email              string    `json:"email"`
	FirstName          string    `json:"firstName"`
	LastName           string    `json:"lastName"`
	PhoneNumber        *string   `json:"phoneNumber,omitempty"`
	Role               string    `json:"role"`
	Country            string    `json:"country"`
	County             *string   `json:"county,omitempty"`
	SubCounty          *string   `json:"subCounty,omitempty"`
	Latitude           *float64  `json:"latitude,omitempty"`
	Longitude          *float64  `json:"longitude,omitempty"`
	VerificationStatus string    `json:"verificationStatus"`
	AvatarURL          *string   `json:"avatarUrl,omitempty"`
	AverageRating      *float64  `json:"averageRating"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// FromModelToUserProfile builds the client projection of a user record.
func FromModelToUserProfile(user *models.User) UserProfile {
	return UserProfile{
		ID:                 user.ID,
		Email:              user.Email,
		FirstName:          user.FirstName,
		LastName:           user.LastName,
		PhoneNumber:        user.PhoneNumber,
		Role:               user.Role,
		Country:            user.Country,
		County:             user.County,
		SubCounty:          user.SubCounty,
		Latitude:           user.Latitude,
		Longitude:          user.Longitude,
		VerificationStatus: user.VerificationStatus,
		AvatarURL:          user.AvatarURL,
		AverageRating:      user.AverageRating,
		CreatedAt:          user.CreatedAt,
		UpdatedAt:          user.UpdatedAt,
	}
}

// UpdateProfileRequest: payload for partial profile updates. Every field is
// optional; the service rejects requests that carry none of them.
type UpdateProfileRequest struct {
	FirstName   *string  `json:"firstName,omitempty" binding:"omitempty,min=1"`
	LastName    *string  `json:"lastName,omitempty" binding:"omitempty,min=1"`
	PhoneNumber *string  `json:"phoneNumber,omitempty"`
	Country     *string  `json:"country,omitempty" binding:"omitempty,oneof=KENYA UGANDA TANZANIA"`
	County      *string  `json:"county,omitempty"`
	SubCounty   *string  `json:"subCounty,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty" binding:"omitempty,min=-90,max=90"`
	Longitude   *float64 `json:"longitude,omitempty" binding:"omitempty,min=-180,max=180"`
	IDNumber    *string  `json:"idNumber,omitempty"`
	AvatarURL   *string  `json:"avatarUrl,omitempty" binding:"omitempty,url"`
}

// IsEmpty reports whether the patch carries no recognized field.
func (r *UpdateProfileRequest) IsEmpty() bool {
	return r.FirstName == nil && r.LastName == nil && r.PhoneNumber == nil &&
		r.Country == nil && r.County == nil && r.SubCounty == nil &&
		r.Latitude == nil && r.Longitude == nil && r.IDNumber == nil &&
		r.AvatarURL == nil
}

// UpdatedFields lists the names of the fields present in the patch,
// recorded in the audit trail.
func (r *UpdateProfileRequest) UpdatedFields() []string {
	fields := make([]string, 0, 10)
	if r.FirstName != nil {
		fields = append(fields, "firstName")
	}
	if r.LastName != nil {
		fields = append(fields, "lastName")
	}
	if r.PhoneNumber != nil {
		fields = append(fields, "phoneNumber")
	}
	if r.Country != nil {
		fields = append(fields, "country")
	}
	if r.County != nil {
		fields = append(fields, "county")
	}
	if r.SubCounty != nil {
		fields = append(fields, "subCounty")
	}
	if r.Latitude != nil {
		fields = append(fields, "latitude")
	}
	if r.Longitude != nil {
		fields = append(fields, "longitude")
	}
	if r.IDNumber != nil {
		fields = append(fields, "idNumber")
	}
	if r.AvatarURL != nil {
		fields = append(fields, "avatarUrl")
	}
	return fields
}
