package dto

// Data Transfer Objects for authentication requests and responses

// LoginRequest: payload for user login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SignupRequest: payload for user registration
type SignupRequest struct {
	Email       string   `json:"email" binding:"required,email"`
	Password    string   `json:"password" binding:"required,min=6"`
	FirstName   string   `json:"firstName" binding:"required,min=1"`
	LastName    string   `json:"lastName" binding:"required,min=1"`
	PhoneNumber *string  `json:"phoneNumber,omitempty"`
	Role        string   `json:"role,omitempty" binding:"omitempty,oneof=FARMER BUYER ADMIN"`
	Country     string   `json:"country" binding:"required,oneof=KENYA UGANDA TANZANIA"`
	County      *string  `json:"county,omitempty"`
	SubCounty   *string  `json:"subCounty,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty" binding:"omitempty,min=-90,max=90"`
	Longitude   *float64 `json:"longitude,omitempty" binding:"omitempty,min=-180,max=180"`
	IDNumber    *string  `json:"idNumber,omitempty"`
	AvatarURL   *string  `json:"avatarUrl,omitempty" binding:"omitempty,url"`
}

// AuthResponse: response payload after successful login or signup
type AuthResponse struct {
	User  UserProfile `json:"user"`
	Token string      `json:"token"`
}

// RequestPasswordResetRequest: payload for requesting a reset email
type RequestPasswordResetRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest: payload for completing a password reset
type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

// MessageResponse: generic message-only response body
type MessageResponse struct {
	Message string `json:"message"`
}
