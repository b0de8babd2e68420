package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"farmlink/internal/dto"
	"farmlink/internal/service"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRoutes registers authentication routes. The rate limiter runs
// before any credential lookup.
func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup, authLimit gin.HandlerFunc) {
	auth := router.Group("/auth")
	{
		auth.POST("/login", authLimit, h.Login)
		auth.POST("/signup", authLimit, h.Signup)
		auth.POST("/request-password-reset", authLimit, h.RequestPasswordReset)
		auth.POST("/reset-password", authLimit, h.ResetPassword)
	}
}

// Signup creates a new account and returns the profile with a session token.
// POST /api/auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	resp, err := h.authService.Signup(c.Request.Context(), &req, clientInfo(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Login authenticates by email and password.
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), req.Email, req.Password, clientInfo(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// RequestPasswordReset issues a reset token and emails it to the account.
// The response does not reveal whether the account exists.
// POST /api/auth/request-password-reset
func (h *AuthHandler) RequestPasswordReset(c *gin.Context) {
	var req dto.RequestPasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	message, err := h.authService.RequestPasswordReset(c.Request.Context(), req.Email, clientInfo(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: message})
}

// ResetPassword consumes a reset token and sets the new password.
// POST /api/auth/reset-password
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	message, err := h.authService.ResetPassword(c.Request.Context(), req.Token, req.NewPassword, clientInfo(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: message})
}
