package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"farmlink/internal/dto"
	"farmlink/internal/middleware"
	"farmlink/internal/models"
	"farmlink/internal/service"
)

type RatingHandler struct {
	ratingService service.RatingService
}

func NewRatingHandler(ratingService service.RatingService) *RatingHandler {
	return &RatingHandler{ratingService: ratingService}
}

// RegisterRoutes registers rating routes. A farmer's ratings are public
// reads; submitting one requires an authenticated buyer.
func (h *RatingHandler) RegisterRoutes(public, authenticated *gin.RouterGroup) {
	public.GET("/ratings/farmer/:farmerId", h.FarmerRatings)
	authenticated.POST("/ratings", middleware.RequireRoles(models.RoleBuyer), h.Submit)
}

// Submit records a buyer's rating of a farmer and returns it with the
// recomputed average already persisted.
// POST /api/ratings
func (h *RatingHandler) Submit(c *gin.Context) {
	raterID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return
	}

	var req dto.CreateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	rating, err := h.ratingService.Submit(c.Request.Context(), raterID, &req, clientInfo(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rating)
}

// FarmerRatings lists a farmer's ratings newest first along with the stored
// average.
// GET /api/ratings/farmer/:farmerId
func (h *RatingHandler) FarmerRatings(c *gin.Context) {
	farmerID := c.Param("farmerId")
	if _, err := uuid.Parse(farmerID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid farmer ID"})
		return
	}

	resp, err := h.ratingService.FarmerRatings(c.Request.Context(), farmerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
