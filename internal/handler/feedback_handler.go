package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"farmlink/internal/dto"
	"farmlink/internal/middleware"
	"farmlink/internal/service"
)

type FeedbackHandler struct {
	feedbackService service.FeedbackService
}

func NewFeedbackHandler(feedbackService service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: feedbackService}
}

// RegisterRoutes registers the feedback route. Authentication is optional
// so anonymous visitors can submit too.
func (h *FeedbackHandler) RegisterRoutes(router *gin.RouterGroup, authOptional, feedbackLimit gin.HandlerFunc) {
	router.POST("/feedback", feedbackLimit, authOptional, h.Submit)
}

// Submit stores platform feedback from an anonymous or signed-in caller.
// POST /api/feedback
func (h *FeedbackHandler) Submit(c *gin.Context) {
	var req dto.CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	var userID *string
	if id, ok := middleware.UserID(c); ok {
		userID = &id
	}

	resp, err := h.feedbackService.Submit(c.Request.Context(), userID, &req, clientInfo(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}
