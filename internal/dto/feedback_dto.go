package dto

// CreateFeedbackRequest: payload for anonymous or authenticated feedback
type CreateFeedbackRequest struct {
	Name    *string `json:"name,omitempty"`
	Rating  int     `json:"rating" binding:"required,min=1,max=5"`
	Comment string  `json:"comment" binding:"required,max=1000"`
}

// FeedbackResponse: acknowledgement with the created feedback id
type FeedbackResponse struct {
	Message    string `json:"message"`
	FeedbackID string `json:"feedbackId"`
}
