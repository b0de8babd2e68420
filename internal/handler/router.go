package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"farmlink/internal/middleware"
	"farmlink/internal/service"
)

// Router owns the handlers and wires them onto the Gin engine.
type Router struct {
	authHandler     *AuthHandler
	userHandler     *UserHandler
	ratingHandler   *RatingHandler
	feedbackHandler *FeedbackHandler
	productHandler  *ProductHandler

	authService service.AuthService
	limiter     *middleware.RateLimiter
}

func NewRouter(
	authService service.AuthService,
	profileService service.ProfileService,
	ratingService service.RatingService,
	feedbackService service.FeedbackService,
	productService service.ProductService,
	limiter *middleware.RateLimiter,
) *Router {
	return &Router{
		authHandler:     NewAuthHandler(authService),
		userHandler:     NewUserHandler(profileService),
		ratingHandler:   NewRatingHandler(ratingService),
		feedbackHandler: NewFeedbackHandler(feedbackService),
		productHandler:  NewProductHandler(productService),
		authService:     authService,
		limiter:         limiter,
	}
}

// SetupRoutes registers every route on the engine.
func (r *Router) SetupRoutes(engine *gin.Engine) {
	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := engine.Group("/api")
	{
		r.authHandler.RegisterRoutes(api, r.limiter.AuthLimit())
		r.feedbackHandler.RegisterRoutes(api, middleware.AuthOptional(r.authService), r.limiter.FeedbackLimit())
		r.productHandler.RegisterRoutes(api)

		// Everything on this group requires a valid token; the general
		// limiter keys off the authenticated user id.
		authenticated := api.Group("")
		authenticated.Use(middleware.AuthRequired(r.authService), r.limiter.GeneralLimit())
		{
			r.userHandler.RegisterRoutes(authenticated)
		}

		// Farmer ratings are a public read; only submitting needs a token.
		r.ratingHandler.RegisterRoutes(api, authenticated)
	}
}
