package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ChesterTeam/UniMarket/internal/middleware"
	"github.com/ChesterTeam/UniMarket/internal/model"
	"github.com/ChesterTeam/UniMarket/internal/service"
)

// ReviewHandler exposes seller reviews attached to listings.
type ReviewHandler struct {
	Reviews *service.ReviewService
	Log     *zap.Logger
}

func (h *ReviewHandler) RegisterRoutes(public, protected *gin.RouterGroup) {
	public.GET("/listings/:id/reviews", h.List)
	protected.POST("/listings/:id/reviews", h.Create)
}

type CreateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// POST /api/listings/:id/reviews
func (h *ReviewHandler) Create(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	rev, err := h.Reviews.CreateReview(c.Request.Context(), middleware.UserID(c), c.Param("id"), req.Rating, req.Comment)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rev)
}

// GET /api/listings/:id/reviews
func (h *ReviewHandler) List(c *gin.Context) {
	reviews, err := h.Reviews.ListReviews(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if reviews == nil {
		reviews = []model.Review{}
	}
	c.JSON(http.StatusOK, reviews)
}
