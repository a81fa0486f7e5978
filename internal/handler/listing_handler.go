package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ChesterTeam/UniMarket/internal/catalog"
	"github.com/ChesterTeam/UniMarket/internal/middleware"
	"github.com/ChesterTeam/UniMarket/internal/model"
	"github.com/ChesterTeam/UniMarket/internal/service"
)

// maxPageSize caps page_size the same way the original API did.
const maxPageSize = 100

// ListingHandler exposes catalog browsing and listing CRUD.
type ListingHandler struct {
	Catalog *service.CatalogService
	Log     *zap.Logger
}

// RegisterRoutes wires the listing routes. Reads are public; writes require
// an authenticated user.
func (h *ListingHandler) RegisterRoutes(public, protected *gin.RouterGroup) {
	public.GET("/listings", h.Search)
	public.GET("/listings/:id", h.Get)
	public.GET("/suggestions", h.Suggest)

	protected.POST("/listings", h.Create)
	protected.PUT("/listings/:id", h.Update)
	protected.DELETE("/listings/:id", h.Delete)
	protected.PUT("/listings/:id/refresh-rating", h.RefreshRating)
	protected.GET("/my/listings", h.MyListings)
}

// GET /api/listings?q=&category=&min_price=&max_price=&condition=&min_rating=&sort=&page=&page_size=
func (h *ListingHandler) Search(c *gin.Context) {
	spec := catalog.FilterSpec{
		Category:   c.DefaultQuery("category", "all"),
		Search:     c.Query("q"),
		Conditions: c.QueryArray("condition"),
		Sort:       c.DefaultQuery("sort", catalog.SortDateDesc),
		Page:       1,
		PageSize:   catalog.DefaultPageSize,
	}
	if v := c.Query("min_price"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			spec.MinPrice = &p
		}
	}
	if v := c.Query("max_price"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			spec.MaxPrice = &p
		}
	}
	if v := c.Query("min_rating"); v != "" {
		if r, err := strconv.ParseFloat(v, 64); err == nil {
			spec.MinRating = r
		}
	}
	if v := c.Query("page"); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 {
			spec.Page = p
		}
	}
	if v := c.Query("page_size"); v != "" {
		if ps, err := strconv.Atoi(v); err == nil && ps > 0 {
			if ps > maxPageSize {
				ps = maxPageSize
			}
			spec.PageSize = ps
		}
	}

	result, err := h.Catalog.Search(c.Request.Context(), spec)
	if err != nil {
		h.Log.Error("catalog search failed", zap.Error(err))
		respondError(c, err)
		return
	}
	if result.Items == nil {
		result.Items = []model.Listing{}
	}
	c.JSON(http.StatusOK, result)
}

// GET /api/listings/:id
func (h *ListingHandler) Get(c *gin.Context) {
	l, err := h.Catalog.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, l)
}

// GET /api/suggestions?q=&limit=
func (h *ListingHandler) Suggest(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	suggestions, err := h.Catalog.Suggest(c.Request.Context(), c.Query("q"), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	if suggestions == nil {
		suggestions = []catalog.Suggestion{}
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}

// CreateListingRequest carries the fields a client sends to create a
// listing. The seller comes from the session, never from the payload.
type CreateListingRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Price       *int     `json:"price" binding:"required"`
	Category    string   `json:"category" binding:"required"`
	Condition   string   `json:"condition" binding:"required"`
	Images      []string `json:"images"`
	Status      string   `json:"status"`
}

// POST /api/listings
func (h *ListingHandler) Create(c *gin.Context) {
	var req CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	l, err := h.Catalog.Create(c.Request.Context(), middleware.UserID(c), service.CreateListingInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       *req.Price,
		Category:    req.Category,
		Condition:   req.Condition,
		Images:      req.Images,
		Status:      req.Status,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, l)
}

// UpdateListingRequest carries a partial listing update; absent fields stay
// unchanged.
type UpdateListingRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Price       *int     `json:"price"`
	Category    *string  `json:"category"`
	Condition   *string  `json:"condition"`
	Images      []string `json:"images"`
	Status      *string  `json:"status"`
}

// PUT /api/listings/:id
func (h *ListingHandler) Update(c *gin.Context) {
	var req UpdateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	l, err := h.Catalog.Update(c.Request.Context(), middleware.UserID(c), c.Param("id"), service.UpdateListingInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Condition:   req.Condition,
		Images:      req.Images,
		Status:      req.Status,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, l)
}

// DELETE /api/listings/:id
func (h *ListingHandler) Delete(c *gin.Context) {
	if err := h.Catalog.Delete(c.Request.Context(), middleware.UserID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// PUT /api/listings/:id/refresh-rating
func (h *ListingHandler) RefreshRating(c *gin.Context) {
	l, err := h.Catalog.RefreshSellerRating(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, l)
}

// GET /api/my/listings
func (h *ListingHandler) MyListings(c *gin.Context) {
	list, err := h.Catalog.UserListings(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	if list == nil {
		list = []model.Listing{}
	}
	c.JSON(http.StatusOK, list)
}
