package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ChesterTeam/UniMarket/internal/middleware"
	"github.com/ChesterTeam/UniMarket/internal/service"
)

// UserHandler exposes registration, login and profile routes.
type UserHandler struct {
	Auth *service.AuthService
	Log  *zap.Logger
}

func (h *UserHandler) RegisterRoutes(public, protected *gin.RouterGroup) {
	public.POST("/register", h.Register)
	public.POST("/login", h.Login)
	public.GET("/users/:id", h.GetUser)

	protected.GET("/me", h.Me)
	protected.PUT("/me/avatar", h.UpdateAvatar)
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// POST /api/register
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	u, err := h.Auth.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	h.Log.Info("user registered", zap.String("user_id", u.ID))
	c.JSON(http.StatusCreated, u)
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /api/login
func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	u, token, err := h.Auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": u, "token": token})
}

// GET /api/users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	u, err := h.Auth.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// GET /api/me
func (h *UserHandler) Me(c *gin.Context) {
	u, err := h.Auth.GetUser(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

type UpdateAvatarRequest struct {
	Avatar string `json:"avatar" binding:"required"`
}

// PUT /api/me/avatar
func (h *UserHandler) UpdateAvatar(c *gin.Context) {
	var req UpdateAvatarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if err := h.Auth.UpdateAvatar(c.Request.Context(), middleware.UserID(c), req.Avatar); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "avatar updated"})
}
