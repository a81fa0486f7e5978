package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ChesterTeam/UniMarket/internal/middleware"
	"github.com/ChesterTeam/UniMarket/internal/model"
	"github.com/ChesterTeam/UniMarket/internal/service"
)

// MessageHandler exposes the listing chat. All routes require an
// authenticated user.
type MessageHandler struct {
	Chat *service.ChatService
	Log  *zap.Logger
}

func (h *MessageHandler) RegisterRoutes(protected *gin.RouterGroup) {
	protected.POST("/messages", h.Send)
	protected.GET("/listings/:id/messages", h.Conversation)
	protected.GET("/messages/unread", h.UnreadCount)
	protected.PUT("/messages/:id/read", h.MarkRead)
}

type SendMessageRequest struct {
	ListingID  string `json:"listingId" binding:"required"`
	ReceiverID string `json:"receiverId"`
	Body       string `json:"body" binding:"required"`
}

// POST /api/messages
func (h *MessageHandler) Send(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	msg, reply, err := h.Chat.Send(c.Request.Context(), middleware.UserID(c), req.ListingID, req.ReceiverID, req.Body)
	if err != nil {
		respondError(c, err)
		return
	}
	resp := gin.H{"message": msg}
	if reply != nil {
		resp["reply"] = reply
	}
	c.JSON(http.StatusCreated, resp)
}

// GET /api/listings/:id/messages
func (h *MessageHandler) Conversation(c *gin.Context) {
	msgs, err := h.Chat.Conversation(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if msgs == nil {
		msgs = []model.Message{}
	}
	c.JSON(http.StatusOK, msgs)
}

// GET /api/messages/unread
func (h *MessageHandler) UnreadCount(c *gin.Context) {
	n, err := h.Chat.UnreadCount(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"unread": n})
}

// PUT /api/messages/:id/read
func (h *MessageHandler) MarkRead(c *gin.Context) {
	if err := h.Chat.MarkRead(c.Request.Context(), middleware.UserID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "read"})
}
