package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/itemshare/item-sharing-backend/internal/comment"
	"github.com/itemshare/item-sharing-backend/internal/identity"
	"github.com/itemshare/item-sharing-backend/internal/pkg/request"
)

type Handler struct {
	service comment.Service
}

func NewHandler(service comment.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Post(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	var body PostCommentRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	authorID := identity.GetUserID(c)

	cm, err := h.service.Post(c.Request.Context(), authorID, req.ID, body.Text)
	if err != nil {
		switch {
		case errors.Is(err, comment.ErrTextRequired), errors.Is(err, comment.ErrNoCompletedBooking):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, comment.ErrAuthorNotFound), errors.Is(err, comment.ErrItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to post comment"})
		}
		return
	}

	c.JSON(http.StatusCreated, NewCommentResponse(cm))
}
