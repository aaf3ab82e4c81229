package http

import (
	"time"

	"github.com/itemshare/item-sharing-backend/internal/comment"
)

type CommentResponse struct {
	ID         string    `json:"id"`
	Text       string    `json:"text"`
	ItemID     string    `json:"item_id"`
	AuthorName string    `json:"author_name"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewCommentResponse(cm *comment.Comment) CommentResponse {
	return CommentResponse{
		ID:         cm.ID,
		Text:       cm.Text,
		ItemID:     cm.ItemID,
		AuthorName: cm.AuthorName,
		CreatedAt:  cm.CreatedAt,
	}
}

type PostCommentRequest struct {
	Text string `json:"text" binding:"required"`
}
