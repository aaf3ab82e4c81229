package http

import (
	"time"

	"github.com/itemshare/item-sharing-backend/internal/item"
)

// ItemTag holds the item snapshot embedded in booking responses.
type ItemTag struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	OwnerID   string `json:"owner_id"`
	Available bool   `json:"available"`
}

type ItemResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Available   bool      `json:"available"`
	OwnerID     string    `json:"owner_id"`
	RequestID   *string   `json:"request_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewItemResponse(it *item.Item) ItemResponse {
	return ItemResponse{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Available:   it.Available,
		OwnerID:     it.OwnerID,
		RequestID:   it.RequestID,
		CreatedAt:   it.CreatedAt,
	}
}

type BookingTagResponse struct {
	ID       string    `json:"id"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	BookerID string    `json:"booker_id"`
	Status   string    `json:"status"`
}

type CommentResponse struct {
	ID         string    `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"author_name"`
	CreatedAt  time.Time `json:"created_at"`
}

type ItemInfoResponse struct {
	ItemResponse
	LastBooking *BookingTagResponse `json:"last_booking"`
	NextBooking *BookingTagResponse `json:"next_booking"`
	Comments    []CommentResponse   `json:"comments"`
}

func NewItemInfoResponse(info *item.Info) ItemInfoResponse {
	resp := ItemInfoResponse{
		ItemResponse: NewItemResponse(&info.Item),
		Comments:     make([]CommentResponse, 0, len(info.Comments)),
	}
	if info.LastBooking != nil {
		resp.LastBooking = newBookingTagResponse(info.LastBooking)
	}
	if info.NextBooking != nil {
		resp.NextBooking = newBookingTagResponse(info.NextBooking)
	}
	for _, cm := range info.Comments {
		resp.Comments = append(resp.Comments, CommentResponse{
			ID:         cm.ID,
			Text:       cm.Text,
			AuthorName: cm.AuthorName,
			CreatedAt:  cm.CreatedAt,
		})
	}
	return resp
}

func newBookingTagResponse(t *item.BookingTag) *BookingTagResponse {
	return &BookingTagResponse{
		ID:       t.ID,
		Start:    t.Start,
		End:      t.End,
		BookerID: t.BookerID,
		Status:   t.Status,
	}
}

type CreateItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Available   *bool   `json:"available" binding:"required"`
	RequestID   *string `json:"request_id" binding:"omitempty,uuid"`
}

type UpdateItemRequest struct {
	Name        *string `json:"name" binding:"omitempty"`
	Description *string `json:"description" binding:"omitempty"`
	Available   *bool   `json:"available" binding:"omitempty"`
}

type ListItemsRequest struct {
	From int `form:"from,default=0"`
	Size int `form:"size,default=10"`
}

type SearchItemsRequest struct {
	Text string `form:"text"`
	From int    `form:"from,default=0"`
	Size int    `form:"size,default=10"`
}
