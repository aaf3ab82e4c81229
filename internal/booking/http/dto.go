package http

import (
	"time"

	"github.com/itemshare/item-sharing-backend/internal/booking"
	itemHttp "github.com/itemshare/item-sharing-backend/internal/item/http"
	userHttp "github.com/itemshare/item-sharing-backend/internal/user/http"
)

type BookingResponse struct {
	ID        string           `json:"id"`
	Start     time.Time        `json:"start"`
	End       time.Time        `json:"end"`
	Status    string           `json:"status"`
	Booker    userHttp.UserTag `json:"booker"`
	Item      itemHttp.ItemTag `json:"item"`
	CreatedAt time.Time        `json:"created_at"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:     b.ID,
		Start:  b.Start,
		End:    b.End,
		Status: string(b.Status),
		Booker: userHttp.UserTag{ID: b.BookerID, Name: b.BookerName},
		Item: itemHttp.ItemTag{
			ID:        b.ItemID,
			Name:      b.ItemName,
			OwnerID:   b.ItemOwnerID,
			Available: b.ItemAvailable,
		},
		CreatedAt: b.CreatedAt,
	}
}

type CreateBookingRequest struct {
	ItemID string    `json:"item_id" binding:"required,uuid"`
	Start  time.Time `json:"start" binding:"required"`
	End    time.Time `json:"end" binding:"required"`
}

type DecideBookingRequest struct {
	Approved *bool `form:"approved" binding:"required"`
}

type ListBookingsRequest struct {
	State string `form:"state,default=ALL"`
	From  int    `form:"from,default=0"`
	Size  int    `form:"size,default=10"`
}
