package http

import (
	"time"

	itemHttp "github.com/itemshare/item-sharing-backend/internal/item/http"
	"github.com/itemshare/item-sharing-backend/internal/itemrequest"
)

type ItemRequestResponse struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	RequestorID string    `json:"requestor_id"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewItemRequestResponse(req *itemrequest.ItemRequest) ItemRequestResponse {
	return ItemRequestResponse{
		ID:          req.ID,
		Description: req.Description,
		RequestorID: req.RequestorID,
		CreatedAt:   req.CreatedAt,
	}
}

type ItemRequestWithItemsResponse struct {
	ItemRequestResponse
	Items []itemHttp.ItemResponse `json:"items"`
}

func NewItemRequestWithItemsResponse(wi *itemrequest.WithItems) ItemRequestWithItemsResponse {
	items := make([]itemHttp.ItemResponse, len(wi.Items))
	for i, it := range wi.Items {
		items[i] = itemHttp.NewItemResponse(it)
	}
	return ItemRequestWithItemsResponse{
		ItemRequestResponse: NewItemRequestResponse(&wi.ItemRequest),
		Items:               items,
	}
}

type CreateItemRequestRequest struct {
	Description string `json:"description" binding:"required"`
}

type ListItemRequestsRequest struct {
	From int `form:"from,default=0"`
	Size int `form:"size,default=10"`
}
