package itemrequest

import (
	"errors"
	"time"

	"github.com/itemshare/item-sharing-backend/internal/item"
)

var (
	ErrNotFound            = errors.New("item request not found")
	ErrDescriptionRequired = errors.New("description is required")
	ErrRequestorNotFound   = errors.New("requestor not found")
)

// ItemRequest is a "looking for X" note; owners can answer it by
// listing an item referencing the request.
type ItemRequest struct {
	ID          string // UUID
	Description string
	RequestorID string
	CreatedAt   time.Time
}

// WithItems is the request detail view including the items offered for it.
type WithItems struct {
	ItemRequest
	Items []*item.Item
}
