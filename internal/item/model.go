package item

import (
	"errors"
	"time"
)

var (
	ErrNotFound            = errors.New("item not found")
	ErrOwnerNotFound       = errors.New("owner not found")
	ErrNameRequired        = errors.New("name is required")
	ErrDescriptionRequired = errors.New("description is required")
	ErrAvailableRequired   = errors.New("available flag is required")
	ErrNotOwner            = errors.New("only the owner can edit the item")
)

// Item represents a thing a user shares with others.
type Item struct {
	ID          string // UUID
	Name        string
	Description string
	Available   bool
	OwnerID     string
	RequestID   *string // set when the item answers an item request
	CreatedAt   time.Time
}

// BookingTag holds minimal booking info for the owner's item view.
type BookingTag struct {
	ID       string
	Start    time.Time
	End      time.Time
	BookerID string
	Status   string
}

// CommentTag holds a comment as shown in item views.
type CommentTag struct {
	ID         string
	Text       string
	AuthorName string
	CreatedAt  time.Time
}

// Info is the item detail view. Edge bookings are only populated
// when the requester owns the item.
type Info struct {
	Item
	LastBooking *BookingTag
	NextBooking *BookingTag
	Comments    []CommentTag
}
