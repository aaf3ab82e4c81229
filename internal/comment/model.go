package comment

import (
	"errors"
	"time"
)

var (
	ErrTextRequired       = errors.New("comment text cannot be blank")
	ErrNoCompletedBooking = errors.New("commenting requires a completed booking of the item")
	ErrAuthorNotFound     = errors.New("author not found")
	ErrItemNotFound       = errors.New("item not found")
)

// Comment is feedback left on an item by a user who finished an
// approved booking of it.
type Comment struct {
	ID         string // UUID
	Text       string
	ItemID     string
	AuthorID   string
	AuthorName string
	CreatedAt  time.Time
}
