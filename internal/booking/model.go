package booking

import (
	"net/http"
	"strings"
	"time"

	"github.com/itemshare/item-sharing-backend/internal/pkg/apperror"
)

var (
	ErrNotFound        = apperror.New(http.StatusNotFound, "booking not found")
	ErrUserNotFound    = apperror.New(http.StatusNotFound, "user not found")
	ErrItemNotFound    = apperror.New(http.StatusNotFound, "item not found")
	ErrEndInPast       = apperror.New(http.StatusBadRequest, "end time cannot be in the past")
	ErrEndBeforeStart  = apperror.New(http.StatusBadRequest, "end time must be after start time")
	ErrStartInPast     = apperror.New(http.StatusBadRequest, "start time cannot be in the past")
	ErrItemUnavailable = apperror.New(http.StatusConflict, "item is not available for booking")
	ErrOwnItem         = apperror.New(http.StatusForbidden, "cannot book your own item")
	ErrNotItemOwner    = apperror.New(http.StatusForbidden, "only the item owner can decide a booking")
	ErrNotParticipant  = apperror.New(http.StatusForbidden, "only the booker or the item owner can view a booking")
	ErrAlreadyApproved = apperror.New(http.StatusConflict, "booking is already approved")
)

// Status is the stored decision state of a booking.
// Every booking starts WAITING; APPROVED is terminal.
type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// Bucket names a listing filter. CURRENT/FUTURE/PAST are derived from
// start/end against "now" at query time and never stored.
type Bucket string

const (
	BucketAll      Bucket = "ALL"
	BucketCurrent  Bucket = "CURRENT"
	BucketFuture   Bucket = "FUTURE"
	BucketPast     Bucket = "PAST"
	BucketApproved Bucket = "APPROVED"
	BucketRejected Bucket = "REJECTED"
	BucketWaiting  Bucket = "WAITING"
)

// ParseBucket matches a state string case-insensitively against the known
// buckets. Unknown values are rejected, never treated as ALL.
func ParseBucket(s string) (Bucket, error) {
	switch b := Bucket(strings.ToUpper(s)); b {
	case BucketAll, BucketCurrent, BucketFuture, BucketPast, BucketApproved, BucketRejected, BucketWaiting:
		return b, nil
	default:
		return "", apperror.Newf(http.StatusBadRequest, "unknown state: %s", s)
	}
}

// Booking is the central entity: a time-bounded request to borrow an item.
// The item and booker snapshot fields are hydrated by joined reads.
type Booking struct {
	ID            string
	Start         time.Time
	End           time.Time
	Status        Status
	ItemID        string
	ItemName      string
	ItemOwnerID   string
	ItemAvailable bool
	BookerID      string
	BookerName    string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
