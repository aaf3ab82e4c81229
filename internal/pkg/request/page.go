package request

import (
	"net/http"

	"github.com/itemshare/item-sharing-backend/internal/pkg/apperror"
)

var (
	ErrNegativeOffset  = apperror.New(http.StatusBadRequest, "from must not be negative")
	ErrNonPositiveSize = apperror.New(http.StatusBadRequest, "size must be positive")
)

// PageWindow is a validated offset/limit pair used by every listing operation.
type PageWindow struct {
	from int
	size int
}

// NewPageWindow validates the from (offset) and size (limit) parameters.
func NewPageWindow(from, size int) (PageWindow, error) {
	if from < 0 {
		return PageWindow{}, ErrNegativeOffset
	}
	if size <= 0 {
		return PageWindow{}, ErrNonPositiveSize
	}
	return PageWindow{from: from, size: size}, nil
}

// Offset returns the number of rows to skip.
func (w PageWindow) Offset() uint64 {
	return uint64(w.from)
}

// Limit returns the maximum number of rows to return.
func (w PageWindow) Limit() uint64 {
	return uint64(w.size)
}
