package booking

import (
	"context"
	"errors"
	"time"

	"github.com/itemshare/item-sharing-backend/internal/item"
	"github.com/itemshare/item-sharing-backend/internal/pkg/request"
	"github.com/itemshare/item-sharing-backend/internal/user"
)

type CreateRequest struct {
	ItemID string
	Start  time.Time
	End    time.Time
}

type Service interface {
	Create(ctx context.Context, bookerID string, req CreateRequest) (*Booking, error)
	Decide(ctx context.Context, actorID, bookingID string, approved bool) (*Booking, error)
	GetByID(ctx context.Context, actorID, bookingID string) (*Booking, error)
	ListByBooker(ctx context.Context, actorID, state string, window request.PageWindow) ([]*Booking, error)
	ListByOwner(ctx context.Context, actorID, state string, window request.PageWindow) ([]*Booking, error)
}

type service struct {
	repo        Repository
	userService user.Service
	itemService item.Service
}

func NewService(repo Repository, userService user.Service, itemService item.Service) Service {
	return &service{
		repo:        repo,
		userService: userService,
		itemService: itemService,
	}
}

func (s *service) Create(ctx context.Context, bookerID string, req CreateRequest) (*Booking, error) {
	now := time.Now().UTC()

	it, err := s.createValidation(ctx, bookerID, req, now)
	if err != nil {
		return nil, err
	}

	b := &Booking{
		Start:    req.Start,
		End:      req.End,
		Status:   StatusWaiting,
		ItemID:   it.ID,
		BookerID: bookerID,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	// Re-read for the hydrated booker and item snapshots.
	return s.repo.GetByID(ctx, b.ID)
}

// createValidation gates booking creation. Every check runs before anything
// is written; the check order is part of the contract.
func (s *service) createValidation(ctx context.Context, bookerID string, req CreateRequest, now time.Time) (*item.Item, error) {
	if _, err := s.userService.GetByID(ctx, bookerID); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	it, err := s.itemService.GetByID(ctx, req.ItemID)
	if err != nil {
		if errors.Is(err, item.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	if !req.End.After(now) {
		return nil, ErrEndInPast
	}
	if !req.End.After(req.Start) {
		return nil, ErrEndBeforeStart
	}
	if !req.Start.After(now) {
		return nil, ErrStartInPast
	}
	if !it.Available {
		return nil, ErrItemUnavailable
	}
	if it.OwnerID == bookerID {
		return nil, ErrOwnItem
	}

	return it, nil
}

func (s *service) Decide(ctx context.Context, actorID, bookingID string, approved bool) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if b.ItemOwnerID != actorID {
		return nil, ErrNotItemOwner
	}

	if b.Status == StatusApproved {
		return nil, ErrAlreadyApproved
	}

	status := StatusRejected
	if approved {
		status = StatusApproved
	}

	// Conditional write: a concurrent decision that already approved the
	// booking makes this a no-op and surfaces as a conflict.
	if err := s.repo.UpdateStatus(ctx, bookingID, status); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, bookingID)
}

func (s *service) GetByID(ctx context.Context, actorID, bookingID string) (*Booking, error) {
	if _, err := s.userService.GetByID(ctx, actorID); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	b, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if b.BookerID != actorID && b.ItemOwnerID != actorID {
		return nil, ErrNotParticipant
	}

	return b, nil
}

func (s *service) ListByBooker(ctx context.Context, actorID, state string, window request.PageWindow) ([]*Booking, error) {
	bucket, err := ParseBucket(state)
	if err != nil {
		return nil, err
	}

	if _, err := s.userService.GetByID(ctx, actorID); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	now := time.Now().UTC()
	return s.repo.ListByBooker(ctx, actorID, bucket, window, now)
}

func (s *service) ListByOwner(ctx context.Context, actorID, state string, window request.PageWindow) ([]*Booking, error) {
	bucket, err := ParseBucket(state)
	if err != nil {
		return nil, err
	}

	if _, err := s.userService.GetByID(ctx, actorID); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	now := time.Now().UTC()
	return s.repo.ListByOwner(ctx, actorID, bucket, window, now)
}
