package item

import (
	"context"
	"errors"
	"strings"

	"github.com/itemshare/item-sharing-backend/internal/pkg/request"
	"github.com/itemshare/item-sharing-backend/internal/user"
)

type CreateRequest struct {
	Name        string
	Description string
	Available   *bool
	RequestID   *string
}

type UpdateRequest struct {
	Name        *string
	Description *string
	Available   *bool
}

type Service interface {
	Create(ctx context.Context, ownerID string, req CreateRequest) (*Item, error)
	Update(ctx context.Context, actorID, itemID string, req UpdateRequest) (*Item, error)
	GetByID(ctx context.Context, itemID string) (*Item, error)
	GetInfo(ctx context.Context, actorID, itemID string) (*Info, error)
	ListByOwner(ctx context.Context, ownerID string, window request.PageWindow) ([]*Info, error)
	Search(ctx context.Context, text string, window request.PageWindow) ([]*Item, error)
	ListByRequest(ctx context.Context, requestID string) ([]*Item, error)
}

type service struct {
	repo        Repository
	userService user.Service
}

func NewService(repo Repository, userService user.Service) Service {
	return &service{
		repo:        repo,
		userService: userService,
	}
}

func (s *service) Create(ctx context.Context, ownerID string, req CreateRequest) (*Item, error) {
	if _, err := s.userService.GetByID(ctx, ownerID); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrOwnerNotFound
		}
		return nil, err
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrNameRequired
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, ErrDescriptionRequired
	}
	if req.Available == nil {
		return nil, ErrAvailableRequired
	}

	it := &Item{
		Name:        req.Name,
		Description: req.Description,
		Available:   *req.Available,
		OwnerID:     ownerID,
		RequestID:   req.RequestID,
	}

	if err := s.repo.Create(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

func (s *service) Update(ctx context.Context, actorID, itemID string, req UpdateRequest) (*Item, error) {
	it, err := s.repo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if it.OwnerID != actorID {
		return nil, ErrNotOwner
	}

	if req.Name != nil {
		it.Name = *req.Name
	}
	if req.Description != nil {
		it.Description = *req.Description
	}
	if req.Available != nil {
		it.Available = *req.Available
	}

	if err := s.repo.Update(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

func (s *service) GetByID(ctx context.Context, itemID string) (*Item, error) {
	return s.repo.GetByID(ctx, itemID)
}

func (s *service) GetInfo(ctx context.Context, actorID, itemID string) (*Info, error) {
	it, err := s.repo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	info := &Info{Item: *it}

	// Edge bookings are scoped to the owner: the query filters on the
	// requesting user owning the item, so non-owners get none.
	last, next, err := s.repo.EdgeBookings(ctx, actorID, itemID)
	if err != nil {
		return nil, err
	}
	info.LastBooking = last
	info.NextBooking = next

	comments, err := s.repo.ListItemComments(ctx, itemID)
	if err != nil {
		return nil, err
	}
	info.Comments = comments

	return info, nil
}

func (s *service) ListByOwner(ctx context.Context, ownerID string, window request.PageWindow) ([]*Info, error) {
	items, err := s.repo.ListByOwner(ctx, ownerID, window)
	if err != nil {
		return nil, err
	}

	infos := make([]*Info, 0, len(items))
	for _, it := range items {
		info, err := s.GetInfo(ctx, ownerID, it.ID)
		if err != nil {
			return nil, err
		}
		infos = append(infos, info)
	}
	return infos, nil
}

func (s *service) Search(ctx context.Context, text string, window request.PageWindow) ([]*Item, error) {
	// A blank query matches nothing rather than everything.
	if strings.TrimSpace(text) == "" {
		return []*Item{}, nil
	}
	return s.repo.Search(ctx, text, window)
}

func (s *service) ListByRequest(ctx context.Context, requestID string) ([]*Item, error) {
	return s.repo.ListByRequest(ctx, requestID)
}
