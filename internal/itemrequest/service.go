package itemrequest

import (
	"context"
	"errors"
	"strings"

	"github.com/itemshare/item-sharing-backend/internal/item"
	"github.com/itemshare/item-sharing-backend/internal/pkg/request"
	"github.com/itemshare/item-sharing-backend/internal/user"
)

type Service interface {
	Create(ctx context.Context, requestorID, description string) (*ItemRequest, error)
	GetByID(ctx context.Context, actorID, requestID string) (*WithItems, error)
	ListOwn(ctx context.Context, actorID string) ([]*WithItems, error)
	ListAll(ctx context.Context, actorID string, window request.PageWindow) ([]*WithItems, error)
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

func (s *service) checkUser(ctx context.Context, id string) error {
	if _, err := s.userService.GetByID(ctx, id); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return ErrRequestorNotFound
		}
		return err
	}
	return nil
}

func (s *service) Create(ctx context.Context, requestorID, description string) (*ItemRequest, error) {
	if strings.TrimSpace(description) == "" {
		return nil, ErrDescriptionRequired
	}
	if err := s.checkUser(ctx, requestorID); err != nil {
		return nil, err
	}

	req := &ItemRequest{
		Description: description,
		RequestorID: requestorID,
	}

	if err := s.repo.Create(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *service) GetByID(ctx context.Context, actorID, requestID string) (*WithItems, error) {
	if err := s.checkUser(ctx, actorID); err != nil {
		return nil, err
	}

	req, err := s.repo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	return s.attachItems(ctx, req)
}

func (s *service) ListOwn(ctx context.Context, actorID string) ([]*WithItems, error) {
	if err := s.checkUser(ctx, actorID); err != nil {
		return nil, err
	}

	reqs, err := s.repo.ListByRequestor(ctx, actorID)
	if err != nil {
		return nil, err
	}

	return s.attachItemsAll(ctx, reqs)
}

func (s *service) ListAll(ctx context.Context, actorID string, window request.PageWindow) ([]*WithItems, error) {
	if err := s.checkUser(ctx, actorID); err != nil {
		return nil, err
	}

	// Requests made by the actor are excluded: the listing shows what
	// others are looking for.
	reqs, err := s.repo.ListAllExcept(ctx, actorID, window)
	if err != nil {
		return nil, err
	}

	return s.attachItemsAll(ctx, reqs)
}

func (s *service) attachItems(ctx context.Context, req *ItemRequest) (*WithItems, error) {
	items, err := s.itemService.ListByRequest(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*item.Item{}
	}
	return &WithItems{ItemRequest: *req, Items: items}, nil
}

func (s *service) attachItemsAll(ctx context.Context, reqs []*ItemRequest) ([]*WithItems, error) {
	result := make([]*WithItems, 0, len(reqs))
	for _, req := range reqs {
		wi, err := s.attachItems(ctx, req)
		if err != nil {
			return nil, err
		}
		result = append(result, wi)
	}
	return result, nil
}
