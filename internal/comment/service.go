package comment

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/itemshare/item-sharing-backend/internal/item"
	"github.com/itemshare/item-sharing-backend/internal/user"
)

type Service interface {
	// Post creates a comment, provided the author completed an approved
	// booking of the item before now.
	Post(ctx context.Context, authorID, itemID, text string) (*Comment, error)

	// MayComment reports whether the user has at least one finished,
	// approved booking of the item. Pure predicate, no side effects.
	MayComment(ctx context.Context, userID, itemID string, now time.Time) (bool, error)
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

func (s *service) Post(ctx context.Context, authorID, itemID, text string) (*Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrTextRequired
	}

	now := time.Now().UTC()

	eligible, err := s.MayComment(ctx, authorID, itemID, now)
	if err != nil {
		return nil, err
	}
	if !eligible {
		return nil, ErrNoCompletedBooking
	}

	author, err := s.userService.GetByID(ctx, authorID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrAuthorNotFound
		}
		return nil, err
	}

	if _, err := s.itemService.GetByID(ctx, itemID); err != nil {
		if errors.Is(err, item.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	cm := &Comment{
		Text:       text,
		ItemID:     itemID,
		AuthorID:   authorID,
		AuthorName: author.Name,
	}

	if err := s.repo.Create(ctx, cm); err != nil {
		return nil, err
	}
	return cm, nil
}

func (s *service) MayComment(ctx context.Context, userID, itemID string, now time.Time) (bool, error) {
	return s.repo.HasCompletedApprovedBooking(ctx, userID, itemID, now)
}
