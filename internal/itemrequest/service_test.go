package itemrequest_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itemshare/item-sharing-backend/internal/item"
	"github.com/itemshare/item-sharing-backend/internal/itemrequest"
	"github.com/itemshare/item-sharing-backend/internal/pkg/request"
	"github.com/itemshare/item-sharing-backend/internal/user"
)

const (
	requestorID = "11111111-1111-1111-1111-111111111111"
	otherID     = "22222222-2222-2222-2222-222222222222"
)

type fakeUserService struct {
	users map[string]*user.User
}

func (f *fakeUserService) Create(ctx context.Context, req user.CreateRequest) (*user.User, error) {
	panic("not used")
}

func (f *fakeUserService) GetByID(ctx context.Context, id string) (*user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserService) List(ctx context.Context) ([]*user.User, error) { panic("not used") }

func (f *fakeUserService) Update(ctx context.Context, id string, req user.UpdateRequest) (*user.User, error) {
	panic("not used")
}

func (f *fakeUserService) Delete(ctx context.Context, id string) error { panic("not used") }

type fakeItemService struct {
	byRequest map[string][]*item.Item
}

func (f *fakeItemService) Create(ctx context.Context, ownerID string, req item.CreateRequest) (*item.Item, error) {
	panic("not used")
}

func (f *fakeItemService) Update(ctx context.Context, actorID, itemID string, req item.UpdateRequest) (*item.Item, error) {
	panic("not used")
}

func (f *fakeItemService) GetByID(ctx context.Context, itemID string) (*item.Item, error) {
	panic("not used")
}

func (f *fakeItemService) GetInfo(ctx context.Context, actorID, itemID string) (*item.Info, error) {
	panic("not used")
}

func (f *fakeItemService) ListByOwner(ctx context.Context, ownerID string, window request.PageWindow) ([]*item.Info, error) {
	panic("not used")
}

func (f *fakeItemService) Search(ctx context.Context, text string, window request.PageWindow) ([]*item.Item, error) {
	panic("not used")
}

func (f *fakeItemService) ListByRequest(ctx context.Context, requestID string) ([]*item.Item, error) {
	return f.byRequest[requestID], nil
}

type fakeRepository struct {
	requests map[string]*itemrequest.ItemRequest
	seq      int
}

func (f *fakeRepository) Create(ctx context.Context, req *itemrequest.ItemRequest) error {
	f.seq++
	req.ID = fmt.Sprintf("00000000-0000-0000-0000-%012d", f.seq)
	req.CreatedAt = time.Now().UTC()
	clone := *req
	f.requests[req.ID] = &clone
	return nil
}

func (f *fakeRepository) GetByID(ctx context.Context, id string) (*itemrequest.ItemRequest, error) {
	req, ok := f.requests[id]
	if !ok {
		return nil, itemrequest.ErrNotFound
	}
	clone := *req
	return &clone, nil
}

func (f *fakeRepository) ListByRequestor(ctx context.Context, requestorID string) ([]*itemrequest.ItemRequest, error) {
	var reqs []*itemrequest.ItemRequest
	for _, req := range f.requests {
		if req.RequestorID == requestorID {
			clone := *req
			reqs = append(reqs, &clone)
		}
	}
	return reqs, nil
}

func (f *fakeRepository) ListAllExcept(ctx context.Context, requestorID string, window request.PageWindow) ([]*itemrequest.ItemRequest, error) {
	var reqs []*itemrequest.ItemRequest
	for _, req := range f.requests {
		if req.RequestorID != requestorID {
			clone := *req
			reqs = append(reqs, &clone)
		}
	}
	return reqs, nil
}

func newFixture() (itemrequest.Service, *fakeItemService) {
	repo := &fakeRepository{requests: map[string]*itemrequest.ItemRequest{}}
	users := &fakeUserService{users: map[string]*user.User{
		requestorID: {ID: requestorID, Name: "Boris", Email: "boris@example.com"},
		otherID:     {ID: otherID, Name: "Olga", Email: "olga@example.com"},
	}}
	items := &fakeItemService{byRequest: map[string][]*item.Item{}}
	return itemrequest.NewService(repo, users, items), items
}

func window(t *testing.T) request.PageWindow {
	t.Helper()
	w, err := request.NewPageWindow(0, 10)
	require.NoError(t, err)
	return w
}

func TestCreateItemRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("valid request", func(t *testing.T) {
		svc, _ := newFixture()

		req, err := svc.Create(ctx, requestorID, "Looking for a drill")
		require.NoError(t, err)
		assert.Equal(t, requestorID, req.RequestorID)
		assert.NotEmpty(t, req.ID)
	})

	t.Run("blank description", func(t *testing.T) {
		svc, _ := newFixture()

		_, err := svc.Create(ctx, requestorID, "   ")
		assert.ErrorIs(t, err, itemrequest.ErrDescriptionRequired)
	})

	t.Run("unknown requestor", func(t *testing.T) {
		svc, _ := newFixture()

		_, err := svc.Create(ctx, "99999999-9999-9999-9999-999999999999", "Looking for a drill")
		assert.ErrorIs(t, err, itemrequest.ErrRequestorNotFound)
	})
}

func TestGetItemRequest(t *testing.T) {
	ctx := context.Background()
	svc, items := newFixture()

	req, err := svc.Create(ctx, requestorID, "Looking for a drill")
	require.NoError(t, err)

	items.byRequest[req.ID] = []*item.Item{{ID: "i1", Name: "Drill", OwnerID: otherID}}

	t.Run("any known user can read, with offered items attached", func(t *testing.T) {
		got, err := svc.GetByID(ctx, otherID, req.ID)
		require.NoError(t, err)
		assert.Equal(t, req.ID, got.ID)
		require.Len(t, got.Items, 1)
		assert.Equal(t, "Drill", got.Items[0].Name)
	})

	t.Run("items default to empty, not nil", func(t *testing.T) {
		other, err := svc.Create(ctx, requestorID, "Looking for a ladder")
		require.NoError(t, err)

		got, err := svc.GetByID(ctx, requestorID, other.ID)
		require.NoError(t, err)
		assert.NotNil(t, got.Items)
		assert.Empty(t, got.Items)
	})

	t.Run("unknown request", func(t *testing.T) {
		_, err := svc.GetByID(ctx, requestorID, "99999999-9999-9999-9999-999999999999")
		assert.ErrorIs(t, err, itemrequest.ErrNotFound)
	})

	t.Run("unknown actor", func(t *testing.T) {
		_, err := svc.GetByID(ctx, "99999999-9999-9999-9999-999999999999", req.ID)
		assert.ErrorIs(t, err, itemrequest.ErrRequestorNotFound)
	})
}

func TestListItemRequests(t *testing.T) {
	ctx := context.Background()
	svc, _ := newFixture()

	mine, err := svc.Create(ctx, requestorID, "Looking for a drill")
	require.NoError(t, err)
	theirs, err := svc.Create(ctx, otherID, "Looking for a ladder")
	require.NoError(t, err)

	t.Run("own listing shows only the actor's requests", func(t *testing.T) {
		got, err := svc.ListOwn(ctx, requestorID)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, mine.ID, got[0].ID)
	})

	t.Run("all listing excludes the actor's own requests", func(t *testing.T) {
		got, err := svc.ListAll(ctx, requestorID, window(t))
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, theirs.ID, got[0].ID)
	})
}
