package comment_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itemshare/item-sharing-backend/internal/booking"
	"github.com/itemshare/item-sharing-backend/internal/comment"
	"github.com/itemshare/item-sharing-backend/internal/item"
	"github.com/itemshare/item-sharing-backend/internal/pkg/request"
	"github.com/itemshare/item-sharing-backend/internal/user"
)

const (
	authorID   = "11111111-1111-1111-1111-111111111111"
	ownerID    = "22222222-2222-2222-2222-222222222222"
	itemID     = "33333333-3333-3333-3333-333333333333"
	strangerID = "44444444-4444-4444-4444-444444444444"
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
	items map[string]*item.Item
}

func (f *fakeItemService) Create(ctx context.Context, ownerID string, req item.CreateRequest) (*item.Item, error) {
	panic("not used")
}

func (f *fakeItemService) Update(ctx context.Context, actorID, itemID string, req item.UpdateRequest) (*item.Item, error) {
	panic("not used")
}

func (f *fakeItemService) GetByID(ctx context.Context, itemID string) (*item.Item, error) {
	it, ok := f.items[itemID]
	if !ok {
		return nil, item.ErrNotFound
	}
	return it, nil
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
	panic("not used")
}

type bookingRecord struct {
	bookerID string
	itemID   string
	end      time.Time
	status   booking.Status
}

type fakeRepository struct {
	records  []bookingRecord
	comments []*comment.Comment
	seq      int
}

func (f *fakeRepository) Create(ctx context.Context, cm *comment.Comment) error {
	f.seq++
	cm.ID = fmt.Sprintf("00000000-0000-0000-0000-%012d", f.seq)
	cm.CreatedAt = time.Now().UTC()
	clone := *cm
	f.comments = append(f.comments, &clone)
	return nil
}

func (f *fakeRepository) HasCompletedApprovedBooking(ctx context.Context, userID, itemID string, before time.Time) (bool, error) {
	for _, rec := range f.records {
		if rec.bookerID == userID && rec.itemID == itemID &&
			rec.end.Before(before) && rec.status == booking.StatusApproved {
			return true, nil
		}
	}
	return false, nil
}

func newFixture() (comment.Service, *fakeRepository) {
	repo := &fakeRepository{}
	users := &fakeUserService{users: map[string]*user.User{
		authorID:   {ID: authorID, Name: "Boris", Email: "boris@example.com"},
		ownerID:    {ID: ownerID, Name: "Olga", Email: "olga@example.com"},
		strangerID: {ID: strangerID, Name: "Sasha", Email: "sasha@example.com"},
	}}
	items := &fakeItemService{items: map[string]*item.Item{
		itemID: {ID: itemID, Name: "Drill", Available: true, OwnerID: ownerID},
	}}
	return comment.NewService(repo, users, items), repo
}

func TestPostComment(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("author of a finished approved booking may comment", func(t *testing.T) {
		svc, repo := newFixture()
		repo.records = append(repo.records, bookingRecord{
			bookerID: authorID, itemID: itemID,
			end: now.Add(-time.Hour), status: booking.StatusApproved,
		})

		cm, err := svc.Post(ctx, authorID, itemID, "Great drill")
		require.NoError(t, err)
		assert.Equal(t, "Great drill", cm.Text)
		assert.Equal(t, authorID, cm.AuthorID)
		assert.Equal(t, "Boris", cm.AuthorName)
		assert.Equal(t, itemID, cm.ItemID)
		assert.NotEmpty(t, cm.ID)
	})

	t.Run("blank text", func(t *testing.T) {
		svc, _ := newFixture()

		_, err := svc.Post(ctx, authorID, itemID, "   ")
		assert.ErrorIs(t, err, comment.ErrTextRequired)
	})

	t.Run("no booking at all", func(t *testing.T) {
		svc, _ := newFixture()

		_, err := svc.Post(ctx, authorID, itemID, "Never touched it")
		assert.ErrorIs(t, err, comment.ErrNoCompletedBooking)
	})

	t.Run("finished but never approved", func(t *testing.T) {
		for _, status := range []booking.Status{booking.StatusWaiting, booking.StatusRejected} {
			svc, repo := newFixture()
			repo.records = append(repo.records, bookingRecord{
				bookerID: authorID, itemID: itemID,
				end: now.Add(-time.Hour), status: status,
			})

			_, err := svc.Post(ctx, authorID, itemID, "text")
			assert.ErrorIs(t, err, comment.ErrNoCompletedBooking, status)
		}
	})

	t.Run("approved but not finished yet", func(t *testing.T) {
		svc, repo := newFixture()
		repo.records = append(repo.records, bookingRecord{
			bookerID: authorID, itemID: itemID,
			end: now.Add(time.Hour), status: booking.StatusApproved,
		})

		_, err := svc.Post(ctx, authorID, itemID, "Still using it")
		assert.ErrorIs(t, err, comment.ErrNoCompletedBooking)
	})

	t.Run("someone else finished a booking, not the author", func(t *testing.T) {
		svc, repo := newFixture()
		repo.records = append(repo.records, bookingRecord{
			bookerID: strangerID, itemID: itemID,
			end: now.Add(-time.Hour), status: booking.StatusApproved,
		})

		_, err := svc.Post(ctx, authorID, itemID, "text")
		assert.ErrorIs(t, err, comment.ErrNoCompletedBooking)
	})
}

func TestMayComment(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	svc, repo := newFixture()
	repo.records = append(repo.records, bookingRecord{
		bookerID: authorID, itemID: itemID,
		end: now.Add(-time.Hour), status: booking.StatusApproved,
	})

	ok, err := svc.MayComment(ctx, authorID, itemID, now)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.MayComment(ctx, strangerID, itemID, now)
	require.NoError(t, err)
	assert.False(t, ok)

	// The predicate is relative to the given time, not wall clock.
	ok, err = svc.MayComment(ctx, authorID, itemID, now.Add(-2*time.Hour))
	require.NoError(t, err)
	assert.False(t, ok)
}
