package user_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itemshare/item-sharing-backend/internal/user"
)

// fakeRepository mirrors the pgx repository against a map, including the
// unique-email behavior.
type fakeRepository struct {
	users map[string]*user.User
	seq   int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{users: map[string]*user.User{}}
}

func (f *fakeRepository) emailTaken(email, excludeID string) bool {
	for _, u := range f.users {
		if u.Email == email && u.ID != excludeID {
			return true
		}
	}
	return false
}

func (f *fakeRepository) Create(ctx context.Context, u *user.User) error {
	if f.emailTaken(u.Email, "") {
		return user.ErrEmailAlreadyUsed
	}
	f.seq++
	u.ID = fmt.Sprintf("00000000-0000-0000-0000-%012d", f.seq)
	u.CreatedAt = time.Now().UTC()
	clone := *u
	f.users[u.ID] = &clone
	return nil
}

func (f *fakeRepository) GetByID(ctx context.Context, id string) (*user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	clone := *u
	return &clone, nil
}

func (f *fakeRepository) List(ctx context.Context) ([]*user.User, error) {
	var users []*user.User
	for _, u := range f.users {
		clone := *u
		users = append(users, &clone)
	}
	return users, nil
}

func (f *fakeRepository) Update(ctx context.Context, u *user.User) error {
	if _, ok := f.users[u.ID]; !ok {
		return user.ErrNotFound
	}
	if f.emailTaken(u.Email, u.ID) {
		return user.ErrEmailAlreadyUsed
	}
	clone := *u
	f.users[u.ID] = &clone
	return nil
}

func (f *fakeRepository) Delete(ctx context.Context, id string) error {
	if _, ok := f.users[id]; !ok {
		return user.ErrNotFound
	}
	delete(f.users, id)
	return nil
}

func strPtr(s string) *string { return &s }

func TestCreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("creates and normalizes the email", func(t *testing.T) {
		svc := user.NewService(newFakeRepository())

		u, err := svc.Create(ctx, user.CreateRequest{Name: "  Olga ", Email: " Olga@Example.COM "})
		require.NoError(t, err)
		assert.Equal(t, "Olga", u.Name)
		assert.Equal(t, "olga@example.com", u.Email)
		assert.NotEmpty(t, u.ID)
	})

	t.Run("blank name", func(t *testing.T) {
		svc := user.NewService(newFakeRepository())

		_, err := svc.Create(ctx, user.CreateRequest{Name: "   ", Email: "a@b.com"})
		assert.ErrorIs(t, err, user.ErrNameRequired)
	})

	t.Run("blank email", func(t *testing.T) {
		svc := user.NewService(newFakeRepository())

		_, err := svc.Create(ctx, user.CreateRequest{Name: "Olga", Email: "  "})
		assert.ErrorIs(t, err, user.ErrEmailRequired)
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc := user.NewService(newFakeRepository())

		_, err := svc.Create(ctx, user.CreateRequest{Name: "Olga", Email: "olga@example.com"})
		require.NoError(t, err)

		_, err = svc.Create(ctx, user.CreateRequest{Name: "Other", Email: "OLGA@example.com"})
		assert.ErrorIs(t, err, user.ErrEmailAlreadyUsed)
	})
}

func TestUpdateUser(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (user.Service, string) {
		t.Helper()
		svc := user.NewService(newFakeRepository())
		u, err := svc.Create(ctx, user.CreateRequest{Name: "Olga", Email: "olga@example.com"})
		require.NoError(t, err)
		return svc, u.ID
	}

	t.Run("partial update keeps unset fields", func(t *testing.T) {
		svc, id := setup(t)

		u, err := svc.Update(ctx, id, user.UpdateRequest{Name: strPtr("Olya")})
		require.NoError(t, err)
		assert.Equal(t, "Olya", u.Name)
		assert.Equal(t, "olga@example.com", u.Email)

		u, err = svc.Update(ctx, id, user.UpdateRequest{Email: strPtr("New@Example.com")})
		require.NoError(t, err)
		assert.Equal(t, "Olya", u.Name)
		assert.Equal(t, "new@example.com", u.Email)
	})

	t.Run("blank values are rejected", func(t *testing.T) {
		svc, id := setup(t)

		_, err := svc.Update(ctx, id, user.UpdateRequest{Name: strPtr("  ")})
		assert.ErrorIs(t, err, user.ErrNameRequired)

		_, err = svc.Update(ctx, id, user.UpdateRequest{Email: strPtr("")})
		assert.ErrorIs(t, err, user.ErrEmailRequired)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc, _ := setup(t)

		_, err := svc.Update(ctx, "99999999-9999-9999-9999-999999999999", user.UpdateRequest{Name: strPtr("X")})
		assert.ErrorIs(t, err, user.ErrNotFound)
	})

	t.Run("email collision with another user", func(t *testing.T) {
		svc, id := setup(t)
		_, err := svc.Create(ctx, user.CreateRequest{Name: "Boris", Email: "boris@example.com"})
		require.NoError(t, err)

		_, err = svc.Update(ctx, id, user.UpdateRequest{Email: strPtr("boris@example.com")})
		assert.ErrorIs(t, err, user.ErrEmailAlreadyUsed)
	})
}

func TestDeleteUser(t *testing.T) {
	ctx := context.Background()
	svc := user.NewService(newFakeRepository())

	u, err := svc.Create(ctx, user.CreateRequest{Name: "Olga", Email: "olga@example.com"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, u.ID))

	_, err = svc.GetByID(ctx, u.ID)
	assert.ErrorIs(t, err, user.ErrNotFound)

	err = svc.Delete(ctx, u.ID)
	assert.ErrorIs(t, err, user.ErrNotFound)
}
