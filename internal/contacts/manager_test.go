// Tests for the business rules layered above contact storage: phone
// uniqueness and the per-owner access guard.
package contacts

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukaforge/rolodex/internal/sqlite"
	"github.com/dukaforge/rolodex/pkg/types"
)

// fixture wires a manager over a fresh store with two registered users.
type fixture struct {
	manager *Manager
	alice   *Session
	bob     *Session
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	s := sqlite.NewStore(nil)
	cfg := types.Config{
		Backend: types.BackendSQLite,
		DataDir: t.TempDir(),
	}
	require.NoError(t, s.Open(cfg))
	t.Cleanup(func() { _ = s.Close() })

	ctx := context.Background()
	aliceID, err := s.AddUser(ctx, "alice", "secret")
	require.NoError(t, err)
	bobID, err := s.AddUser(ctx, "bob", "secret")
	require.NoError(t, err)

	m := NewManager(s, nil)
	return &fixture{
		manager: m,
		alice:   m.ForUser(aliceID),
		bob:     m.ForUser(bobID),
	}
}

func TestSessionAdd(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	id, err := f.alice.Add(ctx, "Ivan", "Petrov", "1234567", "ivan@gogle.com")
	require.NoError(t, err)
	assert.Positive(t, id)

	got, err := f.alice.Details(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, f.alice.UserID(), got.UserID)
	assert.Equal(t, "Ivan", got.FirstName)
}

func TestSessionAdd_DuplicatePhone(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.alice.Add(ctx, "Ivan", "Petrov", "1234567", "ivan@gogle.com")
	require.NoError(t, err)

	t.Run("same owner", func(t *testing.T) {
		_, err := f.alice.Add(ctx, "Anna", "Ivanova", "1234567", "anna@gogle.com")
		assert.ErrorIs(t, err, types.ErrDuplicatePhone)
	})

	t.Run("uniqueness is global across owners", func(t *testing.T) {
		_, err := f.bob.Add(ctx, "Ivan", "Smirnov", "1234567", "smirnov@gogle.com")
		assert.ErrorIs(t, err, types.ErrDuplicatePhone)
	})

	t.Run("rejected add leaves the list unchanged", func(t *testing.T) {
		list, err := f.alice.List(ctx)
		require.NoError(t, err)
		assert.Len(t, list, 1)
		list, err = f.bob.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, list)
	})
}

func TestSessionEdit(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	id, err := f.alice.Add(ctx, "Ivan", "Petrov", "1234567", "ivan@gogle.com")
	require.NoError(t, err)

	t.Run("owner can edit", func(t *testing.T) {
		require.NoError(t, f.alice.Edit(ctx, id, "", "", "7654321", ""))
		got, err := f.alice.Details(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "7654321", got.Phone)
		assert.Equal(t, "Ivan", got.FirstName)
	})

	t.Run("another user cannot edit", func(t *testing.T) {
		err := f.bob.Edit(ctx, id, "Mallory", "", "", "")
		assert.ErrorIs(t, err, types.ErrNotOwner)

		got, err := f.alice.Details(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Ivan", got.FirstName)
	})

	t.Run("missing contact reports not found", func(t *testing.T) {
		assert.ErrorIs(t, f.alice.Edit(ctx, 99999, "Ivan", "", "", ""), types.ErrNotFound)
	})
}

func TestSessionDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	id, err := f.alice.Add(ctx, "Ivan", "Petrov", "1234567", "ivan@gogle.com")
	require.NoError(t, err)

	t.Run("another user cannot delete", func(t *testing.T) {
		assert.ErrorIs(t, f.bob.Delete(ctx, id), types.ErrNotOwner)

		_, err := f.alice.Details(ctx, id)
		assert.NoError(t, err)
	})

	t.Run("owner can delete", func(t *testing.T) {
		require.NoError(t, f.alice.Delete(ctx, id))
		_, err := f.alice.Details(ctx, id)
		assert.ErrorIs(t, err, types.ErrNotFound)
	})

	t.Run("deleting again succeeds", func(t *testing.T) {
		assert.NoError(t, f.alice.Delete(ctx, id))
	})

	t.Run("deleting an id that never existed succeeds", func(t *testing.T) {
		assert.NoError(t, f.alice.Delete(ctx, 99999))
	})
}

func TestSessionDetails_Ownership(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	id, err := f.alice.Add(ctx, "Ivan", "Petrov", "1234567", "ivan@gogle.com")
	require.NoError(t, err)

	_, err = f.bob.Details(ctx, id)
	assert.ErrorIs(t, err, types.ErrNotOwner)
}

func TestSessionSearchAndList_ScopedToUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.alice.Add(ctx, "Ivan", "Petrov", "1112233", "ivan@gogle.com")
	require.NoError(t, err)
	_, err = f.bob.Add(ctx, "Ivan", "Smirnov", "9990011", "smirnov@gogle.com")
	require.NoError(t, err)

	got, err := f.alice.Search(ctx, "Ivan")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Petrov", got[0].LastName)

	list, err := f.bob.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Smirnov", list[0].LastName)
}
