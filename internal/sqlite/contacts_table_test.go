// Tests for the contacts table accessor: raw CRUD and search.
package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukaforge/rolodex/pkg/types"
)

// seedUser registers a user and returns its id.
func seedUser(t *testing.T, s *Store, username string) int64 {
	t.Helper()
	id, err := s.AddUser(context.Background(), username, "secret")
	require.NoError(t, err)
	return id
}

func TestAddContact_RoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	userID := seedUser(t, s, "alice")

	id, err := s.AddContact(ctx, userID, "Ivan", "Petrov", "+7 916 1234567", "ivan@gogle.com")
	require.NoError(t, err)
	assert.Positive(t, id)

	got, err := s.GetContactDetails(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, &types.Contact{
		ID:        id,
		UserID:    userID,
		FirstName: "Ivan",
		LastName:  "Petrov",
		Phone:     "+7 916 1234567",
		Email:     "ivan@gogle.com",
	}, got)
}

func TestCheckDuplicatePhone(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	alice := seedUser(t, s, "alice")

	_, err := s.AddContact(ctx, alice, "Ivan", "Petrov", "1234567", "ivan@gogle.com")
	require.NoError(t, err)

	t.Run("existing phone is a duplicate regardless of owner", func(t *testing.T) {
		dup, err := s.CheckDuplicatePhone(ctx, "1234567")
		require.NoError(t, err)
		assert.True(t, dup)
	})

	t.Run("unused phone is not a duplicate", func(t *testing.T) {
		dup, err := s.CheckDuplicatePhone(ctx, "7654321")
		require.NoError(t, err)
		assert.False(t, dup)
	})

	t.Run("match is exact, not substring", func(t *testing.T) {
		dup, err := s.CheckDuplicatePhone(ctx, "12345")
		require.NoError(t, err)
		assert.False(t, dup)
	})
}

func TestEditContact(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	userID := seedUser(t, s, "alice")

	newContact := func(t *testing.T) int64 {
		t.Helper()
		id, err := s.AddContact(ctx, userID, "Ivan", "Petrov", "1112233", "ivan@gogle.com")
		require.NoError(t, err)
		t.Cleanup(func() { _ = s.DeleteContact(ctx, id) })
		return id
	}

	t.Run("only the supplied field changes", func(t *testing.T) {
		id := newContact(t)

		require.NoError(t, s.EditContact(ctx, id, "", "", "9998877", ""))

		got, err := s.GetContactDetails(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "9998877", got.Phone)
		assert.Equal(t, "Ivan", got.FirstName)
		assert.Equal(t, "Petrov", got.LastName)
		assert.Equal(t, "ivan@gogle.com", got.Email)
	})

	t.Run("all fields empty leaves the record identical", func(t *testing.T) {
		id := newContact(t)
		before, err := s.GetContactDetails(ctx, id)
		require.NoError(t, err)

		require.NoError(t, s.EditContact(ctx, id, "", "", "", ""))

		after, err := s.GetContactDetails(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("every field supplied replaces them all", func(t *testing.T) {
		id := newContact(t)

		require.NoError(t, s.EditContact(ctx, id, "Pyotr", "Ivanov", "5556677", "pyotr@gogle.com"))

		got, err := s.GetContactDetails(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Pyotr", got.FirstName)
		assert.Equal(t, "Ivanov", got.LastName)
		assert.Equal(t, "5556677", got.Phone)
		assert.Equal(t, "pyotr@gogle.com", got.Email)
	})

	t.Run("missing contact reports not found", func(t *testing.T) {
		assert.ErrorIs(t, s.EditContact(ctx, 99999, "Pyotr", "", "", ""), types.ErrNotFound)
		assert.ErrorIs(t, s.EditContact(ctx, 99999, "", "", "", ""), types.ErrNotFound)
	})
}

func TestDeleteContact(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	userID := seedUser(t, s, "alice")

	id, err := s.AddContact(ctx, userID, "Ivan", "Petrov", "1234567", "ivan@gogle.com")
	require.NoError(t, err)

	require.NoError(t, s.DeleteContact(ctx, id))

	_, err = s.GetContactDetails(ctx, id)
	assert.ErrorIs(t, err, types.ErrNotFound)

	t.Run("deleting an absent id succeeds and changes nothing", func(t *testing.T) {
		keep, err := s.AddContact(ctx, userID, "Anna", "Sidorova", "7654321", "anna@gogle.com")
		require.NoError(t, err)

		assert.NoError(t, s.DeleteContact(ctx, 99999))

		list, err := s.GetContacts(ctx, userID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, keep, list[0].ID)
	})
}

func TestSearchContacts(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	alice := seedUser(t, s, "alice")
	bob := seedUser(t, s, "bob")

	_, err := s.AddContact(ctx, alice, "Ivan", "Petrov", "1112233", "ivan@gogle.com")
	require.NoError(t, err)
	_, err = s.AddContact(ctx, alice, "Anna", "Ivanova", "4445566", "anna@gogle.com")
	require.NoError(t, err)
	_, err = s.AddContact(ctx, alice, "Pyotr", "Sidorov", "7778899", "pyotr@gogle.com")
	require.NoError(t, err)
	// Bob's contact also matches "Ivan" but must never appear in
	// Alice's results.
	_, err = s.AddContact(ctx, bob, "Ivan", "Smirnov", "9990011", "smirnov@gogle.com")
	require.NoError(t, err)

	t.Run("matches names for the owner only", func(t *testing.T) {
		got, err := s.SearchContacts(ctx, alice, "Ivan")
		require.NoError(t, err)
		require.Len(t, got, 2)
		for _, c := range got {
			assert.Equal(t, alice, c.UserID)
		}
	})

	t.Run("matches phone substring", func(t *testing.T) {
		got, err := s.SearchContacts(ctx, alice, "445")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Anna", got[0].FirstName)
	})

	t.Run("matches email substring", func(t *testing.T) {
		got, err := s.SearchContacts(ctx, alice, "pyotr@")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Pyotr", got[0].FirstName)
	})

	t.Run("search is case-sensitive", func(t *testing.T) {
		got, err := s.SearchContacts(ctx, alice, "ivan")
		require.NoError(t, err)
		// Only the email "ivan@gogle.com" contains lowercase "ivan".
		require.Len(t, got, 1)
		assert.Equal(t, "ivan@gogle.com", got[0].Email)
	})

	t.Run("no match returns an empty slice", func(t *testing.T) {
		got, err := s.SearchContacts(ctx, alice, "zzz")
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestGetContacts_InsertionOrder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	alice := seedUser(t, s, "alice")
	bob := seedUser(t, s, "bob")

	names := []string{"First", "Second", "Third"}
	for i, n := range names {
		_, err := s.AddContact(ctx, alice, n, "Contact", "111000"+string(rune('0'+i)), n+"@gogle.com")
		require.NoError(t, err)
	}
	_, err := s.AddContact(ctx, bob, "Other", "User", "2220000", "other@gogle.com")
	require.NoError(t, err)

	list, err := s.GetContacts(ctx, alice)
	require.NoError(t, err)
	require.Len(t, list, 3)
	for i, c := range list {
		assert.Equal(t, names[i], c.FirstName)
		assert.Equal(t, alice, c.UserID)
	}

	t.Run("user with no contacts gets an empty slice", func(t *testing.T) {
		carol := seedUser(t, s, "carol")
		list, err := s.GetContacts(ctx, carol)
		require.NoError(t, err)
		assert.NotNil(t, list)
		assert.Empty(t, list)
	})
}

func TestGetContactDetails_NotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetContactDetails(context.Background(), 42)
	assert.ErrorIs(t, err, types.ErrNotFound)
}
