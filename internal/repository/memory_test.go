package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/ticket-management/internal/domain"
)

func TestInMemoryUserDirectory(t *testing.T) {
	ctx := context.Background()
	dir := NewInMemoryUserDirectory("erin", domain.User{Username: "alice"})

	u, err := dir.FindUser(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
	assert.False(t, u.CreatedAt.IsZero())

	_, err = dir.FindUser(ctx, "nobody")
	assert.ErrorIs(t, err, ErrNotFound)

	manager, err := dir.AccountManager(ctx)
	require.NoError(t, err)
	assert.Equal(t, "erin", manager.Username)
	assert.True(t, manager.AccountManager)
}

func TestInMemoryUserDirectoryWithoutManager(t *testing.T) {
	ctx := context.Background()
	dir := NewInMemoryUserDirectory("")

	_, err := dir.AccountManager(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, dir.Upsert(ctx, domain.User{Username: "frank", AccountManager: true}))
	manager, err := dir.AccountManager(ctx)
	require.NoError(t, err)
	assert.Equal(t, "frank", manager.Username)
}

func TestInMemoryTicketStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryTicketStore()

	id, err := store.Create(ctx, domain.Ticket{Title: "Login bug", AssignedUser: domain.User{Username: "dave"}})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	fetched, err := store.Fetch(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, fetched.ID)

	fetched.Title = "mutated locally"
	again, err := store.Fetch(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Login bug", again.Title)

	require.NoError(t, store.Update(ctx, again.WithAssignee(domain.User{Username: "carol"})))
	updated, err := store.Fetch(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "carol", updated.AssignedUser.Username)

	_, err = store.Fetch(ctx, 99)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, store.Update(ctx, domain.Ticket{ID: 99}), ErrNotFound)
}

func TestInMemoryTicketStoreConcurrentCreate(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryTicketStore()

	const n = 50
	var wg sync.WaitGroup
	ids := make(chan int64, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, err := store.Create(ctx, domain.Ticket{Title: "t"})
			if err == nil {
				ids <- id
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[int64]bool{}
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
}
