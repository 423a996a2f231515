package session

import (
	"context"
	"testing"
	"time"

	"zyro-visual/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestMemoryStore_CreateAndGet(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	user := &entity.User{ID: 1, Username: "shakti", IsAdmin: true}
	sess, err := store.Create(context.Background(), user)

	assert.NoError(t, err)
	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, 1, sess.UserID)
	assert.Equal(t, "shakti", sess.Username)
	assert.True(t, sess.IsAdmin)
	assert.WithinDuration(t, time.Now().Add(TTL), sess.ExpiresAt, time.Minute)

	loaded, err := store.Get(context.Background(), sess.ID)
	assert.NoError(t, err)
	assert.Equal(t, sess.ID, loaded.ID)
	assert.Equal(t, sess.UserID, loaded.UserID)
}

func TestMemoryStore_GetUnknownReturnsNilNil(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	sess, err := store.Get(context.Background(), "no-such-session")
	assert.NoError(t, err)
	assert.Nil(t, sess)
}

func TestMemoryStore_Delete(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	sess, _ := store.Create(context.Background(), &entity.User{ID: 1, Username: "shakti"})

	err := store.Delete(context.Background(), sess.ID)
	assert.NoError(t, err)

	loaded, err := store.Get(context.Background(), sess.ID)
	assert.NoError(t, err)
	assert.Nil(t, loaded)

	// Deleting again is a no-op.
	assert.NoError(t, store.Delete(context.Background(), sess.ID))
}

func TestMemoryStore_ExpiredSessionIsGone(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	sess, _ := store.Create(context.Background(), &entity.User{ID: 1, Username: "shakti"})

	store.mu.Lock()
	store.sessions[sess.ID].ExpiresAt = time.Now().Add(-time.Minute)
	store.mu.Unlock()

	loaded, err := store.Get(context.Background(), sess.ID)
	assert.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestMemoryStore_UniqueSessionIDs(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	user := &entity.User{ID: 1, Username: "shakti"}
	first, _ := store.Create(context.Background(), user)
	second, _ := store.Create(context.Background(), user)

	assert.NotEqual(t, first.ID, second.ID)
}
