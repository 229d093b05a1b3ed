package snapshot

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewFileStore(t.TempDir())

	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	snap := &Snapshot{
		Auth:         json.RawMessage(`{"registeredUsers":[{"id":"1","email":"d@x.com"}]}`),
		Appointments: json.RawMessage(`{"appointments":[]}`),
	}
	require.NoError(t, store.Save(ctx, snap))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, string(snap.Auth), string(loaded.Auth))
	assert.JSONEq(t, string(snap.Appointments), string(loaded.Appointments))
}

func TestFileStorePurge(t *testing.T) {
	ctx := context.Background()
	store := NewFileStore(t.TempDir())

	require.NoError(t, store.Save(ctx, &Snapshot{}))
	require.NoError(t, store.Purge(ctx))

	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	// Purging an already-empty store is not an error.
	assert.NoError(t, store.Purge(ctx))
	assert.NoError(t, store.PurgeAll(ctx))
}

func TestFileStoreOverwrite(t *testing.T) {
	ctx := context.Background()
	store := NewFileStore(t.TempDir())

	require.NoError(t, store.Save(ctx, &Snapshot{Auth: json.RawMessage(`{"token":null}`)}))
	require.NoError(t, store.Save(ctx, &Snapshot{Auth: json.RawMessage(`{"token":"token-1"}`)}))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `{"token":"token-1"}`, string(loaded.Auth))
}
