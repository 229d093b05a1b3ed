package reset

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vetbook/vet-scheduler/internal/models"
	"github.com/vetbook/vet-scheduler/internal/snapshot"
	"github.com/vetbook/vet-scheduler/internal/store"
)

func seededStore(t *testing.T, dir string) (*store.Store, snapshot.Store) {
	t.Helper()

	snap := snapshot.NewFileStore(dir)
	st := store.New(snap, nil)
	_, _, err := st.SignUp(models.User{
		Name: "Dr. A", Email: "d@x.com", Password: "secret1", Role: models.RoleDoctor,
	})
	require.NoError(t, err)
	return st, snap
}

func TestQuickReset(t *testing.T) {
	dir := t.TempDir()
	st, snap := seededStore(t, dir)

	res := Run(context.Background(), ModeQuick, st, snap, nil)
	assert.True(t, res.Success)

	assert.Empty(t, st.RegisteredUsers())

	// ResetAll persists the fresh initial state, so the snapshot exists but
	// holds the defaults.
	loaded, err := snap.Load(context.Background())
	require.NoError(t, err)
	assert.Contains(t, string(loaded.Auth), `"registeredUsers":[]`)
}

func TestSoftResetKeepsMemory(t *testing.T) {
	dir := t.TempDir()
	st, snap := seededStore(t, dir)

	res := Run(context.Background(), ModeSoft, st, snap, nil)
	assert.True(t, res.Success)

	assert.Len(t, st.RegisteredUsers(), 1, "soft reset keeps in-memory state")
	_, err := snap.Load(context.Background())
	assert.ErrorIs(t, err, snapshot.ErrNotFound)
}

func TestNuclearResetSweepsDirectory(t *testing.T) {
	dir := t.TempDir()
	st, snap := seededStore(t, dir)

	// An unrelated stored key that quick reset would leave behind.
	stray := filepath.Join(dir, "cache.json")
	require.NoError(t, os.WriteFile(stray, []byte("{}"), 0o644))

	res := Run(context.Background(), ModeNuclear, st, snap, nil)
	assert.True(t, res.Success)

	assert.Empty(t, st.RegisteredUsers())
	_, err := os.Stat(stray)
	assert.True(t, os.IsNotExist(err))
}

func TestUnknownMode(t *testing.T) {
	res := Run(context.Background(), Mode("hard"), nil, nil, nil)
	assert.False(t, res.Success)
	assert.Contains(t, res.Message, "unknown reset mode")
}
