package snapshot

import (
	"context"
	"encoding/json"
	"errors"
)

// RootKey is the fixed key the whole snapshot lives under, kept identical to
// what the mobile client's persistence layer used so existing blobs load.
const RootKey = "persist:root"

// Snapshot is the durable serialized state, one entry per persisted slice.
type Snapshot struct {
	Auth         json.RawMessage `json:"auth"`
	Appointments json.RawMessage `json:"appointments"`
}

// ErrNotFound is returned by Load when no snapshot has ever been written.
var ErrNotFound = errors.New("snapshot: not found")

// Store persists and restores the snapshot. Save is called after every state
// mutation and must never be assumed to succeed; callers log and move on.
type Store interface {
	Load(ctx context.Context) (*Snapshot, error)
	Save(ctx context.Context, snap *Snapshot) error

	// Purge removes the snapshot itself. PurgeAll additionally removes every
	// other key the backend holds under its prefix (nuclear reset).
	Purge(ctx context.Context) error
	PurgeAll(ctx context.Context) error
}
