package clock

import (
	"strconv"
	"sync"
	"time"
)

// Entity IDs are the creation timestamp in milliseconds, rendered as a
// decimal string. Two entities created inside the same millisecond must
// still get distinct, ordered IDs, so the last issued value is tracked
// and bumped on collision.

var (
	mu     sync.Mutex
	lastID int64
)

// NewID returns a millisecond-timestamp ID for the given creation time.
func NewID(t time.Time) string {
	mu.Lock()
	defer mu.Unlock()

	ms := t.UnixMilli()
	if ms <= lastID {
		ms = lastID + 1
	}
	lastID = ms
	return strconv.FormatInt(ms, 10)
}

// ISO formats t as an ISO-8601 UTC timestamp with millisecond precision,
// matching what the mobile client persisted (Date.toISOString()).
func ISO(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z")
}

// ISODate formats t as "YYYY-MM-DD".
func ISODate(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
