package reset

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/vetbook/vet-scheduler/internal/snapshot"
	"github.com/vetbook/vet-scheduler/internal/store"
)

// Developer tooling, not reachable from normal user flows. Three modes:
//
//	quick   — purge the snapshot and reset in-memory state to defaults
//	soft    — purge the snapshot only, keep current in-memory state
//	nuclear — purge the snapshot plus every other stored key, reset state
type Mode string

const (
	ModeQuick   Mode = "quick"
	ModeSoft    Mode = "soft"
	ModeNuclear Mode = "nuclear"
)

func IsValidMode(m Mode) bool {
	return m == ModeQuick || m == ModeSoft || m == ModeNuclear
}

// Result reports the outcome with a human-readable message.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Run executes the given reset mode against the store and its snapshot
// backend. st may be nil when only the persisted side should be touched
// (resetctl running against a stopped server).
func Run(ctx context.Context, mode Mode, st *store.Store, snap snapshot.Store, logger *zap.Logger) Result {
	if logger == nil {
		logger = zap.NewNop()
	}
	if !IsValidMode(mode) {
		return Result{Success: false, Message: fmt.Sprintf("unknown reset mode %q", mode)}
	}

	logger.Warn("reset requested", zap.String("mode", string(mode)))

	if snap != nil {
		var err error
		if mode == ModeNuclear {
			err = snap.PurgeAll(ctx)
		} else {
			err = snap.Purge(ctx)
		}
		if err != nil {
			return Result{Success: false, Message: fmt.Sprintf("Reset failed: %v", err)}
		}
	}

	if mode != ModeSoft && st != nil {
		st.ResetAll()
	}

	switch mode {
	case ModeSoft:
		return Result{Success: true, Message: "Persisted snapshot cleared, in-memory state kept"}
	case ModeNuclear:
		return Result{Success: true, Message: "All stored keys cleared and state reset"}
	default:
		return Result{Success: true, Message: "Snapshot cleared and state reset to defaults"}
	}
}
