package store

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/vetbook/vet-scheduler/internal/domain/appointment"
	"github.com/vetbook/vet-scheduler/internal/snapshot"
)

// Store is the single owner of the domain state. Every mutation happens
// synchronously under one mutex (there is exactly one writer by construction)
// and is followed by a best-effort snapshot save: a failed save is logged and
// the in-memory state stands.
type Store struct {
	mu    sync.Mutex
	auth  AuthState
	appts AppointmentsState

	snap   snapshot.Store
	logger *zap.Logger

	now                 func() time.Time
	policy              appointment.Policy
	releaseSlotOnCancel bool
}

type Option func(*Store)

// WithClock replaces the wall clock, for tests that need deterministic or
// advancing timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithStatusPolicy(p appointment.Policy) Option {
	return func(s *Store) { s.policy = p }
}

func WithSlotRelease(enabled bool) Option {
	return func(s *Store) { s.releaseSlotOnCancel = enabled }
}

// New builds an empty store. snap may be nil, in which case nothing is
// persisted (used by tests and the reset tool's dry paths).
func New(snap snapshot.Store, logger *zap.Logger, opts ...Option) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Store{
		snap:   snap,
		logger: logger,
		now:    time.Now,
		policy: appointment.PolicyPermissive,
	}
	s.auth = initialAuthState()
	s.appts = initialAppointmentsState(s.now())

	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Hydrate loads the persisted snapshot into memory. Called once at startup
// before anything reads the store. A missing snapshot is a normal first run.
func (s *Store) Hydrate(ctx context.Context) error {
	if s.snap == nil {
		return nil
	}

	snap, err := s.snap.Load(ctx)
	if err != nil {
		if err == snapshot.ErrNotFound {
			return nil
		}
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(snap.Auth) > 0 {
		var auth AuthState
		if err := json.Unmarshal(snap.Auth, &auth); err != nil {
			return err
		}
		s.auth = auth
	}
	if len(snap.Appointments) > 0 {
		var appts AppointmentsState
		if err := json.Unmarshal(snap.Appointments, &appts); err != nil {
			return err
		}
		s.appts = appts
	}

	s.logger.Info("state hydrated from snapshot",
		zap.Int("registered_users", len(s.auth.RegisteredUsers)),
		zap.Int("doctor_slots", len(s.auth.DoctorSlots)),
		zap.Int("appointments", len(s.appts.Appointments)),
	)
	return nil
}

// persist writes the snapshot. Must be called with the lock held. Errors are
// logged, never propagated: memory is the source of truth and divergence from
// disk is accepted.
func (s *Store) persist() {
	if s.snap == nil {
		return
	}

	authJSON, err := json.Marshal(s.auth)
	if err != nil {
		s.logger.Error("marshal auth state", zap.Error(err))
		return
	}
	apptsJSON, err := json.Marshal(s.appts)
	if err != nil {
		s.logger.Error("marshal appointments state", zap.Error(err))
		return
	}

	doc := &snapshot.Snapshot{
		Auth:         authJSON,
		Appointments: apptsJSON,
	}
	if err := s.snap.Save(context.Background(), doc); err != nil {
		s.logger.Error("snapshot save failed, in-memory state kept", zap.Error(err))
	}
}

// State returns a copy of both slices, mainly for tests and debug endpoints.
func (s *Store) State() (AuthState, AppointmentsState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.auth, s.appts
}

// ResetAll wipes everything back to initial state. Developer tooling only.
func (s *Store) ResetAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.auth = initialAuthState()
	s.appts = initialAppointmentsState(s.now())
	s.logger.Warn("store reset to initial state")
	s.persist()
}
