package appointment

import "github.com/vetbook/vet-scheduler/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func InitialStatus() Status {
	return StatusScheduled
}

func IsValidStatus(s Status) bool {
	switch s {
	case StatusScheduled, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// ===============================
// Transition policy
// ===============================

// Policy decides which status transitions are allowed. The mobile client
// never guarded transitions (any status could be set at any time), so
// PolicyPermissive is the default; PolicyStrict is the conventional state
// machine where only a scheduled appointment can move.
type Policy string

const (
	PolicyPermissive Policy = "permissive"
	PolicyStrict     Policy = "strict"
)

// CanTransition validates a status change under the given policy.
func CanTransition(p Policy, from, to Status) error {
	if !IsValidStatus(to) {
		return httperr.ErrBusiness("invalid_status")
	}

	if p == PolicyStrict {
		if from != StatusScheduled {
			return httperr.ErrBusiness("invalid_state")
		}
		if to == StatusScheduled {
			return httperr.ErrBusiness("invalid_state")
		}
	}

	return nil
}
