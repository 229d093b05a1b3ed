package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vetbook/vet-scheduler/internal/httperr"
)

func TestCanTransitionPermissive(t *testing.T) {
	statuses := []Status{StatusScheduled, StatusCompleted, StatusCancelled}
	for _, from := range statuses {
		for _, to := range statuses {
			assert.NoError(t, CanTransition(PolicyPermissive, from, to),
				"permissive should allow %s -> %s", from, to)
		}
	}
}

func TestCanTransitionStrict(t *testing.T) {
	tests := []struct {
		from, to Status
		allowed  bool
	}{
		{StatusScheduled, StatusCompleted, true},
		{StatusScheduled, StatusCancelled, true},
		{StatusScheduled, StatusScheduled, false},
		{StatusCompleted, StatusScheduled, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCancelled, StatusScheduled, false},
	}

	for _, tt := range tests {
		err := CanTransition(PolicyStrict, tt.from, tt.to)
		if tt.allowed {
			assert.NoError(t, err, "%s -> %s", tt.from, tt.to)
		} else {
			assert.True(t, httperr.IsBusiness(err, "invalid_state"), "%s -> %s", tt.from, tt.to)
		}
	}
}

func TestCanTransitionUnknownStatus(t *testing.T) {
	err := CanTransition(PolicyPermissive, StatusScheduled, Status("rescheduled"))
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
}
