package appointment

import (
	"context"

	"github.com/vetbook/vet-scheduler/internal/audit"
	"github.com/vetbook/vet-scheduler/internal/httperr"
	"github.com/vetbook/vet-scheduler/internal/models"
)

type StatusStore interface {
	UpdateAppointmentStatus(id, status string) (models.Appointment, bool, error)
}

// SetStatus applies a status change through the store's transition policy and
// records the change in the audit trail.
type SetStatus struct {
	store StatusStore
	audit *audit.Dispatcher
}

func NewSetStatus(store StatusStore, audit *audit.Dispatcher) *SetStatus {
	return &SetStatus{
		store: store,
		audit: audit,
	}
}

func (uc *SetStatus) Execute(ctx context.Context, actorID, appointmentID, status string) (models.Appointment, error) {
	ap, found, err := uc.store.UpdateAppointmentStatus(appointmentID, status)
	if err != nil {
		return models.Appointment{}, err
	}
	if !found {
		return models.Appointment{}, httperr.ErrBusiness("appointment_not_found")
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   actorID,
		Action:   "appointment_status_changed",
		Entity:   "appointment",
		EntityID: ap.ID,
		Metadata: map[string]string{"status": status},
	})

	return ap, nil
}
