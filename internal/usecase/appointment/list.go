package appointment

import (
	"context"

	"github.com/vetbook/vet-scheduler/internal/dto"
	"github.com/vetbook/vet-scheduler/internal/models"
)

type ListStore interface {
	FilterAppointments(status, query string) []models.Appointment
	UnreadCount(appointmentID, viewerID string) int
}

// ListByFilter is the read-side query behind the appointment screens: status
// filter plus case-insensitive text search over client name or title, with
// the viewer's unread badge count attached.
type ListByFilter struct {
	store ListStore
}

func NewListByFilter(store ListStore) *ListByFilter {
	return &ListByFilter{store: store}
}

func (uc *ListByFilter) Execute(ctx context.Context, viewerID, status, query string) []dto.AppointmentListDTO {
	appointments := uc.store.FilterAppointments(status, query)

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.AppointmentListDTO{
			ID:          ap.ID,
			Title:       ap.Title,
			Date:        ap.Date,
			Time:        ap.Time,
			Status:      ap.Status,
			DoctorName:  ap.DoctorName,
			ClientName:  ap.ClientName,
			ServiceType: ap.ServiceType,
			Duration:    ap.Duration,
			UnreadCount: uc.store.UnreadCount(ap.ID, viewerID),
		})
	}
	return out
}
