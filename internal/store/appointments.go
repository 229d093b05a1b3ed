package store

import (
	"strings"

	"github.com/vetbook/vet-scheduler/internal/clock"
	domain "github.com/vetbook/vet-scheduler/internal/domain/appointment"
	"github.com/vetbook/vet-scheduler/internal/models"
)

// ======================================================
// APPOINTMENTS
// ======================================================

// AddAppointment appends a new appointment with status scheduled and fresh
// createdAt/updatedAt. The caller's booking flow is responsible for consuming
// the slot first.
func (s *Store) AddAppointment(a models.Appointment) models.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addAppointmentLocked(a)
}

func (s *Store) addAppointmentLocked(a models.Appointment) models.Appointment {
	now := s.now()
	if a.ID == "" {
		a.ID = clock.NewID(now)
	}
	a.Status = string(domain.InitialStatus())
	a.CreatedAt = clock.ISO(now)
	a.UpdatedAt = a.CreatedAt
	a.ChatMessages = nil // derived on read, never stored

	s.appts.Appointments = append(s.appts.Appointments, a)
	s.persist()
	return a
}

// UpdateAppointmentStatus changes the status of a matching appointment under
// the configured transition policy and refreshes updatedAt. Unknown IDs are a
// no-op (found=false); a policy violation returns the business error.
func (s *Store) UpdateAppointmentStatus(id string, status string) (models.Appointment, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.appts.Appointments {
		ap := &s.appts.Appointments[i]
		if ap.ID != id {
			continue
		}

		if err := domain.CanTransition(s.policy, domain.Status(ap.Status), domain.Status(status)); err != nil {
			return models.Appointment{}, true, err
		}

		ap.Status = status
		ap.UpdatedAt = clock.ISO(s.now())

		if s.releaseSlotOnCancel && status == string(domain.StatusCancelled) && ap.SlotID != "" {
			s.releaseSlotLocked(ap.SlotID)
		}

		s.persist()
		return *ap, true, nil
	}

	return models.Appointment{}, false, nil
}

// DeleteAppointment removes the appointment and its chat thread. No screen
// ever reached this in the mobile client, but the contract requires it.
func (s *Store) DeleteAppointment(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.appts.Appointments {
		if s.appts.Appointments[i].ID == id {
			s.appts.Appointments = append(s.appts.Appointments[:i], s.appts.Appointments[i+1:]...)

			kept := s.appts.ChatMessages[:0]
			for _, m := range s.appts.ChatMessages {
				if m.AppointmentID != id {
					kept = append(kept, m)
				}
			}
			s.appts.ChatMessages = kept

			s.persist()
			return true
		}
	}
	return false
}

// Appointments returns every appointment, chat views embedded.
func (s *Store) Appointments() []models.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Appointment, len(s.appts.Appointments))
	for i, ap := range s.appts.Appointments {
		ap.ChatMessages = s.messagesForLocked(ap.ID)
		out[i] = ap
	}
	return out
}

// AppointmentByID returns one appointment with its chat thread embedded.
func (s *Store) AppointmentByID(id string) (models.Appointment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, ap := range s.appts.Appointments {
		if ap.ID == id {
			ap.ChatMessages = s.messagesForLocked(id)
			return ap, true
		}
	}
	return models.Appointment{}, false
}

// FilterAppointments is the read-side query: status "all" passes everything,
// the text query is a case-insensitive substring match on client name OR
// title.
func (s *Store) FilterAppointments(status, query string) []models.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := strings.ToLower(strings.TrimSpace(query))
	out := []models.Appointment{}
	for _, ap := range s.appts.Appointments {
		if status != "" && status != "all" && ap.Status != status {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(ap.ClientName), q) &&
			!strings.Contains(strings.ToLower(ap.Title), q) {
			continue
		}
		ap.ChatMessages = s.messagesForLocked(ap.ID)
		out = append(out, ap)
	}
	return out
}

// ======================================================
// READ-SIDE UI STATE
// ======================================================

func (s *Store) SetSelectedDate(date string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.appts.SelectedDate = date
	s.persist()
}

func (s *Store) SetFilters(f Filters) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.appts.Filters = f
	s.persist()
}

func (s *Store) ClearFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.appts.Filters = initialAppointmentsState(s.now()).Filters
	s.persist()
}
