package store

import (
	"github.com/vetbook/vet-scheduler/internal/clock"
	"github.com/vetbook/vet-scheduler/internal/models"
)

// ======================================================
// TIME SLOTS
// ======================================================

// AddTimeSlot appends a doctor-published slot. Only the current session user
// may add slots and only when they are a doctor; anything else is a silent
// no-op, reported through the bool. No overlap detection is performed.
func (s *Store) AddTimeSlot(slot models.TimeSlot) (models.TimeSlot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.auth.User == nil || s.auth.User.Role != models.RoleDoctor {
		s.logger.Debug("slot not added: session user is not a doctor")
		return models.TimeSlot{}, false
	}

	if slot.ID == "" {
		slot.ID = clock.NewID(s.now())
	}
	if slot.DoctorID == "" {
		slot.DoctorID = s.auth.User.ID
	}
	slot.IsAvailable = true

	s.auth.DoctorSlots = append(s.auth.DoctorSlots, slot)
	s.persist()
	return slot, true
}

// UpdateTimeSlot replaces the slot with the same ID; no-op when absent.
func (s *Store) UpdateTimeSlot(slot models.TimeSlot) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.auth.DoctorSlots {
		if s.auth.DoctorSlots[i].ID == slot.ID {
			s.auth.DoctorSlots[i] = slot
			s.persist()
			return true
		}
	}
	return false
}

// DeleteTimeSlot hard-removes the slot regardless of availability state. A
// booked slot can be deleted without touching its appointment.
func (s *Store) DeleteTimeSlot(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.auth.DoctorSlots {
		if s.auth.DoctorSlots[i].ID == id {
			s.auth.DoctorSlots = append(s.auth.DoctorSlots[:i], s.auth.DoctorSlots[i+1:]...)
			s.persist()
			return true
		}
	}
	return false
}

// BookSlot consumes an available slot. Returns false (and leaves state
// untouched) when the slot is missing or already unavailable.
func (s *Store) BookSlot(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bookSlotLocked(id)
}

func (s *Store) bookSlotLocked(id string) bool {
	for i := range s.auth.DoctorSlots {
		if s.auth.DoctorSlots[i].ID == id {
			if !s.auth.DoctorSlots[i].IsAvailable {
				return false
			}
			s.auth.DoctorSlots[i].IsAvailable = false
			s.persist()
			return true
		}
	}
	return false
}

func (s *Store) releaseSlotLocked(id string) {
	for i := range s.auth.DoctorSlots {
		if s.auth.DoctorSlots[i].ID == id {
			s.auth.DoctorSlots[i].IsAvailable = true
			return
		}
	}
}

// AvailableSlots returns a doctor's open slots in insertion order. Callers
// that want date order sort on their side.
func (s *Store) AvailableSlots(doctorID string) []models.TimeSlot {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []models.TimeSlot{}
	for _, slot := range s.auth.DoctorSlots {
		if slot.DoctorID == doctorID && slot.IsAvailable {
			out = append(out, slot)
		}
	}
	return out
}

// DoctorSlots returns every slot a doctor owns, available or not.
func (s *Store) DoctorSlots(doctorID string) []models.TimeSlot {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []models.TimeSlot{}
	for _, slot := range s.auth.DoctorSlots {
		if slot.DoctorID == doctorID {
			out = append(out, slot)
		}
	}
	return out
}

// SlotByID looks a slot up without regard to availability.
func (s *Store) SlotByID(id string) (models.TimeSlot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, slot := range s.auth.DoctorSlots {
		if slot.ID == id {
			return slot, true
		}
	}
	return models.TimeSlot{}, false
}
