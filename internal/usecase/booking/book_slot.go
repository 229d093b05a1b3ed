package booking

import (
	"context"

	"github.com/vetbook/vet-scheduler/internal/audit"
	"github.com/vetbook/vet-scheduler/internal/httperr"
	"github.com/vetbook/vet-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type BookSlotInput struct {
	SlotID string

	Title       string
	Description string
	ServiceType string
	Notes       string
	Price       float64

	PetID   string
	PetName string

	// The booking patient; client fields on the appointment come from here.
	Patient models.User
}

// Store is the slice of the domain store the booking flow needs.
type Store interface {
	SlotByID(id string) (models.TimeSlot, bool)
	BookSlot(id string) bool
	UserByID(id string) (models.User, bool)
	AddAppointment(a models.Appointment) models.Appointment
}

// ======================================================
// USE CASE
// ======================================================

// BookSlot consumes an available slot and creates the appointment for it, in
// that order: when the slot is already gone no appointment is ever created.
type BookSlot struct {
	store Store
	audit *audit.Dispatcher
}

func NewBookSlot(store Store, audit *audit.Dispatcher) *BookSlot {
	return &BookSlot{
		store: store,
		audit: audit,
	}
}

func (uc *BookSlot) Execute(ctx context.Context, in BookSlotInput) (models.Appointment, error) {
	slot, ok := uc.store.SlotByID(in.SlotID)
	if !ok {
		return models.Appointment{}, httperr.ErrBusiness("slot_not_found")
	}
	if !slot.IsAvailable {
		return models.Appointment{}, httperr.ErrBusiness("slot_unavailable")
	}

	doctorName := ""
	if doctor, ok := uc.store.UserByID(slot.DoctorID); ok {
		doctorName = doctor.Name
	}

	if !uc.store.BookSlot(in.SlotID) {
		// Lost the slot between lookup and booking; same outcome as above.
		return models.Appointment{}, httperr.ErrBusiness("slot_unavailable")
	}

	ap := uc.store.AddAppointment(models.Appointment{
		Title:       in.Title,
		Description: in.Description,
		Date:        slot.Date,
		Time:        slot.StartTime,
		DoctorID:    slot.DoctorID,
		DoctorName:  doctorName,
		ClientName:  in.Patient.Name,
		ClientPhone: in.Patient.Phone,
		ClientEmail: in.Patient.Email,
		ServiceType: in.ServiceType,
		Duration:    slot.Duration,
		Price:       in.Price,
		Notes:       in.Notes,
		SlotID:      slot.ID,
		PetID:       in.PetID,
		PetName:     in.PetName,
	})

	uc.audit.Dispatch(audit.Event{
		UserID:   in.Patient.ID,
		Action:   "slot_booked",
		Entity:   "appointment",
		EntityID: ap.ID,
		Metadata: map[string]string{"slotId": slot.ID, "doctorId": slot.DoctorID},
	})

	return ap, nil
}
