package store

import (
	"time"

	"github.com/vetbook/vet-scheduler/internal/clock"
	"github.com/vetbook/vet-scheduler/internal/models"
)

// The store owns two slices of state, mirroring the two persisted reducers of
// the mobile client: "auth" (registry, session, slots) and "appointments"
// (appointments, chat, read-side filters). Both are serialized whole into the
// snapshot after every mutation.

type AuthState struct {
	User            *models.User      `json:"user"`
	IsAuthenticated bool              `json:"isAuthenticated"`
	Loading         bool              `json:"loading"`
	Error           string            `json:"error,omitempty"`
	Token           string            `json:"token,omitempty"`
	AvailableSlots  []models.TimeSlot `json:"availableSlots"`
	DoctorSlots     []models.TimeSlot `json:"doctorSlots"`
	RegisteredUsers []models.User     `json:"registeredUsers"`
}

type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type Filters struct {
	Status      string    `json:"status"`
	ServiceType string    `json:"serviceType"`
	DateRange   DateRange `json:"dateRange"`
}

type AppointmentsState struct {
	Appointments []models.Appointment `json:"appointments"`
	ChatMessages []models.ChatMessage `json:"chatMessages"`
	Loading      bool                 `json:"loading"`
	Error        string               `json:"error,omitempty"`
	SelectedDate string               `json:"selectedDate"`
	Filters      Filters              `json:"filters"`
}

func initialAuthState() AuthState {
	return AuthState{
		AvailableSlots:  []models.TimeSlot{},
		DoctorSlots:     []models.TimeSlot{},
		RegisteredUsers: []models.User{},
	}
}

func initialAppointmentsState(now time.Time) AppointmentsState {
	return AppointmentsState{
		Appointments: []models.Appointment{},
		ChatMessages: []models.ChatMessage{},
		SelectedDate: clock.ISODate(now),
		Filters: Filters{
			Status: "all",
		},
	}
}
