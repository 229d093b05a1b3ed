package models

// Appointment links a patient (denormalized client fields) to a doctor at a
// date and time. CreatedAt is immutable; UpdatedAt is refreshed on every
// status change. Timestamps are ISO-8601 strings.
type Appointment struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Time        string `json:"time"`

	DoctorID   string `json:"doctorId,omitempty"`
	DoctorName string `json:"doctorName,omitempty"`

	ClientName  string `json:"clientName"`
	ClientPhone string `json:"clientPhone"`
	ClientEmail string `json:"clientEmail,omitempty"`

	Status      string  `json:"status"`
	ServiceType string  `json:"serviceType"`
	Duration    int     `json:"duration"`
	Price       float64 `json:"price,omitempty"`
	Notes       string  `json:"notes,omitempty"`

	// Back-reference to the slot consumed by the booking; empty when the
	// appointment was created without one. Needed to re-open the slot when
	// release-on-cancel is enabled.
	SlotID string `json:"slotId,omitempty"`

	PetID   string `json:"petId,omitempty"`
	PetName string `json:"petName,omitempty"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`

	// Derived view, populated on reads only. Messages are stored once in the
	// flat chat list; this field is never the source of truth.
	ChatMessages []ChatMessage `json:"chatMessages,omitempty"`
}
