package models

// TimeSlot is a doctor-published bookable window. Date is "YYYY-MM-DD",
// start/end are 24h "HH:MM", duration is minutes. IsAvailable is true until
// exactly one booking consumes the slot.
type TimeSlot struct {
	ID            string   `json:"id"`
	DoctorID      string   `json:"doctorId"`
	Date          string   `json:"date"`
	StartTime     string   `json:"startTime"`
	EndTime       string   `json:"endTime"`
	Duration      int      `json:"duration"`
	IsAvailable   bool     `json:"isAvailable"`
	IsRecurring   bool     `json:"isRecurring,omitempty"`
	RecurringDays []string `json:"recurringDays,omitempty"`
}
