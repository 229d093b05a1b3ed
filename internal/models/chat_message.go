package models

// ChatMessage is one entry in an appointment's two-party thread.
type ChatMessage struct {
	ID            string `json:"id"`
	AppointmentID string `json:"appointmentId"`
	SenderID      string `json:"senderId"`
	SenderName    string `json:"senderName"`
	SenderRole    Role   `json:"senderRole"`
	Message       string `json:"message"`
	Timestamp     string `json:"timestamp"`
	IsRead        bool   `json:"isRead"`
}
