package dto

type AppointmentListDTO struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Status      string `json:"status"`
	DoctorName  string `json:"doctorName"`
	ClientName  string `json:"clientName"`
	ServiceType string `json:"serviceType"`
	Duration    int    `json:"duration"`
	UnreadCount int    `json:"unreadCount"`
}
