package models

// ReminderPayload is the task body for an appointment reminder.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
	PatientID     string `json:"patientId"`
	DoctorID      string `json:"doctorId"`
	Date          string `json:"date"`        // "YYYY-MM-DD"
	StartMinute   int    `json:"startMinute"` // slot held when the reminder was scheduled
	Title         string `json:"title"`
	Body          string `json:"body"`
	FireDate      string `json:"fireDate"` // RFC3339
}
