package models

// ReminderPayload is the asynq task body for appointment reminders.
// The worker re-checks the appointment status at fire time, so a
// cancellation between enqueue and delivery is a silent no-op.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
	CustomerID    string `json:"customerId"`
	Title         string `json:"title"`
	Body          string `json:"body"`
}
