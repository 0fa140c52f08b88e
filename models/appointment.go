package models

import "time"

// Appointment status values. Appointments are never hard-deleted; a
// cancelled appointment stays on record but stops blocking its slot.
const (
	AppointmentConfirmed = "confirmed"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelled"
)

// Appointment is a booked time range for one customer with one barber.
// Display names, duration and price are denormalized copies taken at
// booking time.
type Appointment struct {
	ID           string     `bson:"id" json:"id"`
	CustomerID   string     `bson:"customerId" json:"customerId"`
	BarberID     string     `bson:"barberId" json:"barberId"`
	ServiceID    string     `bson:"serviceId" json:"serviceId"`
	CustomerName string     `bson:"customerName" json:"customerName"`
	BarberName   string     `bson:"barberName" json:"barberName"`
	ServiceName  string     `bson:"serviceName" json:"serviceName"`
	DurationMin  int        `bson:"durationMin" json:"durationMin"`
	Price        float64    `bson:"price" json:"price"`
	StartTime    time.Time  `bson:"startTime" json:"startTime"`
	EndTime      time.Time  `bson:"endTime" json:"endTime"`
	Status       string     `bson:"status" json:"status"`
	CreatedAt    time.Time  `bson:"createdAt" json:"createdAt"`
	CancelledAt  *time.Time `bson:"cancelledAt,omitempty" json:"cancelledAt,omitempty"`
	CompletedAt  *time.Time `bson:"completedAt,omitempty" json:"completedAt,omitempty"`
}

// Blocks reports whether the appointment occupies its time range for
// availability purposes. Cancelled appointments free their slot.
func (a Appointment) Blocks() bool {
	return a.Status == AppointmentConfirmed || a.Status == AppointmentCompleted
}
