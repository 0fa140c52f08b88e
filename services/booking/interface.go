// File: services/booking/interface.go
package booking

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	appointmentRepo "barberbook/database/repository/appointment"
	barberRepo "barberbook/database/repository/barber"
	customerRepo "barberbook/database/repository/customer"
	scheduleRepo "barberbook/database/repository/schedule"
	serviceRepo "barberbook/database/repository/service"
	"barberbook/models"
)

// BookingService covers the public booking flow plus the admin-side
// appointment operations.
type BookingService interface {
	GetAvailability(ctx context.Context, barberID, serviceID string, date time.Time) ([]time.Time, error)
	GetEligibleDays(ctx context.Context, barberID, serviceID string, year int, month time.Month) ([]string, error)
	CreateAppointment(ctx context.Context, in CreateAppointmentInput) (*models.Appointment, error)
	CancelAppointment(ctx context.Context, id string, ident models.Identity) error
	CompleteAppointment(ctx context.Context, id string) error
	// RescheduleAppointment moves a confirmed appointment to a new
	// start time, typically to apply an optimizer proposal.
	RescheduleAppointment(ctx context.Context, id string, newStart time.Time) error
	GetCustomerAppointments(ctx context.Context, customerID string) ([]models.Appointment, error)
	GetBarberDay(ctx context.Context, barberID string, date time.Time) ([]models.Appointment, error)
}

// CreateAppointmentInput is the validated booking request. Identity
// comes from the auth middleware, never from the request body.
type CreateAppointmentInput struct {
	Identity  models.Identity
	BarberID  string
	ServiceID string
	StartTime time.Time
}

// ReminderScheduler enqueues a delayed reminder for a freshly booked
// appointment. Implemented by the asynq-backed scheduler in
// services/tasks; faked in tests.
type ReminderScheduler interface {
	ScheduleAppointmentReminder(ctx context.Context, ap models.Appointment) error
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Services     serviceRepo.ServiceRepository
	Barbers      barberRepo.BarberRepository
	Schedules    scheduleRepo.ScheduleRepository
	Appointments appointmentRepo.AppointmentRepository
	Customers    customerRepo.CustomerRepository
	Cache        *redis.Client     // optional availability cache
	Reminders    ReminderScheduler // optional
	Loc          *time.Location    // shop timezone
}
