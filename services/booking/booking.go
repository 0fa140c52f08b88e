// File: services/booking/booking.go
package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"barberbook/models"
	"barberbook/services/availability"
	"barberbook/utils"
)

var (
	ErrSlotTaken     = errors.New("requested slot is no longer available")
	ErrNotOwner      = errors.New("appointment belongs to another customer")
	ErrInvalidStatus = errors.New("appointment is not in a state that allows this transition")
)

// CreateAppointment books a slot. The chosen start time is re-validated
// against a fresh snapshot of the barber's day right before the write.
// Two concurrent bookings can still both pass this check and both be
// written; the snapshot check narrows the window but does not close it.
func (s *DefaultBookingService) CreateAppointment(ctx context.Context, in CreateAppointmentInput) (*models.Appointment, error) {
	svc, err := s.Services.GetByID(ctx, in.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("service lookup: %w", err)
	}
	barber, err := s.Barbers.GetByID(ctx, in.BarberID)
	if err != nil {
		return nil, fmt.Errorf("barber lookup: %w", err)
	}
	customer, err := s.Customers.GetByID(ctx, in.Identity.UID)
	if err != nil {
		return nil, fmt.Errorf("customer lookup: %w", err)
	}

	start := in.StartTime.In(s.loc())
	date := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, s.loc())

	now := time.Now().In(s.loc())
	if beforeToday(date, now) {
		return nil, ErrSlotTaken
	}

	window, err := s.dayWindow(ctx, in.BarberID, date)
	if err != nil {
		return nil, err
	}
	busy, err := s.busyIntervals(ctx, in.BarberID, date)
	if err != nil {
		return nil, err
	}

	slots := availability.ComputeSlots(window, date, svc.DurationMin, busy, now)
	if !containsTime(slots, start) {
		return nil, ErrSlotTaken
	}

	ap := &models.Appointment{
		CustomerID:   customer.ID,
		BarberID:     barber.ID,
		ServiceID:    svc.ID,
		CustomerName: customer.Name,
		BarberName:   barber.Name,
		ServiceName:  svc.Name,
		DurationMin:  svc.DurationMin,
		Price:        svc.Price,
		StartTime:    start,
		EndTime:      start.Add(time.Duration(svc.DurationMin) * time.Minute),
		Status:       models.AppointmentConfirmed,
	}
	if err := s.Appointments.Create(ctx, ap); err != nil {
		return nil, fmt.Errorf("appointment write: %w", err)
	}

	s.invalidateDay(ctx, barber.ID, date)

	if s.Reminders != nil {
		if err := s.Reminders.ScheduleAppointmentReminder(ctx, *ap); err != nil {
			// The booking stands even when the reminder cannot be queued.
			utils.GetLogger().Warn("failed to schedule reminder",
				zap.String("appointmentId", ap.ID), zap.Error(err))
		}
	}

	return ap, nil
}

// CancelAppointment marks the appointment cancelled. Customers can only
// cancel their own; admins can cancel any.
func (s *DefaultBookingService) CancelAppointment(ctx context.Context, id string, ident models.Identity) error {
	ap, err := s.Appointments.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("appointment lookup: %w", err)
	}
	if !ident.IsAdmin && ap.CustomerID != ident.UID {
		return ErrNotOwner
	}
	if ap.Status != models.AppointmentConfirmed {
		return ErrInvalidStatus
	}
	if err := s.Appointments.UpdateStatus(ctx, id, models.AppointmentCancelled, time.Now()); err != nil {
		return fmt.Errorf("cancel write: %w", err)
	}
	s.invalidateDay(ctx, ap.BarberID, ap.StartTime)
	return nil
}

// RescheduleAppointment moves a confirmed appointment to a new start
// time after re-validating it against the barber's day, with the
// appointment's own range excluded from the busy set.
func (s *DefaultBookingService) RescheduleAppointment(ctx context.Context, id string, newStart time.Time) error {
	ap, err := s.Appointments.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("appointment lookup: %w", err)
	}
	if ap.Status != models.AppointmentConfirmed {
		return ErrInvalidStatus
	}

	start := newStart.In(s.loc())
	date := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, s.loc())

	now := time.Now().In(s.loc())
	if beforeToday(date, now) {
		return ErrSlotTaken
	}

	window, err := s.dayWindow(ctx, ap.BarberID, date)
	if err != nil {
		return err
	}
	busy, err := s.busyIntervalsExcluding(ctx, ap.BarberID, date, ap.ID)
	if err != nil {
		return err
	}

	slots := availability.ComputeSlots(window, date, ap.DurationMin, busy, now)
	if !containsTime(slots, start) {
		return ErrSlotTaken
	}

	end := start.Add(time.Duration(ap.DurationMin) * time.Minute)
	if err := s.Appointments.UpdateStartTime(ctx, id, start, end); err != nil {
		return fmt.Errorf("reschedule write: %w", err)
	}

	s.invalidateDay(ctx, ap.BarberID, ap.StartTime)
	s.invalidateDay(ctx, ap.BarberID, start)
	return nil
}

// CompleteAppointment is an admin operation.
func (s *DefaultBookingService) CompleteAppointment(ctx context.Context, id string) error {
	ap, err := s.Appointments.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("appointment lookup: %w", err)
	}
	if ap.Status != models.AppointmentConfirmed {
		return ErrInvalidStatus
	}
	if err := s.Appointments.UpdateStatus(ctx, id, models.AppointmentCompleted, time.Now()); err != nil {
		return fmt.Errorf("complete write: %w", err)
	}
	return nil
}

func (s *DefaultBookingService) GetCustomerAppointments(ctx context.Context, customerID string) ([]models.Appointment, error) {
	return s.Appointments.GetByCustomer(ctx, customerID)
}

// GetBarberDay returns the barber's booked ranges for the admin day
// grid: confirmed and completed appointments, cancelled ones excluded.
func (s *DefaultBookingService) GetBarberDay(ctx context.Context, barberID string, date time.Time) ([]models.Appointment, error) {
	date = s.localDate(date)
	dayEnd := date.AddDate(0, 0, 1)

	appointments, err := s.Appointments.GetByBarberAndRange(ctx, barberID, date, dayEnd)
	if err != nil {
		return nil, err
	}
	booked := make([]models.Appointment, 0, len(appointments))
	for _, ap := range appointments {
		if ap.Blocks() {
			booked = append(booked, ap)
		}
	}
	return booked, nil
}

// beforeToday reports whether date falls on a calendar day before
// now's. The slot engine's past filter only covers today itself, so
// the write paths reject earlier days up front.
func beforeToday(date, now time.Time) bool {
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return date.Before(startOfToday)
}

func containsTime(slots []time.Time, t time.Time) bool {
	for _, s := range slots {
		if s.Equal(t) {
			return true
		}
	}
	return false
}
