// File: services/booking/availability.go
package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"barberbook/models"
	"barberbook/services/availability"
)

// GetAvailability computes the bookable start times for one barber,
// one service and one calendar day. Results are cached briefly; the
// cache is invalidated on every booking write for the same barber/day.
func (s *DefaultBookingService) GetAvailability(ctx context.Context, barberID, serviceID string, date time.Time) ([]time.Time, error) {
	svc, err := s.Services.GetByID(ctx, serviceID)
	if err != nil {
		return nil, fmt.Errorf("service lookup: %w", err)
	}

	date = s.localDate(date)

	if cached, ok := s.cachedSlots(ctx, barberID, date, svc.DurationMin); ok {
		return cached, nil
	}

	window, err := s.dayWindow(ctx, barberID, date)
	if err != nil {
		return nil, err
	}

	busy, err := s.busyIntervals(ctx, barberID, date)
	if err != nil {
		return nil, err
	}

	slots := availability.ComputeSlots(window, date, svc.DurationMin, busy, time.Now().In(s.loc()))
	s.storeSlots(ctx, barberID, date, svc.DurationMin, slots)
	return slots, nil
}

// GetEligibleDays returns the "YYYY-MM-DD" dates of the month on which
// at least one slot is open. A day with a window can still be missing
// here when it is fully booked.
func (s *DefaultBookingService) GetEligibleDays(ctx context.Context, barberID, serviceID string, year int, month time.Month) ([]string, error) {
	svc, err := s.Services.GetByID(ctx, serviceID)
	if err != nil {
		return nil, fmt.Errorf("service lookup: %w", err)
	}

	entries, err := s.Schedules.GetByBarber(ctx, barberID)
	if err != nil {
		return nil, fmt.Errorf("schedule lookup: %w", err)
	}
	byWeekday := make(map[int]models.ScheduleEntry, len(entries))
	for _, e := range entries {
		byWeekday[e.DayOfWeek] = e
	}

	loc := s.loc()
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	monthEnd := monthStart.AddDate(0, 1, 0)

	// One range query for the whole month, bucketed per day.
	appointments, err := s.Appointments.GetByBarberAndRange(ctx, barberID, monthStart, monthEnd)
	if err != nil {
		return nil, fmt.Errorf("appointment lookup: %w", err)
	}
	busyByDay := make(map[string][]availability.Interval)
	for _, ap := range appointments {
		if !ap.Blocks() {
			continue
		}
		key := ap.StartTime.In(loc).Format("2006-01-02")
		busyByDay[key] = append(busyByDay[key], availability.Interval{Start: ap.StartTime, End: ap.EndTime})
	}

	now := time.Now().In(loc)
	var days []string
	for d := monthStart; d.Before(monthEnd); d = d.AddDate(0, 0, 1) {
		entry, ok := byWeekday[int(d.Weekday())]
		if !ok || entry.IsDayOff() {
			continue
		}
		window := availability.DayWindow{Start: entry.StartTime, End: entry.EndTime}
		key := d.Format("2006-01-02")
		if availability.DayEligible(window, d, svc.DurationMin, busyByDay[key], now) {
			days = append(days, key)
		}
	}
	return days, nil
}

// dayWindow resolves the weekday window for date. A missing entry is a
// closed day, not an error.
func (s *DefaultBookingService) dayWindow(ctx context.Context, barberID string, date time.Time) (availability.DayWindow, error) {
	entry, err := s.Schedules.GetByBarberAndDay(ctx, barberID, int(date.Weekday()))
	if errors.Is(err, mongo.ErrNoDocuments) {
		return availability.DayWindow{}, nil
	}
	if err != nil {
		return availability.DayWindow{}, fmt.Errorf("schedule lookup: %w", err)
	}
	return availability.DayWindow{Start: entry.StartTime, End: entry.EndTime}, nil
}

// busyIntervals loads the barber's blocking appointments for the day.
// Cancelled appointments are filtered out here, before the engine ever
// sees them.
func (s *DefaultBookingService) busyIntervals(ctx context.Context, barberID string, date time.Time) ([]availability.Interval, error) {
	return s.busyIntervalsExcluding(ctx, barberID, date, "")
}

// busyIntervalsExcluding additionally drops one appointment from the
// busy set, so a reschedule does not collide with its own current
// range.
func (s *DefaultBookingService) busyIntervalsExcluding(ctx context.Context, barberID string, date time.Time, excludeID string) ([]availability.Interval, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	appointments, err := s.Appointments.GetByBarberAndRange(ctx, barberID, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("appointment lookup: %w", err)
	}

	busy := make([]availability.Interval, 0, len(appointments))
	for _, ap := range appointments {
		if !ap.Blocks() || ap.ID == excludeID {
			continue
		}
		busy = append(busy, availability.Interval{Start: ap.StartTime, End: ap.EndTime})
	}
	return busy, nil
}

func (s *DefaultBookingService) loc() *time.Location {
	if s.Loc != nil {
		return s.Loc
	}
	return time.UTC
}

// localDate normalizes an incoming date to midnight shop time.
func (s *DefaultBookingService) localDate(date time.Time) time.Time {
	d := date.In(s.loc())
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, s.loc())
}
