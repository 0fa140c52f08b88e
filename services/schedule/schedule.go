// File: services/schedule/schedule.go
package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	scheduleRepo "barberbook/database/repository/schedule"
	"barberbook/models"
)

var ErrValidation = errors.New("invalid schedule input")

// ScheduleService manages per-barber weekly availability windows.
type ScheduleService interface {
	SetEntry(ctx context.Context, entry *models.ScheduleEntry) error
	GetWeek(ctx context.Context, barberID string) ([]models.ScheduleEntry, error)
	ClearDay(ctx context.Context, barberID string, dayOfWeek int) error
}

type DefaultScheduleService struct {
	Repo scheduleRepo.ScheduleRepository
}

// SetEntry upserts the (barber, weekday) entry. Blank start and end
// together mean a day off; a half-blank pair is rejected as ambiguous.
func (s *DefaultScheduleService) SetEntry(ctx context.Context, entry *models.ScheduleEntry) error {
	if entry.BarberID == "" {
		return fmt.Errorf("%w: barberId is required", ErrValidation)
	}
	if entry.DayOfWeek < 0 || entry.DayOfWeek > 6 {
		return fmt.Errorf("%w: dayOfWeek must be 0..6", ErrValidation)
	}
	if (entry.StartTime == "") != (entry.EndTime == "") {
		return fmt.Errorf("%w: start and end must both be set or both be blank", ErrValidation)
	}
	if entry.StartTime != "" {
		start, err := time.Parse("15:04", entry.StartTime)
		if err != nil {
			return fmt.Errorf("%w: startTime must be HH:mm", ErrValidation)
		}
		end, err := time.Parse("15:04", entry.EndTime)
		if err != nil {
			return fmt.Errorf("%w: endTime must be HH:mm", ErrValidation)
		}
		if !start.Before(end) {
			return fmt.Errorf("%w: startTime must be before endTime", ErrValidation)
		}
	}
	return s.Repo.Upsert(ctx, entry)
}

func (s *DefaultScheduleService) GetWeek(ctx context.Context, barberID string) ([]models.ScheduleEntry, error) {
	return s.Repo.GetByBarber(ctx, barberID)
}

// ClearDay marks the weekday as off by writing a blank entry, which the
// availability engine treats the same as no entry.
func (s *DefaultScheduleService) ClearDay(ctx context.Context, barberID string, dayOfWeek int) error {
	if dayOfWeek < 0 || dayOfWeek > 6 {
		return fmt.Errorf("%w: dayOfWeek must be 0..6", ErrValidation)
	}
	return s.Repo.Upsert(ctx, &models.ScheduleEntry{BarberID: barberID, DayOfWeek: dayOfWeek})
}
