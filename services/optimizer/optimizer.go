// File: services/optimizer/optimizer.go
package optimizer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"barberbook/models"
)

// ErrOptimizeFailed is what callers see for every failure mode: a
// network error, an empty answer or a malformed one. The handler maps
// it to a single generic user-facing message and nothing is written.
var ErrOptimizeFailed = errors.New("schedule optimization failed")

// OptimizeDay snapshots the day, sends one request and parses the
// structured reply.
func (s *DefaultOptimizerService) OptimizeDay(ctx context.Context, date time.Time, preferences []string) (*models.OptimizerProposal, error) {
	snapshot, err := s.buildSnapshot(ctx, date, preferences)
	if err != nil {
		return nil, err
	}
	if len(snapshot.Appointments) == 0 {
		// Nothing to optimize; skip the external call entirely.
		return &models.OptimizerProposal{
			RescheduledAppointments: []models.ProposedReschedule{},
			OptimizationSummary:     "No confirmed appointments on this day.",
		}, nil
	}

	prompt, err := buildPrompt(snapshot)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOptimizeFailed, err)
	}

	raw, err := s.Gen.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOptimizeFailed, err)
	}

	proposal, err := parseProposal(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOptimizeFailed, err)
	}
	return proposal, nil
}

// buildSnapshot collects the day's confirmed appointments, every
// barber's window for that weekday and the service catalog durations.
func (s *DefaultOptimizerService) buildSnapshot(ctx context.Context, date time.Time, preferences []string) (*models.ScheduleSnapshot, error) {
	loc := s.Loc
	if loc == nil {
		loc = time.UTC
	}
	day := date.In(loc)
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc)
	dayEnd := dayStart.AddDate(0, 0, 1)

	appointments, err := s.Appointments.GetAllInRange(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("appointment lookup: %w", err)
	}

	snapshot := &models.ScheduleSnapshot{CustomerPreferences: preferences}
	if snapshot.CustomerPreferences == nil {
		snapshot.CustomerPreferences = []string{}
	}
	for _, ap := range appointments {
		if ap.Status != models.AppointmentConfirmed {
			continue
		}
		snapshot.Appointments = append(snapshot.Appointments, models.OptimizerAppointment{
			ID:          ap.ID,
			BarberID:    ap.BarberID,
			BarberName:  ap.BarberName,
			ServiceName: ap.ServiceName,
			StartTime:   ap.StartTime.In(loc).Format(time.RFC3339),
			EndTime:     ap.EndTime.In(loc).Format(time.RFC3339),
		})
	}

	barbers, err := s.Barbers.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("barber lookup: %w", err)
	}
	weekday := int(dayStart.Weekday())
	for _, b := range barbers {
		entries, err := s.Schedules.GetByBarber(ctx, b.ID)
		if err != nil {
			return nil, fmt.Errorf("schedule lookup: %w", err)
		}
		for _, e := range entries {
			if e.DayOfWeek != weekday || e.IsDayOff() {
				continue
			}
			snapshot.BarberSchedules = append(snapshot.BarberSchedules, models.OptimizerWindow{
				BarberID:  b.ID,
				DayOfWeek: e.DayOfWeek,
				StartTime: e.StartTime,
				EndTime:   e.EndTime,
			})
		}
	}

	services, err := s.Services.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("service lookup: %w", err)
	}
	for _, svc := range services {
		snapshot.ServiceDurations = append(snapshot.ServiceDurations, models.OptimizerService{
			ServiceID:   svc.ID,
			Name:        svc.Name,
			DurationMin: svc.DurationMin,
		})
	}

	return snapshot, nil
}

func buildPrompt(snapshot *models.ScheduleSnapshot) (string, error) {
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("You are a scheduling assistant for a barber shop. ")
	sb.WriteString("Given the confirmed appointments, each barber's open hours and the service durations below, ")
	sb.WriteString("propose reschedules that reduce idle gaps while keeping every appointment inside its barber's hours ")
	sb.WriteString("and never overlapping another appointment for the same barber. ")
	sb.WriteString("Only move appointments when it improves the day.\n\n")
	sb.WriteString("Respond with JSON matching exactly this schema and nothing else:\n")
	sb.WriteString(`{"rescheduledAppointments":[{"appointmentId":"string","newStartTime":"RFC3339 timestamp"}],"optimizationSummary":"string"}`)
	sb.WriteString("\n\nSchedule data:\n")
	sb.Write(data)
	return sb.String(), nil
}

// parseProposal strips markdown fences the model sometimes wraps the
// JSON in, then decodes strictly.
func parseProposal(raw string) (*models.OptimizerProposal, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var proposal models.OptimizerProposal
	if err := json.Unmarshal([]byte(cleaned), &proposal); err != nil {
		return nil, fmt.Errorf("malformed optimizer response: %w", err)
	}
	for _, r := range proposal.RescheduledAppointments {
		if r.AppointmentID == "" {
			return nil, fmt.Errorf("malformed optimizer response: empty appointmentId")
		}
		if _, err := time.Parse(time.RFC3339, r.NewStartTime); err != nil {
			return nil, fmt.Errorf("malformed optimizer response: bad newStartTime %q", r.NewStartTime)
		}
	}
	if proposal.RescheduledAppointments == nil {
		proposal.RescheduledAppointments = []models.ProposedReschedule{}
	}
	return &proposal, nil
}
