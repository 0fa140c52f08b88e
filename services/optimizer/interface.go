// File: services/optimizer/interface.go
package optimizer

import (
	"context"
	"time"

	appointmentRepo "barberbook/database/repository/appointment"
	barberRepo "barberbook/database/repository/barber"
	scheduleRepo "barberbook/database/repository/schedule"
	serviceRepo "barberbook/database/repository/service"
	"barberbook/models"
)

// OptimizerService shapes the shop's day into one request for the
// external reasoning service and parses its structured answer. No
// scheduling logic runs locally; this is a data boundary.
type OptimizerService interface {
	OptimizeDay(ctx context.Context, date time.Time, preferences []string) (*models.OptimizerProposal, error)
}

// TextGenerator is the opaque LLM call. The Gemini client implements
// it in production; tests plug in a fake.
type TextGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// DefaultOptimizerService is the production implementation.
type DefaultOptimizerService struct {
	Gen          TextGenerator
	Appointments appointmentRepo.AppointmentRepository
	Barbers      barberRepo.BarberRepository
	Schedules    scheduleRepo.ScheduleRepository
	Services     serviceRepo.ServiceRepository
	Loc          *time.Location
}
