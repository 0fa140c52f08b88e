// File: database/repository/schedule/interface.go
package scheduleRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"barberbook/database"
	"barberbook/models"
)

type ScheduleRepository interface {
	// Upsert writes the entry under its deterministic composite id,
	// enforcing one entry per (barber, weekday).
	Upsert(ctx context.Context, entry *models.ScheduleEntry) error
	GetByBarber(ctx context.Context, barberID string) ([]models.ScheduleEntry, error)
	GetByBarberAndDay(ctx context.Context, barberID string, dayOfWeek int) (*models.ScheduleEntry, error)
	Delete(ctx context.Context, barberID string, dayOfWeek int) error
	EnsureIndexes(ctx context.Context) error
}

type mongoScheduleRepo struct {
	coll *mongo.Collection
}

// NewMongoScheduleRepo constructs a new MongoDB ScheduleRepository.
func NewMongoScheduleRepo() ScheduleRepository {
	return &mongoScheduleRepo{
		coll: database.DB().Collection("schedules"),
	}
}
