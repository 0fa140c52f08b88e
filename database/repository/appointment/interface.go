// File: database/repository/appointment/interface.go
package appointmentRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"barberbook/database"
	"barberbook/models"
)

// Appointments live in one flat collection. Both query paths (by
// customer and by barber + day range) are served from it.
type AppointmentRepository interface {
	Create(ctx context.Context, ap *models.Appointment) error
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	GetByCustomer(ctx context.Context, customerID string) ([]models.Appointment, error)
	GetByBarberAndRange(ctx context.Context, barberID string, from, to time.Time) ([]models.Appointment, error)
	GetAllInRange(ctx context.Context, from, to time.Time) ([]models.Appointment, error)
	// UpdateStatus transitions status only when the current status is
	// "confirmed"; anything else reports mongo.ErrNoDocuments.
	UpdateStatus(ctx context.Context, id, status string, at time.Time) error
	UpdateStartTime(ctx context.Context, id string, start, end time.Time) error
	EnsureIndexes(ctx context.Context) error
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new MongoDB AppointmentRepository.
func NewMongoAppointmentRepo() AppointmentRepository {
	return &mongoAppointmentRepo{
		coll: database.DB().Collection("appointments"),
	}
}
