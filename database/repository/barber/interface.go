// File: database/repository/barber/interface.go
package barberRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"barberbook/database"
	"barberbook/models"
)

type BarberRepository interface {
	Create(ctx context.Context, b *models.Barber) error
	GetByID(ctx context.Context, id string) (*models.Barber, error)
	GetAll(ctx context.Context) ([]models.Barber, error)
	Update(ctx context.Context, b *models.Barber) error
	// DeleteWithSchedules removes the barber document and all of its
	// schedule entries in a single transaction.
	DeleteWithSchedules(ctx context.Context, id string) error
}

type mongoBarberRepo struct {
	client       *mongo.Client
	coll         *mongo.Collection
	scheduleColl *mongo.Collection
}

// NewMongoBarberRepo constructs a new MongoDB BarberRepository.
func NewMongoBarberRepo() BarberRepository {
	db := database.DB()
	return &mongoBarberRepo{
		client:       database.MongoClient,
		coll:         db.Collection("barbers"),
		scheduleColl: db.Collection("schedules"),
	}
}
