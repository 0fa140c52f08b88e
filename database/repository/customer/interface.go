// File: database/repository/customer/interface.go
package customerRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"barberbook/database"
	"barberbook/models"
)

type CustomerRepository interface {
	Upsert(ctx context.Context, c *models.Customer) error
	GetByID(ctx context.Context, id string) (*models.Customer, error)
	GetByLineUserID(ctx context.Context, lineUserID string) (*models.Customer, error)
	UpdateProfile(ctx context.Context, c *models.Customer) error
	SetFCMToken(ctx context.Context, id, token string) error
}

type mongoCustomerRepo struct {
	coll *mongo.Collection
}

// NewMongoCustomerRepo constructs a new MongoDB CustomerRepository.
func NewMongoCustomerRepo() CustomerRepository {
	return &mongoCustomerRepo{
		coll: database.DB().Collection("customers"),
	}
}
