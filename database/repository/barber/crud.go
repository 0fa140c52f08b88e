// File: database/repository/barber/crud.go
package barberRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"barberbook/models"
)

func (r *mongoBarberRepo) Create(ctx context.Context, b *models.Barber) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	if b.Specialties == nil {
		b.Specialties = []string{}
	}
	now := time.Now()
	b.CreatedAt = now
	b.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, b)
	return err
}

func (r *mongoBarberRepo) GetByID(ctx context.Context, id string) (*models.Barber, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var b models.Barber
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *mongoBarberRepo) GetAll(ctx context.Context) ([]models.Barber, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"name": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var barbers []models.Barber
	if err := cursor.All(ctx, &barbers); err != nil {
		return nil, err
	}
	return barbers, nil
}

func (r *mongoBarberRepo) Update(ctx context.Context, b *models.Barber) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	b.UpdatedAt = time.Now()
	update := bson.M{"$set": bson.M{
		"name":        b.Name,
		"specialties": b.Specialties,
		"imageUrl":    b.ImageURL,
		"updatedAt":   b.UpdatedAt,
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": b.ID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// DeleteWithSchedules deletes the barber and its schedule entries
// atomically. Either both collections are touched or neither is.
func (r *mongoBarberRepo) DeleteWithSchedules(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	session, err := r.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		res, err := r.coll.DeleteOne(sc, bson.M{"id": id})
		if err != nil {
			return nil, err
		}
		if res.DeletedCount == 0 {
			return nil, mongo.ErrNoDocuments
		}
		if _, err := r.scheduleColl.DeleteMany(sc, bson.M{"barberId": id}); err != nil {
			return nil, err
		}
		return nil, nil
	})
	return err
}
