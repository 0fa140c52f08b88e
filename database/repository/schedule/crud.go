// File: database/repository/schedule/crud.go
package scheduleRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"barberbook/models"
)

func (r *mongoScheduleRepo) Upsert(ctx context.Context, entry *models.ScheduleEntry) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	entry.ID = models.ScheduleEntryID(entry.BarberID, entry.DayOfWeek)

	filter := bson.M{"id": entry.ID}
	update := bson.M{"$set": entry}
	_, err := r.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func (r *mongoScheduleRepo) GetByBarber(ctx context.Context, barberID string) ([]models.ScheduleEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"barberId": barberID},
		options.Find().SetSort(bson.M{"dayOfWeek": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []models.ScheduleEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *mongoScheduleRepo) GetByBarberAndDay(ctx context.Context, barberID string, dayOfWeek int) (*models.ScheduleEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var entry models.ScheduleEntry
	err := r.coll.FindOne(ctx, bson.M{"id": models.ScheduleEntryID(barberID, dayOfWeek)}).Decode(&entry)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *mongoScheduleRepo) Delete(ctx context.Context, barberID string, dayOfWeek int) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": models.ScheduleEntryID(barberID, dayOfWeek)})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
