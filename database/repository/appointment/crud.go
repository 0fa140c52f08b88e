// File: database/repository/appointment/crud.go
package appointmentRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"barberbook/models"
)

func (r *mongoAppointmentRepo) Create(ctx context.Context, ap *models.Appointment) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if ap.ID == "" {
		ap.ID = uuid.New().String()
	}
	ap.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, ap)
	return err
}

func (r *mongoAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var ap models.Appointment
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&ap); err != nil {
		return nil, err
	}
	return &ap, nil
}

// UpdateStatus guards the lifecycle at the store: only a confirmed
// appointment can transition, so a double cancel or a cancel after
// completion matches nothing.
func (r *mongoAppointmentRepo) UpdateStatus(ctx context.Context, id, status string, at time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{"status": status}
	switch status {
	case models.AppointmentCancelled:
		set["cancelledAt"] = at
	case models.AppointmentCompleted:
		set["completedAt"] = at
	}

	filter := bson.M{"id": id, "status": models.AppointmentConfirmed}
	res, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoAppointmentRepo) UpdateStartTime(ctx context.Context, id string, start, end time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id, "status": models.AppointmentConfirmed}
	update := bson.M{"$set": bson.M{"startTime": start, "endTime": end}}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
