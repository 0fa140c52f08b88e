// File: database/repository/customer/crud.go
package customerRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"barberbook/models"
)

// Upsert writes the customer keyed by auth uid. Repeated sign-ins with
// the same identity land on the same document.
func (r *mongoCustomerRepo) Upsert(ctx context.Context, c *models.Customer) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	c.UpdatedAt = now

	update := bson.M{
		"$set": bson.M{
			"name":      c.Name,
			"email":     c.Email,
			"phone":     c.Phone,
			"updatedAt": now,
		},
		"$setOnInsert": bson.M{
			"id":        c.ID,
			"createdAt": now,
		},
	}
	if c.LineUserID != "" {
		update["$set"].(bson.M)["lineUserId"] = c.LineUserID
	}

	_, err := r.coll.UpdateOne(ctx, bson.M{"id": c.ID}, update, options.Update().SetUpsert(true))
	return err
}

func (r *mongoCustomerRepo) GetByID(ctx context.Context, id string) (*models.Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var c models.Customer
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *mongoCustomerRepo) GetByLineUserID(ctx context.Context, lineUserID string) (*models.Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var c models.Customer
	if err := r.coll.FindOne(ctx, bson.M{"lineUserId": lineUserID}).Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *mongoCustomerRepo) UpdateProfile(ctx context.Context, c *models.Customer) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	c.UpdatedAt = time.Now()
	update := bson.M{"$set": bson.M{
		"name":      c.Name,
		"email":     c.Email,
		"phone":     c.Phone,
		"updatedAt": c.UpdatedAt,
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": c.ID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoCustomerRepo) SetFCMToken(ctx context.Context, id, token string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id},
		bson.M{"$set": bson.M{"fcmToken": token, "updatedAt": time.Now()}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
