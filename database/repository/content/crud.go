// File: database/repository/content/crud.go
package contentRepo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"barberbook/models"
)

// GetPageContent returns an empty document when none has been saved
// yet; a missing singleton is a valid empty state, not an error.
func (r *mongoContentRepo) GetPageContent(ctx context.Context) (*models.PageContent, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var pc models.PageContent
	err := r.pageColl.FindOne(ctx, bson.M{"id": pageContentID}).Decode(&pc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return &models.PageContent{ID: pageContentID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &pc, nil
}

func (r *mongoContentRepo) SetPageContent(ctx context.Context, pc *models.PageContent) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pc.ID = pageContentID
	pc.UpdatedAt = time.Now()
	_, err := r.pageColl.UpdateOne(ctx, bson.M{"id": pageContentID},
		bson.M{"$set": pc}, options.Update().SetUpsert(true))
	return err
}

func (r *mongoContentRepo) GetShopSettings(ctx context.Context) (*models.ShopSettings, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var s models.ShopSettings
	err := r.settingsColl.FindOne(ctx, bson.M{"id": shopSettingsID}).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		// Sensible defaults until an admin saves settings.
		return &models.ShopSettings{
			ID:               shopSettingsID,
			DefaultStartTime: "09:00",
			DefaultEndTime:   "18:00",
			ClosedDays:       []int{0},
		}, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *mongoContentRepo) SetShopSettings(ctx context.Context, s *models.ShopSettings) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	s.ID = shopSettingsID
	s.UpdatedAt = time.Now()
	_, err := r.settingsColl.UpdateOne(ctx, bson.M{"id": shopSettingsID},
		bson.M{"$set": s}, options.Update().SetUpsert(true))
	return err
}
