// File: database/repository/content/interface.go
package contentRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"barberbook/database"
	"barberbook/models"
)

// Singleton documents: one pageContent record, one shopSettings record.
type ContentRepository interface {
	GetPageContent(ctx context.Context) (*models.PageContent, error)
	SetPageContent(ctx context.Context, pc *models.PageContent) error
	GetShopSettings(ctx context.Context) (*models.ShopSettings, error)
	SetShopSettings(ctx context.Context, s *models.ShopSettings) error
}

const (
	pageContentID  = "pageContent"
	shopSettingsID = "shopSettings"
)

type mongoContentRepo struct {
	pageColl     *mongo.Collection
	settingsColl *mongo.Collection
}

// NewMongoContentRepo constructs a new MongoDB ContentRepository.
func NewMongoContentRepo() ContentRepository {
	db := database.DB()
	return &mongoContentRepo{
		pageColl:     db.Collection("pageContent"),
		settingsColl: db.Collection("shopSettings"),
	}
}
