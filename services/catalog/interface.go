// File: services/catalog/interface.go
package catalog

import (
	"context"
	"mime/multipart"

	barberRepo "barberbook/database/repository/barber"
	contentRepo "barberbook/database/repository/content"
	scheduleRepo "barberbook/database/repository/schedule"
	serviceRepo "barberbook/database/repository/service"
	"barberbook/models"
	"barberbook/services/storage"
)

// CatalogService manages the reference entities: services and barbers.
type CatalogService interface {
	CreateService(ctx context.Context, svc *models.Service) error
	GetService(ctx context.Context, id string) (*models.Service, error)
	ListServices(ctx context.Context) ([]models.Service, error)
	UpdateService(ctx context.Context, svc *models.Service) error
	DeleteService(ctx context.Context, id string) error

	// CreateBarber also prefills a weekly schedule from the shop's
	// default working hours.
	CreateBarber(ctx context.Context, b *models.Barber) error
	GetBarber(ctx context.Context, id string) (*models.Barber, error)
	ListBarbers(ctx context.Context) ([]models.Barber, error)
	UpdateBarber(ctx context.Context, b *models.Barber) error
	// DeleteBarber removes the barber and its schedule rows together.
	DeleteBarber(ctx context.Context, id string) error
	UploadBarberImage(ctx context.Context, id string, file multipart.File) (string, error)
}

// DefaultCatalogService is the production implementation.
type DefaultCatalogService struct {
	Services  serviceRepo.ServiceRepository
	Barbers   barberRepo.BarberRepository
	Schedules scheduleRepo.ScheduleRepository
	Content   contentRepo.ContentRepository
	Storage   storage.StorageService // optional, image uploads
}
