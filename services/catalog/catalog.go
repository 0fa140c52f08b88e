// File: services/catalog/catalog.go
package catalog

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"go.uber.org/zap"

	"barberbook/models"
	"barberbook/utils"
)

var ErrValidation = errors.New("invalid catalog input")

func (s *DefaultCatalogService) CreateService(ctx context.Context, svc *models.Service) error {
	if err := validateService(svc); err != nil {
		return err
	}
	return s.Services.Create(ctx, svc)
}

func (s *DefaultCatalogService) GetService(ctx context.Context, id string) (*models.Service, error) {
	return s.Services.GetByID(ctx, id)
}

func (s *DefaultCatalogService) ListServices(ctx context.Context) ([]models.Service, error) {
	return s.Services.GetAll(ctx)
}

// UpdateService edits the catalog entry only; appointments booked
// against the old duration keep their snapshot.
func (s *DefaultCatalogService) UpdateService(ctx context.Context, svc *models.Service) error {
	if err := validateService(svc); err != nil {
		return err
	}
	return s.Services.Update(ctx, svc)
}

func (s *DefaultCatalogService) DeleteService(ctx context.Context, id string) error {
	return s.Services.Delete(ctx, id)
}

func validateService(svc *models.Service) error {
	if svc.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if svc.DurationMin <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrValidation)
	}
	if svc.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrValidation)
	}
	return nil
}

// CreateBarber writes the barber and prefills one schedule entry per
// weekday from the shop's default hours, skipping configured closed
// days.
func (s *DefaultCatalogService) CreateBarber(ctx context.Context, b *models.Barber) error {
	if b.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if err := s.Barbers.Create(ctx, b); err != nil {
		return err
	}

	settings, err := s.Content.GetShopSettings(ctx)
	if err != nil {
		// The barber exists either way; default hours can be set by hand.
		utils.GetLogger().Warn("could not load shop settings for schedule prefill",
			zap.String("barberId", b.ID), zap.Error(err))
		return nil
	}
	closed := make(map[int]bool, len(settings.ClosedDays))
	for _, d := range settings.ClosedDays {
		closed[d] = true
	}
	for day := 0; day < 7; day++ {
		entry := models.ScheduleEntry{BarberID: b.ID, DayOfWeek: day}
		if !closed[day] {
			entry.StartTime = settings.DefaultStartTime
			entry.EndTime = settings.DefaultEndTime
		}
		if err := s.Schedules.Upsert(ctx, &entry); err != nil {
			return fmt.Errorf("schedule prefill: %w", err)
		}
	}
	return nil
}

func (s *DefaultCatalogService) GetBarber(ctx context.Context, id string) (*models.Barber, error) {
	return s.Barbers.GetByID(ctx, id)
}

func (s *DefaultCatalogService) ListBarbers(ctx context.Context) ([]models.Barber, error) {
	return s.Barbers.GetAll(ctx)
}

func (s *DefaultCatalogService) UpdateBarber(ctx context.Context, b *models.Barber) error {
	if b.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	return s.Barbers.Update(ctx, b)
}

// DeleteBarber relies on the repository's transactional cascade: the
// barber document and its schedule entries go together or not at all.
// The stored image is cleaned up best-effort afterwards.
func (s *DefaultCatalogService) DeleteBarber(ctx context.Context, id string) error {
	b, err := s.Barbers.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.Barbers.DeleteWithSchedules(ctx, id); err != nil {
		return err
	}
	if s.Storage != nil && b.ImageURL != "" {
		if err := s.Storage.DeleteImage(ctx, barberImageID(id)); err != nil {
			utils.GetLogger().Warn("failed to delete barber image",
				zap.String("barberId", id), zap.Error(err))
		}
	}
	return nil
}

func barberImageID(id string) string {
	return "barbers/" + id
}

// UploadBarberImage stores the image and saves the returned URL on the
// barber.
func (s *DefaultCatalogService) UploadBarberImage(ctx context.Context, id string, file multipart.File) (string, error) {
	if s.Storage == nil {
		return "", errors.New("image storage is not configured")
	}
	b, err := s.Barbers.GetByID(ctx, id)
	if err != nil {
		return "", fmt.Errorf("barber lookup: %w", err)
	}

	url, err := s.Storage.UploadImage(ctx, file, barberImageID(id))
	if err != nil {
		return "", fmt.Errorf("image upload: %w", err)
	}

	b.ImageURL = url
	if err := s.Barbers.Update(ctx, b); err != nil {
		return "", fmt.Errorf("barber update: %w", err)
	}
	return url, nil
}
