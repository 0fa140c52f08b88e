package catalog

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"barberbook/models"
)

type memServices struct {
	byID map[string]models.Service
}

func (m *memServices) Create(_ context.Context, svc *models.Service) error {
	if svc.ID == "" {
		svc.ID = uuid.New().String()
	}
	m.byID[svc.ID] = *svc
	return nil
}
func (m *memServices) GetByID(_ context.Context, id string) (*models.Service, error) {
	svc, ok := m.byID[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &svc, nil
}
func (m *memServices) GetAll(context.Context) ([]models.Service, error) { return nil, nil }
func (m *memServices) Update(_ context.Context, svc *models.Service) error {
	if _, ok := m.byID[svc.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	m.byID[svc.ID] = *svc
	return nil
}
func (m *memServices) Delete(_ context.Context, id string) error {
	delete(m.byID, id)
	return nil
}

type memBarbers struct {
	byID      map[string]models.Barber
	deleteErr error
}

func (m *memBarbers) Create(_ context.Context, b *models.Barber) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	m.byID[b.ID] = *b
	return nil
}
func (m *memBarbers) GetByID(_ context.Context, id string) (*models.Barber, error) {
	b, ok := m.byID[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &b, nil
}
func (m *memBarbers) GetAll(context.Context) ([]models.Barber, error) { return nil, nil }
func (m *memBarbers) Update(_ context.Context, b *models.Barber) error {
	if _, ok := m.byID[b.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	m.byID[b.ID] = *b
	return nil
}
func (m *memBarbers) DeleteWithSchedules(_ context.Context, id string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	delete(m.byID, id)
	return nil
}

type recordingSchedules struct {
	upserted []models.ScheduleEntry
}

func (r *recordingSchedules) Upsert(_ context.Context, entry *models.ScheduleEntry) error {
	r.upserted = append(r.upserted, *entry)
	return nil
}
func (r *recordingSchedules) GetByBarber(context.Context, string) ([]models.ScheduleEntry, error) {
	return nil, nil
}
func (r *recordingSchedules) GetByBarberAndDay(context.Context, string, int) (*models.ScheduleEntry, error) {
	return nil, mongo.ErrNoDocuments
}
func (r *recordingSchedules) Delete(context.Context, string, int) error { return nil }
func (r *recordingSchedules) EnsureIndexes(context.Context) error { return nil }

type stubContent struct {
	settings *models.ShopSettings
	err      error
}

func (s *stubContent) GetPageContent(context.Context) (*models.PageContent, error) {
	return nil, mongo.ErrNoDocuments
}
func (s *stubContent) SetPageContent(context.Context, *models.PageContent) error { return nil }
func (s *stubContent) GetShopSettings(context.Context) (*models.ShopSettings, error) {
	return s.settings, s.err
}
func (s *stubContent) SetShopSettings(context.Context, *models.ShopSettings) error { return nil }

type recordingStorage struct {
	uploaded  []string
	deleted   []string
	deleteErr error
}

func (r *recordingStorage) UploadImage(_ context.Context, _ io.Reader, publicID string) (string, error) {
	r.uploaded = append(r.uploaded, publicID)
	return "https://cdn.example.com/" + publicID, nil
}
func (r *recordingStorage) DeleteImage(_ context.Context, publicID string) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	r.deleted = append(r.deleted, publicID)
	return nil
}

func newCatalogService(barbers *memBarbers, schedules *recordingSchedules, content *stubContent) *DefaultCatalogService {
	return &DefaultCatalogService{
		Services:  &memServices{byID: map[string]models.Service{}},
		Barbers:   barbers,
		Schedules: schedules,
		Content:   content,
	}
}

func defaultSettings() *models.ShopSettings {
	return &models.ShopSettings{
		DefaultStartTime: "10:00",
		DefaultEndTime:   "19:00",
		ClosedDays:       []int{0, 1},
	}
}

func TestCreateBarberPrefillsWeeklySchedule(t *testing.T) {
	barbers := &memBarbers{byID: map[string]models.Barber{}}
	schedules := &recordingSchedules{}
	svc := newCatalogService(barbers, schedules, &stubContent{settings: defaultSettings()})

	b := &models.Barber{Name: "Ken"}
	require.NoError(t, svc.CreateBarber(context.Background(), b))
	require.NotEmpty(t, b.ID)

	// One entry per weekday, closed days written blank.
	require.Len(t, schedules.upserted, 7)
	for _, entry := range schedules.upserted {
		assert.Equal(t, b.ID, entry.BarberID)
		if entry.DayOfWeek == 0 || entry.DayOfWeek == 1 {
			assert.Empty(t, entry.StartTime)
			assert.Empty(t, entry.EndTime)
		} else {
			assert.Equal(t, "10:00", entry.StartTime)
			assert.Equal(t, "19:00", entry.EndTime)
		}
	}
}

func TestCreateBarberWithoutSettingsStillCreates(t *testing.T) {
	barbers := &memBarbers{byID: map[string]models.Barber{}}
	schedules := &recordingSchedules{}
	svc := newCatalogService(barbers, schedules, &stubContent{err: mongo.ErrNoDocuments})

	b := &models.Barber{Name: "Ken"}
	require.NoError(t, svc.CreateBarber(context.Background(), b))

	// The barber exists; hours just were not prefilled.
	_, err := barbers.GetByID(context.Background(), b.ID)
	assert.NoError(t, err)
	assert.Empty(t, schedules.upserted)
}

func TestCreateBarberRequiresName(t *testing.T) {
	svc := newCatalogService(&memBarbers{byID: map[string]models.Barber{}}, &recordingSchedules{}, &stubContent{settings: defaultSettings()})

	err := svc.CreateBarber(context.Background(), &models.Barber{})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestServiceValidation(t *testing.T) {
	svc := newCatalogService(&memBarbers{byID: map[string]models.Barber{}}, &recordingSchedules{}, &stubContent{})

	cases := []struct {
		name  string
		input models.Service
	}{
		{"missing name", models.Service{DurationMin: 30, Price: 25}},
		{"zero duration", models.Service{Name: "Haircut", DurationMin: 0, Price: 25}},
		{"negative duration", models.Service{Name: "Haircut", DurationMin: -15, Price: 25}},
		{"negative price", models.Service{Name: "Haircut", DurationMin: 30, Price: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := tc.input
			assert.ErrorIs(t, svc.CreateService(context.Background(), &input), ErrValidation)
			input.ID = "svc-1"
			assert.ErrorIs(t, svc.UpdateService(context.Background(), &input), ErrValidation)
		})
	}

	valid := models.Service{Name: "Haircut", DurationMin: 30, Price: 25}
	require.NoError(t, svc.CreateService(context.Background(), &valid))
	got, err := svc.GetService(context.Background(), valid.ID)
	require.NoError(t, err)
	assert.Equal(t, "Haircut", got.Name)
}

func TestDeleteBarberRemovesImage(t *testing.T) {
	barbers := &memBarbers{byID: map[string]models.Barber{}}
	storage := &recordingStorage{}
	svc := newCatalogService(barbers, &recordingSchedules{}, &stubContent{settings: defaultSettings()})
	svc.Storage = storage

	b := &models.Barber{Name: "Ken", ImageURL: "https://cdn.example.com/barbers/x"}
	require.NoError(t, barbers.Create(context.Background(), b))

	require.NoError(t, svc.DeleteBarber(context.Background(), b.ID))

	_, err := barbers.GetByID(context.Background(), b.ID)
	assert.ErrorIs(t, err, mongo.ErrNoDocuments)
	assert.Equal(t, []string{"barbers/" + b.ID}, storage.deleted)
}

func TestDeleteBarberCascadeFailureLeavesBarber(t *testing.T) {
	barbers := &memBarbers{byID: map[string]models.Barber{}}
	storage := &recordingStorage{}
	svc := newCatalogService(barbers, &recordingSchedules{}, &stubContent{settings: defaultSettings()})
	svc.Storage = storage

	b := &models.Barber{Name: "Ken", ImageURL: "https://cdn.example.com/barbers/x"}
	require.NoError(t, barbers.Create(context.Background(), b))

	barbers.deleteErr = errors.New("transaction aborted")
	err := svc.DeleteBarber(context.Background(), b.ID)
	require.Error(t, err)

	// The barber survives and the image is untouched.
	_, err = barbers.GetByID(context.Background(), b.ID)
	assert.NoError(t, err)
	assert.Empty(t, storage.deleted)
}

func TestDeleteBarberStorageFailureIsNotFatal(t *testing.T) {
	barbers := &memBarbers{byID: map[string]models.Barber{}}
	svc := newCatalogService(barbers, &recordingSchedules{}, &stubContent{settings: defaultSettings()})
	svc.Storage = &recordingStorage{deleteErr: errors.New("cloudinary down")}

	b := &models.Barber{Name: "Ken", ImageURL: "https://cdn.example.com/barbers/x"}
	require.NoError(t, barbers.Create(context.Background(), b))

	assert.NoError(t, svc.DeleteBarber(context.Background(), b.ID))
}

func TestUploadBarberImageSavesURL(t *testing.T) {
	barbers := &memBarbers{byID: map[string]models.Barber{}}
	storage := &recordingStorage{}
	svc := newCatalogService(barbers, &recordingSchedules{}, &stubContent{settings: defaultSettings()})
	svc.Storage = storage

	b := &models.Barber{Name: "Ken"}
	require.NoError(t, barbers.Create(context.Background(), b))

	url, err := svc.UploadBarberImage(context.Background(), b.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/barbers/"+b.ID, url)
	assert.Equal(t, []string{"barbers/" + b.ID}, storage.uploaded)

	stored, err := barbers.GetByID(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, url, stored.ImageURL)
}

func TestDeleteBarberUnknownID(t *testing.T) {
	svc := newCatalogService(&memBarbers{byID: map[string]models.Barber{}}, &recordingSchedules{}, &stubContent{})

	err := svc.DeleteBarber(context.Background(), "nope")
	assert.ErrorIs(t, err, mongo.ErrNoDocuments)
}
