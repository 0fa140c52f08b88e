package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"barberbook/models"
)

type recordingRepo struct {
	upserted []models.ScheduleEntry
}

func (r *recordingRepo) Upsert(_ context.Context, entry *models.ScheduleEntry) error {
	r.upserted = append(r.upserted, *entry)
	return nil
}
func (r *recordingRepo) GetByBarber(context.Context, string) ([]models.ScheduleEntry, error) {
	return nil, nil
}
func (r *recordingRepo) GetByBarberAndDay(context.Context, string, int) (*models.ScheduleEntry, error) {
	return nil, mongo.ErrNoDocuments
}
func (r *recordingRepo) Delete(context.Context, string, int) error { return nil }
func (r *recordingRepo) EnsureIndexes(context.Context) error { return nil }

func TestSetEntryValidWindow(t *testing.T) {
	repo := &recordingRepo{}
	svc := &DefaultScheduleService{Repo: repo}

	err := svc.SetEntry(context.Background(), &models.ScheduleEntry{
		BarberID:  "barber-1",
		DayOfWeek: 2,
		StartTime: "09:00",
		EndTime:   "18:00",
	})
	require.NoError(t, err)
	require.Len(t, repo.upserted, 1)
}

func TestSetEntryDayOff(t *testing.T) {
	repo := &recordingRepo{}
	svc := &DefaultScheduleService{Repo: repo}

	err := svc.SetEntry(context.Background(), &models.ScheduleEntry{
		BarberID:  "barber-1",
		DayOfWeek: 0,
	})
	require.NoError(t, err)
	require.Len(t, repo.upserted, 1)
	assert.True(t, repo.upserted[0].IsDayOff())
}

func TestSetEntryRejectsBadInput(t *testing.T) {
	svc := &DefaultScheduleService{Repo: &recordingRepo{}}

	cases := []struct {
		name  string
		entry models.ScheduleEntry
	}{
		{"missing barber", models.ScheduleEntry{DayOfWeek: 1, StartTime: "09:00", EndTime: "18:00"}},
		{"day out of range", models.ScheduleEntry{BarberID: "b", DayOfWeek: 7, StartTime: "09:00", EndTime: "18:00"}},
		{"half blank window", models.ScheduleEntry{BarberID: "b", DayOfWeek: 1, StartTime: "09:00"}},
		{"bad time format", models.ScheduleEntry{BarberID: "b", DayOfWeek: 1, StartTime: "9am", EndTime: "18:00"}},
		{"inverted window", models.ScheduleEntry{BarberID: "b", DayOfWeek: 1, StartTime: "18:00", EndTime: "09:00"}},
		{"empty window", models.ScheduleEntry{BarberID: "b", DayOfWeek: 1, StartTime: "09:00", EndTime: "09:00"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			entry := tc.entry
			err := svc.SetEntry(context.Background(), &entry)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestClearDayWritesBlankEntry(t *testing.T) {
	repo := &recordingRepo{}
	svc := &DefaultScheduleService{Repo: repo}

	require.NoError(t, svc.ClearDay(context.Background(), "barber-1", 3))
	require.Len(t, repo.upserted, 1)
	assert.Equal(t, 3, repo.upserted[0].DayOfWeek)
	assert.True(t, repo.upserted[0].IsDayOff())

	assert.ErrorIs(t, svc.ClearDay(context.Background(), "barber-1", 9), ErrValidation)
}
