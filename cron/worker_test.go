package cron

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"barberbook/models"
	"barberbook/services/tasks"
)

type recordingNotifier struct {
	sent []string
	err  error
}

func (r *recordingNotifier) SendCustomerPush(_ context.Context, customerID, _, _ string, _ map[string]string) error {
	if r.err != nil {
		return r.err
	}
	r.sent = append(r.sent, customerID)
	return nil
}

type stubAppointments struct {
	byID map[string]*models.Appointment
}

func (s *stubAppointments) Create(context.Context, *models.Appointment) error { return nil }
func (s *stubAppointments) GetByID(_ context.Context, id string) (*models.Appointment, error) {
	ap, ok := s.byID[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return ap, nil
}
func (s *stubAppointments) GetByCustomer(context.Context, string) ([]models.Appointment, error) {
	return nil, nil
}
func (s *stubAppointments) GetByBarberAndRange(context.Context, string, time.Time, time.Time) ([]models.Appointment, error) {
	return nil, nil
}
func (s *stubAppointments) GetAllInRange(context.Context, time.Time, time.Time) ([]models.Appointment, error) {
	return nil, nil
}
func (s *stubAppointments) UpdateStatus(context.Context, string, string, time.Time) error {
	return nil
}
func (s *stubAppointments) UpdateStartTime(context.Context, string, time.Time, time.Time) error {
	return nil
}
func (s *stubAppointments) EnsureIndexes(context.Context) error { return nil }

func reminderTask(t *testing.T, appointmentID string) *asynq.Task {
	t.Helper()
	payload, err := json.Marshal(models.ReminderPayload{
		AppointmentID: appointmentID,
		CustomerID:    "uid-1",
		Title:         "Upcoming appointment",
		Body:          "Haircut with Ken",
	})
	require.NoError(t, err)
	return asynq.NewTask(tasks.TypeSendReminder, payload)
}

func TestReminderTaskDeliversForConfirmed(t *testing.T) {
	notifier := &recordingNotifier{}
	appointments := &stubAppointments{byID: map[string]*models.Appointment{
		"ap-1": {ID: "ap-1", CustomerID: "uid-1", Status: models.AppointmentConfirmed},
	}}
	handler := handleReminderTask(notifier, appointments)

	require.NoError(t, handler(context.Background(), reminderTask(t, "ap-1")))
	assert.Equal(t, []string{"uid-1"}, notifier.sent)
}

func TestReminderTaskSkipsCancelled(t *testing.T) {
	notifier := &recordingNotifier{}
	appointments := &stubAppointments{byID: map[string]*models.Appointment{
		"ap-1": {ID: "ap-1", CustomerID: "uid-1", Status: models.AppointmentCancelled},
	}}
	handler := handleReminderTask(notifier, appointments)

	// Cancelled between enqueue and fire time: dropped without error so
	// asynq does not retry.
	require.NoError(t, handler(context.Background(), reminderTask(t, "ap-1")))
	assert.Empty(t, notifier.sent)
}

func TestReminderTaskSkipsMissingAppointment(t *testing.T) {
	notifier := &recordingNotifier{}
	appointments := &stubAppointments{byID: map[string]*models.Appointment{}}
	handler := handleReminderTask(notifier, appointments)

	require.NoError(t, handler(context.Background(), reminderTask(t, "gone")))
	assert.Empty(t, notifier.sent)
}

func TestReminderTaskReturnsSendFailure(t *testing.T) {
	sendErr := errors.New("fcm unavailable")
	notifier := &recordingNotifier{err: sendErr}
	appointments := &stubAppointments{byID: map[string]*models.Appointment{
		"ap-1": {ID: "ap-1", CustomerID: "uid-1", Status: models.AppointmentConfirmed},
	}}
	handler := handleReminderTask(notifier, appointments)

	// A delivery failure surfaces so the queue retries later.
	assert.ErrorIs(t, handler(context.Background(), reminderTask(t, "ap-1")), sendErr)
}
