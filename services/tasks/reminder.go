// File: services/tasks/reminder.go
package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"barberbook/config"
	"barberbook/models"
)

const TypeSendReminder = "reminder:send"

// NewReminderTask builds the delayed asynq task for one appointment.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// ReminderQueue enqueues appointment reminders on the Redis-backed
// task queue. It satisfies booking.ReminderScheduler.
type ReminderQueue struct {
	client  *asynq.Client
	leadMin int
}

// NewReminderQueue connects the asynq client using the configured
// Redis queue database.
func NewReminderQueue() *ReminderQueue {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	return &ReminderQueue{client: client, leadMin: config.AppConfig.ReminderLeadMin}
}

// ScheduleAppointmentReminder queues a reminder ahead of the start
// time. Appointments starting sooner than the lead window get no
// reminder.
func (q *ReminderQueue) ScheduleAppointmentReminder(ctx context.Context, ap models.Appointment) error {
	fireAt := ap.StartTime.Add(-time.Duration(q.leadMin) * time.Minute)
	if !fireAt.After(time.Now()) {
		return nil
	}

	payload := models.ReminderPayload{
		AppointmentID: ap.ID,
		CustomerID:    ap.CustomerID,
		Title:         "Upcoming appointment",
		Body:          fmt.Sprintf("%s with %s at %s", ap.ServiceName, ap.BarberName, ap.StartTime.Format("15:04")),
	}
	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return err
	}
	if _, err := q.client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("enqueue reminder: %w", err)
	}
	return nil
}

// Close releases the underlying queue connection.
func (q *ReminderQueue) Close() error {
	return q.client.Close()
}
