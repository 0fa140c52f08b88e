// File: cron/worker.go
package cron

import (
	"context"
	"encoding/json"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"barberbook/config"
	appointmentRepo "barberbook/database/repository/appointment"
	"barberbook/models"
	"barberbook/services/notification"
	"barberbook/services/tasks"
	"barberbook/utils"
)

// InitReminderWorker runs the asynq worker in the background. It owns
// its own server lifecycle; the HTTP server shuts it down implicitly
// on process exit.
func InitReminderWorker(notifSvc notification.NotificationService, appointments appointmentRepo.AppointmentRepository) {
	logger := utils.GetLogger()

	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendReminder, handleReminderTask(notifSvc, appointments))

	go func() {
		logger.Info("starting reminder worker")
		if err := srv.Run(mux); err != nil {
			logger.Error("reminder worker stopped", zap.Error(err))
		}
	}()
}

// handleReminderTask delivers one reminder. The appointment status is
// re-checked at fire time so a cancellation between enqueue and
// delivery drops the message.
func handleReminderTask(notifSvc notification.NotificationService, appointments appointmentRepo.AppointmentRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("invalid reminder payload", zap.Error(err))
			return err
		}

		ap, err := appointments.GetByID(ctx, p.AppointmentID)
		if err != nil {
			logger.Warn("reminder target not found",
				zap.String("appointmentId", p.AppointmentID), zap.Error(err))
			return nil
		}
		if ap.Status != models.AppointmentConfirmed {
			logger.Debug("skipping reminder for non-confirmed appointment",
				zap.String("appointmentId", p.AppointmentID), zap.String("status", ap.Status))
			return nil
		}

		data := map[string]string{
			"appointmentId": p.AppointmentID,
		}
		if err := notifSvc.SendCustomerPush(ctx, p.CustomerID, p.Title, p.Body, data); err != nil {
			logger.Error("failed to send reminder",
				zap.String("appointmentId", p.AppointmentID), zap.Error(err))
			return err
		}
		return nil
	}
}
