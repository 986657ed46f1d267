package cron

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"medibook/config"
	"medibook/database/repository"
	appointmentRepo "medibook/database/repository/appointment"
	"medibook/models"
	"medibook/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// ReminderWorker consumes reminder tasks and delivers them for appointments that still hold
// the slot they were scheduled for.
type ReminderWorker struct {
	srv          *asynq.Server
	appointments appointmentRepo.AppointmentRepository
	logger       *zap.Logger
}

func NewReminderWorker(cfg config.Config, appointments appointmentRepo.AppointmentRepository, logger *zap.Logger) *ReminderWorker {
	redisOpts := asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				tasks.ReminderQueue: 1,
			},
		},
	)
	return &ReminderWorker{srv: srv, appointments: appointments, logger: logger}
}

// Start runs the worker in the background, retrying startup with backoff.
func (w *ReminderWorker) Start() {
	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendReminder, HandleReminderTask(w.appointments, w.logger))

	go func() {
		w.logger.Info("Starting reminder worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := w.srv.Run(mux)
			if err == nil {
				return
			}
			w.logger.Error("Reminder worker failed to start",
				zap.Int("attempt", attempts),
				zap.Int("maxAttempts", maxAttempts),
				zap.Error(err))
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
		w.logger.Error("Reminder worker gave up; reminders are disabled")
	}()
}

func (w *ReminderWorker) Shutdown() {
	w.srv.Shutdown()
}

// HandleReminderTask re-reads the appointment before delivering. Cancelled, completed or
// moved appointments are skipped without error so the task is not retried.
func HandleReminderTask(appointments appointmentRepo.AppointmentRepository, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("Invalid reminder payload", zap.Error(err))
			return fmt.Errorf("invalid reminder payload: %v: %w", err, asynq.SkipRetry)
		}

		appt, err := appointments.GetByID(ctx, p.AppointmentID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				logger.Warn("Reminder for unknown appointment", zap.String("appointmentId", p.AppointmentID))
				return nil
			}
			return err
		}

		if appt.Status.Terminal() || appt.Date != p.Date || appt.StartMinute != p.StartMinute {
			logger.Info("Skipping stale reminder",
				zap.String("appointmentId", appt.ID),
				zap.String("status", string(appt.Status)))
			return nil
		}

		// Push delivery belongs to the notification service; the worker records the reminder.
		logger.Info("Appointment reminder",
			zap.String("appointmentId", appt.ID),
			zap.String("patientId", p.PatientID),
			zap.String("doctorId", p.DoctorID),
			zap.String("title", p.Title),
			zap.String("body", p.Body),
			zap.String("fireDate", p.FireDate))
		return nil
	}
}
