package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"medibook/models"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeSendReminder = "reminder:send"

// ReminderQueue is the asynq queue reminder tasks are enqueued on.
const ReminderQueue = "default"

// ReminderTaskID is the asynq task id of an appointment's reminder. One reminder per appointment.
func ReminderTaskID(appointmentID string) string {
	return "reminder:" + appointmentID
}

func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{
		asynq.ProcessAt(fireAt),
		asynq.TaskID(ReminderTaskID(payload.AppointmentID)),
		asynq.Queue(ReminderQueue),
		asynq.MaxRetry(3),
	}

	return task, opts, nil
}

// BuildReminderPayload describes the reminder for appt. fireAt is when the task runs.
func BuildReminderPayload(appt models.Appointment, doctor models.Doctor, fireAt time.Time) models.ReminderPayload {
	return models.ReminderPayload{
		AppointmentID: appt.ID,
		PatientID:     appt.PatientID,
		DoctorID:      appt.DoctorID,
		Date:          appt.Date,
		StartMinute:   appt.StartMinute,
		Title:         "Upcoming appointment",
		Body:          fmt.Sprintf("Your %s appointment with %s is on %s at %s.", appt.Type, doctor.Name, appt.Date, appt.Time),
		FireDate:      fireAt.Format(time.RFC3339),
	}
}

type enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

type deleter interface {
	DeleteTask(queue, id string) error
}

// AsynqReminderScheduler enqueues reminders Lead before each appointment starts.
type AsynqReminderScheduler struct {
	client    enqueuer
	inspector deleter
	lead      time.Duration
	now       func() time.Time
	logger    *zap.Logger
}

func NewAsynqReminderScheduler(client *asynq.Client, inspector *asynq.Inspector, lead time.Duration, logger *zap.Logger) *AsynqReminderScheduler {
	return newReminderScheduler(client, inspector, lead, time.Now, logger)
}

func newReminderScheduler(client enqueuer, inspector deleter, lead time.Duration, now func() time.Time, logger *zap.Logger) *AsynqReminderScheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AsynqReminderScheduler{client: client, inspector: inspector, lead: lead, now: now, logger: logger}
}

// ScheduleReminder enqueues the reminder. Appointments that already started are skipped, and
// a lead time reaching into the past fires immediately.
func (s *AsynqReminderScheduler) ScheduleReminder(ctx context.Context, appt models.Appointment, doctor models.Doctor, startsAt time.Time) error {
	now := s.now()
	if !startsAt.After(now) {
		return nil
	}
	fireAt := startsAt.Add(-s.lead)
	if fireAt.Before(now) {
		fireAt = now
	}

	task, opts, err := NewReminderTask(BuildReminderPayload(appt, doctor, fireAt), fireAt)
	if err != nil {
		return fmt.Errorf("failed to build reminder task: %w", err)
	}
	info, err := s.client.EnqueueContext(ctx, task, opts...)
	if err != nil {
		if errors.Is(err, asynq.ErrTaskIDConflict) {
			return nil
		}
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}

	s.logger.Debug("Reminder scheduled",
		zap.String("appointmentId", appt.ID),
		zap.String("taskId", info.ID),
		zap.Time("fireAt", fireAt))
	return nil
}

// CancelReminder removes a pending reminder. A reminder that never existed is not an error.
func (s *AsynqReminderScheduler) CancelReminder(_ context.Context, appointmentID string) error {
	err := s.inspector.DeleteTask(ReminderQueue, ReminderTaskID(appointmentID))
	if err == nil || errors.Is(err, asynq.ErrTaskNotFound) || errors.Is(err, asynq.ErrQueueNotFound) {
		return nil
	}
	return fmt.Errorf("failed to delete reminder: %w", err)
}
