package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"medibook/database/repository"
	"medibook/models"
	"medibook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// movable lists the statuses an appointment can be rescheduled or cancelled from.
var movable = []models.AppointmentStatus{models.StatusScheduled, models.StatusConfirmed}

func validateBookingRequest(req models.BookingRequest) error {
	var missing []string
	if strings.TrimSpace(req.DoctorID) == "" {
		missing = append(missing, "doctorId")
	}
	if strings.TrimSpace(req.PatientID) == "" {
		missing = append(missing, "patientId")
	}
	if strings.TrimSpace(req.Date) == "" {
		missing = append(missing, "date")
	}
	if strings.TrimSpace(req.Time) == "" {
		missing = append(missing, "time")
	}
	if req.Type == "" {
		missing = append(missing, "type")
	}
	if len(missing) > 0 {
		return NewValidationError("Missing required fields: %s", strings.Join(missing, ", "))
	}
	if !req.Type.Valid() {
		return NewValidationError("Invalid appointment type %q, expected in-person or video", req.Type)
	}
	return nil
}

// parseSlot parses a request date and display time into the calendar day and start minute.
func (s *DefaultBookingService) parseSlot(date, displayTime string) (time.Time, int, error) {
	day, err := ParseDate(date, s.loc())
	if err != nil {
		return time.Time{}, 0, NewValidationError("%v", err)
	}
	minute, err := ParseDisplayTime(displayTime)
	if err != nil {
		return time.Time{}, 0, NewValidationError("%v", err)
	}
	return day, minute, nil
}

// checkFuture rejects past dates and, for today, starts at or before the current minute.
func (s *DefaultBookingService) checkFuture(day time.Time, minute int) error {
	now := s.now()
	today := startOfDay(now)
	if day.Before(today) {
		return NewInvalidDateError("Cannot book appointments in the past")
	}
	if day.Equal(today) && minute <= minuteOfDay(now) {
		return NewInvalidDateError("Cannot book a time that has already passed")
	}
	return nil
}

// checkBookable verifies the slot exists on the doctor's grid for that day and is not suppressed.
func (s *DefaultBookingService) checkBookable(ctx context.Context, doctor models.Doctor, day time.Time, minute int) error {
	weekday := day.Weekday().String()
	if !doctor.WorksOn(weekday) {
		return NewValidationError("Doctor does not work on %s", weekday)
	}
	if !s.Window.Contains(minute) {
		return NewValidationError("%s is not an available slot time", FormatMinutes(minute))
	}

	date := day.Format(utils.DateLayout)
	override, err := s.Availability.Get(ctx, doctor.ID, date)
	if err != nil {
		return fmt.Errorf("failed to load availability: %w", err)
	}
	if override != nil && !override.IsAvailable {
		return NewConflictError("Doctor is not available on %s", date)
	}
	return nil
}

func (s *DefaultBookingService) BookAppointment(ctx context.Context, req models.BookingRequest) (*models.Appointment, error) {
	if err := validateBookingRequest(req); err != nil {
		return nil, err
	}
	day, minute, err := s.parseSlot(req.Date, req.Time)
	if err != nil {
		return nil, err
	}

	doctor, err := s.getDoctor(ctx, req.DoctorID)
	if err != nil {
		return nil, err
	}
	if err := s.checkFuture(day, minute); err != nil {
		return nil, err
	}
	if err := s.checkBookable(ctx, *doctor, day, minute); err != nil {
		return nil, err
	}

	appt := &models.Appointment{
		ID:              uuid.New().String(),
		DoctorID:        doctor.ID,
		PatientID:       req.PatientID,
		Date:            day.Format(utils.DateLayout),
		StartMinute:     minute,
		Time:            FormatMinutes(minute),
		Type:            req.Type,
		Status:          models.StatusScheduled,
		ConsultationFee: EffectiveFee(doctor.ConsultationFee, req.Type, s.VideoDiscount),
		Notes:           req.Notes,
		CreatedAt:       s.now(),
	}
	if err := s.Appointments.Create(ctx, appt); err != nil {
		if errors.Is(err, repository.ErrSlotTaken) {
			return nil, NewConflictError("This time slot is already booked")
		}
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	s.logger().Info("Appointment booked",
		zap.String("appointmentId", appt.ID),
		zap.String("doctorId", appt.DoctorID),
		zap.String("patientId", appt.PatientID),
		zap.String("date", appt.Date),
		zap.String("time", appt.Time))
	s.scheduleReminder(ctx, *appt, *doctor)
	return appt, nil
}

func (s *DefaultBookingService) RescheduleAppointment(ctx context.Context, id string, req models.RescheduleRequest) (*models.Appointment, error) {
	if req.Date == "" && req.Time == "" {
		return nil, NewValidationError("Missing required fields: date or time")
	}

	current, err := s.getAppointment(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status.Terminal() {
		return nil, NewInvalidOperationError("Cannot reschedule a %s appointment", current.Status)
	}

	date, displayTime := req.Date, req.Time
	if date == "" {
		date = current.Date
	}
	if displayTime == "" {
		displayTime = FormatMinutes(current.StartMinute)
	}
	day, minute, err := s.parseSlot(date, displayTime)
	if err != nil {
		return nil, err
	}

	doctor, err := s.getDoctor(ctx, current.DoctorID)
	if err != nil {
		return nil, err
	}
	if err := s.checkFuture(day, minute); err != nil {
		return nil, err
	}
	if err := s.checkBookable(ctx, *doctor, day, minute); err != nil {
		return nil, err
	}

	now := s.now()
	status := models.StatusScheduled
	newDate := day.Format(utils.DateLayout)
	display := FormatMinutes(minute)
	updated, err := s.Appointments.Transition(ctx, id, movable, models.AppointmentUpdate{
		Status:        &status,
		Date:          &newDate,
		StartMinute:   &minute,
		Time:          &display,
		UpdatedAt:     now,
		RescheduledAt: &now,
	})
	if err != nil {
		return nil, s.translateTransition(err, "reschedule")
	}

	s.logger().Info("Appointment rescheduled",
		zap.String("appointmentId", id),
		zap.String("fromDate", current.Date),
		zap.String("fromTime", current.Time),
		zap.String("toDate", updated.Date),
		zap.String("toTime", updated.Time))
	s.cancelReminder(ctx, id)
	s.scheduleReminder(ctx, *updated, *doctor)
	return updated, nil
}

func (s *DefaultBookingService) CancelAppointment(ctx context.Context, id, reason string) (*models.Appointment, error) {
	current, err := s.getAppointment(ctx, id)
	if err != nil {
		return nil, err
	}
	switch current.Status {
	case models.StatusCancelled:
		return nil, NewInvalidOperationError("Appointment is already cancelled")
	case models.StatusCompleted:
		return nil, NewInvalidOperationError("Cannot cancel a completed appointment")
	}

	now := s.now()
	status := models.StatusCancelled
	update := models.AppointmentUpdate{Status: &status, UpdatedAt: now, CancelledAt: &now}
	if reason = strings.TrimSpace(reason); reason != "" {
		update.CancelReason = &reason
	}
	updated, err := s.Appointments.Transition(ctx, id, movable, update)
	if err != nil {
		return nil, s.translateTransition(err, "cancel")
	}

	s.logger().Info("Appointment cancelled", zap.String("appointmentId", id), zap.String("reason", reason))
	s.cancelReminder(ctx, id)
	return updated, nil
}

func (s *DefaultBookingService) UpdateAppointmentStatus(ctx context.Context, id string, status models.AppointmentStatus, notes *string) (*models.Appointment, error) {
	if !status.Valid() {
		return nil, NewValidationError("Invalid status %q", status)
	}
	current, err := s.getAppointment(ctx, id)
	if err != nil {
		return nil, err
	}
	if !current.Status.CanTransition(status) {
		return nil, NewInvalidOperationError("Cannot change status from %s to %s", current.Status, status)
	}

	now := s.now()
	update := models.AppointmentUpdate{Status: &status, Notes: notes, UpdatedAt: now}
	switch status {
	case models.StatusCompleted:
		update.CompletedAt = &now
	case models.StatusCancelled:
		update.CancelledAt = &now
	}
	updated, err := s.Appointments.Transition(ctx, id, []models.AppointmentStatus{current.Status}, update)
	if err != nil {
		return nil, s.translateTransition(err, "update")
	}

	s.logger().Info("Appointment status updated",
		zap.String("appointmentId", id),
		zap.String("from", string(current.Status)),
		zap.String("to", string(status)))
	if status.Terminal() {
		s.cancelReminder(ctx, id)
	}
	return updated, nil
}

func (s *DefaultBookingService) translateTransition(err error, action string) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return NewNotFoundError("Appointment not found")
	case errors.Is(err, repository.ErrSlotTaken):
		return NewConflictError("This time slot is already booked")
	case errors.Is(err, repository.ErrStaleState):
		return NewInvalidOperationError("Appointment changed while trying to %s it", action)
	}
	return fmt.Errorf("failed to %s appointment: %w", action, err)
}

func (s *DefaultBookingService) scheduleReminder(ctx context.Context, appt models.Appointment, doctor models.Doctor) {
	if s.Reminders == nil {
		return
	}
	startsAt, err := SlotStart(appt.Date, appt.StartMinute, s.loc())
	if err != nil {
		return
	}
	if err := s.Reminders.ScheduleReminder(ctx, appt, doctor, startsAt); err != nil {
		s.logger().Warn("Failed to schedule reminder", zap.String("appointmentId", appt.ID), zap.Error(err))
	}
}

func (s *DefaultBookingService) cancelReminder(ctx context.Context, appointmentID string) {
	if s.Reminders == nil {
		return
	}
	if err := s.Reminders.CancelReminder(ctx, appointmentID); err != nil {
		s.logger().Warn("Failed to cancel reminder", zap.String("appointmentId", appointmentID), zap.Error(err))
	}
}
