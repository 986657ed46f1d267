package booking

import (
	"context"
	"errors"
	"fmt"

	"medibook/database/repository"
	"medibook/models"
	"medibook/utils"

	"go.uber.org/zap"
)

// getDoctor resolves a doctor, translating a missing record into NotFound.
func (s *DefaultBookingService) getDoctor(ctx context.Context, doctorID string) (*models.Doctor, error) {
	doctor, err := s.Doctors.GetByID(ctx, doctorID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewNotFoundError("Doctor not found")
		}
		return nil, fmt.Errorf("failed to load doctor %s: %w", doctorID, err)
	}
	return doctor, nil
}

func (s *DefaultBookingService) GetSlots(ctx context.Context, doctorID, date string) (*models.DaySlots, error) {
	now := s.now()
	if date == "" {
		date = now.Format(utils.DateLayout)
	}
	day, err := ParseDate(date, s.loc())
	if err != nil {
		return nil, NewValidationError("%v", err)
	}
	date = day.Format(utils.DateLayout)

	doctor, err := s.getDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	if day.Before(startOfDay(now)) {
		return nil, NewInvalidDateError("Cannot get slots for past dates")
	}

	override, err := s.Availability.Get(ctx, doctorID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load availability: %w", err)
	}
	if override != nil && !override.IsAvailable {
		// No slots are generated for a suppressed day.
		slots := newDaySlots(*doctor, day)
		slots.Override = override
		return &slots, nil
	}

	booked, err := s.Appointments.ListActiveByDoctorDate(ctx, doctorID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load booked slots: %w", err)
	}

	slots := BuildDaySlots(*doctor, day, now, s.Window, booked)
	slots.Override = override
	s.logger().Debug("Generated slots",
		zap.String("doctorId", doctorID),
		zap.String("date", date),
		zap.Int("total", slots.TotalSlots),
		zap.Int("available", slots.AvailableSlots))
	return &slots, nil
}

func (s *DefaultBookingService) GetAvailabilityOverride(ctx context.Context, doctorID, date string) (*models.AvailabilityOverride, error) {
	day, err := ParseDate(date, s.loc())
	if err != nil {
		return nil, NewValidationError("%v", err)
	}
	if _, err := s.getDoctor(ctx, doctorID); err != nil {
		return nil, err
	}
	override, err := s.Availability.Get(ctx, doctorID, day.Format(utils.DateLayout))
	if err != nil {
		return nil, fmt.Errorf("failed to load availability: %w", err)
	}
	return override, nil
}

func (s *DefaultBookingService) SetAvailabilityOverride(ctx context.Context, doctorID string, req models.AvailabilityRequest) (*models.AvailabilityOverride, error) {
	if req.Date == "" || req.IsAvailable == nil {
		return nil, NewValidationError("Missing required fields: date and isAvailable")
	}
	day, err := ParseDate(req.Date, s.loc())
	if err != nil {
		return nil, NewValidationError("%v", err)
	}
	if _, err := s.getDoctor(ctx, doctorID); err != nil {
		return nil, err
	}

	override := &models.AvailabilityOverride{
		DoctorID:    doctorID,
		Date:        day.Format(utils.DateLayout),
		IsAvailable: *req.IsAvailable,
		Notes:       req.Notes,
		UpdatedAt:   s.now(),
	}
	if err := s.Availability.Upsert(ctx, override); err != nil {
		return nil, fmt.Errorf("failed to save availability: %w", err)
	}
	s.logger().Info("Availability override saved",
		zap.String("doctorId", doctorID),
		zap.String("date", override.Date),
		zap.Bool("isAvailable", override.IsAvailable))
	return override, nil
}

func (s *DefaultBookingService) ListAvailabilityOverrides(ctx context.Context, doctorID string) ([]models.AvailabilityOverride, error) {
	if _, err := s.getDoctor(ctx, doctorID); err != nil {
		return nil, err
	}
	overrides, err := s.Availability.ListByDoctor(ctx, doctorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list availability: %w", err)
	}
	return overrides, nil
}
