package booking

import (
	"context"
	"errors"
	"fmt"

	"medibook/database/repository"
	"medibook/models"
	"medibook/utils"
)

func (s *DefaultBookingService) getAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	appt, err := s.Appointments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewNotFoundError("Appointment not found")
		}
		return nil, fmt.Errorf("failed to load appointment %s: %w", id, err)
	}
	return appt, nil
}

func (s *DefaultBookingService) GetAppointment(ctx context.Context, id string) (*models.AppointmentView, error) {
	appt, err := s.getAppointment(ctx, id)
	if err != nil {
		return nil, err
	}
	views := s.withDoctors(ctx, []models.Appointment{*appt})
	return &views[0], nil
}

func (s *DefaultBookingService) ListAppointments(ctx context.Context, filter models.AppointmentFilter) ([]models.AppointmentView, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, NewValidationError("Invalid status %q", filter.Status)
	}
	appointments, err := s.Appointments.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return s.withDoctors(ctx, appointments), nil
}

// GetDoctorSchedule groups a doctor's appointments into today, upcoming, past and cancelled.
func (s *DefaultBookingService) GetDoctorSchedule(ctx context.Context, doctorID string) (*models.DoctorSchedule, error) {
	if _, err := s.getDoctor(ctx, doctorID); err != nil {
		return nil, err
	}
	appointments, err := s.Appointments.List(ctx, models.AppointmentFilter{DoctorID: doctorID})
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}

	today := s.now().Format(utils.DateLayout)
	schedule := &models.DoctorSchedule{
		Appointments: appointments,
		Today:        []models.Appointment{},
		Upcoming:     []models.Appointment{},
		Past:         []models.Appointment{},
		Cancelled:    []models.Appointment{},
		Total:        len(appointments),
	}
	for _, a := range appointments {
		switch {
		case a.Status == models.StatusCancelled:
			schedule.Cancelled = append(schedule.Cancelled, a)
		case a.Date == today:
			schedule.Today = append(schedule.Today, a)
		case a.Date > today:
			schedule.Upcoming = append(schedule.Upcoming, a)
		default:
			schedule.Past = append(schedule.Past, a)
		}
	}
	return schedule, nil
}

// withDoctors attaches a doctor summary to each appointment. Unknown doctors leave Doctor nil.
func (s *DefaultBookingService) withDoctors(ctx context.Context, appointments []models.Appointment) []models.AppointmentView {
	summaries := make(map[string]*models.DoctorSummary)
	views := make([]models.AppointmentView, 0, len(appointments))
	for _, a := range appointments {
		summary, seen := summaries[a.DoctorID]
		if !seen {
			if d, err := s.Doctors.GetByID(ctx, a.DoctorID); err == nil {
				sum := d.Summary()
				summary = &sum
			}
			summaries[a.DoctorID] = summary
		}
		views = append(views, models.AppointmentView{Appointment: a, Doctor: summary})
	}
	return views
}
