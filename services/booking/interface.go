package booking

import (
	"context"
	"time"

	appointmentRepo "medibook/database/repository/appointment"
	availabilityRepo "medibook/database/repository/availability"
	doctorRepo "medibook/database/repository/doctor"
	"medibook/models"

	"go.uber.org/zap"
)

// BookingService is the slot generation and appointment lifecycle API.
type BookingService interface {
	GetSlots(ctx context.Context, doctorID, date string) (*models.DaySlots, error)

	GetAvailabilityOverride(ctx context.Context, doctorID, date string) (*models.AvailabilityOverride, error)
	SetAvailabilityOverride(ctx context.Context, doctorID string, req models.AvailabilityRequest) (*models.AvailabilityOverride, error)
	ListAvailabilityOverrides(ctx context.Context, doctorID string) ([]models.AvailabilityOverride, error)

	BookAppointment(ctx context.Context, req models.BookingRequest) (*models.Appointment, error)
	RescheduleAppointment(ctx context.Context, id string, req models.RescheduleRequest) (*models.Appointment, error)
	CancelAppointment(ctx context.Context, id, reason string) (*models.Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, id string, status models.AppointmentStatus, notes *string) (*models.Appointment, error)

	GetAppointment(ctx context.Context, id string) (*models.AppointmentView, error)
	ListAppointments(ctx context.Context, filter models.AppointmentFilter) ([]models.AppointmentView, error)
	GetDoctorSchedule(ctx context.Context, doctorID string) (*models.DoctorSchedule, error)
}

// ReminderScheduler queues appointment reminders. Failures never fail a booking.
type ReminderScheduler interface {
	ScheduleReminder(ctx context.Context, appt models.Appointment, doctor models.Doctor, startsAt time.Time) error
	CancelReminder(ctx context.Context, appointmentID string) error
}

// DefaultBookingService implements BookingService on top of the repositories.
type DefaultBookingService struct {
	Doctors      doctorRepo.DoctorRepository
	Appointments appointmentRepo.AppointmentRepository
	Availability availabilityRepo.AvailabilityRepository
	Reminders    ReminderScheduler // optional

	Window        SlotWindow
	VideoDiscount float64
	Location      *time.Location
	Clock         func() time.Time
	Logger        *zap.Logger
}

func (s *DefaultBookingService) loc() *time.Location {
	if s.Location == nil {
		return time.Local
	}
	return s.Location
}

// now returns the current instant in the service location.
func (s *DefaultBookingService) now() time.Time {
	if s.Clock == nil {
		return time.Now().In(s.loc())
	}
	return s.Clock().In(s.loc())
}

func (s *DefaultBookingService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}
