package appointmentRepo

import (
	"context"

	"medibook/models"
)

// AppointmentRepository is the appointment store. Implementations enforce that at most
// one active appointment exists per (doctorId, date, startMinute).
type AppointmentRepository interface {
	// Create inserts a new appointment. An active appointment already holding the slot
	// returns repository.ErrSlotTaken.
	Create(ctx context.Context, appt *models.Appointment) error
	// GetByID returns repository.ErrNotFound for unknown IDs.
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	// List returns appointments matching filter ordered by date and start minute.
	List(ctx context.Context, filter models.AppointmentFilter) ([]models.Appointment, error)
	// ListActiveByDoctorDate returns the non-cancelled appointments of a doctor on one date.
	ListActiveByDoctorDate(ctx context.Context, doctorID, date string) ([]models.Appointment, error)
	// Transition applies update only while the stored status is one of from.
	// It returns repository.ErrNotFound, repository.ErrStaleState when the status moved
	// underneath the caller, or repository.ErrSlotTaken when the target slot is held by
	// another active appointment.
	Transition(ctx context.Context, id string, from []models.AppointmentStatus, update models.AppointmentUpdate) (*models.Appointment, error)
}
