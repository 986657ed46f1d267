package appointmentRepo

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"medibook/database/repository"
	"medibook/models"
)

// MemoryAppointmentRepo keeps appointments in process memory. Every write scans for a
// conflicting slot and mutates under the same lock.
type MemoryAppointmentRepo struct {
	mu           sync.RWMutex
	appointments map[string]*models.Appointment
}

func NewMemoryAppointmentRepo() *MemoryAppointmentRepo {
	return &MemoryAppointmentRepo{appointments: make(map[string]*models.Appointment)}
}

func (r *MemoryAppointmentRepo) Create(_ context.Context, appt *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.appointments[appt.ID]; exists {
		return fmt.Errorf("appointment %s: %w", appt.ID, repository.ErrDuplicate)
	}
	appt.Active = appt.Status.Active()
	if appt.Active && r.slotHeldLocked(appt.DoctorID, appt.Date, appt.StartMinute, "") {
		return fmt.Errorf("doctor %s %s minute %d: %w", appt.DoctorID, appt.Date, appt.StartMinute, repository.ErrSlotTaken)
	}
	stored := *appt
	r.appointments[appt.ID] = &stored
	return nil
}

func (r *MemoryAppointmentRepo) GetByID(_ context.Context, id string) (*models.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.appointments[id]
	if !ok {
		return nil, fmt.Errorf("appointment %s: %w", id, repository.ErrNotFound)
	}
	out := *a
	return &out, nil
}

func (r *MemoryAppointmentRepo) List(_ context.Context, filter models.AppointmentFilter) ([]models.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := make([]models.Appointment, 0)
	for _, a := range r.appointments {
		if matches(a, filter) {
			results = append(results, *a)
		}
	}
	sortAppointments(results)
	return results, nil
}

func (r *MemoryAppointmentRepo) ListActiveByDoctorDate(_ context.Context, doctorID, date string) ([]models.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := make([]models.Appointment, 0)
	for _, a := range r.appointments {
		if a.Active && a.DoctorID == doctorID && a.Date == date {
			results = append(results, *a)
		}
	}
	sortAppointments(results)
	return results, nil
}

func (r *MemoryAppointmentRepo) Transition(_ context.Context, id string, from []models.AppointmentStatus, update models.AppointmentUpdate) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.appointments[id]
	if !ok {
		return nil, fmt.Errorf("appointment %s: %w", id, repository.ErrNotFound)
	}
	if !statusIn(current.Status, from) {
		return nil, fmt.Errorf("appointment %s is %s: %w", id, current.Status, repository.ErrStaleState)
	}

	next := *current
	update.Apply(&next)
	if next.Active && update.MovesSlot() && r.slotHeldLocked(next.DoctorID, next.Date, next.StartMinute, id) {
		return nil, fmt.Errorf("doctor %s %s minute %d: %w", next.DoctorID, next.Date, next.StartMinute, repository.ErrSlotTaken)
	}

	r.appointments[id] = &next
	out := next
	return &out, nil
}

// slotHeldLocked reports whether an active appointment other than exceptID holds the slot.
func (r *MemoryAppointmentRepo) slotHeldLocked(doctorID, date string, startMinute int, exceptID string) bool {
	for _, a := range r.appointments {
		if a.ID == exceptID || !a.Active {
			continue
		}
		if a.DoctorID == doctorID && a.Date == date && a.StartMinute == startMinute {
			return true
		}
	}
	return false
}

func matches(a *models.Appointment, f models.AppointmentFilter) bool {
	if f.DoctorID != "" && a.DoctorID != f.DoctorID {
		return false
	}
	if f.PatientID != "" && a.PatientID != f.PatientID {
		return false
	}
	if f.Date != "" && a.Date != f.Date {
		return false
	}
	if f.Status != "" && a.Status != f.Status {
		return false
	}
	return true
}

func statusIn(s models.AppointmentStatus, set []models.AppointmentStatus) bool {
	for _, candidate := range set {
		if s == candidate {
			return true
		}
	}
	return false
}

func sortAppointments(list []models.Appointment) {
	sort.Slice(list, func(i, j int) bool {
		if list[i].Date != list[j].Date {
			return list[i].Date < list[j].Date
		}
		if list[i].StartMinute != list[j].StartMinute {
			return list[i].StartMinute < list[j].StartMinute
		}
		return list[i].CreatedAt.Before(list[j].CreatedAt)
	})
}
