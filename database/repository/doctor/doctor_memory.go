package doctorRepo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"medibook/database/repository"
	"medibook/models"
)

// MemoryDoctorRepo keeps the directory in process memory, in insertion order.
type MemoryDoctorRepo struct {
	mu      sync.RWMutex
	doctors []models.Doctor
	index   map[string]int
}

func NewMemoryDoctorRepo() *MemoryDoctorRepo {
	return &MemoryDoctorRepo{index: make(map[string]int)}
}

func (r *MemoryDoctorRepo) GetByID(_ context.Context, id string) (*models.Doctor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return nil, fmt.Errorf("doctor %s: %w", id, repository.ErrNotFound)
	}
	d := cloneDoctor(r.doctors[i])
	return &d, nil
}

func (r *MemoryDoctorRepo) Search(_ context.Context, query, specialty string) ([]models.Doctor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q := strings.ToLower(query)
	results := make([]models.Doctor, 0, len(r.doctors))
	for _, d := range r.doctors {
		if !MatchesSearch(d, q, specialty) {
			continue
		}
		results = append(results, cloneDoctor(d))
	}
	return results, nil
}

func (r *MemoryDoctorRepo) Create(_ context.Context, doctor *models.Doctor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[doctor.ID]; exists {
		return fmt.Errorf("doctor %s: %w", doctor.ID, repository.ErrDuplicate)
	}
	r.index[doctor.ID] = len(r.doctors)
	r.doctors = append(r.doctors, cloneDoctor(*doctor))
	return nil
}

// MatchesSearch applies the directory search rules to one doctor. lowerQuery must already be lower-cased.
func MatchesSearch(d models.Doctor, lowerQuery, specialty string) bool {
	matchesQuery := lowerQuery == "" ||
		strings.Contains(strings.ToLower(d.Name), lowerQuery) ||
		strings.Contains(strings.ToLower(d.Specialization), lowerQuery) ||
		strings.Contains(strings.ToLower(d.Location), lowerQuery)

	matchesSpecialty := specialty == "" || strings.EqualFold(specialty, "all") ||
		strings.EqualFold(d.Specialization, specialty)

	return matchesQuery && matchesSpecialty
}

func cloneDoctor(d models.Doctor) models.Doctor {
	d.WorkingDays = append([]string(nil), d.WorkingDays...)
	d.Languages = append([]string(nil), d.Languages...)
	d.Qualifications = append([]string(nil), d.Qualifications...)
	return d
}

func isDuplicate(err error) bool {
	return errors.Is(err, repository.ErrDuplicate)
}
