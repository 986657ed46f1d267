package availabilityRepo

import (
	"context"
	"sort"
	"sync"

	"medibook/models"
)

type overrideKey struct {
	doctorID string
	date     string
}

type MemoryAvailabilityRepo struct {
	mu        sync.RWMutex
	overrides map[overrideKey]models.AvailabilityOverride
}

func NewMemoryAvailabilityRepo() *MemoryAvailabilityRepo {
	return &MemoryAvailabilityRepo{overrides: make(map[overrideKey]models.AvailabilityOverride)}
}

func (r *MemoryAvailabilityRepo) Get(_ context.Context, doctorID, date string) (*models.AvailabilityOverride, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.overrides[overrideKey{doctorID, date}]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

func (r *MemoryAvailabilityRepo) Upsert(_ context.Context, override *models.AvailabilityOverride) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.overrides[overrideKey{override.DoctorID, override.Date}] = *override
	return nil
}

func (r *MemoryAvailabilityRepo) ListByDoctor(_ context.Context, doctorID string) ([]models.AvailabilityOverride, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := make([]models.AvailabilityOverride, 0)
	for k, o := range r.overrides {
		if k.doctorID == doctorID {
			results = append(results, o)
		}
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Date < results[j].Date })
	return results, nil
}
