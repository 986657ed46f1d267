package availabilityRepo

import (
	"context"

	"medibook/models"
)

// AvailabilityRepository stores per-date availability overrides keyed by (doctorId, date).
type AvailabilityRepository interface {
	// Get returns nil and no error when the doctor has no override for date.
	Get(ctx context.Context, doctorID, date string) (*models.AvailabilityOverride, error)
	// Upsert replaces any existing override for the same doctor and date.
	Upsert(ctx context.Context, override *models.AvailabilityOverride) error
	// ListByDoctor returns a doctor's overrides ordered by date.
	ListByDoctor(ctx context.Context, doctorID string) ([]models.AvailabilityOverride, error)
}
