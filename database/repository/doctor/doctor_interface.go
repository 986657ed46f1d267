package doctorRepo

import (
	"context"

	"medibook/models"
)

// DoctorRepository defines methods for doctor directory access.
type DoctorRepository interface {
	// GetByID retrieves a doctor by its unique ID. Unknown IDs return repository.ErrNotFound.
	GetByID(ctx context.Context, id string) (*models.Doctor, error)
	// Search returns doctors whose name, specialization or location contains query
	// (case-insensitive) and whose specialization equals specialty when set.
	Search(ctx context.Context, query, specialty string) ([]models.Doctor, error)
	// Create inserts a new doctor. An existing ID returns repository.ErrDuplicate.
	Create(ctx context.Context, doctor *models.Doctor) error
}

// Seed inserts doctors that are not present yet.
func Seed(ctx context.Context, repo DoctorRepository, doctors []models.Doctor) (int, error) {
	inserted := 0
	for i := range doctors {
		d := doctors[i]
		err := repo.Create(ctx, &d)
		if err == nil {
			inserted++
			continue
		}
		if isDuplicate(err) {
			continue
		}
		return inserted, err
	}
	return inserted, nil
}
