package doctor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"medibook/database/repository"
	"medibook/models"
	"medibook/services/booking"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100

	defaultRating       = 4.5
	defaultWorkingHours = "10:00 AM - 6:00 PM"
)

var defaultWorkingDays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

func (s *DefaultDirectoryService) SearchDoctors(ctx context.Context, search models.DoctorSearch) (*models.DoctorPage, error) {
	page, limit := search.Page, search.Limit
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	matches, err := s.Repo.Search(ctx, strings.TrimSpace(search.Query), strings.TrimSpace(search.Specialty))
	if err != nil {
		return nil, fmt.Errorf("failed to search doctors: %w", err)
	}

	total := len(matches)
	totalPages := (total + limit - 1) / limit
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return &models.DoctorPage{
		Doctors: matches[start:end],
		Pagination: models.Pagination{
			CurrentPage: page,
			PerPage:     limit,
			Total:       total,
			TotalPages:  totalPages,
			HasNext:     page < totalPages,
			HasPrev:     page > 1,
		},
	}, nil
}

func (s *DefaultDirectoryService) GetDoctor(ctx context.Context, id string) (*models.Doctor, error) {
	d, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, booking.NewNotFoundError("Doctor not found")
		}
		return nil, fmt.Errorf("failed to load doctor %s: %w", id, err)
	}
	return d, nil
}

func (s *DefaultDirectoryService) RegisterDoctor(ctx context.Context, reg models.DoctorRegistration) (*models.Doctor, error) {
	if err := validateRegistration(reg); err != nil {
		return nil, err
	}

	d := &models.Doctor{
		ID:              strings.TrimSpace(reg.ID),
		Name:            strings.TrimSpace(reg.Name),
		Specialization:  strings.TrimSpace(reg.Specialization),
		Experience:      strings.TrimSpace(reg.Experience),
		Rating:          reg.Rating,
		ReviewCount:     reg.ReviewCount,
		ConsultationFee: reg.ConsultationFee,
		Location:        strings.TrimSpace(reg.Location),
		Image:           reg.Image,
		IsAvailable:     true,
		Languages:       nonNil(reg.Languages),
		Qualifications:  nonNil(reg.Qualifications),
		About:           reg.About,
		WorkingDays:     reg.WorkingDays,
		WorkingHours:    reg.WorkingHours,
		HospitalID:      reg.HospitalID,
		PhoneNumber:     reg.PhoneNumber,
		Email:           reg.Email,
	}
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	if d.Rating == 0 {
		d.Rating = defaultRating
	}
	if reg.IsAvailable != nil {
		d.IsAvailable = *reg.IsAvailable
	}
	if len(d.WorkingDays) == 0 {
		d.WorkingDays = append([]string(nil), defaultWorkingDays...)
	}
	if d.WorkingHours == "" {
		d.WorkingHours = defaultWorkingHours
	}

	if err := s.Repo.Create(ctx, d); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, booking.NewConflictError("Doctor %s already exists", d.ID)
		}
		return nil, fmt.Errorf("failed to register doctor: %w", err)
	}

	s.Logger.Info("Doctor registered", zap.String("doctorId", d.ID), zap.String("specialization", d.Specialization))
	return d, nil
}

func validateRegistration(reg models.DoctorRegistration) error {
	var missing []string
	required := []struct{ field, value string }{
		{"name", reg.Name},
		{"specialization", reg.Specialization},
		{"experience", reg.Experience},
		{"location", reg.Location},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			missing = append(missing, r.field)
		}
	}
	if reg.ConsultationFee <= 0 {
		missing = append(missing, "consultationFee")
	}
	if len(missing) > 0 {
		return booking.NewValidationError("Missing required fields: %s", strings.Join(missing, ", "))
	}
	for _, day := range reg.WorkingDays {
		if !isWeekday(day) {
			return booking.NewValidationError("Invalid working day %q", day)
		}
	}
	return nil
}

func isWeekday(name string) bool {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if d.String() == name {
			return true
		}
	}
	return false
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
