package doctor

import (
	"context"
	"testing"

	doctorRepo "medibook/database/repository/doctor"
	"medibook/models"
	"medibook/services/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDirectory(t *testing.T) *DefaultDirectoryService {
	t.Helper()
	repo := doctorRepo.NewMemoryDoctorRepo()
	_, err := doctorRepo.Seed(context.Background(), repo, doctorRepo.DefaultDoctors())
	require.NoError(t, err)
	return NewDefaultDirectoryService(repo, nil)
}

func TestSearchDoctorsPagination(t *testing.T) {
	svc := newDirectory(t)
	ctx := context.Background()

	first, err := svc.SearchDoctors(ctx, models.DoctorSearch{Limit: 3})
	require.NoError(t, err)
	assert.Len(t, first.Doctors, 3)
	assert.Equal(t, models.Pagination{CurrentPage: 1, PerPage: 3, Total: 7, TotalPages: 3, HasNext: true, HasPrev: false}, first.Pagination)

	last, err := svc.SearchDoctors(ctx, models.DoctorSearch{Page: 3, Limit: 3})
	require.NoError(t, err)
	require.Len(t, last.Doctors, 1)
	assert.Equal(t, "6", last.Doctors[0].ID)
	assert.False(t, last.Pagination.HasNext)
	assert.True(t, last.Pagination.HasPrev)

	beyond, err := svc.SearchDoctors(ctx, models.DoctorSearch{Page: 9, Limit: 3})
	require.NoError(t, err)
	assert.Empty(t, beyond.Doctors)
}

func TestSearchDoctorsDefaults(t *testing.T) {
	svc := newDirectory(t)

	page, err := svc.SearchDoctors(context.Background(), models.DoctorSearch{Query: "  Mumbai ", Specialty: "all"})
	require.NoError(t, err)
	require.Len(t, page.Doctors, 1)
	assert.Equal(t, "Dr. Sarah Wilson", page.Doctors[0].Name)
	assert.Equal(t, 1, page.Pagination.CurrentPage)
	assert.Equal(t, 10, page.Pagination.PerPage)
	assert.Equal(t, 1, page.Pagination.TotalPages)
}

func TestGetDoctor(t *testing.T) {
	svc := newDirectory(t)

	d, err := svc.GetDoctor(context.Background(), "3")
	require.NoError(t, err)
	assert.Equal(t, "Dermatologist", d.Specialization)

	_, err = svc.GetDoctor(context.Background(), "missing")
	assert.Equal(t, booking.KindNotFound, booking.KindOf(err))
}

func TestRegisterDoctorDefaults(t *testing.T) {
	svc := newDirectory(t)

	d, err := svc.RegisterDoctor(context.Background(), models.DoctorRegistration{
		Name:            "Dr. New",
		Specialization:  "Neurologist",
		Experience:      "3 years",
		ConsultationFee: 700,
		Location:        "City Clinic",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, d.ID)
	assert.Equal(t, 4.5, d.Rating)
	assert.True(t, d.IsAvailable)
	assert.Equal(t, []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}, d.WorkingDays)
	assert.Equal(t, "10:00 AM - 6:00 PM", d.WorkingHours)

	got, err := svc.GetDoctor(context.Background(), d.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dr. New", got.Name)
}

func TestRegisterDoctorValidation(t *testing.T) {
	svc := newDirectory(t)
	ctx := context.Background()

	_, err := svc.RegisterDoctor(ctx, models.DoctorRegistration{Name: "Dr. Half"})
	require.Error(t, err)
	assert.Equal(t, booking.KindValidation, booking.KindOf(err))
	assert.Contains(t, err.Error(), "specialization, experience, location, consultationFee")

	_, err = svc.RegisterDoctor(ctx, models.DoctorRegistration{
		Name: "Dr. Odd", Specialization: "GP", Experience: "1 year", ConsultationFee: 10, Location: "X",
		WorkingDays: []string{"Funday"},
	})
	assert.Equal(t, booking.KindValidation, booking.KindOf(err))

	_, err = svc.RegisterDoctor(ctx, models.DoctorRegistration{
		ID: "1", Name: "Dr. Clone", Specialization: "GP", Experience: "1 year", ConsultationFee: 10, Location: "X",
	})
	assert.Equal(t, booking.KindConflict, booking.KindOf(err))
}
