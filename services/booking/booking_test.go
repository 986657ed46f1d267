package booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	appointmentRepo "medibook/database/repository/appointment"
	availabilityRepo "medibook/database/repository/availability"
	doctorRepo "medibook/database/repository/doctor"
	"medibook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Wednesday 2025-07-30 10:15 UTC. Doctor "1" works Monday to Saturday.
var fixedNow = time.Date(2025, 7, 30, 10, 15, 0, 0, time.UTC)

type fakeReminders struct {
	mu        sync.Mutex
	scheduled map[string]time.Time
	cancelled []string
	fail      bool
}

func (f *fakeReminders) ScheduleReminder(_ context.Context, appt models.Appointment, _ models.Doctor, startsAt time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errors.New("queue unavailable")
	}
	f.scheduled[appt.ID] = startsAt
	return nil
}

func (f *fakeReminders) CancelReminder(_ context.Context, appointmentID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cancelled = append(f.cancelled, appointmentID)
	delete(f.scheduled, appointmentID)
	return nil
}

func newTestService(t *testing.T) (*DefaultBookingService, *fakeReminders) {
	t.Helper()
	doctors := doctorRepo.NewMemoryDoctorRepo()
	_, err := doctorRepo.Seed(context.Background(), doctors, doctorRepo.DefaultDoctors())
	require.NoError(t, err)

	reminders := &fakeReminders{scheduled: map[string]time.Time{}}
	svc := &DefaultBookingService{
		Doctors:       doctors,
		Appointments:  appointmentRepo.NewMemoryAppointmentRepo(),
		Availability:  availabilityRepo.NewMemoryAvailabilityRepo(),
		Reminders:     reminders,
		Window:        DefaultSlotWindow(),
		VideoDiscount: 100,
		Location:      time.UTC,
		Clock:         func() time.Time { return fixedNow },
	}
	return svc, reminders
}

func book(t *testing.T, svc *DefaultBookingService, date, at string) *models.Appointment {
	t.Helper()
	appt, err := svc.BookAppointment(context.Background(), models.BookingRequest{
		DoctorID:  "1",
		PatientID: "patient-1",
		Date:      date,
		Time:      at,
		Type:      models.TypeInPerson,
	})
	require.NoError(t, err)
	return appt
}

func findSlot(t *testing.T, day *models.DaySlots, display string) models.TimeSlot {
	t.Helper()
	for _, s := range day.All() {
		if s.Time == display {
			return s
		}
	}
	t.Fatalf("slot %s not found", display)
	return models.TimeSlot{}
}

func TestGetSlotsFullWorkingDay(t *testing.T) {
	svc, _ := newTestService(t)

	day, err := svc.GetSlots(context.Background(), "1", "2025-08-01")
	require.NoError(t, err)

	assert.True(t, day.IsWorkingDay)
	assert.Equal(t, "Friday", day.DayOfWeek)
	assert.Equal(t, 18, day.TotalSlots)
	assert.Equal(t, 18, day.AvailableSlots)
	assert.Len(t, day.Morning, 6)
	assert.Len(t, day.Afternoon, 10)
	assert.Len(t, day.Evening, 2)
	assert.Equal(t, "9:00 AM", day.Morning[0].Time)
	assert.Equal(t, "12:00 PM", day.Afternoon[0].Time)
	assert.Equal(t, "5:30 PM", day.Evening[1].Time)
	assert.Equal(t, "slot-1-2025-08-01-1", day.Morning[0].ID)
	assert.Equal(t, "slot-1-2025-08-01-18", day.Evening[1].ID)
}

func TestGetSlotsNonWorkingDay(t *testing.T) {
	svc, _ := newTestService(t)

	day, err := svc.GetSlots(context.Background(), "1", "2025-08-03") // Sunday
	require.NoError(t, err)
	assert.False(t, day.IsWorkingDay)
	assert.Zero(t, day.TotalSlots)
	assert.Empty(t, day.All())
}

func TestGetSlotsTodaySkipsElapsedTimes(t *testing.T) {
	svc, _ := newTestService(t)

	day, err := svc.GetSlots(context.Background(), "1", "2025-07-30")
	require.NoError(t, err)

	nowMinute := fixedNow.Hour()*60 + fixedNow.Minute()
	for _, s := range day.All() {
		assert.Greater(t, s.StartMinute, nowMinute, s.Time)
	}
	assert.Equal(t, "10:30 AM", day.Morning[0].Time)
	assert.Equal(t, "slot-1-2025-07-30-1", day.Morning[0].ID)
	assert.Equal(t, 15, day.TotalSlots)
}

func TestGetSlotsTodayExcludesSlotStartingNow(t *testing.T) {
	svc, _ := newTestService(t)
	svc.Clock = func() time.Time { return time.Date(2025, 7, 30, 10, 30, 0, 0, time.UTC) }

	day, err := svc.GetSlots(context.Background(), "1", "2025-07-30")
	require.NoError(t, err)
	assert.Equal(t, "11:00 AM", day.Morning[0].Time)
}

func TestGetSlotsIsIdempotent(t *testing.T) {
	svc, _ := newTestService(t)
	book(t, svc, "2025-08-01", "10:00 AM")

	first, err := svc.GetSlots(context.Background(), "1", "2025-08-01")
	require.NoError(t, err)
	second, err := svc.GetSlots(context.Background(), "1", "2025-08-01")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGetSlotsErrors(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.GetSlots(ctx, "unknown", "2025-08-01")
	assert.Equal(t, KindNotFound, KindOf(err))

	_, err = svc.GetSlots(ctx, "1", "2000-01-01")
	assert.Equal(t, KindInvalidDate, KindOf(err))

	_, err = svc.GetSlots(ctx, "1", "01/08/2025")
	assert.Equal(t, KindValidation, KindOf(err))
}

func TestGetSlotsDefaultsToToday(t *testing.T) {
	svc, _ := newTestService(t)

	day, err := svc.GetSlots(context.Background(), "1", "")
	require.NoError(t, err)
	assert.Equal(t, "2025-07-30", day.Date)
}

func TestBookedSlotIsUnavailable(t *testing.T) {
	svc, _ := newTestService(t)
	appt := book(t, svc, "2025-08-01", "10:00 AM")

	assert.Equal(t, models.StatusScheduled, appt.Status)
	assert.Equal(t, 600, appt.StartMinute)
	assert.Equal(t, "10:00 AM", appt.Time)
	assert.Equal(t, float64(500), appt.ConsultationFee)
	assert.Equal(t, fixedNow, appt.CreatedAt)

	day, err := svc.GetSlots(context.Background(), "1", "2025-08-01")
	require.NoError(t, err)
	assert.False(t, findSlot(t, day, "10:00 AM").Available)
	assert.True(t, findSlot(t, day, "10:30 AM").Available)
	assert.Equal(t, 17, day.AvailableSlots)
}

func TestBookConflictOnSameMinute(t *testing.T) {
	svc, _ := newTestService(t)
	book(t, svc, "2025-08-01", "10:00 AM")

	// Alternate spellings of the same minute collide.
	for _, at := range []string{"10:00 AM", "10:00am", "10:00"} {
		_, err := svc.BookAppointment(context.Background(), models.BookingRequest{
			DoctorID: "1", PatientID: "patient-2", Date: "2025-08-01", Time: at, Type: models.TypeVideo,
		})
		assert.Equal(t, KindConflict, KindOf(err), at)
	}
}

func TestBookAcceptsZeroPaddedTime(t *testing.T) {
	svc, _ := newTestService(t)

	appt := book(t, svc, "2025-08-01", "02:00 PM")
	assert.Equal(t, 840, appt.StartMinute)
	assert.Equal(t, "2:00 PM", appt.Time)
}

func TestBookVideoDiscount(t *testing.T) {
	svc, _ := newTestService(t)

	appt, err := svc.BookAppointment(context.Background(), models.BookingRequest{
		DoctorID: "1", PatientID: "p", Date: "2025-08-01", Time: "11:00 AM", Type: models.TypeVideo,
	})
	require.NoError(t, err)
	assert.Equal(t, float64(400), appt.ConsultationFee)

	// The demo doctor's fee equals the discount, so video is free rather than negative.
	demo, err := svc.BookAppointment(context.Background(), models.BookingRequest{
		DoctorID: "demo", PatientID: "p", Date: "2025-08-01", Time: "11:00 AM", Type: models.TypeVideo,
	})
	require.NoError(t, err)
	assert.Zero(t, demo.ConsultationFee)
}

func TestBookValidation(t *testing.T) {
	svc, _ := newTestService(t)

	valid := models.BookingRequest{DoctorID: "1", PatientID: "p", Date: "2025-08-01", Time: "10:00 AM", Type: models.TypeInPerson}

	tests := []struct {
		name   string
		mutate func(r *models.BookingRequest)
		kind   ErrorKind
	}{
		{name: "missing doctor", mutate: func(r *models.BookingRequest) { r.DoctorID = "" }, kind: KindValidation},
		{name: "missing patient", mutate: func(r *models.BookingRequest) { r.PatientID = " " }, kind: KindValidation},
		{name: "missing time", mutate: func(r *models.BookingRequest) { r.Time = "" }, kind: KindValidation},
		{name: "missing type", mutate: func(r *models.BookingRequest) { r.Type = "" }, kind: KindValidation},
		{name: "unknown type", mutate: func(r *models.BookingRequest) { r.Type = "phone" }, kind: KindValidation},
		{name: "bad date", mutate: func(r *models.BookingRequest) { r.Date = "2025-02-30" }, kind: KindValidation},
		{name: "bad time", mutate: func(r *models.BookingRequest) { r.Time = "quarter past" }, kind: KindValidation},
		{name: "unknown doctor", mutate: func(r *models.BookingRequest) { r.DoctorID = "404" }, kind: KindNotFound},
		{name: "past date", mutate: func(r *models.BookingRequest) { r.Date = "2000-01-01" }, kind: KindInvalidDate},
		{name: "elapsed time today", mutate: func(r *models.BookingRequest) { r.Date = "2025-07-30"; r.Time = "10:00 AM" }, kind: KindInvalidDate},
		{name: "off grid", mutate: func(r *models.BookingRequest) { r.Time = "10:15 AM" }, kind: KindValidation},
		{name: "outside window", mutate: func(r *models.BookingRequest) { r.Time = "6:00 PM" }, kind: KindValidation},
		{name: "non working day", mutate: func(r *models.BookingRequest) { r.Date = "2025-08-03" }, kind: KindValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			_, err := svc.BookAppointment(context.Background(), req)
			require.Error(t, err)
			assert.Equal(t, tt.kind, KindOf(err))
		})
	}
}

func TestBookLaterToday(t *testing.T) {
	svc, _ := newTestService(t)
	appt := book(t, svc, "2025-07-30", "10:30 AM")
	assert.Equal(t, "2025-07-30", appt.Date)
}

func TestAvailabilityOverrideBlocksDay(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	unavailable := false

	override, err := svc.SetAvailabilityOverride(ctx, "1", models.AvailabilityRequest{Date: "2025-08-01", IsAvailable: &unavailable, Notes: "conference"})
	require.NoError(t, err)
	assert.Equal(t, fixedNow, override.UpdatedAt)

	day, err := svc.GetSlots(ctx, "1", "2025-08-01")
	require.NoError(t, err)
	assert.Zero(t, day.TotalSlots)
	assert.Zero(t, day.AvailableSlots)
	assert.Empty(t, day.All())
	assert.True(t, day.IsWorkingDay)
	assert.Equal(t, "Friday", day.DayOfWeek)
	assert.Equal(t, "Dr. Prakash Das", day.DoctorName)
	require.NotNil(t, day.Override)
	assert.Equal(t, "conference", day.Override.Notes)

	_, err = svc.BookAppointment(ctx, models.BookingRequest{DoctorID: "1", PatientID: "p", Date: "2025-08-01", Time: "10:00 AM", Type: models.TypeInPerson})
	assert.Equal(t, KindConflict, KindOf(err))

	got, err := svc.GetAvailabilityOverride(ctx, "1", "2025-08-01")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.False(t, got.IsAvailable)

	none, err := svc.GetAvailabilityOverride(ctx, "1", "2025-08-02")
	require.NoError(t, err)
	assert.Nil(t, none)

	list, err := svc.ListAvailabilityOverrides(ctx, "1")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestPaddedDatesShareStoreKeys(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	book(t, svc, "2025-08-01", "10:00 AM")

	day, err := svc.GetSlots(ctx, "1", " 2025-08-01")
	require.NoError(t, err)
	assert.Equal(t, "2025-08-01", day.Date)
	assert.False(t, findSlot(t, day, "10:00 AM").Available)
	assert.Equal(t, 17, day.AvailableSlots)

	unavailable := false
	override, err := svc.SetAvailabilityOverride(ctx, "1", models.AvailabilityRequest{Date: "2025-08-04 ", IsAvailable: &unavailable})
	require.NoError(t, err)
	assert.Equal(t, "2025-08-04", override.Date)

	_, err = svc.BookAppointment(ctx, models.BookingRequest{DoctorID: "1", PatientID: "p", Date: "2025-08-04", Time: "10:00 AM", Type: models.TypeInPerson})
	assert.Equal(t, KindConflict, KindOf(err))

	got, err := svc.GetAvailabilityOverride(ctx, "1", "\t2025-08-04")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.False(t, got.IsAvailable)

	blocked, err := svc.GetSlots(ctx, "1", "2025-08-04 ")
	require.NoError(t, err)
	assert.Zero(t, blocked.TotalSlots)
	require.NotNil(t, blocked.Override)
}

func TestSetAvailabilityOverrideValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	yes := true

	_, err := svc.SetAvailabilityOverride(ctx, "1", models.AvailabilityRequest{Date: "2025-08-01"})
	assert.Equal(t, KindValidation, KindOf(err))

	_, err = svc.SetAvailabilityOverride(ctx, "1", models.AvailabilityRequest{Date: "tomorrow", IsAvailable: &yes})
	assert.Equal(t, KindValidation, KindOf(err))

	_, err = svc.SetAvailabilityOverride(ctx, "nobody", models.AvailabilityRequest{Date: "2025-08-01", IsAvailable: &yes})
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestCancelThenRebook(t *testing.T) {
	svc, reminders := newTestService(t)
	ctx := context.Background()
	appt := book(t, svc, "2025-08-01", "10:00 AM")
	require.Contains(t, reminders.scheduled, appt.ID)

	cancelled, err := svc.CancelAppointment(ctx, appt.ID, "feeling better")
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, cancelled.Status)
	assert.Equal(t, "feeling better", cancelled.CancelReason)
	require.NotNil(t, cancelled.CancelledAt)
	require.NotNil(t, cancelled.UpdatedAt)
	assert.Contains(t, reminders.cancelled, appt.ID)

	day, err := svc.GetSlots(ctx, "1", "2025-08-01")
	require.NoError(t, err)
	assert.True(t, findSlot(t, day, "10:00 AM").Available)

	rebooked := book(t, svc, "2025-08-01", "10:00 AM")
	assert.NotEqual(t, appt.ID, rebooked.ID)
}

func TestCancelTwice(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	appt := book(t, svc, "2025-08-01", "10:00 AM")

	_, err := svc.CancelAppointment(ctx, appt.ID, "")
	require.NoError(t, err)

	_, err = svc.CancelAppointment(ctx, appt.ID, "")
	assert.Equal(t, KindInvalidOperation, KindOf(err))

	_, err = svc.CancelAppointment(ctx, "missing", "")
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestRescheduleToOwnSlot(t *testing.T) {
	svc, _ := newTestService(t)
	appt := book(t, svc, "2025-08-01", "10:00 AM")

	moved, err := svc.RescheduleAppointment(context.Background(), appt.ID, models.RescheduleRequest{Date: "2025-08-01", Time: "10:00 AM"})
	require.NoError(t, err)
	assert.Equal(t, 600, moved.StartMinute)
	require.NotNil(t, moved.RescheduledAt)
}

func TestRescheduleMovesSlot(t *testing.T) {
	svc, reminders := newTestService(t)
	ctx := context.Background()
	appt := book(t, svc, "2025-08-01", "10:00 AM")

	_, err := svc.UpdateAppointmentStatus(ctx, appt.ID, models.StatusConfirmed, nil)
	require.NoError(t, err)

	moved, err := svc.RescheduleAppointment(ctx, appt.ID, models.RescheduleRequest{Time: "3:30 PM"})
	require.NoError(t, err)
	assert.Equal(t, "2025-08-01", moved.Date)
	assert.Equal(t, "3:30 PM", moved.Time)
	assert.Equal(t, models.StatusScheduled, moved.Status)
	assert.Equal(t, time.Date(2025, 8, 1, 15, 30, 0, 0, time.UTC), reminders.scheduled[appt.ID])

	day, err := svc.GetSlots(ctx, "1", "2025-08-01")
	require.NoError(t, err)
	assert.True(t, findSlot(t, day, "10:00 AM").Available)
	assert.False(t, findSlot(t, day, "3:30 PM").Available)
}

func TestRescheduleIntoTakenSlot(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	first := book(t, svc, "2025-08-01", "10:00 AM")
	book(t, svc, "2025-08-01", "11:00 AM")

	_, err := svc.RescheduleAppointment(ctx, first.ID, models.RescheduleRequest{Time: "11:00 AM"})
	assert.Equal(t, KindConflict, KindOf(err))

	view, err := svc.GetAppointment(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "10:00 AM", view.Time)
	assert.Nil(t, view.RescheduledAt)
}

func TestRescheduleRejections(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	appt := book(t, svc, "2025-08-01", "10:00 AM")

	_, err := svc.RescheduleAppointment(ctx, "missing", models.RescheduleRequest{Time: "11:00 AM"})
	assert.Equal(t, KindNotFound, KindOf(err))

	_, err = svc.RescheduleAppointment(ctx, appt.ID, models.RescheduleRequest{})
	assert.Equal(t, KindValidation, KindOf(err))

	_, err = svc.RescheduleAppointment(ctx, appt.ID, models.RescheduleRequest{Date: "2000-01-01"})
	assert.Equal(t, KindInvalidDate, KindOf(err))

	_, err = svc.CancelAppointment(ctx, appt.ID, "")
	require.NoError(t, err)
	_, err = svc.RescheduleAppointment(ctx, appt.ID, models.RescheduleRequest{Time: "11:00 AM"})
	assert.Equal(t, KindInvalidOperation, KindOf(err))
}

func TestUpdateAppointmentStatus(t *testing.T) {
	tests := []struct {
		name  string
		steps []models.AppointmentStatus
		kind  ErrorKind
	}{
		{name: "confirm", steps: []models.AppointmentStatus{models.StatusConfirmed}},
		{name: "confirm then complete", steps: []models.AppointmentStatus{models.StatusConfirmed, models.StatusCompleted}},
		{name: "complete directly", steps: []models.AppointmentStatus{models.StatusCompleted}},
		{name: "complete is terminal", steps: []models.AppointmentStatus{models.StatusCompleted, models.StatusCancelled}, kind: KindInvalidOperation},
		{name: "cancelled is terminal", steps: []models.AppointmentStatus{models.StatusCancelled, models.StatusConfirmed}, kind: KindInvalidOperation},
		{name: "no going back", steps: []models.AppointmentStatus{models.StatusConfirmed, models.StatusScheduled}, kind: KindInvalidOperation},
		{name: "unknown status", steps: []models.AppointmentStatus{"pending"}, kind: KindValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestService(t)
			appt := book(t, svc, "2025-08-01", "10:00 AM")

			var err error
			var last *models.Appointment
			for _, status := range tt.steps {
				last, err = svc.UpdateAppointmentStatus(context.Background(), appt.ID, status, nil)
				if err != nil {
					break
				}
			}
			if tt.kind != "" {
				assert.Equal(t, tt.kind, KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.steps[len(tt.steps)-1], last.Status)
		})
	}
}

func TestCompleteStampsNotes(t *testing.T) {
	svc, reminders := newTestService(t)
	appt := book(t, svc, "2025-08-01", "10:00 AM")
	notes := "follow up in two weeks"

	done, err := svc.UpdateAppointmentStatus(context.Background(), appt.ID, models.StatusCompleted, &notes)
	require.NoError(t, err)
	assert.Equal(t, notes, done.Notes)
	require.NotNil(t, done.CompletedAt)
	assert.Contains(t, reminders.cancelled, appt.ID)

	_, err = svc.CancelAppointment(context.Background(), appt.ID, "")
	assert.Equal(t, KindInvalidOperation, KindOf(err))
}

func TestListAppointmentsWithDoctor(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	book(t, svc, "2025-08-01", "10:00 AM")
	_, err := svc.BookAppointment(ctx, models.BookingRequest{DoctorID: "2", PatientID: "other", Date: "2025-08-01", Time: "11:00 AM", Type: models.TypeVideo})
	require.NoError(t, err)

	mine, err := svc.ListAppointments(ctx, models.AppointmentFilter{PatientID: "patient-1"})
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.NotNil(t, mine[0].Doctor)
	assert.Equal(t, "Dr. Prakash Das", mine[0].Doctor.Name)

	_, err = svc.ListAppointments(ctx, models.AppointmentFilter{Status: "bogus"})
	assert.Equal(t, KindValidation, KindOf(err))
}

func TestDoctorSchedule(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	today := book(t, svc, "2025-07-30", "4:00 PM")
	upcoming := book(t, svc, "2025-08-01", "10:00 AM")
	cancelled := book(t, svc, "2025-08-02", "10:00 AM")
	_, err := svc.CancelAppointment(ctx, cancelled.ID, "")
	require.NoError(t, err)

	// Two days later the first booking is past and the second is today.
	svc.Clock = func() time.Time { return fixedNow.AddDate(0, 0, 2) }
	schedule, err := svc.GetDoctorSchedule(ctx, "1")
	require.NoError(t, err)

	assert.Equal(t, 3, schedule.Total)
	require.Len(t, schedule.Past, 1)
	assert.Equal(t, today.ID, schedule.Past[0].ID)
	require.Len(t, schedule.Today, 1)
	assert.Equal(t, upcoming.ID, schedule.Today[0].ID)
	require.Len(t, schedule.Cancelled, 1)
	assert.Empty(t, schedule.Upcoming)

	svc.Clock = func() time.Time { return fixedNow }
	schedule, err = svc.GetDoctorSchedule(ctx, "1")
	require.NoError(t, err)
	require.Len(t, schedule.Today, 1)
	require.Len(t, schedule.Upcoming, 1)
	assert.Equal(t, upcoming.ID, schedule.Upcoming[0].ID)

	_, err = svc.GetDoctorSchedule(ctx, "nobody")
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestReminderFailureDoesNotFailBooking(t *testing.T) {
	svc, reminders := newTestService(t)
	reminders.fail = true

	appt := book(t, svc, "2025-08-01", "10:00 AM")
	assert.NotEmpty(t, appt.ID)
}

func TestConcurrentBookingsOneWinner(t *testing.T) {
	svc, _ := newTestService(t)

	const attempts = 20
	var wg sync.WaitGroup
	results := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = svc.BookAppointment(context.Background(), models.BookingRequest{
				DoctorID: "1", PatientID: "p", Date: "2025-08-01", Time: "10:00 AM", Type: models.TypeInPerson,
			})
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, err := range results {
		if err == nil {
			wins++
			continue
		}
		assert.Equal(t, KindConflict, KindOf(err))
	}
	assert.Equal(t, 1, wins)
}
