package models

import "time"

type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Active reports whether the appointment still holds its slot.
func (s AppointmentStatus) Active() bool {
	return s != StatusCancelled
}

// Terminal reports whether no further transition is allowed.
func (s AppointmentStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// CanTransition reports whether a status change from s to next is permitted.
func (s AppointmentStatus) CanTransition(next AppointmentStatus) bool {
	switch s {
	case StatusScheduled:
		return next == StatusConfirmed || next == StatusCompleted || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCompleted || next == StatusCancelled
	}
	return false
}

type AppointmentType string

const (
	TypeInPerson AppointmentType = "in-person"
	TypeVideo    AppointmentType = "video"
)

func (t AppointmentType) Valid() bool {
	return t == TypeInPerson || t == TypeVideo
}

// Appointment is a booking record. Slots are identified by StartMinute; Time is
// the display form of StartMinute.
type Appointment struct {
	ID              string            `bson:"id" json:"id"`
	DoctorID        string            `bson:"doctorId" json:"doctorId"`
	PatientID       string            `bson:"patientId" json:"patientId"`
	Date            string            `bson:"date" json:"date"`               // "YYYY-MM-DD"
	StartMinute     int               `bson:"startMinute" json:"startMinute"` // minutes from midnight (e.g., 630 for 10:30 AM)
	Time            string            `bson:"time" json:"time"`               // e.g. "10:30 AM"
	Type            AppointmentType   `bson:"type" json:"type"`
	Status          AppointmentStatus `bson:"status" json:"status"`
	Active          bool              `bson:"active" json:"-"` // status != cancelled; backs the unique slot index
	ConsultationFee float64           `bson:"consultationFee" json:"consultationFee"`
	Notes           string            `bson:"notes" json:"notes"`
	CancelReason    string            `bson:"cancelReason,omitempty" json:"cancelReason,omitempty"`
	CreatedAt       time.Time         `bson:"createdAt" json:"createdAt"`
	UpdatedAt       *time.Time        `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
	CancelledAt     *time.Time        `bson:"cancelledAt,omitempty" json:"cancelledAt,omitempty"`
	RescheduledAt   *time.Time        `bson:"rescheduledAt,omitempty" json:"rescheduledAt,omitempty"`
	CompletedAt     *time.Time        `bson:"completedAt,omitempty" json:"completedAt,omitempty"`
}

// AppointmentUpdate is a partial update applied by the store. Nil fields are left unchanged.
type AppointmentUpdate struct {
	Status        *AppointmentStatus
	Date          *string
	StartMinute   *int
	Time          *string
	Notes         *string
	CancelReason  *string
	UpdatedAt     time.Time
	CancelledAt   *time.Time
	RescheduledAt *time.Time
	CompletedAt   *time.Time
}

// MovesSlot reports whether the update changes the slot the appointment holds.
func (u AppointmentUpdate) MovesSlot() bool {
	return u.Date != nil || u.StartMinute != nil
}

// Apply copies the set fields of u onto a.
func (u AppointmentUpdate) Apply(a *Appointment) {
	if u.Status != nil {
		a.Status = *u.Status
		a.Active = a.Status.Active()
	}
	if u.Date != nil {
		a.Date = *u.Date
	}
	if u.StartMinute != nil {
		a.StartMinute = *u.StartMinute
	}
	if u.Time != nil {
		a.Time = *u.Time
	}
	if u.Notes != nil {
		a.Notes = *u.Notes
	}
	if u.CancelReason != nil {
		a.CancelReason = *u.CancelReason
	}
	updatedAt := u.UpdatedAt
	a.UpdatedAt = &updatedAt
	if u.CancelledAt != nil {
		a.CancelledAt = u.CancelledAt
	}
	if u.RescheduledAt != nil {
		a.RescheduledAt = u.RescheduledAt
	}
	if u.CompletedAt != nil {
		a.CompletedAt = u.CompletedAt
	}
}

// AppointmentFilter narrows appointment listings. Empty fields match everything.
type AppointmentFilter struct {
	DoctorID  string
	PatientID string
	Date      string
	Status    AppointmentStatus
}

// BookingRequest is the payload for booking a new appointment.
type BookingRequest struct {
	DoctorID  string          `json:"doctorId"`
	PatientID string          `json:"patientId"`
	Date      string          `json:"date"`
	Time      string          `json:"time"`
	Type      AppointmentType `json:"type"`
	Notes     string          `json:"notes"`
}

// RescheduleRequest moves an appointment. Empty fields keep the current value.
type RescheduleRequest struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

type CancelRequest struct {
	Reason string `json:"reason"`
}

type StatusUpdateRequest struct {
	Status AppointmentStatus `json:"status"`
	Notes  *string           `json:"notes"`
}

// AppointmentView is an appointment enriched with its doctor.
type AppointmentView struct {
	Appointment
	Doctor *DoctorSummary `json:"doctor"`
}

// DoctorSchedule groups a doctor's appointments relative to today.
type DoctorSchedule struct {
	Appointments []Appointment `json:"appointments"`
	Today        []Appointment `json:"today"`
	Upcoming     []Appointment `json:"upcoming"`
	Past         []Appointment `json:"past"`
	Cancelled    []Appointment `json:"cancelled"`
	Total        int           `json:"total"`
}
