package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers and per-group middleware into one struct.
type HandlerBundle struct {
	// Middleware applied to appointment routes.
	PatientIdentity gin.HandlerFunc

	HealthHandler gin.HandlerFunc

	// Doctor directory endpoints
	SearchDoctorsHandler  gin.HandlerFunc
	GetDoctorHandler      gin.HandlerFunc
	RegisterDoctorHandler gin.HandlerFunc

	// Slot and availability endpoints
	GetSlotsHandler          gin.HandlerFunc
	GetAvailabilityHandler   gin.HandlerFunc
	SetAvailabilityHandler   gin.HandlerFunc
	GetDoctorScheduleHandler gin.HandlerFunc

	// Appointment endpoints
	ListAppointmentsHandler        gin.HandlerFunc
	BookAppointmentHandler         gin.HandlerFunc
	GetAppointmentHandler          gin.HandlerFunc
	RescheduleAppointmentHandler   gin.HandlerFunc
	CancelAppointmentHandler       gin.HandlerFunc
	UpdateAppointmentStatusHandler gin.HandlerFunc
}

// NewHandlerBundle wires the service handlers into a bundle. identity may be nil.
func NewHandlerBundle(directory *DoctorHandler, bookings *BookingHandler, identity gin.HandlerFunc) *HandlerBundle {
	return &HandlerBundle{
		PatientIdentity: identity,
		HealthHandler:   HealthHandler,

		SearchDoctorsHandler:  directory.SearchDoctorsHandler,
		GetDoctorHandler:      directory.GetDoctorHandler,
		RegisterDoctorHandler: directory.RegisterDoctorHandler,

		GetSlotsHandler:          bookings.GetSlotsHandler,
		GetAvailabilityHandler:   bookings.GetAvailabilityHandler,
		SetAvailabilityHandler:   bookings.SetAvailabilityHandler,
		GetDoctorScheduleHandler: bookings.GetDoctorScheduleHandler,

		ListAppointmentsHandler:        bookings.ListAppointmentsHandler,
		BookAppointmentHandler:         bookings.BookAppointmentHandler,
		GetAppointmentHandler:          bookings.GetAppointmentHandler,
		RescheduleAppointmentHandler:   bookings.RescheduleAppointmentHandler,
		CancelAppointmentHandler:       bookings.CancelAppointmentHandler,
		UpdateAppointmentStatusHandler: bookings.UpdateAppointmentStatusHandler,
	}
}
