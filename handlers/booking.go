package handlers

import (
	"errors"
	"io"
	"net/http"

	"medibook/middleware"
	"medibook/models"
	"medibook/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BookingHandler struct {
	Service booking.BookingService
}

func NewBookingHandler(service booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: service}
}

// GetSlotsHandler handles GET /api/doctors/:id/slots?date=YYYY-MM-DD.
func (h *BookingHandler) GetSlotsHandler(c *gin.Context) {
	slots, err := h.Service.GetSlots(c.Request.Context(), c.Param("id"), c.Query("date"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, slots, "")
}

// GetAvailabilityHandler handles GET /api/doctors/:id/availability. With ?date= it returns
// that day's override or null; without it, every override of the doctor.
func (h *BookingHandler) GetAvailabilityHandler(c *gin.Context) {
	ctx := c.Request.Context()
	doctorID := c.Param("id")

	if date := c.Query("date"); date != "" {
		override, err := h.Service.GetAvailabilityOverride(ctx, doctorID, date)
		if err != nil {
			respondError(c, err)
			return
		}
		respondOK(c, http.StatusOK, override, "")
		return
	}

	overrides, err := h.Service.ListAvailabilityOverrides(ctx, doctorID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, overrides, "")
}

// SetAvailabilityHandler handles PUT /api/doctors/:id/availability.
func (h *BookingHandler) SetAvailabilityHandler(c *gin.Context) {
	var req models.AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	override, err := h.Service.SetAvailabilityOverride(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, override, "Availability updated successfully")
}

// GetDoctorScheduleHandler handles GET /api/doctors/:id/appointments.
func (h *BookingHandler) GetDoctorScheduleHandler(c *gin.Context) {
	schedule, err := h.Service.GetDoctorSchedule(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, schedule, "")
}

// ListAppointmentsHandler handles GET /api/appointments?patientId=&doctorId=&status=&date=.
// A verified patient only sees their own appointments.
func (h *BookingHandler) ListAppointmentsHandler(c *gin.Context) {
	filter := models.AppointmentFilter{
		PatientID: c.Query("patientId"),
		DoctorID:  c.Query("doctorId"),
		Date:      c.Query("date"),
		Status:    models.AppointmentStatus(c.Query("status")),
	}
	if caller, ok := middleware.PatientIDFromContext(c); ok {
		if filter.PatientID == "" {
			filter.PatientID = caller
		}
		if forbidOtherPatient(c, filter.PatientID) {
			return
		}
	}

	appointments, err := h.Service.ListAppointments(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, appointments, "")
}

// BookAppointmentHandler handles POST /api/appointments.
func (h *BookingHandler) BookAppointmentHandler(c *gin.Context) {
	logger := getLogger(c)
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid booking request", zap.Error(err))
		respondBadRequest(c, err)
		return
	}
	if caller, ok := middleware.PatientIDFromContext(c); ok && req.PatientID == "" {
		req.PatientID = caller
	}
	if forbidOtherPatient(c, req.PatientID) {
		return
	}

	appt, err := h.Service.BookAppointment(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, appt, "Appointment booked successfully")
}

// GetAppointmentHandler handles GET /api/appointments/:id.
func (h *BookingHandler) GetAppointmentHandler(c *gin.Context) {
	view, ok := h.loadOwnAppointment(c)
	if !ok {
		return
	}
	respondOK(c, http.StatusOK, view, "")
}

// RescheduleAppointmentHandler handles PUT /api/appointments/:id.
func (h *BookingHandler) RescheduleAppointmentHandler(c *gin.Context) {
	var req models.RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	if _, ok := h.loadOwnAppointment(c); !ok {
		return
	}

	appt, err := h.Service.RescheduleAppointment(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, appt, "Appointment rescheduled successfully")
}

// CancelAppointmentHandler handles DELETE /api/appointments/:id with an optional {"reason"} body.
func (h *BookingHandler) CancelAppointmentHandler(c *gin.Context) {
	var req models.CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		respondBadRequest(c, err)
		return
	}
	if _, ok := h.loadOwnAppointment(c); !ok {
		return
	}

	appt, err := h.Service.CancelAppointment(c.Request.Context(), c.Param("id"), req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, appt, "Appointment cancelled successfully")
}

// UpdateAppointmentStatusHandler handles PATCH /api/appointments/:id/status (doctor-facing).
func (h *BookingHandler) UpdateAppointmentStatusHandler(c *gin.Context) {
	var req models.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	appt, err := h.Service.UpdateAppointmentStatus(c.Request.Context(), c.Param("id"), req.Status, req.Notes)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, appt, "Appointment status updated successfully")
}

// loadOwnAppointment fetches the :id appointment and enforces patient ownership.
// It writes the response and returns false when the request must stop.
func (h *BookingHandler) loadOwnAppointment(c *gin.Context) (*models.AppointmentView, bool) {
	view, err := h.Service.GetAppointment(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	if forbidOtherPatient(c, view.PatientID) {
		return nil, false
	}
	return view, true
}
