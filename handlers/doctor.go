package handlers

import (
	"net/http"
	"strconv"

	"medibook/models"
	"medibook/services/booking"
	"medibook/services/doctor"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DoctorHandler struct {
	Service doctor.DirectoryService
}

func NewDoctorHandler(service doctor.DirectoryService) *DoctorHandler {
	return &DoctorHandler{Service: service}
}

// SearchDoctorsHandler handles GET /api/doctors?q=&specialty=&page=&limit=.
func (h *DoctorHandler) SearchDoctorsHandler(c *gin.Context) {
	page, err := optionalInt(c, "page")
	if err != nil {
		respondError(c, err)
		return
	}
	limit, err := optionalInt(c, "limit")
	if err != nil {
		respondError(c, err)
		return
	}

	result, err := h.Service.SearchDoctors(c.Request.Context(), models.DoctorSearch{
		Query:     c.Query("q"),
		Specialty: c.Query("specialty"),
		Page:      page,
		Limit:     limit,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, result, "")
}

// GetDoctorHandler handles GET /api/doctors/:id.
func (h *DoctorHandler) GetDoctorHandler(c *gin.Context) {
	d, err := h.Service.GetDoctor(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, d, "")
}

// RegisterDoctorHandler handles POST /api/doctors.
func (h *DoctorHandler) RegisterDoctorHandler(c *gin.Context) {
	logger := getLogger(c)
	var reg models.DoctorRegistration
	if err := c.ShouldBindJSON(&reg); err != nil {
		logger.Warn("Invalid doctor registration", zap.Error(err))
		respondBadRequest(c, err)
		return
	}

	d, err := h.Service.RegisterDoctor(c.Request.Context(), reg)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, d, "Doctor registered successfully")
}

func optionalInt(c *gin.Context, key string) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, booking.NewValidationError("%s must be an integer", key)
	}
	return n, nil
}
