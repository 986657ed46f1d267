package handlers

import (
	"errors"
	"net/http"

	"medibook/middleware"
	"medibook/services/booking"
	"medibook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SuccessResponse is the envelope of every successful API response.
type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
	Message string      `json:"message,omitempty"`
}

func respondOK(c *gin.Context, status int, data interface{}, message string) {
	c.JSON(status, SuccessResponse{Success: true, Data: data, Message: message})
}

// statusForKind maps booking error kinds to HTTP status codes.
func statusForKind(kind booking.ErrorKind) int {
	switch kind {
	case booking.KindValidation, booking.KindInvalidDate, booking.KindInvalidOperation:
		return http.StatusBadRequest
	case booking.KindNotFound:
		return http.StatusNotFound
	case booking.KindConflict:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// respondError writes the error envelope. Errors that are not booking errors are logged and
// surface as a generic 500.
func respondError(c *gin.Context, err error) {
	var be *booking.BookingError
	if errors.As(err, &be) {
		utils.JSONError(c, statusForKind(be.Kind), string(be.Kind), be.Message, "")
		return
	}
	getLogger(c).Error("Request failed", zap.Error(err))
	_ = c.Error(err)
	utils.JSONError(c, http.StatusInternalServerError, "internal_error", "Internal Server Error", "")
}

func respondBadRequest(c *gin.Context, err error) {
	utils.JSONError(c, http.StatusBadRequest, string(booking.KindValidation), "Invalid request body", err.Error())
}

// forbidOtherPatient rejects the request when a verified patient acts on someone else's data.
func forbidOtherPatient(c *gin.Context, patientID string) bool {
	caller, ok := middleware.PatientIDFromContext(c)
	if !ok || caller == patientID {
		return false
	}
	utils.JSONError(c, http.StatusForbidden, "forbidden", "Not allowed to act for another patient", "")
	return true
}
