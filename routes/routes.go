package routes

import (
	"time"

	"medibook/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
}

// RegisterDoctorRoutes registers the directory, slot and availability endpoints.
func RegisterDoctorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/doctors")
	{
		api.GET("", hb.SearchDoctorsHandler)
		api.POST("", hb.RegisterDoctorHandler)
		api.GET("/:id", hb.GetDoctorHandler)

		api.GET("/:id/slots", hb.GetSlotsHandler)
		api.GET("/:id/availability", hb.GetAvailabilityHandler)
		api.PUT("/:id/availability", hb.SetAvailabilityHandler)
		api.GET("/:id/appointments", hb.GetDoctorScheduleHandler)
	}
}

// RegisterAppointmentRoutes registers the appointment endpoints behind patient identity.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		if hb.PatientIdentity != nil {
			api.Use(hb.PatientIdentity)
		}
		api.GET("", hb.ListAppointmentsHandler)
		api.POST("", hb.BookAppointmentHandler)
		api.GET("/:id", hb.GetAppointmentHandler)
		api.PUT("/:id", hb.RescheduleAppointmentHandler)
		api.DELETE("/:id", hb.CancelAppointmentHandler)
		api.PATCH("/:id/status", hb.UpdateAppointmentStatusHandler)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r, hb)
	RegisterDoctorRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
}
