package handler

import (
	"medical-tourism-backend/internal/config"
	"medical-tourism-backend/internal/middleware"
	"medical-tourism-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Handlers bundles every route handler for router setup
type Handlers struct {
	Auth              *AuthHandler
	User              *UserHandler
	Hospital          *HospitalHandler
	Treatment         *TreatmentHandler
	Doctor            *DoctorHandler
	HospitalTreatment *HospitalTreatmentHandler
	Booking           *BookingHandler
	Admin             *AdminHandler
}

// NewRouter builds the gin engine with all middleware and routes registered
func NewRouter(cfg *config.Config, logger zerolog.Logger, tokens *utils.JWTManager, h *Handlers) *gin.Engine {
	gin.SetMode(cfg.Server.GinMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS(cfg))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, gin.H{
			"status":  "healthy",
			"service": "medical-tourism-backend",
		})
	})

	api := r.Group("/api")

	// Auth routes (public)
	auth := api.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
	}

	// User profile routes (authenticated)
	users := api.Group("/users")
	users.Use(middleware.RequireAuth(tokens))
	{
		users.GET("/profile", h.User.GetProfile)
		users.PUT("/profile", h.User.UpdateProfile)
	}

	// Hospital catalog (public reads, admin writes)
	hospitals := api.Group("/hospitals")
	{
		hospitals.GET("", h.Hospital.GetHospitals)
		hospitals.GET("/:id", h.Hospital.GetHospital)
		hospitals.POST("", middleware.RequireAuth(tokens), middleware.RequireAdmin(), h.Hospital.CreateHospital)
		hospitals.PUT("/:id", middleware.RequireAuth(tokens), middleware.RequireAdmin(), h.Hospital.UpdateHospital)
		hospitals.DELETE("/:id", middleware.RequireAuth(tokens), middleware.RequireAdmin(), h.Hospital.DeleteHospital)
	}

	// Treatment catalog (public reads, admin writes)
	treatments := api.Group("/treatments")
	{
		treatments.GET("", h.Treatment.GetTreatments)
		treatments.GET("/:id", h.Treatment.GetTreatment)
		treatments.POST("", middleware.RequireAuth(tokens), middleware.RequireAdmin(), h.Treatment.CreateTreatment)
		treatments.PUT("/:id", middleware.RequireAuth(tokens), middleware.RequireAdmin(), h.Treatment.UpdateTreatment)
		treatments.DELETE("/:id", middleware.RequireAuth(tokens), middleware.RequireAdmin(), h.Treatment.DeleteTreatment)
	}

	// Doctor catalog (public reads, admin writes)
	doctors := api.Group("/doctors")
	{
		doctors.GET("", h.Doctor.GetDoctors)
		doctors.GET("/:id", h.Doctor.GetDoctor)
		doctors.POST("", middleware.RequireAuth(tokens), middleware.RequireAdmin(), h.Doctor.CreateDoctor)
		doctors.PUT("/:id", middleware.RequireAuth(tokens), middleware.RequireAdmin(), h.Doctor.UpdateDoctor)
		doctors.DELETE("/:id", middleware.RequireAuth(tokens), middleware.RequireAdmin(), h.Doctor.DeleteDoctor)
	}

	// Hospital treatment join lookups (public reads, admin writes)
	hospitalTreatments := api.Group("/hospital-treatments")
	{
		hospitalTreatments.GET("/hospital/:hospitalId", h.HospitalTreatment.GetTreatmentsByHospital)
		hospitalTreatments.GET("/treatment/:treatmentId", h.HospitalTreatment.GetHospitalsByTreatment)
		hospitalTreatments.POST("", middleware.RequireAuth(tokens), middleware.RequireAdmin(), h.HospitalTreatment.CreateHospitalTreatment)
		hospitalTreatments.PUT("/:id", middleware.RequireAuth(tokens), middleware.RequireAdmin(), h.HospitalTreatment.UpdateHospitalTreatment)
		hospitalTreatments.DELETE("/:id", middleware.RequireAuth(tokens), middleware.RequireAdmin(), h.HospitalTreatment.DeleteHospitalTreatment)
	}

	// Booking routes (authenticated)
	bookings := api.Group("/bookings")
	bookings.Use(middleware.RequireAuth(tokens))
	{
		bookings.POST("", h.Booking.CreateBooking)
		bookings.GET("/my", h.Booking.GetMyBookings)
		bookings.GET("", middleware.RequireAdmin(), h.Booking.GetAllBookings)
		bookings.PUT("/:id/status", middleware.RequireAdmin(), h.Booking.UpdateBookingStatus)
		bookings.PUT("/:id/cancel", h.Booking.CancelBooking)
	}

	// Admin routes
	admin := api.Group("/admin")
	admin.Use(middleware.RequireAuth(tokens), middleware.RequireAdmin())
	{
		admin.GET("/stats", h.Admin.GetStats)
	}

	return r
}
