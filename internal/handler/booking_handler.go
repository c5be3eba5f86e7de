package handler

import (
	"net/http"
	"strconv"
	"time"

	"medical-tourism-backend/internal/middleware"
	"medical-tourism-backend/internal/service"
	"medical-tourism-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingService *service.BookingService
}

func NewBookingHandler(bookingService *service.BookingService) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
	}
}

type CreateBookingRequest struct {
	HospitalTreatmentID uint       `json:"hospital_treatment_id"`
	PreferredDate       *time.Time `json:"preferred_date"`
	MedicalNotes        string     `json:"medical_notes"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// CreateBooking creates a pending booking for the caller
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, _ := middleware.CurrentUser(c)

	booking, err := h.bookingService.CreateBooking(user.ID, req.HospitalTreatmentID, req.PreferredDate, req.MedicalNotes)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.CreatedResponse(c, booking)
}

// GetMyBookings lists the caller's bookings
func (h *BookingHandler) GetMyBookings(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	bookings, err := h.bookingService.GetMyBookings(user.ID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, bookings)
}

// GetAllBookings lists every booking (admin only)
func (h *BookingHandler) GetAllBookings(c *gin.Context) {
	bookings, err := h.bookingService.GetAllBookings()
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, bookings)
}

// UpdateBookingStatus transitions a booking's status (admin only)
func (h *BookingHandler) UpdateBookingStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid booking ID")
		return
	}

	var req UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	admin, _ := middleware.CurrentUser(c)

	booking, err := h.bookingService.UpdateBookingStatus(uint(id), req.Status, admin.ID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, booking)
}

// CancelBooking cancels the caller's own pending booking
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid booking ID")
		return
	}

	user, _ := middleware.CurrentUser(c)

	if err := h.bookingService.CancelBooking(user.ID, uint(id)); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.MessageResponse(c, "Booking cancelled successfully")
}
