package service

import (
	"fmt"
	"time"

	"medical-tourism-backend/internal/models"
	"medical-tourism-backend/internal/repository"
	"medical-tourism-backend/pkg/apperr"
)

type BookingService struct {
	bookingRepo           *repository.BookingRepository
	hospitalTreatmentRepo *repository.HospitalTreatmentRepository
	auditRepo             *repository.AuditRepository
}

func NewBookingService(
	bookingRepo *repository.BookingRepository,
	hospitalTreatmentRepo *repository.HospitalTreatmentRepository,
	auditRepo *repository.AuditRepository,
) *BookingService {
	return &BookingService{
		bookingRepo:           bookingRepo,
		hospitalTreatmentRepo: hospitalTreatmentRepo,
		auditRepo:             auditRepo,
	}
}

// CreateBooking creates a Pending booking for an active hospital treatment.
// A user may hold at most one pending booking per hospital treatment.
func (s *BookingService) CreateBooking(userID uint, hospitalTreatmentID uint, preferredDate *time.Time, medicalNotes string) (*models.Booking, error) {
	if hospitalTreatmentID == 0 {
		return nil, apperr.New(apperr.ErrValidation, "hospital treatment is required")
	}

	ht, err := s.hospitalTreatmentRepo.GetHospitalTreatmentByID(hospitalTreatmentID)
	if err != nil {
		return nil, err
	}
	if !ht.IsActive {
		return nil, apperr.New(apperr.ErrNotFound, "hospital treatment is no longer available")
	}

	booking := &models.Booking{
		UserID:              userID,
		HospitalTreatmentID: hospitalTreatmentID,
		PreferredDate:       preferredDate,
		MedicalNotes:        medicalNotes,
		Status:              models.BookingPending,
	}

	if err := s.bookingRepo.CreateBooking(booking); err != nil {
		return nil, err
	}

	userIDPtr := &userID
	details := fmt.Sprintf("Created booking %d for hospital treatment %d", booking.ID, hospitalTreatmentID)
	_ = s.auditRepo.CreateAuditLog(userIDPtr, "booking_create", details)

	return booking, nil
}

// GetMyBookings retrieves the caller's bookings, newest first
func (s *BookingService) GetMyBookings(userID uint) ([]models.Booking, error) {
	return s.bookingRepo.GetBookingsByUserID(userID)
}

// GetAllBookings retrieves every booking (admin only)
func (s *BookingService) GetAllBookings() ([]models.Booking, error) {
	return s.bookingRepo.GetAllBookings()
}

// UpdateBookingStatus overwrites a booking's status (admin only). The target
// set excludes Cancelled, which only the owning user may reach. The current
// status is not checked before the overwrite, matching the admin workflow
// where a rejected booking can still be approved.
func (s *BookingService) UpdateBookingStatus(bookingID uint, status string, adminID uint) (*models.Booking, error) {
	switch status {
	case models.BookingPending, models.BookingApproved, models.BookingRejected:
	default:
		return nil, apperr.New(apperr.ErrValidation, "invalid status value")
	}

	booking, err := s.bookingRepo.GetBookingByID(bookingID)
	if err != nil {
		return nil, err
	}

	if err := s.bookingRepo.UpdateBookingStatus(bookingID, status); err != nil {
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}
	booking.Status = status

	adminIDPtr := &adminID
	details := fmt.Sprintf("Set booking %d status to %s", bookingID, status)
	_ = s.auditRepo.CreateAuditLog(adminIDPtr, "booking_status_update", details)

	return booking, nil
}

// CancelBooking cancels the caller's own pending booking
func (s *BookingService) CancelBooking(userID uint, bookingID uint) error {
	booking, err := s.bookingRepo.GetBookingByID(bookingID)
	if err != nil {
		return err
	}

	if booking.UserID != userID {
		return apperr.New(apperr.ErrAuthorization, "not authorized to cancel this booking")
	}

	if booking.Status != models.BookingPending {
		return apperr.New(apperr.ErrConflict, "only pending bookings can be cancelled")
	}

	if err := s.bookingRepo.UpdateBookingStatus(bookingID, models.BookingCancelled); err != nil {
		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	userIDPtr := &userID
	details := fmt.Sprintf("Cancelled booking %d", bookingID)
	_ = s.auditRepo.CreateAuditLog(userIDPtr, "booking_cancel", details)

	return nil
}
