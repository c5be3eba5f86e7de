package repository

import (
	"errors"

	"medical-tourism-backend/internal/models"
	"medical-tourism-backend/pkg/apperr"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepo(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// CreateBooking inserts a booking unless the user already holds a pending one
// for the same hospital treatment. The existence probe and the insert share a
// transaction; idx_booking_dup covers the probe.
func (r *BookingRepository) CreateBooking(booking *models.Booking) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&models.Booking{}).
			Where("user_id = ? AND hospital_treatment_id = ? AND status = ?",
				booking.UserID, booking.HospitalTreatmentID, models.BookingPending).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return apperr.New(apperr.ErrConflict,
				"you already have a pending booking for this treatment at this hospital")
		}
		return tx.Create(booking).Error
	})
}

// GetBookingByID retrieves a booking by ID without relationships
func (r *BookingRepository) GetBookingByID(id uint) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.First(&booking, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.ErrNotFound, "booking not found")
		}
		return nil, err
	}
	return &booking, nil
}

// GetBookingsByUserID retrieves a user's bookings, newest first, with the
// hospital treatment and its hospital/treatment sides expanded
func (r *BookingRepository) GetBookingsByUserID(userID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.Where("user_id = ?", userID).
		Preload("HospitalTreatment").
		Preload("HospitalTreatment.Hospital").
		Preload("HospitalTreatment.Treatment").
		Order("created_at DESC").
		Find(&bookings).Error
	return bookings, err
}

// GetAllBookings retrieves every booking, newest first, additionally expanded
// with the owning user
func (r *BookingRepository) GetAllBookings() ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.Preload("User").
		Preload("HospitalTreatment").
		Preload("HospitalTreatment.Hospital").
		Preload("HospitalTreatment.Treatment").
		Order("created_at DESC").
		Find(&bookings).Error
	return bookings, err
}

// UpdateBookingStatus overwrites a booking's status
func (r *BookingRepository) UpdateBookingStatus(id uint, status string) error {
	return r.db.Model(&models.Booking{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// CountBookings counts all bookings
func (r *BookingRepository) CountBookings() (int64, error) {
	var count int64
	err := r.db.Model(&models.Booking{}).Count(&count).Error
	return count, err
}

// CountBookingsByStatus counts bookings in the given status
func (r *BookingRepository) CountBookingsByStatus(status string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Booking{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
