package service

import (
	"testing"

	"medical-tourism-backend/internal/models"
	"medical-tourism-backend/internal/repository"
	"medical-tourism-backend/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newBookingService(db *gorm.DB) *BookingService {
	return NewBookingService(
		repository.NewBookingRepo(db),
		repository.NewHospitalTreatmentRepo(db),
		repository.NewAuditRepo(db),
	)
}

func TestCreateBooking(t *testing.T) {
	db := newTestDB(t)
	svc := newBookingService(db)
	user := seedUser(t, db, "patient@example.com", models.RoleUser)
	ht := seedOffering(t, db, "Apollo", "Bypass Surgery")

	booking, err := svc.CreateBooking(user.ID, ht.ID, nil, "history attached")
	require.NoError(t, err)
	assert.Equal(t, models.BookingPending, booking.Status)
	assert.Equal(t, user.ID, booking.UserID)
	assert.Equal(t, ht.ID, booking.HospitalTreatmentID)
}

func TestCreateBookingMissingReference(t *testing.T) {
	db := newTestDB(t)
	svc := newBookingService(db)
	user := seedUser(t, db, "patient@example.com", models.RoleUser)

	_, err := svc.CreateBooking(user.ID, 0, nil, "")
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = svc.CreateBooking(user.ID, 9999, nil, "")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestCreateBookingInactiveOffering(t *testing.T) {
	db := newTestDB(t)
	svc := newBookingService(db)
	user := seedUser(t, db, "patient@example.com", models.RoleUser)
	ht := seedOffering(t, db, "Apollo", "Bypass Surgery")
	require.NoError(t, db.Model(&models.HospitalTreatment{}).Where("id = ?", ht.ID).Update("is_active", false).Error)

	_, err := svc.CreateBooking(user.ID, ht.ID, nil, "")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestCreateBookingDuplicatePending(t *testing.T) {
	db := newTestDB(t)
	svc := newBookingService(db)
	user := seedUser(t, db, "patient@example.com", models.RoleUser)
	ht := seedOffering(t, db, "Apollo", "Bypass Surgery")

	_, err := svc.CreateBooking(user.ID, ht.ID, nil, "")
	require.NoError(t, err)

	_, err = svc.CreateBooking(user.ID, ht.ID, nil, "")
	assert.ErrorIs(t, err, apperr.ErrConflict)

	// Exactly one pending booking persisted
	var count int64
	require.NoError(t, db.Model(&models.Booking{}).
		Where("user_id = ? AND hospital_treatment_id = ? AND status = ?", user.ID, ht.ID, models.BookingPending).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCreateBookingAfterTerminalStatus(t *testing.T) {
	db := newTestDB(t)
	svc := newBookingService(db)
	admin := seedUser(t, db, "admin@example.com", models.RoleAdmin)
	user := seedUser(t, db, "patient@example.com", models.RoleUser)
	ht := seedOffering(t, db, "Apollo", "Bypass Surgery")

	first, err := svc.CreateBooking(user.ID, ht.ID, nil, "")
	require.NoError(t, err)

	// A rejected booking no longer blocks a new pending one
	_, err = svc.UpdateBookingStatus(first.ID, models.BookingRejected, admin.ID)
	require.NoError(t, err)

	_, err = svc.CreateBooking(user.ID, ht.ID, nil, "")
	assert.NoError(t, err)
}

func TestUpdateBookingStatus(t *testing.T) {
	db := newTestDB(t)
	svc := newBookingService(db)
	admin := seedUser(t, db, "admin@example.com", models.RoleAdmin)
	user := seedUser(t, db, "patient@example.com", models.RoleUser)
	ht := seedOffering(t, db, "Apollo", "Bypass Surgery")

	booking, err := svc.CreateBooking(user.ID, ht.ID, nil, "")
	require.NoError(t, err)

	updated, err := svc.UpdateBookingStatus(booking.ID, models.BookingApproved, admin.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingApproved, updated.Status)

	// Cancelled is reserved for the owning user's cancel path
	_, err = svc.UpdateBookingStatus(booking.ID, models.BookingCancelled, admin.ID)
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = svc.UpdateBookingStatus(booking.ID, "Done", admin.ID)
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = svc.UpdateBookingStatus(9999, models.BookingApproved, admin.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestCancelBooking(t *testing.T) {
	db := newTestDB(t)
	svc := newBookingService(db)
	user := seedUser(t, db, "patient@example.com", models.RoleUser)
	ht := seedOffering(t, db, "Apollo", "Bypass Surgery")

	booking, err := svc.CreateBooking(user.ID, ht.ID, nil, "")
	require.NoError(t, err)

	require.NoError(t, svc.CancelBooking(user.ID, booking.ID))

	var stored models.Booking
	require.NoError(t, db.First(&stored, booking.ID).Error)
	assert.Equal(t, models.BookingCancelled, stored.Status)
}

func TestCancelBookingNotOwner(t *testing.T) {
	db := newTestDB(t)
	svc := newBookingService(db)
	owner := seedUser(t, db, "owner@example.com", models.RoleUser)
	other := seedUser(t, db, "other@example.com", models.RoleUser)
	ht := seedOffering(t, db, "Apollo", "Bypass Surgery")

	booking, err := svc.CreateBooking(owner.ID, ht.ID, nil, "")
	require.NoError(t, err)

	err = svc.CancelBooking(other.ID, booking.ID)
	assert.ErrorIs(t, err, apperr.ErrAuthorization)
}

func TestCancelNonPendingBooking(t *testing.T) {
	terminal := []string{models.BookingApproved, models.BookingRejected, models.BookingCancelled}

	for _, status := range terminal {
		t.Run(status, func(t *testing.T) {
			db := newTestDB(t)
			svc := newBookingService(db)
			user := seedUser(t, db, "patient@example.com", models.RoleUser)
			ht := seedOffering(t, db, "Apollo", "Bypass Surgery")

			booking, err := svc.CreateBooking(user.ID, ht.ID, nil, "")
			require.NoError(t, err)
			require.NoError(t, db.Model(&models.Booking{}).
				Where("id = ?", booking.ID).Update("status", status).Error)

			err = svc.CancelBooking(user.ID, booking.ID)
			assert.ErrorIs(t, err, apperr.ErrConflict)

			// Status unchanged
			var stored models.Booking
			require.NoError(t, db.First(&stored, booking.ID).Error)
			assert.Equal(t, status, stored.Status)
		})
	}
}

func TestGetMyBookingsExpanded(t *testing.T) {
	db := newTestDB(t)
	svc := newBookingService(db)
	user := seedUser(t, db, "patient@example.com", models.RoleUser)
	other := seedUser(t, db, "other@example.com", models.RoleUser)
	ht := seedOffering(t, db, "Apollo", "Bypass Surgery")
	ht2 := seedOffering(t, db, "Fortis", "Knee Replacement")

	_, err := svc.CreateBooking(user.ID, ht.ID, nil, "")
	require.NoError(t, err)
	_, err = svc.CreateBooking(user.ID, ht2.ID, nil, "")
	require.NoError(t, err)
	_, err = svc.CreateBooking(other.ID, ht.ID, nil, "")
	require.NoError(t, err)

	bookings, err := svc.GetMyBookings(user.ID)
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	for _, b := range bookings {
		assert.Equal(t, user.ID, b.UserID)
		assert.NotEmpty(t, b.HospitalTreatment.Hospital.Name)
		assert.NotEmpty(t, b.HospitalTreatment.Treatment.Name)
	}

	all, err := svc.GetAllBookings()
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestBookingSurvivesOfferingDeactivation(t *testing.T) {
	db := newTestDB(t)
	svc := newBookingService(db)
	user := seedUser(t, db, "patient@example.com", models.RoleUser)
	ht := seedOffering(t, db, "Apollo", "Bypass Surgery")

	booking, err := svc.CreateBooking(user.ID, ht.ID, nil, "")
	require.NoError(t, err)

	require.NoError(t, db.Model(&models.HospitalTreatment{}).
		Where("id = ?", ht.ID).Update("is_active", false).Error)

	bookings, err := svc.GetMyBookings(user.ID)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, booking.ID, bookings[0].ID)
	assert.Equal(t, ht.ID, bookings[0].HospitalTreatment.ID)
	assert.False(t, bookings[0].HospitalTreatment.IsActive)
}
