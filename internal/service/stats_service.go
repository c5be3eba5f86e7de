package service

import (
	"medical-tourism-backend/internal/models"
	"medical-tourism-backend/internal/repository"

	"golang.org/x/sync/errgroup"
)

type StatsService struct {
	userRepo      *repository.UserRepository
	hospitalRepo  *repository.HospitalRepository
	treatmentRepo *repository.TreatmentRepository
	bookingRepo   *repository.BookingRepository
}

func NewStatsService(
	userRepo *repository.UserRepository,
	hospitalRepo *repository.HospitalRepository,
	treatmentRepo *repository.TreatmentRepository,
	bookingRepo *repository.BookingRepository,
) *StatsService {
	return &StatsService{
		userRepo:      userRepo,
		hospitalRepo:  hospitalRepo,
		treatmentRepo: treatmentRepo,
		bookingRepo:   bookingRepo,
	}
}

// AdminStats is the admin summary view, recomputed in full on every call
type AdminStats struct {
	TotalUsers        int64 `json:"total_users"`
	TotalHospitals    int64 `json:"total_hospitals"`
	TotalTreatments   int64 `json:"total_treatments"`
	TotalBookings     int64 `json:"total_bookings"`
	PendingBookings   int64 `json:"pending_bookings"`
	ApprovedBookings  int64 `json:"approved_bookings"`
	RejectedBookings  int64 `json:"rejected_bookings"`
	CancelledBookings int64 `json:"cancelled_bookings"`
}

// GetAdminStats issues the counts in parallel and assembles the summary
func (s *StatsService) GetAdminStats() (*AdminStats, error) {
	var stats AdminStats
	var g errgroup.Group

	g.Go(func() (err error) {
		stats.TotalUsers, err = s.userRepo.CountUsers()
		return
	})
	g.Go(func() (err error) {
		stats.TotalHospitals, err = s.hospitalRepo.CountActiveHospitals()
		return
	})
	g.Go(func() (err error) {
		stats.TotalTreatments, err = s.treatmentRepo.CountActiveTreatments()
		return
	})
	g.Go(func() (err error) {
		stats.TotalBookings, err = s.bookingRepo.CountBookings()
		return
	})
	g.Go(func() (err error) {
		stats.PendingBookings, err = s.bookingRepo.CountBookingsByStatus(models.BookingPending)
		return
	})
	g.Go(func() (err error) {
		stats.ApprovedBookings, err = s.bookingRepo.CountBookingsByStatus(models.BookingApproved)
		return
	})
	g.Go(func() (err error) {
		stats.RejectedBookings, err = s.bookingRepo.CountBookingsByStatus(models.BookingRejected)
		return
	})
	g.Go(func() (err error) {
		stats.CancelledBookings, err = s.bookingRepo.CountBookingsByStatus(models.BookingCancelled)
		return
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &stats, nil
}
