package service

import (
	"fmt"

	"medical-tourism-backend/internal/models"
	"medical-tourism-backend/internal/repository"
	"medical-tourism-backend/pkg/apperr"
)

type HospitalService struct {
	hospitalRepo *repository.HospitalRepository
	auditRepo    *repository.AuditRepository
}

func NewHospitalService(
	hospitalRepo *repository.HospitalRepository,
	auditRepo *repository.AuditRepository,
) *HospitalService {
	return &HospitalService{
		hospitalRepo: hospitalRepo,
		auditRepo:    auditRepo,
	}
}

// GetActiveHospitals retrieves the active hospital catalog
func (s *HospitalService) GetActiveHospitals() ([]models.Hospital, error) {
	return s.hospitalRepo.GetActiveHospitals()
}

// GetHospitalByID retrieves a hospital by ID, active or not
func (s *HospitalService) GetHospitalByID(id uint) (*models.Hospital, error) {
	return s.hospitalRepo.GetHospitalByID(id)
}

// CreateHospital creates a new hospital (admin only)
func (s *HospitalService) CreateHospital(hospital *models.Hospital, adminID uint) error {
	if hospital.Name == "" || hospital.City == "" {
		return apperr.New(apperr.ErrValidation, "name and city are required")
	}

	if err := s.hospitalRepo.CreateHospital(hospital); err != nil {
		return fmt.Errorf("failed to create hospital: %w", err)
	}

	adminIDPtr := &adminID
	details := fmt.Sprintf("Created hospital: %s (%s)", hospital.Name, hospital.City)
	_ = s.auditRepo.CreateAuditLog(adminIDPtr, "hospital_create", details)

	return nil
}

// UpdateHospital merges the provided fields into an existing hospital (admin only)
func (s *HospitalService) UpdateHospital(id uint, fields *models.Hospital, adminID uint) (*models.Hospital, error) {
	if _, err := s.hospitalRepo.GetHospitalByID(id); err != nil {
		return nil, err
	}

	updated, err := s.hospitalRepo.UpdateHospital(id, fields)
	if err != nil {
		return nil, fmt.Errorf("failed to update hospital: %w", err)
	}

	adminIDPtr := &adminID
	details := fmt.Sprintf("Updated hospital: %s (ID: %d)", updated.Name, updated.ID)
	_ = s.auditRepo.CreateAuditLog(adminIDPtr, "hospital_update", details)

	return updated, nil
}

// DeactivateHospital soft deletes a hospital (admin only)
func (s *HospitalService) DeactivateHospital(id uint, adminID uint) error {
	hospital, err := s.hospitalRepo.GetHospitalByID(id)
	if err != nil {
		return err
	}

	if err := s.hospitalRepo.SoftDeleteHospital(id); err != nil {
		return fmt.Errorf("failed to deactivate hospital: %w", err)
	}

	adminIDPtr := &adminID
	details := fmt.Sprintf("Deactivated hospital: %s (ID: %d)", hospital.Name, id)
	_ = s.auditRepo.CreateAuditLog(adminIDPtr, "hospital_deactivate", details)

	return nil
}
