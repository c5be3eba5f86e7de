package service

import (
	"errors"
	"fmt"

	"medical-tourism-backend/internal/models"
	"medical-tourism-backend/internal/repository"
	"medical-tourism-backend/pkg/apperr"
)

type HospitalTreatmentService struct {
	hospitalTreatmentRepo *repository.HospitalTreatmentRepository
	hospitalRepo          *repository.HospitalRepository
	treatmentRepo         *repository.TreatmentRepository
	auditRepo             *repository.AuditRepository
}

func NewHospitalTreatmentService(
	hospitalTreatmentRepo *repository.HospitalTreatmentRepository,
	hospitalRepo *repository.HospitalRepository,
	treatmentRepo *repository.TreatmentRepository,
	auditRepo *repository.AuditRepository,
) *HospitalTreatmentService {
	return &HospitalTreatmentService{
		hospitalTreatmentRepo: hospitalTreatmentRepo,
		hospitalRepo:          hospitalRepo,
		treatmentRepo:         treatmentRepo,
		auditRepo:             auditRepo,
	}
}

// GetTreatmentsByHospital lists a hospital's active offerings
func (s *HospitalTreatmentService) GetTreatmentsByHospital(hospitalID uint) ([]models.HospitalTreatment, error) {
	return s.hospitalTreatmentRepo.GetTreatmentsByHospital(hospitalID)
}

// GetHospitalsByTreatment lists the hospitals actively offering a treatment
func (s *HospitalTreatmentService) GetHospitalsByTreatment(treatmentID uint) ([]models.HospitalTreatment, error) {
	return s.hospitalTreatmentRepo.GetHospitalsByTreatment(treatmentID)
}

// CreateHospitalTreatment binds a treatment to a hospital (admin only)
func (s *HospitalTreatmentService) CreateHospitalTreatment(ht *models.HospitalTreatment, adminID uint) (*models.HospitalTreatment, error) {
	if ht.HospitalID == 0 || ht.TreatmentID == 0 {
		return nil, apperr.New(apperr.ErrValidation, "hospital and treatment are required")
	}
	if ht.CostMinUSD < 0 || ht.CostMaxUSD < ht.CostMinUSD {
		return nil, apperr.New(apperr.ErrValidation, "invalid cost range")
	}
	if ht.SuccessRate < 0 || ht.SuccessRate > 100 {
		return nil, apperr.New(apperr.ErrValidation, "success rate must be between 0 and 100")
	}

	if _, err := s.hospitalRepo.GetHospitalByID(ht.HospitalID); err != nil {
		return nil, err
	}
	if _, err := s.treatmentRepo.GetTreatmentByID(ht.TreatmentID); err != nil {
		return nil, err
	}

	// The pair is unique regardless of the active flag
	existing, err := s.hospitalTreatmentRepo.GetByHospitalAndTreatment(ht.HospitalID, ht.TreatmentID)
	if err != nil && !errors.Is(err, apperr.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.New(apperr.ErrConflict, "this treatment is already offered at this hospital")
	}

	if err := s.hospitalTreatmentRepo.CreateHospitalTreatment(ht); err != nil {
		return nil, fmt.Errorf("failed to create hospital treatment: %w", err)
	}

	adminIDPtr := &adminID
	details := fmt.Sprintf("Created hospital treatment: hospital %d, treatment %d", ht.HospitalID, ht.TreatmentID)
	_ = s.auditRepo.CreateAuditLog(adminIDPtr, "hospital_treatment_create", details)

	return s.hospitalTreatmentRepo.GetHospitalTreatmentByID(ht.ID)
}

// UpdateHospitalTreatment merges the provided fields into an existing row (admin only)
func (s *HospitalTreatmentService) UpdateHospitalTreatment(id uint, fields *models.HospitalTreatment, adminID uint) (*models.HospitalTreatment, error) {
	if _, err := s.hospitalTreatmentRepo.GetHospitalTreatmentByID(id); err != nil {
		return nil, err
	}
	if fields.SuccessRate < 0 || fields.SuccessRate > 100 {
		return nil, apperr.New(apperr.ErrValidation, "success rate must be between 0 and 100")
	}

	// The pair itself is immutable; only the metadata merges
	fields.HospitalID = 0
	fields.TreatmentID = 0

	updated, err := s.hospitalTreatmentRepo.UpdateHospitalTreatment(id, fields)
	if err != nil {
		return nil, fmt.Errorf("failed to update hospital treatment: %w", err)
	}

	adminIDPtr := &adminID
	details := fmt.Sprintf("Updated hospital treatment ID %d", id)
	_ = s.auditRepo.CreateAuditLog(adminIDPtr, "hospital_treatment_update", details)

	return updated, nil
}

// DeactivateHospitalTreatment soft deletes an offering (admin only).
// Existing bookings referencing it stay readable.
func (s *HospitalTreatmentService) DeactivateHospitalTreatment(id uint, adminID uint) error {
	if _, err := s.hospitalTreatmentRepo.GetHospitalTreatmentByID(id); err != nil {
		return err
	}

	if err := s.hospitalTreatmentRepo.SoftDeleteHospitalTreatment(id); err != nil {
		return fmt.Errorf("failed to deactivate hospital treatment: %w", err)
	}

	adminIDPtr := &adminID
	details := fmt.Sprintf("Deactivated hospital treatment ID %d", id)
	_ = s.auditRepo.CreateAuditLog(adminIDPtr, "hospital_treatment_deactivate", details)

	return nil
}
