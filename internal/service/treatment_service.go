package service

import (
	"fmt"

	"medical-tourism-backend/internal/models"
	"medical-tourism-backend/internal/repository"
	"medical-tourism-backend/pkg/apperr"
)

type TreatmentService struct {
	treatmentRepo *repository.TreatmentRepository
	auditRepo     *repository.AuditRepository
}

func NewTreatmentService(
	treatmentRepo *repository.TreatmentRepository,
	auditRepo *repository.AuditRepository,
) *TreatmentService {
	return &TreatmentService{
		treatmentRepo: treatmentRepo,
		auditRepo:     auditRepo,
	}
}

// GetActiveTreatments retrieves the active treatment catalog
func (s *TreatmentService) GetActiveTreatments() ([]models.Treatment, error) {
	return s.treatmentRepo.GetActiveTreatments()
}

// GetTreatmentByID retrieves a treatment by ID, active or not
func (s *TreatmentService) GetTreatmentByID(id uint) (*models.Treatment, error) {
	return s.treatmentRepo.GetTreatmentByID(id)
}

// CreateTreatment creates a new treatment (admin only)
func (s *TreatmentService) CreateTreatment(treatment *models.Treatment, adminID uint) error {
	if treatment.Name == "" || treatment.Description == "" {
		return apperr.New(apperr.ErrValidation, "name and description are required")
	}
	if !models.ValidTreatmentCategory(treatment.Category) {
		return apperr.New(apperr.ErrValidation, "invalid treatment category")
	}

	if err := s.treatmentRepo.CreateTreatment(treatment); err != nil {
		return fmt.Errorf("failed to create treatment: %w", err)
	}

	adminIDPtr := &adminID
	details := fmt.Sprintf("Created treatment: %s (%s)", treatment.Name, treatment.Category)
	_ = s.auditRepo.CreateAuditLog(adminIDPtr, "treatment_create", details)

	return nil
}

// UpdateTreatment merges the provided fields into an existing treatment (admin only)
func (s *TreatmentService) UpdateTreatment(id uint, fields *models.Treatment, adminID uint) (*models.Treatment, error) {
	if _, err := s.treatmentRepo.GetTreatmentByID(id); err != nil {
		return nil, err
	}
	if fields.Category != "" && !models.ValidTreatmentCategory(fields.Category) {
		return nil, apperr.New(apperr.ErrValidation, "invalid treatment category")
	}

	updated, err := s.treatmentRepo.UpdateTreatment(id, fields)
	if err != nil {
		return nil, fmt.Errorf("failed to update treatment: %w", err)
	}

	adminIDPtr := &adminID
	details := fmt.Sprintf("Updated treatment: %s (ID: %d)", updated.Name, updated.ID)
	_ = s.auditRepo.CreateAuditLog(adminIDPtr, "treatment_update", details)

	return updated, nil
}

// DeactivateTreatment soft deletes a treatment (admin only)
func (s *TreatmentService) DeactivateTreatment(id uint, adminID uint) error {
	treatment, err := s.treatmentRepo.GetTreatmentByID(id)
	if err != nil {
		return err
	}

	if err := s.treatmentRepo.SoftDeleteTreatment(id); err != nil {
		return fmt.Errorf("failed to deactivate treatment: %w", err)
	}

	adminIDPtr := &adminID
	details := fmt.Sprintf("Deactivated treatment: %s (ID: %d)", treatment.Name, id)
	_ = s.auditRepo.CreateAuditLog(adminIDPtr, "treatment_deactivate", details)

	return nil
}
