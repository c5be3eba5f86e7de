package repository

import (
	"errors"

	"medical-tourism-backend/internal/models"
	"medical-tourism-backend/pkg/apperr"

	"gorm.io/gorm"
)

type TreatmentRepository struct {
	db *gorm.DB
}

func NewTreatmentRepo(db *gorm.DB) *TreatmentRepository {
	return &TreatmentRepository{db: db}
}

// GetActiveTreatments retrieves all active treatments
func (r *TreatmentRepository) GetActiveTreatments() ([]models.Treatment, error) {
	var treatments []models.Treatment
	err := r.db.Where("is_active = ?", true).Order("name ASC").Find(&treatments).Error
	return treatments, err
}

// GetTreatmentByID retrieves a treatment by ID, active or not
func (r *TreatmentRepository) GetTreatmentByID(id uint) (*models.Treatment, error) {
	var treatment models.Treatment
	err := r.db.First(&treatment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.ErrNotFound, "treatment not found")
		}
		return nil, err
	}
	return &treatment, nil
}

// GetTreatmentsByIDs retrieves treatments matching the given ids
func (r *TreatmentRepository) GetTreatmentsByIDs(ids []uint) ([]models.Treatment, error) {
	var treatments []models.Treatment
	err := r.db.Where("id IN ?", ids).Find(&treatments).Error
	return treatments, err
}

// CreateTreatment creates a new treatment
func (r *TreatmentRepository) CreateTreatment(treatment *models.Treatment) error {
	return r.db.Create(treatment).Error
}

// UpdateTreatment merges the non-zero fields into an existing treatment and
// returns the updated row
func (r *TreatmentRepository) UpdateTreatment(id uint, fields *models.Treatment) (*models.Treatment, error) {
	if err := r.db.Model(&models.Treatment{}).
		Where("id = ?", id).
		Updates(fields).Error; err != nil {
		return nil, err
	}
	return r.GetTreatmentByID(id)
}

// SoftDeleteTreatment deactivates a treatment by setting is_active to false
func (r *TreatmentRepository) SoftDeleteTreatment(id uint) error {
	return r.db.Model(&models.Treatment{}).
		Where("id = ?", id).
		Update("is_active", false).Error
}

// CountActiveTreatments counts active treatments
func (r *TreatmentRepository) CountActiveTreatments() (int64, error) {
	var count int64
	err := r.db.Model(&models.Treatment{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}
