package repository

import (
	"errors"

	"medical-tourism-backend/internal/models"
	"medical-tourism-backend/pkg/apperr"

	"gorm.io/gorm"
)

type HospitalTreatmentRepository struct {
	db *gorm.DB
}

func NewHospitalTreatmentRepo(db *gorm.DB) *HospitalTreatmentRepository {
	return &HospitalTreatmentRepository{db: db}
}

// GetHospitalTreatmentByID retrieves a hospital treatment by ID, active or not
func (r *HospitalTreatmentRepository) GetHospitalTreatmentByID(id uint) (*models.HospitalTreatment, error) {
	var ht models.HospitalTreatment
	err := r.db.Preload("Hospital").
		Preload("Treatment").
		First(&ht, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.ErrNotFound, "hospital treatment not found")
		}
		return nil, err
	}
	return &ht, nil
}

// GetByHospitalAndTreatment retrieves the join row for a (hospital, treatment) pair
func (r *HospitalTreatmentRepository) GetByHospitalAndTreatment(hospitalID, treatmentID uint) (*models.HospitalTreatment, error) {
	var ht models.HospitalTreatment
	err := r.db.Where("hospital_id = ? AND treatment_id = ?", hospitalID, treatmentID).
		First(&ht).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.ErrNotFound, "hospital treatment not found")
		}
		return nil, err
	}
	return &ht, nil
}

// GetTreatmentsByHospital retrieves active offerings of a hospital with the
// treatment side preloaded
func (r *HospitalTreatmentRepository) GetTreatmentsByHospital(hospitalID uint) ([]models.HospitalTreatment, error) {
	var hts []models.HospitalTreatment
	err := r.db.Where("hospital_id = ? AND is_active = ?", hospitalID, true).
		Preload("Treatment").
		Find(&hts).Error
	return hts, err
}

// GetHospitalsByTreatment retrieves active offerings of a treatment with the
// hospital side preloaded
func (r *HospitalTreatmentRepository) GetHospitalsByTreatment(treatmentID uint) ([]models.HospitalTreatment, error) {
	var hts []models.HospitalTreatment
	err := r.db.Where("treatment_id = ? AND is_active = ?", treatmentID, true).
		Preload("Hospital").
		Find(&hts).Error
	return hts, err
}

// CreateHospitalTreatment creates a new hospital treatment
func (r *HospitalTreatmentRepository) CreateHospitalTreatment(ht *models.HospitalTreatment) error {
	return r.db.Create(ht).Error
}

// UpdateHospitalTreatment merges the non-zero fields into an existing row and
// returns the updated record
func (r *HospitalTreatmentRepository) UpdateHospitalTreatment(id uint, fields *models.HospitalTreatment) (*models.HospitalTreatment, error) {
	if err := r.db.Model(&models.HospitalTreatment{}).
		Where("id = ?", id).
		Updates(fields).Error; err != nil {
		return nil, err
	}
	return r.GetHospitalTreatmentByID(id)
}

// SoftDeleteHospitalTreatment deactivates a hospital treatment
func (r *HospitalTreatmentRepository) SoftDeleteHospitalTreatment(id uint) error {
	return r.db.Model(&models.HospitalTreatment{}).
		Where("id = ?", id).
		Update("is_active", false).Error
}
