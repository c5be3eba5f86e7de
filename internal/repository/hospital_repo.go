package repository

import (
	"errors"

	"medical-tourism-backend/internal/models"
	"medical-tourism-backend/pkg/apperr"

	"gorm.io/gorm"
)

type HospitalRepository struct {
	db *gorm.DB
}

func NewHospitalRepo(db *gorm.DB) *HospitalRepository {
	return &HospitalRepository{db: db}
}

// GetActiveHospitals retrieves all active hospitals
func (r *HospitalRepository) GetActiveHospitals() ([]models.Hospital, error) {
	var hospitals []models.Hospital
	err := r.db.Where("is_active = ?", true).Order("name ASC").Find(&hospitals).Error
	return hospitals, err
}

// GetHospitalByID retrieves a hospital by ID. Inactive rows stay resolvable
// by id so existing references do not break.
func (r *HospitalRepository) GetHospitalByID(id uint) (*models.Hospital, error) {
	var hospital models.Hospital
	err := r.db.First(&hospital, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.ErrNotFound, "hospital not found")
		}
		return nil, err
	}
	return &hospital, nil
}

// CreateHospital creates a new hospital
func (r *HospitalRepository) CreateHospital(hospital *models.Hospital) error {
	return r.db.Create(hospital).Error
}

// UpdateHospital merges the non-zero fields into an existing hospital and
// returns the updated row
func (r *HospitalRepository) UpdateHospital(id uint, fields *models.Hospital) (*models.Hospital, error) {
	if err := r.db.Model(&models.Hospital{}).
		Where("id = ?", id).
		Updates(fields).Error; err != nil {
		return nil, err
	}
	return r.GetHospitalByID(id)
}

// SoftDeleteHospital deactivates a hospital by setting is_active to false
func (r *HospitalRepository) SoftDeleteHospital(id uint) error {
	return r.db.Model(&models.Hospital{}).
		Where("id = ?", id).
		Update("is_active", false).Error
}

// CountActiveHospitals counts active hospitals
func (r *HospitalRepository) CountActiveHospitals() (int64, error) {
	var count int64
	err := r.db.Model(&models.Hospital{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}
