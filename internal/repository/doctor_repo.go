package repository

import (
	"errors"

	"medical-tourism-backend/internal/models"
	"medical-tourism-backend/pkg/apperr"

	"gorm.io/gorm"
)

type DoctorRepository struct {
	db *gorm.DB
}

func NewDoctorRepo(db *gorm.DB) *DoctorRepository {
	return &DoctorRepository{db: db}
}

// GetActiveDoctors retrieves all active doctors with hospital and treatments preloaded
func (r *DoctorRepository) GetActiveDoctors() ([]models.Doctor, error) {
	var doctors []models.Doctor
	err := r.db.Where("is_active = ?", true).
		Preload("Hospital").
		Preload("Treatments").
		Order("name ASC").
		Find(&doctors).Error
	return doctors, err
}

// GetDoctorByID retrieves a doctor by ID with relationships preloaded
func (r *DoctorRepository) GetDoctorByID(id uint) (*models.Doctor, error) {
	var doctor models.Doctor
	err := r.db.Preload("Hospital").
		Preload("Treatments").
		First(&doctor, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.ErrNotFound, "doctor not found")
		}
		return nil, err
	}
	return &doctor, nil
}

// CreateDoctor creates a new doctor, including treatment associations
func (r *DoctorRepository) CreateDoctor(doctor *models.Doctor) error {
	return r.db.Create(doctor).Error
}

// UpdateDoctorFields applies an allow-listed field merge to a doctor
func (r *DoctorRepository) UpdateDoctorFields(id uint, updates map[string]interface{}) error {
	return r.db.Model(&models.Doctor{}).
		Where("id = ?", id).
		Updates(updates).Error
}

// ReplaceDoctorTreatments replaces the doctor's treatment associations
func (r *DoctorRepository) ReplaceDoctorTreatments(doctor *models.Doctor, treatments []models.Treatment) error {
	return r.db.Model(doctor).Association("Treatments").Replace(treatments)
}

// SoftDeleteDoctor deactivates a doctor by setting is_active to false
func (r *DoctorRepository) SoftDeleteDoctor(id uint) error {
	return r.db.Model(&models.Doctor{}).
		Where("id = ?", id).
		Update("is_active", false).Error
}
