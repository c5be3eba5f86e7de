package service

import (
	"fmt"

	"medical-tourism-backend/internal/models"
	"medical-tourism-backend/internal/repository"
	"medical-tourism-backend/pkg/apperr"
)

type DoctorService struct {
	doctorRepo    *repository.DoctorRepository
	hospitalRepo  *repository.HospitalRepository
	treatmentRepo *repository.TreatmentRepository
	auditRepo     *repository.AuditRepository
}

func NewDoctorService(
	doctorRepo *repository.DoctorRepository,
	hospitalRepo *repository.HospitalRepository,
	treatmentRepo *repository.TreatmentRepository,
	auditRepo *repository.AuditRepository,
) *DoctorService {
	return &DoctorService{
		doctorRepo:    doctorRepo,
		hospitalRepo:  hospitalRepo,
		treatmentRepo: treatmentRepo,
		auditRepo:     auditRepo,
	}
}

// DoctorInput carries fields for creating a doctor
type DoctorInput struct {
	Name            string `json:"name"`
	Specialization  string `json:"specialization"`
	ExperienceYears int    `json:"experience_years"`
	HospitalID      uint   `json:"hospital_id"`
	ProfileImage    string `json:"profile_image"`
	TreatmentIDs    []uint `json:"treatment_ids"`
}

// DoctorUpdate carries the allow-listed update fields. Nil means "leave
// unchanged"; the hospital binding cannot be changed through updates.
type DoctorUpdate struct {
	Name            *string `json:"name"`
	Specialization  *string `json:"specialization"`
	ExperienceYears *int    `json:"experience_years"`
	ProfileImage    *string `json:"profile_image"`
	TreatmentIDs    []uint  `json:"treatment_ids"`
}

// GetActiveDoctors retrieves the active doctor catalog
func (s *DoctorService) GetActiveDoctors() ([]models.Doctor, error) {
	return s.doctorRepo.GetActiveDoctors()
}

// GetDoctorByID retrieves a doctor by ID, active or not
func (s *DoctorService) GetDoctorByID(id uint) (*models.Doctor, error) {
	return s.doctorRepo.GetDoctorByID(id)
}

// CreateDoctor creates a new doctor bound to a hospital (admin only)
func (s *DoctorService) CreateDoctor(input DoctorInput, adminID uint) (*models.Doctor, error) {
	if input.Name == "" || input.Specialization == "" {
		return nil, apperr.New(apperr.ErrValidation, "name and specialization are required")
	}
	if input.HospitalID == 0 {
		return nil, apperr.New(apperr.ErrValidation, "hospital is required")
	}

	if _, err := s.hospitalRepo.GetHospitalByID(input.HospitalID); err != nil {
		return nil, err
	}

	treatments, err := s.resolveTreatments(input.TreatmentIDs)
	if err != nil {
		return nil, err
	}

	doctor := &models.Doctor{
		Name:            input.Name,
		Specialization:  input.Specialization,
		ExperienceYears: input.ExperienceYears,
		HospitalID:      input.HospitalID,
		ProfileImage:    input.ProfileImage,
		Treatments:      treatments,
	}

	if err := s.doctorRepo.CreateDoctor(doctor); err != nil {
		return nil, fmt.Errorf("failed to create doctor: %w", err)
	}

	adminIDPtr := &adminID
	details := fmt.Sprintf("Created doctor: %s (hospital ID: %d)", doctor.Name, doctor.HospitalID)
	_ = s.auditRepo.CreateAuditLog(adminIDPtr, "doctor_create", details)

	return s.doctorRepo.GetDoctorByID(doctor.ID)
}

// UpdateDoctor applies an allow-listed merge to a doctor (admin only)
func (s *DoctorService) UpdateDoctor(id uint, update DoctorUpdate, adminID uint) (*models.Doctor, error) {
	doctor, err := s.doctorRepo.GetDoctorByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if update.Name != nil {
		updates["name"] = *update.Name
	}
	if update.Specialization != nil {
		updates["specialization"] = *update.Specialization
	}
	if update.ExperienceYears != nil {
		updates["experience_years"] = *update.ExperienceYears
	}
	if update.ProfileImage != nil {
		updates["profile_image"] = *update.ProfileImage
	}

	if len(updates) > 0 {
		if err := s.doctorRepo.UpdateDoctorFields(id, updates); err != nil {
			return nil, fmt.Errorf("failed to update doctor: %w", err)
		}
	}

	if update.TreatmentIDs != nil {
		treatments, err := s.resolveTreatments(update.TreatmentIDs)
		if err != nil {
			return nil, err
		}
		if err := s.doctorRepo.ReplaceDoctorTreatments(doctor, treatments); err != nil {
			return nil, fmt.Errorf("failed to update doctor treatments: %w", err)
		}
	}

	adminIDPtr := &adminID
	details := fmt.Sprintf("Updated doctor ID %d", id)
	_ = s.auditRepo.CreateAuditLog(adminIDPtr, "doctor_update", details)

	return s.doctorRepo.GetDoctorByID(id)
}

// DeactivateDoctor soft deletes a doctor (admin only)
func (s *DoctorService) DeactivateDoctor(id uint, adminID uint) error {
	doctor, err := s.doctorRepo.GetDoctorByID(id)
	if err != nil {
		return err
	}

	if err := s.doctorRepo.SoftDeleteDoctor(id); err != nil {
		return fmt.Errorf("failed to deactivate doctor: %w", err)
	}

	adminIDPtr := &adminID
	details := fmt.Sprintf("Deactivated doctor: %s (ID: %d)", doctor.Name, id)
	_ = s.auditRepo.CreateAuditLog(adminIDPtr, "doctor_deactivate", details)

	return nil
}

func (s *DoctorService) resolveTreatments(ids []uint) ([]models.Treatment, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	treatments, err := s.treatmentRepo.GetTreatmentsByIDs(ids)
	if err != nil {
		return nil, err
	}
	if len(treatments) != len(ids) {
		return nil, apperr.New(apperr.ErrNotFound, "one or more treatments not found")
	}
	return treatments, nil
}
