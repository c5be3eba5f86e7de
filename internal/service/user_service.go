package service

import (
	"medical-tourism-backend/internal/models"
	"medical-tourism-backend/internal/repository"
)

type UserService struct {
	userRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// ProfileUpdate carries the self-service profile fields. Nil means "leave
// unchanged"; anything outside this set cannot be written through the profile
// endpoint.
type ProfileUpdate struct {
	Name           *string `json:"name"`
	Phone          *string `json:"phone"`
	Country        *string `json:"country"`
	MedicalHistory *string `json:"medical_history"`
	Avatar         *string `json:"avatar"`
}

// GetProfile returns the public profile of a user
func (s *UserService) GetProfile(userID uint) (*models.PublicProfile, error) {
	user, err := s.userRepo.FindUserByID(userID)
	if err != nil {
		return nil, err
	}
	profile := user.Public()
	return &profile, nil
}

// UpdateProfile applies an allow-listed merge to the user's own profile
func (s *UserService) UpdateProfile(userID uint, update ProfileUpdate) (*models.PublicProfile, error) {
	if _, err := s.userRepo.FindUserByID(userID); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if update.Name != nil {
		updates["name"] = *update.Name
	}
	if update.Phone != nil {
		updates["phone"] = *update.Phone
	}
	if update.Country != nil {
		updates["country"] = *update.Country
	}
	if update.MedicalHistory != nil {
		updates["medical_history"] = *update.MedicalHistory
	}
	if update.Avatar != nil {
		updates["avatar"] = *update.Avatar
	}

	if len(updates) > 0 {
		if err := s.userRepo.UpdateUserFields(userID, updates); err != nil {
			return nil, err
		}
	}

	return s.GetProfile(userID)
}
