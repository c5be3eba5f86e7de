package service

import (
	"errors"
	"fmt"

	"medical-tourism-backend/internal/models"
	"medical-tourism-backend/internal/repository"
	"medical-tourism-backend/pkg/apperr"
	"medical-tourism-backend/pkg/utils"
)

type AuthService struct {
	userRepo  *repository.UserRepository
	auditRepo *repository.AuditRepository
	tokens    *utils.JWTManager
}

func NewAuthService(
	userRepo *repository.UserRepository,
	auditRepo *repository.AuditRepository,
	tokens *utils.JWTManager,
) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		auditRepo: auditRepo,
		tokens:    tokens,
	}
}

// RegisterInput carries the registration fields
type RegisterInput struct {
	Name           string
	Email          string
	Password       string
	Phone          string
	Country        string
	MedicalHistory string
}

// LoginResponse is returned on successful login
type LoginResponse struct {
	Token string               `json:"token"`
	User  models.PublicProfile `json:"user"`
}

// Register creates a new user account with the default role
func (s *AuthService) Register(input RegisterInput) error {
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return apperr.New(apperr.ErrValidation, "name, email and password are required")
	}

	// Duplicate email check
	existing, err := s.userRepo.FindUserByEmail(input.Email)
	if err != nil && !errors.Is(err, apperr.ErrNotFound) {
		return err
	}
	if existing != nil {
		return apperr.New(apperr.ErrConflict, "user already exists")
	}

	passwordHash, err := utils.HashPassword(input.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:           input.Name,
		Email:          input.Email,
		PasswordHash:   passwordHash,
		Role:           models.RoleUser,
		Phone:          input.Phone,
		Country:        input.Country,
		MedicalHistory: input.MedicalHistory,
	}

	if err := s.userRepo.CreateUser(user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	userIDPtr := &user.ID
	_ = s.auditRepo.CreateAuditLog(userIDPtr, "user_registration", fmt.Sprintf("User %s registered", user.Email))

	return nil
}

// Login authenticates a user and returns a bearer token with the public profile
func (s *AuthService) Login(email, password string) (*LoginResponse, error) {
	if email == "" || password == "" {
		return nil, apperr.New(apperr.ErrValidation, "email and password are required")
	}

	user, err := s.userRepo.FindUserByEmail(email)
	if err != nil {
		return nil, apperr.New(apperr.ErrAuthentication, "invalid credentials")
	}

	if !utils.ComparePassword(user.PasswordHash, password) {
		return nil, apperr.New(apperr.ErrAuthentication, "invalid credentials")
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	userIDPtr := &user.ID
	_ = s.auditRepo.CreateAuditLog(userIDPtr, "user_login", fmt.Sprintf("User %s logged in", user.Email))

	return &LoginResponse{
		Token: token,
		User:  user.Public(),
	}, nil
}
