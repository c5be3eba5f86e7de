package service

import (
	"testing"
	"time"

	"medical-tourism-backend/internal/models"
	"medical-tourism-backend/internal/repository"
	"medical-tourism-backend/pkg/apperr"
	"medical-tourism-backend/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthService(db *gorm.DB) *AuthService {
	tokens := utils.NewJWTManager("test-secret", 168*time.Hour)
	return NewAuthService(repository.NewUserRepo(db), repository.NewAuditRepo(db), tokens)
}

func TestRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	err := svc.Register(RegisterInput{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "secret123",
		Country:  "Kenya",
	})
	require.NoError(t, err)

	response, err := svc.Login("asha@example.com", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, response.Token)
	assert.Equal(t, "asha@example.com", response.User.Email)
	assert.Equal(t, models.RoleUser, response.User.Role)
}

func TestRegisterValidation(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	err := svc.Register(RegisterInput{Email: "x@example.com"})
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	input := RegisterInput{Name: "Asha", Email: "asha@example.com", Password: "secret123"}
	require.NoError(t, svc.Register(input))

	err := svc.Register(input)
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

func TestLoginBadCredentials(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	require.NoError(t, svc.Register(RegisterInput{Name: "Asha", Email: "asha@example.com", Password: "secret123"}))

	_, err := svc.Login("asha@example.com", "wrong")
	assert.ErrorIs(t, err, apperr.ErrAuthentication)

	_, err = svc.Login("nobody@example.com", "secret123")
	assert.ErrorIs(t, err, apperr.ErrAuthentication)
}
