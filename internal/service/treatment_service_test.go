package service

import (
	"testing"

	"medical-tourism-backend/internal/models"
	"medical-tourism-backend/internal/repository"
	"medical-tourism-backend/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTreatmentService(db *gorm.DB) *TreatmentService {
	return NewTreatmentService(repository.NewTreatmentRepo(db), repository.NewAuditRepo(db))
}

func TestCreateTreatmentValidatesCategory(t *testing.T) {
	db := newTestDB(t)
	svc := newTreatmentService(db)
	admin := seedUser(t, db, "admin@example.com", models.RoleAdmin)

	err := svc.CreateTreatment(&models.Treatment{
		Name:        "Hip Replacement",
		Category:    "Orthopedics",
		Description: "desc",
		IsActive:    true,
	}, admin.ID)
	require.NoError(t, err)

	err = svc.CreateTreatment(&models.Treatment{
		Name:        "Crystal Healing",
		Category:    "Alternative",
		Description: "desc",
	}, admin.ID)
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestDeactivateTreatmentFiltersList(t *testing.T) {
	db := newTestDB(t)
	svc := newTreatmentService(db)
	admin := seedUser(t, db, "admin@example.com", models.RoleAdmin)

	treatment := &models.Treatment{Name: "Hip Replacement", Category: "Orthopedics", Description: "desc", IsActive: true}
	require.NoError(t, db.Create(treatment).Error)

	active, err := svc.GetActiveTreatments()
	require.NoError(t, err)
	require.Len(t, active, 1)

	require.NoError(t, svc.DeactivateTreatment(treatment.ID, admin.ID))

	active, err = svc.GetActiveTreatments()
	require.NoError(t, err)
	assert.Empty(t, active)

	// Deactivated rows stay resolvable by id
	fetched, err := svc.GetTreatmentByID(treatment.ID)
	require.NoError(t, err)
	assert.False(t, fetched.IsActive)
	assert.Equal(t, treatment.Name, fetched.Name)
}

func TestGetTreatmentByIDStable(t *testing.T) {
	db := newTestDB(t)
	svc := newTreatmentService(db)

	treatment := &models.Treatment{Name: "Hip Replacement", Category: "Orthopedics", Description: "desc", IsActive: true}
	require.NoError(t, db.Create(treatment).Error)

	first, err := svc.GetTreatmentByID(treatment.ID)
	require.NoError(t, err)
	second, err := svc.GetTreatmentByID(treatment.ID)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
