package service

import (
	"fmt"
	"sync/atomic"
	"testing"

	"medical-tourism-backend/internal/database"
	"medical-tourism-backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var testDBCounter int64

// newTestDB opens a fresh in-memory database with the full schema
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	n := atomic.AddInt64(&testDBCounter, 1)
	dsn := fmt.Sprintf("file:servicetest%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email, role string) *models.User {
	t.Helper()
	user := &models.User{
		Name:         "Test User",
		Email:        email,
		PasswordHash: "x",
		Role:         role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// seedOffering creates a hospital, a treatment and the join row binding them
func seedOffering(t *testing.T, db *gorm.DB, hospitalName, treatmentName string) *models.HospitalTreatment {
	t.Helper()
	hospital := &models.Hospital{Name: hospitalName, City: "Chennai", Country: "India", IsActive: true}
	require.NoError(t, db.Create(hospital).Error)

	treatment := &models.Treatment{Name: treatmentName, Category: "Cardiology", Description: "desc", IsActive: true}
	require.NoError(t, db.Create(treatment).Error)

	ht := &models.HospitalTreatment{
		HospitalID:  hospital.ID,
		TreatmentID: treatment.ID,
		CostMinUSD:  100,
		CostMaxUSD:  500,
		Duration:    "5 days",
		SuccessRate: 95,
		IsActive:    true,
	}
	require.NoError(t, db.Create(ht).Error)
	return ht
}
