package repository

import (
	"medical-tourism-backend/internal/models"

	"gorm.io/gorm"
)

type AuditRepository struct {
	db *gorm.DB
}

func NewAuditRepo(db *gorm.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// CreateAuditLog records an action. Callers treat failures as non-fatal.
func (r *AuditRepository) CreateAuditLog(userID *uint, action, details string) error {
	auditLog := models.AuditLog{
		UserID:  userID,
		Action:  action,
		Details: details,
	}
	return r.db.Create(&auditLog).Error
}
