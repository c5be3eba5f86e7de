package models

import "time"

// Hospital represents a medical facility in the catalog.
// Unique on (name, city); contact email is informational only.
type Hospital struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"size:255;not null;uniqueIndex:idx_hospital_name_city" json:"name"`
	City          string    `gorm:"size:100;not null;uniqueIndex:idx_hospital_name_city" json:"city"`
	Country       string    `gorm:"size:100" json:"country,omitempty"`
	ContactPhone  string    `gorm:"size:30" json:"contact_phone,omitempty"`
	ContactEmail  string    `gorm:"size:255" json:"contact_email,omitempty"`
	Accreditation string    `gorm:"size:255" json:"accreditation,omitempty"`
	Description   string    `gorm:"type:text" json:"description,omitempty"`
	IsActive      bool      `gorm:"default:true" json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName specifies the table name for Hospital model
func (Hospital) TableName() string {
	return "hospitals"
}
