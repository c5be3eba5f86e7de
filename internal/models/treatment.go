package models

import "time"

// TreatmentCategories is the closed set of valid treatment categories
var TreatmentCategories = []string{
	"Cardiology",
	"Orthopedics",
	"Neurology",
	"Oncology",
	"Cosmetic",
	"IVF",
	"Dental",
	"General",
}

// ValidTreatmentCategory reports whether category is in the closed set
func ValidTreatmentCategory(category string) bool {
	for _, c := range TreatmentCategories {
		if c == category {
			return true
		}
	}
	return false
}

// Treatment represents a medical procedure in the catalog
type Treatment struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:255;uniqueIndex;not null" json:"name"`
	Category    string    `gorm:"size:50;not null" json:"category"`
	Description string    `gorm:"type:text;not null" json:"description"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name for Treatment model
func (Treatment) TableName() string {
	return "treatments"
}
