package models

import "time"

// Doctor represents a practitioner attached to a hospital.
// Unique on (name, hospital).
type Doctor struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Name           string    `gorm:"size:100;not null;uniqueIndex:idx_doctor_name_hospital" json:"name"`
	Specialization string    `gorm:"size:100;not null" json:"specialization"`
	ExperienceYears int      `gorm:"default:0" json:"experience_years"`
	HospitalID     uint      `gorm:"not null;index;uniqueIndex:idx_doctor_name_hospital" json:"hospital_id"`
	ProfileImage   string    `gorm:"size:512" json:"profile_image,omitempty"`
	IsActive       bool      `gorm:"default:true" json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Relationships
	Hospital   Hospital    `gorm:"foreignKey:HospitalID" json:"hospital,omitempty"`
	Treatments []Treatment `gorm:"many2many:doctor_treatments" json:"treatments,omitempty"`
}

// TableName specifies the table name for Doctor model
func (Doctor) TableName() string {
	return "doctors"
}
