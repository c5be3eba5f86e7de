package models

import "time"

// HospitalTreatment binds a treatment to the hospital offering it, with
// price, duration and outcome metadata. This is the bookable unit.
// Unique on (hospital, treatment).
type HospitalTreatment struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	HospitalID  uint      `gorm:"not null;index;uniqueIndex:idx_hospital_treatment_pair" json:"hospital_id"`
	TreatmentID uint      `gorm:"not null;index;uniqueIndex:idx_hospital_treatment_pair" json:"treatment_id"`
	CostMinUSD  float64   `gorm:"not null" json:"cost_min_usd"`
	CostMaxUSD  float64   `gorm:"not null" json:"cost_max_usd"`
	Duration    string    `gorm:"size:100" json:"duration,omitempty"`
	SuccessRate float64   `json:"success_rate"` // 0-100, validated in the service layer
	Notes       string    `gorm:"type:text" json:"notes,omitempty"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relationships
	Hospital  Hospital  `gorm:"foreignKey:HospitalID" json:"hospital,omitempty"`
	Treatment Treatment `gorm:"foreignKey:TreatmentID" json:"treatment,omitempty"`
}

// TableName specifies the table name for HospitalTreatment model
func (HospitalTreatment) TableName() string {
	return "hospital_treatments"
}
