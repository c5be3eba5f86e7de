package models

import "time"

// Booking status values. Pending is the only non-terminal state:
// admin moves Pending to Approved or Rejected, the owning user moves
// Pending to Cancelled. No other edges exist.
const (
	BookingPending   = "Pending"
	BookingApproved  = "Approved"
	BookingRejected  = "Rejected"
	BookingCancelled = "Cancelled"
)

// Booking represents a user's request for a hospital treatment
type Booking struct {
	ID                  uint       `gorm:"primaryKey" json:"id"`
	UserID              uint       `gorm:"not null;index:idx_booking_dup,priority:1" json:"user_id"`
	HospitalTreatmentID uint       `gorm:"not null;index:idx_booking_dup,priority:2" json:"hospital_treatment_id"`
	PreferredDate       *time.Time `json:"preferred_date,omitempty"`
	MedicalNotes        string     `gorm:"type:text" json:"medical_notes,omitempty"`
	Status              string     `gorm:"size:20;default:'Pending';index:idx_booking_dup,priority:3" json:"status"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`

	// Relationships
	User              User              `gorm:"foreignKey:UserID" json:"user,omitempty"`
	HospitalTreatment HospitalTreatment `gorm:"foreignKey:HospitalTreatmentID" json:"hospital_treatment,omitempty"`
}

// TableName specifies the table name for Booking model
func (Booking) TableName() string {
	return "bookings"
}
