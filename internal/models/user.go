package models

import "time"

// User roles. Only RoleAdmin carries extra privileges; the other values are
// plain profile designations.
const (
	RoleUser          = "user"
	RoleAdmin         = "admin"
	RoleDoctor        = "doctor"
	RoleHospitalAdmin = "hospitalAdmin"
)

// User represents the users table
type User struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Name           string    `gorm:"size:100;not null" json:"name"`
	Email          string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash   string    `gorm:"not null;size:255" json:"-"`
	Role           string    `gorm:"size:20;default:'user'" json:"role"`
	Phone          string    `gorm:"size:30" json:"phone,omitempty"`
	Country        string    `gorm:"size:100" json:"country,omitempty"`
	MedicalHistory string    `gorm:"type:text" json:"medical_history,omitempty"`
	Avatar         string    `gorm:"size:512" json:"avatar,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// TableName specifies the table name for User model
func (User) TableName() string {
	return "users"
}

// PublicProfile is the user projection returned by login and profile reads.
// The password hash never leaves the service layer.
type PublicProfile struct {
	ID             uint      `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Role           string    `json:"role"`
	Phone          string    `json:"phone,omitempty"`
	Country        string    `json:"country,omitempty"`
	MedicalHistory string    `json:"medical_history,omitempty"`
	Avatar         string    `json:"avatar,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// Public returns the safe projection of a user
func (u *User) Public() PublicProfile {
	return PublicProfile{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		Role:           u.Role,
		Phone:          u.Phone,
		Country:        u.Country,
		MedicalHistory: u.MedicalHistory,
		Avatar:         u.Avatar,
		CreatedAt:      u.CreatedAt,
	}
}
