// file: models/registration.go
package models

import (
	"time"
)

// RegistrationStatus is the moderation state of a team entry.
type RegistrationStatus string

const (
	StatusPending  RegistrationStatus = "pending"
	StatusVerified RegistrationStatus = "verified"
	StatusRejected RegistrationStatus = "rejected"
)

type Registration struct {
	ID          uint32 `gorm:"primarykey" json:"id"`
	TeamName    string `gorm:"size:100;not null" json:"team_name"`
	LeaderName  string `gorm:"size:100;not null" json:"leader_name"`
	CollegeName string `gorm:"size:200;not null" json:"college_name"`
	CityState   string `gorm:"size:100;not null" json:"city_state"`
	Email       string `gorm:"size:100;not null" json:"email"`
	Phone       string `gorm:"size:30;not null" json:"phone"`
	Department  string `gorm:"size:50;not null" json:"department"`
	RobotSpecs  string `gorm:"type:text;not null" json:"robot_specs"`
	ReceiptURL  string `gorm:"size:2048;not null" json:"receipt_url"`
	// IdempotencyKey is generated by the submitting client so that a retry
	// after a transient failure updates nothing and returns the same record.
	IdempotencyKey *string            `gorm:"size:64;uniqueIndex" json:"-"`
	Status         RegistrationStatus `gorm:"type:enum('pending','verified','rejected');not null;default:'pending'" json:"status"`
	SubmittedAt    time.Time          `gorm:"not null" json:"submitted_at"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

func (Registration) TableName() string {
	return "roborace_registration"
}

type StatusCounts struct {
	Total    int64 `json:"total"`
	Pending  int64 `json:"pending"`
	Verified int64 `json:"verified"`
	Rejected int64 `json:"rejected"`
}
