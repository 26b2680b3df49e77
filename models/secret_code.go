// file: models/secret_code.go
package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// SecretCode is a single-use token gating admin signup. Codes are stored
// normalized (trimmed, upper-case) so lookups are a plain indexed equality
// query; tolerating messy values at read time is not supported.
type SecretCode struct {
	ID        uint32     `gorm:"primarykey" json:"id"`
	Code      string     `gorm:"size:32;unique;not null" json:"code"`
	Used      bool       `gorm:"not null;default:false" json:"used"`
	UsedBy    string     `gorm:"size:100" json:"used_by,omitempty"`
	UsedAt    *time.Time `json:"used_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (SecretCode) TableName() string {
	return "roborace_secret_code"
}

// NormalizeCode is the canonical form for both storage and lookup.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func (s *SecretCode) BeforeSave(tx *gorm.DB) (err error) {
	s.Code = NormalizeCode(s.Code)
	return
}
