// file: dto/registration.go
package dto

import "strings"

// ========== Request DTO ==========

// SubmitRegistrationReq binds the multipart registration form. Fields are
// checked for presence only; format validation stays with the browser's input
// types, matching the public form.
type SubmitRegistrationReq struct {
	TeamName    string `form:"team_name" binding:"required"`
	LeaderName  string `form:"leader_name" binding:"required"`
	CollegeName string `form:"college_name" binding:"required"`
	CityState   string `form:"city_state" binding:"required"`
	Email       string `form:"email" binding:"required"`
	Phone       string `form:"phone" binding:"required"`
	Department  string `form:"department" binding:"required"`
	RobotSpecs  string `form:"robot_specs" binding:"required"`
	// Optional client-generated token; resubmissions carrying the same key
	// return the already-created record instead of a duplicate.
	IdempotencyKey string `form:"idempotency_key"`
	AgreedToRules  bool   `form:"agreed_to_rules" binding:"required"`
}

func (r *SubmitRegistrationReq) Normalize() {
	r.TeamName = strings.TrimSpace(r.TeamName)
	r.LeaderName = strings.TrimSpace(r.LeaderName)
	r.CollegeName = strings.TrimSpace(r.CollegeName)
	r.CityState = strings.TrimSpace(r.CityState)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Department = strings.TrimSpace(r.Department)
	r.RobotSpecs = strings.TrimSpace(r.RobotSpecs)
	r.IdempotencyKey = strings.TrimSpace(r.IdempotencyKey)
}

type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SignupReq struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=6"`
	SecretCode string `json:"secret_code" binding:"required"`
}

type UpdateStatusReq struct {
	Status string `json:"status" binding:"required,oneof=pending verified rejected"`
}
