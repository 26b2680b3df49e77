// file: dto/registration_test.go
package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubmitRegistrationReqNormalize(t *testing.T) {
	req := SubmitRegistrationReq{
		TeamName:       "  CyberSpeed ",
		LeaderName:     " Asha Patil",
		CollegeName:    "G.H. Raisoni University ",
		CityState:      " Amravati, MH ",
		Email:          " a@b.com ",
		Phone:          " +91 99999 ",
		Department:     " B.Tech CSE ",
		RobotSpecs:     " 12V DC motors ",
		IdempotencyKey: " abc-123 ",
	}
	req.Normalize()

	assert.Equal(t, "CyberSpeed", req.TeamName)
	assert.Equal(t, "Asha Patil", req.LeaderName)
	assert.Equal(t, "G.H. Raisoni University", req.CollegeName)
	assert.Equal(t, "Amravati, MH", req.CityState)
	assert.Equal(t, "a@b.com", req.Email)
	assert.Equal(t, "+91 99999", req.Phone)
	assert.Equal(t, "B.Tech CSE", req.Department)
	assert.Equal(t, "12V DC motors", req.RobotSpecs)
	assert.Equal(t, "abc-123", req.IdempotencyKey)
}
