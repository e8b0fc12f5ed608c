package payload

import (
	"signup/internal/core"
)

type SignupRequest struct {
	Username string
	Email    string
	Password string
}

func (s SignupRequest) ToCoreSignupMessage() core.SignupMessage {
	return core.SignupMessage{
		Username: s.Username,
		Email:    s.Email,
		Password: s.Password,
	}
}
