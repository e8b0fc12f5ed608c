package handler

import (
	"context"
	"signup/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name SignupService . SignupService
type SignupService interface {
	Register(ctx context.Context, msg core.SignupMessage) error
}
