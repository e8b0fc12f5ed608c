package core

import (
	"context"
	"signup/internal/repository"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	SaveUser(ctx context.Context, user repository.User) error
}
