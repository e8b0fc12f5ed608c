package core

import (
	"context"
	"fmt"
	"signup/internal/repository"

	"go.uber.org/zap"
)

// Signup registers new users in the database.
type Signup struct {
	logs *zap.SugaredLogger
	repo Repository
}

// NewSignup is a constructor function for the Signup type.
func NewSignup(logger *zap.SugaredLogger, repo Repository) *Signup {
	return &Signup{
		logs: logger,
		repo: repo,
	}
}

// Register stores the submitted user record as is. The password is not hashed.
func (s *Signup) Register(ctx context.Context, msg SignupMessage) error {
	user := repository.User{
		Username: msg.Username,
		Email:    msg.Email,
		Password: msg.Password,
	}

	if err := s.repo.SaveUser(ctx, user); err != nil {
		return fmt.Errorf("register user: %w", err)
	}

	s.logs.Infow("user registered", "username", msg.Username, "email", msg.Email)
	return nil
}
