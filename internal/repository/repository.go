package repository

import (
	"context"
	"errors"
	"fmt"
)

type UserRepository struct {
	connector Connector
}

func NewUserRepository(connector Connector) *UserRepository {
	return &UserRepository{
		connector: connector,
	}
}

// SaveUser opens a connection, inserts the user and closes the connection again.
func (r *UserRepository) SaveUser(ctx context.Context, user User) (err error) {
	session, err := r.connector.Connect(ctx)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer func() {
		if errClose := session.Close(); errClose != nil {
			err = errors.Join(err, fmt.Errorf("close session: %w", errClose))
		}
	}()

	if err = session.Insert(ctx, &user); err != nil {
		return fmt.Errorf("save user: %w", err)
	}

	return nil
}

// Migrate creates the users table if it does not exist yet.
func (r *UserRepository) Migrate(ctx context.Context) (err error) {
	session, err := r.connector.Connect(ctx)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer func() {
		if errClose := session.Close(); errClose != nil {
			err = errors.Join(err, fmt.Errorf("close session: %w", errClose))
		}
	}()

	if err = session.MigrateTable(&User{}); err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}
