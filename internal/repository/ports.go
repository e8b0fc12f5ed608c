package repository

import (
	"context"
	"signup/internal/db"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Connector . Connector
type Connector interface {
	Connect(ctx context.Context) (db.Session, error)
}

//counterfeiter:generate -o fake -fake-name Session . Session
type Session interface {
	Insert(ctx context.Context, record any) error
	MigrateTable(tbl ...any) error
	Close() error
}
