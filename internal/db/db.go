package db

import (
	"context"
	"errors"
	"fmt"
	"io"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrUnsupportedDriver = errors.New("unsupported database driver")

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// Session is a single open database connection.
type Session interface {
	Insert(ctx context.Context, record any) error
	MigrateTable(tbl ...any) error
	Close() error
}

// Connector opens a new, unpooled connection on every Connect call.
type Connector struct {
	dialector func() gorm.Dialector
}

func NewConnector(driver, dsn string) (*Connector, error) {
	switch driver {
	case DriverPostgres:
		return &Connector{
			dialector: func() gorm.Dialector { return postgres.Open(dsn) },
		}, nil
	case DriverMySQL:
		return &Connector{
			dialector: func() gorm.Dialector { return mysql.Open(dsn) },
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}
}

func (c *Connector) Connect(ctx context.Context) (Session, error) {
	gormDB, err := Open(c.dialector())
	if err != nil {
		return nil, err
	}

	sqlDB, err := gormDB.DB.DB()
	if err != nil {
		if closer, ok := gormDB.DB.ConnPool.(io.Closer); ok {
			closer.Close()
		}
		return nil, fmt.Errorf("get sql db conn: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return gormDB, nil
}

type GormDB struct {
	DB *gorm.DB
}

// Open wraps a gorm handle around the given dialector. The default
// transaction around writes is skipped since every write is a single statement.
func Open(dialector gorm.Dialector) (*GormDB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Warn),
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &GormDB{
		DB: db,
	}, nil
}

func (g *GormDB) Insert(ctx context.Context, record any) error {
	if err := g.DB.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("insert to table: %w", err)
	}

	return nil
}

func (g *GormDB) MigrateTable(tbl ...any) error {
	err := g.DB.AutoMigrate(tbl...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

func (g *GormDB) Close() error {
	sqlDB, err := g.DB.DB()
	if err != nil {
		return fmt.Errorf("get sql db conn: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("close connection: %w", err)
	}

	return nil
}
