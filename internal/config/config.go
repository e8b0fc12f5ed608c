package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"

	"signup/internal/db"

	"github.com/jellydator/validation"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig error = errors.New("invalid config")

const (
	configFileEnvKey    = "CONFIG_FILE"
	portEnvKey          = "PORT"
	staticFileEnvKey    = "STATIC_FILE"
	logLevelEnvKey      = "LOG_LEVEL"
	dbDriverEnvKey      = "DB_DRIVER"
	dbHostEnvKey        = "DB_HOST"
	dbPortEnvKey        = "DB_PORT"
	dbUserEnvKey        = "DB_USER"
	dbPasswordEnvKey    = "DB_PASSWORD"
	dbNameEnvKey        = "DB_NAME"
	dbAutoMigrateEnvKey = "DB_AUTO_MIGRATE"
)

// fixed connection settings, used unless a config file or the environment says otherwise
const (
	defaultPort       = "3000"
	defaultStaticFile = "web/index.html"
	defaultLogLevel   = "info"
	defaultDBDriver   = db.DriverMySQL
	defaultDBHost     = "localhost"
	defaultDBPort     = "3306"
	defaultDBUser     = "admin"
	defaultDBPassword = "admin"
	defaultDBName     = "fyncakes"
)

var portRegex = regexp.MustCompile(`^[0-9]{1,5}$`)

// zap level names accepted by LOG_LEVEL
var logLevels = []interface{}{"debug", "info", "warn", "error", "dpanic", "panic", "fatal"}

type App struct {
	Port       string   `yaml:"port"`
	StaticFile string   `yaml:"static_file"`
	LogLevel   string   `yaml:"log_level"`
	DB         Database `yaml:"db"`
}

type Database struct {
	Driver      string `yaml:"driver"`
	Host        string `yaml:"host"`
	Port        string `yaml:"port"`
	User        string `yaml:"user"`
	Password    string `yaml:"password"`
	Name        string `yaml:"name"`
	AutoMigrate bool   `yaml:"auto_migrate"`
}

// NewApp resolves the application config from defaults, the optional
// CONFIG_FILE and environment variables, in that order of precedence.
func NewApp() (App, error) {
	app := defaultApp()

	if path, ok := os.LookupEnv(configFileEnvKey); ok && path != "" {
		if err := app.loadFile(path); err != nil {
			return App{}, err
		}
	}

	if err := app.loadEnv(); err != nil {
		return App{}, err
	}

	if err := app.Validate(); err != nil {
		return App{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return app, nil
}

func defaultApp() App {
	return App{
		Port:       defaultPort,
		StaticFile: defaultStaticFile,
		LogLevel:   defaultLogLevel,
		DB: Database{
			Driver:   defaultDBDriver,
			Host:     defaultDBHost,
			Port:     defaultDBPort,
			User:     defaultDBUser,
			Password: defaultDBPassword,
			Name:     defaultDBName,
		},
	}
}

func (a *App) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, a); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}

	return nil
}

func (a *App) loadEnv() error {
	lookup := map[string]*string{
		portEnvKey:       &a.Port,
		staticFileEnvKey: &a.StaticFile,
		logLevelEnvKey:   &a.LogLevel,
		dbDriverEnvKey:   &a.DB.Driver,
		dbHostEnvKey:     &a.DB.Host,
		dbPortEnvKey:     &a.DB.Port,
		dbUserEnvKey:     &a.DB.User,
		dbPasswordEnvKey: &a.DB.Password,
		dbNameEnvKey:     &a.DB.Name,
	}
	for key, dest := range lookup {
		if val, ok := os.LookupEnv(key); ok {
			*dest = val
		}
	}

	if val, ok := os.LookupEnv(dbAutoMigrateEnvKey); ok {
		migrate, err := strconv.ParseBool(val)
		if err != nil {
			return fmt.Errorf("parse %s: %w", dbAutoMigrateEnvKey, err)
		}
		a.DB.AutoMigrate = migrate
	}

	return nil
}

func (a App) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Port, validation.Required, validation.Match(portRegex)),
		validation.Field(&a.StaticFile, validation.Required),
		validation.Field(&a.LogLevel, validation.Required, validation.In(logLevels...)),
		validation.Field(&a.DB),
	)
}

func (d Database) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Driver, validation.Required, validation.In(db.DriverPostgres, db.DriverMySQL)),
		validation.Field(&d.Host, validation.Required),
		validation.Field(&d.Port, validation.Required, validation.Match(portRegex)),
		validation.Field(&d.User, validation.Required),
		validation.Field(&d.Name, validation.Required),
	)
}

// DSN returns the connection string understood by the configured driver.
func (d Database) DSN() string {
	if d.Driver == db.DriverMySQL {
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			d.User, d.Password, d.Host, d.Port, d.Name)
	}

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		d.Host, d.Port, d.User, d.Password, d.Name)
}
