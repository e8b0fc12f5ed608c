package config_test

import (
	"os"
	"path/filepath"
	"signup/internal/config"
	"signup/internal/db"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var envKeys = []string{
	"CONFIG_FILE",
	"PORT",
	"STATIC_FILE",
	"LOG_LEVEL",
	"DB_DRIVER",
	"DB_HOST",
	"DB_PORT",
	"DB_USER",
	"DB_PASSWORD",
	"DB_NAME",
	"DB_AUTO_MIGRATE",
}

func setEnv(key, value string) {
	Expect(os.Setenv(key, value)).To(Succeed())
}

var _ = Describe("Config", func() {
	var (
		app config.App
		err error
	)

	BeforeEach(func() {
		saved := map[string]string{}
		for _, key := range envKeys {
			if val, ok := os.LookupEnv(key); ok {
				saved[key] = val
			}
			Expect(os.Unsetenv(key)).To(Succeed())
		}

		DeferCleanup(func() {
			for _, key := range envKeys {
				os.Unsetenv(key)
				if val, ok := saved[key]; ok {
					os.Setenv(key, val)
				}
			}
		})
	})

	JustBeforeEach(func() {
		app, err = config.NewApp()
	})

	When("no configuration is provided", func() {
		It("should fall back to the built-in defaults", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(app.Port).To(Equal("3000"))
			Expect(app.StaticFile).To(Equal("web/index.html"))
			Expect(app.LogLevel).To(Equal("info"))
			Expect(app.DB.Driver).To(Equal(db.DriverMySQL))
			Expect(app.DB.Host).To(Equal("localhost"))
			Expect(app.DB.Port).To(Equal("3306"))
			Expect(app.DB.User).To(Equal("admin"))
			Expect(app.DB.Password).To(Equal("admin"))
			Expect(app.DB.Name).To(Equal("fyncakes"))
			Expect(app.DB.AutoMigrate).To(BeFalse())
		})
	})

	When("environment variables are set", func() {
		BeforeEach(func() {
			setEnv("PORT", "8080")
			setEnv("DB_DRIVER", "postgres")
			setEnv("DB_HOST", "db.internal")
			setEnv("DB_PORT", "5432")
			setEnv("DB_PASSWORD", "")
			setEnv("DB_AUTO_MIGRATE", "true")
		})

		It("should override the defaults", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(app.Port).To(Equal("8080"))
			Expect(app.DB.Driver).To(Equal(db.DriverPostgres))
			Expect(app.DB.Host).To(Equal("db.internal"))
			Expect(app.DB.Port).To(Equal("5432"))
			Expect(app.DB.Password).To(BeEmpty())
			Expect(app.DB.AutoMigrate).To(BeTrue())
		})
	})

	When("a config file is provided", func() {
		BeforeEach(func() {
			path := filepath.Join(GinkgoT().TempDir(), "signup.yaml")
			content := []byte("port: \"4000\"\nstatic_file: /srv/form.html\ndb:\n  host: pg.local\n  name: accounts\n")
			Expect(os.WriteFile(path, content, 0o600)).To(Succeed())
			setEnv("CONFIG_FILE", path)
		})

		It("should read values from the file", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(app.Port).To(Equal("4000"))
			Expect(app.StaticFile).To(Equal("/srv/form.html"))
			Expect(app.DB.Host).To(Equal("pg.local"))
			Expect(app.DB.Name).To(Equal("accounts"))
			Expect(app.DB.User).To(Equal("admin"))
		})

		When("an environment variable is also set", func() {
			BeforeEach(func() {
				setEnv("PORT", "5000")
			})

			It("should prefer the environment", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(app.Port).To(Equal("5000"))
			})
		})
	})

	When("the config file does not exist", func() {
		BeforeEach(func() {
			setEnv("CONFIG_FILE", filepath.Join(GinkgoT().TempDir(), "missing.yaml"))
		})

		It("should return an error", func() {
			Expect(err).To(MatchError(ContainSubstring("read config file")))
		})
	})

	When("the driver is unsupported", func() {
		BeforeEach(func() {
			setEnv("DB_DRIVER", "sqlite")
		})

		It("should fail validation", func() {
			Expect(err).To(MatchError(config.ErrInvalidConfig))
		})
	})

	When("the port is not numeric", func() {
		BeforeEach(func() {
			setEnv("PORT", "http")
		})

		It("should fail validation", func() {
			Expect(err).To(MatchError(config.ErrInvalidConfig))
		})
	})

	When("the log level is unknown", func() {
		BeforeEach(func() {
			setEnv("LOG_LEVEL", "loud")
		})

		It("should fail validation", func() {
			Expect(err).To(MatchError(config.ErrInvalidConfig))
			Expect(err).To(MatchError(ContainSubstring("LogLevel")))
		})
	})

	When("DB_AUTO_MIGRATE is not a boolean", func() {
		BeforeEach(func() {
			setEnv("DB_AUTO_MIGRATE", "sometimes")
		})

		It("should return a parse error", func() {
			Expect(err).To(MatchError(ContainSubstring("parse DB_AUTO_MIGRATE")))
		})
	})
})

var _ = Describe("Database", func() {
	Describe("DSN", func() {
		var database config.Database

		BeforeEach(func() {
			database = config.Database{
				Host:     "localhost",
				Port:     "5432",
				User:     "signup",
				Password: "secret",
				Name:     "accounts",
			}
		})

		It("should build a postgres keyword/value DSN", func() {
			database.Driver = db.DriverPostgres
			Expect(database.DSN()).To(Equal("host=localhost port=5432 user=signup password=secret dbname=accounts sslmode=disable"))
		})

		It("should build a mysql DSN", func() {
			database.Driver = db.DriverMySQL
			database.Port = "3306"
			Expect(database.DSN()).To(Equal("signup:secret@tcp(localhost:3306)/accounts?charset=utf8mb4&parseTime=True&loc=Local"))
		})
	})
})
