package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"signup/internal/config"
	"signup/internal/core"
	"signup/internal/db"
	"signup/internal/http/handler"
	"signup/internal/http/handler/middleware"
	"signup/internal/http/server"
	"signup/internal/repository"
	"signup/pkg/log"
	"syscall"
)

func Start() error {
	config, err := config.NewApp()
	if err != nil {
		return fmt.Errorf("create config: %w", err)
	}

	logger := log.NewZapLogger("signup", log.ParseLevel(config.LogLevel))
	defer logger.Sync()

	connector, err := db.NewConnector(config.DB.Driver, config.DB.DSN())
	if err != nil {
		logger.Errorw("failed to create database connector", "error", err)
		return err
	}

	// repository
	repo := repository.NewUserRepository(connector)

	if config.DB.AutoMigrate {
		if err := repo.Migrate(context.Background()); err != nil {
			logger.Errorw("failed to migrate tables to database", "error", err)
			return err
		}
		logger.Infow("users table migrated", "driver", config.DB.Driver)
	}

	// signup
	signup := core.NewSignup(logger, repo)

	// handler
	signupHlr := handler.NewSignupHandler(
		logger,
		config.StaticFile,
		signup)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	mux.HandleFunc(handler.Index, signupHlr.HandleIndex)
	mux.HandleFunc(handler.Signup, signupHlr.HandleSignup)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == nil || errors.Is(err, http.ErrServerClosed) {
		if sdErr != nil {
			return fmt.Errorf("server shutdown: %w", sdErr)
		}
		return nil
	}

	return err
}
