package cmd

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sqlapp/internal/config"
	"sqlapp/internal/core"
	"sqlapp/internal/db"
	"sqlapp/internal/http/handler"
	"sqlapp/internal/http/handler/middleware"
	"sqlapp/internal/http/payload"
	"sqlapp/internal/http/server"
	"sqlapp/internal/repository"
	"sqlapp/pkg/log"
	"sqlapp/pkg/password"
	"sqlapp/pkg/token"
	"syscall"

	"go.uber.org/zap/zapcore"
)

func Start() error {
	config, err := config.NewApp()
	if err != nil {
		log.NewZapLogger("sqlapp", zapcore.InfoLevel).Errorw("failed to create config", "error", err)
		return err
	}

	logger := log.NewZapLogger("sqlapp", log.ParseLevel(config.LogLevel))
	defer func() { _ = logger.Sync() }()

	dbConn, err := db.NewGormDB(config.DBConnectionURL, db.NewGormLogger(logger, db.GormLevel(config.LogLevel)))
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}
	defer dbConn.Close()

	logger.Infow("database connected", "dialect", dbConn.Dialect())

	// repository
	repo := repository.NewRepository(dbConn)

	if err = repo.Migrate(); err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	// users and items
	service := core.NewService(
		logger,
		repo,
		token.Random{},
		password.NewBcryptHasher(config.BcryptCost))

	// handler
	userHlr := handler.NewUserHandler(
		logger,
		payload.Decoder{},
		service)

	// register routes
	mux := http.NewServeMux()
	userHlr.Register(mux)

	// middleware
	hdlr := middleware.NewRateLimitMiddleware(logger, config.RateLimit, config.RateBurst).RateLimit(mux)
	hdlr = middleware.NewLoggingMiddleware(logger).Logging(hdlr)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	srv := server.NewHTTP(logger, hdlr, config.Port, config.ShutdownTimeout)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer signal.Stop(sig)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if sdErr != nil && (err == nil || errors.Is(err, http.ErrServerClosed)) {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return err
}
