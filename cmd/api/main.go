package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	firebase "firebase.google.com/go/v4"
	"github.com/gin-gonic/gin"

	"github.com/AwwwRyan/coverletter-gen/config"
	"github.com/AwwwRyan/coverletter-gen/internal/auth"
	authmw "github.com/AwwwRyan/coverletter-gen/internal/auth/middleware"
	"github.com/AwwwRyan/coverletter-gen/internal/bootstrap"
	"github.com/AwwwRyan/coverletter-gen/internal/logging"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.New(os.Stdout, cfg.App.LogLevel, cfg.App.ServiceName)
	slog.SetDefault(logger)
	bootstrap.SetGinMode(cfg.App.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var app *firebase.App
	if cfg.Auth.Mode == config.AuthModeFirebase || cfg.Store.Backend == config.StoreFirestore {
		app, err = auth.InitializeFirebase(ctx, &cfg.Firebase)
		if err != nil {
			fatal(logger, "firebase init failed", err)
		}
	}

	var identity gin.HandlerFunc
	switch cfg.Auth.Mode {
	case config.AuthModeDev:
		logger.Warn("AUTH_MODE=dev: identity is taken from X-User-Id without verification")
		identity = auth.DevIdentity()
	default:
		authClient, err := auth.NewAuthClient(ctx, app)
		if err != nil {
			fatal(logger, "firebase auth client failed", err)
		}
		identity = authmw.FirebaseAuthMiddleware(authClient)
	}

	store, closeStore, err := bootstrap.BuildProfileStore(ctx, cfg, app)
	if err != nil {
		fatal(logger, "profile store init failed", err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Error("profile store close failed", "error", err)
		}
	}()

	generator, err := bootstrap.BuildGenerator(ctx, &cfg.Gemini)
	if err != nil {
		fatal(logger, "generator init failed", err)
	}

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: cfg.App.ServiceName,
		Version:     cfg.App.Version,
		CORSOrigins: cfg.Server.CORSOrigins,
		Store:       store,
		Generator:   generator,
		Identity:    identity,
		RatePerMin:  cfg.RateLimit.GeneratePerMinute,
		RateBurst:   cfg.RateLimit.GenerateBurst,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("listening",
			"addr", srv.Addr,
			"env", cfg.App.Environment,
			"store", cfg.Store.Backend,
			"auth", cfg.Auth.Mode,
			"gemini_transport", cfg.Gemini.Transport,
			"gemini_model", cfg.Gemini.Model,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			fatal(logger, "server error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown requested", "timeout", shutdownTimeout.String())

	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}

func fatal(logger *slog.Logger, msg string, err error) {
	logger.Error(msg, "error", err)
	os.Exit(1)
}
