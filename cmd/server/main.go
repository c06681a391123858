// Command server runs the poster API: account signup/login with bearer
// tokens, and CRUD for movie posters.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	authhandler "posterati/internal/auth/handler"
	"posterati/internal/auth/hasher"
	authservice "posterati/internal/auth/service"
	authstore "posterati/internal/auth/store"
	"posterati/internal/auth/token"
	"posterati/internal/platform/config"
	"posterati/internal/platform/httpserver"
	"posterati/internal/platform/logger"
	"posterati/internal/platform/metrics"
	posterhandler "posterati/internal/poster/handler"
	posterservice "posterati/internal/poster/service"
	posterstore "posterati/internal/poster/store"
	"posterati/internal/storage"
	httptransport "posterati/internal/transport/http"
	"posterati/internal/transport/http/shared"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "server: %v\n", err)
		os.Exit(1)
	}
}

// run wires dependencies and owns the server lifecycle. Business logic
// lives in the internal service packages.
func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	log := logger.New(cfg.Env)
	for _, warning := range cfg.Warnings() {
		log.Warn(warning)
	}
	m := metrics.New()

	var (
		userStore   authservice.UserStore
		posterStore posterservice.PosterStore
	)
	if cfg.DatabaseDSN != "" {
		db, err := storage.Open(ctx, cfg.DatabaseDSN)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := storage.EnsureSchema(ctx, db); err != nil {
			return err
		}
		userStore = authstore.NewPostgres(db, cfg.DBTimeout)
		posterStore = posterstore.NewPostgres(db, cfg.DBTimeout)
		log.Info("using postgres stores")
	} else {
		userStore = authstore.NewInMemory()
		posterStore = posterstore.NewInMemory()
		log.Warn("DATABASE_DSN not set, using in-memory stores")
	}

	tokens := token.NewService(cfg.JWTSecret, cfg.JWTExpiry)
	users := authservice.NewService(userStore, hasher.New(cfg.BcryptCost), tokens, m, log)
	posters := posterservice.NewService(posterStore, m, log)

	responder := shared.NewResponder(log, cfg.IsProduction())
	router := httptransport.NewRouter(httptransport.RouterConfig{
		Auth:               authhandler.New(users, log, responder),
		Posters:            posterhandler.New(posters, log, responder),
		TokenVerifier:      tokens,
		Metrics:            m,
		Logger:             log,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	srv := httpserver.New(cfg.Addr, router)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server listening", "addr", cfg.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		log.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
