package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/codecpt/portfolio-api/internal/config"
	"github.com/codecpt/portfolio-api/internal/db"
	httpx "github.com/codecpt/portfolio-api/internal/http"
	"github.com/codecpt/portfolio-api/internal/observability"
	"github.com/codecpt/portfolio-api/internal/session"
	"github.com/codecpt/portfolio-api/internal/store"
	"github.com/codecpt/portfolio-api/internal/store/memory"
	"github.com/codecpt/portfolio-api/internal/store/postgres"
)

func main() {
	cfg := config.Load()

	log := observability.NewLogger(cfg.Env)

	shutdownTracer, err := observability.InitTracer(context.Background(), "portfolio-api", cfg.OTelEndpoint)

	if err != nil {
		log.Error("tracer init failed", "err", err)
		os.Exit(1)
	}

	prom := observability.NewProm(prometheus.DefaultRegisterer)

	// storage backend
	var (
		st   store.Store
		ping func() error
	)

	switch cfg.StorageBackend {
	case "postgres":
		pool, err := db.NewPool(cfg.DBURL)

		if err != nil {
			log.Error("postgres connect failed", "err", err)
			os.Exit(1)
		}

		defer pool.Close()

		migrateCtx, cancel := config.WithTimeout(30 * time.Second)
		err = db.Migrate(migrateCtx, pool)
		cancel()

		if err != nil {
			log.Error("migrations failed", "err", err)
			os.Exit(1)
		}

		st = postgres.NewStoreWithMetrics(pool, prom)

		ping = func() error {
			ctx, cancel := config.WithTimeout(1 * time.Second)
			defer cancel()

			return pool.Ping(ctx)
		}

	default:
		mem := memory.NewStore()
		mem.Seed()
		st = mem
	}

	// session backend
	var sessStore session.Store

	switch cfg.SessionBackend {
	case "redis":
		rs := session.NewRedisStore(session.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})

		pingCtx, cancel := config.WithTimeout(2 * time.Second)
		err := rs.Ping(pingCtx)
		cancel()

		if err != nil {
			log.Error("redis connect failed", "err", err)
			os.Exit(1)
		}

		defer rs.Close()

		sessStore = rs

	default:
		sessStore = session.NewMemoryStore()
	}

	sessions := session.NewManager(sessStore, cfg.SessionTTL)

	// bootstrap admin from env, if configured
	seedCtx, cancel := config.WithTimeout(10 * time.Second)
	err = store.EnsureAdminUser(seedCtx, st, cfg.AdminUsername, cfg.AdminPassword)
	cancel()

	if err != nil {
		log.Error("admin seeding failed", "err", err)
		os.Exit(1)
	}

	router := httpx.NewRouter(httpx.Deps{
		Log:      log,
		Store:    st,
		Sessions: sessions,
		Prom:     prom,
		Cfg:      cfg,
		Ping:     ping,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.Port, "env", cfg.Env, "storage", cfg.StorageBackend)

		err := srv.ListenAndServe()

		if err != nil && err != http.ErrServerClosed {
			log.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info("server shutting down")

	shutdownCh := make(chan struct{})

	go func() {
		defer close(shutdownCh)

		ctx, cancel := config.WithTimeout(10 * time.Second)
		defer cancel()

		err := srv.Shutdown(ctx)

		if err != nil {
			log.Error("graceful shutdown failed", "err", err)
			return
		}

		err = shutdownTracer(ctx)

		if err != nil {
			log.Error("tracer shutdown failed", "err", err)
		}
	}()

	select {
	case <-shutdownCh:
		log.Info("shutdown complete")

	case <-time.After(12 * time.Second):
		log.Error("shutdown timed out")
	}
}
