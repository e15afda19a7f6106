package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	httpadp "github.com/AashmanShukla3223/Financial-Golf/internal/adapter/http"
	appmw "github.com/AashmanShukla3223/Financial-Golf/internal/adapter/middleware"
	"github.com/AashmanShukla3223/Financial-Golf/internal/adapter/repository/gormstore"
	"github.com/AashmanShukla3223/Financial-Golf/internal/config"
	"github.com/AashmanShukla3223/Financial-Golf/internal/infrastructure/cache"
	"github.com/AashmanShukla3223/Financial-Golf/internal/infrastructure/db"
	"github.com/AashmanShukla3223/Financial-Golf/internal/usecase/interest"
	"github.com/AashmanShukla3223/Financial-Golf/internal/usecase/quiz"
)

const (
	serviceName     = "fingolf"
	shutdownTimeout = 10 * time.Second
)

type app struct {
	echo *echo.Echo
	gdb  *gorm.DB
	rdb  *redis.Client
}

// newApp opens the stores, seeds the quiz bank and assembles the router.
func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	a := &app{}

	gdb, err := db.OpenGorm(cfg.DBDriver, cfg.DSN(), cfg.LogSQL)
	if err != nil {
		return nil, err
	}
	a.gdb = gdb
	if err := gormstore.Migrate(gdb); err != nil {
		a.Close()
		return nil, err
	}

	quizUC := quiz.NewUsecase(gormstore.NewQuizRepository(gdb))
	if _, err := quizUC.Seed(ctx); err != nil {
		a.Close()
		return nil, err
	}

	extra := []echo.MiddlewareFunc{appmw.CORS(cfg.CORSOrigin)}
	if cfg.RateLimitEnabled() {
		if cfg.RedisAddr != "" {
			rdb, err := cache.OpenRedis(ctx, cfg.RedisAddr, cfg.RedisDB)
			if err != nil {
				a.Close()
				return nil, err
			}
			a.rdb = rdb
			window := cfg.RateLimitWindow()
			extra = append(extra, appmw.RateLimit(appmw.NewRedisStore(rdb, cfg.RateLimitBurst, window)))
			log.Printf("ratelimit: redis %s, %d req/%s", cfg.RedisAddr, cfg.RateLimitBurst, window)
		} else {
			extra = append(extra, appmw.RateLimit(appmw.NewMemoryStore(cfg.RateLimitRPS, cfg.RateLimitBurst)))
			log.Printf("ratelimit: in-process, %.2f rps burst %d", cfg.RateLimitRPS, cfg.RateLimitBurst)
		}
	}

	a.echo = httpadp.NewRouter(httpadp.Handlers{
		Health:   httpadp.NewHealthHandler(serviceName),
		Interest: httpadp.NewInterestHandler(interest.NewUsecase()),
		Quiz:     httpadp.NewQuizHandler(quizUC),
	}, extra...)
	return a, nil
}

func (a *app) Close() {
	if a.rdb != nil {
		if err := a.rdb.Close(); err != nil {
			log.Printf("redis: close: %v", err)
		}
	}
	if a.gdb != nil {
		if sqlDB, err := a.gdb.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				log.Printf("gorm: close: %v", err)
			}
		}
	}
}

func serve(ctx context.Context, cfg *config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      a.echo,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("listening on http://%s", cfg.Addr())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serverErr:
		return fmt.Errorf("listen %s: %w", cfg.Addr(), err)
	case <-quit:
		log.Println("shutting down server...")
	case <-ctx.Done():
		log.Println("context canceled, shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Println("server exited")
	return nil
}
