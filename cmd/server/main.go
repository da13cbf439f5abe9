package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/dharmasatrya/volobus/internal/config"
	"github.com/dharmasatrya/volobus/internal/handler"
	"github.com/dharmasatrya/volobus/internal/mockdata"
	"github.com/dharmasatrya/volobus/internal/ratelimit"
	"github.com/dharmasatrya/volobus/internal/session"
	"github.com/dharmasatrya/volobus/internal/wizard"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestID())

	limitCfg := ratelimit.DefaultConfig()
	limitCfg.RequestsPerSecond = cfg.RateLimit.RequestsPerSecond
	limitCfg.BurstSize = cfg.RateLimit.Burst
	e.Use(ratelimit.Middleware(ratelimit.NewClientLimiter(limitCfg)))

	store, err := newStore(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer store.Close()

	var rnd mockdata.Rand
	if cfg.MockSeed != 0 {
		rnd = mockdata.NewSeededRand(cfg.MockSeed)
		log.Printf("Mock data seeded with %d", cfg.MockSeed)
	}
	machine := wizard.NewMachine(mockdata.NewGenerator(rnd))

	handler.Register(e, handler.NewBookingHandler(store, machine))

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	go func() {
		log.Printf("Starting VoloBus server on %s", cfg.Server.ServerAddr())
		if err := e.Start(cfg.Server.ServerAddr()); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
	log.Println("Server stopped")
}

func newStore(cfg *config.Config) (session.Store, error) {
	if cfg.Session.Backend != config.SessionBackendRedis {
		log.Printf("In-memory session store (TTL: %v)", cfg.Session.TTL)
		return session.NewMemoryStore(cfg.Session.TTL), nil
	}

	store, err := session.NewRedisStore(session.RedisConfig{
		Host:     cfg.Redis.Host,
		Port:     strconv.Itoa(cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		TTL:      cfg.Session.TTL,
	})
	if err != nil {
		return nil, err
	}
	log.Printf("Redis session store enabled (host: %s:%d, TTL: %v)", cfg.Redis.Host, cfg.Redis.Port, cfg.Session.TTL)
	return store, nil
}
