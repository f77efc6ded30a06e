package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/techfolio/api/internal/assets"
	"github.com/techfolio/api/internal/cache"
	"github.com/techfolio/api/internal/config"
	"github.com/techfolio/api/internal/handler"
	"github.com/techfolio/api/internal/kafka"
	"github.com/techfolio/api/internal/observability"
	"github.com/techfolio/api/internal/outbox"
	"github.com/techfolio/api/internal/repository"
	"github.com/techfolio/api/internal/service"
)

func main() {
	cfg := config.Load()

	// Observability
	observability.InitLogger(cfg.ServiceName)
	log := observability.Log

	if cfg.TracingEnabled {
		tp, err := observability.InitTracer(cfg.ServiceName, cfg.JaegerURL)
		if err != nil {
			log.Fatal("failed to initialize tracer", zap.Error(err))
		}
		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				log.Error("failed to shutdown tracer provider", zap.Error(err))
			}
		}()
	}

	// HTTP server for observability (metrics & liveness)
	obsMux := chi.NewRouter()
	obsMux.Handle("/metrics", promhttp.Handler())
	obsMux.Get("/health/live", handler.Health())

	go func() {
		log.Info("HTTP observability server started", zap.String("addr", cfg.HTTPAddr))
		if err := http.ListenAndServe(cfg.HTTPAddr, obsMux); err != nil {
			log.Error("HTTP observability server failed", zap.Error(err))
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Database
	db, err := repository.NewDB(ctx, cfg.DATABASE_URL)
	if err != nil {
		log.Fatal("db open failed", zap.Error(err))
	}

	// Redis
	rdb := cache.New(cfg.RedisAddr)

	// Asset resolution — fail fast on a bad base URL so Resolve never can.
	resolver, err := assets.NewResolver(cfg.PublicBaseURL)
	if err != nil {
		log.Fatal("bad public base URL", zap.Error(err))
	}

	// Repositories
	profileRepo := &repository.ProfileRepo{DB: db}
	contactRepo := &repository.ContactRepo{DB: db}
	outboxRepo := outbox.NewRepository(db)

	// Services
	profileSvc := &service.ProfileService{
		Repo:   profileRepo,
		Cache:  &cache.ProfileCache{R: rdb},
		Assets: resolver,
	}
	contactSvc := &service.ContactService{
		Repo:   contactRepo,
		Outbox: outboxRepo,
	}

	// Kafka producer + outbox publisher for contact.submitted events
	producer := kafka.NewProducer(cfg.KafkaBrokers)
	defer producer.Close()

	publisher := outbox.NewPublisher(outboxRepo, producer)
	go publisher.Start(ctx)

	// HTTP server
	mux := handler.NewRouter(cfg, profileSvc, contactSvc, db)
	srv := &http.Server{Addr: ":" + cfg.HTTPPort, Handler: mux}

	go func() {
		log.Info("techfolio HTTP started", zap.String("port", cfg.HTTPPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info("received signal, initiating shutdown")
	cancel() // stop outbox publisher

	ctxShut, shutCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutCancel()

	_ = srv.Shutdown(ctxShut)
	log.Info("techfolio stopped")
}
