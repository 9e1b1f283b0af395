package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc/health"

	"github.com/DioGolang/GoRider/configs"
	"github.com/DioGolang/GoRider/internal/application/port/outbound"
	"github.com/DioGolang/GoRider/internal/application/usecase"
	"github.com/DioGolang/GoRider/internal/application/usecase/location"
	"github.com/DioGolang/GoRider/internal/application/usecase/rider"
	"github.com/DioGolang/GoRider/internal/domain/entity"
	"github.com/DioGolang/GoRider/internal/infra/database"
	"github.com/DioGolang/GoRider/internal/infra/database/migrations"
	"github.com/DioGolang/GoRider/internal/infra/event"
	"github.com/DioGolang/GoRider/internal/infra/grpc/server"
	"github.com/DioGolang/GoRider/internal/infra/storage"
	"github.com/DioGolang/GoRider/internal/infra/web"
	"github.com/DioGolang/GoRider/internal/infra/web/handler"
	"github.com/DioGolang/GoRider/internal/infra/web/middleware"
	"github.com/DioGolang/GoRider/pkg/logger"
	"github.com/DioGolang/GoRider/pkg/metrics"
	gootel "github.com/DioGolang/GoRider/pkg/otel"
)

const version = "1.0.0"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := configs.LoadConfig(".")
	if err != nil {
		return err
	}
	validator, err := entity.NewRiderValidator(cfg.PhoneRegion)
	if err != nil {
		return err
	}

	log := logger.NewLogger(cfg.ServiceName, cfg.IsProd())
	defer logger.Sync(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.OtelCollectorAddr != "" {
		shutdown, err := gootel.InitProvider(ctx, cfg.ServiceName, cfg.Environment, cfg.OtelCollectorAddr)
		if err != nil {
			return err
		}
		defer shutdown()
	} else {
		gootel.SetPropagator()
	}

	reg := prometheus.NewRegistry()
	m := metrics.NewPrometheusMetrics(reg, cfg.ServiceName)

	db, err := database.Open(ctx, cfg.DBDriver, cfg.DSN(), database.DefaultPoolOptions)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := migrations.Run(ctx, db, log); err != nil {
		return err
	}

	var (
		locker    outbound.RiderLocker
		rdb       *redis.Client
		publisher outbound.LocationEventPublisher = event.NopPublisher{}
	)

	if addr := cfg.RedisAddr(); addr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: addr})
		defer rdb.Close()
		opts := storage.DefaultRedisLockerOptions
		opts.TTL = cfg.LockTTL
		locker = storage.NewRedisLocker(rdb, opts, m, log)
	} else {
		log.Warn(ctx, "REDIS_HOST not set, rider locks are per process")
		locker = storage.NewLocalLocker(m)
	}

	if cfg.AMQPURL != "" {
		amqpPublisher := event.NewAMQPPublisher(event.Dialer(cfg.AMQPURL, cfg.LocationExchange), cfg.LocationExchange, log, m)
		if err := amqpPublisher.Open(ctx); err != nil {
			return err
		}
		defer amqpPublisher.Close()

		publish := event.WrapCircuitBreaker(
			2*time.Second,
			event.NewBreaker("location-events", 30*time.Second),
			event.WrapExponentialBackoff(log, "location-events", 2, 50*time.Millisecond, amqpPublisher.Publish),
		)
		publisher = event.NewLocationPublisher(publish, m)
	} else {
		log.Warn(ctx, "AMQP_URL not set, location events are discarded")
	}

	router := newRouter(ctx, cfg, validator, db, rdb, locker, publisher, m, reg, log)

	httpServer := &http.Server{
		Addr:              ":" + cfg.WebServerPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	hs := health.NewServer()
	grpcServer := server.New(m, hs)
	checks := []server.Check{{Name: "postgres", Fn: db.PingContext}}
	if rdb != nil {
		checks = append(checks, server.Check{Name: "redis", Fn: func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		}})
	}
	watcher := server.NewHealthWatcher(hs, 10*time.Second, 3*time.Second, log, checks...)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info(gctx, "HTTP server listening", logger.String("port", cfg.WebServerPort))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		lis, err := net.Listen("tcp", ":"+cfg.GRPCPort)
		if err != nil {
			return fmt.Errorf("grpc listen: %w", err)
		}
		log.Info(gctx, "gRPC server listening", logger.String("port", cfg.GRPCPort))
		return grpcServer.Serve(lis)
	})

	g.Go(func() error {
		watcher.Run(gctx)
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info(context.Background(), "Shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		err := httpServer.Shutdown(shutdownCtx)
		grpcServer.GracefulStop()
		return err
	})

	return g.Wait()
}

func newRouter(
	ctx context.Context,
	cfg *configs.Conf,
	validator entity.RiderValidator,
	db *sqlx.DB,
	rdb *redis.Client,
	locker outbound.RiderLocker,
	publisher outbound.LocationEventPublisher,
	m *metrics.Prometheus,
	reg *prometheus.Registry,
	log logger.Logger,
) http.Handler {
	translator := usecase.NewErrorTranslator(log)
	riders := database.NewRiderRepository(db)
	locations := database.NewLocationRepository(db)

	healthOpts := []handler.HealthOption{handler.WithPostgres(db.DB), handler.WithRabbitMQ(cfg.AMQPURL)}
	if rdb != nil {
		healthOpts = append(healthOpts, handler.WithRedis(rdb))
	}
	healthHandler, err := handler.NewHealthHandler(cfg.ServiceName, version, healthOpts...)
	if err != nil {
		log.Warn(ctx, "Health endpoint disabled", logger.WithError(err))
	}

	rt := &web.Router{
		Config: web.RouterConfig{
			ServiceName:    cfg.ServiceName,
			RequestTimeout: cfg.RequestTimeout,
		},
		Riders: &handler.Rider{
			Create: rider.NewCreateUseCase(riders, validator, translator),
			List:   rider.NewListUseCase(riders, translator),
			Get:    rider.NewGetUseCase(riders, translator),
			Update: rider.NewUpdateUseCase(riders, validator, translator),
			Delete: rider.NewDeleteUseCase(riders, translator),
			Logger: log,
		},
		Locations: &handler.Location{
			Upsert: &location.UpsertLocationMetricsDecorator{
				Next:    location.NewUpsertUseCase(riders, locations, locker, publisher, translator, m, log),
				Metrics: m,
			},
			Search: &location.SearchLocationMetricsDecorator{
				Next:    location.NewSearchUseCase(locations, translator, m),
				Metrics: m,
			},
			Get:      location.NewGetUseCase(locations, translator),
			RadiusKm: cfg.SearchRadiusKm,
			Logger:   log,
		},
		Health:  healthHandler,
		Metrics: promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
		Limiter: middleware.NewRateLimiter(ctx, middleware.RateLimiterConfig{
			RequestsPerSecond: cfg.RateLimitRPS,
			Burst:             cfg.RateLimitBurst,
			CleanupInterval:   time.Minute,
			ClientTimeout:     3 * time.Minute,
		}),
		Recorder: m,
		Logger:   log,
	}
	return rt.Handler()
}
