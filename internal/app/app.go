package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/alexedwards/scs/goredisstore"
	"github.com/alexedwards/scs/v2"
	"github.com/exaring/otelpgx"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/metinatakli/cinema-booking/api"
	"github.com/metinatakli/cinema-booking/internal/booking"
	"github.com/metinatakli/cinema-booking/internal/domain"
	"github.com/metinatakli/cinema-booking/internal/events"
	"github.com/metinatakli/cinema-booking/internal/repository"
	appvalidator "github.com/metinatakli/cinema-booking/internal/validator"
	"github.com/metinatakli/cinema-booking/internal/vcs"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"github.com/riandyrn/otelchi"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/contrib/bridges/otelslog"
)

const serviceName = "cinema-booking-api"

var (
	version = vcs.Version()
)

type Application struct {
	config         Config
	logger         *slog.Logger
	db             *pgxpool.Pool
	redis          redis.UniversalClient
	validator      *validator.Validate
	sessionManager *scs.SessionManager
	bookings       *booking.Service
	metrics        *httpMetrics
	registry       *prometheus.Registry
}

type Config struct {
	Port             int
	Env              string
	OtelCollectorUrl string
	DB               DBConfig
	Redis            RedisConfig
	Session          SessionConfig
	AMQP             AMQPConfig
	Pricing          PricingConfig
	LayoutCacheTTL   time.Duration
}

type DBConfig struct {
	DSN          string
	MaxOpenConns int
	MaxIdleTime  time.Duration
}

type RedisConfig struct {
	URL          string
	MaxOpenConns int
	MaxIdleConns int
	MaxIdleTime  time.Duration
}

type SessionConfig struct {
	IdleTimeout time.Duration
	Lifetime    time.Duration
}

type AMQPConfig struct {
	URL      string
	Exchange string
}

type PricingConfig struct {
	DefaultFactor         string
	RequireExplicitFactor bool
}

// PricingPolicy converts the configured default factor into the domain policy.
func (c PricingConfig) PricingPolicy() (domain.PricingPolicy, error) {
	policy := domain.DefaultPricingPolicy()
	policy.RequireExplicitFactor = c.RequireExplicitFactor

	if c.DefaultFactor == "" {
		return policy, nil
	}

	factor, err := decimal.NewFromString(c.DefaultFactor)
	if err != nil {
		return policy, fmt.Errorf("invalid default price factor %q: %w", c.DefaultFactor, err)
	}

	if !factor.IsPositive() {
		return policy, fmt.Errorf("default price factor must be positive, got %s", factor)
	}

	policy.DefaultFactor = factor

	return policy, nil
}

func NewApp(
	cfg Config,
	logger *slog.Logger,
	db *pgxpool.Pool,
	redisClient redis.UniversalClient,
	validator *validator.Validate,
	sessionManager *scs.SessionManager,
	bookings *booking.Service,
) *Application {

	registry := prometheus.NewRegistry()

	return &Application{
		config:         cfg,
		logger:         logger,
		db:             db,
		redis:          redisClient,
		validator:      validator,
		sessionManager: sessionManager,
		bookings:       bookings,
		metrics:        newHTTPMetrics(registry),
		registry:       registry,
	}
}

func Run() error {
	// a missing .env file is fine, flags and the environment still apply
	_ = godotenv.Load()

	var cfg Config

	flag.IntVar(&cfg.Port, "port", envInt("PORT", 3000), "server port")
	flag.StringVar(&cfg.Env, "env", envString("ENV", "dev"), "Environment (dev|staging|prod)")
	flag.StringVar(&cfg.OtelCollectorUrl, "otel-collector-url", os.Getenv("OTEL_COLLECTOR_URL"), "OpenTelemetry collector gRPC endpoint")

	flag.StringVar(&cfg.DB.DSN, "db-dsn", os.Getenv("DB_DSN"), "PostgreSQL DSN")
	flag.IntVar(&cfg.DB.MaxOpenConns, "db-max-open-conns", 25, "PostgreSQL max open connections")
	flag.DurationVar(&cfg.DB.MaxIdleTime, "db-max-idle-time", 15*time.Minute, "PostgreSQL max idle time for connections")

	flag.StringVar(&cfg.Redis.URL, "redis-url", os.Getenv("REDIS_URL"), "Redis URL")
	flag.IntVar(&cfg.Redis.MaxOpenConns, "redis-max-open-conns", 25, "Redis max open connections")
	flag.IntVar(&cfg.Redis.MaxIdleConns, "redis-max-idle-conns", 10, "Redis max idle connections")
	flag.DurationVar(&cfg.Redis.MaxIdleTime, "redis-max-idle-time", 2*time.Minute, "Redis max idle time for connections")

	flag.DurationVar(&cfg.Session.IdleTimeout, "session-idle-timeout", 20*time.Minute, "Session idle timeout")
	flag.DurationVar(&cfg.Session.Lifetime, "session-lifetime", 24*time.Hour, "Session absolute lifetime")

	flag.StringVar(&cfg.AMQP.URL, "amqp-url", os.Getenv("AMQP_URL"), "RabbitMQ URL, booking events are not published when empty")
	flag.StringVar(&cfg.AMQP.Exchange, "amqp-exchange", events.DefaultExchange, "RabbitMQ exchange for booking events")

	flag.StringVar(&cfg.Pricing.DefaultFactor, "default-price-factor", "1", "Price factor for seat types without an explicit factor")
	flag.BoolVar(&cfg.Pricing.RequireExplicitFactor, "require-price-factor", false, "Reject bookings of seat types without an explicit price factor")

	flag.DurationVar(&cfg.LayoutCacheTTL, "layout-cache-ttl", repository.DefaultLayoutCacheTTL, "Hall layout cache TTL, 0 disables the cache")

	displayVersion := flag.Bool("version", false, "Display version and exit")

	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	if cfg.OtelCollectorUrl != "" {
		logger = slog.New(NewMultiHandler(
			slog.NewTextHandler(os.Stdout, nil),
			otelslog.NewHandler(serviceName),
		))
	}

	policy, err := cfg.Pricing.PricingPolicy()
	if err != nil {
		return err
	}

	app := &Application{config: cfg, logger: logger}

	shutdownTelemetry, err := app.InitTelemetry()
	if err != nil {
		return err
	}
	defer shutdownTelemetry(context.Background())

	db, err := NewDatabasePool(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	redisClient, err := NewRedisClient(cfg)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	var publisher booking.EventPublisher
	if cfg.AMQP.URL != "" {
		amqpPublisher, err := events.NewAMQPPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange, logger)
		if err != nil {
			return err
		}
		defer amqpPublisher.Close()

		publisher = amqpPublisher
	}

	bookings := NewBookingService(cfg, db, redisClient, logger, policy, publisher)

	app = NewApp(
		cfg,
		logger,
		db,
		redisClient,
		appvalidator.NewValidator(),
		NewSessionManager(redisClient, cfg.Session),
		bookings,
	)

	return app.run()
}

// NewBookingService wires the Postgres repositories, the optional layout
// cache and the event publisher into a booking service.
func NewBookingService(
	cfg Config,
	db *pgxpool.Pool,
	redisClient redis.UniversalClient,
	logger *slog.Logger,
	policy domain.PricingPolicy,
	publisher booking.EventPublisher,
) *booking.Service {

	var seatRepo domain.SeatRepository = repository.NewPostgresSeatRepository(db)
	if cfg.LayoutCacheTTL > 0 {
		seatRepo = repository.NewCachedSeatRepository(seatRepo, redisClient, cfg.LayoutCacheTTL, logger)
	}

	opts := []booking.Option{
		booking.WithLogger(logger),
		booking.WithPricingPolicy(policy),
	}

	if publisher != nil {
		opts = append(opts, booking.WithEventPublisher(publisher))
	}

	return booking.NewService(
		seatRepo,
		repository.NewPostgresMovieSessionRepository(db),
		repository.NewPostgresBookingRepository(db),
		repository.NewPostgresCinemaRepository(db),
		opts...,
	)
}

func NewSessionManager(client *redis.Client, cfg SessionConfig) *scs.SessionManager {
	sessionManager := scs.New()

	sessionManager.Store = goredisstore.New(client)
	sessionManager.IdleTimeout = cfg.IdleTimeout
	sessionManager.Lifetime = cfg.Lifetime
	sessionManager.Cookie.Name = "session_id"

	return sessionManager
}

func NewRedisClient(cfg Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:            cfg.Redis.URL,
		MaxIdleConns:    cfg.Redis.MaxIdleConns,
		MaxActiveConns:  cfg.Redis.MaxOpenConns,
		ConnMaxIdleTime: cfg.Redis.MaxIdleTime,
	})

	err := redisotel.InstrumentTracing(rdb)
	if err != nil {
		rdb.Close()
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = rdb.Ping(ctx).Err()
	if err != nil {
		rdb.Close()
		return nil, err
	}

	return rdb, nil
}

func NewDatabasePool(cfg Config) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(cfg.DB.DSN)
	if err != nil {
		return nil, err
	}

	config.MaxConnIdleTime = cfg.DB.MaxIdleTime
	config.MaxConns = int32(cfg.DB.MaxOpenConns)
	config.ConnConfig.Tracer = otelpgx.NewTracer()

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = db.Ping(ctx)
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func (app *Application) run() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.Port),
		Handler:      app.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		shutdownError <- srv.Shutdown(ctx)
	}()

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.Env, "version", version)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)
	r.MethodNotAllowed(app.methodNotAllowedResponse)

	r.Use(otelchi.Middleware(serviceName, otelchi.WithChiRoutes(r)))
	r.Use(middleware.RequestID)
	r.Use(app.logRequest)
	r.Use(app.recordMetrics)
	r.Use(app.recoverPanic)
	r.Use(app.sessionManager.LoadAndSave)

	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(app.registry, promhttp.HandlerOpts{}))
	r.Get("/openapi.json", app.GetOpenAPIDocument)

	return api.HandlerWithOptions(app, api.ChiServerOptions{
		BaseRouter:       r,
		Middlewares:      []api.MiddlewareFunc{app.requireAuthentication},
		ErrorHandlerFunc: app.invalidParamResponse,
	})
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}
