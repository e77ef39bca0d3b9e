package integration_test

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"testing"

	"github.com/alexedwards/scs/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-booking/internal/app"
	appvalidator "github.com/metinatakli/cinema-booking/internal/validator"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

type TestApp struct {
	App            *app.Application
	DB             *pgxpool.Pool
	RedisClient    *redis.Client
	SessionManager *scs.SessionManager
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	validator := appvalidator.NewValidator()

	policy, err := cfg.Pricing.PricingPolicy()
	if err != nil {
		return nil, err
	}

	db, err := app.NewDatabasePool(cfg)
	if err != nil {
		return nil, err
	}

	redisClient, err := app.NewRedisClient(cfg)
	if err != nil {
		db.Close()
		return nil, err
	}

	sessionManager := app.NewSessionManager(redisClient, cfg.Session)
	bookings := app.NewBookingService(cfg, db, redisClient, logger, policy, nil)

	application := app.NewApp(
		cfg,
		logger,
		db,
		redisClient,
		validator,
		sessionManager,
		bookings,
	)

	return &TestApp{
		App:            application,
		DB:             db,
		RedisClient:    redisClient,
		SessionManager: sessionManager,
	}, nil
}

func (a *TestApp) Close() {
	a.RedisClient.Close()
	a.DB.Close()
}

// authenticatedUserCookies stores a session for TestUserId in Redis and
// returns the cookie carrying its token.
func (a *TestApp) authenticatedUserCookies(t testing.TB) []http.Cookie {
	return a.userCookies(t, TestUserId)
}

func (a *TestApp) userCookies(t testing.TB, userId int) []http.Cookie {
	t.Helper()

	ctx, err := a.SessionManager.Load(context.Background(), "")
	require.NoError(t, err)

	a.SessionManager.Put(ctx, app.SessionKeyUserId.String(), userId)

	token, _, err := a.SessionManager.Commit(ctx)
	require.NoError(t, err)

	return []http.Cookie{{Name: a.SessionManager.Cookie.Name, Value: token}}
}
