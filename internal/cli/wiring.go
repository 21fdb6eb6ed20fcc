package cli

import (
	"log/slog"
	"os"
	"time"

	"biologia-quiz-client/internal/app"
	"biologia-quiz-client/internal/config"
	filestore "biologia-quiz-client/internal/infra/file"
	"biologia-quiz-client/internal/infra/memory"
	redisstore "biologia-quiz-client/internal/infra/redis"
	"biologia-quiz-client/internal/transport/rest"
	goredis "github.com/redis/go-redis/v9"
)

// appContext bundles the wired components a command needs.
type appContext struct {
	cfg     config.Config
	logger  *slog.Logger
	session *app.SessionManager
	flow    *app.Flow
}

// newApp assembles the client from config: durable store, session manager,
// REST client and flow orchestration.
func newApp(configPath string) (*appContext, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if apiURL != "" {
		cfg.API.BaseURL = apiURL
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	store := newStore(cfg, logger)
	session := app.NewSessionManager(store, routeLogger{logger: logger}, logger)

	timeout := config.TTLDuration(cfg.API.Timeout, 15*time.Second)
	client := rest.NewClient(cfg.API.BaseURL, timeout, session)

	dashboardTTL := config.TTLDuration(cfg.Dashboard.TTL, time.Minute)
	dashboard := app.NewDashboardRepository(client, dashboardTTL)

	return &appContext{
		cfg:     cfg,
		logger:  logger,
		session: session,
		flow:    app.NewFlow(client, session, dashboard, logger),
	}, nil
}

func newStore(cfg config.Config, logger *slog.Logger) app.Store {
	switch cfg.Storage.Backend {
	case "redis":
		client := goredis.NewClient(&goredis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		ttl := config.TTLDuration(cfg.Redis.TTL, 0)
		return redisstore.NewStore(client, cfg.Redis.Prefix, ttl, logger)
	case "memory":
		return memory.NewStore()
	default:
		return filestore.NewStore(cfg.Storage.Path, logger)
	}
}

// routeLogger satisfies app.Router for the CLI, where "navigation" is just a
// trace of which view the flow would enter next.
type routeLogger struct {
	logger *slog.Logger
}

func (r routeLogger) NavigateTo(route string) {
	r.logger.Debug("navigate", "route", route)
}
