package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/riskibarqy/flashgoal/external/sportmonks"
	"github.com/riskibarqy/flashgoal/internal/config"
	"github.com/riskibarqy/flashgoal/internal/domain/league"
	"github.com/riskibarqy/flashgoal/internal/infrastructure/datasource/memory"
	"github.com/riskibarqy/flashgoal/internal/interfaces/httpapi"
	"github.com/riskibarqy/flashgoal/internal/platform/logging"
	"github.com/riskibarqy/flashgoal/internal/usecase"
)

// App holds the HTTP server and the handler state that outlives requests.
type App struct {
	Server     *http.Server
	handler    *httpapi.Handler
	sessionTTL time.Duration
	logger     *logging.Logger
}

func New(cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	location, err := time.LoadLocation(cfg.SportMonksTimezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", cfg.SportMonksTimezone, err)
	}

	source, err := newDataSource(cfg, logger)
	if err != nil {
		return nil, err
	}

	football := usecase.NewFootballRepository(source, usecase.FootballRepositoryConfig{
		SupportedLeagues: league.NewAllowList(cfg.SupportedLeagueIDs...),
		Location:         location,
		RangeWorkers:     cfg.FixtureRangeWorkers,
		Logger:           logger.Named("football"),
	})

	handler := httpapi.NewHandler(football, httpapi.HandlerConfig{
		Search: usecase.PlayerSearcherConfig{
			Debounce:       cfg.SearchDebounce,
			MinQueryLength: cfg.SearchMinQueryLength,
		},
		SessionTTL: cfg.SearchSessionTTL,
		Logger:     logger.Named("httpapi"),
	})
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return &App{
		Server:     server,
		handler:    handler,
		sessionTTL: cfg.SearchSessionTTL,
		logger:     logger,
	}, nil
}

func newDataSource(cfg config.Config, logger *logging.Logger) (usecase.DataSource, error) {
	switch cfg.SportMonksDataSource {
	case config.DataSourceMemory:
		source, err := memory.NewSeededSource()
		if err != nil {
			return nil, fmt.Errorf("load seeded data source: %w", err)
		}
		logger.Warn("using seeded in-memory data source")
		return source, nil
	case config.DataSourceAPI, "":
		return sportmonks.NewClient(sportmonks.ClientConfig{
			BaseURL:  cfg.SportMonksBaseURL,
			Token:    cfg.SportMonksToken,
			Timezone: cfg.SportMonksTimezone,
			Timeout:  cfg.SportMonksTimeout,
			Logger:   logger,
		}), nil
	default:
		return nil, fmt.Errorf("unsupported data source %q", cfg.SportMonksDataSource)
	}
}

// SweepSessions drops idle search sessions until ctx is done.
func (a *App) SweepSessions(ctx context.Context) {
	interval := a.sessionTTL
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := a.handler.PurgeSessions(ctx); removed > 0 {
				a.logger.Debug("search sessions purged", "count", removed)
			}
		}
	}
}
