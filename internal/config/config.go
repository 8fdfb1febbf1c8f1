package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/flashgoal/internal/platform/logging"
)

const (
	DataSourceAPI    = "api"
	DataSourceMemory = "memory"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                     string
	ServiceName                string
	ServiceVersion             string
	HTTPAddr                   string
	CORSAllowedOrigins         []string
	ReadTimeout                time.Duration
	WriteTimeout               time.Duration
	LogLevel                   logging.Level
	PprofEnabled               bool
	PprofAddr                  string
	UptraceEnabled             bool
	UptraceDSN                 string
	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration
	SportMonksDataSource       string
	SportMonksBaseURL          string
	SportMonksToken            string
	SportMonksTimezone         string
	SportMonksTimeout          time.Duration
	SupportedLeagueIDs         []int64
	FixtureRangeWorkers        int
	SearchDebounce             time.Duration
	SearchMinQueryLength       int
	SearchSessionTTL           time.Duration
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	dataSource := strings.ToLower(strings.TrimSpace(getEnv("SPORTMONKS_DATA_SOURCE", DataSourceAPI)))
	if dataSource != DataSourceAPI && dataSource != DataSourceMemory {
		return Config{}, fmt.Errorf("invalid SPORTMONKS_DATA_SOURCE %q: valid values are %s, %s", dataSource, DataSourceAPI, DataSourceMemory)
	}
	if dataSource == DataSourceMemory && appEnv == EnvProd {
		return Config{}, fmt.Errorf("SPORTMONKS_DATA_SOURCE=%s is not allowed when APP_ENV=%s", DataSourceMemory, EnvProd)
	}

	sportMonksToken := strings.TrimSpace(getEnv("SPORTMONKS_TOKEN", ""))
	if dataSource == DataSourceAPI && sportMonksToken == "" {
		return Config{}, fmt.Errorf("SPORTMONKS_TOKEN is required when SPORTMONKS_DATA_SOURCE=%s", DataSourceAPI)
	}
	sportMonksBaseURL := strings.TrimSpace(getEnv("SPORTMONKS_BASE_URL", "https://api.sportmonks.com/v3/football"))
	if !strings.HasPrefix(sportMonksBaseURL, "http://") && !strings.HasPrefix(sportMonksBaseURL, "https://") {
		return Config{}, fmt.Errorf("SPORTMONKS_BASE_URL must be an http(s) url, got %q", sportMonksBaseURL)
	}
	sportMonksTimezone := strings.TrimSpace(getEnv("SPORTMONKS_TIMEZONE", "Europe/Copenhagen"))
	if _, err := time.LoadLocation(sportMonksTimezone); err != nil {
		return Config{}, fmt.Errorf("parse SPORTMONKS_TIMEZONE: %w", err)
	}
	sportMonksTimeout, err := time.ParseDuration(getEnv("SPORTMONKS_TIMEOUT", "20s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SPORTMONKS_TIMEOUT: %w", err)
	}
	if sportMonksTimeout <= 0 {
		return Config{}, fmt.Errorf("SPORTMONKS_TIMEOUT must be > 0")
	}

	supportedLeagueIDs, err := parseIDList(getEnv("SUPPORTED_LEAGUE_IDS", "501,271"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SUPPORTED_LEAGUE_IDS: %w", err)
	}
	if len(supportedLeagueIDs) == 0 {
		return Config{}, fmt.Errorf("SUPPORTED_LEAGUE_IDS cannot be empty")
	}

	fixtureRangeWorkers, err := getEnvAsInt("FIXTURE_RANGE_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse FIXTURE_RANGE_WORKERS: %w", err)
	}
	if fixtureRangeWorkers < 1 {
		return Config{}, fmt.Errorf("FIXTURE_RANGE_WORKERS must be >= 1")
	}

	searchDebounce, err := time.ParseDuration(getEnv("SEARCH_DEBOUNCE", "500ms"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SEARCH_DEBOUNCE: %w", err)
	}
	if searchDebounce < 0 {
		return Config{}, fmt.Errorf("SEARCH_DEBOUNCE must be >= 0")
	}
	searchMinQueryLength, err := getEnvAsInt("SEARCH_MIN_QUERY_LENGTH", 3)
	if err != nil {
		return Config{}, fmt.Errorf("parse SEARCH_MIN_QUERY_LENGTH: %w", err)
	}
	if searchMinQueryLength < 1 {
		return Config{}, fmt.Errorf("SEARCH_MIN_QUERY_LENGTH must be >= 1")
	}
	searchSessionTTL, err := time.ParseDuration(getEnv("SEARCH_SESSION_TTL", "5m"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SEARCH_SESSION_TTL: %w", err)
	}
	if searchSessionTTL <= 0 {
		return Config{}, fmt.Errorf("SEARCH_SESSION_TTL must be > 0")
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	cfg := Config{
		AppEnv:                     appEnv,
		ServiceName:                getEnv("APP_SERVICE_NAME", "flashgoal-api"),
		ServiceVersion:             getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                   getEnv("APP_HTTP_ADDR", ":8080"),
		CORSAllowedOrigins:         splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		ReadTimeout:                readTimeout,
		WriteTimeout:               writeTimeout,
		LogLevel:                   parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
		PprofEnabled:               pprofEnabled,
		PprofAddr:                  pprofAddr,
		UptraceEnabled:             uptraceEnabled,
		UptraceDSN:                 uptraceDSN,
		PyroscopeEnabled:           pyroscopeEnabled,
		PyroscopeServerAddress:     pyroscopeServerAddress,
		PyroscopeAuthToken:         strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:     strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword: strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:        pyroscopeUploadRate,
		SportMonksDataSource:       dataSource,
		SportMonksBaseURL:          sportMonksBaseURL,
		SportMonksToken:            sportMonksToken,
		SportMonksTimezone:         sportMonksTimezone,
		SportMonksTimeout:          sportMonksTimeout,
		SupportedLeagueIDs:         supportedLeagueIDs,
		FixtureRangeWorkers:        fixtureRangeWorkers,
		SearchDebounce:             searchDebounce,
		SearchMinQueryLength:       searchMinQueryLength,
		SearchSessionTTL:           searchSessionTTL,
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}
	if strings.TrimSpace(cfg.HTTPAddr) == "" {
		return Config{}, fmt.Errorf("APP_HTTP_ADDR cannot be empty")
	}

	return cfg, nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseIDList(raw string) ([]int64, error) {
	items := splitCSV(raw)
	out := make([]int64, 0, len(items))
	seen := make(map[int64]struct{}, len(items))
	for _, item := range items {
		value, err := strconv.ParseInt(item, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", item, err)
		}
		if value <= 0 {
			return nil, fmt.Errorf("id must be > 0, got %d", value)
		}
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		out = append(out, value)
	}
	return out, nil
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
