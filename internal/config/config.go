package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App            AppConfig
	Database       DatabaseConfig
	Redis          RedisConfig
	JWT            JWTConfig
	Log            LogConfig
	Recommendation RecommendationConfig
	CVDraft        CVDraftConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
	WSPort      string
	AutoMigrate bool
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout        time.Duration
	PoolMaxConns          int32
	PoolMinConns          int32
	PoolMaxConnLifetime   time.Duration
	PoolMaxConnIdleTime   time.Duration
	PoolHealthCheckPeriod time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	TTL      time.Duration
}

type JWTConfig struct {
	AccessSecret    string
	AccessExpiresIn time.Duration
}

type LogConfig struct {
	JSON  bool
	Debug bool
}

type RecommendationConfig struct {
	DefaultLimit  int
	MaxLimit      int
	CandidatePool int
	CacheTTL      time.Duration
}

type CVDraftConfig struct {
	TTL time.Duration
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present; real environment variables win.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
		WSPort:      optDefault(opt("WS_PORT"), "8081"),
		AutoMigrate: boolOr(opt("AUTO_MIGRATE"), false),
	}

	cfg.Database = DatabaseConfig{
		DBHost:     opt("DB_HOST"),
		DBPort:     opt("DB_PORT"),
		DBName:     opt("DB_NAME"),
		DBUser:     opt("DB_USER"),
		DBPassword: opt("DB_PASSWORD"),
		DBSSLMode:  optDefault(opt("DB_SSL_MODE"), "disable"),

		ConnectTimeout:        seconds(opt("DB_CONNECT_TIMEOUT"), 5*time.Second),
		PoolMaxConns:          int32(intOr(opt("DB_POOL_MAX_CONNS"), 10)),
		PoolMinConns:          int32(intOr(opt("DB_POOL_MIN_CONNS"), 0)),
		PoolMaxConnLifetime:   seconds(opt("DB_POOL_MAX_CONN_LIFETIME"), time.Hour),
		PoolMaxConnIdleTime:   seconds(opt("DB_POOL_MAX_CONN_IDLE_TIME"), 30*time.Minute),
		PoolHealthCheckPeriod: seconds(opt("DB_POOL_HEALTH_CHECK_PERIOD"), time.Minute),
	}

	cfg.Redis = RedisConfig{
		Host:     optDefault(opt("REDIS_HOST"), "localhost"),
		Port:     optDefault(opt("REDIS_PORT"), "6379"),
		Password: opt("REDIS_PASSWORD"),
		DB:       intOr(opt("REDIS_DB"), 0),
		TTL:      seconds(opt("REDIS_TTL"), 600*time.Second),
	}

	cfg.JWT = JWTConfig{
		AccessSecret:    req("JWT_ACCESS_SECRET"),
		AccessExpiresIn: seconds(opt("JWT_ACCESS_EXPIRES_IN"), 15*time.Minute),
	}

	cfg.Log = LogConfig{
		JSON:  boolOr(opt("LOG_JSON"), false),
		Debug: boolOr(opt("LOG_DEBUG"), false),
	}

	cfg.Recommendation = RecommendationConfig{
		DefaultLimit:  intOr(opt("RECOMMENDATION_DEFAULT_LIMIT"), 10),
		MaxLimit:      intOr(opt("RECOMMENDATION_MAX_LIMIT"), 50),
		CandidatePool: intOr(opt("RECOMMENDATION_CANDIDATE_POOL"), 200),
		CacheTTL:      seconds(opt("RECOMMENDATION_CACHE_TTL"), 5*time.Minute),
	}

	cfg.CVDraft = CVDraftConfig{
		TTL: seconds(opt("CV_DRAFT_TTL"), 30*24*time.Hour),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

// LoadDatabase reads only the database settings. It is used by tooling that
// does not serve HTTP.
func LoadDatabase() DatabaseConfig {
	_ = godotenv.Load()
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}
	return DatabaseConfig{
		DBHost:         opt("DB_HOST"),
		DBPort:         opt("DB_PORT"),
		DBName:         opt("DB_NAME"),
		DBUser:         opt("DB_USER"),
		DBPassword:     opt("DB_PASSWORD"),
		DBSSLMode:      optDefault(opt("DB_SSL_MODE"), "disable"),
		ConnectTimeout: seconds(opt("DB_CONNECT_TIMEOUT"), 5*time.Second),
	}
}

func optDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func intOr(raw string, def int) int {
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

func boolOr(raw string, def bool) bool {
	if raw == "" {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}
	return v
}

// seconds parses a positive number of seconds, falling back to def.
func seconds(raw string, def time.Duration) time.Duration {
	v := intOr(raw, 0)
	if v <= 0 {
		return def
	}
	return time.Duration(v) * time.Second
}
