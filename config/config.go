package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

const envFile = ".env"

// DatabaseEndpoint is one postgres server. Read and write may be the same host.
type DatabaseEndpoint struct {
	Host     string `envconfig:"HOST" default:"localhost"`
	Port     string `envconfig:"PORT" default:"5432"`
	Username string `envconfig:"USER"`
	Password string `envconfig:"PASSWORD"`
	Name     string `envconfig:"NAME"`
	Timezone string `envconfig:"TIMEZONE"`
	SSLMode  string `envconfig:"SSL_MODE" default:"disable"`
}

type RedisEndpoint struct {
	Host     string `envconfig:"HOST"`
	Port     string `envconfig:"PORT" default:"6379"`
	Password string `envconfig:"PASSWORD"`
	DB       int    `envconfig:"DB"`
}

type Server struct {
	Env      string `envconfig:"ENV" default:"development"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	Host     string `envconfig:"HOST"`
	Port     string `envconfig:"PORT" default:"8080"`
	Shutdown struct {
		GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"`
		CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS"`
	} `envconfig:"SHUTDOWN"`
}

type CORS struct {
	Enable           bool     `envconfig:"ENABLE"`
	AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"`
	AllowedMethods   []string `envconfig:"ALLOWED_METHODS"`
	AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"`
	AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
	MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"`
}

// RateLimiter caps requests per client. Backend is "redis" or "memory".
type RateLimiter struct {
	Enable        bool   `envconfig:"ENABLE"`
	Backend       string `envconfig:"BACKEND" default:"redis"`
	MaxRequests   int    `envconfig:"MAX_REQUESTS" default:"100"`
	WindowSeconds int    `envconfig:"WINDOW_SECONDS" default:"60"`
}

type App struct {
	Name        string      `envconfig:"APP_NAME" default:"daily"`
	Timezone    string      `envconfig:"TIMEZONE"`
	CORS        CORS        `envconfig:"CORS"`
	RateLimiter RateLimiter `envconfig:"RATE_LIMITER"`
	Metrics     struct {
		Enable bool   `envconfig:"ENABLE"`
		Path   string `envconfig:"PATH"`
	} `envconfig:"METRICS"`
}

type Config struct {
	Server Server `envconfig:"SERVER"`
	App    App    `envconfig:"APP"`

	Cache struct {
		Redis struct {
			Primary RedisEndpoint `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
	} `envconfig:"CACHE"`

	DB struct {
		Postgres struct {
			MaxRetry       int              `envconfig:"MAX_RETRY" default:"3"`
			RetryWaitTime  int              `envconfig:"RETRY_WAIT_TIME" default:"2"`
			MigrationTable string           `envconfig:"MIGRATION_TABLE"`
			AutoMigrate    bool             `envconfig:"AUTO_MIGRATE"`
			Read           DatabaseEndpoint `envconfig:"READ"`
			Write          DatabaseEndpoint `envconfig:"WRITE"`
		} `envconfig:"POSTGRES"`
	} `envconfig:"DB"`

	// Client is read by the request executor and cmd/client, not by the server.
	Client struct {
		BaseURL        string `envconfig:"BASE_URL" default:"http://localhost:8080/api/"`
		TimeoutSeconds int    `envconfig:"TIMEOUT_SECONDS"`
	} `envconfig:"CLIENT"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
	}
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

// Load reads the process environment into a fresh Config without touching the
// package singleton.
func Load() (*Config, error) {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}

	return &c, nil
}

// Init loads .env when present and fills the shared Config once.
func Init() error {
	var err error

	once.Do(func() {
		if loadErr := godotenv.Load(envFile); loadErr != nil {
			log.Warn().Err(loadErr).Msg("No .env file loaded, using process environment")
		} else {
			log.Info().Msg("Loaded .env file into environment")
		}

		var loaded *Config

		loaded, err = Load()
		if err != nil {
			return
		}

		conf = *loaded
		initialized = true

		log.Info().Str("env", conf.Server.Env).Msg("Configuration initialized")
	})

	return err
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize configuration")
		}
	}

	return &conf
}
