package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV" default:"development"`
		LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
		Port     string `envconfig:"PORT" default:"8080"`
		Host     string `envconfig:"HOST" default:"0.0.0.0"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS" default:"5"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS" default:"10"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `envconfig:"APP_NAME" default:"freeroom"`
		Timezone string `envconfig:"TIMEZONE" default:"Europe/Paris"`
		CORS     struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS" default:"Accept,Content-Type"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS" default:"GET,POST"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS" default:"*"`
			Enable           bool     `envconfig:"ENABLE"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS" default:"300"`
		} `envconfig:"CORS"`
		RateLimiter struct {
			Enable        bool `envconfig:"ENABLE"`
			MaxRequests   int  `envconfig:"MAX_REQUESTS" default:"60"`
			WindowSeconds int  `envconfig:"WINDOW_SECONDS" default:"60"`
		} `envconfig:"RATE_LIMITER"`
	} `envconfig:"APP"`

	Cache struct {
		Redis struct {
			Primary struct {
				Host     string `envconfig:"HOST" default:"localhost"`
				Port     string `envconfig:"PORT" default:"6379"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
			} `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
		TTL int `envconfig:"TTL" default:"300"`
	} `envconfig:"CACHE"`

	Upstream struct {
		// BaseURL is joined with "/<studio-name>/bookings" per request.
		BaseURL         string `envconfig:"BASE_URL" default:"https://www.quickstudio.com/en/studios"`
		TimeoutSeconds  int    `envconfig:"TIMEOUT_SECONDS" default:"30"`
		MaxConnections  int64  `envconfig:"MAX_CONNECTIONS" default:"10"`
		CacheTTLSeconds int    `envconfig:"CACHE_TTL_SECONDS" default:"300"`
		CacheCapacity   int    `envconfig:"CACHE_CAPACITY" default:"128"`
	} `envconfig:"UPSTREAM"`

	Studio struct {
		Names                []string `envconfig:"NAMES" default:"hf-music-studio-14"`
		StalenessSeconds     int      `envconfig:"STALENESS_SECONDS" default:"300"`
		BatchDeadlineSeconds int      `envconfig:"BATCH_DEADLINE_SECONDS" default:"60"`
	} `envconfig:"STUDIO"`

	Kafka struct {
		Enable        bool     `envconfig:"ENABLE"`
		Brokers       []string `envconfig:"BROKERS"`
		ConsumerGroup string   `envconfig:"CONSUMER_GROUP"`
		RefreshTopic  string   `envconfig:"REFRESH_TOPIC" default:"studio-refresh"`
		SASL          struct {
			Username string `envconfig:"USERNAME"`
			Password string `envconfig:"PASSWORD"`
		} `envconfig:"SASL"`
	} `envconfig:"KAFKA"`

	DB struct {
		Postgres struct {
			MaxRetry       int    `envconfig:"MAX_RETRY" default:"3"`
			RetryWaitTime  int    `envconfig:"RETRY_WAIT_TIME" default:"5"`
			MigrationTable string `envconfig:"MIGRATION_TABLE" default:"schema_migrations"`
			Read           struct {
				Host     string `envconfig:"HOST" default:"localhost"`
				Port     string `envconfig:"PORT" default:"5432"`
				Username string `envconfig:"USER" default:"freeroom"`
				Password string `envconfig:"PASSWORD"`
				Name     string `envconfig:"NAME" default:"freeroom"`
				SSLMode  string `envconfig:"SSL_MODE" default:"disable"`
			} `envconfig:"READ"`
			Write struct {
				Host     string `envconfig:"HOST" default:"localhost"`
				Port     string `envconfig:"PORT" default:"5432"`
				Username string `envconfig:"USER" default:"freeroom"`
				Password string `envconfig:"PASSWORD"`
				Name     string `envconfig:"NAME" default:"freeroom"`
				SSLMode  string `envconfig:"SSL_MODE" default:"disable"`
			} `envconfig:"WRITE"`
		} `envconfig:"POSTGRES"`
	} `envconfig:"DB"`

	External struct {
		Otel struct {
			Enable   bool   `envconfig:"ENABLE"`
			Endpoint string `envconfig:"ENDPOINT" default:"localhost:4317"`
		} `envconfig:"OTEL"`
	}
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

func Init() error {
	var err error

	once.Do(func() {
		err = godotenv.Load(".env")
		if err != nil {
			log.Warn().Err(err).Msg("Could not load .env file, continuing with existing environment variables")
		} else {
			log.Info().Msg("Successfully loaded variables from .env file into environment")
		}

		err = envconfig.Process("", &conf)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to process environment variables")
		}

		initialized = true

		log.Info().Msg("Service configuration initialized successfully")
	})

	if err != nil {
		return fmt.Errorf("loading .env file: %w", err)
	}

	return nil
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize configuration")
		}
	}

	return &conf
}
