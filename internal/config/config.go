// Package config loads process configuration from LEXIQ_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreMongo    = "mongo"

	AIProviderMock   = "mock"
	AIProviderOpenAI = "openai"
)

type Config struct {
	HTTP   HTTPConfig   `envPrefix:"HTTP_"`
	Log    LogConfig    `envPrefix:"LOG_"`
	Store  StoreConfig  `envPrefix:"STORE_"`
	DB     DBConfig     `envPrefix:"DB_"`
	Mongo  MongoConfig  `envPrefix:"MONGO_"`
	AI     AIConfig     `envPrefix:"AI_"`
	OpenAI OpenAIConfig `envPrefix:"OPENAI_"`
	Auth   AuthConfig
}

type HTTPConfig struct {
	Addr           string   `env:"ADDR" envDefault:":8080"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

type LogConfig struct {
	Level       string `env:"LEVEL" envDefault:"info"`
	Development bool   `env:"DEVELOPMENT" envDefault:"false"`
}

type StoreConfig struct {
	Driver string `env:"DRIVER" envDefault:"memory"`
}

type DBConfig struct {
	DSN             string        `env:"DSN"`
	MigrationsDir   string        `env:"MIGRATIONS_DIR" envDefault:"db/migrations"`
	MaxOpenConns    int           `env:"MAX_OPEN_CONNS" envDefault:"10"`
	ConnMaxLifetime time.Duration `env:"CONN_MAX_LIFETIME" envDefault:"30m"`
}

type MongoConfig struct {
	URI            string        `env:"URI"`
	Database       string        `env:"DATABASE" envDefault:"lexiq"`
	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT" envDefault:"10s"`
}

type AIConfig struct {
	Provider string        `env:"PROVIDER" envDefault:"mock"`
	Timeout  time.Duration `env:"TIMEOUT" envDefault:"60s"`
}

type OpenAIConfig struct {
	APIKey  string `env:"API_KEY,unset"`
	BaseURL string `env:"BASE_URL"`
	Model   string `env:"MODEL" envDefault:"gpt-4o-mini"`
}

type AuthConfig struct {
	JWTSecret string `env:"JWT_SECRET,unset"`
}

// Load parses the process environment.
func Load() (Config, error) {
	return parse(env.Options{Prefix: "LEXIQ_"})
}

// LoadFrom parses vars instead of the process environment.
func LoadFrom(vars map[string]string) (Config, error) {
	return parse(env.Options{Prefix: "LEXIQ_", Environment: vars})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.Store.Driver = strings.ToLower(strings.TrimSpace(cfg.Store.Driver))
	cfg.AI.Provider = strings.ToLower(strings.TrimSpace(cfg.AI.Provider))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	switch c.Store.Driver {
	case StoreMemory:
	case StorePostgres:
		if strings.TrimSpace(c.DB.DSN) == "" {
			errs = append(errs, errors.New("LEXIQ_DB_DSN is required for the postgres store"))
		}
	case StoreMongo:
		if strings.TrimSpace(c.Mongo.URI) == "" {
			errs = append(errs, errors.New("LEXIQ_MONGO_URI is required for the mongo store"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown LEXIQ_STORE_DRIVER %q", c.Store.Driver))
	}

	switch c.AI.Provider {
	case AIProviderMock:
	case AIProviderOpenAI:
		if strings.TrimSpace(c.OpenAI.APIKey) == "" {
			errs = append(errs, errors.New("LEXIQ_OPENAI_API_KEY is required for the openai provider"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown LEXIQ_AI_PROVIDER %q", c.AI.Provider))
	}
	if c.AI.Timeout <= 0 {
		errs = append(errs, errors.New("LEXIQ_AI_TIMEOUT must be positive"))
	}
	if len(c.Auth.JWTSecret) > 0 && len(c.Auth.JWTSecret) < 32 {
		errs = append(errs, errors.New("LEXIQ_JWT_SECRET must be at least 32 bytes"))
	}
	return errors.Join(errs...)
}
