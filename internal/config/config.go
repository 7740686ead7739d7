// Package config загружает настройки сервиса из окружения (и опционального .env файла).
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config описывает все параметры запуска сервиса.
type Config struct {
	AppEnv          string        `env:"APP_ENV" envDefault:"development"`
	HTTPAddr        string        `env:"HTTP_ADDR" envDefault:":8080"`
	DatabaseDSN     string        `env:"DB_DSN,required,notEmpty"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`

	JWTSecret  string        `env:"JWT_SECRET,required,notEmpty"`
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"720h"`
	BcryptCost int           `env:"BCRYPT_COST" envDefault:"10"`

	PurgeBatchSize int    `env:"PURGE_BATCH_SIZE" envDefault:"1000"`
	Timezone       string `env:"APP_TIMEZONE" envDefault:"Local"`
	WeekStart      string `env:"WEEK_START" envDefault:"sunday"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

// Load читает .env (если он есть) и затем переменные окружения.
func Load() (*Config, error) {
	// .env необязателен: в контейнере всё приходит через окружение
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.PurgeBatchSize <= 0 {
		return errors.New("PURGE_BATCH_SIZE must be positive")
	}
	if c.SessionTTL <= 0 {
		return errors.New("SESSION_TTL must be positive")
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	if _, err := c.FirstWeekday(); err != nil {
		return err
	}
	return nil
}

// Location возвращает часовой пояс, в котором считаются календарные окна.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || strings.EqualFold(c.Timezone, "local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load APP_TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// FirstWeekday разбирает WEEK_START в time.Weekday.
func (c *Config) FirstWeekday() (time.Weekday, error) {
	return ParseWeekday(c.WeekStart)
}

// IsProduction сообщает, запущен ли сервис в продовом окружении.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// ParseWeekday принимает английское название дня недели без учёта регистра.
func ParseWeekday(s string) (time.Weekday, error) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(s, d.String()) {
			return d, nil
		}
	}
	return time.Sunday, fmt.Errorf("unknown weekday %q", s)
}

// WatchConfig — параметры клиента, следящего за сессией.
type WatchConfig struct {
	AppEnv   string        `env:"APP_ENV" envDefault:"development"`
	BaseURL  string        `env:"ADMIN_API_URL,required,notEmpty"`
	Token    string        `env:"SESSION_TOKEN,required,notEmpty"`
	Interval time.Duration `env:"SESSION_CHECK_INTERVAL" envDefault:"30s"`
}

// LoadWatch читает настройки наблюдателя сессии.
func LoadWatch() (*WatchConfig, error) {
	_ = godotenv.Load()

	var cfg WatchConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Interval <= 0 {
		return nil, errors.New("SESSION_CHECK_INTERVAL must be positive")
	}
	return &cfg, nil
}
