package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/eatease/EatEase-BookingService/internal/domain"
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Booking  BookingConfig  `toml:"booking"`
	Sweeper  SweeperConfig  `toml:"sweeper"`
}

// ServerConfig настройки HTTP-сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN возвращает строку подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BookingConfig бизнес-политика бронирования и чекин-токенов
type BookingConfig struct {
	MaxDurationMinutes  int    `toml:"max_duration_minutes"`
	OpenHour            int    `toml:"open_hour"`
	CloseHour           int    `toml:"close_hour"`
	PickupWindowMinutes int    `toml:"pickup_window_minutes"`
	CheckinSecret       string `toml:"checkin_secret"`
	CheckinTokenTTL     int    `toml:"checkin_token_ttl"` // секунды
}

// Policy собирает доменную политику бронирования из конфигурации.
// Нулевые значения заменяются дефолтами.
func (c BookingConfig) Policy() domain.BookingPolicy {
	p := domain.DefaultBookingPolicy()

	if c.MaxDurationMinutes > 0 {
		p.MaxDuration = time.Duration(c.MaxDurationMinutes) * time.Minute
	}
	if c.OpenHour > 0 {
		p.OpenHour = c.OpenHour
	}
	if c.CloseHour > 0 {
		p.CloseHour = c.CloseHour
	}
	if c.PickupWindowMinutes > 0 {
		p.PickupWindow = time.Duration(c.PickupWindowMinutes) * time.Minute
	}
	if c.CheckinTokenTTL > 0 {
		p.TokenTTL = time.Duration(c.CheckinTokenTTL) * time.Second
	}

	return p
}

// SweeperConfig настройки фонового перевода просроченных бронирований в no_show
type SweeperConfig struct {
	Enabled  bool `toml:"enabled"`
	Interval int  `toml:"interval"` // секунды
}

// Load читает и валидирует конфигурацию из TOML-файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("server.http_port must be positive")
	}
	if c.Database.Host == "" {
		return fmt.Errorf("database.host is required")
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("database.dbname is required")
	}
	if c.Booking.CheckinSecret == "" {
		return fmt.Errorf("booking.checkin_secret is required")
	}
	if c.Sweeper.Enabled && c.Sweeper.Interval <= 0 {
		return fmt.Errorf("sweeper.interval must be positive when sweeper is enabled")
	}
	return nil
}
