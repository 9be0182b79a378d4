package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Database DatabaseConfig `yaml:"database"`
	RabbitMQ RabbitMQConfig `yaml:"rabbitmq"`
	API      APIConfig      `yaml:"api"`
	Feed     FeedConfig     `yaml:"feed"`
	Auth     AuthConfig     `yaml:"auth"`
	Server   ServerConfig   `yaml:"server"`
	Recorder RecorderConfig `yaml:"recorder"`
	LogLevel string         `yaml:"log_level"`
}

type RabbitMQConfig struct {
	URL        string `yaml:"url"`
	Exchange   string `yaml:"exchange"`
	RoutingKey string `yaml:"routing_key"`
	QueueName  string `yaml:"queue_name"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

type APIConfig struct {
	BaseURL  string        `yaml:"base_url"`
	PageSize int           `yaml:"page_size"`
	Timeout  time.Duration `yaml:"timeout"`
	Retry    RetryConfig   `yaml:"retry"`
}

type RetryConfig struct {
	MaxAttempts    int           `yaml:"max_attempts"`
	InitialBackoff time.Duration `yaml:"initial_backoff"`
	MaxBackoff     time.Duration `yaml:"max_backoff"`
}

// FeedConfig tunes the shorts feed engine.
type FeedConfig struct {
	PrefetchThreshold int `yaml:"prefetch_threshold"`
	// MountRadius is a pointer so an explicit 0 (active entry only) survives
	// defaulting. Negative keeps every loaded entry mounted.
	MountRadius      *int          `yaml:"mount_radius"`
	AutoplayInterval time.Duration `yaml:"autoplay_interval"`
	TickInterval     time.Duration `yaml:"tick_interval"`
	// InitialItemID opens the feed on a specific listing when it is in the first page.
	InitialItemID *int64 `yaml:"initial_item_id"`
}

type AuthConfig struct {
	Token string `yaml:"token"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type RecorderConfig struct {
	Enabled  bool   `yaml:"enabled"`
	ViewerID string `yaml:"viewer_id"`
}

func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	return Parse(data)
}

// Parse expands environment references in data and decodes it.
func Parse(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.RabbitMQ.Exchange == "" {
		c.RabbitMQ.Exchange = "shorts_feed"
	}
	if c.RabbitMQ.RoutingKey == "" {
		c.RabbitMQ.RoutingKey = "impressions"
	}
	if c.RabbitMQ.QueueName == "" {
		c.RabbitMQ.QueueName = "feed_impressions"
	}
	if c.API.BaseURL == "" {
		c.API.BaseURL = "http://localhost:8000"
	}
	if c.API.PageSize == 0 {
		c.API.PageSize = 10
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = 30 * time.Second
	}
	if c.API.Retry.MaxAttempts == 0 {
		c.API.Retry.MaxAttempts = 3
	}
	if c.API.Retry.InitialBackoff == 0 {
		c.API.Retry.InitialBackoff = 1 * time.Second
	}
	if c.API.Retry.MaxBackoff == 0 {
		c.API.Retry.MaxBackoff = 30 * time.Second
	}
	if c.Feed.PrefetchThreshold == 0 {
		c.Feed.PrefetchThreshold = 3
	}
	if c.Feed.MountRadius == nil {
		radius := 2
		c.Feed.MountRadius = &radius
	}
	if c.Feed.AutoplayInterval == 0 {
		c.Feed.AutoplayInterval = 5 * time.Second
	}
	if c.Feed.TickInterval == 0 {
		c.Feed.TickInterval = 1 * time.Second
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Recorder.ViewerID == "" {
		c.Recorder.ViewerID = "anonymous"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}
