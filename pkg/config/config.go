package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Log         struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
	Server struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
	Forecast struct {
		Window          int `yaml:"window"`
		Horizon         int `yaml:"horizon"`
		HistoryRows     int `yaml:"history_rows"`
		SyntheticLength int `yaml:"synthetic_length"`
	} `yaml:"forecast"`
	Source struct {
		Type string `yaml:"type"` // synthetic, csv or clickhouse
		Path string `yaml:"path"` // csv file path
	} `yaml:"source"`
	Cache struct {
		Enabled bool          `yaml:"enabled"`
		TTL     time.Duration `yaml:"ttl"`
		MaxSize int           `yaml:"max_size"`
		Redis   struct {
			Enabled  bool   `yaml:"enabled"`
			Host     string `yaml:"host"`
			Port     int    `yaml:"port"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
		} `yaml:"redis"`
	} `yaml:"cache"`
	ClickHouse struct {
		Host        string        `yaml:"host"`
		Port        int           `yaml:"port"`
		Database    string        `yaml:"database"`
		User        string        `yaml:"user"`
		Password    string        `yaml:"password"`
		Table       string        `yaml:"table"`
		DialTimeout time.Duration `yaml:"dial_timeout"`
		ReadTimeout time.Duration `yaml:"read_timeout"`
	} `yaml:"clickhouse"`
	Export struct {
		Kafka struct {
			Enabled      bool          `yaml:"enabled"`
			Brokers      []string      `yaml:"brokers"`
			Topic        string        `yaml:"topic"`
			RequiredAcks int           `yaml:"required_acks"`
			Compression  string        `yaml:"compression"`
			WriteTimeout time.Duration `yaml:"write_timeout"`
		} `yaml:"kafka"`
	} `yaml:"export"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	c := Default()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return c, nil
}

// Default returns the configuration used when no file is supplied: the
// terminal demo against the synthetic generator.
func Default() *Config {
	c := &Config{Environment: "development"}
	c.Log.Level = "info"
	c.Log.Format = "console"
	c.Server.Port = 8080
	c.Server.ReadTimeout = 10 * time.Second
	c.Server.WriteTimeout = 10 * time.Second
	c.Server.ShutdownTimeout = 10 * time.Second
	c.Metrics.Enabled = true
	c.Metrics.Path = "/metrics"
	c.Forecast.Window = 3
	c.Forecast.Horizon = 6
	c.Forecast.HistoryRows = 10
	c.Forecast.SyntheticLength = 36
	c.Source.Type = "synthetic"
	c.Cache.Enabled = true
	c.Cache.TTL = 30 * time.Second
	c.Cache.MaxSize = 256
	c.Cache.Redis.Host = "localhost"
	c.Cache.Redis.Port = 6379
	c.ClickHouse.Port = 9000
	c.ClickHouse.Database = "trendcast"
	c.ClickHouse.Table = "observations"
	c.ClickHouse.DialTimeout = 5 * time.Second
	c.ClickHouse.ReadTimeout = 10 * time.Second
	c.Export.Kafka.RequiredAcks = -1
	c.Export.Kafka.Compression = "gzip"
	c.Export.Kafka.WriteTimeout = 10 * time.Second
	return c
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}
	c.applyEnv()
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return c, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("TRENDCAST_SOURCE"); v != "" {
		c.Source.Type = v
	}
	if v := os.Getenv("TRENDCAST_DATA"); v != "" {
		c.Source.Path = v
		c.Source.Type = "csv"
	}
	if v := os.Getenv("TRENDCAST_WINDOW"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Forecast.Window = n
		}
	}
	if v := os.Getenv("TRENDCAST_HORIZON"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Forecast.Horizon = n
		}
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		if host, port, ok := strings.Cut(v, ":"); ok {
			c.Cache.Redis.Host = host
			if p, err := strconv.Atoi(port); err == nil {
				c.Cache.Redis.Port = p
			}
		} else {
			c.Cache.Redis.Host = v
		}
	}
	if v := os.Getenv("CLICKHOUSE_HOST"); v != "" {
		c.ClickHouse.Host = v
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		c.Export.Kafka.Brokers = strings.Split(v, ",")
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	switch c.Source.Type {
	case "synthetic", "csv", "clickhouse":
	default:
		return fmt.Errorf("source.type must be 'synthetic', 'csv' or 'clickhouse', got '%s'", c.Source.Type)
	}
	if c.Source.Type == "csv" && c.Source.Path == "" {
		return fmt.Errorf("source.path is required for the csv source")
	}
	if c.Source.Type == "clickhouse" && c.ClickHouse.Host == "" {
		return fmt.Errorf("clickhouse.host is required for the clickhouse source")
	}
	if c.Forecast.Window <= 0 {
		return fmt.Errorf("forecast.window must be positive, got %d", c.Forecast.Window)
	}
	if c.Forecast.Horizon < 0 {
		return fmt.Errorf("forecast.horizon must be non-negative, got %d", c.Forecast.Horizon)
	}
	if c.Forecast.HistoryRows < 0 {
		return fmt.Errorf("forecast.history_rows must be non-negative, got %d", c.Forecast.HistoryRows)
	}
	if c.Export.Kafka.Enabled && len(c.Export.Kafka.Brokers) == 0 {
		return fmt.Errorf("export.kafka.brokers cannot be empty when kafka export is enabled")
	}
	return nil
}
