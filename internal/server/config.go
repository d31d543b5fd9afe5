package server

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/finsim/loan-recast/internal/config"
	"github.com/finsim/loan-recast/pkg/constants"
	"gopkg.in/yaml.v3"
)

// Config defines runtime parameters for the HTTP server.
type Config struct {
	Address       string               `yaml:"address"`
	MaxBodySize   string               `yaml:"maxBodySize"`
	Logging       config.LoggingConfig `yaml:"logging"`
	Storage       StorageConfig        `yaml:"storage"`
	bodySizeBytes int64
}

// StorageConfig selects the plan store backend.
type StorageConfig struct {
	Backend     string `yaml:"backend"` // memory, redis, postgres
	RedisAddr   string `yaml:"redisAddr"`
	PostgresDSN string `yaml:"postgresDsn"`
}

// LoadConfig loads the server configuration from YAML. If the file does not
// exist, defaults are returned without error.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		Address:       constants.DefaultServerAddress,
		MaxBodySize:   fmt.Sprintf("%d", constants.DefaultMaxBodySizeBytes),
		Storage:       StorageConfig{Backend: "memory"},
		bodySizeBytes: constants.DefaultMaxBodySizeBytes,
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read server config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse server config: %w", err)
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// BodySizeBytes returns the configured request body limit in bytes.
func (c *Config) BodySizeBytes() int64 {
	return c.bodySizeBytes
}

func (c *Config) normalize() error {
	if strings.TrimSpace(c.Address) == "" {
		c.Address = constants.DefaultServerAddress
	}

	switch strings.ToLower(strings.TrimSpace(c.Storage.Backend)) {
	case "", "memory":
		c.Storage.Backend = "memory"
	case "redis":
		c.Storage.Backend = "redis"
	case "postgres":
		c.Storage.Backend = "postgres"
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}

	size, err := parseSize(c.MaxBodySize)
	if err != nil {
		return err
	}
	c.bodySizeBytes = size
	return nil
}

// parseSize interprets a size string as plain bytes or with a KB/MB suffix.
func parseSize(raw string) (int64, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return constants.DefaultMaxBodySizeBytes, nil
	}

	multiplier := int64(1)
	upper := strings.ToUpper(trimmed)
	switch {
	case strings.HasSuffix(upper, "MB"):
		multiplier = 1024 * 1024
		trimmed = strings.TrimSpace(trimmed[:len(trimmed)-2])
	case strings.HasSuffix(upper, "KB"):
		multiplier = 1024
		trimmed = strings.TrimSpace(trimmed[:len(trimmed)-2])
	}

	value, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil || value <= 0 {
		return 0, fmt.Errorf("invalid max body size %q", raw)
	}
	return value * multiplier, nil
}
