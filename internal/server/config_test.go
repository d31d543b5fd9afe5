package server

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/finsim/loan-recast/pkg/constants"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.Address != constants.DefaultServerAddress {
		t.Errorf("address = %q, expected %q", cfg.Address, constants.DefaultServerAddress)
	}
	if cfg.BodySizeBytes() != constants.DefaultMaxBodySizeBytes {
		t.Errorf("body size = %d, expected %d", cfg.BodySizeBytes(), constants.DefaultMaxBodySizeBytes)
	}
	if cfg.Storage.Backend != "memory" {
		t.Errorf("backend = %q, expected memory", cfg.Storage.Backend)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("expected defaults for a missing file, got error: %v", err)
	}
	if cfg.Address != constants.DefaultServerAddress {
		t.Errorf("address = %q, expected default", cfg.Address)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	contents := `address: ":9090"
maxBodySize: 1MB
storage:
  backend: redis
  redisAddr: localhost:6380
logging:
  level: debug
`
	path := filepath.Join(t.TempDir(), "server-config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.Address != ":9090" {
		t.Errorf("address = %q, expected :9090", cfg.Address)
	}
	if cfg.BodySizeBytes() != 1024*1024 {
		t.Errorf("body size = %d, expected 1 MB", cfg.BodySizeBytes())
	}
	if cfg.Storage.Backend != "redis" || cfg.Storage.RedisAddr != "localhost:6380" {
		t.Errorf("unexpected storage config %+v", cfg.Storage)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("log level = %q, expected debug", cfg.Logging.Level)
	}
}

func TestLoadConfigInvalidValues(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{"Bad body size", "maxBodySize: not-a-size\n"},
		{"Negative body size", "maxBodySize: -5\n"},
		{"Unknown backend", "storage:\n  backend: cassandra\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "server-config.yaml")
			if err := os.WriteFile(path, []byte(tt.contents), 0644); err != nil {
				t.Fatalf("failed to write config: %v", err)
			}
			if _, err := LoadConfig(path); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int64
		wantErr  bool
	}{
		{"Plain bytes", "1024", 1024, false},
		{"Kilobytes", "64KB", 64 * 1024, false},
		{"Megabytes", "2MB", 2 * 1024 * 1024, false},
		{"Lowercase suffix", "4kb", 4 * 1024, false},
		{"Empty uses default", "", constants.DefaultMaxBodySizeBytes, false},
		{"Garbage", "lots", 0, true},
		{"Zero", "0", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			size, err := parseSize(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseSize(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && size != tt.expected {
				t.Errorf("parseSize(%q) = %d, expected %d", tt.input, size, tt.expected)
			}
		})
	}
}
