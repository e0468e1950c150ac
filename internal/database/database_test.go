package database

import (
	"context"
	"testing"
	"time"

	"github.com/dbsmedya/dinofacts/internal/config"
	"github.com/dbsmedya/dinofacts/internal/logger"
)

func TestBuildDSN(t *testing.T) {
	tests := []struct {
		name     string
		cfg      *config.MySQLConfig
		expected string
	}{
		{
			name: "basic DSN",
			cfg: &config.MySQLConfig{
				Host:     "localhost",
				Port:     3306,
				User:     "reader",
				Password: "secret",
				Database: "museum",
				TLS:      "preferred",
			},
			expected: "reader:secret@tcp(localhost:3306)/museum?parseTime=true&tls=preferred",
		},
		{
			name: "DSN without database",
			cfg: &config.MySQLConfig{
				Host:     "localhost",
				Port:     3306,
				User:     "reader",
				Password: "secret",
			},
			expected: "reader:secret@tcp(localhost:3306)/?parseTime=true&tls=preferred",
		},
		{
			name: "DSN with TLS disabled",
			cfg: &config.MySQLConfig{
				Host:     "localhost",
				Port:     3306,
				User:     "reader",
				Password: "secret",
				Database: "museum",
				TLS:      "disable",
			},
			expected: "reader:secret@tcp(localhost:3306)/museum?parseTime=true&tls=false",
		},
		{
			name: "DSN with TLS required",
			cfg: &config.MySQLConfig{
				Host:     "db.example.com",
				Port:     3307,
				User:     "admin",
				Password: "p@ssw0rd!",
				Database: "museum",
				TLS:      "required",
			},
			expected: "admin:p@ssw0rd!@tcp(db.example.com:3307)/museum?parseTime=true&tls=true",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := BuildDSN(tt.cfg)
			if result != tt.expected {
				t.Errorf("BuildDSN() = %q, expected %q", result, tt.expected)
			}
		})
	}
}

func TestNewManager(t *testing.T) {
	cfg := config.DefaultConfig()
	manager := NewManager(&cfg.MySQL, nil)

	if manager == nil {
		t.Fatal("NewManager() returned nil")
	}
	if manager.config != &cfg.MySQL {
		t.Error("manager.config should point to provided config")
	}
	if manager.DB != nil {
		t.Error("DB should be nil before Connect()")
	}
	if manager.log == nil {
		t.Error("expected default logger when none is given")
	}
}

func TestManagerCloseWithoutConnect(t *testing.T) {
	manager := NewManager(&config.MySQLConfig{Host: "localhost"}, logger.NewNop())

	if err := manager.Close(); err != nil {
		t.Errorf("Close() on unconnected manager should not error, got: %v", err)
	}
}

func TestManagerPingWithoutConnect(t *testing.T) {
	manager := NewManager(&config.MySQLConfig{Host: "localhost"}, logger.NewNop())

	if err := manager.Ping(context.Background()); err == nil {
		t.Error("expected Ping() to fail before Connect()")
	}
}

func TestConnectCancelledContext(t *testing.T) {
	cfg := &config.MySQLConfig{
		Host:     "127.0.0.1",
		Port:     1, // nothing listens here
		User:     "reader",
		Database: "museum",
		TLS:      "disable",
	}
	manager := NewManager(cfg, logger.NewNop())
	manager.backoff = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := manager.Connect(ctx); err == nil {
		t.Fatal("expected Connect() to fail")
	}
	if manager.DB != nil {
		t.Error("DB should stay nil after a failed Connect()")
	}
}
