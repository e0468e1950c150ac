package config

import (
	"errors"
	"strings"
	"testing"
)

func validMySQLConfig() *Config {
	cfg := DefaultConfig()
	cfg.Data.Source = SourceMySQL
	cfg.MySQL.User = "reader"
	cfg.MySQL.Database = "museum"
	return cfg
}

func TestValidConfig(t *testing.T) {
	if err := validMySQLConfig().Validate(); err != nil {
		t.Errorf("expected no validation errors, got: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(c *Config)
		wantField string
	}{
		{"unknown source", func(c *Config) { c.Data.Source = "s3" }, "data.source"},
		{"file without path", func(c *Config) { c.Data.Source = SourceFile; c.Data.Path = "" }, "data.path"},
		{"missing host", func(c *Config) { c.MySQL.Host = "" }, "mysql.host"},
		{"port zero", func(c *Config) { c.MySQL.Port = 0 }, "mysql.port"},
		{"port too large", func(c *Config) { c.MySQL.Port = 70000 }, "mysql.port"},
		{"missing user", func(c *Config) { c.MySQL.User = "" }, "mysql.user"},
		{"missing database", func(c *Config) { c.MySQL.Database = "" }, "mysql.database"},
		{"unsafe table", func(c *Config) { c.MySQL.Table = "dinos; DROP TABLE x" }, "mysql.table"},
		{"empty table", func(c *Config) { c.MySQL.Table = "" }, "mysql.table"},
		{"bad tls", func(c *Config) { c.MySQL.TLS = "sometimes" }, "mysql.tls"},
		{"negative connections", func(c *Config) { c.MySQL.MaxConnections = -1 }, "mysql.max_connections"},
		{"negative idle", func(c *Config) { c.MySQL.MaxIdleConnections = -1 }, "mysql.max_idle_connections"},
		{"bad level", func(c *Config) { c.Logging.Level = "verbose" }, "logging.level"},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validMySQLConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}

			var verrs ValidationErrors
			if !errors.As(err, &verrs) {
				t.Fatalf("expected ValidationErrors, got %T", err)
			}

			found := false
			for _, e := range verrs {
				if e.Field == tt.wantField {
					found = true
				}
			}
			if !found {
				t.Errorf("expected error for field %s, got: %v", tt.wantField, err)
			}
		})
	}
}

func TestValidate_MySQLSkippedForOtherSources(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MySQL = MySQLConfig{}

	if err := cfg.Validate(); err != nil {
		t.Errorf("expected mysql settings to be ignored for embedded source, got: %v", err)
	}
}

func TestValidationErrorsFormat(t *testing.T) {
	errs := ValidationErrors{
		{Field: "data.source", Message: "bad"},
		{Field: "logging.level", Message: "worse"},
	}

	msg := errs.Error()
	if !strings.HasPrefix(msg, "validation failed:") {
		t.Errorf("unexpected prefix: %s", msg)
	}
	if !strings.Contains(msg, "data.source: bad") || !strings.Contains(msg, "logging.level: worse") {
		t.Errorf("expected both errors in message: %s", msg)
	}

	if (ValidationErrors{}).Error() != "" {
		t.Error("expected empty message for no errors")
	}
}
