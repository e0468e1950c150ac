// Package config provides configuration structures and loading for dinofacts.
package config

// Data source kinds.
const (
	SourceEmbedded = "embedded"
	SourceFile     = "file"
	SourceMySQL    = "mysql"
)

// Config represents the complete application configuration.
type Config struct {
	Data    DataConfig    `yaml:"data" mapstructure:"data"`
	MySQL   MySQLConfig   `yaml:"mysql" mapstructure:"mysql"`
	Output  OutputConfig  `yaml:"output" mapstructure:"output"`
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`
}

// DataConfig selects where dinosaur records are loaded from.
type DataConfig struct {
	Source string `yaml:"source" mapstructure:"source"` // embedded, file, mysql
	Path   string `yaml:"path" mapstructure:"path"`     // fixture path when source is file
}

// MySQLConfig represents a read-only MySQL record source.
type MySQLConfig struct {
	Host               string `yaml:"host" mapstructure:"host"`
	Port               int    `yaml:"port" mapstructure:"port"`
	User               string `yaml:"user" mapstructure:"user"`
	Password           string `yaml:"password" mapstructure:"password"`
	Database           string `yaml:"database" mapstructure:"database"`
	Table              string `yaml:"table" mapstructure:"table"`
	TLS                string `yaml:"tls" mapstructure:"tls"` // disable, preferred, required
	MaxConnections     int    `yaml:"max_connections" mapstructure:"max_connections"`
	MaxIdleConnections int    `yaml:"max_idle_connections" mapstructure:"max_idle_connections"`
}

// OutputConfig represents terminal output settings.
type OutputConfig struct {
	Color bool `yaml:"color" mapstructure:"color"`
}

// LoggingConfig represents logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // json or text
	Output string `yaml:"output" mapstructure:"output"` // stdout, stderr, or file path
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Data: DataConfig{
			Source: SourceEmbedded,
		},
		MySQL: MySQLConfig{
			Host:               "localhost",
			Port:               3306,
			Table:              "dinosaurs",
			TLS:                "preferred",
			MaxConnections:     4,
			MaxIdleConnections: 2,
		},
		Output: OutputConfig{
			Color: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
	}
}
