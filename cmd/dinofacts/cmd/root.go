package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// Version information (set via ldflags at build time)
var (
	Version = "0.0.1-dev"
	Commit  = "unknown"
)

// CLI flags that override config file values
var (
	cfgFile   string
	logLevel  string
	logFormat string
	dataPath  string
	noColor   bool
)

var rootCmd = &cobra.Command{
	Use:   "dinofacts",
	Short: "Query a collection of dinosaur records",
	Long: `A small CLI for exploring dinosaur records: find the longest dinosaur,
describe one by ID, list who was alive at a given time, and pull up fun facts.

Records come from the bundled fixture, a YAML/JSON file, or a MySQL table.`,
	Version:      Version,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Config file flag
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "dinofacts.yaml",
		"Path to configuration file (optional unless set explicitly)")

	// Logging overrides
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"Override log format (json, text)")

	// Data and output overrides
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "",
		"Load records from a YAML or JSON fixture instead of the configured source")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false,
		"Disable colored output")
}

// GetConfigFile returns the config file path
func GetConfigFile() string {
	return cfgFile
}

// configRequired reports whether --config was given explicitly. Only then
// is a missing config file an error.
func configRequired() bool {
	return rootCmd.PersistentFlags().Changed("config")
}

// CLIOverrides contains flag values that override config file settings
type CLIOverrides struct {
	LogLevel  string
	LogFormat string
	DataPath  string
	NoColor   bool
}

// GetCLIOverrides returns the CLI flag override values
func GetCLIOverrides() CLIOverrides {
	return CLIOverrides{
		LogLevel:  logLevel,
		LogFormat: logFormat,
		DataPath:  dataPath,
		NoColor:   noColor,
	}
}
