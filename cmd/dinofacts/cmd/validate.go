package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/dinofacts/internal/config"
	"github.com/dbsmedya/dinofacts/internal/dinosaur"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration and dinosaur records",
	Long: `Validate checks the configuration file, loads the records from the
configured source and checks them.

Checks performed:
  - Configuration syntax and required fields
  - Record source is reachable and decodes
  - Every record has a unique ID and a positive length
  - Every mya value has one or two entries, older first

Queries never reject malformed records: a record with a bad mya is simply
never alive. Validate is how to find them.

Example:
  dinofacts validate --config dinofacts.yaml`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cmd.Printf("\n=== Configuration Validation ===\n")
	cmd.Printf("Config file: %s\n", GetConfigFile())

	a, err := newApp(cmd)
	if err != nil {
		var verrs config.ValidationErrors
		if errors.As(err, &verrs) {
			for _, e := range verrs {
				cmd.Printf("❌ %s\n", e.Error())
			}
		}
		return fmt.Errorf("configuration invalid: %w", err)
	}
	cmd.Printf("Source: %s\n", a.cfg.Data.Source)
	if a.cfg.Data.Source == config.SourceFile {
		cmd.Printf("Path: %s\n", a.cfg.Data.Path)
	}
	cmd.Printf("✅ Configuration valid\n\n")

	cmd.Printf("=== Record Checks ===\n")
	records, err := a.records(cmd.Context())
	if err != nil {
		cmd.Printf("❌ %v\n", err)
		return err
	}
	cmd.Printf("Records loaded: %d\n", len(records))

	if problems := dinosaur.Check(records); len(problems) > 0 {
		for _, p := range problems {
			cmd.Printf("❌ %s\n", p.Error())
		}
		a.log.Warnw("record check failed", "problems", len(problems))
		return fmt.Errorf("validation failed: %d record problem(s)", len(problems))
	}

	cmd.Println("✅ All records passed")
	cmd.Println("=== Validation Complete ===")
	return nil
}
