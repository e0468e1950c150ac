package cmd

import (
	"github.com/spf13/cobra"
)

var listFacts bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all dinosaur records",
	Long: `List displays every dinosaur record from the configured source as a
table of ID, name, length, period and mya.

With --facts, lists the dinosaur names that have a fun fact instead.

Example:
  dinofacts list --data dinosaurs.json`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&listFacts, "facts", false,
		"List the names that have a fun fact")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	if listFacts {
		a.printer.FactNames()
		return nil
	}

	records, err := a.records(cmd.Context())
	if err != nil {
		return err
	}

	if len(records) == 0 {
		cmd.Printf("No dinosaurs found in %s source\n", a.cfg.Data.Source)
		return nil
	}

	a.printer.Table(records)
	return nil
}
