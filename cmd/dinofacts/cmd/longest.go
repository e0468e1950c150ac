package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dbsmedya/dinofacts/internal/dinosaur"
)

var longestCmd = &cobra.Command{
	Use:   "longest",
	Short: "Show the longest dinosaur",
	Long: `Longest finds the dinosaur with the greatest length and prints its
length in feet. Ties go to the first record in source order.

Example:
  dinofacts longest`,
	Args: cobra.NoArgs,
	RunE: runLongest,
}

func init() {
	rootCmd.AddCommand(longestCmd)
}

func runLongest(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	records, err := a.records(cmd.Context())
	if err != nil {
		return err
	}

	a.printer.Longest(dinosaur.Longest(records))
	return nil
}
