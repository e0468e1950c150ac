package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dbsmedya/dinofacts/internal/dinosaur"
)

var describeCmd = &cobra.Command{
	Use:   "describe <id>",
	Short: "Describe a dinosaur by ID",
	Long: `Describe prints the name, pronunciation, description and era of the
dinosaur with the given ID. An unknown ID prints a not-found message.

Example:
  dinofacts describe U9vuZmgKwUr`,
	Args: cobra.ExactArgs(1),
	RunE: runDescribe,
}

func init() {
	rootCmd.AddCommand(describeCmd)
}

func runDescribe(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	records, err := a.records(cmd.Context())
	if err != nil {
		return err
	}

	a.printer.Description(dinosaur.Describe(records, args[0]))
	return nil
}
