package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dbsmedya/dinofacts/internal/dinosaur"
)

var factName string

var factCmd = &cobra.Command{
	Use:   "fact",
	Short: "Show a fun fact about a random dinosaur",
	Long: `Fact picks a dinosaur at random and prints a fun fact about it.
Use --name to ask about a specific dinosaur instead.

Example:
  dinofacts fact
  dinofacts fact --name Dracorex`,
	Args: cobra.NoArgs,
	RunE: runFact,
}

func init() {
	factCmd.Flags().StringVarP(&factName, "name", "n", "",
		"Dinosaur name to look up instead of picking one at random")
	rootCmd.AddCommand(factCmd)
}

func runFact(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	if factName != "" {
		fact, ok := dinosaur.FunFact(factName)
		a.printer.Fact(factName, fact, ok)
		return nil
	}

	records, err := a.records(cmd.Context())
	if err != nil {
		return err
	}
	if len(records) == 0 {
		cmd.Println("No dinosaurs to choose from.")
		return nil
	}

	r, fact, ok := dinosaur.RandomFunFact(records, nil)
	a.log.Debugw("picked dinosaur", "id", r.ID, "name", r.Name)
	a.printer.Fact(r.Name, fact, ok)
	return nil
}
