package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/dinofacts/internal/dinosaur"
)

var aliveKey string

var aliveCmd = &cobra.Command{
	Use:   "alive <mya>",
	Short: "List dinosaurs alive a given number of million years ago",
	Long: `Alive lists the dinosaurs that were alive <mya> million years ago, one per
line. By default each dinosaur is shown by ID; --key selects another field.
Dinosaurs missing that field are shown by ID.

A dinosaur dated to a single value also counts as alive one million years
after it.

Example:
  dinofacts alive 150
  dinofacts alive 65 --key name`,
	Args: cobra.ExactArgs(1),
	RunE: runAlive,
}

func init() {
	aliveCmd.Flags().StringVarP(&aliveKey, "key", "k", "",
		"Field to show for each dinosaur ("+strings.Join(dinosaur.Fields(), ", ")+")")
	rootCmd.AddCommand(aliveCmd)
}

func runAlive(cmd *cobra.Command, args []string) error {
	mya, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid mya %q: must be a number", args[0])
	}

	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	if aliveKey != "" {
		if _, ok := dinosaur.LookupField(aliveKey); !ok {
			a.log.Debugw("unknown key, showing IDs", "key", aliveKey)
		}
	}

	records, err := a.records(cmd.Context())
	if err != nil {
		return err
	}

	a.printer.Values(mya, dinosaur.AliveMya(records, mya, aliveKey))
	return nil
}
