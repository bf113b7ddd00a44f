/*
Copyright © 2026 Paulo Suderio
*/
package cmd

import (
	"fmt"

	"github.com/suderio/svarog/internal/command"
	"github.com/suderio/svarog/internal/persistence"

	"github.com/spf13/cobra"
)

// loadCmd represents the load command
var loadCmd = &cobra.Command{
	Use:   "load <world> <campaign>",
	Short: "Replay a campaign and print every creature",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openSession(args[0], args[1])
		if err != nil {
			return err
		}
		defer app.Close()

		out := cmd.OutOrStdout()
		state := app.State()
		fmt.Fprintf(out, "Creatures: %d\n", len(state.Creatures))
		for _, c := range state.List() {
			fmt.Fprintf(out, "- %s\n", command.DescribeCreature(c))
		}
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export <world> <campaign> <file>",
	Short: "Write the current table to a JSON or YAML snapshot",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openSession(args[0], args[1])
		if err != nil {
			return err
		}
		defer app.Close()

		if err := persistence.SaveSnapshot(args[2], persistence.NewSnapshot(app.State())); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Snapshot written to %s\n", args[2])
		return nil
	},
}

func init() {
	campaignCmd.AddCommand(loadCmd)
	campaignCmd.AddCommand(exportCmd)
}
