/*
Copyright © 2026 Paulo Suderio
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// createCmd represents the create command
var createCmd = &cobra.Command{
	Use:   "create <world> <campaign>",
	Short: "Create a new campaign log in a world",
	Long: `Bootstraps an empty log.jsonl and a creatures/ template directory
under <worlds_dir>/<world>/<campaign>.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		m := manager()
		store, err := m.Create(args[0], args[1])
		if err != nil {
			return fmt.Errorf("failed to create campaign: %w", err)
		}
		defer store.Close()

		appLogger.Info("campaign created", "world", args[0], "campaign", args[1])
		fmt.Fprintf(cmd.OutOrStdout(), "Log file stored at: %s\n", m.GetLogPath(args[0], args[1]))
		return nil
	},
}

func init() {
	campaignCmd.AddCommand(createCmd)
}
