/*
Copyright © 2026 Paulo Suderio
*/
package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/suderio/svarog/internal/persistence"
	"github.com/suderio/svarog/internal/session"

	"github.com/spf13/cobra"
)

// campaignCmd represents the campaign command
var campaignCmd = &cobra.Command{
	Use:   "campaign",
	Short: "Manage campaign logs",
	Long: `A campaign is an append-only event log stored under
<worlds_dir>/<world>/<campaign>/log.jsonl. Creature templates placed in the
campaign's or the world's creatures/ directory take precedence over the
built-in ones.`,
}

var campaignListCmd = &cobra.Command{
	Use:   "list <world>",
	Short: "List the campaigns of a world",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		names, err := manager().List(args[0])
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(campaignCmd)
	campaignCmd.AddCommand(campaignListCmd)
}

func manager() *persistence.CampaignManager {
	return persistence.NewCampaignManager(appConfig.WorldsDir)
}

// dataDirs lists template directories from most to least specific.
func dataDirs(world, campaign string) []string {
	m := manager()
	dirs := []string{m.DataDir(world, campaign), filepath.Join(m.WorldsDir, world)}
	return append(dirs, appConfig.DataDirs...)
}

// openSession loads an existing campaign and replays its log.
func openSession(world, campaign string) (*session.Session, error) {
	store, err := manager().Load(world, campaign)
	if err != nil {
		return nil, err
	}

	app, err := session.NewSession(store, session.Options{
		DataDirs:      dataDirs(world, campaign),
		DefaultTarget: appConfig.DefaultCreature,
		Logger:        appLogger.With("world", world, "campaign", campaign),
	})
	if err != nil {
		store.Close()
		return nil, err
	}
	return app, nil
}
