/*
Copyright © 2026 Paulo Suderio
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/suderio/svarog/internal/config"
	"github.com/suderio/svarog/internal/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile   string
	appConfig = config.Default()
	appLogger = slog.Default()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "svarog",
	Short: "Hit-dice health tracker for tabletop encounters",
	Long: `svarog keeps the health of every creature on the table as a row of
hit dice. Damage spills from the rightmost die, healing from the leftmost,
and status tags such as fortified, guarded or temporary change how each
die reacts.

Every change is appended to a campaign log and replayed on load.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/svarog/config.yaml)")
	rootCmd.PersistentFlags().String("worlds-dir", "", "directory holding the worlds (default ./worlds)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn or error")

	_ = viper.BindPFlag("worlds_dir", rootCmd.PersistentFlags().Lookup("worlds-dir"))
	_ = viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
}

// initConfig reads in config file and ENV variables, then builds the logger.
func initConfig() error {
	cfg, err := config.LoadWith(viper.GetViper(), cfgFile)
	if err != nil {
		return err
	}

	log, err := logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		return err
	}

	appConfig = cfg
	appLogger = log
	slog.SetDefault(log)
	appLogger.Debug("configuration loaded", "worlds_dir", cfg.WorldsDir, "data_dirs", cfg.DataDirs)
	return nil
}
