/*
Copyright © 2026 Paulo Suderio
*/
package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/suderio/svarog/internal/scenario"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var scenarioCmd = &cobra.Command{
	Use:   "scenario",
	Short: "Run scripted encounters against their expectations",
}

var scenarioRunCmd = &cobra.Command{
	Use:   "run <file>...",
	Short: "Run one or more scenario files",
	Long: `Each scenario spawns its creatures on an in-memory table, runs its
steps and checks every expectation. The command fails if any scenario fails.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		quiet, _ := cmd.Flags().GetBool("quiet")
		runner := &scenario.Runner{DataDirs: appConfig.DataDirs, Logger: appLogger}
		return runScenarios(cmd, runner, args, quiet)
	},
}

func init() {
	rootCmd.AddCommand(scenarioCmd)
	scenarioCmd.AddCommand(scenarioRunCmd)
	scenarioRunCmd.Flags().BoolP("quiet", "q", false, "hide the progress bar")
}

func runScenarios(cmd *cobra.Command, runner *scenario.Runner, files []string, quiet bool) error {
	var bar *progressbar.ProgressBar
	if !quiet {
		bar = progressbar.NewOptions(len(files),
			progressbar.OptionSetWriter(cmd.ErrOrStderr()),
			progressbar.OptionSetDescription("Scenarios"),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}

	var failed []error
	passed := 0
	for _, file := range files {
		res, err := runner.RunFile(cmd.Context(), file)
		switch {
		case err != nil:
			failed = append(failed, fmt.Errorf("%s: %w", file, err))
		case !res.Passed():
			failed = append(failed, fmt.Errorf("%s: %w", file, res.Error()))
		default:
			passed++
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	if bar != nil {
		_ = bar.Finish()
	}

	out := cmd.OutOrStdout()
	for _, err := range failed {
		fmt.Fprintln(out, err)
	}
	summary(out, passed, len(failed))
	if len(failed) > 0 {
		return errors.New("some scenarios failed")
	}
	return nil
}

func summary(w io.Writer, passed, failed int) {
	fmt.Fprintf(w, "%d passed, %d failed\n", passed, failed)
}
