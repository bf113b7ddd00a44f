/*
Copyright © 2026 Paulo Suderio
*/
package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/suderio/svarog/internal/session"

	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl <world> <campaign>",
	Short: "Start the interactive shell",
	Long: `Starts the read-eval-print loop on a campaign. Commands may be
separated by ';'. Example:
	> spawn grunk as: goblin; chip 1d6 to: grunk`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openSession(args[0], args[1])
		if err != nil {
			return err
		}
		defer app.Close()

		if plain, _ := cmd.Flags().GetBool("plain"); plain {
			return runPlain(app, cmd.InOrStdin(), cmd.OutOrStdout())
		}
		return RunTUI(app, args[0], args[1])
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
	replCmd.Flags().Bool("plain", false, "read commands line by line without the full-screen interface")
}

// runPlain executes every line of in until EOF or exit.
func runPlain(app *session.Session, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	fmt.Fprint(out, "> ")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "exit" || line == "quit" {
			return nil
		}
		if line != "" {
			fmt.Fprint(out, runLine(app, line))
		}
		fmt.Fprint(out, "> ")
	}
	return scanner.Err()
}

// runLine executes a line and renders its messages, or the error that
// stopped it.
func runLine(app *session.Session, line string) string {
	var sb strings.Builder
	events, err := app.ExecuteScript(line)
	for _, evt := range events {
		if msg := evt.Message(); msg != "" {
			sb.WriteString(msg + "\n")
		}
	}
	if err != nil {
		sb.WriteString(fmt.Sprintf("Error: %v\n", err))
	}
	return sb.String()
}
