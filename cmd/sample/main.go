// Command sample runs the sample operations, either as a one-shot transcript
// on stdout or behind the HTTP API.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"validation-sample/internal/config"
	"validation-sample/internal/observability"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// app carries flag values and the loaded config between commands.
type app struct {
	configPath string
	envFile    string
	noColor    bool

	cfg *config.Config
	now func() time.Time
}

func main() {
	root := newRootCmd()
	if !noColorDefault() {
		root.SetOut(colorable.NewColorableStdout())
	}

	if err := root.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// noColorDefault disables color when stdout is not a terminal.
func noColorDefault() bool {
	return !isatty.IsTerminal(os.Stdout.Fd()) || os.Getenv("TERM") == "dumb"
}

func newRootCmd() *cobra.Command {
	a := &app{now: time.Now}

	root := &cobra.Command{
		Use:   "sample",
		Short: "Run the sample operations",
		Long: `Runs circle area, Fibonacci and calculator operations and prints a
transcript of the results. With no subcommand it behaves like "sample run".`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) { observability.SyncLogger() },
		RunE:              a.runDemo,
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", config.DefaultPath, "path to the YAML config file")
	root.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "dotenv file loaded before the config")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", noColorDefault(), "disable colored output")

	root.AddCommand(
		newRunCmd(a),
		newServeCmd(a),
		newAreaCmd(a),
		newFibCmd(a),
	)

	return root
}

// setup loads .env, the config file and the logger before any command runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := loadDotEnv(a.envFile); err != nil {
		return err
	}

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	a.cfg = cfg

	if err := observability.InitLogger(cfg.Logging.Level, cfg.Logging.Development); err != nil {
		return err
	}

	return nil
}
