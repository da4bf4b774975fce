package main

import (
	"fmt"

	"validation-sample/internal/demo"
	"validation-sample/internal/observability"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Print the demo transcript",
		Long: `Runs every sample operation in order and prints one line per result:
circle area, Fibonacci, a running total, squares, a recovered division by
zero and the calculator history.`,
		Args: cobra.NoArgs,
		RunE: a.runDemo,
	}
}

func (a *app) runDemo(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	shutdown, err := initTelemetry(ctx, a.cfg, nil)
	if err != nil {
		return fmt.Errorf("init telemetry: %w", err)
	}
	defer func() {
		if err := shutdown(ctx); err != nil {
			observability.Logger.Warn("telemetry shutdown failed", zap.Error(err))
		}
	}()

	opts := a.cfg.DemoOptions()
	opts.Now = a.now
	opts.Color = !a.noColor

	_, err = demo.NewRunner(opts, observability.Logger).Run(ctx, cmd.OutOrStdout())
	return err
}
