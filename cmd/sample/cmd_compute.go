package main

import (
	"fmt"
	"math"
	"strconv"

	"validation-sample/internal/fibonacci"
	"validation-sample/internal/geometry"

	"github.com/spf13/cobra"
)

// newAreaCmd prints a circle area. Without an argument it uses the
// configured demo radius.
func newAreaCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "area [radius]",
		Short: "Print the area of a circle",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			radius := a.cfg.Demo.Radius
			if len(args) == 1 {
				var err error
				if radius, err = strconv.ParseFloat(args[0], 64); err != nil {
					return fmt.Errorf("radius: %w", err)
				}
			}

			area := geometry.CircleArea(radius)
			if math.IsNaN(area) || math.IsInf(area, 0) {
				return fmt.Errorf("radius %g: result out of range", radius)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Area of circle with radius %s: %s\n",
				strconv.FormatFloat(radius, 'f', -1, 64),
				strconv.FormatFloat(area, 'f', -1, 64))
			return nil
		},
	}
}

// newFibCmd prints a Fibonacci number. Without an argument it uses the
// configured demo n.
func newFibCmd(a *app) *cobra.Command {
	var method string

	cmd := &cobra.Command{
		Use:   "fib [n]",
		Short: "Print the nth Fibonacci number",
		Example: `  sample fib 6
  sample fib 90 --method iterative`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n := a.cfg.Demo.Fibonacci
			if len(args) == 1 {
				var err error
				if n, err = strconv.Atoi(args[0]); err != nil {
					return fmt.Errorf("n: %w", err)
				}
			}

			result, err := fibonacci.Compute(method, n)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Fibonacci(%d) = %d\n", n, result)
			return nil
		},
	}

	cmd.Flags().StringVar(&method, "method", fibonacci.MethodRecursive, "recursive or iterative")

	return cmd
}
