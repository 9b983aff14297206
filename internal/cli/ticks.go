package cli

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/npillmayer/plotcore"
	"github.com/npillmayer/plotcore/ticks"
)

// ticksCommand creates the ticks command.
func (c *CLI) ticksCommand() *cobra.Command {
	var (
		lo, hi   float64
		count    int
		logScale bool
	)
	cmd := &cobra.Command{
		Use:   "ticks",
		Short: "Print the ticks generated for a range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := plotcore.R(lo, hi)
			if err := plotcore.ValidateRange(r, logScale); err != nil {
				return err
			}
			format := ticks.Format
			if logScale {
				r = plotcore.R(math.Log10(r.Min), math.Log10(r.Max))
				format = ticks.FormatDecade
			}
			ts := ticks.Generate(r, count)
			loggerFromContext(cmd.Context()).Debug("generated ticks", "range", r.String(), "count", len(ts))
			w := cmd.OutOrStdout()
			for _, t := range ts {
				if _, err := fmt.Fprintf(w, "%g\t%s\n", t.Value, format(t)); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&lo, "min", 0, "range minimum")
	cmd.Flags().Float64Var(&hi, "max", 1, "range maximum")
	cmd.Flags().IntVarP(&count, "count", "n", 10, "target number of ticks")
	cmd.Flags().BoolVar(&logScale, "log", false, "generate decades of a logarithmic axis")

	return cmd
}
