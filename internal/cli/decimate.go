package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/npillmayer/plotcore/axis"
	"github.com/npillmayer/plotcore/decimate"
)

// seriesReport is the JSON output of the decimate command, per series.
type seriesReport struct {
	Name    string `json:"name"`
	Points  int    `json:"points"`
	Line    int    `json:"line"`
	Markers int    `json:"markers"`
	Visible bool   `json:"visible"` // some part of the series lies in the view
}

// decimateCommand creates the decimate command.
func (c *CLI) decimateCommand() *cobra.Command {
	var (
		width, height float64
		linear        bool
	)
	cmd := &cobra.Command{
		Use:   "decimate [chart.toml]",
		Short: "Decimate the series of a chart for its visible range",
		Long: `Decimate the series of a chart for its visible range.

The chart is laid out first. Each series is then reduced to the points needed
to draw it at the resulting scale, and the number of points kept for the
polyline and for markers is printed as JSON.

With --linear, points on straight line segments are removed instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ch, err := loadChart(args[0])
			if err != nil {
				return err
			}
			ch.override(cmd, width, height, false)
			reports, err := runDecimate(cmd.Context(), ch, linear)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), reports)
		},
	}

	cmd.Flags().Float64Var(&width, "width", 0, "canvas width (overrides chart)")
	cmd.Flags().Float64Var(&height, "height", 0, "canvas height (overrides chart)")
	cmd.Flags().BoolVar(&linear, "linear", false, "remove points on straight segments instead of min-max decimation")

	return cmd
}

func runDecimate(ctx context.Context, ch *chart, linear bool) ([]seriesReport, error) {
	logger := loggerFromContext(ctx)
	if _, err := runLayout(ctx, ch); err != nil {
		return nil, err
	}
	if len(ch.series) == 0 {
		logger.Warn("chart has no series")
	}
	reports := make([]seriesReport, 0, len(ch.series))
	for _, s := range ch.series {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		prog := newProgress(logger)
		at := axis.CurveTransform(s.x, s.y)
		view := decimate.ViewOf(s.x.TransformedRange(), s.y.TransformedRange())
		visible := s.curve.Visible(view)
		if !visible {
			logger.Warn("series lies outside the visible range", "series", s.name, "view", view.String())
		}
		if linear {
			s.curve.FilterLinInterp(at)
		} else {
			s.curve.FilterMinMax(at, view)
		}
		lines, markers := s.curve.Counts()
		prog.done(fmt.Sprintf("decimated %s", s.name), "points", s.curve.Len(), "line", lines)
		reports = append(reports, seriesReport{
			Name:    s.name,
			Points:  s.curve.Len(),
			Line:    lines,
			Markers: markers,
			Visible: visible,
		})
	}
	return reports, nil
}
