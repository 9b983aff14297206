package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/npillmayer/plotcore/axis"
)

// layoutReport is the JSON output of the layout command.
type layoutReport struct {
	Width     float64      `json:"width"`
	Height    float64      `json:"height"`
	Converged bool         `json:"converged"`
	PlotArea  [4]float64   `json:"plot_area"`           // left, top, right, bottom
	DataArea  *[4]float64  `json:"data_area,omitempty"` // xmin, ymin, xmax, ymax of the plot area in data units
	Axes      []axisReport `json:"axes"`
}

type axisReport struct {
	Name        string       `json:"name"`
	Edge        string       `json:"edge"`
	Innermost   bool         `json:"innermost"`
	Scale       float64      `json:"scale"`
	Offset      float64      `json:"offset"`
	MarginLower float64      `json:"margin_lower"`
	MarginUpper float64      `json:"margin_upper"`
	TotalLength float64      `json:"total_length"`
	Thickness   float64      `json:"thickness"`
	Origin      [2]float64   `json:"origin"`
	Ticks       []tickReport `json:"ticks"`
}

type tickReport struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
	Shown bool    `json:"shown"`
}

// layoutCommand creates the layout command.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		width, height float64
		equal         bool
	)
	cmd := &cobra.Command{
		Use:   "layout [chart.toml]",
		Short: "Lay out the axes of a chart",
		Long: `Lay out the axes of a chart.

The chart's axes are fitted into the canvas so that no visible tick label is
clipped, and overlapping labels are hidden. Scale, offset, margins and ticks
of every axis are printed as JSON.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ch, err := loadChart(args[0])
			if err != nil {
				return err
			}
			ch.override(cmd, width, height, equal)
			report, err := runLayout(cmd.Context(), ch)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), report)
		},
	}

	cmd.Flags().Float64Var(&width, "width", 0, "canvas width (overrides chart)")
	cmd.Flags().Float64Var(&height, "height", 0, "canvas height (overrides chart)")
	cmd.Flags().BoolVar(&equal, "equal", false, "use equal scales for x and y")

	return cmd
}

// override applies command line flags given explicitly.
func (ch *chart) override(cmd *cobra.Command, width, height float64, equal bool) {
	if cmd.Flags().Changed("width") && width > 0 {
		ch.width = width
	}
	if cmd.Flags().Changed("height") && height > 0 {
		ch.height = height
	}
	if cmd.Flags().Changed("equal") {
		ch.frame.EqualAxes = equal
	}
}

// runLayout runs a frame layout pass over the chart's axes.
func runLayout(ctx context.Context, ch *chart) (*layoutReport, error) {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)
	fl, err := ch.frame.Layout(ch.width, ch.height)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	if !fl.Converged() {
		logger.Warn("labels still clipped after rescale limit", "x", fl.X.String(), "y", fl.Y.String())
	}
	prog.done("layout done", "axes", len(ch.frame.Axes), "rescales", fl.X.Rescales+fl.Y.Rescales)
	report := &layoutReport{
		Width:     fl.Width,
		Height:    fl.Height,
		Converged: fl.Converged(),
		PlotArea:  [4]float64{fl.PlotArea[0].X(), fl.PlotArea[0].Y(), fl.PlotArea[1].X(), fl.PlotArea[1].Y()},
	}
	report.DataArea = dataArea(ch.frame.Axes, fl)
	for _, a := range ch.frame.Axes {
		report.Axes = append(report.Axes, reportAxis(a))
	}
	return report, nil
}

// dataArea maps the plot area corners back to the data units of the
// innermost axes, if there is one axis per orientation.
func dataArea(axes []*axis.Axis, fl axis.FrameLayout) *[4]float64 {
	x, y := axis.Groups(axes)
	if len(x) == 0 || len(y) == 0 {
		return nil
	}
	ix, iy := x.Innermost(), y.Innermost()
	tl, ok1 := axis.CanvasToData(ix, iy, fl.PlotArea[0])
	br, ok2 := axis.CanvasToData(ix, iy, fl.PlotArea[1])
	if !ok1 || !ok2 {
		return nil
	}
	return &[4]float64{tl.X(), br.Y(), br.X(), tl.Y()}
}

func reportAxis(a *axis.Axis) axisReport {
	r := axisReport{
		Name:        a.Name,
		Edge:        a.Edge.String(),
		Innermost:   a.IsInnermost(),
		Scale:       a.Scale(),
		Offset:      a.Offset(),
		MarginLower: a.Margin().Lower,
		MarginUpper: a.Margin().Upper,
		TotalLength: a.TotalLength(),
		Thickness:   a.Thickness(),
		Origin:      [2]float64{a.Origin().X(), a.Origin().Y()},
	}
	for i, t := range a.Ticks() {
		r.Ticks = append(r.Ticks, tickReport{
			Value: a.Transform.Invert(t.Value),
			Label: a.LabelText(i),
			Shown: a.LabelShown(i),
		})
	}
	return r
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
