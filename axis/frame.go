package axis

import (
	"errors"
	"fmt"

	"github.com/npillmayer/plotcore"
)

// ErrNoMeasurer is returned by Frame.Layout if no label Measurer is set.
var ErrNoMeasurer = errors.New("frame has no label measurer")

// Frame is the set of axes around one plot area.
type Frame struct {
	Axes      []*Axis
	Measurer  Measurer
	EqualAxes bool // one data unit covers the same length in x and y
}

// NewFrame creates a frame for axes.
func NewFrame(m Measurer, axes ...*Axis) *Frame {
	return &Frame{Axes: axes, Measurer: m}
}

// FrameLayout is the result of a frame layout pass, in canvas coordinates.
type FrameLayout struct {
	Width, Height float64
	X, Y          Result           // zero Result for a missing group
	PlotArea      [2]plotcore.Pair // top left and bottom right corner
	Thickness     [4]float64       // summed axis thickness, indexed by Edge
}

// Converged is true if both groups were fitted.
func (fl FrameLayout) Converged() bool {
	return (fl.X.Converged || fl.X.TotalLength == 0) && (fl.Y.Converged || fl.Y.TotalLength == 0)
}

// Groups splits axes into a horizontal and a vertical group and flags the
// first axis on each edge as innermost.
func Groups(axes []*Axis) (x, y Group) {
	var seen [4]bool
	for _, a := range axes {
		a.innermost = !seen[a.Edge]
		seen[a.Edge] = true
		if a.Orientation == Vertical {
			y = append(y, a)
		} else {
			x = append(x, a)
		}
	}
	return
}

// Layout fits the frame's axes into a canvas of width × height.
//
// The first round measures every tick label, solves both groups and culls
// overlapping labels. The second round solves again with the reduced set of
// labels and final axis thicknesses.
func (f *Frame) Layout(width, height float64) (FrameLayout, error) {
	fl := FrameLayout{Width: width, Height: height}
	if f.Measurer == nil {
		return fl, ErrNoMeasurer
	}
	x, y := Groups(f.Axes)
	for _, a := range f.Axes {
		a.updateTicks()
		a.measureLabels(f.Measurer)
		a.computeThickness(f.Measurer)
	}
	if err := f.solve(&fl, x, y); err != nil {
		return fl, err
	}
	for _, a := range f.Axes {
		a.cullLabels()
		a.computeThickness(f.Measurer)
	}
	if err := f.solve(&fl, x, y); err != nil {
		return fl, err
	}
	f.place(&fl, x, y)
	tracer().Infof("frame %.0f×%.0f: x %s, y %s", width, height, fl.X, fl.Y)
	return fl, nil
}

func (f *Frame) solve(fl *FrameLayout, x, y Group) (err error) {
	fl.Thickness = [4]float64{}
	for _, a := range f.Axes {
		fl.Thickness[a.Edge] += a.thickness
	}
	xAvail := fl.Width - fl.Thickness[Left] - fl.Thickness[Right]
	yAvail := fl.Height - fl.Thickness[Bottom] - fl.Thickness[Top]
	if f.EqualAxes && len(x) > 0 && len(y) > 0 {
		fl.X, fl.Y, err = LayoutEqual(x, y, xAvail, yAvail)
		return wrapFrameErr(err)
	}
	if len(x) > 0 {
		if fl.X, err = Layout(x, xAvail, x.plotLength()); err != nil {
			return wrapFrameErr(err)
		}
	}
	if len(y) > 0 {
		if fl.Y, err = Layout(y, yAvail, y.plotLength()); err != nil {
			return wrapFrameErr(err)
		}
	}
	return nil
}

func wrapFrameErr(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("frame layout: %w", err)
}

// place sets the axis origins. Axes on the same edge are stacked outward in
// the order they were given.
func (f *Frame) place(fl *FrameLayout, x, y Group) {
	left, top := fl.Thickness[Left], fl.Thickness[Top]
	w, h := fl.X.TotalLength, fl.Y.TotalLength
	if len(x) == 0 {
		w = fl.Width - left - fl.Thickness[Right]
	}
	if len(y) == 0 {
		h = fl.Height - top - fl.Thickness[Bottom]
	}
	fl.PlotArea = [2]plotcore.Pair{plotcore.P(left, top), plotcore.P(left+w, top+h)}
	var stack [4]float64
	for _, a := range f.Axes {
		base := plotcore.P(left, top)
		switch a.Edge {
		case Bottom:
			base = plotcore.P(left, top+h)
		case Right:
			base = plotcore.P(left+w, top)
		}
		d, out := stack[a.Edge], a.Edge.Outward()
		a.origin = base.Shifted(plotcore.P(d*out.X(), d*out.Y()))
		stack[a.Edge] += a.thickness
	}
}

// CurveTransform maps transformed data coordinates of a curve plotted
// against axes x and y to canvas coordinates.
func CurveTransform(x, y *Axis) plotcore.AT {
	return x.CanvasTransform().Combine(y.CanvasTransform())
}

// CanvasToData maps canvas point p back to data coordinates of axes x and y,
// undoing CurveTransform and the axes' graph transforms. It fails if the
// combined transform is singular.
func CanvasToData(x, y *Axis, p plotcore.Pair) (plotcore.Pair, bool) {
	inv, ok := CurveTransform(x, y).Invert()
	if !ok {
		return plotcore.Origin, false
	}
	t := inv.Transform(p)
	return plotcore.P(x.transform().Invert(t.X()), y.transform().Invert(t.Y())), true
}
