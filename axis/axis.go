package axis

import (
	"math"

	"github.com/npillmayer/plotcore"
	"github.com/npillmayer/plotcore/ticks"
)

// Margin is the drawing length reserved at the lower and upper end of an
// axis, outside of the data extent.
type Margin struct {
	Lower, Upper float64
}

// Total returns Lower + Upper.
func (m Margin) Total() float64 {
	return m.Lower + m.Upper
}

// Axis is the layout state of a single axis. Exported fields configure the
// axis; scale, offset, margins and ticks are results of a layout pass.
type Axis struct {
	Name        string
	Orientation Orientation
	Edge        Edge
	Transform   GraphTransform
	TickCount   int              // target number of ticks, 0 for none
	TickLength  float64          // tick mark length, part of the thickness
	Font        Font             // tick label font
	Title       string           // axis title, may be empty
	TitleFont   Font             // font for Title; zero means Font
	Format      Formatter        // tick label text; nil selects a default
	Overrides   *ticks.Overrides // explicit tick values, in transformed coordinates
	PlotLength  float64          // fixed data extent in drawing units; 0 for none

	rng  plotcore.Range
	link *rangeLink

	scale, offset float64
	margin        Margin
	totalLength   float64
	ticks         []ticks.Tick
	labelVisible  []bool
	innermost     bool
	thickness     float64
	origin        plotcore.Pair
	labels        labelArena
}

// New creates an axis with range [0,1], 10 ticks and a 10-unit font.
// An edge not matching the orientation is replaced by the orientation's
// default edge (Bottom, Left).
func New(name string, o Orientation, e Edge) *Axis {
	if o == nil {
		o = Horizontal
	}
	if !o.accepts(e) {
		tracer().Errorf("axis %s: %s axis cannot sit at %s edge", name, o, e)
		e = Bottom
		if o == Vertical {
			e = Left
		}
	}
	a := &Axis{
		Name:        name,
		Orientation: o,
		Edge:        e,
		Transform:   Linear,
		TickCount:   10,
		TickLength:  4,
		Font:        Font{Size: 10},
		rng:         plotcore.R(0, 1),
		scale:       1,
		totalLength: 1,
	}
	a.offset = a.scale*a.tmin() - a.margin.Lower
	return a
}

// Range returns the data range of the axis.
func (a *Axis) Range() plotcore.Range {
	return a.rng
}

// SetRange sets the data range. Invalid ranges (see plotcore.ValidateRange,
// with positive bounds required for logarithmic axes) are ignored, the
// previous range stays in effect and false is returned. If the axis is
// linked to a mirror axis, the range must be valid for both.
func (a *Axis) SetRange(r plotcore.Range) bool {
	if err := a.validate(r); err != nil {
		tracer().Infof("axis %s keeps range %s: %v", a.Name, a.rng, err)
		return false
	}
	if a.link != nil {
		return a.link.set(a, r)
	}
	a.rng = r
	return true
}

func (a *Axis) validate(r plotcore.Range) error {
	return plotcore.ValidateRange(r, a.transform().Positive())
}

func (a *Axis) transform() GraphTransform {
	if a.Transform == nil {
		return Linear
	}
	return a.Transform
}

// TransformedRange is the range in transformed coordinates.
func (a *Axis) TransformedRange() plotcore.Range {
	t := a.transform()
	return plotcore.Range{Min: t.Apply(a.rng.Min), Max: t.Apply(a.rng.Max)}
}

func (a *Axis) tmin() float64 {
	return a.transform().Apply(a.rng.Min)
}

// tlen is the transformed length of the range, 1 for empty ranges.
func (a *Axis) tlen() float64 {
	if l := a.TransformedRange().Len(); l > 0 {
		return l
	}
	return 1
}

// Scale is the factor from transformed data units to drawing units.
func (a *Axis) Scale() float64 { return a.scale }

// Offset is subtracted after scaling: c = T(v)·scale − offset.
func (a *Axis) Offset() float64 { return a.offset }

// Margin returns the reserved lengths at both ends.
func (a *Axis) Margin() Margin { return a.margin }

// TotalLength is the drawing length of the axis including margins.
func (a *Axis) TotalLength() float64 { return a.totalLength }

// DataLength is the drawing length of the data extent.
func (a *Axis) DataLength() float64 { return a.totalLength - a.margin.Total() }

// Thickness is the space taken perpendicular to the axis by tick marks,
// labels and title.
func (a *Axis) Thickness() float64 { return a.thickness }

// IsInnermost is true for the axis nearest to the plot area on its edge.
func (a *Axis) IsInnermost() bool { return a.innermost }

// Origin is the canvas point where the axis line starts.
func (a *Axis) Origin() plotcore.Pair { return a.origin }

// Ticks returns the ticks of the last layout pass, in transformed
// coordinates.
func (a *Axis) Ticks() []ticks.Tick { return a.ticks }

// LabelShown is true if the label of tick i is visible.
func (a *Axis) LabelShown(i int) bool {
	_, shown := a.label(i)
	return shown
}

// LabelVisible returns the visibility flags parallel to Ticks.
func (a *Axis) LabelVisible() []bool {
	v := make([]bool, len(a.ticks))
	for i := range v {
		v[i] = a.LabelShown(i)
	}
	return v
}

// LabelText returns the label text of tick i.
func (a *Axis) LabelText(i int) string {
	s, _ := a.labels.slot(i)
	return s.text
}

// Position maps a data value to its drawing coordinate along the axis.
func (a *Axis) Position(v float64) float64 {
	return a.transform().Apply(v)*a.scale - a.offset
}

func (a *Axis) tickPosition(i int) float64 {
	return a.ticks[i].Value*a.scale - a.offset
}

// fraction of the data extent below transformed value t, clamped to [0,1].
func (a *Axis) fraction(t float64) float64 {
	f := (t - a.tmin()) / a.tlen()
	return math.Max(0, math.Min(1, f))
}

// CanvasTransform maps transformed data values to canvas coordinates in
// this axis' dimension.
func (a *Axis) CanvasTransform() plotcore.AT {
	return a.Orientation.GraphToCanvas(a.scale, a.offset, a.totalLength, a.origin)
}

// TickAnchor is the canvas point of tick i on the axis line.
func (a *Axis) TickAnchor(i int) plotcore.Pair {
	return a.Orientation.TickAnchorPoint(a.tickPosition(i), a.totalLength, a.origin)
}

// applyGeometry sets the data extent to d drawing units and the margins to
// m, keeping the data minimum at drawing coordinate m.Lower.
func (a *Axis) applyGeometry(d float64, m Margin) {
	a.margin = m
	a.scale = d / a.tlen()
	a.totalLength = m.Lower + d + m.Upper
	a.offset = a.scale*a.tmin() - m.Lower
}

// === Ticks and labels ======================================================

func (a *Axis) format(t ticks.Tick) string {
	if a.Format != nil {
		return a.Format(t)
	}
	if a.transform().Positive() {
		return ticks.FormatDecade(t)
	}
	return ticks.Format(t)
}

// updateTicks regenerates the ticks inside the current range.
func (a *Axis) updateTicks() {
	tr := a.TransformedRange()
	if a.Overrides != nil {
		a.ticks = a.Overrides.Ticks(tr)
		return
	}
	tol := ticks.RelTolerance * a.tlen()
	all := ticks.Generate(tr, a.TickCount)
	a.ticks = a.ticks[:0]
	for _, t := range all {
		if tr.Contains(t.Value, tol) {
			a.ticks = append(a.ticks, t)
		}
	}
}

// measureLabels formats and measures the label of every tick and shows all
// non-empty ones. Slots beyond the tick count go stale.
func (a *Axis) measureLabels(m Measurer) {
	a.labels.beginPass()
	if cap(a.labelVisible) < len(a.ticks) {
		a.labelVisible = make([]bool, len(a.ticks))
	}
	a.labelVisible = a.labelVisible[:len(a.ticks)]
	for i, t := range a.ticks {
		s := a.labels.measure(i, a.format(t), a.Font, m)
		a.labelVisible[i] = s.text != ""
	}
	tracer().Debugf("axis %s: %d labels live, %d slots", a.Name, a.labels.live(), a.labels.capacity())
}

// label returns the label of tick i and whether it is shown.
func (a *Axis) label(i int) (labelSlot, bool) {
	if i < 0 || i >= len(a.ticks) || i >= len(a.labelVisible) {
		return labelSlot{}, false
	}
	s, live := a.labels.slot(i)
	return s, live && a.labelVisible[i] && s.text != ""
}

// halfExtent is half the label size of tick i along the axis.
func (a *Axis) halfExtent(i int) float64 {
	s, _ := a.labels.slot(i)
	return a.Orientation.Along(s.width, s.height) / 2
}

// cullLabels hides labels overlapping their neighbours at the current
// scale, see Cull.
func (a *Axis) cullLabels() {
	n := len(a.ticks)
	centers := make([]float64, n)
	halves := make([]float64, n)
	for i := 0; i < n; i++ {
		centers[i] = a.tickPosition(i)
		halves[i] = a.halfExtent(i)
	}
	vis := Cull(centers, halves)
	for i := range vis {
		_, shown := a.label(i)
		a.labelVisible[i] = vis[i] && shown
	}
}

// computeThickness sums tick length, the largest shown label across the
// axis and the title height.
func (a *Axis) computeThickness(m Measurer) {
	across := 0.0
	for i := range a.ticks {
		if s, shown := a.label(i); shown {
			across = math.Max(across, a.Orientation.Across(s.width, s.height))
		}
	}
	a.thickness = a.TickLength + across
	if a.Title != "" {
		font := a.TitleFont
		if font == (Font{}) {
			font = a.Font
		}
		_, h := m(a.Title, font)
		a.thickness += h
	}
}
