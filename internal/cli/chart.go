package cli

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/npillmayer/plotcore"
	"github.com/npillmayer/plotcore/axis"
	"github.com/npillmayer/plotcore/decimate"
	"github.com/npillmayer/plotcore/ticks"
)

const (
	defaultWidth      = 800 // canvas width
	defaultHeight     = 600 // canvas height
	defaultFontSize   = 10
	defaultAdvance    = 0.6 // glyph advance per font size unit
	defaultLineHeight = 1.2 // line height per font size unit
)

var errChart = errors.New("invalid chart")

// chartFile is the TOML description of a chart.
type chartFile struct {
	Width     float64      `toml:"width"`
	Height    float64      `toml:"height"`
	EqualAxes bool         `toml:"equal_axes"`
	Font      fontSpec     `toml:"font"`
	Axes      []axisSpec   `toml:"axis"`
	Series    []seriesSpec `toml:"series"`
}

type fontSpec struct {
	Family     string  `toml:"family"`
	Size       float64 `toml:"size"`
	Advance    float64 `toml:"advance"`     // fixed-pitch glyph advance per size unit
	LineHeight float64 `toml:"line_height"` // per size unit
}

type axisSpec struct {
	Name        string    `toml:"name"`
	Orientation string    `toml:"orientation"` // horizontal (default), vertical
	Edge        string    `toml:"edge"`        // bottom, top, left, right
	Min         float64   `toml:"min"`
	Max         float64   `toml:"max"`
	Ticks       *int      `toml:"ticks"`
	Log         bool      `toml:"log"`
	Title       string    `toml:"title"`
	FontSize    float64   `toml:"font_size"`
	Mirror      string    `toml:"mirror"` // name of the axis this one mirrors
	PlotLength  float64   `toml:"plot_length"`
	Override    []float64 `toml:"override"`
}

type seriesSpec struct {
	Name  string    `toml:"name"`
	XAxis string    `toml:"x_axis"` // default: first horizontal axis
	YAxis string    `toml:"y_axis"` // default: first vertical axis
	X     []float64 `toml:"x"`
	Y     []float64 `toml:"y"`
	Sine  *sineSpec `toml:"sine"`
}

type sineSpec struct {
	N         int     `toml:"n"`
	XMin      float64 `toml:"x_min"`
	XMax      float64 `toml:"x_max"`
	Amplitude float64 `toml:"amplitude"`
	Frequency float64 `toml:"frequency"`
}

// chart is a chart description turned into axes and curves.
type chart struct {
	width, height float64
	frame         *axis.Frame
	axes          map[string]*axis.Axis
	series        []*series
}

type series struct {
	name  string
	curve *decimate.Curve
	x, y  *axis.Axis
}

func loadChart(path string) (*chart, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read chart %s: %w", path, err)
	}
	ch, err := parseChart(string(data))
	if err != nil {
		return nil, fmt.Errorf("chart %s: %w", path, err)
	}
	return ch, nil
}

func parseChart(data string) (*chart, error) {
	var cf chartFile
	if _, err := toml.Decode(data, &cf); err != nil {
		return nil, err
	}
	setChartDefaults(&cf)
	ch := &chart{
		width:  cf.Width,
		height: cf.Height,
		axes:   make(map[string]*axis.Axis),
	}
	measure := axis.FixedPitch(cf.Font.Advance, cf.Font.LineHeight)
	ch.frame = axis.NewFrame(measure)
	ch.frame.EqualAxes = cf.EqualAxes
	for i, spec := range cf.Axes {
		a, err := buildAxis(spec, cf.Font)
		if err != nil {
			return nil, fmt.Errorf("axis #%d: %w", i+1, err)
		}
		if _, dup := ch.axes[a.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate axis name %q", errChart, a.Name)
		}
		ch.axes[a.Name] = a
		ch.frame.Axes = append(ch.frame.Axes, a)
	}
	for _, spec := range cf.Axes {
		if spec.Mirror == "" {
			continue
		}
		primary, ok := ch.axes[spec.Mirror]
		if !ok {
			return nil, fmt.Errorf("%w: axis %q mirrors unknown axis %q", errChart, spec.Name, spec.Mirror)
		}
		if err := axis.Link(primary, ch.axes[spec.Name]); err != nil {
			return nil, err
		}
	}
	for i, spec := range cf.Series {
		s, err := ch.buildSeries(spec)
		if err != nil {
			return nil, fmt.Errorf("series #%d: %w", i+1, err)
		}
		ch.series = append(ch.series, s)
	}
	return ch, nil
}

func setChartDefaults(cf *chartFile) {
	if cf.Width <= 0 {
		cf.Width = defaultWidth
	}
	if cf.Height <= 0 {
		cf.Height = defaultHeight
	}
	if cf.Font.Size <= 0 {
		cf.Font.Size = defaultFontSize
	}
	if cf.Font.Advance <= 0 {
		cf.Font.Advance = defaultAdvance
	}
	if cf.Font.LineHeight <= 0 {
		cf.Font.LineHeight = defaultLineHeight
	}
	for i := range cf.Axes {
		if cf.Axes[i].Name == "" {
			cf.Axes[i].Name = fmt.Sprintf("axis%d", i+1)
		}
	}
}

func buildAxis(spec axisSpec, font fontSpec) (*axis.Axis, error) {
	var o axis.Orientation
	switch strings.ToLower(spec.Orientation) {
	case "", "horizontal", "x":
		o = axis.Horizontal
	case "vertical", "y":
		o = axis.Vertical
	default:
		return nil, fmt.Errorf("%w: unknown orientation %q", errChart, spec.Orientation)
	}
	e, err := parseEdge(spec.Edge, o)
	if err != nil {
		return nil, err
	}
	a := axis.New(spec.Name, o, e)
	a.Font = axis.Font{Family: font.Family, Size: font.Size}
	if spec.FontSize > 0 {
		a.Font.Size = spec.FontSize
	}
	if spec.Log {
		a.Transform = axis.Log10
	}
	if spec.Ticks != nil {
		a.TickCount = *spec.Ticks
	}
	a.Title = spec.Title
	a.PlotLength = spec.PlotLength
	if len(spec.Override) > 0 {
		values := spec.Override
		if spec.Log {
			values = make([]float64, 0, len(spec.Override))
			for _, v := range spec.Override {
				if v > 0 {
					values = append(values, math.Log10(v))
				}
			}
		}
		a.Overrides = ticks.NewOverrides(values)
	}
	if spec.Mirror != "" && spec.Min == 0 && spec.Max == 0 {
		return a, nil // range comes from the primary axis
	}
	r := plotcore.Range{Min: spec.Min, Max: spec.Max}
	if !a.SetRange(r) {
		return nil, fmt.Errorf("%w: axis %q: %v", errChart, spec.Name, plotcore.ValidateRange(r, spec.Log))
	}
	return a, nil
}

func parseEdge(s string, o axis.Orientation) (axis.Edge, error) {
	var e axis.Edge
	switch strings.ToLower(s) {
	case "":
		if o == axis.Vertical {
			return axis.Left, nil
		}
		return axis.Bottom, nil
	case "bottom":
		e = axis.Bottom
	case "top":
		e = axis.Top
	case "left":
		e = axis.Left
	case "right":
		e = axis.Right
	default:
		return axis.Bottom, fmt.Errorf("%w: unknown edge %q", errChart, s)
	}
	if vertical := e == axis.Left || e == axis.Right; vertical != (o == axis.Vertical) {
		return e, fmt.Errorf("%w: %s axis cannot sit at %s edge", errChart, o, e)
	}
	return e, nil
}

func (ch *chart) buildSeries(spec seriesSpec) (*series, error) {
	s := &series{name: spec.Name}
	var err error
	if s.x, err = ch.seriesAxis(spec.XAxis, axis.Horizontal); err != nil {
		return nil, err
	}
	if s.y, err = ch.seriesAxis(spec.YAxis, axis.Vertical); err != nil {
		return nil, err
	}
	x, y := spec.X, spec.Y
	if spec.Sine != nil {
		x, y = spec.Sine.points()
	}
	if s.curve, err = decimate.NewCurve(x, y); err != nil {
		return nil, err
	}
	s.curve.Transform(s.x.Transform.Apply, s.y.Transform.Apply)
	return s, nil
}

// seriesAxis finds the named axis, or the first one with orientation o.
func (ch *chart) seriesAxis(name string, o axis.Orientation) (*axis.Axis, error) {
	if name != "" {
		a, ok := ch.axes[name]
		if !ok {
			return nil, fmt.Errorf("%w: unknown axis %q", errChart, name)
		}
		return a, nil
	}
	for _, a := range ch.frame.Axes {
		if a.Orientation == o {
			return a, nil
		}
	}
	return nil, fmt.Errorf("%w: no %s axis for series", errChart, o)
}

func (s *sineSpec) points() ([]float64, []float64) {
	n := s.N
	if n < 2 {
		n = 2
	}
	amp, freq := s.Amplitude, s.Frequency
	if amp == 0 {
		amp = 1
	}
	if freq == 0 {
		freq = 1
	}
	x := make([]float64, n)
	y := make([]float64, n)
	for i := range x {
		x[i] = s.XMin + (s.XMax-s.XMin)*float64(i)/float64(n-1)
		y[i] = amp * math.Sin(freq*x[i])
	}
	return x, y
}
