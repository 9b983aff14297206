package decimate

import (
	"errors"
	"fmt"
	"math"

	"github.com/npillmayer/plotcore"
)

// ErrLengthMismatch is returned by NewCurve for coordinate slices of
// different length.
var ErrLengthMismatch = errors.New("x and y coordinates differ in length")

// Curve is a series of points together with the include masks of the last
// decimation.
type Curve struct {
	x, y   []float64 // data coordinates, immutable
	tx, ty []float64 // transformed coordinates
	line   []bool
	marker []bool
	region []Region
	cache  *viewCache
	bounds *Viewport // of the finite transformed points, nil if there are none
}

// viewCache holds the expanded viewport and the scales of the last
// FilterMinMax run.
type viewCache struct {
	region Viewport
	sx, sy float64
}

// NewCurve creates a curve from copies of x and y. Transformed coordinates
// start out equal to the data coordinates and every point is included.
func NewCurve(x, y []float64) (*Curve, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: %d x-values, %d y-values", ErrLengthMismatch, len(x), len(y))
	}
	n := len(x)
	c := &Curve{
		x:      append([]float64(nil), x...),
		y:      append([]float64(nil), y...),
		tx:     make([]float64, n),
		ty:     make([]float64, n),
		line:   make([]bool, n),
		marker: make([]bool, n),
		region: make([]Region, n),
	}
	c.Transform(nil, nil)
	for i := range c.line {
		c.line[i], c.marker[i] = true, true
	}
	return c, nil
}

// Len returns the number of points.
func (c *Curve) Len() int {
	return len(c.x)
}

// Point returns point i in data coordinates.
func (c *Curve) Point(i int) plotcore.Pair {
	return plotcore.P(c.x[i], c.y[i])
}

// Transformed returns point i in transformed coordinates.
func (c *Curve) Transformed(i int) plotcore.Pair {
	return plotcore.P(c.tx[i], c.ty[i])
}

// Transform recomputes the transformed coordinates, e.g. after an axis
// switched to logarithmic scale. A nil function is the identity. The
// decimation cache is dropped.
func (c *Curve) Transform(fx, fy func(float64) float64) {
	for i := range c.x {
		c.tx[i], c.ty[i] = c.x[i], c.y[i]
		if fx != nil {
			c.tx[i] = fx(c.x[i])
		}
		if fy != nil {
			c.ty[i] = fy(c.y[i])
		}
	}
	c.cache = nil
	c.bounds = nil
	x0, y0 := math.Inf(1), math.Inf(1)
	x1, y1 := math.Inf(-1), math.Inf(-1)
	for i := range c.tx {
		x, y := c.tx[i], c.ty[i]
		if !plotcore.IsFinite(x) || !plotcore.IsFinite(y) {
			continue
		}
		x0, x1 = math.Min(x0, x), math.Max(x1, x)
		y0, y1 = math.Min(y0, y), math.Max(y1, y)
	}
	if x0 <= x1 {
		b := View(x0, x1, y0, y1)
		c.bounds = &b
	}
}

// Bounds returns the bounding box of the curve in transformed coordinates.
// Points with non-finite coordinates are ignored; ok is false if no point
// is left.
func (c *Curve) Bounds() (Viewport, bool) {
	if c.bounds == nil {
		return Viewport{}, false
	}
	return *c.bounds, true
}

// Visible is true if some part of the curve's bounding box lies in view.
func (c *Curve) Visible(view Viewport) bool {
	b, ok := c.Bounds()
	return ok && view.Overlaps(b)
}

// IncludeLine is the mask of points to connect by the polyline.
func (c *Curve) IncludeLine() []bool {
	return c.line
}

// IncludeMarker is the mask of points to draw markers for.
func (c *Curve) IncludeMarker() []bool {
	return c.marker
}

// Region returns the classification of point i by the last FilterMinMax.
func (c *Curve) Region(i int) Region {
	return c.region[i]
}

// Counts returns the number of points included for line and markers.
func (c *Curve) Counts() (line, marker int) {
	for i := range c.line {
		if c.line[i] {
			line++
		}
		if c.marker[i] {
			marker++
		}
	}
	return
}

// scales returns |drawing units per data unit| for both axes of at, with 1
// substituted for degenerate scales.
func scales(at plotcore.AT) (float64, float64) {
	sx, sy := math.Abs(at.ScaleX()), math.Abs(at.ScaleY())
	if plotcore.Is0(sx) || !plotcore.IsFinite(sx) {
		tracer().Errorf("degenerate x-scale %g, using 1", at.ScaleX())
		sx = 1
	}
	if plotcore.Is0(sy) || !plotcore.IsFinite(sy) {
		tracer().Errorf("degenerate y-scale %g, using 1", at.ScaleY())
		sy = 1
	}
	return sx, sy
}
