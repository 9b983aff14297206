package decimate

import (
	"math"

	"github.com/npillmayer/plotcore"
)

// Window sizes of the min–max filter, in drawing units, and the relative
// scale change which invalidates a previous run.
var (
	TightWindow      = 0.25
	LooseWindow      = 0.75
	RescaleThreshold = 0.1
)

// FilterMinMax computes the include masks for drawing c through transform
// at into viewport view. view is given in transformed data coordinates;
// at maps them to drawing coordinates.
//
// The viewport is enlarged by a soft margin (see MinSoftMargin). If a later
// call's viewport lies within the enlarged one of the previous run and
// neither scale changed by more than RescaleThreshold, the masks are kept
// and FilterMinMax returns false.
//
// Points inside the enlarged viewport get a marker. Runs of points outside
// it on the same side are collapsed to their first and last point. Runs
// inside are reduced to the extremal points of windows about LooseWindow
// drawing units wide, plus the window starts and their successors.
func (c *Curve) FilterMinMax(at plotcore.AT, view Viewport) bool {
	sx, sy := scales(at)
	if c.cached(view, sx, sy) {
		tracer().Debugf("decimation cache hit for %s", view)
		return false
	}
	region := view.expand(sx, sy)
	c.cache = &viewCache{region: region, sx: sx, sy: sy}
	n := c.Len()
	for i := 0; i < n; i++ {
		c.region[i] = region.classify(c.tx[i], c.ty[i])
		c.marker[i] = c.region[i] == Inside
		c.line[i] = false
	}
	if n == 1 {
		c.line[0] = c.region[0] != Undefined
		return true
	}
	tight := [2]float64{TightWindow / sx, TightWindow / sy}
	loose := [2]float64{LooseWindow / sx, LooseWindow / sy}
	for s := 0; s < n; {
		e := s
		for e+1 < n && c.region[e+1] == c.region[s] {
			e++
		}
		switch c.region[s] {
		case Inside:
			c.minMax(s, e, tight, loose)
		case Undefined:
		default:
			c.line[s] = s > 0
			c.line[e] = c.line[e] || e < n-1
		}
		s = e + 1
	}
	lines, markers := c.Counts()
	tracer().Debugf("decimated %d points in %s to %d line points, %d markers", n, region, lines, markers)
	return true
}

func (c *Curve) cached(view Viewport, sx, sy float64) bool {
	if c.cache == nil || !c.cache.region.covers(view) {
		return false
	}
	return math.Abs(sx-c.cache.sx) <= RescaleThreshold*c.cache.sx &&
		math.Abs(sy-c.cache.sy) <= RescaleThreshold*c.cache.sy
}

// minMax decimates the run [s, e] of inside points.
func (c *Curve) minMax(s, e int, tight, loose [2]float64) {
	anchor := s
	for anchor < e {
		c.line[anchor], c.line[anchor+1] = true, true
		w := newWindow(anchor, c.tx[anchor], c.ty[anchor])
		k := anchor + 1
		for ; k <= e; k++ {
			w.add(k, c.tx[k], c.ty[k])
			dx, dy := w.spans()
			if dx <= tight[0] && dy <= tight[1] {
				continue
			}
			if dx > loose[0] && dy > loose[1] {
				break
			}
		}
		w.emit(c.line)
		if k > e {
			break
		}
		anchor = k
	}
	c.line[e] = true
}

// window tracks the points with extremal coordinates since an anchor. On
// ties the earliest point wins.
type window struct {
	minX, maxX, minY, maxY int
	x0, x1, y0, y1         float64
}

func newWindow(i int, x, y float64) *window {
	return &window{i, i, i, i, x, x, y, y}
}

func (w *window) add(i int, x, y float64) {
	if x < w.x0 {
		w.minX, w.x0 = i, x
	}
	if x > w.x1 {
		w.maxX, w.x1 = i, x
	}
	if y < w.y0 {
		w.minY, w.y0 = i, y
	}
	if y > w.y1 {
		w.maxY, w.y1 = i, y
	}
}

func (w *window) spans() (float64, float64) {
	return w.x1 - w.x0, w.y1 - w.y0
}

func (w *window) emit(mask []bool) {
	mask[w.minX] = true
	mask[w.maxX] = true
	mask[w.minY] = true
	mask[w.maxY] = true
}
