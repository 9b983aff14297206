package decimate

import (
	"math"

	"github.com/npillmayer/plotcore"
)

// FilterLinInterp includes every point, then repeatedly removes points
// deviating by less than one drawing unit in both axes from the line
// between their included neighbours. A pass skips the point following a
// removal; passes repeat until one removes nothing. End points are always
// kept. Markers are shown for every point.
//
// Returns the number of points removed. The FilterMinMax cache is dropped.
func (c *Curve) FilterLinInterp(at plotcore.AT) int {
	sx, sy := scales(at)
	n := c.Len()
	for i := 0; i < n; i++ {
		c.line[i], c.marker[i] = true, true
	}
	c.cache = nil
	removed, passes := 0, 0
	for {
		pass := 0
		prev := 0
		for i := 1; i < n-1; i++ {
			if !c.line[i] {
				continue
			}
			next := i + 1
			for next < n-1 && !c.line[next] {
				next++
			}
			if c.onLine(prev, i, next, sx, sy) {
				c.line[i] = false
				pass++
				prev, i = next, next
				continue
			}
			prev = i
		}
		passes++
		removed += pass
		if pass == 0 {
			break
		}
	}
	tracer().Debugf("linear interpolation removed %d of %d points in %d passes", removed, n, passes)
	return removed
}

// onLine is true if point m lies within one drawing unit of the line from
// a to b, measured at the parameter of m along the dominant axis.
func (c *Curve) onLine(a, m, b int, sx, sy float64) bool {
	dx, dy := c.tx[b]-c.tx[a], c.ty[b]-c.ty[a]
	var t float64
	switch {
	case math.Abs(dx*sx) >= math.Abs(dy*sy) && dx != 0:
		t = (c.tx[m] - c.tx[a]) / dx
	case dy != 0:
		t = (c.ty[m] - c.ty[a]) / dy
	}
	if t < 0 || t > 1 || math.IsNaN(t) {
		return false
	}
	ix, iy := c.tx[a]+t*dx, c.ty[a]+t*dy
	return math.Abs(c.tx[m]-ix)*sx < 1 && math.Abs(c.ty[m]-iy)*sy < 1
}
