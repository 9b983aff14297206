package axis

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// Layout tolerances and limits. Adjust before running layout passes.
var (
	ClipTolerance = 0.1 // labels may overhang the axis ends by this much
	MaxRescales   = 10  // ceiling of rescale steps per group
	MinPlotLength = 1.0 // floor for the data extent in drawing units
)

// ErrEmptyGroup is returned when laying out a group without axes.
var ErrEmptyGroup = errors.New("axis group is empty")

// ErrNoLength is returned if neither an available length nor a plot length
// is given.
var ErrNoLength = errors.New("no drawing length for axis group")

// Group is a set of axes sharing their drawing geometry: all axes of a group
// get the same margins, data extent and total length.
type Group []*Axis

// Innermost returns the first axis flagged as innermost, or the first axis.
func (g Group) Innermost() *Axis {
	if len(g) == 0 {
		return nil
	}
	for _, a := range g {
		if a.innermost {
			return a
		}
	}
	return g[0]
}

// plotLength returns the fixed data extent configured on the innermost
// axis, or NaN.
func (g Group) plotLength() float64 {
	if in := g.Innermost(); in != nil && in.PlotLength > 0 {
		return in.PlotLength
	}
	return math.NaN()
}

// Result reports the geometry a group was laid out with.
type Result struct {
	Converged   bool    // false if MaxRescales was hit with labels still clipped
	Rescales    int     // number of rescale steps taken
	DataLength  float64 // data extent in drawing units
	Margin      Margin  // margins shared by all axes of the group
	TotalLength float64 // DataLength plus margins
}

func (r Result) String() string {
	return fmt.Sprintf("<data %.2f + margins %.2f|%.2f = %.2f, %d rescales, converged=%v>",
		r.DataLength, r.Margin.Lower, r.Margin.Upper, r.TotalLength, r.Rescales, r.Converged)
}

// Layout solves scale, offset and margins for all axes of g.
//
// If plotLength is NaN, the data extent is chosen as large as possible such
// that extent plus margins fit into available. Otherwise the data extent is
// plotLength and the total length follows from the margins.
//
// Margins start out as half the first and last shown label. Then labels are
// scanned from both ends inward; the first one overhanging an end of the
// axis by more than ClipTolerance becomes a constraint for that end, the
// geometry is solved again and the scan restarts. After MaxRescales steps
// the last geometry is kept and Converged is false.
//
// Labels must have been measured before.
func Layout(g Group, available, plotLength float64) (Result, error) {
	if len(g) == 0 {
		return Result{}, ErrEmptyGroup
	}
	constrained := !math.IsNaN(plotLength) && !math.IsInf(plotLength, 0)
	if !constrained && (math.IsNaN(available) || math.IsInf(available, 0)) {
		return Result{}, fmt.Errorf("%w: available length is %v", ErrNoLength, available)
	}
	lim := seedLimits(g)
	solve := func() (float64, Margin) {
		d := plotLength
		if !constrained {
			var ok bool
			if d, ok = lim.fit(available); !ok {
				tracer().Infof("labels of %s do not fit into %.2f", g.Innermost().Name, available)
			}
		}
		if d < MinPlotLength {
			d = MinPlotLength
		}
		return d, lim.margins(d)
	}
	d, m := solve()
	g.apply(d, m)
	result := Result{Converged: true}
	for {
		c, upper, found := g.scan()
		if !found {
			break
		}
		if result.Rescales >= MaxRescales {
			tracer().Errorf("axis %s: labels still clipped after %d rescales", g.Innermost().Name, MaxRescales)
			result.Converged = false
			break
		}
		lim.add(c, upper)
		result.Rescales++
		d, m = solve()
		g.apply(d, m)
		tracer().Debugf("axis %s: rescale %d, data %.2f, margins %.2f|%.2f",
			g.Innermost().Name, result.Rescales, d, m.Lower, m.Upper)
	}
	result.DataLength = d
	result.Margin = m
	result.TotalLength = m.Lower + d + m.Upper
	return result, nil
}

func (g Group) apply(d float64, m Margin) {
	for _, a := range g {
		a.applyGeometry(d, m)
	}
}

// scan looks for the outermost clipped label, walking tick pairs (i, n−1−i)
// inward. It returns the label as a constraint and whether it overhangs the
// upper end.
func (g Group) scan() (constraint, bool, bool) {
	maxN := 0
	for _, a := range g {
		maxN = max(maxN, len(a.ticks))
	}
	for i := 0; i <= maxN/2; i++ {
		for _, a := range g {
			n := len(a.ticks)
			pair := [2]int{i, n - 1 - i}
			for j, k := range pair {
				if k < 0 || k >= n || (j == 1 && k == pair[0]) {
					continue
				}
				if _, shown := a.label(k); !shown {
					continue
				}
				h := a.halfExtent(k)
				c := a.tickPosition(k)
				if c-h < -ClipTolerance {
					return constraint{f: a.fraction(a.ticks[k].Value), h: h}, false, true
				}
				if c+h > a.totalLength+ClipTolerance {
					return constraint{f: a.fraction(a.ticks[k].Value), h: h}, true, true
				}
			}
		}
	}
	return constraint{}, false, false
}

// === Margin solver =========================================================

// constraint is a label at fraction f of the data extent with half extent h.
// A lower constraint needs margin.Lower ≥ h − f·D, an upper one
// margin.Upper ≥ h − (1−f)·D, for data extent D.
type constraint struct {
	f, h float64
}

type limits struct {
	lower, upper []constraint
}

// seedLimits starts with the first and last shown labels centered on the
// data ends.
func seedLimits(g Group) *limits {
	var lo, hi float64
	for _, a := range g {
		first, last := -1, -1
		for i := range a.ticks {
			if a.LabelShown(i) {
				if first < 0 {
					first = i
				}
				last = i
			}
		}
		if first >= 0 {
			lo = math.Max(lo, a.halfExtent(first))
			hi = math.Max(hi, a.halfExtent(last))
		}
	}
	return &limits{
		lower: []constraint{{f: 0, h: lo}},
		upper: []constraint{{f: 1, h: hi}},
	}
}

func (l *limits) add(c constraint, upper bool) {
	if upper {
		l.upper = append(l.upper, c)
	} else {
		l.lower = append(l.lower, c)
	}
}

// margins returns the smallest margins satisfying all constraints for data
// extent d.
func (l *limits) margins(d float64) Margin {
	var m Margin
	for _, c := range l.lower {
		m.Lower = math.Max(m.Lower, c.h-c.f*d)
	}
	for _, c := range l.upper {
		m.Upper = math.Max(m.Upper, c.h-(1-c.f)*d)
	}
	return m
}

func (l *limits) length(d float64) float64 {
	m := l.margins(d)
	return m.Lower + d + m.Upper
}

// fit finds the largest data extent whose total length fits into total.
// The total length is convex and piecewise linear in d. Its kinks are where
// two margin terms, or a margin term and zero, cross; beyond the last kink
// only constant terms remain and the slope is 1.
func (l *limits) fit(total float64) (float64, bool) {
	bps := []float64{0}
	bps = kinks(bps, l.lower, func(c constraint) float64 { return c.f })
	bps = kinks(bps, l.upper, func(c constraint) float64 { return 1 - c.f })
	sort.Float64s(bps)
	last := bps[len(bps)-1]
	if gl := l.length(last); gl <= total {
		return last + (total - gl), true
	}
	for i := len(bps) - 2; i >= 0; i-- {
		gi := l.length(bps[i])
		if gi > total {
			continue
		}
		gj := l.length(bps[i+1])
		return bps[i] + (total-gi)*(bps[i+1]-bps[i])/(gj-gi), true
	}
	return 0, false
}

// kinks appends the points d > 0 where two of the lines h − slope·d cross,
// or where one of them crosses zero.
func kinks(bps []float64, cs []constraint, slope func(constraint) float64) []float64 {
	for i, c := range cs {
		s := slope(c)
		if s > 0 && c.h > 0 {
			bps = append(bps, c.h/s)
		}
		for _, c2 := range cs[i+1:] {
			if ds := s - slope(c2); ds != 0 {
				if d := (c.h - c2.h) / ds; d > 0 {
					bps = append(bps, d)
				}
			}
		}
	}
	return bps
}
