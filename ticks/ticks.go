// Package ticks generates "nice" tick values for a numeric range.
//
// Tick intervals are of the form c·10^e with c ∈ {1, 2, 5}. Every tick carries
// its own coefficient and exponent, plus the number of fractional digits its
// coefficient needs to be told apart from its neighbours at the interval's
// resolution. Formatting is up to clients; Format is a reasonable default.
package ticks

import (
	"math"

	"github.com/npillmayer/plotcore"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ticks'
func tracer() tracing.Trace {
	return tracing.Select("ticks")
}

// RelTolerance is the tolerance, relative to the tick interval, within which
// a value counts as lying on a multiple of the interval.
var RelTolerance float64 = 1e-6

// Tick is a single tick value. Value = Coefficient · 10^Exponent.
type Tick struct {
	Value                 float64
	Coefficient           float64
	Exponent              int
	RequiredDecimalPlaces int
}

// Interval is a nice tick step c·10^e.
type Interval struct {
	Coefficient int // 1, 2 or 5
	Exponent    int
}

// Step returns the interval as a float.
func (iv Interval) Step() float64 {
	return iv.multiple(1)
}

// multiple returns k·c·10^e, avoiding the representation error of negative
// powers of ten where possible.
func (iv Interval) multiple(k float64) float64 {
	n := k * float64(iv.Coefficient)
	if iv.Exponent >= 0 {
		return n * math.Pow10(iv.Exponent)
	}
	return n / math.Pow10(-iv.Exponent)
}

// NiceInterval computes the tick interval for a range of length span, to be
// divided into approximately count steps. A span of 0 is treated as 1.
// count must be > 0.
func NiceInterval(span float64, count int) Interval {
	if span <= 0 {
		span = 1
	}
	approx := span / float64(count)
	e := int(math.Floor(math.Log10(approx)))
	c := math.Floor(approx/math.Pow10(e) + RelTolerance)
	if c >= 10 { // log10 rounding, e.g. for 1000
		c /= 10
		e++
	}
	iv := Interval{Exponent: e}
	switch {
	case c <= 1:
		iv.Coefficient = 1
	case c <= 2:
		iv.Coefficient = 2
	case c <= 5:
		iv.Coefficient = 5
	default:
		iv.Coefficient = 1
		iv.Exponent++
	}
	return iv
}

// Generate produces ascending ticks covering r: the first tick is the largest
// multiple of the interval at or below r.Min, the last one the smallest
// multiple at or above r.Max (both within RelTolerance). count == 0 yields no
// ticks.
//
// Example: R(0,97) with count 10 has interval 10 and yields 0, 10, …, 100.
func Generate(r plotcore.Range, count int) []Tick {
	if count <= 0 || !plotcore.IsFinite(r.Min) || !plotcore.IsFinite(r.Max) {
		return nil
	}
	iv := NiceInterval(r.Len(), count)
	step := iv.Step()
	tol := RelTolerance * step
	k := math.Floor(r.Min/step + RelTolerance)
	ticks := make([]Tick, 0, count+3)
	// the step is at least half of span/count, so 2·count+3 ticks always cover r
	for i := 0; i <= 2*count+3; i++ {
		v := iv.multiple(k + float64(i))
		ticks = append(ticks, tag(v, iv.Exponent, tol))
		if v >= r.Max-tol {
			break
		}
	}
	tracer().Debugf("%d ticks for %s, interval %de%d", len(ticks), r, iv.Coefficient, iv.Exponent)
	return ticks
}

// tag computes display metadata for v, given the exponent of the interval
// in use. Values within tol of 0 are snapped to 0.
func tag(v float64, ivExp int, tol float64) Tick {
	if math.Abs(v) <= tol {
		return Tick{Value: 0, Exponent: ivExp}
	}
	e, c := decompose(v)
	d := e - ivExp
	if d < 0 {
		d = 0
	}
	c = roundTo(c, d)
	if math.Abs(c) >= 10 { // rounding carried into the next decade
		c /= 10
		e++
		d++
	}
	return Tick{Value: v, Coefficient: c, Exponent: e, RequiredDecimalPlaces: d}
}

// decompose splits v ≠ 0 into exponent e and coefficient c with 1 ≤ |c| < 10.
func decompose(v float64) (int, float64) {
	e := int(math.Floor(math.Log10(math.Abs(v))))
	c := scaleDown(v, e)
	if math.Abs(c) >= 10 {
		e++
		c = scaleDown(v, e)
	} else if math.Abs(c) < 1 {
		e--
		c = scaleDown(v, e)
	}
	return e, c
}

func scaleDown(v float64, e int) float64 {
	if e >= 0 {
		return v / math.Pow10(e)
	}
	return v * math.Pow10(-e)
}

func roundTo(x float64, decimals int) float64 {
	p := math.Pow10(decimals)
	return math.Round(x*p) / p
}
