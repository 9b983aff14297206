/*
Package plotcore implements the numeric ground layer for plot layout:
ranges, points, affine transformations and the validation of axis ranges.
Axis layout lives in package axis, tick generation in package ticks and
curve decimation in package decimate.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package plotcore

import (
	"errors"
	"fmt"
	"math"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'plotcore'
func tracer() tracing.Trace {
	return tracing.Select("plotcore")
}

// === Numeric Data Type =====================================================

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// Zap makes n = 0 if n "means" to be zero
func Zap(n float64) float64 {
	if Is0(n) {
		n = 0
	}
	return n
}

// IsFinite is a predicate: n is neither NaN nor ±Inf.
func IsFinite(n float64) bool {
	return !math.IsNaN(n) && !math.IsInf(n, 0)
}

// === Range Data Type =======================================================

// MaxMagnitudeRatio is the largest accepted ratio between the magnitude of a
// range bound and the span of the range. Beyond it, neighbouring ticks are no
// longer distinguishable in float64.
var MaxMagnitudeRatio float64 = 1e10

// ErrInvalidRange is returned by ValidateRange.
var ErrInvalidRange = errors.New("invalid range")

// Range is an interval [Min, Max] of data values. Max >= Min.
type Range struct {
	Min, Max float64
}

// R is a quick notation for constructing a range. Bounds are swapped if
// given in descending order.
func R(min, max float64) Range {
	if max < min {
		min, max = max, min
	}
	return Range{Min: min, Max: max}
}

// Len returns Max - Min.
func (r Range) Len() float64 {
	return r.Max - r.Min
}

// Union returns the smallest range containing r and r2.
func (r Range) Union(r2 Range) Range {
	return Range{Min: math.Min(r.Min, r2.Min), Max: math.Max(r.Max, r2.Max)}
}

// Contains is a predicate: is v inside r, allowing for a tolerance tol?
func (r Range) Contains(v, tol float64) bool {
	return v >= r.Min-tol && v <= r.Max+tol
}

// Pretty Stringer for ranges.
func (r Range) String() string {
	return fmt.Sprintf("[%g..%g]", r.Min, r.Max)
}

// ValidateRange checks a range for use on an axis. Ranges have to be finite,
// ordered and resolvable (see MaxMagnitudeRatio). If positive is set, both
// bounds must be > 0, as required by logarithmic axes.
func ValidateRange(r Range, positive bool) error {
	if !IsFinite(r.Min) || !IsFinite(r.Max) {
		return fmt.Errorf("%w: %s is not finite", ErrInvalidRange, r)
	}
	if r.Max < r.Min {
		return fmt.Errorf("%w: %s is descending", ErrInvalidRange, r)
	}
	if positive && r.Min <= 0 {
		return fmt.Errorf("%w: %s has non-positive bound", ErrInvalidRange, r)
	}
	if span := r.Len(); span > 0 {
		mag := math.Max(math.Abs(r.Min), math.Abs(r.Max))
		if mag/span > MaxMagnitudeRatio {
			return fmt.Errorf("%w: %s spans too little for its magnitude", ErrInvalidRange, r)
		}
	}
	return nil
}

// === Pair Data Type ========================================================

// Pair is an interface for pairs / 2D-points
type Pair complex128

// Origin represents the frequently used constant (0,0).
var Origin = P(float64(0), float64(0))

// Pretty Stringer for simple pairs.
func (p Pair) String() string {
	return fmt.Sprintf("(%g,%g)", real(p), imag(p))
}

// C returns a Pair as a complex number.
func (p Pair) C() complex128 {
	return complex128(p)
}

// P is a quick notation for contructing a pair from floats.
func P(x, y float64) Pair {
	return Pair(complex(x, y))
}

// X is the x-part of a pair.
func (p Pair) X() float64 {
	return real(p.C())
}

// Y is the y-part of a pair.
func (p Pair) Y() float64 {
	return imag(p.C())
}

// Zap rounds x-part and y-part to Epsilon.
func (p Pair) Zap() Pair {
	return P(Zap(p.X()), Zap(p.Y()))
}

// Equal compares two pairs.
func (p Pair) Equal(p2 Pair) bool {
	return Is0(p.X()-p2.X()) && Is0(p.Y()-p2.Y())
}

// Shifted returns a new pair translated by v.
func (p Pair) Shifted(v Pair) Pair {
	return Translation(v).Transform(p).Zap()
}

// === Affine Transformations ================================================

// AT is an affine transform, a matrix type used for transforming vectors.
// Plot transforms are axis-aligned: data-to-drawing transforms built by
// package axis carry scale and offset only.
type AT []float64 // a 3x3 matrix, flattened by rows

// Internal constructor. Clients implicitely use this as a starting point for
// transform combinations.
func newAT() AT {
	m := make([]float64, 9)
	return m
}

func (m AT) get(row, col int) float64 {
	return m[row*3+col]
}

func (m AT) set(row, col int, value float64) {
	m[row*3+col] = value
}

func (m AT) row(row int) []float64 {
	return m[row*3 : (row+1)*3]
}

func (m AT) col(col int) []float64 {
	c := make([]float64, 3)
	c[0] = m[col]
	c[1] = m[3+col]
	c[2] = m[6+col]
	return c
}

// Identity transform. Will transform a point onto itself.
func Identity() AT {
	m := newAT()
	m.set(0, 0, 1.0)
	m.set(1, 1, 1.0)
	m.set(2, 2, 1.0)
	return m
}

// Translation transform. Translate a point by (dx,dy).
func Translation(p Pair) AT {
	m := Identity()
	m.set(0, 2, p.X())
	m.set(1, 2, p.Y())
	return m
}

// Scaling transform. Scales x by sx and y by sy.
func Scaling(sx, sy float64) AT {
	m := Identity()
	m.set(0, 0, sx)
	m.set(1, 1, sy)
	return m
}

// Linear is the axis-aligned transform
//
//	x' = sx·x + ox,  y' = sy·y + oy
//
// as used for data-to-drawing transforms.
func Linear(sx, ox, sy, oy float64) AT {
	m := Scaling(sx, sy)
	m.set(0, 2, ox)
	m.set(1, 2, oy)
	return m
}

// ScaleX is the factor applied to x-coordinates (ignoring shear).
func (m AT) ScaleX() float64 {
	return m.get(0, 0)
}

// ScaleY is the factor applied to y-coordinates (ignoring shear).
func (m AT) ScaleY() float64 {
	return m.get(1, 1)
}

// Debug Stringer for an affine transform.
func (m AT) String() string {
	s := fmt.Sprintf("[%g,%g,%g|%g,%g,%g|%g,%g,%g]",
		m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8])
	return s
}

// v1 × v2, v.n = [a,b,c]
func dotProd(vec1, vec2 []float64) float64 {
	p1 := vec1[0] * vec2[0]
	p2 := vec1[1] * vec2[1]
	p3 := vec1[2] * vec2[2]
	return p1 + p2 + p3
}

// Combine 2 affine transformation to a new one: m is applied first, then n.
// Returns a new transformation without changing the argument(s).
func (m AT) Combine(n AT) AT {
	o := newAT()
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			o.set(row, col, dotProd(n.row(row), m.col(col)))
		}
	}
	return o
}

// Invert returns the inverse transform. The second return value is false
// if m is singular.
func (m AT) Invert() (AT, bool) {
	a, b, c := m.get(0, 0), m.get(0, 1), m.get(0, 2)
	d, e, f := m.get(1, 0), m.get(1, 1), m.get(1, 2)
	det := a*e - b*d
	if Is0(det) {
		return Identity(), false
	}
	o := Identity()
	o.set(0, 0, e/det)
	o.set(0, 1, -b/det)
	o.set(1, 0, -d/det)
	o.set(1, 1, a/det)
	o.set(0, 2, (b*f-c*e)/det)
	o.set(1, 2, (c*d-a*f)/det)
	return o, true
}

func (m AT) multiplyVector(v []float64) []float64 {
	c := make([]float64, 3)
	c[0] = dotProd(m.row(0), v)
	c[1] = dotProd(m.row(1), v)
	c[2] = dotProd(m.row(2), v)
	return c
}

// Transform a 2D-point. The argument is unchanged and a new pair is returned.
func (m AT) Transform(p Pair) Pair {
	c := m.multiplyVector([]float64{p.X(), p.Y(), 1.0})
	return P(c[0], c[1])
}
