package axis

import (
	"fmt"
	"math"

	"github.com/npillmayer/plotcore"
)

// Edge is the side of the plot area an axis is attached to.
type Edge int8

// Edges of the plot area.
const (
	Bottom Edge = iota
	Top
	Left
	Right
)

func (e Edge) String() string {
	switch e {
	case Bottom:
		return "bottom"
	case Top:
		return "top"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("edge(%d)", int(e))
}

// Outward is the unit vector pointing away from the plot area, in canvas
// coordinates (y grows downwards).
func (e Edge) Outward() plotcore.Pair {
	switch e {
	case Top:
		return plotcore.P(0, -1)
	case Left:
		return plotcore.P(-1, 0)
	case Right:
		return plotcore.P(1, 0)
	}
	return plotcore.P(0, 1)
}

// Orientation captures the geometry that differs between horizontal and
// vertical axes. The set of orientations is closed: Horizontal and Vertical.
type Orientation interface {
	fmt.Stringer
	// Along returns the extent of a w×h box in axis direction.
	Along(w, h float64) float64
	// Across returns the extent of a w×h box perpendicular to the axis.
	Across(w, h float64) float64
	// TickAnchorPoint is the canvas point of a tick at drawing coordinate c
	// on an axis of length total, whose line starts at origin.
	TickAnchorPoint(c, total float64, origin plotcore.Pair) plotcore.Pair
	// LabelOffsetDirection is the direction labels are shifted off the axis line.
	LabelOffsetDirection(e Edge) plotcore.Pair
	// GraphToCanvas maps transformed data values to canvas coordinates. The
	// other canvas dimension is left unchanged.
	GraphToCanvas(scale, offset, total float64, origin plotcore.Pair) plotcore.AT
	accepts(e Edge) bool
}

type horizontal struct{}
type vertical struct{}

// Horizontal and Vertical are the axis orientations.
var (
	Horizontal Orientation = horizontal{}
	Vertical   Orientation = vertical{}
)

func (horizontal) String() string { return "horizontal" }
func (vertical) String() string   { return "vertical" }

func (horizontal) Along(w, h float64) float64  { return w }
func (horizontal) Across(w, h float64) float64 { return h }
func (vertical) Along(w, h float64) float64    { return h }
func (vertical) Across(w, h float64) float64   { return w }

func (horizontal) TickAnchorPoint(c, total float64, origin plotcore.Pair) plotcore.Pair {
	return plotcore.P(origin.X()+c, origin.Y())
}

// Vertical axes grow upwards, canvas y grows downwards.
func (vertical) TickAnchorPoint(c, total float64, origin plotcore.Pair) plotcore.Pair {
	return plotcore.P(origin.X(), origin.Y()+total-c)
}

func (horizontal) LabelOffsetDirection(e Edge) plotcore.Pair {
	if e == Top {
		return Top.Outward()
	}
	return Bottom.Outward()
}

func (vertical) LabelOffsetDirection(e Edge) plotcore.Pair {
	if e == Right {
		return Right.Outward()
	}
	return Left.Outward()
}

func (horizontal) GraphToCanvas(scale, offset, total float64, origin plotcore.Pair) plotcore.AT {
	return plotcore.Linear(scale, origin.X()-offset, 1, 0)
}

func (vertical) GraphToCanvas(scale, offset, total float64, origin plotcore.Pair) plotcore.AT {
	return plotcore.Linear(1, 0, -scale, origin.Y()+total+offset)
}

func (horizontal) accepts(e Edge) bool { return e == Bottom || e == Top }
func (vertical) accepts(e Edge) bool   { return e == Left || e == Right }

// === Graph transforms ======================================================

// GraphTransform is a monotonic mapping of data values applied before
// scaling, e.g. a logarithm.
type GraphTransform interface {
	Apply(v float64) float64
	Invert(t float64) float64
	// Positive is true if the transform is defined for positive values only.
	Positive() bool
}

type linear struct{}
type log10 struct{}

// Linear is the identity transform, Log10 the decadic logarithm.
var (
	Linear GraphTransform = linear{}
	Log10  GraphTransform = log10{}
)

func (linear) Apply(v float64) float64  { return v }
func (linear) Invert(t float64) float64 { return t }
func (linear) Positive() bool           { return false }

func (log10) Apply(v float64) float64  { return math.Log10(v) }
func (log10) Invert(t float64) float64 { return math.Pow(10, t) }
func (log10) Positive() bool           { return true }
