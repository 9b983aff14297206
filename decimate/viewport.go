package decimate

import (
	"fmt"
	"math"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/plotcore"
)

// MinSoftMargin is the minimum soft margin around a viewport, in drawing
// units.
var MinSoftMargin = 500.0

// Region is the position of a point relative to a viewport.
type Region uint8

// Regions are tested in this order; a point left of and above the viewport
// is LeftOf.
const (
	Inside Region = iota
	LeftOf
	RightOf
	Below
	Above
	Undefined // non-finite coordinates
)

func (r Region) String() string {
	switch r {
	case Inside:
		return "inside"
	case LeftOf:
		return "left-of"
	case RightOf:
		return "right-of"
	case Below:
		return "below"
	case Above:
		return "above"
	}
	return "undefined"
}

// Viewport is a rectangle in transformed data coordinates.
type Viewport struct {
	rect polyclip.Rectangle
}

// View creates a viewport. Bounds are swapped if given in descending order.
func View(xmin, xmax, ymin, ymax float64) Viewport {
	x, y := plotcore.R(xmin, xmax), plotcore.R(ymin, ymax)
	return Viewport{rect: polyclip.Rectangle{
		Min: polyclip.Point{X: x.Min, Y: y.Min},
		Max: polyclip.Point{X: x.Max, Y: y.Max},
	}}
}

// ViewOf creates a viewport from the transformed ranges of two axes.
func ViewOf(x, y plotcore.Range) Viewport {
	return View(x.Min, x.Max, y.Min, y.Max)
}

// X returns the horizontal extent of v.
func (v Viewport) X() plotcore.Range {
	return plotcore.Range{Min: v.rect.Min.X, Max: v.rect.Max.X}
}

// Y returns the vertical extent of v.
func (v Viewport) Y() plotcore.Range {
	return plotcore.Range{Min: v.rect.Min.Y, Max: v.rect.Max.Y}
}

func (v Viewport) String() string {
	return fmt.Sprintf("%s×%s", v.X(), v.Y())
}

// expand adds the soft margin: each side moves out by half the viewport's
// extent or by MinSoftMargin drawing units, whichever is larger. sx and sy
// are drawing units per data unit.
func (v Viewport) expand(sx, sy float64) Viewport {
	mx := math.Max(v.X().Len()/2, MinSoftMargin/sx)
	my := math.Max(v.Y().Len()/2, MinSoftMargin/sy)
	return View(v.rect.Min.X-mx, v.rect.Max.X+mx, v.rect.Min.Y-my, v.rect.Max.Y+my)
}

// Overlaps is true if v and w intersect.
func (v Viewport) Overlaps(w Viewport) bool {
	return v.rect.Overlaps(w.rect)
}

// covers is true if w lies completely within v.
func (v Viewport) covers(w Viewport) bool {
	return w.rect.Min.X >= v.rect.Min.X && w.rect.Max.X <= v.rect.Max.X &&
		w.rect.Min.Y >= v.rect.Min.Y && w.rect.Max.Y <= v.rect.Max.Y
}

func (v Viewport) classify(x, y float64) Region {
	switch {
	case !plotcore.IsFinite(x) || !plotcore.IsFinite(y):
		return Undefined
	case x >= v.rect.Min.X && x <= v.rect.Max.X && y >= v.rect.Min.Y && y <= v.rect.Max.Y:
		return Inside
	case x < v.rect.Min.X:
		return LeftOf
	case x > v.rect.Max.X:
		return RightOf
	case y < v.rect.Min.Y:
		return Below
	}
	return Above
}
