package decimate

import (
	"math"
	"testing"

	"github.com/npillmayer/plotcore"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sine(t *testing.T, n int, xmax float64) *Curve {
	x := make([]float64, n)
	y := make([]float64, n)
	for i := range x {
		x[i] = xmax * float64(i) / float64(n-1)
		y[i] = math.Sin(x[i])
	}
	c, err := NewCurve(x, y)
	require.NoError(t, err)
	return c
}

func TestNewCurveMismatch(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c, err := NewCurve([]float64{1, 2, 3}, []float64{1, 2})
	assert.ErrorIs(t, err, ErrLengthMismatch)
	assert.Nil(t, c)
}

func TestViewportClassify(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	v := View(10, 0, 0, 10) // bounds get ordered
	assert.Equal(t, plotcore.R(0, 10), v.X())
	assert.Equal(t, Inside, v.classify(5, 5))
	assert.Equal(t, Inside, v.classify(10, 0))
	assert.Equal(t, LeftOf, v.classify(-1, 20)) // left wins over above
	assert.Equal(t, RightOf, v.classify(11, -5))
	assert.Equal(t, Below, v.classify(5, -1))
	assert.Equal(t, Above, v.classify(5, 11))
	assert.Equal(t, Undefined, v.classify(math.NaN(), 1))
	assert.True(t, v.covers(View(1, 2, 1, 2)))
	assert.False(t, v.covers(View(5, 15, 1, 2)))
	assert.False(t, v.covers(View(20, 30, 1, 2)))
	assert.True(t, v.Overlaps(View(5, 15, 1, 2)))
	assert.False(t, v.Overlaps(View(20, 30, 1, 2)))
}

func TestCurveBounds(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c, err := NewCurve([]float64{1, 5, math.NaN(), 3}, []float64{-2, 4, 100, 0})
	require.NoError(t, err)
	b, ok := c.Bounds()
	require.True(t, ok)
	assert.Equal(t, plotcore.R(1, 5), b.X())
	assert.Equal(t, plotcore.R(-2, 4), b.Y())
	assert.True(t, c.Visible(View(4, 10, 3, 10)))
	assert.False(t, c.Visible(View(6, 10, -10, 10)))
	c.Transform(func(x float64) float64 { return 10 * x }, nil)
	b, _ = c.Bounds()
	assert.Equal(t, plotcore.R(10, 50), b.X())
	assert.True(t, c.Visible(View(6, 12, -10, 10)))
	empty, err := NewCurve(nil, nil)
	require.NoError(t, err)
	_, ok = empty.Bounds()
	assert.False(t, ok)
	assert.False(t, empty.Visible(View(0, 1, 0, 1)))
}

func TestViewportSoftMargin(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	v := View(0, 10, -1, 1).expand(5, 1000)
	// x: 500/5 = 100 beats 5; y: half the height (1) beats 500/1000
	assert.Equal(t, plotcore.R(-100, 110), v.X())
	assert.Equal(t, plotcore.R(-2, 2), v.Y())
}

func TestDegenerateCurves(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	at := plotcore.Scaling(1, 1)
	empty, err := NewCurve(nil, nil)
	require.NoError(t, err)
	assert.True(t, empty.FilterMinMax(at, View(0, 1, 0, 1)))
	assert.Empty(t, empty.IncludeLine())
	assert.Equal(t, 0, empty.FilterLinInterp(at))
	single, err := NewCurve([]float64{1e6}, []float64{0})
	require.NoError(t, err)
	single.FilterMinMax(at, View(0, 1, 0, 1))
	assert.Equal(t, []bool{true}, single.IncludeLine())
	assert.Equal(t, []bool{false}, single.IncludeMarker())
}

func TestSineIsDecimated(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	const n = 100000
	c := sine(t, n, 1000)
	require.True(t, c.FilterMinMax(plotcore.Scaling(5, 50), View(0, 10, -1.5, 1.5)))
	lines, markers := c.Counts()
	t.Logf("%d points: %d line points, %d markers", n, lines, markers)
	assert.Less(t, lines, 2000)
	assert.Greater(t, lines, 0)
	inView := 0
	for i, in := range c.IncludeLine() {
		if in && c.Transformed(i).X() <= 10 {
			inView++
		}
	}
	t.Logf("%d line points in view", inView)
	assert.Less(t, inView, 200)
	// soft margin reaches x = 110
	assert.InDelta(t, 11000, markers, 2)
	assert.True(t, c.IncludeLine()[0])
}

func TestDecimationIdempotent(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := sine(t, 20000, 200)
	at := plotcore.Scaling(5, 50)
	require.True(t, c.FilterMinMax(at, View(0, 10, -1.5, 1.5)))
	first := append([]bool(nil), c.IncludeLine()...)
	assert.False(t, c.FilterMinMax(at, View(0, 10, -1.5, 1.5)))
	assert.Equal(t, first, c.IncludeLine())
	// small pan and zoom stay within the soft margin
	assert.False(t, c.FilterMinMax(plotcore.Scaling(5.2, 50), View(2, 12, -1.5, 1.5)))
	assert.True(t, c.FilterMinMax(plotcore.Scaling(7, 50), View(2, 12, -1.5, 1.5)))
	assert.True(t, c.FilterMinMax(plotcore.Scaling(7, 50), View(150, 160, -1.5, 1.5)))
	c.Transform(nil, nil)
	assert.True(t, c.FilterMinMax(plotcore.Scaling(7, 50), View(150, 160, -1.5, 1.5)))
}

func TestDecimationKeepsExtremes(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := sine(t, 50000, 500)
	c.FilterMinMax(plotcore.Scaling(3, 40), View(0, 20, -1.2, 1.2))
	minX, maxX, minY, maxY := -1, -1, -1, -1
	for i := 0; i < c.Len(); i++ {
		if c.Region(i) != Inside {
			continue
		}
		p := c.Transformed(i)
		if minX < 0 || p.X() < c.Transformed(minX).X() {
			minX = i
		}
		if maxX < 0 || p.X() > c.Transformed(maxX).X() {
			maxX = i
		}
		if minY < 0 || p.Y() < c.Transformed(minY).Y() {
			minY = i
		}
		if maxY < 0 || p.Y() > c.Transformed(maxY).Y() {
			maxY = i
		}
	}
	require.GreaterOrEqual(t, minX, 0)
	line := c.IncludeLine()
	assert.True(t, line[minX], "min x at %d", minX)
	assert.True(t, line[maxX], "max x at %d", maxX)
	assert.True(t, line[minY], "min y at %d", minY)
	assert.True(t, line[maxY], "max y at %d", maxY)
}

func TestDecimationKeepsBoundaryCrossings(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	const n = 60
	x := make([]float64, n)
	y := make([]float64, n)
	for i := range x {
		x[i] = float64(i) / 3
		if (i/5)%2 == 1 {
			y[i] = 1000 // far above
		}
	}
	c, err := NewCurve(x, y)
	require.NoError(t, err)
	c.FilterMinMax(plotcore.Scaling(10, 10), View(0, 20, -1, 1))
	line := c.IncludeLine()
	for i := 1; i < n; i++ {
		if c.Region(i) != c.Region(i-1) {
			assert.True(t, line[i-1], "point %d before transition not included", i-1)
			assert.True(t, line[i], "point %d after transition not included", i)
		}
	}
	for i, m := range c.IncludeMarker() {
		assert.Equal(t, c.Region(i) == Inside, m, "marker %d", i)
	}
	// inner points of an off-screen run are dropped
	assert.Equal(t, Above, c.Region(7))
	assert.False(t, line[7])
}

func TestFilterLinInterpStraightLine(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	const n = 100
	x := make([]float64, n)
	y := make([]float64, n)
	for i := range x {
		x[i] = float64(i)
		y[i] = 2 * float64(i)
	}
	c, err := NewCurve(x, y)
	require.NoError(t, err)
	assert.Equal(t, n-2, c.FilterLinInterp(plotcore.Identity()))
	lines, markers := c.Counts()
	assert.Equal(t, 2, lines)
	assert.Equal(t, n, markers)
	assert.True(t, c.IncludeLine()[0])
	assert.True(t, c.IncludeLine()[n-1])
}

func TestFilterLinInterpKeepsCorner(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	var x, y []float64
	for i := 0; i <= 20; i++ {
		x = append(x, float64(i))
		y = append(y, 10-math.Abs(float64(i-10)))
	}
	c, err := NewCurve(x, y)
	require.NoError(t, err)
	c.FilterLinInterp(plotcore.Scaling(10, 10))
	lines, _ := c.Counts()
	assert.True(t, c.IncludeLine()[10])
	assert.Equal(t, 3, lines)
}

func TestTransformedCoordinates(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c, err := NewCurve([]float64{1, 10, 100}, []float64{1, 2, 3})
	require.NoError(t, err)
	c.Transform(math.Log10, nil)
	assert.InDelta(t, 2.0, c.Transformed(2).X(), 1e-12)
	assert.InDelta(t, 3.0, c.Transformed(2).Y(), 1e-12)
	assert.InDelta(t, 100.0, c.Point(2).X(), 1e-12)
}
