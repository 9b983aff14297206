package ticks

import (
	"math"
	"testing"

	"github.com/npillmayer/plotcore"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func values(ts []Tick) []float64 {
	v := make([]float64, len(ts))
	for i, t := range ts {
		v[i] = t.Value
	}
	return v
}

func TestGenerateWorkedExamples(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cases := []struct {
		r     plotcore.Range
		count int
		want  []float64
	}{
		{plotcore.R(0, 97), 10, []float64{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100}},
		{plotcore.R(0, 100), 10, []float64{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100}},
		{plotcore.R(-1, 1), 4, []float64{-1, -0.5, 0, 0.5, 1}},
		{plotcore.R(0.15, 0.95), 4, []float64{0, 0.2, 0.4, 0.6, 0.8, 1}},
		{plotcore.R(3, 3), 2, []float64{3}},
		{plotcore.R(1000, 5000), 4, []float64{1000, 2000, 3000, 4000, 5000}},
	}
	for _, c := range cases {
		got := values(Generate(c.r, c.count))
		require.Len(t, got, len(c.want), "%s/%d: %v", c.r, c.count, got)
		for i := range got {
			assert.InDelta(t, c.want[i], got[i], 1e-12, "%s/%d tick %d", c.r, c.count, i)
		}
	}
}

func TestGenerateNoTicks(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.Empty(t, Generate(plotcore.R(0, 10), 0))
	assert.Empty(t, Generate(plotcore.Range{Min: math.NaN(), Max: 1}, 5))
}

func TestNiceInterval(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.Equal(t, Interval{1, 1}, NiceInterval(97, 10))
	assert.Equal(t, Interval{1, 1}, NiceInterval(100, 10))
	assert.Equal(t, Interval{5, -1}, NiceInterval(1.2, 4)) // 0.3 → 0.5
	assert.Equal(t, Interval{1, 2}, NiceInterval(1000, 6)) // 166 → 100
	assert.Equal(t, Interval{1, 0}, NiceInterval(0, 1))
}

func TestTickNicenessAndCoverage(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	ranges := []plotcore.Range{
		plotcore.R(0, 1), plotcore.R(-3.7, 12.2), plotcore.R(0.0013, 0.0071),
		plotcore.R(-1e6, 4.5e6), plotcore.R(17, 19), plotcore.R(-250, -3),
		plotcore.R(1e-9, 3e-9), plotcore.R(99.5, 100.5),
	}
	for _, r := range ranges {
		for count := 1; count <= 50; count++ {
			ts := Generate(r, count)
			require.NotEmpty(t, ts)
			iv := NiceInterval(r.Len(), count)
			step := iv.Step()
			tol := 1e-6 * step
			assert.Contains(t, []int{1, 2, 5}, iv.Coefficient)
			assert.LessOrEqual(t, ts[0].Value, r.Min+tol, "%s/%d", r, count)
			assert.GreaterOrEqual(t, ts[len(ts)-1].Value, r.Max-tol, "%s/%d", r, count)
			for i := 1; i < len(ts); i++ {
				d := ts[i].Value - ts[i-1].Value
				assert.InDelta(t, step, d, 1e-9*math.Abs(step)+1e-12, "%s/%d gap %d", r, count, i)
			}
			// 1-2-5 steps land between 0.6 and 2 times the requested density
			assert.GreaterOrEqual(t, len(ts), int(0.6*float64(count)), "%s/%d", r, count)
			assert.LessOrEqual(t, len(ts), 2*count+3, "%s/%d", r, count)
		}
	}
}

func TestTickMetadata(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	ts := Generate(plotcore.R(9, 11), 4) // interval 0.5
	require.Equal(t, []float64{9, 9.5, 10, 10.5, 11}, values(ts))
	assert.Equal(t, Tick{Value: 9.5, Coefficient: 9.5, Exponent: 0, RequiredDecimalPlaces: 1}, ts[1])
	assert.Equal(t, Tick{Value: 10.5, Coefficient: 1.05, Exponent: 1, RequiredDecimalPlaces: 2}, ts[3])
	z := Generate(plotcore.R(-0.3, 0.3), 3)
	for _, tk := range z {
		if tk.Value == 0 {
			assert.Equal(t, 0.0, tk.Coefficient)
			assert.Equal(t, -1, tk.Exponent)
		}
	}
}

func TestFormat(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	ts := Generate(plotcore.R(9, 11), 4)
	assert.Equal(t, "9.5", Format(ts[1]))
	assert.Equal(t, "10.0", Format(ts[2]))
	ts = Generate(plotcore.R(0, 97), 10)
	assert.Equal(t, "0", Format(ts[0]))
	assert.Equal(t, "100", Format(ts[10]))
	big := Generate(plotcore.R(0, 5e7), 5)
	assert.Equal(t, "1×10^7", Format(big[1]))
	assert.Equal(t, "100", FormatDecade(Tick{Value: 2, Coefficient: 2}))
	assert.Equal(t, "10^5", FormatDecade(Tick{Value: 5, Coefficient: 5}))
}

func TestOverrides(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	o := NewOverrides([]float64{0, 25, 50, 75, 100, 50, math.NaN(), 1000})
	assert.Equal(t, 6, o.Len())
	ts := o.Ticks(plotcore.R(10, 80))
	require.Equal(t, []float64{25, 50, 75}, values(ts))
	assert.Equal(t, Tick{Value: 25, Coefficient: 2.5, Exponent: 1, RequiredDecimalPlaces: 1}, ts[0])
	// boundary values are kept within tolerance
	ts = o.Ticks(plotcore.R(25.0000000001, 75))
	assert.Equal(t, []float64{25, 50, 75}, values(ts))
	assert.Empty(t, o.Ticks(plotcore.R(101, 999)))
	single := o.Ticks(plotcore.R(900, 1100))
	require.Len(t, single, 1)
	assert.Equal(t, 3, single[0].Exponent)
	assert.Equal(t, 0, single[0].RequiredDecimalPlaces)
}
