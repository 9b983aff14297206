package ticks

import (
	"math"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/plotcore"
)

// Overrides is an explicit list of tick values, replacing generated ticks.
// Values are kept in a sorted map together with their decomposition into
// coefficient and exponent, so repeated calls to Ticks walk the visible
// values only.
type Overrides struct {
	values *treemap.Map // float64 → decomposition
}

type decomposition struct {
	coefficient float64
	exponent    int
}

// NewOverrides creates an override list. Duplicate and non-finite values
// are dropped.
func NewOverrides(values []float64) *Overrides {
	o := &Overrides{values: treemap.NewWith(utils.Float64Comparator)}
	for _, v := range values {
		o.Add(v)
	}
	return o
}

// Add inserts a value into the list.
func (o *Overrides) Add(v float64) *Overrides {
	if !plotcore.IsFinite(v) {
		tracer().Errorf("override tick %g is not finite, dropped", v)
		return o
	}
	if _, found := o.values.Get(v); found {
		return o
	}
	d := decomposition{}
	if v != 0 {
		d.exponent, d.coefficient = decompose(v)
	}
	o.values.Put(v, d)
	return o
}

// Len returns the number of override values.
func (o *Overrides) Len() int {
	return o.values.Size()
}

// Ticks returns the override values inside r (with a tolerance relative to
// the length of r), tagged with their display metadata. The resolution used
// for RequiredDecimalPlaces is the smallest gap between visible values.
func (o *Overrides) Ticks(r plotcore.Range) []Tick {
	span := r.Len()
	if span <= 0 {
		span = 1
	}
	tol := RelTolerance * span
	var visible []float64
	var decs []decomposition
	k, v := o.values.Ceiling(r.Min - tol)
	for k != nil && k.(float64) <= r.Max+tol {
		visible = append(visible, k.(float64))
		decs = append(decs, v.(decomposition))
		k, v = o.values.Ceiling(math.Nextafter(k.(float64), math.Inf(1)))
	}
	if len(visible) == 0 {
		return nil
	}
	gap := math.Inf(1)
	for i := 1; i < len(visible); i++ {
		gap = math.Min(gap, visible[i]-visible[i-1])
	}
	var ivExp int
	if math.IsInf(gap, 1) {
		ivExp = decs[0].exponent
	} else {
		ivExp = int(math.Floor(math.Log10(gap)))
	}
	ticks := make([]Tick, len(visible))
	for i, val := range visible {
		if val == 0 {
			ticks[i] = Tick{Value: 0, Exponent: ivExp}
			continue
		}
		d := significantDecimals(decs[i].coefficient, decs[i].exponent-ivExp)
		ticks[i] = Tick{
			Value:                 val,
			Coefficient:           roundTo(decs[i].coefficient, d),
			Exponent:              decs[i].exponent,
			RequiredDecimalPlaces: d,
		}
	}
	return ticks
}

// significantDecimals returns the number of fractional digits, at least min,
// needed to write the coefficient c without loss.
func significantDecimals(c float64, min int) int {
	if min < 0 {
		min = 0
	}
	d := min
	for ; d < 15; d++ {
		if math.Abs(roundTo(c, d)-c) <= 1e-9 {
			break
		}
	}
	return d
}
