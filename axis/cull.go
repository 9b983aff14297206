package axis

// CullClearance inflates labels by this fraction of their size before
// testing for overlap.
var CullClearance = 0.25

// Cull decides which of a row of labels to show. centers are the label
// positions along the axis in ascending order, halves their half extents.
//
// A greedy walk accepts every label clearing the previously accepted one and
// records the longest run of labels missed out between two accepted ones.
// The result then shows every (run+1)-th label, starting with the first,
// which gives a regular pattern instead of the ragged greedy one.
func Cull(centers, halves []float64) []bool {
	n := len(centers)
	visible := make([]bool, n)
	if n == 0 {
		return visible
	}
	pad := 1 + CullClearance
	last, run, missOutMax := 0, 0, 0
	for i := 1; i < n; i++ {
		if centers[i]-halves[i]*pad < centers[last]+halves[last]*pad {
			run++
			continue
		}
		if run > missOutMax {
			missOutMax = run
		}
		run, last = 0, i
	}
	stride := missOutMax + 1
	for i := 0; i < n; i += stride {
		visible[i] = true
	}
	return visible
}
