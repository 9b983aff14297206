package axis

// LayoutEqual lays out a horizontal and a vertical group with a common
// scale, so that one data unit covers the same drawing length in x and y.
//
// Both groups are first laid out to fill their available lengths, or to
// their fixed PlotLength if the innermost axis has one. The group whose
// innermost axis ended up with the larger scale is then laid out again with
// a fixed data extent matching the smaller scale. A group pinned to its
// PlotLength is never rescaled; if it is the one to shrink, the scales stay
// unequal.
func LayoutEqual(x, y Group, xAvailable, yAvailable float64) (Result, Result, error) {
	rx, err := Layout(x, xAvailable, x.plotLength())
	if err != nil {
		return rx, Result{}, err
	}
	ry, err := Layout(y, yAvailable, y.plotLength())
	if err != nil {
		return rx, ry, err
	}
	ix, iy := x.Innermost(), y.Innermost()
	sx, sy := ix.Scale(), iy.Scale()
	switch {
	case sx > sy && ix.PlotLength > 0:
		tracer().Errorf("equal axes: %s has a fixed plot length, scales stay %.4g ≠ %.4g", ix.Name, sx, sy)
	case sy > sx && iy.PlotLength > 0:
		tracer().Errorf("equal axes: %s has a fixed plot length, scales stay %.4g ≠ %.4g", iy.Name, sx, sy)
	case sx > sy:
		tracer().Debugf("equal axes: shrinking %s to scale %.4g", ix.Name, sy)
		rx, err = Layout(x, xAvailable, sy*ix.tlen())
	case sy > sx:
		tracer().Debugf("equal axes: shrinking %s to scale %.4g", iy.Name, sx)
		ry, err = Layout(y, yAvailable, sx*iy.tlen())
	}
	return rx, ry, err
}
