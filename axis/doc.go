/*
Package axis lays out plot axes: it decides which tick labels can be shown
and solves scale, offset and margins for groups of axes sharing a drawing
length, so that no shown label is clipped.

# Coordinates

Every axis maps a data value v to a drawing coordinate along the axis

	c = T(v)·scale − offset

where T is the axis' graph transform (identity or log10). After a layout
pass the data minimum sits at c = margin.Lower, the data maximum at
c = totalLength − margin.Upper. Vertical axes count along the axis from
bottom to top; the flip into canvas coordinates (y growing downwards) is
done by the orientation's GraphToCanvas transform.

# Usage

	x := axis.New("x", axis.Horizontal, axis.Bottom)
	x.SetRange(plotcore.R(0, 97))
	y := axis.New("y", axis.Vertical, axis.Left)
	y.SetRange(plotcore.R(-1, 1))
	frame := axis.NewFrame(axis.FixedPitch(0.6, 1.2), x, y)
	layout, err := frame.Layout(800, 600)

A layout pass runs two rounds: the first one measures all tick labels, the
second one only those left visible by label culling. Groups which cannot be
fitted within MaxRescales rescale steps keep their last geometry and report
Converged == false.

# Concurrency

Axes are not safe for concurrent use. A layout pass mutates every axis of
a frame; callers serialize layout passes and reads of the results.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package axis

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'axis'
func tracer() tracing.Trace {
	return tracing.Select("axis")
}
