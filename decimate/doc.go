/*
Package decimate reduces large point series to the subset needed to draw
them faithfully at a given zoom level.

FilterMinMax classifies points against a viewport, collapses off-screen
excursions to their boundary crossings and replaces sub-pixel wiggles by
their extremal points. FilterLinInterp is a secondary strategy for mostly
linear data, removing points that lie on the line between their neighbours.

Both operate on the transformed coordinates of a Curve (after log scaling
or the like) and take the linear transform to drawing coordinates as a
plotcore.AT, usually axis.CurveTransform.

Curves are not safe for concurrent use.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package decimate

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'decimate'
func tracer() tracing.Trace {
	return tracing.Select("decimate")
}
