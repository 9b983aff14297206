package axis

import (
	"errors"
	"fmt"

	"github.com/npillmayer/plotcore"
)

// ErrLinkConflict is returned when linking axes would create anything but a
// single pair of mirrored ranges.
var ErrLinkConflict = errors.New("axis range link conflict")

// rangeLink synchronizes the ranges of a primary and a mirror axis.
type rangeLink struct {
	primary, mirror *Axis
	propagating     bool
}

// Link binds the range of mirror to the range of primary, in both
// directions: setting the range on either axis updates the other one. The
// mirror takes over the primary's current range. An axis can take part in
// one link only; self-links and chains are rejected.
func Link(primary, mirror *Axis) error {
	if primary == nil || mirror == nil {
		return fmt.Errorf("%w: nil axis", ErrLinkConflict)
	}
	if primary == mirror {
		return fmt.Errorf("%w: axis %s linked to itself", ErrLinkConflict, primary.Name)
	}
	if primary.link != nil {
		return fmt.Errorf("%w: axis %s is already linked", ErrLinkConflict, primary.Name)
	}
	if mirror.link != nil {
		return fmt.Errorf("%w: axis %s is already linked", ErrLinkConflict, mirror.Name)
	}
	if err := mirror.validate(primary.rng); err != nil {
		return fmt.Errorf("%w: range of %s unusable for %s: %v", ErrLinkConflict, primary.Name, mirror.Name, err)
	}
	l := &rangeLink{primary: primary, mirror: mirror}
	primary.link, mirror.link = l, l
	mirror.rng = primary.rng
	return nil
}

// Mirror returns the axis linked to a, or nil.
func (a *Axis) Mirror() *Axis {
	if a.link == nil {
		return nil
	}
	return a.link.other(a)
}

// Unlink dissolves the link a takes part in, if any.
func (a *Axis) Unlink() {
	if a.link == nil {
		return
	}
	l := a.link
	l.primary.link, l.mirror.link = nil, nil
}

func (l *rangeLink) other(a *Axis) *Axis {
	if a == l.primary {
		return l.mirror
	}
	return l.primary
}

// set is called by SetRange on either side of the link. r has been
// validated for from.
func (l *rangeLink) set(from *Axis, r plotcore.Range) bool {
	if l.propagating {
		from.rng = r
		return true
	}
	to := l.other(from)
	if err := to.validate(r); err != nil {
		tracer().Infof("axis %s keeps range %s, invalid for mirror %s: %v", from.Name, from.rng, to.Name, err)
		return false
	}
	l.propagating = true
	defer func() { l.propagating = false }()
	from.rng = r
	return to.SetRange(r)
}
