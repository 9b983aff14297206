package axis

import (
	"unicode/utf8"

	"github.com/bits-and-blooms/bitset"
	"github.com/npillmayer/plotcore/ticks"
)

// Font describes the font labels are set in. It is opaque to this package
// and handed through to the Measurer.
type Font struct {
	Family string
	Size   float64
}

// Measurer returns the width and height of a label in drawing units. It
// must be deterministic for identical arguments within a layout pass.
type Measurer func(text string, font Font) (width, height float64)

// FixedPitch is a Measurer for fonts where every glyph advances by
// advance·size, with lines of lineHeight·size.
func FixedPitch(advance, lineHeight float64) Measurer {
	return func(text string, font Font) (float64, float64) {
		n := utf8.RuneCountInString(text)
		if n == 0 {
			return 0, 0
		}
		return float64(n) * advance * font.Size, lineHeight * font.Size
	}
}

// Formatter turns a tick into label text. An empty string means "no label".
type Formatter func(t ticks.Tick) string

// labelSlot is the cached metadata of the label at one tick index.
type labelSlot struct {
	text          string
	font          Font
	width, height float64
}

// labelArena keeps label slots across layout passes. Slots grow on demand
// and are never released; slots not touched during the current pass are
// stale and their labels hidden.
type labelArena struct {
	slots []labelSlot
	used  bitset.BitSet
}

// beginPass marks all slots stale.
func (la *labelArena) beginPass() {
	la.used.ClearAll()
}

// measure fills slot i with text and its size, measuring only if text or
// font changed since the slot was last filled.
func (la *labelArena) measure(i int, text string, font Font, m Measurer) labelSlot {
	if i >= cap(la.slots) {
		grown := make([]labelSlot, len(la.slots), 2*(i+1))
		copy(grown, la.slots)
		la.slots = grown
	}
	if i >= len(la.slots) {
		la.slots = la.slots[:i+1]
	}
	s := &la.slots[i]
	if s.text != text || s.font != font {
		s.text, s.font = text, font
		s.width, s.height = 0, 0
		if text != "" {
			s.width, s.height = m(text, font)
		}
	}
	la.used.Set(uint(i))
	return *s
}

// slot returns the label at index i and whether it is live in this pass.
func (la *labelArena) slot(i int) (labelSlot, bool) {
	if i < 0 || i >= len(la.slots) || !la.used.Test(uint(i)) {
		return labelSlot{}, false
	}
	return la.slots[i], true
}

// live counts the slots touched in this pass.
func (la *labelArena) live() int {
	return int(la.used.Count())
}

// capacity is the number of slots ever allocated.
func (la *labelArena) capacity() int {
	return len(la.slots)
}
