package schedule

import "planboard/internal/domain"

// Segment is a run of cells inside a rendered slot, colored for one selector
type Segment struct {
	User     domain.User
	Offset   int
	Width    int
	Overflow bool // more selectors than cells; this segment stands in for the rest
}

// Segments splits width cells evenly between selectors, earlier selectors
// taking the remainder. Offsets are contiguous and cover [0, width).
func Segments(selectors []domain.User, width int) []Segment {
	n := len(selectors)
	if n == 0 || width <= 0 {
		return nil
	}

	k := n
	if k > width {
		k = width
	}
	base, extra := width/k, width%k

	segs := make([]Segment, k)
	offset := 0
	for i := 0; i < k; i++ {
		w := base
		if i < extra {
			w++
		}
		segs[i] = Segment{User: selectors[i], Offset: offset, Width: w}
		offset += w
	}
	if n > width {
		segs[k-1].Overflow = true
	}
	return segs
}
