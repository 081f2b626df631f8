package grid

import "github.com/andareed/siftly-grid/gridsearch"

// ScrollAxis lays out one dimension of the grid. Lines before frozen never
// scroll; the rest start at offset. A line of size 0 is hidden.
type ScrollAxis struct {
	sizes    []int
	frozen   int
	offset   int
	viewport int
}

func NewScrollAxis(sizes []int, frozen, viewport int) *ScrollAxis {
	a := &ScrollAxis{viewport: viewport}
	a.Reset(sizes, frozen)
	return a
}

// Reset replaces the line sizes and keeps the offset where it still fits.
func (a *ScrollAxis) Reset(sizes []int, frozen int) {
	a.sizes = sizes
	a.frozen = min(frozen, len(sizes))
	a.offset = a.clamp(a.offset)
}

func (a *ScrollAxis) SetViewport(size int) { a.viewport = max(size, 0) }

func (a *ScrollAxis) Viewport() int { return a.viewport }

func (a *ScrollAxis) Offset() int { return a.offset }

func (a *ScrollAxis) Count() int { return len(a.sizes) }

func (a *ScrollAxis) Size(i int) int {
	if i < 0 || i >= len(a.sizes) {
		return 0
	}
	return a.sizes[i]
}

func (a *ScrollAxis) clamp(offset int) int {
	if offset < a.frozen {
		offset = a.frozen
	}
	if offset > len(a.sizes)-1 {
		offset = max(len(a.sizes)-1, a.frozen)
	}
	return offset
}

func (a *ScrollAxis) frozenExtent() int {
	total := 0
	for i := 0; i < a.frozen; i++ {
		total += a.sizes[i]
	}
	return total
}

// VisibleLine reports where line i sits in the viewport. It returns false
// when the line is hidden, scrolled out, or starts past the viewport end.
func (a *ScrollAxis) VisibleLine(i int) (gridsearch.VisibleLine, bool) {
	if i < 0 || i >= len(a.sizes) || a.sizes[i] == 0 {
		return gridsearch.VisibleLine{}, false
	}

	origin := 0
	switch {
	case i < a.frozen:
		for j := 0; j < i; j++ {
			origin += a.sizes[j]
		}
	case i < a.offset:
		return gridsearch.VisibleLine{}, false
	default:
		origin = a.frozenExtent()
		for j := a.offset; j < i; j++ {
			origin += a.sizes[j]
		}
	}

	if origin >= a.viewport {
		return gridsearch.VisibleLine{}, false
	}
	size := a.sizes[i]
	return gridsearch.VisibleLine{
		Index:   i,
		Origin:  origin,
		Size:    size,
		Clipped: origin+size > a.viewport,
	}, true
}

// VisibleRange returns the scrolled lines currently laid out, hidden lines
// included, as [start, end).
func (a *ScrollAxis) VisibleRange() (start, end int) {
	used := a.frozenExtent()
	end = a.offset
	for end < len(a.sizes) && used < a.viewport {
		used += a.sizes[end]
		end++
	}
	return a.offset, end
}

// ScrollInView moves the offset the least amount that shows line i fully.
// A line larger than the viewport is aligned to the top.
func (a *ScrollAxis) ScrollInView(i int) {
	if i < a.frozen || i >= len(a.sizes) {
		return
	}
	if i < a.offset {
		a.offset = i
		return
	}
	for a.offset < i {
		line, ok := a.VisibleLine(i)
		if ok && !line.Clipped {
			return
		}
		a.offset++
	}
}

func (a *ScrollAxis) ScrollBy(n int) {
	a.offset = a.clamp(a.offset + n)
}
