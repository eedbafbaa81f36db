package raster

// inlineCap is the number of SpriteHandle slots stored directly inside a
// beginList before it spills to a heap slice. Most pixels host 0-4 sprites
// that begin there, so this avoids a heap allocation per pixel per frame in
// the common case.
const inlineCap = 4

// beginList is a small-vector of SpriteHandles that begin at a given (row, x).
// It is cleared (length reset to zero) between frames rather than
// reallocated, so its backing array is reused for the life of the
// RasterLine.
type beginList struct {
	inline [inlineCap]SpriteHandle
	n      int
	spill  []SpriteHandle
}

// append adds h to the list, spilling to the heap slice once inline
// capacity is exhausted.
func (b *beginList) append(h SpriteHandle) {
	if b.n < inlineCap {
		b.inline[b.n] = h
		b.n++
		return
	}
	b.spill = append(b.spill, h)
	b.n++
}

// len returns the number of entries currently stored.
func (b *beginList) len() int {
	return b.n
}

// at returns the i-th entry, 0 <= i < b.len().
func (b *beginList) at(i int) SpriteHandle {
	if i < inlineCap {
		return b.inline[i]
	}
	return b.spill[i-inlineCap]
}

// reset clears the list for reuse without releasing the spill backing
// array, so a transient spike doesn't force repeated reallocation next
// frame. See shrink for the bound on retained capacity.
func (b *beginList) reset() {
	b.n = 0
	b.spill = b.spill[:0]
}

// Reference constants for the memory-hygiene pass: if a spill slice's
// capacity grows far beyond what recent frames actually used, shrink it
// back down so a transient spike doesn't pin memory forever.
const (
	minExtraFactor  = 2
	maxWastageFactor = 4
	minSpillCapacity = 128
)

// shrink reallocates the spill backing array when its capacity has grown
// to more than maxWastageFactor times the list's last observed length,
// re-reserving minExtraFactor times that length (but never below
// minSpillCapacity once a reallocation already occurred). It is a no-op in
// the common case where spill capacity is modest.
func (b *beginList) shrink() {
	spillCap := cap(b.spill)
	if spillCap <= minSpillCapacity {
		return
	}
	if spillCap <= b.n*maxWastageFactor {
		return
	}
	newCap := b.n * minExtraFactor
	if newCap < minSpillCapacity {
		newCap = minSpillCapacity
	}
	b.spill = make([]SpriteHandle, 0, newCap)
}
