// Package levelgen builds platform layouts: hand-authored levels and an
// endless, chunked procedural extension ahead of the camera.
package levelgen

import (
	"fmt"
	"math"
	"sort"
)

// Ledger records which chunks have already been generated.
// It only grows until the level is reloaded.
type Ledger struct {
	width  int
	chunks map[int]struct{}
}

// NewLedger creates an empty ledger for chunks of the given width.
func NewLedger(chunkWidth int) *Ledger {
	if chunkWidth <= 0 {
		panic(fmt.Sprintf("levelgen: chunk width must be positive, got %d", chunkWidth))
	}
	return &Ledger{width: chunkWidth, chunks: make(map[int]struct{})}
}

// ChunkWidth returns the chunk width in world units.
func (l *Ledger) ChunkWidth() int {
	return l.width
}

// ChunkIndex returns the index of the chunk containing world x.
func (l *Ledger) ChunkIndex(x float64) int {
	return int(math.Floor(x / float64(l.width)))
}

// Bounds returns the world interval [start, end) of chunk i.
func (l *Ledger) Bounds(i int) (start, end int) {
	return i * l.width, (i + 1) * l.width
}

// Has reports whether chunk i was generated.
func (l *Ledger) Has(i int) bool {
	_, ok := l.chunks[i]
	return ok
}

// Mark records chunk i and reports whether it was new.
func (l *Ledger) Mark(i int) bool {
	if l.Has(i) {
		return false
	}
	l.chunks[i] = struct{}{}
	return true
}

// Len returns the number of generated chunks.
func (l *Ledger) Len() int {
	return len(l.chunks)
}

// Indices returns the generated chunk indices in ascending order.
func (l *Ledger) Indices() []int {
	out := make([]int, 0, len(l.chunks))
	for i := range l.chunks {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}
