package filter

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// RowMask is a per-row boolean vector implemented as a 32-bit Roaring
// Bitmap: bit i set means row i matches.
type RowMask struct {
	rb *roaring.Bitmap
}

// NewRowMask creates a new empty mask (no rows match).
func NewRowMask() *RowMask {
	return &RowMask{rb: roaring.New()}
}

// FullRowMask creates a mask with all n row bits set.
func FullRowMask(n int) *RowMask {
	m := NewRowMask()
	if n > 0 {
		m.rb.AddRange(0, uint64(n))
	}
	return m
}

// Add sets the bit for row i.
func (m *RowMask) Add(i int) {
	m.rb.Add(uint32(i))
}

// Contains reports whether the bit for row i is set.
func (m *RowMask) Contains(i int) bool {
	return m.rb.Contains(uint32(i))
}

// Count returns the number of set bits.
func (m *RowMask) Count() int {
	return int(m.rb.GetCardinality())
}

// IsEmpty reports whether no bits are set.
func (m *RowMask) IsEmpty() bool {
	return m.rb.IsEmpty()
}

// And intersects m with other in place.
func (m *RowMask) And(other *RowMask) {
	m.rb.And(other.rb)
}

// Or unions m with other in place.
func (m *RowMask) Or(other *RowMask) {
	m.rb.Or(other.rb)
}

// Clone returns a deep copy of the mask.
func (m *RowMask) Clone() *RowMask {
	return &RowMask{rb: m.rb.Clone()}
}

// Rows returns an iterator over set row indices in ascending order.
func (m *RowMask) Rows() iter.Seq[int] {
	return func(yield func(int) bool) {
		it := m.rb.Iterator()
		for it.HasNext() {
			if !yield(int(it.Next())) {
				return
			}
		}
	}
}

// Indices returns the set row indices in ascending order.
func (m *RowMask) Indices() []int {
	out := make([]int, 0, m.Count())
	for i := range m.Rows() {
		out = append(out, i)
	}
	return out
}
