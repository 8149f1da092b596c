package input

// Input is an immutable, ordered sequence of elements of type E.
//
// Input identity is by pointer: two *Input values with identical Data are
// still distinct for the purpose of binding a Configuration, which is why
// New always allocates a fresh *Input rather than interning by content.
type Input[E comparable] struct {
	data []E
}

// New creates an Input wrapping a copy of data. The caller's slice is not
// retained, so later mutation of data has no effect on the Input.
//
// Complexity: O(n).
func New[E comparable](data []E) *Input[E] {
	cp := make([]E, len(data))
	copy(cp, data)
	return &Input[E]{data: cp}
}

// Len returns the number of elements in the Input.
func (in *Input[E]) Len() int {
	if in == nil {
		return 0
	}
	return len(in.data)
}

// At returns the element at i. Callers must ensure 0 <= i < in.Len().
func (in *Input[E]) At(i int) E {
	return in.data[i]
}

// Data returns a copy of the full backing sequence.
//
// Complexity: O(n).
func (in *Input[E]) Data() []E {
	cp := make([]E, len(in.data))
	copy(cp, in.data)
	return cp
}
