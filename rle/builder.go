package rle

// Builder accumulates values into maximal runs and produces a Vec.
//
// The zero value is ready to use.
type Builder[T comparable] struct {
	runs []Run[T]
	ends []int
}

// NewBuilder creates a Builder with room for runsHint runs before reallocating.
func NewBuilder[T comparable](runsHint int) *Builder[T] {
	if runsHint < 0 {
		runsHint = 0
	}

	return &Builder[T]{
		runs: make([]Run[T], 0, runsHint),
		ends: make([]int, 0, runsHint),
	}
}

// Push appends a single value.
func (b *Builder[T]) Push(value T) {
	b.PushN(value, 1)
}

// PushN appends value n times. It extends the last run when value equals the last
// run's value. Non-positive n is ignored.
func (b *Builder[T]) PushN(value T, n int) {
	if n <= 0 {
		return
	}

	if last := len(b.runs) - 1; last >= 0 && b.runs[last].Value == value {
		b.runs[last].Count += n
		b.ends[last] += n

		return
	}

	b.runs = append(b.runs, Run[T]{Value: value, Count: n})
	b.ends = append(b.ends, b.Len()+n)
}

// Len returns the number of logical elements pushed so far.
func (b *Builder[T]) Len() int {
	if len(b.ends) == 0 {
		return 0
	}

	return b.ends[len(b.ends)-1]
}

// RunsLen returns the number of runs formed so far.
func (b *Builder[T]) RunsLen() int {
	return len(b.runs)
}

// Build returns the accumulated Vec and resets the builder.
//
// The Vec takes ownership of the accumulated runs, so pushing after Build starts a
// new, independent sequence.
func (b *Builder[T]) Build() *Vec[T] {
	v := &Vec[T]{runs: b.runs, ends: b.ends}
	b.runs, b.ends = nil, nil

	return v
}
