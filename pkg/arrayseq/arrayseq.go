// Package arrayseq implements a sequence container over a contiguous, growable buffer.
//
// The buffer grows by a fixed increment rather than by a multiplier.
// This trades memory for fewer reallocations under repeated appends.
//
// Positions are offsets bound to their Array, not addresses into the buffer,
// so a reallocation never leaves a position pointing into released memory.
// Positions obtained before a structural change (insert, erase, pop)
// may address a different element afterwards; keeping track of that is the caller's job.
package arrayseq

import (
	"iter"

	"go.llib.dev/frameless/port/option"
	"go.llib.dev/seqkit/port/sequence"
)

const (
	DefaultInitialCapacity = 4
	DefaultGrowthIncrement = 1000
)

// Array is a contiguous sequence container.
// The zero value is an empty Array ready to use.
type Array[T any] struct {
	// buf holds capacity slots, [0, length) are live,
	// [length, capacity) always hold the zero value.
	buf    []T
	length int

	initialCapacity int
	growthIncrement int
}

var _ sequence.Container[int, *Array[int], *Iterator[int], *ConstIterator[int]] = (*Array[int])(nil)

type Config struct {
	// InitialCapacity is the number of slots allocated at construction.
	//
	// Default: DefaultInitialCapacity
	InitialCapacity int
	// GrowthIncrement is the number of slots added to the buffer when it overflows.
	//
	// Default: DefaultGrowthIncrement
	GrowthIncrement int
}

func (c Config) Configure(t *Config) {
	if 0 < c.InitialCapacity {
		t.InitialCapacity = c.InitialCapacity
	}
	if 0 < c.GrowthIncrement {
		t.GrowthIncrement = c.GrowthIncrement
	}
}

type Option option.Option[Config]

func InitialCapacity(n int) Option {
	return option.Func[Config](func(c *Config) { c.InitialCapacity = n })
}

func GrowthIncrement(n int) Option {
	return option.Func[Config](func(c *Config) { c.GrowthIncrement = n })
}

// New creates an Array holding vs in order.
func New[T any](vs ...T) *Array[T] {
	a := Make[T]()
	for _, v := range vs {
		a.Append(v)
	}
	return a
}

// Make creates an empty Array with its starting buffer already allocated.
func Make[T any](opts ...Option) *Array[T] {
	c := option.ToConfig[Config](opts)
	a := &Array[T]{
		initialCapacity: c.InitialCapacity,
		growthIncrement: c.GrowthIncrement,
	}
	a.init()
	return a
}

func (a *Array[T]) init() {
	if a.buf == nil {
		a.buf = make([]T, a.getInitialCapacity())
	}
}

func (a *Array[T]) getInitialCapacity() int {
	if a.initialCapacity <= 0 {
		return DefaultInitialCapacity
	}
	return a.initialCapacity
}

func (a *Array[T]) getGrowthIncrement() int {
	if a.growthIncrement <= 0 {
		return DefaultGrowthIncrement
	}
	return a.growthIncrement
}

// reserve makes sure there is room for one more element.
func (a *Array[T]) reserve() {
	a.init()
	if a.length < len(a.buf) {
		return
	}
	buf := make([]T, len(a.buf)+a.getGrowthIncrement())
	copy(buf, a.buf[:a.length])
	a.buf = buf
}

func (a *Array[T]) IsEmpty() bool { return a.length == 0 }

func (a *Array[T]) Len() int { return a.length }

// Cap returns the number of allocated slots.
func (a *Array[T]) Cap() int { return len(a.buf) }

// Append adds v to the end. Amortised O(1), O(n) when the buffer has to grow.
func (a *Array[T]) Append(v T) {
	a.reserve()
	a.buf[a.length] = v
	a.length++
}

// Prepend adds v to the beginning. It always shifts every element, O(n).
func (a *Array[T]) Prepend(v T) {
	a.reserve()
	copy(a.buf[1:a.length+1], a.buf[:a.length])
	a.buf[0] = v
	a.length++
}

// Insert places v before the element at the given position.
//
// The position is an offset, so even when the insert reallocates the buffer,
// the passed position keeps its offset and addresses the newly inserted element afterwards.
// Every other position derived before the call should be considered invalid.
func (a *Array[T]) Insert(at *ConstIterator[T], v T) error {
	index, err := a.offsetOf(at)
	if err != nil {
		return err
	}
	switch index {
	case 0:
		a.Prepend(v)
		return nil
	case a.length:
		a.Append(v)
		return nil
	}
	a.reserve()
	copy(a.buf[index+1:a.length+1], a.buf[index:a.length])
	a.buf[index] = v
	a.length++
	return nil
}

func (a *Array[T]) PopFirst() (T, error) {
	if a.IsEmpty() {
		var zero T
		return zero, sequence.ErrOutOfRange.F("popping the first element of an empty array")
	}
	v := a.buf[0]
	copy(a.buf, a.buf[1:a.length])
	a.release(1)
	return v, nil
}

func (a *Array[T]) PopLast() (T, error) {
	if a.IsEmpty() {
		var zero T
		return zero, sequence.ErrOutOfRange.F("popping the last element of an empty array")
	}
	v := a.buf[a.length-1]
	a.release(1)
	return v, nil
}

func (a *Array[T]) Erase(at *ConstIterator[T]) error {
	index, err := a.offsetOf(at)
	if err != nil {
		return err
	}
	if index == a.length {
		return sequence.ErrOutOfRange.F("erasing the end position")
	}
	copy(a.buf[index:], a.buf[index+1:a.length])
	a.release(1)
	return nil
}

func (a *Array[T]) EraseRange(first, lastExclusive *ConstIterator[T]) error {
	from, err := a.offsetOf(first)
	if err != nil {
		return err
	}
	till, err := a.offsetOf(lastExclusive)
	if err != nil {
		return err
	}
	if till < from {
		return sequence.ErrOutOfRange.F("range start (%d) is after its end (%d)", from, till)
	}
	if from == 0 && till == a.length {
		a.release(a.length)
		return nil
	}
	if from == till {
		return nil
	}
	copy(a.buf[from:], a.buf[till:a.length])
	a.release(till - from)
	return nil
}

// release drops the last n live slots.
func (a *Array[T]) release(n int) {
	clear(a.buf[a.length-n : a.length])
	a.length -= n
}

// offsetOf validates that the position belongs to this array and lies within [begin, end].
func (a *Array[T]) offsetOf(it *ConstIterator[T]) (int, error) {
	if it == nil || it.array != a {
		return 0, sequence.ErrOutOfRange.F("position doesn't belong to this array")
	}
	if it.index < 0 || a.length < it.index {
		return 0, sequence.ErrOutOfRange.F("position offset %d is outside of [0, %d]", it.index, a.length)
	}
	return it.index, nil
}

func (a *Array[T]) Begin() *Iterator[T] {
	return &Iterator[T]{ConstIterator: ConstIterator[T]{array: a, index: 0}}
}

func (a *Array[T]) End() *Iterator[T] {
	return &Iterator[T]{ConstIterator: ConstIterator[T]{array: a, index: a.length}}
}

func (a *Array[T]) ConstBegin() *ConstIterator[T] {
	return &ConstIterator[T]{array: a, index: 0}
}

func (a *Array[T]) ConstEnd() *ConstIterator[T] {
	return &ConstIterator[T]{array: a, index: a.length}
}

func (a *Array[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		if a == nil {
			return
		}
		for i := 0; i < a.length; i++ {
			if !yield(a.buf[i]) {
				return
			}
		}
	}
}

func (a *Array[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		if a == nil {
			return
		}
		for i := a.length - 1; 0 <= i; i-- {
			if !yield(a.buf[i]) {
				return
			}
		}
	}
}

// Slice returns a copy of the live elements.
func (a *Array[T]) Slice() []T {
	out := make([]T, a.length)
	copy(out, a.buf[:a.length])
	return out
}

// Clone returns a deep copy with the same capacity and growth configuration.
func (a *Array[T]) Clone() *Array[T] {
	var c Array[T]
	c.CopyFrom(a)
	return &c
}

// CopyFrom replaces the contents of the array with a deep copy of src.
func (a *Array[T]) CopyFrom(src *Array[T]) {
	if a == src {
		return
	}
	a.initialCapacity = src.initialCapacity
	a.growthIncrement = src.growthIncrement
	a.buf = make([]T, max(len(src.buf), src.getInitialCapacity()))
	a.length = copy(a.buf, src.buf[:src.length])
}

// Move hands over the buffer to a new Array.
// The receiver is left empty and without storage.
func (a *Array[T]) Move() *Array[T] {
	var m Array[T]
	m.MoveFrom(a)
	return &m
}

// MoveFrom takes over the buffer of src, dropping the current one.
// src is left empty and without storage.
func (a *Array[T]) MoveFrom(src *Array[T]) {
	if a == src {
		return
	}
	a.buf, a.length = src.buf, src.length
	a.initialCapacity = src.initialCapacity
	a.growthIncrement = src.growthIncrement
	src.buf, src.length = nil, 0
}
