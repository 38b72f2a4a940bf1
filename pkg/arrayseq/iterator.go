package arrayseq

import (
	"go.llib.dev/seqkit/port/sequence"
)

// ConstIterator is a read-only position in an Array.
type ConstIterator[T any] struct {
	array *Array[T]
	index int
}

var _ sequence.ConstPosition[int, *ConstIterator[int]] = (*ConstIterator[int])(nil)

func (it *ConstIterator[T]) Value() (T, error) {
	if it.array == nil || it.array.length <= it.index || it.index < 0 {
		var zero T
		return zero, sequence.ErrOutOfRange.F("dereferencing the end position")
	}
	return it.array.buf[it.index], nil
}

func (it *ConstIterator[T]) Next() error {
	if it.array == nil || it.array.length <= it.index {
		return sequence.ErrOutOfRange.F("incrementing the end position")
	}
	it.index++
	return nil
}

func (it *ConstIterator[T]) Prev() error {
	if it.index <= 0 {
		return sequence.ErrOutOfRange.F("decrementing the begin position")
	}
	it.index--
	return nil
}

func (it *ConstIterator[T]) PostNext() (*ConstIterator[T], error) {
	prev := *it
	if err := it.Next(); err != nil {
		return nil, err
	}
	return &prev, nil
}

func (it *ConstIterator[T]) PostPrev() (*ConstIterator[T], error) {
	prev := *it
	if err := it.Prev(); err != nil {
		return nil, err
	}
	return &prev, nil
}

// Add is O(1), it only validates that the target offset stays within [begin, end].
func (it *ConstIterator[T]) Add(n int) (*ConstIterator[T], error) {
	target := it.index + n
	if target < 0 {
		return nil, sequence.ErrOutOfRange.F("moving %d steps from offset %d goes before the begin position", n, it.index)
	}
	if it.array == nil || it.array.length < target {
		return nil, sequence.ErrOutOfRange.F("moving %d steps from offset %d goes past the end position", n, it.index)
	}
	return &ConstIterator[T]{array: it.array, index: target}, nil
}

func (it *ConstIterator[T]) Sub(n int) (*ConstIterator[T], error) {
	return it.Add(-n)
}

func (it *ConstIterator[T]) Equal(oth *ConstIterator[T]) bool {
	if it == nil || oth == nil {
		return it == oth
	}
	return it.array == oth.array && it.index == oth.index
}

// Offset returns the distance from the begin position.
func (it *ConstIterator[T]) Offset() int { return it.index }

// Iterator is a read-write position in an Array.
type Iterator[T any] struct {
	ConstIterator[T]
}

var _ sequence.Position[int, *Iterator[int], *ConstIterator[int]] = (*Iterator[int])(nil)

// Set assigns v to the element under the position.
func (it *Iterator[T]) Set(v T) error {
	if it.array == nil || it.array.length <= it.index || it.index < 0 {
		return sequence.ErrOutOfRange.F("assigning to the end position")
	}
	it.array.buf[it.index] = v
	return nil
}

func (it *Iterator[T]) Const() *ConstIterator[T] {
	c := it.ConstIterator
	return &c
}

func (it *Iterator[T]) PostNext() (*Iterator[T], error) {
	prev, err := it.ConstIterator.PostNext()
	if err != nil {
		return nil, err
	}
	return &Iterator[T]{ConstIterator: *prev}, nil
}

func (it *Iterator[T]) PostPrev() (*Iterator[T], error) {
	prev, err := it.ConstIterator.PostPrev()
	if err != nil {
		return nil, err
	}
	return &Iterator[T]{ConstIterator: *prev}, nil
}

func (it *Iterator[T]) Add(n int) (*Iterator[T], error) {
	c, err := it.ConstIterator.Add(n)
	if err != nil {
		return nil, err
	}
	return &Iterator[T]{ConstIterator: *c}, nil
}

func (it *Iterator[T]) Sub(n int) (*Iterator[T], error) {
	return it.Add(-n)
}

func (it *Iterator[T]) Equal(oth *Iterator[T]) bool {
	if it == nil || oth == nil {
		return it == oth
	}
	return it.ConstIterator.Equal(&oth.ConstIterator)
}
