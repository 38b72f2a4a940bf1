package linkedseq

import (
	"go.llib.dev/seqkit/port/sequence"
)

// ConstIterator is a read-only position in a List.
type ConstIterator[T any] struct {
	sentinel *node[T]
	node     *node[T]
}

var _ sequence.ConstPosition[int, *ConstIterator[int]] = (*ConstIterator[int])(nil)

func (it *ConstIterator[T]) Value() (T, error) {
	if it.node == nil || it.node == it.sentinel {
		var zero T
		return zero, sequence.ErrOutOfRange.F("dereferencing the end position")
	}
	if it.node.detached() {
		var zero T
		return zero, sequence.ErrOutOfRange.F("dereferencing an erased element")
	}
	return it.node.value, nil
}

func (it *ConstIterator[T]) Next() error {
	if it.node == nil || it.node == it.sentinel {
		return sequence.ErrOutOfRange.F("incrementing the end position")
	}
	if it.node.detached() {
		return sequence.ErrOutOfRange.F("incrementing an erased element")
	}
	it.node = it.node.next
	return nil
}

func (it *ConstIterator[T]) Prev() error {
	if it.node == nil || it.sentinel == nil || it.node == it.sentinel.next {
		return sequence.ErrOutOfRange.F("decrementing the begin position")
	}
	if it.node.detached() {
		return sequence.ErrOutOfRange.F("decrementing an erased element")
	}
	it.node = it.node.prev
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

// Add steps n times, so it costs O(n).
func (it *ConstIterator[T]) Add(n int) (*ConstIterator[T], error) {
	if n < 0 {
		return it.Sub(-n)
	}
	out := *it
	for i := 0; i < n; i++ {
		if err := out.Next(); err != nil {
			return nil, err
		}
	}
	return &out, nil
}

// Sub steps back n times, so it costs O(n).
func (it *ConstIterator[T]) Sub(n int) (*ConstIterator[T], error) {
	if n < 0 {
		return it.Add(-n)
	}
	out := *it
	for i := 0; i < n; i++ {
		if err := out.Prev(); err != nil {
			return nil, err
		}
	}
	return &out, nil
}

// Equal compares node identity.
func (it *ConstIterator[T]) Equal(oth *ConstIterator[T]) bool {
	if it == nil || oth == nil {
		return it == oth
	}
	return it.node == oth.node
}

// Iterator is a read-write position in a List.
type Iterator[T any] struct {
	ConstIterator[T]
}

var _ sequence.Position[int, *Iterator[int], *ConstIterator[int]] = (*Iterator[int])(nil)

// Set assigns v to the element under the position.
func (it *Iterator[T]) Set(v T) error {
	if it.node == nil || it.node == it.sentinel {
		return sequence.ErrOutOfRange.F("assigning to the end position")
	}
	if it.node.detached() {
		return sequence.ErrOutOfRange.F("assigning to an erased element")
	}
	it.node.value = v
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
	c, err := it.ConstIterator.Sub(n)
	if err != nil {
		return nil, err
	}
	return &Iterator[T]{ConstIterator: *c}, nil
}

func (it *Iterator[T]) Equal(oth *Iterator[T]) bool {
	if it == nil || oth == nil {
		return it == oth
	}
	return it.ConstIterator.Equal(&oth.ConstIterator)
}
