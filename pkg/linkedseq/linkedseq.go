// Package linkedseq implements a doubly linked sequence container with a circular sentinel.
//
// The sentinel is a node that never holds a value and is permanently part of the cycle.
// It is the end position for forward traversal and the boundary before the first element,
// so no operation needs to special-case an empty list or a nil link.
//
// Positions hold the node they address.
// Erasing a node detaches it, and positions still pointing at it report ErrOutOfRange.
package linkedseq

import (
	"iter"

	"go.llib.dev/seqkit/port/sequence"
)

// List is a doubly linked sequence container.
// The zero value is an empty List ready to use.
type List[T any] struct {
	sentinel *node[T]
	length   int
}

var _ sequence.Container[int, *List[int], *Iterator[int], *ConstIterator[int]] = (*List[int])(nil)

type node[T any] struct {
	value T
	next  *node[T]
	prev  *node[T]
}

// detached reports whether the node was unlinked from its list.
func (n *node[T]) detached() bool {
	return n.next == nil || n.prev == nil
}

// New creates a List holding vs in order.
func New[T any](vs ...T) *List[T] {
	l := &List[T]{}
	l.init()
	for _, v := range vs {
		l.Append(v)
	}
	return l
}

func (l *List[T]) init() *node[T] {
	if l.sentinel == nil {
		s := &node[T]{}
		s.next = s
		s.prev = s
		l.sentinel = s
	}
	return l.sentinel
}

func (l *List[T]) IsEmpty() bool { return l.length == 0 }

func (l *List[T]) Len() int { return l.length }

func (l *List[T]) Append(v T) {
	l.insertBefore(l.init(), v)
}

func (l *List[T]) Prepend(v T) {
	l.insertBefore(l.init().next, v)
}

// Insert places v before the node under the given position in O(1).
// Positions are not invalidated by Insert.
func (l *List[T]) Insert(at *ConstIterator[T], v T) error {
	if err := l.owns(at); err != nil {
		return err
	}
	l.insertBefore(at.node, v)
	return nil
}

// insertBefore splices a new node between at.prev and at.
func (l *List[T]) insertBefore(at *node[T], v T) {
	n := &node[T]{
		value: v,
		next:  at,
		prev:  at.prev,
	}
	at.prev.next = n
	at.prev = n
	l.length++
}

// unlink removes n from the cycle and detaches it.
func (l *List[T]) unlink(n *node[T]) {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.next = nil
	n.prev = nil
	l.length--
}

func (l *List[T]) PopFirst() (T, error) {
	if l.IsEmpty() {
		var zero T
		return zero, sequence.ErrOutOfRange.F("popping the first element of an empty list")
	}
	n := l.sentinel.next
	l.unlink(n)
	return n.value, nil
}

func (l *List[T]) PopLast() (T, error) {
	if l.IsEmpty() {
		var zero T
		return zero, sequence.ErrOutOfRange.F("popping the last element of an empty list")
	}
	n := l.sentinel.prev
	l.unlink(n)
	return n.value, nil
}

func (l *List[T]) Erase(at *ConstIterator[T]) error {
	if err := l.owns(at); err != nil {
		return err
	}
	if at.node == l.sentinel {
		return sequence.ErrOutOfRange.F("erasing the end position")
	}
	l.unlink(at.node)
	return nil
}

// EraseRange removes every node from first up to, but not including, lastExclusive.
// It is O(k) where k is the length of the range.
func (l *List[T]) EraseRange(first, lastExclusive *ConstIterator[T]) error {
	if err := l.owns(first); err != nil {
		return err
	}
	if err := l.owns(lastExclusive); err != nil {
		return err
	}
	var k int
	for n := first.node; n != lastExclusive.node; n = n.next {
		if n == l.sentinel {
			return sequence.ErrOutOfRange.F("range end is not reachable from the range start")
		}
		k++
	}
	if k == 0 {
		return nil
	}
	before, after := first.node.prev, lastExclusive.node
	for n := first.node; n != after; {
		next := n.next
		n.next, n.prev = nil, nil
		n = next
	}
	before.next = after
	after.prev = before
	l.length -= k
	return nil
}

// owns validates that the position is attached to this list.
func (l *List[T]) owns(it *ConstIterator[T]) error {
	if it == nil || it.node == nil || it.sentinel == nil || it.sentinel != l.sentinel {
		return sequence.ErrOutOfRange.F("position doesn't belong to this list")
	}
	if it.node.detached() {
		return sequence.ErrOutOfRange.F("position addresses an erased element")
	}
	return nil
}

func (l *List[T]) Begin() *Iterator[T] {
	return &Iterator[T]{ConstIterator: *l.ConstBegin()}
}

func (l *List[T]) End() *Iterator[T] {
	return &Iterator[T]{ConstIterator: *l.ConstEnd()}
}

func (l *List[T]) ConstBegin() *ConstIterator[T] {
	s := l.init()
	return &ConstIterator[T]{sentinel: s, node: s.next}
}

func (l *List[T]) ConstEnd() *ConstIterator[T] {
	s := l.init()
	return &ConstIterator[T]{sentinel: s, node: s}
}

func (l *List[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l == nil || l.sentinel == nil {
			return
		}
		for n := l.sentinel.next; n != l.sentinel; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l == nil || l.sentinel == nil {
			return
		}
		for n := l.sentinel.prev; n != l.sentinel; n = n.prev {
			if !yield(n.value) {
				return
			}
		}
	}
}

func (l *List[T]) Slice() []T {
	vs := make([]T, 0, l.length)
	for v := range l.Iter() {
		vs = append(vs, v)
	}
	return vs
}

// Clone returns a deep copy, every node is allocated anew.
func (l *List[T]) Clone() *List[T] {
	var c List[T]
	c.CopyFrom(l)
	return &c
}

// CopyFrom replaces the contents of the list with a deep copy of src.
func (l *List[T]) CopyFrom(src *List[T]) {
	if l == src {
		return
	}
	l.clear()
	for v := range src.Iter() {
		l.Append(v)
	}
}

// Move hands over the node chain to a new List and leaves the receiver empty.
// Positions taken from the receiver keep addressing the same nodes in the new List.
func (l *List[T]) Move() *List[T] {
	var m List[T]
	m.MoveFrom(l)
	return &m
}

// MoveFrom drops the current nodes and takes over the node chain of src.
// src is left empty.
func (l *List[T]) MoveFrom(src *List[T]) {
	if l == src {
		return
	}
	l.clear()
	l.sentinel, l.length = src.sentinel, src.length
	src.sentinel, src.length = nil, 0
}

// clear detaches every value node, so positions into them stop working.
func (l *List[T]) clear() {
	if l.sentinel == nil {
		return
	}
	for n := l.sentinel.next; n != l.sentinel; {
		next := n.next
		n.next, n.prev = nil, nil
		n = next
	}
	l.sentinel.next = l.sentinel
	l.sentinel.prev = l.sentinel
	l.length = 0
}
