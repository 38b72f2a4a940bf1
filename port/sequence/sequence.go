// Package sequence defines the role interfaces shared by the sequence containers.
//
// A supplier implements Sequence over its own Position types,
// so containers with different storage models stay interchangeable for their consumers.
package sequence

import (
	"iter"

	"go.llib.dev/frameless/pkg/errorkit"
)

// ErrOutOfRange is the only error kind a sequence container reports.
//
// It is returned when popping from an empty container,
// erasing or dereferencing the end position,
// moving a position past the end or before the beginning,
// or when a position that doesn't belong to the container is used with it.
const ErrOutOfRange errorkit.Error = "ErrOutOfRange"

type Sizer interface {
	Len() int
}

// ConstPosition is a read-only cursor over a sequence.
// CP is the implementing position type itself.
type ConstPosition[T, CP any] interface {
	// Value dereferences the position.
	Value() (T, error)
	// Next moves the position one step forward in place.
	Next() error
	// Prev moves the position one step backward in place.
	Prev() error
	// PostNext moves forward and returns the position as it was before the move.
	PostNext() (CP, error)
	// PostPrev moves backward and returns the position as it was before the move.
	PostPrev() (CP, error)
	// Add returns a new position n steps forward. Negative n moves backward.
	Add(n int) (CP, error)
	// Sub returns a new position n steps backward. Negative n moves forward.
	Sub(n int) (CP, error)
	// Equal reports whether both positions address the same location.
	// Positions are never compared by the value they point to.
	Equal(oth CP) bool
}

// Position is a read-write cursor, it can assign through the dereferenced location.
type Position[T, P, CP any] interface {
	ConstPosition[T, P]
	Set(v T) error
	// Const returns a read-only position for the same location.
	Const() CP
}

type Sequence[T, P, CP any] interface {
	Sizer
	IsEmpty() bool
	Append(v T)
	Prepend(v T)
	// Insert places v right before the given position.
	Insert(at CP, v T) error
	PopFirst() (T, error)
	PopLast() (T, error)
	Erase(at CP) error
	// EraseRange removes the [first, lastExclusive) half-open range.
	EraseRange(first, lastExclusive CP) error
	Begin() P
	End() P
	ConstBegin() CP
	ConstEnd() CP
	Iter() iter.Seq[T]
	Backward() iter.Seq[T]
	Slice() []T
}

// Container is a Sequence with value semantics.
// S is the implementing container type itself.
type Container[T, S, P, CP any] interface {
	Sequence[T, P, CP]
	// Clone makes a deep copy.
	Clone() S
	// CopyFrom replaces the contents with a deep copy of src.
	CopyFrom(src S)
	// Move transfers the contents into a new container and leaves the receiver empty.
	Move() S
	// MoveFrom takes over the contents of src and leaves src empty.
	MoveFrom(src S)
}

// Prepender is the role a timing harness needs from a container.
type Prepender[T any] interface {
	Sizer
	Append(v T)
	Prepend(v T)
}
