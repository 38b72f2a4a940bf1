// Package sequencecontract holds the behavioural contract of the sequence containers.
//
// Any supplier of sequence.Container can run it to prove it is interchangeable with the others:
//
//	sequencecontract.Container[int, *MySeq[int], *MyIter[int], *MyConstIter[int]](func(tb testing.TB) *MySeq[int] {
//		return &MySeq[int]{}
//	}).Test(t)
package sequencecontract

import (
	"fmt"

	"go.llib.dev/frameless/pkg/reflectkit"
	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/frameless/port/option"
	"go.llib.dev/seqkit/port/sequence"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
)

// Container is the contract of a sequence.Container supplier.
// The Make function must return an empty container.
func Container[T any, S sequence.Container[T, S, P, CP], P sequence.Position[T, P, CP], CP sequence.ConstPosition[T, CP]](
	make contract.Make[S],
	opts ...Option[T],
) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig[Config[T]](opts)

	seq := let.Var(s, func(t *testcase.T) S {
		return make(t)
	})

	Sequence[T, S, P, CP](make, c).Spec(s)
	Position[T, S, P, CP](make, c).Spec(s)

	s.Describe("#Clone", func(s *testcase.Spec) {
		values := let.Var(s, func(t *testcase.T) []T {
			return c.makeTs(t, t.Random.IntBetween(1, 7))
		})
		seq.Let(s, func(t *testcase.T) S {
			seq := seq.Super(t)
			for _, v := range values.Get(t) {
				seq.Append(v)
			}
			return seq
		})
		act := let.Act(func(t *testcase.T) S {
			return seq.Get(t).Clone()
		})

		s.Then("the copy holds the same values", func(t *testcase.T) {
			assert.Equal(t, values.Get(t), act(t).Slice())
		})

		s.Then("mutating the copy leaves the original intact", func(t *testcase.T) {
			cp := act(t)
			cp.Append(c.makeT(t))
			_, err := cp.PopFirst()
			assert.NoError(t, err)
			if it := cp.Begin(); !it.Equal(cp.End()) {
				assert.NoError(t, it.Set(c.makeT(t)))
			}

			assert.Equal(t, values.Get(t), seq.Get(t).Slice())
			assert.Equal(t, len(values.Get(t)), seq.Get(t).Len())
		})

		s.Then("mutating the original leaves the copy intact", func(t *testcase.T) {
			cp := act(t)
			_, err := seq.Get(t).PopLast()
			assert.NoError(t, err)
			seq.Get(t).Prepend(c.makeT(t))

			assert.Equal(t, values.Get(t), cp.Slice())
		})
	})

	s.Describe("#CopyFrom", func(s *testcase.Spec) {
		src := let.Var(s, func(t *testcase.T) S {
			src := make(t)
			for _, v := range c.makeTs(t, t.Random.IntBetween(1, 7)) {
				src.Append(v)
			}
			return src
		})
		s.Before(func(t *testcase.T) {
			for _, v := range c.makeTs(t, t.Random.IntBetween(0, 3)) {
				seq.Get(t).Append(v)
			}
		})
		act := let.Act0(func(t *testcase.T) {
			seq.Get(t).CopyFrom(src.Get(t))
		})

		s.Then("the previous content is replaced by the source's values", func(t *testcase.T) {
			act(t)
			assert.Equal(t, src.Get(t).Slice(), seq.Get(t).Slice())
			assert.Equal(t, src.Get(t).Len(), seq.Get(t).Len())
		})

		s.Then("the two containers stay independent", func(t *testcase.T) {
			act(t)
			exp := src.Get(t).Slice()
			seq.Get(t).Append(c.makeT(t))
			_, err := seq.Get(t).PopFirst()
			assert.NoError(t, err)
			assert.Equal(t, exp, src.Get(t).Slice())
		})

		s.When("the container is copied onto itself", func(s *testcase.Spec) {
			src.Let(s, func(t *testcase.T) S { return seq.Get(t) })

			s.Then("the content remains the same", func(t *testcase.T) {
				exp := seq.Get(t).Slice()
				act(t)
				assert.Equal(t, exp, seq.Get(t).Slice())
			})
		})
	})

	s.Describe("#Move", func(s *testcase.Spec) {
		values := let.Var(s, func(t *testcase.T) []T {
			return c.makeTs(t, t.Random.IntBetween(1, 7))
		})
		seq.Let(s, func(t *testcase.T) S {
			seq := seq.Super(t)
			for _, v := range values.Get(t) {
				seq.Append(v)
			}
			return seq
		})
		act := let.Act(func(t *testcase.T) S {
			return seq.Get(t).Move()
		})

		s.Then("the new container holds the values", func(t *testcase.T) {
			assert.Equal(t, values.Get(t), act(t).Slice())
		})

		s.Then("the source is left empty", func(t *testcase.T) {
			act(t)
			assert.True(t, seq.Get(t).IsEmpty())
			assert.Equal(t, 0, seq.Get(t).Len())
			assert.Empty(t, seq.Get(t).Slice())
		})

		s.Then("the source stays usable", func(t *testcase.T) {
			act(t)
			v := c.makeT(t)
			seq.Get(t).Append(v)
			assert.Equal(t, []T{v}, seq.Get(t).Slice())
		})
	})

	s.Describe("#MoveFrom", func(s *testcase.Spec) {
		values := let.Var(s, func(t *testcase.T) []T {
			return c.makeTs(t, t.Random.IntBetween(1, 7))
		})
		src := let.Var(s, func(t *testcase.T) S {
			src := make(t)
			for _, v := range values.Get(t) {
				src.Append(v)
			}
			return src
		})
		s.Before(func(t *testcase.T) {
			for _, v := range c.makeTs(t, t.Random.IntBetween(0, 3)) {
				seq.Get(t).Append(v)
			}
		})
		act := let.Act0(func(t *testcase.T) {
			seq.Get(t).MoveFrom(src.Get(t))
		})

		s.Then("the content is taken over from the source", func(t *testcase.T) {
			act(t)
			assert.Equal(t, values.Get(t), seq.Get(t).Slice())
		})

		s.Then("the source is left empty", func(t *testcase.T) {
			act(t)
			assert.True(t, src.Get(t).IsEmpty())
			assert.Equal(t, 0, src.Get(t).Len())
		})

		s.When("the container is moved onto itself", func(s *testcase.Spec) {
			src.Let(s, func(t *testcase.T) S { return seq.Get(t) })

			s.Then("the content remains the same", func(t *testcase.T) {
				exp := seq.Get(t).Slice()
				act(t)
				assert.Equal(t, exp, seq.Get(t).Slice())
			})
		})
	})

	return s.AsSuite(fmt.Sprintf("sequence.Container[%s]", reflectkit.TypeOf[T]().String()))
}

// Sequence is the contract of the sequence.Sequence operations.
func Sequence[T any, S sequence.Sequence[T, P, CP], P sequence.Position[T, P, CP], CP sequence.ConstPosition[T, CP]](
	make contract.Make[S],
	opts ...Option[T],
) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig[Config[T]](opts)

	seq := let.Var(s, func(t *testcase.T) S {
		return make(t)
	})

	s.Test("smoke", func(t *testcase.T) {
		var (
			seq      = make(t)
			expected = c.makeTs(t, t.Random.IntBetween(3, 7))
		)
		assert.True(t, seq.IsEmpty())
		assert.Equal(t, 0, seq.Len())

		for i, v := range expected {
			assert.Equal(t, i, seq.Len())
			seq.Append(v)
		}
		assert.False(t, seq.IsEmpty())
		assert.Equal(t, expected, seq.Slice())

		last, err := seq.PopLast()
		assert.NoError(t, err)
		assert.Equal(t, expected[len(expected)-1], last)

		first, err := seq.PopFirst()
		assert.NoError(t, err)
		assert.Equal(t, expected[0], first)

		assert.Equal(t, expected[1:len(expected)-1], seq.Slice())
	})

	s.Test("N appends are traversed in order from begin to end", func(t *testcase.T) {
		var (
			seq      = make(t)
			expected = c.makeTs(t, t.Random.IntBetween(0, 42))
		)
		for _, v := range expected {
			seq.Append(v)
		}
		assert.Equal(t, len(expected), seq.Len())

		var got []T
		for it := seq.ConstBegin(); !it.Equal(seq.ConstEnd()); {
			v, err := it.Value()
			assert.NoError(t, err)
			got = append(got, v)
			assert.NoError(t, it.Next())
		}
		assert.Equal(t, len(expected), len(got))
		for i := range expected {
			assert.Equal(t, expected[i], got[i])
		}
	})

	s.Describe("#Append", func(s *testcase.Spec) {
		value := let.Var(s, func(t *testcase.T) T { return c.makeT(t) })
		act := let.Act0(func(t *testcase.T) {
			seq.Get(t).Append(value.Get(t))
		})

		s.Then("value is added to the end", func(t *testcase.T) {
			act(t)
			assert.Equal(t, []T{value.Get(t)}, seq.Get(t).Slice())
		})

		s.When("elements were already present", func(s *testcase.Spec) {
			existing := let.Var(s, func(t *testcase.T) []T {
				return c.makeTs(t, t.Random.IntBetween(1, 7))
			})
			s.Before(func(t *testcase.T) {
				for _, v := range existing.Get(t) {
					seq.Get(t).Append(v)
				}
			})

			s.Then("the new value will be appended at the end", func(t *testcase.T) {
				act(t)
				assert.Equal(t, append(existing.Get(t), value.Get(t)), seq.Get(t).Slice())
			})

			s.Then("length is updated", func(t *testcase.T) {
				act(t)
				assert.Equal(t, len(existing.Get(t))+1, seq.Get(t).Len())
			})

			s.Then("appending and then popping the last leaves the length unchanged", func(t *testcase.T) {
				before := seq.Get(t).Len()
				act(t)
				got, err := seq.Get(t).PopLast()
				assert.NoError(t, err)
				assert.Equal(t, value.Get(t), got)
				assert.Equal(t, before, seq.Get(t).Len())
			})
		})
	})

	s.Describe("#Prepend", func(s *testcase.Spec) {
		value := let.Var(s, func(t *testcase.T) T { return c.makeT(t) })
		act := let.Act0(func(t *testcase.T) {
			seq.Get(t).Prepend(value.Get(t))
		})

		s.Then("value is added to the sequence", func(t *testcase.T) {
			act(t)
			assert.Equal(t, []T{value.Get(t)}, seq.Get(t).Slice())
		})

		s.When("elements were already present", func(s *testcase.Spec) {
			existing := let.Var(s, func(t *testcase.T) []T {
				return c.makeTs(t, t.Random.IntBetween(1, 7))
			})
			s.Before(func(t *testcase.T) {
				for _, v := range existing.Get(t) {
					seq.Get(t).Append(v)
				}
			})

			s.Then("the new value will be placed at the beginning", func(t *testcase.T) {
				act(t)
				assert.Equal(t, append([]T{value.Get(t)}, existing.Get(t)...), seq.Get(t).Slice())
			})

			s.Then("prepending and then popping the first leaves the length unchanged", func(t *testcase.T) {
				before := seq.Get(t).Len()
				act(t)
				got, err := seq.Get(t).PopFirst()
				assert.NoError(t, err)
				assert.Equal(t, value.Get(t), got)
				assert.Equal(t, before, seq.Get(t).Len())
			})
		})
	})

	s.Describe("#Insert", func(s *testcase.Spec) {
		var (
			existing = let.Var(s, func(t *testcase.T) []T {
				return c.makeTs(t, t.Random.IntBetween(3, 7))
			})
			offset = let.Var(s, func(t *testcase.T) int {
				return t.Random.IntBetween(0, len(existing.Get(t)))
			})
			value = let.Var(s, func(t *testcase.T) T { return c.makeT(t) })
			at    = let.Var(s, func(t *testcase.T) CP {
				it, err := seq.Get(t).ConstBegin().Add(offset.Get(t))
				assert.NoError(t, err)
				return it
			})
		)
		s.Before(func(t *testcase.T) {
			for _, v := range existing.Get(t) {
				seq.Get(t).Append(v)
			}
		})
		act := let.Act(func(t *testcase.T) error {
			return seq.Get(t).Insert(at.Get(t), value.Get(t))
		})

		s.Then("the value is placed before the position", func(t *testcase.T) {
			assert.NoError(t, act(t))

			var exp []T
			exp = append(exp, existing.Get(t)[:offset.Get(t)]...)
			exp = append(exp, value.Get(t))
			exp = append(exp, existing.Get(t)[offset.Get(t):]...)
			assert.Equal(t, exp, seq.Get(t).Slice())
			assert.Equal(t, len(existing.Get(t))+1, seq.Get(t).Len())
		})

		s.When("position is the begin", func(s *testcase.Spec) {
			offset.LetValue(s, 0)

			s.Then("it behaves like prepend", func(t *testcase.T) {
				assert.NoError(t, act(t))
				assert.Equal(t, append([]T{value.Get(t)}, existing.Get(t)...), seq.Get(t).Slice())
			})
		})

		s.When("position is the end", func(s *testcase.Spec) {
			offset.Let(s, func(t *testcase.T) int {
				return len(existing.Get(t))
			})

			s.Then("it behaves like append", func(t *testcase.T) {
				assert.NoError(t, act(t))
				assert.Equal(t, append(existing.Get(t), value.Get(t)), seq.Get(t).Slice())
			})
		})

		s.When("position belongs to a different container", func(s *testcase.Spec) {
			at.Let(s, func(t *testcase.T) CP {
				oth := make(t)
				oth.Append(c.makeT(t))
				return oth.ConstBegin()
			})

			s.Then("it fails with out of range", func(t *testcase.T) {
				assert.ErrorIs(t, sequence.ErrOutOfRange, act(t))
				assert.Equal(t, existing.Get(t), seq.Get(t).Slice())
			})
		})
	})

	s.Describe("#PopFirst", func(s *testcase.Spec) {
		act := let.Act2(func(t *testcase.T) (T, error) {
			return seq.Get(t).PopFirst()
		})

		s.When("sequence is empty", func(s *testcase.Spec) {
			s.Then("it fails with out of range", func(t *testcase.T) {
				_, err := act(t)
				assert.ErrorIs(t, sequence.ErrOutOfRange, err)
			})
		})

		s.When("sequence contains values", func(s *testcase.Spec) {
			values := let.Var(s, func(t *testcase.T) []T {
				return c.makeTs(t, t.Random.IntBetween(1, 7))
			})
			s.Before(func(t *testcase.T) {
				for _, v := range values.Get(t) {
					seq.Get(t).Append(v)
				}
			})

			s.Then("the first value is returned and removed", func(t *testcase.T) {
				got, err := act(t)
				assert.NoError(t, err)
				assert.Equal(t, values.Get(t)[0], got)
				assert.Equal(t, values.Get(t)[1:], seq.Get(t).Slice())
			})

			s.Then("popping every element drains the sequence in order", func(t *testcase.T) {
				var got []T
				for !seq.Get(t).IsEmpty() {
					v, err := act(t)
					assert.NoError(t, err)
					got = append(got, v)
				}
				assert.Equal(t, values.Get(t), got)
				_, err := act(t)
				assert.ErrorIs(t, sequence.ErrOutOfRange, err)
			})
		})
	})

	s.Describe("#PopLast", func(s *testcase.Spec) {
		act := let.Act2(func(t *testcase.T) (T, error) {
			return seq.Get(t).PopLast()
		})

		s.When("sequence is empty", func(s *testcase.Spec) {
			s.Then("it fails with out of range", func(t *testcase.T) {
				_, err := act(t)
				assert.ErrorIs(t, sequence.ErrOutOfRange, err)
			})
		})

		s.When("sequence contains values", func(s *testcase.Spec) {
			values := let.Var(s, func(t *testcase.T) []T {
				return c.makeTs(t, t.Random.IntBetween(1, 7))
			})
			s.Before(func(t *testcase.T) {
				for _, v := range values.Get(t) {
					seq.Get(t).Append(v)
				}
			})

			s.Then("the last value is returned and removed", func(t *testcase.T) {
				got, err := act(t)
				assert.NoError(t, err)
				vs := values.Get(t)
				assert.Equal(t, vs[len(vs)-1], got)
				assert.Equal(t, vs[:len(vs)-1], seq.Get(t).Slice())
			})
		})
	})

	s.Describe("#Erase", func(s *testcase.Spec) {
		var (
			values = let.Var(s, func(t *testcase.T) []T {
				return c.makeTs(t, t.Random.IntBetween(1, 7))
			})
			offset = let.Var(s, func(t *testcase.T) int {
				return t.Random.IntN(len(values.Get(t)))
			})
			at = let.Var(s, func(t *testcase.T) CP {
				it, err := seq.Get(t).ConstBegin().Add(offset.Get(t))
				assert.NoError(t, err)
				return it
			})
		)
		s.Before(func(t *testcase.T) {
			for _, v := range values.Get(t) {
				seq.Get(t).Append(v)
			}
		})
		act := let.Act(func(t *testcase.T) error {
			return seq.Get(t).Erase(at.Get(t))
		})

		s.Then("the element under the position is removed", func(t *testcase.T) {
			assert.NoError(t, act(t))

			var exp []T
			exp = append(exp, values.Get(t)[:offset.Get(t)]...)
			exp = append(exp, values.Get(t)[offset.Get(t)+1:]...)
			assert.Equal(t, len(exp), seq.Get(t).Len())
			assert.Equal(t, len(exp), len(seq.Get(t).Slice()))
			for i, v := range seq.Get(t).Slice() {
				assert.Equal(t, exp[i], v)
			}
		})

		s.When("position is the end", func(s *testcase.Spec) {
			at.Let(s, func(t *testcase.T) CP {
				return seq.Get(t).ConstEnd()
			})

			s.Then("it fails with out of range", func(t *testcase.T) {
				assert.ErrorIs(t, sequence.ErrOutOfRange, act(t))
				assert.Equal(t, values.Get(t), seq.Get(t).Slice())
			})
		})

		s.When("sequence is empty", func(s *testcase.Spec) {
			values.LetValue(s, nil)
			at.Let(s, func(t *testcase.T) CP {
				return seq.Get(t).ConstBegin()
			})

			s.Then("it fails with out of range", func(t *testcase.T) {
				assert.ErrorIs(t, sequence.ErrOutOfRange, act(t))
			})
		})
	})

	s.Describe("#EraseRange", func(s *testcase.Spec) {
		var (
			values = let.Var(s, func(t *testcase.T) []T {
				return c.makeTs(t, t.Random.IntBetween(2, 9))
			})
			from = let.Var(s, func(t *testcase.T) int {
				return t.Random.IntBetween(0, len(values.Get(t)))
			})
			till = let.Var(s, func(t *testcase.T) int {
				return t.Random.IntBetween(from.Get(t), len(values.Get(t)))
			})
			first = let.Var(s, func(t *testcase.T) CP {
				it, err := seq.Get(t).ConstBegin().Add(from.Get(t))
				assert.NoError(t, err)
				return it
			})
			last = let.Var(s, func(t *testcase.T) CP {
				it, err := seq.Get(t).ConstBegin().Add(till.Get(t))
				assert.NoError(t, err)
				return it
			})
		)
		s.Before(func(t *testcase.T) {
			for _, v := range values.Get(t) {
				seq.Get(t).Append(v)
			}
		})
		act := let.Act(func(t *testcase.T) error {
			return seq.Get(t).EraseRange(first.Get(t), last.Get(t))
		})

		s.Then("the half-open range is removed", func(t *testcase.T) {
			assert.NoError(t, act(t))

			var exp []T
			exp = append(exp, values.Get(t)[:from.Get(t)]...)
			exp = append(exp, values.Get(t)[till.Get(t):]...)
			assert.Equal(t, len(exp), seq.Get(t).Len())
			got := seq.Get(t).Slice()
			assert.Equal(t, len(exp), len(got))
			for i := range exp {
				assert.Equal(t, exp[i], got[i])
			}
		})

		s.When("the range covers the whole container", func(s *testcase.Spec) {
			first.Let(s, func(t *testcase.T) CP { return seq.Get(t).ConstBegin() })
			last.Let(s, func(t *testcase.T) CP { return seq.Get(t).ConstEnd() })

			s.Then("the container becomes empty", func(t *testcase.T) {
				assert.NoError(t, act(t))
				assert.True(t, seq.Get(t).IsEmpty())
				assert.Equal(t, 0, seq.Get(t).Len())
				assert.True(t, seq.Get(t).ConstBegin().Equal(seq.Get(t).ConstEnd()))
			})

			s.Then("the container stays usable", func(t *testcase.T) {
				assert.NoError(t, act(t))
				v := c.makeT(t)
				seq.Get(t).Prepend(v)
				assert.Equal(t, []T{v}, seq.Get(t).Slice())
			})
		})

		s.When("the range is empty", func(s *testcase.Spec) {
			till.Let(s, func(t *testcase.T) int { return from.Get(t) })

			s.Then("nothing changes", func(t *testcase.T) {
				assert.NoError(t, act(t))
				assert.Equal(t, values.Get(t), seq.Get(t).Slice())
			})
		})

		s.When("the range end precedes its start", func(s *testcase.Spec) {
			from.Let(s, func(t *testcase.T) int {
				return t.Random.IntBetween(1, len(values.Get(t)))
			})
			till.Let(s, func(t *testcase.T) int {
				return t.Random.IntBetween(0, from.Get(t)-1)
			})

			s.Then("it fails with out of range and leaves the content intact", func(t *testcase.T) {
				assert.ErrorIs(t, sequence.ErrOutOfRange, act(t))
				assert.Equal(t, values.Get(t), seq.Get(t).Slice())
			})
		})
	})

	s.Describe("#Backward", func(s *testcase.Spec) {
		s.Then("it yields the values from last to first", func(t *testcase.T) {
			values := c.makeTs(t, t.Random.IntBetween(0, 7))
			for _, v := range values {
				seq.Get(t).Append(v)
			}
			var got []T
			for v := range seq.Get(t).Backward() {
				got = append(got, v)
			}
			assert.Equal(t, len(values), len(got))
			for i := range values {
				assert.Equal(t, values[len(values)-1-i], got[i])
			}
		})
	})

	s.Test("integrity after a random series of mutations", func(t *testcase.T) {
		seq := make(t)
		var exp []T
		t.Random.Repeat(16, 64, func() {
			v := c.makeT(t)
			switch t.Random.IntN(4) {
			case 0:
				seq.Append(v)
				exp = append(exp, v)
			case 1:
				seq.Prepend(v)
				exp = append([]T{v}, exp...)
			case 2:
				if len(exp) == 0 {
					assert.ErrorIs(t, sequence.ErrOutOfRange, seq.Erase(seq.ConstBegin()))
					return
				}
				i := t.Random.IntN(len(exp))
				at, err := seq.ConstBegin().Add(i)
				assert.NoError(t, err)
				assert.NoError(t, seq.Erase(at))
				exp = append(exp[:i:i], exp[i+1:]...)
			case 3:
				i := t.Random.IntBetween(0, len(exp))
				at, err := seq.ConstBegin().Add(i)
				assert.NoError(t, err)
				assert.NoError(t, seq.Insert(at, v))
				exp = append(exp[:i:i], append([]T{v}, exp[i:]...)...)
			}
		})

		assert.Equal(t, len(exp), seq.Len())
		got := seq.Slice()
		assert.Equal(t, len(exp), len(got))
		for i := range exp {
			assert.Equal(t, exp[i], got[i])
		}

		forward := seq.Begin()
		for i := 0; i < seq.Len(); i++ {
			assert.NoError(t, forward.Next())
		}
		assert.True(t, forward.Equal(seq.End()), "forward traversal of Len steps should reach the end")

		backward := seq.End()
		for i := 0; i < seq.Len(); i++ {
			assert.NoError(t, backward.Prev())
		}
		assert.True(t, backward.Equal(seq.Begin()), "backward traversal of Len steps should reach the begin")
	})

	s.Context("benchmarks", func(s *testcase.Spec) {
		size := let.Var(s, func(t *testcase.T) int {
			return t.Random.IntBetween(1000, 2000)
		})
		s.Before(func(t *testcase.T) {
			for i := 0; i < size.Get(t); i++ {
				seq.Get(t).Append(c.makeT(t))
			}
		})

		s.Benchmark("Prepend", func(t *testcase.T) {
			seq.Get(t).Prepend(c.makeT(t))
		})

		s.Benchmark("Append", func(t *testcase.T) {
			seq.Get(t).Append(c.makeT(t))
		})

		s.Benchmark("PopFirst", func(t *testcase.T) {
			if seq.Get(t).IsEmpty() {
				seq.Get(t).Append(c.makeT(t))
			}
			_, _ = seq.Get(t).PopFirst()
		})
	})

	return s.AsSuite(fmt.Sprintf("sequence.Sequence[%s]", reflectkit.TypeOf[T]().String()))
}
