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

// Position is the contract of the read-only and read-write positions of a sequence.
func Position[T any, S sequence.Sequence[T, P, CP], P sequence.Position[T, P, CP], CP sequence.ConstPosition[T, CP]](
	make contract.Make[S],
	opts ...Option[T],
) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig[Config[T]](opts)

	var (
		values = let.Var(s, func(t *testcase.T) []T {
			return c.makeTs(t, t.Random.IntBetween(3, 7))
		})
		seq = let.Var(s, func(t *testcase.T) S {
			seq := make(t)
			for _, v := range values.Get(t) {
				seq.Append(v)
			}
			return seq
		})
	)

	s.Describe("#Value", func(s *testcase.Spec) {
		s.Then("begin dereferences to the first value", func(t *testcase.T) {
			v, err := seq.Get(t).ConstBegin().Value()
			assert.NoError(t, err)
			assert.Equal(t, values.Get(t)[0], v)
		})

		s.Then("dereferencing the end position fails with out of range", func(t *testcase.T) {
			_, err := seq.Get(t).ConstEnd().Value()
			assert.ErrorIs(t, sequence.ErrOutOfRange, err)

			_, err = seq.Get(t).End().Value()
			assert.ErrorIs(t, sequence.ErrOutOfRange, err)
		})

		s.When("the sequence is empty", func(s *testcase.Spec) {
			values.LetValue(s, nil)

			s.Then("begin is the end and can't be dereferenced", func(t *testcase.T) {
				assert.True(t, seq.Get(t).ConstBegin().Equal(seq.Get(t).ConstEnd()))
				assert.True(t, seq.Get(t).Begin().Equal(seq.Get(t).End()))

				_, err := seq.Get(t).ConstBegin().Value()
				assert.ErrorIs(t, sequence.ErrOutOfRange, err)
			})
		})
	})

	s.Describe("#Next", func(s *testcase.Spec) {
		s.Then("it moves to the following element", func(t *testcase.T) {
			it := seq.Get(t).ConstBegin()
			assert.NoError(t, it.Next())
			v, err := it.Value()
			assert.NoError(t, err)
			assert.Equal(t, values.Get(t)[1], v)
		})

		s.Then("incrementing the end position fails with out of range", func(t *testcase.T) {
			it := seq.Get(t).ConstEnd()
			assert.ErrorIs(t, sequence.ErrOutOfRange, it.Next())
			assert.True(t, it.Equal(seq.Get(t).ConstEnd()), "failed increment should leave the position intact")

			rw := seq.Get(t).End()
			assert.ErrorIs(t, sequence.ErrOutOfRange, rw.Next())
		})
	})

	s.Describe("#Prev", func(s *testcase.Spec) {
		s.Then("end steps back to the last element", func(t *testcase.T) {
			it := seq.Get(t).ConstEnd()
			assert.NoError(t, it.Prev())
			v, err := it.Value()
			assert.NoError(t, err)
			vs := values.Get(t)
			assert.Equal(t, vs[len(vs)-1], v)
		})

		s.Then("decrementing the begin position fails with out of range", func(t *testcase.T) {
			it := seq.Get(t).ConstBegin()
			assert.ErrorIs(t, sequence.ErrOutOfRange, it.Prev())
			assert.True(t, it.Equal(seq.Get(t).ConstBegin()), "failed decrement should leave the position intact")

			rw := seq.Get(t).Begin()
			assert.ErrorIs(t, sequence.ErrOutOfRange, rw.Prev())
		})
	})

	s.Describe("#PostNext", func(s *testcase.Spec) {
		s.Then("the previous location is returned and the position moves forward", func(t *testcase.T) {
			it := seq.Get(t).Begin()
			prev, err := it.PostNext()
			assert.NoError(t, err)
			assert.True(t, prev.Equal(seq.Get(t).Begin()))

			v, err := it.Value()
			assert.NoError(t, err)
			assert.Equal(t, values.Get(t)[1], v)
		})

		s.Then("it fails with out of range on the end position", func(t *testcase.T) {
			_, err := seq.Get(t).ConstEnd().PostNext()
			assert.ErrorIs(t, sequence.ErrOutOfRange, err)
		})
	})

	s.Describe("#PostPrev", func(s *testcase.Spec) {
		s.Then("the previous location is returned and the position moves backward", func(t *testcase.T) {
			it := seq.Get(t).End()
			prev, err := it.PostPrev()
			assert.NoError(t, err)
			assert.True(t, prev.Equal(seq.Get(t).End()))

			v, err := it.Value()
			assert.NoError(t, err)
			vs := values.Get(t)
			assert.Equal(t, vs[len(vs)-1], v)
		})

		s.Then("it fails with out of range on the begin position", func(t *testcase.T) {
			_, err := seq.Get(t).ConstBegin().PostPrev()
			assert.ErrorIs(t, sequence.ErrOutOfRange, err)
		})
	})

	s.Describe("#Add", func(s *testcase.Spec) {
		s.Then("it returns a position n steps forward", func(t *testcase.T) {
			n := t.Random.IntN(len(values.Get(t)))
			it, err := seq.Get(t).ConstBegin().Add(n)
			assert.NoError(t, err)
			v, err := it.Value()
			assert.NoError(t, err)
			assert.Equal(t, values.Get(t)[n], v)
		})

		s.Then("the original position stays where it was", func(t *testcase.T) {
			it := seq.Get(t).Begin()
			_, err := it.Add(1)
			assert.NoError(t, err)
			assert.True(t, it.Equal(seq.Get(t).Begin()))
		})

		s.Then("adding the length to begin reaches the end", func(t *testcase.T) {
			it, err := seq.Get(t).Begin().Add(len(values.Get(t)))
			assert.NoError(t, err)
			assert.True(t, it.Equal(seq.Get(t).End()))
		})

		s.Then("going past the end fails with out of range", func(t *testcase.T) {
			_, err := seq.Get(t).ConstBegin().Add(len(values.Get(t)) + t.Random.IntBetween(1, 7))
			assert.ErrorIs(t, sequence.ErrOutOfRange, err)
		})

		s.Then("a negative offset moves backward", func(t *testcase.T) {
			it, err := seq.Get(t).ConstEnd().Add(-1)
			assert.NoError(t, err)
			v, err := it.Value()
			assert.NoError(t, err)
			vs := values.Get(t)
			assert.Equal(t, vs[len(vs)-1], v)
		})
	})

	s.Describe("#Sub", func(s *testcase.Spec) {
		s.Then("it returns a position n steps backward", func(t *testcase.T) {
			vs := values.Get(t)
			n := t.Random.IntBetween(1, len(vs))
			it, err := seq.Get(t).End().Sub(n)
			assert.NoError(t, err)
			v, err := it.Value()
			assert.NoError(t, err)
			assert.Equal(t, vs[len(vs)-n], v)
		})

		s.Then("subtracting the length from end reaches the begin", func(t *testcase.T) {
			it, err := seq.Get(t).ConstEnd().Sub(len(values.Get(t)))
			assert.NoError(t, err)
			assert.True(t, it.Equal(seq.Get(t).ConstBegin()))
		})

		s.Then("going before the begin fails with out of range", func(t *testcase.T) {
			_, err := seq.Get(t).ConstEnd().Sub(len(values.Get(t)) + t.Random.IntBetween(1, 7))
			assert.ErrorIs(t, sequence.ErrOutOfRange, err)
		})
	})

	s.Describe("#Equal", func(s *testcase.Spec) {
		s.Then("positions created separately for the same location are equal", func(t *testcase.T) {
			assert.True(t, seq.Get(t).ConstBegin().Equal(seq.Get(t).ConstBegin()))
			assert.True(t, seq.Get(t).End().Equal(seq.Get(t).End()))
		})

		s.Then("positions of different locations are not equal", func(t *testcase.T) {
			assert.False(t, seq.Get(t).ConstBegin().Equal(seq.Get(t).ConstEnd()))
		})

		s.When("two locations hold the same value", func(s *testcase.Spec) {
			values.Let(s, func(t *testcase.T) []T {
				v := c.makeT(t)
				return []T{v, v, v}
			})

			s.Then("their positions are still not equal", func(t *testcase.T) {
				first := seq.Get(t).ConstBegin()
				second, err := first.Add(1)
				assert.NoError(t, err)
				assert.False(t, first.Equal(second))
			})
		})

		s.Then("positions of different containers are not equal", func(t *testcase.T) {
			oth := make(t)
			for _, v := range values.Get(t) {
				oth.Append(v)
			}
			assert.False(t, seq.Get(t).ConstBegin().Equal(oth.ConstBegin()))
		})
	})

	s.Describe("#Set", func(s *testcase.Spec) {
		s.Then("the value under the position is replaced", func(t *testcase.T) {
			vs := values.Get(t)
			n := t.Random.IntN(len(vs))
			it, err := seq.Get(t).Begin().Add(n)
			assert.NoError(t, err)

			nv := c.makeT(t)
			assert.NoError(t, it.Set(nv))

			got := seq.Get(t).Slice()
			assert.Equal(t, nv, got[n])
			assert.Equal(t, len(vs), len(got))
			for i := range vs {
				if i != n {
					assert.Equal(t, vs[i], got[i])
				}
			}
		})

		s.Then("assigning through the end position fails with out of range", func(t *testcase.T) {
			assert.ErrorIs(t, sequence.ErrOutOfRange, seq.Get(t).End().Set(c.makeT(t)))
		})
	})

	s.Describe("#Const", func(s *testcase.Spec) {
		s.Then("the read-only view addresses the same location", func(t *testcase.T) {
			it, err := seq.Get(t).Begin().Add(1)
			assert.NoError(t, err)
			exp, err := seq.Get(t).ConstBegin().Add(1)
			assert.NoError(t, err)
			assert.True(t, it.Const().Equal(exp))
		})

		s.Then("the read-only view can be used to erase through the container", func(t *testcase.T) {
			assert.NoError(t, seq.Get(t).Erase(seq.Get(t).Begin().Const()))
			assert.Equal(t, values.Get(t)[1:], seq.Get(t).Slice())
		})
	})

	return s.AsSuite(fmt.Sprintf("sequence.Position[%s]", reflectkit.TypeOf[T]().String()))
}
