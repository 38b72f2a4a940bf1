package arrayseq_test

import (
	"testing"

	"go.llib.dev/seqkit/pkg/arrayseq"
	"go.llib.dev/seqkit/port/sequence"
	"go.llib.dev/seqkit/port/sequence/sequencecontract"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
	"go.llib.dev/testcase/random"
)

func ExampleArray() {
	var a arrayseq.Array[int]
	a.Append(20)
	a.Append(30)
	a.Prepend(10)
	a.Slice() // []int{10, 20, 30}

	mid, _ := a.ConstBegin().Add(1)
	_ = a.Erase(mid)
	a.Slice() // []int{10, 30}
}

func ExampleMake() {
	a := arrayseq.Make[string](
		arrayseq.InitialCapacity(16),
		arrayseq.GrowthIncrement(64),
	)
	a.Cap() // 16
	a.Append("foo")
	a.Len() // 1
}

func TestArray(t *testing.T) {
	t.Run("implements sequence.Container", sequencecontract.Container[int, *arrayseq.Array[int], *arrayseq.Iterator[int], *arrayseq.ConstIterator[int]](func(tb testing.TB) *arrayseq.Array[int] {
		return arrayseq.New[int]()
	}).Test)

	t.Run("implements sequence.Container with a small growth increment", sequencecontract.Container[string, *arrayseq.Array[string], *arrayseq.Iterator[string], *arrayseq.ConstIterator[string]](func(tb testing.TB) *arrayseq.Array[string] {
		return arrayseq.Make[string](arrayseq.InitialCapacity(1), arrayseq.GrowthIncrement(1))
	}).Test)

	t.Run("zero value implements sequence.Container", sequencecontract.Container[int, *arrayseq.Array[int], *arrayseq.Iterator[int], *arrayseq.ConstIterator[int]](func(tb testing.TB) *arrayseq.Array[int] {
		return &arrayseq.Array[int]{}
	}).Test)

	s := testcase.NewSpec(t)

	var (
		initialCapacity = let.Var(s, func(t *testcase.T) int {
			return t.Random.IntBetween(1, 8)
		})
		growthIncrement = let.Var(s, func(t *testcase.T) int {
			return t.Random.IntBetween(1, 16)
		})
		array = let.Var(s, func(t *testcase.T) *arrayseq.Array[int] {
			return arrayseq.Make[int](
				arrayseq.InitialCapacity(initialCapacity.Get(t)),
				arrayseq.GrowthIncrement(growthIncrement.Get(t)),
			)
		})
	)

	s.Test("smoke", func(t *testcase.T) {
		a := arrayseq.New(10, 20, 30)
		mid, err := a.ConstBegin().Add(1)
		assert.NoError(t, err)
		assert.NoError(t, a.Erase(mid))
		assert.Equal(t, []int{10, 30}, a.Slice())

		last, err := a.ConstBegin().Add(1)
		assert.NoError(t, err)
		v, err := last.Value()
		assert.NoError(t, err)
		assert.Equal(t, 30, v)
	})

	s.Describe("#Cap", func(s *testcase.Spec) {
		s.Then("it starts with the initial capacity", func(t *testcase.T) {
			assert.Equal(t, initialCapacity.Get(t), array.Get(t).Cap())
			assert.Equal(t, 0, array.Get(t).Len())
		})

		s.Then("overflowing the buffer grows it by the increment", func(t *testcase.T) {
			for i := 0; i < initialCapacity.Get(t); i++ {
				array.Get(t).Append(i)
			}
			assert.Equal(t, initialCapacity.Get(t), array.Get(t).Cap())

			array.Get(t).Append(42)
			assert.Equal(t, initialCapacity.Get(t)+growthIncrement.Get(t), array.Get(t).Cap())
		})

		s.Then("removing elements doesn't shrink the buffer", func(t *testcase.T) {
			for i := 0; i <= initialCapacity.Get(t); i++ {
				array.Get(t).Append(i)
			}
			capacity := array.Get(t).Cap()
			for !array.Get(t).IsEmpty() {
				_, err := array.Get(t).PopFirst()
				assert.NoError(t, err)
			}
			assert.Equal(t, capacity, array.Get(t).Cap())
		})

		s.When("no option is given", func(s *testcase.Spec) {
			array.Let(s, func(t *testcase.T) *arrayseq.Array[int] {
				return arrayseq.Make[int]()
			})

			s.Then("the defaults are used", func(t *testcase.T) {
				assert.Equal(t, arrayseq.DefaultInitialCapacity, array.Get(t).Cap())

				for i := 0; i <= arrayseq.DefaultInitialCapacity; i++ {
					array.Get(t).Append(i)
				}
				assert.Equal(t, arrayseq.DefaultInitialCapacity+arrayseq.DefaultGrowthIncrement, array.Get(t).Cap())
			})
		})

		s.When("non-positive options are given", func(s *testcase.Spec) {
			array.Let(s, func(t *testcase.T) *arrayseq.Array[int] {
				return arrayseq.Make[int](
					arrayseq.InitialCapacity(-1*t.Random.IntN(3)),
					arrayseq.GrowthIncrement(0),
				)
			})

			s.Then("they are ignored in favour of the defaults", func(t *testcase.T) {
				assert.Equal(t, arrayseq.DefaultInitialCapacity, array.Get(t).Cap())
			})
		})

		s.When("the array is the zero value", func(s *testcase.Spec) {
			array.Let(s, func(t *testcase.T) *arrayseq.Array[int] {
				return &arrayseq.Array[int]{}
			})

			s.Then("it has no storage until the first insertion", func(t *testcase.T) {
				assert.Equal(t, 0, array.Get(t).Cap())
				array.Get(t).Prepend(t.Random.Int())
				assert.Equal(t, arrayseq.DefaultInitialCapacity, array.Get(t).Cap())
			})
		})
	})

	s.Describe("growth", func(s *testcase.Spec) {
		values := let.Var(s, func(t *testcase.T) []int {
			n := initialCapacity.Get(t) + growthIncrement.Get(t)*t.Random.IntBetween(1, 3) + 1
			return random.Slice(n, t.Random.Int)
		})

		s.Then("appending past the capacity keeps every element in order", func(t *testcase.T) {
			for _, v := range values.Get(t) {
				array.Get(t).Append(v)
			}
			assert.Equal(t, values.Get(t), array.Get(t).Slice())
		})

		s.Then("prepending past the capacity keeps every element in reverse order", func(t *testcase.T) {
			for _, v := range values.Get(t) {
				array.Get(t).Prepend(v)
			}
			vs := values.Get(t)
			got := array.Get(t).Slice()
			assert.Equal(t, len(vs), len(got))
			for i := range vs {
				assert.Equal(t, vs[len(vs)-1-i], got[i])
			}
		})

		s.Then("positions stay usable across a reallocation", func(t *testcase.T) {
			for i := 0; i < initialCapacity.Get(t); i++ {
				array.Get(t).Append(i)
			}
			it := array.Get(t).ConstBegin()
			for _, v := range values.Get(t) {
				array.Get(t).Append(v)
			}
			v, err := it.Value()
			assert.NoError(t, err)
			assert.Equal(t, 0, v)
		})
	})

	s.Describe("#Insert", func(s *testcase.Spec) {
		s.When("the buffer is full", func(s *testcase.Spec) {
			initialCapacity.LetValue(s, 4)
			growthIncrement.LetValue(s, 2)

			s.Before(func(t *testcase.T) {
				for _, v := range []int{1, 2, 3, 4} {
					array.Get(t).Append(v)
				}
			})

			s.Then("the passed position addresses the inserted value after the reallocation", func(t *testcase.T) {
				at, err := array.Get(t).ConstBegin().Add(2)
				assert.NoError(t, err)
				assert.NoError(t, array.Get(t).Insert(at, 42))

				assert.Equal(t, 6, array.Get(t).Cap())
				assert.Equal(t, []int{1, 2, 42, 3, 4}, array.Get(t).Slice())

				v, err := at.Value()
				assert.NoError(t, err)
				assert.Equal(t, 42, v)
			})
		})
	})

	s.Describe("stale positions", func(s *testcase.Spec) {
		s.Before(func(t *testcase.T) {
			for _, v := range []int{1, 2, 3} {
				array.Get(t).Append(v)
			}
		})

		s.Then("a position past the shrunken end fails with out of range", func(t *testcase.T) {
			it := array.Get(t).ConstEnd()
			_, err := array.Get(t).PopLast()
			assert.NoError(t, err)

			_, err = it.Value()
			assert.ErrorIs(t, sequence.ErrOutOfRange, err)
			assert.ErrorIs(t, sequence.ErrOutOfRange, array.Get(t).Erase(it))
		})

		s.Then("positions of a moved out array are rejected by the array that received the buffer", func(t *testcase.T) {
			it := array.Get(t).ConstBegin()
			moved := array.Get(t).Move()
			assert.ErrorIs(t, sequence.ErrOutOfRange, moved.Erase(it))
			assert.Equal(t, []int{1, 2, 3}, moved.Slice())
		})
	})

	s.Describe("#Slice", func(s *testcase.Spec) {
		s.Then("the returned slice is a copy", func(t *testcase.T) {
			array.Get(t).Append(1)
			vs := array.Get(t).Slice()
			vs[0] = 2
			assert.Equal(t, []int{1}, array.Get(t).Slice())
		})
	})
}

func BenchmarkArray(b *testing.B) {
	sequencecontract.Container[int, *arrayseq.Array[int], *arrayseq.Iterator[int], *arrayseq.ConstIterator[int]](func(tb testing.TB) *arrayseq.Array[int] {
		return arrayseq.New[int]()
	}).Benchmark(b)
}
