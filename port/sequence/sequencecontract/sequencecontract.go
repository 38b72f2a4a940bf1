package sequencecontract

import (
	"testing"

	"go.llib.dev/frameless/port/option"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/random"
)

type Config[T any] struct {
	// MakeElem creates a new element for the tests.
	// By default a random value is made with testcase's random generator.
	MakeElem func(tb testing.TB) T
}

func (c Config[T]) Configure(t *Config[T]) {
	if c.MakeElem != nil {
		t.MakeElem = c.MakeElem
	}
}

type Option[T any] option.Option[Config[T]]

func (c Config[T]) makeT(tb testing.TB) T {
	if c.MakeElem != nil {
		return c.MakeElem(tb)
	}
	return testcase.ToT(&tb).Random.Make(*new(T)).(T)
}

func (c Config[T]) makeTs(t *testcase.T, n int) []T {
	return random.Slice(n, func() T { return c.makeT(t) })
}
