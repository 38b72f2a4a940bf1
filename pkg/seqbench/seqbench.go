// Package seqbench measures the cost of prepending a single element to sequence containers of growing size.
//
// A contiguous container has to shift every element on prepend,
// while a linked one only splices a node,
// and the Runner makes that difference visible per container size.
package seqbench

import (
	"context"
	"io"
	"strconv"
	"strings"
	"time"

	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/logging"
	"go.llib.dev/seqkit/pkg/arrayseq"
	"go.llib.dev/seqkit/pkg/linkedseq"
	"go.llib.dev/seqkit/port/sequence"
	"go.llib.dev/testcase/clock"
	"gonum.org/v1/gonum/stat"
)

const (
	ErrInvalidSize   errorkit.Error = "ErrInvalidSize"
	ErrUnknownFormat errorkit.Error = "ErrUnknownFormat"
)

var DefaultSizes = []int{100, 1000, 10000, 100000}

// Subject is a named container constructor under measurement.
type Subject struct {
	Name string
	Make func() sequence.Prepender[int]
}

func DefaultSubjects() []Subject {
	return []Subject{
		{
			Name: "Vector",
			Make: func() sequence.Prepender[int] { return arrayseq.New[int]() },
		},
		{
			Name: "Linked List",
			Make: func() sequence.Prepender[int] { return linkedseq.New[int]() },
		},
	}
}

// LookupSubject finds a default subject by its case-insensitive name.
func LookupSubject(name string) (Subject, bool) {
	for _, s := range DefaultSubjects() {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return Subject{}, false
}

// ParseSizes parses a comma separated list of non-negative container sizes, like "100,1000".
func ParseSizes(raw string) ([]int, error) {
	var sizes []int
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, ErrInvalidSize.F("%q is not a number", part)
		}
		if n < 0 {
			return nil, ErrInvalidSize.F("%d is negative", n)
		}
		sizes = append(sizes, n)
	}
	if len(sizes) == 0 {
		return nil, ErrInvalidSize.F("no size given in %q", raw)
	}
	return sizes, nil
}

type Result struct {
	Container string        `json:"container"`
	Size      int           `json:"size"`
	Elapsed   time.Duration `json:"elapsed"`
	// Microseconds is the mean duration of a single prepend across the runs.
	Microseconds       float64 `json:"microseconds"`
	StdDevMicroseconds float64 `json:"stddev_microseconds"`
	Runs               int     `json:"runs"`
}

type Runner struct {
	// Subjects defaults to DefaultSubjects.
	Subjects []Subject
	// Sizes defaults to DefaultSizes.
	Sizes []int
	// Value is prepended to the filled container as is, zero included.
	Value int
	// Repeat is how many times a measurement is taken, each time on a fresh container.
	//
	// Default: 1
	Repeat int
	Logger *logging.Logger
}

// Run measures, for each subject and then each size,
// a single Prepend on a container already holding 0..size-1.
func (r Runner) Run(ctx context.Context) ([]Result, error) {
	var (
		subjects = r.getSubjects()
		sizes    = r.getSizes()
		repeat   = r.getRepeat()
		value    = r.Value
		logger   = r.getLogger()
	)
	for _, size := range sizes {
		if size < 0 {
			return nil, ErrInvalidSize.F("%d is negative", size)
		}
	}
	results := make([]Result, 0, len(subjects)*len(sizes))
	for _, subject := range subjects {
		for _, size := range sizes {
			mctx := logging.ContextWith(ctx,
				logging.Field("container", subject.Name),
				logging.Field("size", size))

			samples := make([]float64, 0, repeat)
			var total time.Duration
			for i := 0; i < repeat; i++ {
				if err := ctx.Err(); err != nil {
					return results, err
				}
				d := measure(subject, size, value)
				total += d
				samples = append(samples, microseconds(d))
				logger.Debug(mctx, "prepend measured",
					logging.Field("run", i+1),
					logging.Field("microseconds", microseconds(d)))
			}

			res := Result{
				Container: subject.Name,
				Size:      size,
				Elapsed:   total / time.Duration(repeat),
				Runs:      repeat,
			}
			if 1 < repeat {
				res.Microseconds, res.StdDevMicroseconds = stat.MeanStdDev(samples, nil)
			} else {
				res.Microseconds = samples[0]
			}
			results = append(results, res)
		}
	}
	logger.Info(ctx, "prepend benchmark finished",
		logging.Field("subjects", len(subjects)),
		logging.Field("sizes", len(sizes)),
		logging.Field("runs", repeat))
	return results, nil
}

func measure(subject Subject, size, value int) time.Duration {
	c := subject.Make()
	for i := 0; i < size; i++ {
		c.Append(i)
	}
	start := clock.Now()
	c.Prepend(value)
	return clock.Now().Sub(start)
}

func microseconds(d time.Duration) float64 {
	return float64(d) / float64(time.Microsecond)
}

func (r Runner) getSubjects() []Subject {
	if len(r.Subjects) == 0 {
		return DefaultSubjects()
	}
	return r.Subjects
}

func (r Runner) getSizes() []int {
	if len(r.Sizes) == 0 {
		return DefaultSizes
	}
	return r.Sizes
}

func (r Runner) getRepeat() int {
	if r.Repeat < 1 {
		return 1
	}
	return r.Repeat
}

func (r Runner) getLogger() *logging.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return &logging.Logger{Out: io.Discard}
}
