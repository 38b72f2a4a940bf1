// Command seqbench compares the prepend cost of the sequence containers.
//
//	seqbench prepend -sizes 100,1000,10000,100000 -format text
//	seqbench throughput -ops 100000 -container "Linked List"
//
// Logs are written to stderr, their level is read from SEQBENCH_LOG_LEVEL.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/logging"
	"go.llib.dev/seqkit/pkg/seqbench"
)

const errUnknownContainer errorkit.Error = "ErrUnknownContainer"

func main() {
	cli.Main(context.Background(), NewMux())
}

func NewMux() *cli.Mux {
	var m cli.Mux
	m.Handle("prepend", PrependCommand{})
	m.Handle("throughput", ThroughputCommand{})
	return &m
}

type PrependCommand struct {
	Sizes  string `flag:"sizes"  default:"100,1000,10000,100000" desc:"comma separated list of container sizes"`
	Value  int    `flag:"value"  default:"5"                      desc:"the element prepended to each container"`
	Repeat int    `flag:"repeat" default:"1"                      desc:"measurements per container size"`
	Format string `flag:"format" default:"text" enum:"text,json," desc:"report format"`

	LogLevel string `env:"SEQBENCH_LOG_LEVEL" default:"info"`
}

func (cmd PrependCommand) Summary() string {
	return "time a single prepend on containers of increasing size"
}

func (cmd PrependCommand) ServeCLI(w cli.Response, r *cli.Request) {
	sizes, err := seqbench.ParseSizes(cmd.Sizes)
	if err != nil {
		fail(w, err)
		return
	}
	runner := seqbench.Runner{
		Sizes:  sizes,
		Value:  cmd.Value,
		Repeat: cmd.Repeat,
		Logger: newLogger(w, cmd.LogLevel),
	}
	results, err := runner.Run(r.Context())
	if err != nil {
		fail(w, err)
		return
	}
	if err := seqbench.WriteReport(w, seqbench.Format(cmd.Format), results); err != nil {
		fail(w, err)
		return
	}
}

type ThroughputCommand struct {
	Ops       int    `flag:"ops"       default:"100000" desc:"number of prepends"`
	Container string `flag:"container" default:"Vector" desc:"container name: Vector or Linked List"`

	LogLevel string `env:"SEQBENCH_LOG_LEVEL" default:"info"`
}

func (cmd ThroughputCommand) Summary() string {
	return "measure the prepend op rate of a single container"
}

func (cmd ThroughputCommand) ServeCLI(w cli.Response, r *cli.Request) {
	subject, ok := seqbench.LookupSubject(cmd.Container)
	if !ok {
		fail(w, errUnknownContainer.F("%q", cmd.Container))
		return
	}
	n, err := seqbench.Throughput(w, subject, cmd.Ops)
	if err != nil {
		fail(w, err)
		return
	}
	newLogger(w, cmd.LogLevel).Info(r.Context(), "throughput run finished",
		logging.Field("container", subject.Name),
		logging.Field("length", n))
}

// fail reports err on stderr, bad input exits with cli.ExitCodeBadRequest.
func fail(w cli.Response, err error) {
	code := cli.ExitCodeError
	if errors.Is(err, seqbench.ErrInvalidSize) ||
		errors.Is(err, seqbench.ErrUnknownFormat) ||
		errors.Is(err, errUnknownContainer) {
		code = cli.ExitCodeBadRequest
	}
	w.ExitCode(code)
	fmt.Fprintln(stderr(w, w), err.Error())
}

func newLogger(w cli.Response, level string) *logging.Logger {
	return &logging.Logger{
		Out:   stderr(w, io.Discard),
		Level: logging.Level(level),
	}
}

func stderr(w cli.Response, fallback io.Writer) io.Writer {
	if ew, ok := w.(cli.ErrorWriter); ok {
		if o := ew.Stderr(); o != nil {
			return o
		}
	}
	return fallback
}
