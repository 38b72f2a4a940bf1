package main

import (
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/seqkit/pkg/seqbench"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
)

func TestMux(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		response = let.Var(s, func(t *testcase.T) *cli.ResponseRecorder {
			return &cli.ResponseRecorder{}
		})
		args = let.Var[[]string](s, nil)
	)
	act := let.Act0(func(t *testcase.T) {
		NewMux().ServeCLI(response.Get(t), &cli.Request{Args: args.Get(t)})
	})

	s.Describe("prepend", func(s *testcase.Spec) {
		s.When("text format is requested", func(s *testcase.Spec) {
			args.Let(s, func(t *testcase.T) []string { return []string{"prepend", "-sizes", "10,20"} })

			s.Then("a line per container and size is printed", func(t *testcase.T) {
				act(t)
				assert.Equal(t, cli.ExitCodeOK, response.Get(t).Code)

				lines := strings.Split(strings.TrimSpace(response.Get(t).Out.String()), "\n")
				assert.Equal(t, 4, len(lines))
				assert.True(t, strings.HasPrefix(lines[0], "Vector prepend() 10+1 element is: "))
				assert.True(t, strings.HasPrefix(lines[1], "Vector prepend() 20+1 element is: "))
				assert.True(t, strings.HasPrefix(lines[2], "Linked List prepend() 10+1 element is: "))
				assert.True(t, strings.HasPrefix(lines[3], "Linked List prepend() 20+1 element is: "))
				for _, line := range lines {
					assert.True(t, strings.HasSuffix(line, " microsecs"))
				}
			})
		})

		s.When("json format is requested", func(s *testcase.Spec) {
			args.Let(s, func(t *testcase.T) []string { return []string{"prepend", "-sizes", "10", "-repeat", "3", "-format", "json"} })

			s.Then("the results are printed as json", func(t *testcase.T) {
				act(t)
				assert.Equal(t, cli.ExitCodeOK, response.Get(t).Code)

				var results []seqbench.Result
				assert.NoError(t, json.Unmarshal(response.Get(t).Out.Bytes(), &results))
				assert.Equal(t, 2, len(results))
				for _, r := range results {
					assert.Equal(t, 10, r.Size)
					assert.Equal(t, 3, r.Runs)
				}
			})
		})

		s.When("sizes are malformed", func(s *testcase.Spec) {
			args.Let(s, func(t *testcase.T) []string { return []string{"prepend", "-sizes", "10,ten"} })

			s.Then("it exits as a bad request", func(t *testcase.T) {
				act(t)
				assert.Equal(t, cli.ExitCodeBadRequest, response.Get(t).Code)
				assert.Contains(t, response.Get(t).Err.String(), string(seqbench.ErrInvalidSize))
				assert.Empty(t, response.Get(t).Out.String())
			})
		})

		s.When("zero is given as the prepended value", func(s *testcase.Spec) {
			args.Let(s, func(t *testcase.T) []string { return []string{"prepend", "-sizes", "10", "-value", "0"} })

			s.Then("it is accepted", func(t *testcase.T) {
				act(t)
				assert.Equal(t, cli.ExitCodeOK, response.Get(t).Code)
				lines := strings.Split(strings.TrimSpace(response.Get(t).Out.String()), "\n")
				assert.Equal(t, 2, len(lines))
			})
		})

		s.When("the format is not supported", func(s *testcase.Spec) {
			args.Let(s, func(t *testcase.T) []string { return []string{"prepend", "-sizes", "10", "-format", "xml"} })

			s.Then("it exits as a bad request", func(t *testcase.T) {
				act(t)
				assert.Equal(t, cli.ExitCodeBadRequest, response.Get(t).Code)
			})
		})

		s.When("debug logging is enabled through the environment", func(s *testcase.Spec) {
			args.Let(s, func(t *testcase.T) []string { return []string{"prepend", "-sizes", "10"} })
			s.Before(func(t *testcase.T) {
				testcase.SetEnv(t, "SEQBENCH_LOG_LEVEL", "debug")
			})

			s.Then("each measurement is logged to stderr", func(t *testcase.T) {
				act(t)
				assert.Equal(t, cli.ExitCodeOK, response.Get(t).Code)
				assert.Contains(t, response.Get(t).Err.String(), "prepend measured")
				assert.NotContains(t, response.Get(t).Out.String(), "prepend measured")
			})
		})
	})

	s.Describe("throughput", func(s *testcase.Spec) {
		s.When("a known container is named", func(s *testcase.Spec) {
			args.Let(s, func(t *testcase.T) []string { return []string{"throughput", "-ops", "1000", "-container", "linked list"} })

			s.Then("the op rate is printed", func(t *testcase.T) {
				act(t)
				assert.Equal(t, cli.ExitCodeOK, response.Get(t).Code)
				assert.True(t, strings.HasPrefix(response.Get(t).Out.String(), "Linked List prepend "))
			})
		})

		s.When("the container is unknown", func(s *testcase.Spec) {
			args.Let(s, func(t *testcase.T) []string { return []string{"throughput", "-container", "deque"} })

			s.Then("it exits as a bad request", func(t *testcase.T) {
				act(t)
				assert.Equal(t, cli.ExitCodeBadRequest, response.Get(t).Code)
				assert.Contains(t, response.Get(t).Err.String(), "deque")
			})
		})

		s.When("the op count is not positive", func(s *testcase.Spec) {
			args.Let(s, func(t *testcase.T) []string { return []string{"throughput", "-ops", "0"} })

			s.Then("it exits as a bad request", func(t *testcase.T) {
				act(t)
				assert.Equal(t, cli.ExitCodeBadRequest, response.Get(t).Code)
			})
		})
	})
}
