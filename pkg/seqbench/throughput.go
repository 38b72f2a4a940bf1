package seqbench

import (
	"io"
	"sync"

	"github.com/tidwall/lotsa"
)

// lotsa reports through a package level writer.
var lotsaM sync.Mutex

// Throughput prepends ops elements to a single container of the subject
// and writes the achieved op rate to w.
// It returns the final length of the container.
func Throughput(w io.Writer, subject Subject, ops int) (int, error) {
	if ops < 1 {
		return 0, ErrInvalidSize.F("ops must be positive: %d", ops)
	}
	lotsaM.Lock()
	defer lotsaM.Unlock()
	prev := lotsa.Output
	lotsa.Output = w
	defer func() { lotsa.Output = prev }()

	c := subject.Make()
	if _, err := io.WriteString(w, subject.Name+" prepend "); err != nil {
		return 0, err
	}
	// containers are not safe for concurrent use, so a single thread drives them.
	lotsa.Ops(ops, 1, func(i, _ int) {
		c.Prepend(i)
	})
	return c.Len(), nil
}
