package seqbench

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// WriteReport renders the results into w.
//
// The text format prints one line per result:
//
//	Vector prepend() 1000+1 element is: 1.234 microsecs
func WriteReport(w io.Writer, format Format, results []Result) error {
	switch format {
	case FormatText, "":
		for _, r := range results {
			if _, err := fmt.Fprintf(w, "%s prepend() %d+1 element is: %.6g microsecs\n", r.Container, r.Size, r.Microseconds); err != nil {
				return err
			}
		}
		return nil
	case FormatJSON:
		if results == nil {
			results = []Result{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	default:
		return ErrUnknownFormat.F("%q", format)
	}
}
