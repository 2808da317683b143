// internal/writers/registry.go
package writers

import (
	"io"
	"sort"

	"github.com/pkg/errors"

	"altseed/internal/output"
)

// Sink consumes rows in delivery order. Close finishes the stream; it is
// called exactly once, also when nothing was written.
type Sink interface {
	Write(output.Row) error
	Close() error
}

// SinkFactory builds a Sink over out. header is the text header row, empty
// when disabled; formats without a header ignore it.
type SinkFactory func(out io.Writer, header string) Sink

// Writer registry (format → sink). Register in init() blocks.
var sinks = map[string]SinkFactory{}

// Register adds or replaces the sink for format (last wins).
func Register(format string, fn SinkFactory) { sinks[format] = fn }

// NewSink dispatches on format.
func NewSink(format string, out io.Writer, header string) (Sink, error) {
	fn, ok := sinks[format]
	if !ok {
		return nil, errors.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(out, header), nil
}

// Formats lists the registered format names, sorted.
func Formats() []string {
	out := make([]string, 0, len(sinks))
	for k := range sinks {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
