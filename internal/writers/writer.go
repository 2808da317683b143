// internal/writers/writer.go
package writers

import (
	"io"

	"altseed/internal/output"
)

// StartWriter spins up a writer goroutine. Rows sent on the returned channel
// are written in arrival order, or buffered and ordered by output.SortRows
// when sort is set. The error channel yields exactly one value; after a
// failure the goroutine keeps draining the input so senders never block.
func StartWriter(out io.Writer, format string, sort bool, header string, bufSize int) (chan<- output.Row, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan output.Row, bufSize)
	done := make(chan error, 1)

	go func() {
		done <- drive(out, format, sort, header, in)
		for range in {
		}
	}()
	return in, done
}

func drive(out io.Writer, format string, sort bool, header string, in <-chan output.Row) error {
	sink, err := NewSink(format, out, header)
	if err != nil {
		return err
	}
	if sort {
		var buf []output.Row
		for r := range in {
			buf = append(buf, r)
		}
		output.SortRows(buf)
		for _, r := range buf {
			if err := sink.Write(r); err != nil {
				_ = sink.Close()
				return err
			}
		}
		return sink.Close()
	}
	for r := range in {
		if err := sink.Write(r); err != nil {
			_ = sink.Close()
			return err
		}
	}
	return sink.Close()
}
