// internal/jsonlutil/jsonlutil.go
package jsonlutil

import (
	"bufio"
	"encoding/json"
	"io"
	"sync"
)

// 64 KiB buffered writers are pooled across encoders.
var bwPool = sync.Pool{
	New: func() any {
		return bufio.NewWriterSize(io.Discard, 64<<10)
	},
}

// Encoder writes one JSON value per line through a pooled buffer.
type Encoder struct {
	bw  *bufio.Writer
	enc *json.Encoder
}

// NewEncoder binds a pooled buffer to out. Close must be called to flush
// and return the buffer.
func NewEncoder(out io.Writer) *Encoder {
	bw := bwPool.Get().(*bufio.Writer)
	bw.Reset(out)
	enc := json.NewEncoder(bw)
	enc.SetEscapeHTML(false)
	return &Encoder{bw: bw, enc: enc}
}

// Encode writes v followed by a newline.
func (e *Encoder) Encode(v any) error { return e.enc.Encode(v) }

// Close flushes and releases the buffer. Errors for which isBroken reports
// true are dropped.
func (e *Encoder) Close(isBroken func(error) bool) error {
	if e.bw == nil {
		return nil
	}
	err := e.bw.Flush()
	e.bw.Reset(io.Discard)
	bwPool.Put(e.bw)
	e.bw = nil
	if err != nil && isBroken != nil && isBroken(err) {
		return nil
	}
	return err
}
