package appcore

import (
	"io"

	"altseed/internal/output"
	"altseed/internal/writers"
)

// RowWriterFactory starts the writer for one subcommand's rows.
type RowWriterFactory struct {
	Format string
	Sort   bool
	Header string // empty disables the header row
}

// NewRowWriterFactory keeps header only when withHeader is set.
func NewRowWriterFactory(format string, sort bool, header string, withHeader bool) RowWriterFactory {
	if !withHeader {
		header = ""
	}
	return RowWriterFactory{Format: format, Sort: sort, Header: header}
}

// Buffered reports whether the writer holds every row until the end.
func (w RowWriterFactory) Buffered() bool {
	return w.Sort || w.Format == output.FormatJSON
}

func (w RowWriterFactory) Start(out io.Writer, bufSize int) (chan<- output.Row, <-chan error) {
	return writers.StartWriter(out, w.Format, w.Sort, w.Header, bufSize)
}
