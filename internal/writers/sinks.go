// internal/writers/sinks.go
package writers

import (
	"io"

	"altseed/internal/jsonlutil"
	"altseed/internal/output"
)

func init() {
	Register(output.FormatText, newTextSink)
	Register(output.FormatJSON, newJSONSink)
	Register(output.FormatJSONL, newJSONLSink)
}

// textSink streams TSV lines; the header goes out first, even for an
// empty stream.
type textSink struct {
	w      io.Writer
	header string
	begun  bool
}

func newTextSink(w io.Writer, header string) Sink { return &textSink{w: w, header: header} }

func (s *textSink) begin() error {
	if s.begun {
		return nil
	}
	s.begun = true
	if s.header == "" {
		return nil
	}
	_, err := io.WriteString(s.w, s.header+"\n")
	return err
}

func (s *textSink) Write(r output.Row) error {
	if err := s.begin(); err != nil {
		return err
	}
	return output.WriteLine(s.w, r)
}

func (s *textSink) Close() error { return s.begin() }

// jsonSink buffers everything into one array.
type jsonSink struct {
	w    io.Writer
	rows []output.Row
}

func newJSONSink(w io.Writer, _ string) Sink { return &jsonSink{w: w} }

func (s *jsonSink) Write(r output.Row) error {
	s.rows = append(s.rows, r)
	return nil
}

func (s *jsonSink) Close() error { return output.WriteJSON(s.w, s.rows) }

// jsonlSink streams one v1 value per line.
type jsonlSink struct{ enc *jsonlutil.Encoder }

func newJSONLSink(w io.Writer, _ string) Sink { return &jsonlSink{enc: jsonlutil.NewEncoder(w)} }

func (s *jsonlSink) Write(r output.Row) error { return s.enc.Encode(r.API()) }
func (s *jsonlSink) Close() error             { return s.enc.Close(IsBrokenPipe) }
