// internal/output/text.go
package output

import (
	"io"
)

// WriteLine writes one row as a TSV line.
func WriteLine(w io.Writer, r Row) error {
	_, err := io.WriteString(w, r.TSV()+"\n")
	return err
}

// WriteText writes rows as a tab-delimited table. An empty header is skipped.
func WriteText(w io.Writer, rows []Row, header string) error {
	if header != "" {
		if _, err := io.WriteString(w, header+"\n"); err != nil {
			return err
		}
	}
	for _, r := range rows {
		if err := WriteLine(w, r); err != nil {
			return err
		}
	}
	return nil
}
