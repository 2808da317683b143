// internal/output/json.go
package output

import (
	"io"

	"altseed/internal/jsonutil"
)

// APIValues converts rows to their v1 wire values.
func APIValues(rows []Row) []any {
	out := make([]any, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.API())
	}
	return out
}

// WriteJSON writes a single JSON array of v1 values (pretty-indented).
func WriteJSON(w io.Writer, rows []Row) error {
	return jsonutil.EncodePretty(w, APIValues(rows))
}
