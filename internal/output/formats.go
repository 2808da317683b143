// internal/output/formats.go
package output

// Output formats accepted by --output.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// Header rows for text output. Keep these as the single source of truth;
// every writer uses them.
const (
	SMEMHeader    = "read\tqstart\tqend\tcount\tlo\thi"
	HitHeader     = "read\tcontig\tstrand\tpos\tmapq\tcigar\tnm\tXA"
	OverlapHeader = "read\tread_len\tqb\tqe\tcontig\tcontig_len\tbeg\tend\tscore"
)

// Row is one output record. Order gives (read index, position within the
// read) for --sort; TSV is the text line without its newline; API is the
// v1 wire value for JSON and JSONL.
type Row interface {
	Order() (read, sub int)
	TSV() string
	API() any
}
