// pkg/api/hit_v1.go
package api

// AltV1 is one alternative placement from a hit's XA list.
type AltV1 struct {
	Contig string `json:"contig"`
	Strand string `json:"strand"` // "+" | "-"
	Pos    int64  `json:"pos"`    // 1-based
	Cigar  string `json:"cigar"`
	NM     int    `json:"nm"`
	MapQ   int    `json:"mapq"`
}

// HitV1 is the stable JSON/JSONL schema for a primary alignment.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type HitV1 struct {
	Read   string  `json:"read"`
	Contig string  `json:"contig"`
	Strand string  `json:"strand"`
	Pos    int64   `json:"pos"` // 1-based
	MapQ   int     `json:"mapq"`
	Cigar  string  `json:"cigar"`
	NM     int     `json:"nm"`
	Score  int     `json:"score"`
	IsAlt  bool    `json:"is_alt,omitempty"`
	XA     []AltV1 `json:"xa,omitempty"`
}

// OverlapV1 is one region of a read in overlap form. Coordinates are
// contig-local; QB > QE marks a reverse-strand region.
type OverlapV1 struct {
	Read      string  `json:"read"`
	ReadLen   int     `json:"read_len"`
	QB        int     `json:"qb"`
	QE        int     `json:"qe"`
	Contig    string  `json:"contig"`
	ContigLen int64   `json:"contig_len"`
	Beg       int64   `json:"beg"`
	End       int64   `json:"end"`
	Score     float64 `json:"score"`
}
