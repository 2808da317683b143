// pkg/api/smem_v1.go
package api

// SMEMV1 is the stable JSON/JSONL schema for one super-maximal exact match.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type SMEMV1 struct {
	Read   string `json:"read"`
	QStart int    `json:"qstart"` // 0-based, inclusive
	QEnd   int    `json:"qend"`   // exclusive
	Count  uint64 `json:"count"`
	Lo     uint64 `json:"lo"`
	Hi     uint64 `json:"hi"`
}
