// Package writers turns output rows into serialized streams.
//
// Design:
//   - Writers own all presentation knowledge (TSV, JSON, JSONL).
//   - The core packages stay domain-only; the pipeline stays orchestration-only.
//   - JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
