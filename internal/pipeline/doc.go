// Package pipeline streams reads (FASTA/FASTQ, gzip or stdin) through a
// pool of Workers and hands every result to a single visit callback.
//
// The only contract to implement is Worker. Each pool goroutine builds its
// own through the factory, so per-read state such as an SMEM iterator is
// never shared.
package pipeline
