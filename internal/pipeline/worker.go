// internal/pipeline/worker.go
package pipeline

import "altseed/core/fasta"

// Read is one input record tagged with its position in the input stream.
type Read struct {
	Index  int // 0-based across all input files
	File   string
	Record fasta.Record
}

// Result pairs a read with what its worker produced.
type Result[T any] struct {
	Read
	Out T
}

// Worker turns one read into a T. A Worker is used by one goroutine only.
type Worker[T any] interface {
	Process(r Read) (T, error)
	Close()
}

// WorkerFunc adapts a stateless function to Worker.
type WorkerFunc[T any] func(r Read) (T, error)

func (f WorkerFunc[T]) Process(r Read) (T, error) { return f(r) }
func (f WorkerFunc[T]) Close()                    {}
