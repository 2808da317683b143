// core/fasta/stream.go
package fasta

import (
	"context"
	"io"

	"github.com/pkg/errors"
)

// StreamCtx parses r and calls emit once per record, in file order.
// It returns promptly with ctx.Err() once ctx is done, and stops with the
// first error emit returns.
func StreamCtx(ctx context.Context, r io.Reader, emit func(Record) error) error {
	rd, err := NewReader(r)
	if err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		rec, err := rd.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := emit(rec); err != nil {
			return err
		}
	}
}

// StreamPathCtx is StreamCtx over a path ("-" for stdin, gzip aware).
func StreamPathCtx(ctx context.Context, path string, emit func(Record) error) error {
	rc, err := Open(path)
	if err != nil {
		return err
	}
	defer rc.Close()
	if err := StreamCtx(ctx, rc, emit); err != nil {
		return errors.WithMessage(err, path)
	}
	return nil
}

// ReadAll loads every record of path into memory.
func ReadAll(ctx context.Context, path string) ([]Record, error) {
	var out []Record
	err := StreamPathCtx(ctx, path, func(r Record) error {
		out = append(out, r)
		return nil
	})
	return out, err
}
