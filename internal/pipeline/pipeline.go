// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/log"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	pb "gopkg.in/cheggaaa/pb.v1"

	"altseed/core/fasta"
	"altseed/internal/metrics"
)

// Config controls the read pipeline.
type Config struct {
	Threads  int       // number of worker goroutines (>=1)
	Name     string    // label for the reads_total meter
	Progress io.Writer // if set, a read counter is drawn here
}

// ForEachRead streams every record of readFiles, in file order, to Threads
// workers built by newWorker and calls visit once per result from the
// calling goroutine. Results arrive in completion order; Result.Index
// restores input order. It returns the first error encountered (including
// context cancellation); visit errors take precedence.
func ForEachRead[T any](
	ctx context.Context,
	cfg Config,
	readFiles []string,
	newWorker func() (Worker[T], error),
	visit func(Result[T]) error,
) error {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	if cfg.Name == "" {
		cfg.Name = "reads"
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(runCtx)

	jobs := make(chan Read, cfg.Threads*2)
	results := make(chan Result[T], cfg.Threads*2)

	// Feed work
	g.Go(func() error {
		defer close(jobs)
		idx := 0
		for _, fn := range readFiles {
			log.Debug("reading", "file", fn)
			err := fasta.StreamPathCtx(gctx, fn, func(rec fasta.Record) error {
				select {
				case jobs <- Read{Index: idx, File: fn, Record: rec}:
					idx++
					return nil
				case <-gctx.Done():
					return gctx.Err()
				}
			})
			if err != nil {
				return err
			}
		}
		log.Debug("input exhausted", "reads", idx, "files", len(readFiles))
		return nil
	})

	// Workers
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		g.Go(func() error {
			defer wg.Done()
			wk, err := newWorker()
			if err != nil {
				return errors.Wrap(err, "start worker")
			}
			defer wk.Close()
			metrics.ActiveWorkers().Add(1)
			defer metrics.ActiveWorkers().Add(-1)

			for r := range jobs {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				t0 := time.Now()
				out, err := wk.Process(r)
				if err != nil {
					return errors.Wrapf(err, "read %s (%s #%d)", r.Record.ID, r.File, r.Index)
				}
				metrics.ReadDurationUS().Observe(time.Since(t0).Microseconds())
				select {
				case results <- Result[T]{Read: r, Out: out}:
				case <-gctx.Done():
					return gctx.Err()
				}
			}
			return nil
		})
	}
	g.Go(func() error {
		wg.Wait()
		close(results)
		return nil
	})

	var bar *pb.ProgressBar
	if cfg.Progress != nil {
		bar = pb.New(0)
		bar.Output = cfg.Progress
		bar.ShowPercent = false
		bar.ShowBar = false
		bar.ShowTimeLeft = false
		bar.ShowSpeed = true
		bar.Prefix(cfg.Name + " ")
		bar.Start()
	}

	// Collector
	var verr error
	for res := range results {
		if verr != nil {
			continue // drain so workers can exit
		}
		metrics.ReadsTotal().AddWithLabel(1, map[string]string{"cmd": cfg.Name})
		if bar != nil {
			bar.Increment()
		}
		if err := visit(res); err != nil {
			verr = err
			cancel()
		}
	}
	if bar != nil {
		bar.Finish()
	}

	gerr := g.Wait()
	switch {
	case verr != nil:
		return verr
	case ctx.Err() != nil:
		return ctx.Err()
	default:
		return gerr
	}
}
