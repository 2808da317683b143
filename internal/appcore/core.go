// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"io"

	"github.com/ethereum/go-ethereum/log"
	"github.com/pkg/errors"

	"altseed/internal/output"
	"altseed/internal/pipeline"
)

// Options controls one subcommand run.
type Options struct {
	Name      string // subcommand, used for meters and logs
	ReadFiles []string
	Threads   int
	Progress  io.Writer
}

// RowWorker turns one read into output rows.
type RowWorker = pipeline.Worker[[]output.Row]

// Run streams the reads through workers built by newWorker and writes every
// row through wf. It returns the number of rows written. Writer failures
// stop the pipeline; broken pipes are reported like any other error and
// left to the caller to classify.
func Run(
	parent context.Context,
	stdout io.Writer,
	o Options,
	newWorker func() (RowWorker, error),
	wf RowWriterFactory,
) (int, error) {
	outw := bufio.NewWriter(stdout)
	thr := o.Threads
	if thr < 1 {
		thr = 1
	}

	inCh, writeErr := wf.Start(outw, thr*4)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	var (
		werr   error
		gotErr bool
		total  int
	)
	send := func(r output.Row) error {
		select {
		case inCh <- r:
			return nil
		case werr = <-writeErr:
			gotErr = true
			if werr == nil {
				werr = errors.New("writer stopped early")
			}
			return werr
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	perr := pipeline.ForEachRead(ctx,
		pipeline.Config{Threads: thr, Name: o.Name, Progress: o.Progress},
		o.ReadFiles,
		newWorker,
		func(res pipeline.Result[[]output.Row]) error {
			for _, r := range res.Out {
				if err := send(r); err != nil {
					return err
				}
				total++
			}
			return nil
		},
	)

	close(inCh)
	if !gotErr {
		werr = <-writeErr
	}
	if werr != nil {
		return total, errors.WithMessage(werr, "write output")
	}
	if err := outw.Flush(); err != nil {
		return total, errors.WithMessage(err, "flush output")
	}
	if perr != nil {
		return total, perr
	}
	log.Debug("run complete", "cmd", o.Name, "rows", total)
	return total, nil
}
