// internal/cli/smem.go
package cli

import (
	"github.com/spf13/cobra"

	"altseed/core/bwt"
	"altseed/core/smem"
	"altseed/internal/appcore"
	"altseed/internal/cliutil"
	"altseed/internal/cmdutil"
	"altseed/internal/metrics"
	"altseed/internal/output"
	"altseed/internal/pipeline"
)

func newSMEMCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "smem [flags] reads.fq...",
		Short: "List the SMEMs of every read",
		Long: `Walk every read left to right and print the super-maximal exact
matches found at each cursor position. Ambiguous bases are skipped.
Reads may be FASTA or FASTQ, gzipped, or '-' for stdin.`,
		Example: "  altseed smem --ref ref.fa --min-intv 2 reads.fq",
		Args:    usageArgs(cobra.MinimumNArgs(1)),
		RunE:    a.runSMEM,
	}
	f := cmd.Flags()
	f.Int("min-intv", smem.DefaultMinIntv, "minimum interval size of a reported match")
	f.Int("max-len", smem.DefaultMaxLen, "longest match the forward phase may build")
	f.Uint64("max-intv", smem.DefaultMaxIntv, "stop forward extension below this interval size (0 = off)")
	return cmd
}

func (a *app) runSMEM(cmd *cobra.Command, args []string) error {
	reads, err := cliutil.ExpandReads(args)
	if err != nil {
		return cmdutil.Usage(err)
	}
	_, idx, err := loadReference(cmd.Context(), a.cfg)
	if err != nil {
		return err
	}
	cfg := a.cfg
	newWorker := func() (appcore.RowWorker, error) {
		it := smem.New(idx)
		it.Config(cfg.SMEM.MinIntv, cfg.SMEM.MaxLen, cfg.SMEM.MaxIntv)
		return &smemWorker{it: it}, nil
	}
	_, err = appcore.Run(cmd.Context(), cmd.OutOrStdout(), a.options("smem", reads),
		newWorker, appcore.NewRowWriterFactory(cfg.Output, cfg.Sort, output.SMEMHeader, !cfg.NoHeader))
	return err
}

// smemWorker owns one iterator and its query buffer.
type smemWorker struct {
	it  *smem.Iterator
	buf []byte
}

func (w *smemWorker) Process(r pipeline.Read) ([]output.Row, error) {
	w.buf = append(w.buf[:0], r.Record.Seq...)
	bwt.EncodeInPlace(w.buf)
	w.it.SetQuery(len(w.buf), w.buf)

	var rows []output.Row
	for {
		set, ok := w.it.Next()
		if !ok {
			break
		}
		for _, m := range set {
			rows = append(rows, output.SMEMRow{Read: r.Record.ID, Index: r.Index, Sub: len(rows), M: m})
		}
	}
	metrics.SMEMsTotal().Add(int64(len(rows)))
	return rows, nil
}

func (w *smemWorker) Close() { w.it.Close() }
