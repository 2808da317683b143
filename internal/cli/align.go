// internal/cli/align.go
package cli

import (
	"github.com/spf13/cobra"

	"altseed/core/mem"
	"altseed/core/refseq"
	"altseed/internal/appcore"
	"altseed/internal/cliutil"
	"altseed/internal/cmdutil"
	"altseed/internal/metrics"
	"altseed/internal/output"
	"altseed/internal/pipeline"
)

func newAlignCmd(a *app) *cobra.Command {
	d := mem.DefaultOptions()
	cmd := &cobra.Command{
		Use:   "align [flags] reads.fq...",
		Short: "Report primary hits with XA alternative placements",
		Long: `Seed every read with SMEMs, extend the seeds into regions, mark primary
and secondary regions and print one row per primary hit. The XA column
lists the secondaries grouped under the hit, as contig,±pos,CIGAR,NM,MAPQ;
entries. With --ovlp the regions are printed in overlap form instead.`,
		Example: `  altseed align --ref ref.fa reads.fq
  altseed align --ref ref.fa --alt-contigs ref.alt --max-xa 10 -o jsonl reads.fq.gz`,
		Args: usageArgs(cobra.MinimumNArgs(1)),
		RunE: a.runAlign,
	}
	f := cmd.Flags()
	f.Int("min-intv", d.MinIntv, "minimum interval size of a seed")
	f.Int("max-len", d.MaxMemLen, "longest SMEM the forward phase may build")
	f.Uint64("max-intv", d.MaxIntv, "stop forward extension below this interval size (0 = off)")
	f.Float64("xa-drop", d.Alt.DropRatio, "secondaries scoring below this fraction of the primary stay out of XA")
	f.Int("max-xa", d.Alt.MaxHits, "drop XA for groups larger than this")
	f.Int("max-xa-alt", d.Alt.MaxHitsAlt, "XA cap for groups with an alt-contig member")
	f.String("alt-contigs", "", "file naming the alt contigs (first column; '@' lines skipped)")
	f.Bool("ovlp", false, "print regions in overlap form")
	f.Int64("seed", 11, "tie-breaking seed for primary marking")
	f.Int("min-seed-len", d.MinSeedLen, "shortest SMEM used as a seed")
	f.Int("max-occ", d.MaxOcc, "occurrences located per seed")
	f.Float64("mask-level", d.MaskLevel, "overlap fraction at which a region shadows another")
	return cmd
}

func (a *app) runAlign(cmd *cobra.Command, args []string) error {
	reads, err := cliutil.ExpandReads(args)
	if err != nil {
		return cmdutil.Usage(err)
	}
	ref, idx, err := loadReference(cmd.Context(), a.cfg)
	if err != nil {
		return err
	}
	cfg := a.cfg
	opt := cfg.MemOptions()
	newWorker := func() (appcore.RowWorker, error) {
		return &alignWorker{
			a:    mem.NewAligner(opt, ref, idx, cfg.Align.Seed),
			ref:  ref,
			seed: cfg.Align.Seed,
			ovlp: cfg.Align.Overlap,
		}, nil
	}
	header := output.HitHeader
	if cfg.Align.Overlap {
		header = output.OverlapHeader
	}
	_, err = appcore.Run(cmd.Context(), cmd.OutOrStdout(), a.options("align", reads),
		newWorker, appcore.NewRowWriterFactory(cfg.Output, cfg.Sort, header, !cfg.NoHeader))
	return err
}

// alignWorker owns one aligner. Tie-breaking is reseeded per read from its
// input index, so output does not depend on the thread count.
type alignWorker struct {
	a    *mem.Aligner
	ref  *refseq.Reference
	seed int64
	ovlp bool
}

func (w *alignWorker) Process(r pipeline.Read) ([]output.Row, error) {
	w.a.Reseed(w.seed + int64(r.Index))
	res, err := w.a.Align(r.Record.Seq)
	if err != nil {
		return nil, err
	}
	metrics.RegionsTotal().Add(int64(len(res.Regions)))
	metrics.PrimaryHits().Add(int64(len(res.Hits)))
	metrics.AltResolved().Add(int64(res.Alt.Resolved))
	metrics.AltAdmitted().Add(int64(res.Alt.Admitted))

	if w.ovlp {
		block, err := w.a.Overlap(r.Record.ID, len(r.Record.Seq), res.Regions)
		if err != nil {
			return nil, err
		}
		ov, err := output.OverlapRows(r.Index, block)
		if err != nil {
			return nil, err
		}
		rows := make([]output.Row, len(ov))
		for i := range ov {
			rows[i] = ov[i]
		}
		return rows, nil
	}

	rows := make([]output.Row, 0, len(res.Hits))
	for i, h := range res.Hits {
		rid := h.Aln.RID
		row, err := output.NewHitRow(r.Record.ID, r.Index, i, w.ref.Name(rid), w.ref.IsAlt(rid), h)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (w *alignWorker) Close() { w.a.Close() }
