// internal/cli/reference.go
package cli

import (
	"context"

	"github.com/ethereum/go-ethereum/log"
	"github.com/pkg/errors"

	"altseed/core/bwt"
	"altseed/core/refseq"
	"altseed/internal/cmdutil"
	"altseed/internal/config"
)

// loadReference reads the reference and its alt list and indexes it.
// The index is read-only and shared by every worker.
func loadReference(ctx context.Context, cfg config.Config) (*refseq.Reference, *bwt.Naive, error) {
	if cfg.Ref == "" {
		return nil, nil, cmdutil.Usage(errors.New("--ref is required"))
	}
	var alts []string
	if cfg.Align.AltContigs != "" {
		var err error
		if alts, err = refseq.ReadAltNames(cfg.Align.AltContigs); err != nil {
			return nil, nil, err
		}
	}
	ref, err := refseq.Load(ctx, cfg.Ref, alts)
	if err != nil {
		return nil, nil, err
	}
	idx := bwt.NewNaive(ref.Pac)
	log.Info("reference ready", "path", cfg.Ref, "contigs", len(ref.Contigs), "bases", ref.LPac, "alt", ref.NumAlt())
	return ref, idx, nil
}
