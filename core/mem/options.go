// core/mem/options.go
//
// Package mem wires the seed iterator, region discovery, primary marking
// and alternate-hit generation into a single-read aligner.
package mem

import (
	"math"

	"github.com/pkg/errors"

	"altseed/core/region"
)

// Options are the per-run alignment parameters. Defaults follow bwa mem.
type Options struct {
	region.MarkOptions
	Alt region.AltOptions

	MinSeedLen int // shortest SMEM used as a seed
	MaxOcc     int // occurrences located per seed
	ZDrop      int // stop extending once the score falls this far below the best
	PenClip    int // clipping penalty at either read end

	// SMEM iterator thresholds
	MinIntv   int
	MaxIntv   uint64
	MaxMemLen int

	MapQCoefLen int
	MapQCoefFac float64
}

// DefaultOptions returns bwa mem's defaults.
func DefaultOptions() Options {
	return Options{
		MarkOptions: region.DefaultMarkOptions(),
		Alt:         region.DefaultAltOptions(),
		MinSeedLen:  19,
		MaxOcc:      500,
		MinIntv:     1,
		MaxIntv:     0,
		MaxMemLen:   math.MaxInt32,
		ZDrop:       100,
		PenClip:     5,
		MapQCoefLen: 50,
		MapQCoefFac: math.Log(50),
	}
}

// Validate rejects settings the aligner cannot work with.
func (o Options) Validate() error {
	switch {
	case o.MatchScore <= 0:
		return errors.Errorf("match score must be positive, got %d", o.MatchScore)
	case o.Mismatch < 0:
		return errors.Errorf("mismatch penalty must be non-negative, got %d", o.Mismatch)
	case o.MinSeedLen <= 0:
		return errors.Errorf("min seed length must be positive, got %d", o.MinSeedLen)
	case o.MinIntv < 1:
		return errors.Errorf("min interval must be at least 1, got %d", o.MinIntv)
	case o.MaxMemLen <= 0:
		return errors.Errorf("max SMEM length must be positive, got %d", o.MaxMemLen)
	case o.Alt.DropRatio < 0 || o.Alt.DropRatio > 1:
		return errors.Errorf("XA drop ratio must be in [0,1], got %g", o.Alt.DropRatio)
	case o.Alt.MaxHits < 0 || o.Alt.MaxHitsAlt < 0:
		return errors.Errorf("XA caps must be non-negative, got %d,%d", o.Alt.MaxHits, o.Alt.MaxHitsAlt)
	case o.MaskLevel < 0 || o.MaskLevel > 1:
		return errors.Errorf("mask level must be in [0,1], got %g", o.MaskLevel)
	}
	return nil
}
