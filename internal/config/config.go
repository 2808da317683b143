// Package config is for run-wide settings that are unmarshalled from Viper.
// Values come from command-line flags, an optional YAML file (--config) and
// ALTSEED_* environment variables, highest precedence first.
package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"altseed/core/mem"
	"altseed/core/smem"
	"altseed/internal/output"
)

// EnvPrefix is prepended to every environment override, e.g. ALTSEED_THREADS.
const EnvPrefix = "ALTSEED"

// Output formats.
const (
	FormatText  = output.FormatText
	FormatJSON  = output.FormatJSON
	FormatJSONL = output.FormatJSONL
)

// SMEMConfig are the iterator thresholds used by `altseed smem` and by the
// seed finder of `altseed align`.
type SMEMConfig struct {
	// minimum interval size for a match to be reported
	MinIntv int `mapstructure:"min-intv" yaml:"min-intv"`

	// longest match the forward phase may build
	MaxLen int `mapstructure:"max-len" yaml:"max-len"`

	// interval size below which forward extension stops (0 disables)
	MaxIntv uint64 `mapstructure:"max-intv" yaml:"max-intv"`
}

// AlignConfig are the settings of `altseed align`.
type AlignConfig struct {
	// score ratio a secondary must reach to land in its primary's XA
	XADrop float64 `mapstructure:"xa-drop" yaml:"xa-drop"`

	// XA caps for groups without and with an alt-contig member
	MaxXA    int `mapstructure:"max-xa" yaml:"max-xa"`
	MaxXAAlt int `mapstructure:"max-xa-alt" yaml:"max-xa-alt"`

	// file listing alt contig names (bwa .alt layout)
	AltContigs string `mapstructure:"alt-contigs" yaml:"alt-contigs"`

	// print overlap lines instead of hits
	Overlap bool `mapstructure:"ovlp" yaml:"ovlp"`

	// seeds the tie-breaking hash of primary marking
	Seed int64 `mapstructure:"seed" yaml:"seed"`

	MinSeedLen int     `mapstructure:"min-seed-len" yaml:"min-seed-len"`
	MaxOcc     int     `mapstructure:"max-occ" yaml:"max-occ"`
	MaskLevel  float64 `mapstructure:"mask-level" yaml:"mask-level"`
}

// Config is the root-level settings struct.
type Config struct {
	// reference FASTA
	Ref string `mapstructure:"ref" yaml:"ref"`

	Threads     int    `mapstructure:"threads" yaml:"threads"`
	Output      string `mapstructure:"output" yaml:"output"`
	Sort        bool   `mapstructure:"sort" yaml:"sort"`
	NoHeader    bool   `mapstructure:"no-header" yaml:"no-header"`
	Verbosity   int    `mapstructure:"verbosity" yaml:"verbosity"`
	Quiet       bool   `mapstructure:"quiet" yaml:"quiet"`
	MetricsAddr string `mapstructure:"metrics-addr" yaml:"metrics-addr"`

	SMEM  SMEMConfig  `mapstructure:"smem" yaml:"smem"`
	Align AlignConfig `mapstructure:"align" yaml:"align"`
}

// Defaults registers every key with its default value. Viper only maps
// environment variables onto keys it already knows about.
func Defaults(v *viper.Viper) {
	mo := mem.DefaultOptions()

	v.SetDefault("ref", "")
	v.SetDefault("threads", 0)
	v.SetDefault("output", FormatText)
	v.SetDefault("sort", false)
	v.SetDefault("no-header", false)
	v.SetDefault("verbosity", 3)
	v.SetDefault("quiet", false)
	v.SetDefault("metrics-addr", "")

	v.SetDefault("smem.min-intv", smem.DefaultMinIntv)
	v.SetDefault("smem.max-len", smem.DefaultMaxLen)
	v.SetDefault("smem.max-intv", smem.DefaultMaxIntv)

	v.SetDefault("align.xa-drop", mo.Alt.DropRatio)
	v.SetDefault("align.max-xa", mo.Alt.MaxHits)
	v.SetDefault("align.max-xa-alt", mo.Alt.MaxHitsAlt)
	v.SetDefault("align.alt-contigs", "")
	v.SetDefault("align.ovlp", false)
	v.SetDefault("align.seed", 11)
	v.SetDefault("align.min-seed-len", mo.MinSeedLen)
	v.SetDefault("align.max-occ", mo.MaxOcc)
	v.SetDefault("align.mask-level", mo.MaskLevel)
}

// New returns a Viper instance with defaults and environment lookup wired.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	Defaults(v)
	return v
}

// Load reads the optional config file named by the "config" key, decodes
// every setting and validates the result.
func Load(v *viper.Viper) (Config, error) {
	if f := v.GetString("config"); f != "" {
		v.SetConfigFile(f)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "read config %s", f)
		}
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(err, "decode config")
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects settings no command can run with.
func (c Config) Validate() error {
	switch c.Output {
	case FormatText, FormatJSON, FormatJSONL:
	default:
		return errors.Errorf("unsupported output %q (want text, json or jsonl)", c.Output)
	}
	switch {
	case c.Threads < 0:
		return errors.Errorf("threads must be non-negative, got %d", c.Threads)
	case c.Verbosity < 0 || c.Verbosity > 5:
		return errors.Errorf("verbosity must be in [0,5], got %d", c.Verbosity)
	case c.SMEM.MinIntv < 1:
		return errors.Errorf("min-intv must be at least 1, got %d", c.SMEM.MinIntv)
	case c.SMEM.MaxLen <= 0:
		return errors.Errorf("max-len must be positive, got %d", c.SMEM.MaxLen)
	}
	return errors.WithMessage(c.MemOptions().Validate(), "align")
}

// MemOptions maps the settings onto aligner options. The SMEM section also
// drives the aligner's seed iterator.
func (c Config) MemOptions() mem.Options {
	o := mem.DefaultOptions()
	o.MinIntv = c.SMEM.MinIntv
	o.MaxIntv = c.SMEM.MaxIntv
	o.MaxMemLen = c.SMEM.MaxLen
	o.Alt.DropRatio = c.Align.XADrop
	o.Alt.MaxHits = c.Align.MaxXA
	o.Alt.MaxHitsAlt = c.Align.MaxXAAlt
	o.MinSeedLen = c.Align.MinSeedLen
	o.MaxOcc = c.Align.MaxOcc
	o.MaskLevel = c.Align.MaskLevel
	return o
}
