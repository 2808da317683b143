package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"altseed/core/mem"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load(New())
	require.NoError(t, err)

	assert.Equal(t, FormatText, c.Output)
	assert.Equal(t, 3, c.Verbosity)
	assert.Equal(t, 1, c.SMEM.MinIntv)
	assert.Equal(t, 0.8, c.Align.XADrop)
	assert.Equal(t, 5, c.Align.MaxXA)
	assert.Equal(t, 200, c.Align.MaxXAAlt)

	want := mem.DefaultOptions()
	got := c.MemOptions()
	assert.Equal(t, want.Alt, got.Alt)
	assert.Equal(t, want.MinSeedLen, got.MinSeedLen)
	assert.Equal(t, want.MaxMemLen, got.MaxMemLen)
	assert.Equal(t, want.MarkOptions, got.MarkOptions)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("ALTSEED_THREADS", "4")
	t.Setenv("ALTSEED_ALIGN_MAX_XA", "9")
	t.Setenv("ALTSEED_OUTPUT", "jsonl")

	c, err := Load(New())
	require.NoError(t, err)
	assert.Equal(t, 4, c.Threads)
	assert.Equal(t, 9, c.Align.MaxXA)
	assert.Equal(t, FormatJSONL, c.Output)
}

func TestConfigFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "altseed.yaml")
	require.NoError(t, os.WriteFile(fn, []byte(`threads: 2
sort: true
smem:
  min-intv: 3
align:
  xa-drop: 0.5
  alt-contigs: alts.txt
`), 0o644))

	v := New()
	v.Set("config", fn)
	c, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, 2, c.Threads)
	assert.True(t, c.Sort)
	assert.Equal(t, 3, c.SMEM.MinIntv)
	assert.Equal(t, 0.5, c.Align.XADrop)
	assert.Equal(t, "alts.txt", c.Align.AltContigs)
	// untouched keys keep their defaults
	assert.Equal(t, 200, c.Align.MaxXAAlt)
}

func TestMissingConfigFile(t *testing.T) {
	v := New()
	v.Set("config", filepath.Join(t.TempDir(), "nope.yaml"))
	_, err := Load(v)
	assert.ErrorContains(t, err, "read config")
}

func TestValidate(t *testing.T) {
	base, err := Load(New())
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func(*Config)
		msg    string
	}{
		{"output", func(c *Config) { c.Output = "bam" }, "unsupported output"},
		{"threads", func(c *Config) { c.Threads = -1 }, "threads"},
		{"verbosity", func(c *Config) { c.Verbosity = 9 }, "verbosity"},
		{"min-intv", func(c *Config) { c.SMEM.MinIntv = 0 }, "min-intv"},
		{"max-len", func(c *Config) { c.SMEM.MaxLen = 0 }, "max-len"},
		{"xa-drop", func(c *Config) { c.Align.XADrop = 1.5 }, "align: XA drop ratio"},
		{"max-xa", func(c *Config) { c.Align.MaxXA = -1 }, "XA caps"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base
			tt.mutate(&c)
			assert.ErrorContains(t, c.Validate(), tt.msg)
		})
	}
	assert.NoError(t, base.Validate())
}
