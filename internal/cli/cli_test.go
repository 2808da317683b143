package cli

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"altseed/internal/cmdutil"
	"altseed/internal/config"
	"altseed/internal/output"
	"altseed/pkg/api"
)

const (
	chr1 = "GATCATGCTTACCCGGTCAGCAAGGTGTTCCGGGTGTGGACCGTTAGGGCGTTACTAGTTGCAATCGATCACTCATAACTTAACGAAACAAATTGCGTGTATTGTGAATCCCCTGAAATAGTTACATGTCCTAGGTTTGTTTTCGTATGAATGGGGTTTTGACCGAATTGCTGATTTTTTGTCTCAGCTCCTGCTTTCTGGTGATGTTTACTATATATTGCACTTATACCTGTACTGTAGTCTGTAATGTCACAGTACTGGGCGGCGAAATACCCTTTGCTAACAAATTGGTCGCGTGGC"
	// chr1[100:200] with two substitutions
	chr1Alt = "ATTGTGAATCCCCTGAAATAGTTACATGTCGTAGGTTTGTTTTCGTATGAATGGGGTTTTAACCGAATTGCTGATTTTTTGTCTCAGCTCCTGCTTTCTG"
	// chr1[120:170] with one substitution; chr1_alt holds the same base
	readAlt = "GTTACATGTCGTAGGTTTGTTTTCGTATGAATGGGGTTTTGACCGAATTG"
	// reverse complement of chr1[200:260]
	readRev = "CAGTACTGTGACATTACAGACTACAGTACAGGTATAAGTGCAATATATAGTAAACATCAC"
)

type fixture struct {
	ref, alt, reads string
}

func writeFile(t *testing.T, dir, name, data string) string {
	t.Helper()
	fn := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(fn, []byte(data), 0o644))
	return fn
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	dir := t.TempDir()
	return fixture{
		ref:   writeFile(t, dir, "ref.fa", ">chr1\n"+chr1[:150]+"\n"+chr1[150:]+"\n>chr1_alt\n"+chr1Alt+"\n"),
		alt:   writeFile(t, dir, "ref.alt", "@SQ\tSN:chr1_alt\nchr1_alt\t0\tchr1\t101\t60\t100M\n"),
		reads: writeFile(t, dir, "reads.fa", ">read1\n"+readAlt+"\n>read2 rev\n"+readRev+"\n"),
	}
}

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var out, errb bytes.Buffer
	code := RunContext(context.Background(), args, &out, &errb)
	return code, out.String(), errb.String()
}

func TestAlignText(t *testing.T) {
	f := newFixture(t)
	code, out, stderr := run(t, "align", "-q", "-t", "2", "--sort",
		"--ref", f.ref, "--alt-contigs", f.alt, f.reads)
	require.Equal(t, cmdutil.ExitOK, code, stderr)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, output.HitHeader, lines[0])
	assert.Equal(t, "read1\tchr1\t+\t121\t60\t50M\t1\tchr1_alt,+21,50M,1,60;", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "read2\tchr1\t-\t201\t"), lines[2])
	assert.True(t, strings.HasSuffix(lines[2], "\t60M\t0\t*"), lines[2])
}

func TestAlignThreadsAgree(t *testing.T) {
	f := newFixture(t)
	_, one, _ := run(t, "align", "-q", "-t", "1", "--sort", "--ref", f.ref, "--alt-contigs", f.alt, f.reads)
	_, four, _ := run(t, "align", "-q", "-t", "4", "--sort", "--ref", f.ref, "--alt-contigs", f.alt, f.reads)
	assert.Equal(t, one, four)
}

func TestAlignXACap(t *testing.T) {
	f := newFixture(t)
	// a cap of zero leaves every group too large for XA
	code, out, stderr := run(t, "align", "-q", "--no-header", "--max-xa", "0",
		"--ref", f.ref, "--alt-contigs", f.alt, "--max-xa-alt", "0", f.reads)
	require.Equal(t, cmdutil.ExitOK, code, stderr)
	for _, ln := range strings.Split(strings.TrimSuffix(out, "\n"), "\n") {
		assert.True(t, strings.HasSuffix(ln, "\t*"), ln)
	}
}

func TestAlignOverlap(t *testing.T) {
	f := newFixture(t)
	reads := writeFile(t, t.TempDir(), "r2.fa", ">r2\n"+readRev+"\n")
	code, out, stderr := run(t, "align", "-q", "--ovlp", "--ref", f.ref, reads)
	require.Equal(t, cmdutil.ExitOK, code, stderr)
	assert.Equal(t, output.OverlapHeader+"\nr2\t60\t60\t0\tchr1\t300\t200\t260\t1.000\n", out)
}

func TestAlignJSONL(t *testing.T) {
	f := newFixture(t)
	code, out, stderr := run(t, "align", "-q", "-o", "jsonl", "--sort",
		"--ref", f.ref, "--alt-contigs", f.alt, f.reads)
	require.Equal(t, cmdutil.ExitOK, code, stderr)

	var hits []api.HitV1
	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		var h api.HitV1
		require.NoError(t, json.Unmarshal(sc.Bytes(), &h))
		hits = append(hits, h)
	}
	require.Len(t, hits, 2)
	assert.Equal(t, "read1", hits[0].Read)
	assert.Equal(t, int64(121), hits[0].Pos)
	require.Len(t, hits[0].XA, 1)
	assert.Equal(t, api.AltV1{Contig: "chr1_alt", Strand: "+", Pos: 21, Cigar: "50M", NM: 1, MapQ: 60}, hits[0].XA[0])
	assert.Equal(t, "-", hits[1].Strand)
	assert.Empty(t, hits[1].XA)
}

func TestSMEM(t *testing.T) {
	f := newFixture(t)
	reads := writeFile(t, t.TempDir(), "q.fa", ">q1\nNN"+chr1[:30]+"\n")
	code, out, stderr := run(t, "smem", "-q", "--ref", f.ref, reads)
	require.Equal(t, cmdutil.ExitOK, code, stderr)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, output.SMEMHeader, lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "q1\t2\t32\t1\t"), lines[1])
}

func TestSMEMJSON(t *testing.T) {
	f := newFixture(t)
	reads := writeFile(t, t.TempDir(), "q.fa", ">q1\n"+chr1[:30]+"\n>q2\nNNNN\n")
	code, out, stderr := run(t, "smem", "-q", "-o", "json", "--min-intv", "1", "--ref", f.ref, reads)
	require.Equal(t, cmdutil.ExitOK, code, stderr)

	var got []api.SMEMV1
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "q1", got[0].Read)
	assert.Equal(t, 0, got[0].QStart)
	assert.Equal(t, 30, got[0].QEnd)
}

func TestConfigCmd(t *testing.T) {
	t.Setenv("ALTSEED_ALIGN_MAX_XA", "7")
	code, out, stderr := run(t, "config", "-q", "-t", "3", "--sort")
	require.Equal(t, cmdutil.ExitOK, code, stderr)

	var c config.Config
	require.NoError(t, yaml.Unmarshal([]byte(out), &c))
	assert.Equal(t, 3, c.Threads)
	assert.True(t, c.Sort)
	assert.Equal(t, 7, c.Align.MaxXA)
	assert.Equal(t, 200, c.Align.MaxXAAlt)
}

func TestConfigFileFeedsFlags(t *testing.T) {
	f := newFixture(t)
	cfg := writeFile(t, t.TempDir(), "altseed.yaml", "ref: "+f.ref+"\noutput: jsonl\nalign:\n  ovlp: true\n")
	code, out, stderr := run(t, "align", "-q", "--config", cfg, f.reads)
	require.Equal(t, cmdutil.ExitOK, code, stderr)
	assert.Contains(t, out, `"contig_len":300`)
}

func TestVersion(t *testing.T) {
	code, out, _ := run(t, "version")
	assert.Equal(t, cmdutil.ExitOK, code)
	assert.Equal(t, "altseed dev\n", out)
}

func TestUsageErrors(t *testing.T) {
	f := newFixture(t)
	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{"no reads", []string{"align", "--ref", f.ref}, "requires at least 1 arg"},
		{"no ref", []string{"align", f.reads}, "--ref is required"},
		{"missing reads", []string{"smem", "--ref", f.ref, filepath.Join(t.TempDir(), "nope.fa")}, "nope.fa"},
		{"unknown command", []string{"blast"}, "unknown command"},
		{"unknown flag", []string{"smem", "--bogus", f.reads}, "bogus"},
		{"bad format", []string{"align", "-o", "sam", "--ref", f.ref, f.reads}, "unsupported output"},
		{"bad xa-drop", []string{"align", "--xa-drop", "2", "--ref", f.ref, f.reads}, "XA drop ratio"},
		{"flag of other command", []string{"smem", "--max-xa", "3", "--ref", f.ref, f.reads}, "max-xa"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out, stderr := run(t, tt.args...)
			assert.Equal(t, cmdutil.ExitUsage, code)
			assert.Empty(t, out)
			assert.Contains(t, stderr, tt.msg)
		})
	}
}

func TestRuntimeErrors(t *testing.T) {
	f := newFixture(t)
	code, _, stderr := run(t, "align", "-q", "--ref", filepath.Join(t.TempDir(), "missing.fa"), f.reads)
	assert.Equal(t, cmdutil.ExitRuntime, code)
	assert.Contains(t, stderr, "missing.fa")

	code, _, stderr = run(t, "align", "-q", "--ref", f.ref, "--alt-contigs", filepath.Join(t.TempDir(), "none.alt"), f.reads)
	assert.Equal(t, cmdutil.ExitRuntime, code)
	assert.Contains(t, stderr, "none.alt")
}

func TestCanceledRunExits130(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	code := RunContext(ctx, []string{"align", "-q", "--ref", f.ref, f.reads}, &bytes.Buffer{}, &bytes.Buffer{})
	assert.Equal(t, cmdutil.ExitCanceled, code)
}
