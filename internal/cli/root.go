// Package cli is the cobra command tree of altseed. Flags are bound to the
// viper keys of internal/config just before a command runs, so flags,
// ALTSEED_* variables and the --config file all feed one Config.
package cli

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/ethereum/go-ethereum/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"altseed/internal/appcore"
	"altseed/internal/cmdutil"
	"altseed/internal/config"
	"altseed/internal/metrics"
	"altseed/internal/version"
)

// flagKeys maps flag names to config keys.
var flagKeys = map[string]string{
	"config":       "config",
	"ref":          "ref",
	"threads":      "threads",
	"output":       "output",
	"sort":         "sort",
	"no-header":    "no-header",
	"verbosity":    "verbosity",
	"quiet":        "quiet",
	"metrics-addr": "metrics-addr",

	"min-intv": "smem.min-intv",
	"max-len":  "smem.max-len",
	"max-intv": "smem.max-intv",

	"xa-drop":      "align.xa-drop",
	"max-xa":       "align.max-xa",
	"max-xa-alt":   "align.max-xa-alt",
	"alt-contigs":  "align.alt-contigs",
	"ovlp":         "align.ovlp",
	"seed":         "align.seed",
	"min-seed-len": "align.min-seed-len",
	"max-occ":      "align.max-occ",
	"mask-level":   "align.mask-level",
}

// app is the state shared by the commands of one invocation.
type app struct {
	v           *viper.Viper
	cfg         config.Config
	stderr      io.Writer
	progress    bool
	stopMetrics func()
}

// bind points the config keys at the executing command's flags.
func (a *app) bind(fs *pflag.FlagSet) error {
	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		key, ok := flagKeys[f.Name]
		if !ok || err != nil {
			return
		}
		err = a.v.BindPFlag(key, f)
	})
	return err
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := a.bind(cmd.Flags()); err != nil {
		return cmdutil.Usage(err)
	}
	cfg, err := config.Load(a.v)
	if err != nil {
		return cmdutil.Usage(err)
	}
	if cfg.Threads == 0 {
		cfg.Threads = runtime.NumCPU()
	}
	a.cfg = cfg
	cmdutil.InitLogger(a.stderr, cfg.Verbosity, cfg.Quiet)

	if cfg.MetricsAddr != "" {
		metrics.InitializePrometheusMetrics()
		url, stop, err := metrics.StartServer(cfg.MetricsAddr)
		if err != nil {
			return err
		}
		a.stopMetrics = stop
		log.Info("metrics server started", "url", url)
	}
	return nil
}

func (a *app) teardown(*cobra.Command, []string) {
	if a.stopMetrics != nil {
		a.stopMetrics()
		a.stopMetrics = nil
	}
}

// NewRootCmd builds the command tree over v.
func NewRootCmd(v *viper.Viper, stderr io.Writer) *cobra.Command {
	a := &app{v: v, stderr: stderr}

	root := &cobra.Command{
		Use:   "altseed",
		Short: "Seed reads against a reference and report primary hits with alternative placements",
		Long: `altseed finds super-maximal exact matches (SMEMs) of reads against a
reference, turns them into alignment regions, marks primary and secondary
regions, and reports each primary hit with its XA list of alternative
placements, the way bwa mem does.`,
		Version:           version.String(),
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: a.teardown,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return cmdutil.Usage(err) })

	pf := root.PersistentFlags()
	pf.String("config", "", "YAML config file")
	pf.StringP("ref", "r", "", "reference FASTA (gzip ok) [*]")
	pf.IntP("threads", "t", 0, "worker goroutines (0 = all CPUs)")
	pf.StringP("output", "o", config.FormatText, "output format: text | json | jsonl")
	pf.Bool("sort", false, "buffer output and order it by input read")
	pf.Bool("no-header", false, "suppress the text header row")
	pf.IntP("verbosity", "v", 3, "log level: 0 crit, 1 error, 2 warn, 3 info, 4 debug, 5 trace")
	pf.BoolP("quiet", "q", false, "suppress all logging")
	pf.String("metrics-addr", "", "serve Prometheus metrics on this address, e.g. :9100")
	pf.BoolVar(&a.progress, "progress", false, "draw a read counter on stderr")

	root.AddCommand(newSMEMCmd(a), newAlignCmd(a), newConfigCmd(a), newVersionCmd())
	return root
}

// usageArgs marks argument validation failures as usage errors.
func usageArgs(fn cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		return cmdutil.Usage(fn(cmd, args))
	}
}

// RunContext executes argv and returns the process exit code.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	root := NewRootCmd(config.New(), stderr)
	root.SetArgs(argv)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err != nil && strings.HasPrefix(err.Error(), "unknown command") {
		err = cmdutil.Usage(err)
	}
	code := cmdutil.ExitCode(err)
	if err != nil && code != cmdutil.ExitOK {
		fmt.Fprintln(stderr, "error:", err)
		if code == cmdutil.ExitUsage {
			fmt.Fprintln(stderr, "run 'altseed --help' for usage")
		}
	}
	return code
}

// options builds the pipeline options shared by the read commands.
func (a *app) options(name string, reads []string) appcore.Options {
	o := appcore.Options{Name: name, ReadFiles: reads, Threads: a.cfg.Threads}
	if a.progress {
		o.Progress = a.stderr
	}
	return o
}
