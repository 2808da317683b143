// internal/cmdutil/log.go
package cmdutil

import (
	"io"
	"log/slog"
	"os"

	"github.com/ethereum/go-ethereum/log"
	"github.com/mattn/go-isatty"
)

// InitLogger installs the root logger. verbosity uses the legacy scale
// (0 crit, 1 error, 2 warn, 3 info, 4 debug, 5 trace). Terminals get the
// coloured handler; anything else gets logfmt.
func InitLogger(w io.Writer, verbosity int, quiet bool) {
	if quiet {
		log.SetDefault(log.NewLogger(log.DiscardHandler()))
		return
	}
	lvl := log.FromLegacyLevel(verbosity)

	var h slog.Handler
	if isTerminal(w) {
		h = log.NewTerminalHandlerWithLevel(w, lvl, true)
	} else {
		glog := log.NewGlogHandler(log.LogfmtHandler(w))
		glog.Verbosity(lvl)
		h = glog
	}
	log.SetDefault(log.NewLogger(h))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Warnf logs a warning unless quiet is set.
func Warnf(quiet bool, msg string, ctx ...any) {
	if quiet {
		return
	}
	log.Warn(msg, ctx...)
}
