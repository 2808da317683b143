// internal/cliutil/cliutil.go
package cliutil

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

func hasGlobMeta(s string) bool { return strings.ContainsAny(s, "*?[") }

// ExpandReads expands globs among read-file arguments and checks that plain
// paths exist. "-" (stdin) passes through, at most once.
func ExpandReads(args []string) ([]string, error) {
	var out []string
	stdin := false
	for _, a := range args {
		switch {
		case a == "-":
			if stdin {
				return nil, errors.New("stdin (-) given more than once")
			}
			stdin = true
			out = append(out, a)
		case hasGlobMeta(a):
			m, err := filepath.Glob(a)
			if err != nil {
				return nil, errors.Wrapf(err, "bad glob %q", a)
			}
			if len(m) == 0 {
				return nil, errors.Errorf("no input matched %q", a)
			}
			out = append(out, m...)
		default:
			if _, err := os.Stat(a); err != nil {
				return nil, errors.Wrap(err, "reads")
			}
			out = append(out, a)
		}
	}
	if len(out) == 0 {
		return nil, errors.New("no read files given")
	}
	return out, nil
}
