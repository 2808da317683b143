// internal/writers/brokenpipe.go
package writers

import (
	"io"
	"os"
	"syscall"

	"github.com/pkg/errors"
)

// IsBrokenPipe reports whether err means the reader of our output went
// away, e.g. `altseed align ... | head`. Such runs exit 0.
func IsBrokenPipe(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, syscall.EPIPE) ||
		errors.Is(err, io.ErrClosedPipe) ||
		errors.Is(err, os.ErrClosed)
}
