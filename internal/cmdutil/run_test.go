package cmdutil

import (
	"bytes"
	"context"
	"io"
	"strings"
	"syscall"
	"testing"

	"github.com/ethereum/go-ethereum/log"
	"github.com/pkg/errors"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitOK},
		{"epipe", errors.Wrap(syscall.EPIPE, "write"), ExitOK},
		{"closed pipe", io.ErrClosedPipe, ExitOK},
		{"canceled", errors.WithMessage(context.Canceled, "pipeline"), ExitCanceled},
		{"usage", Usage(errors.New("bad flag")), ExitUsage},
		{"wrapped usage", errors.Wrap(Usage(errors.New("bad flag")), "smem"), ExitUsage},
		{"runtime", errors.New("boom"), ExitRuntime},
	}
	for _, tt := range tests {
		if got := ExitCode(tt.err); got != tt.want {
			t.Fatalf("%s: ExitCode=%d want %d", tt.name, got, tt.want)
		}
	}
	if Usage(nil) != nil {
		t.Fatal("Usage(nil) should stay nil")
	}
}

func TestInitLoggerLevels(t *testing.T) {
	defer log.SetDefault(log.NewLogger(log.DiscardHandler()))

	var buf bytes.Buffer
	InitLogger(&buf, 2, false) // warn
	log.Info("hidden")
	log.Warn("shown", "k", 1)
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info record leaked at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "k=1") {
		t.Fatalf("missing warn record: %q", out)
	}

	buf.Reset()
	InitLogger(&buf, 5, true)
	log.Error("quiet")
	Warnf(false, "quiet too")
	if buf.Len() != 0 {
		t.Fatalf("quiet logger wrote %q", buf.String())
	}
}
