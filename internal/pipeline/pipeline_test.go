package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync/atomic"
	"testing"
)

func writeReads(t *testing.T, name string, n int) string {
	t.Helper()
	var b strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "@r%d\nACGTACGT\n+\nIIIIIIII\n", i)
	}
	fn := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(fn, []byte(b.String()), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return fn
}

func idWorker() (Worker[string], error) {
	return WorkerFunc[string](func(r Read) (string, error) {
		return r.Record.ID, nil
	}), nil
}

func TestForEachRead_EveryReadOnce(t *testing.T) {
	a := writeReads(t, "a.fq", 40)
	b := writeReads(t, "b.fq", 25)

	for _, threads := range []int{0, 1, 4} {
		var ids []int
		seen := map[string]int{}
		err := ForEachRead(context.Background(), Config{Threads: threads}, []string{a, b}, idWorker,
			func(res Result[string]) error {
				ids = append(ids, res.Index)
				seen[res.File+"/"+res.Out]++
				return nil
			})
		if err != nil {
			t.Fatalf("threads=%d: %v", threads, err)
		}
		if len(ids) != 65 {
			t.Fatalf("threads=%d: got %d results, want 65", threads, len(ids))
		}
		sort.Ints(ids)
		for i, id := range ids {
			if id != i {
				t.Fatalf("threads=%d: index %d missing or duplicated", threads, i)
			}
		}
		for k, n := range seen {
			if n != 1 {
				t.Fatalf("threads=%d: %s delivered %d times", threads, k, n)
			}
		}
	}
}

type countingWorker struct {
	built, closed *atomic.Int32
}

func (w countingWorker) Process(r Read) (int, error) { return len(r.Record.Seq), nil }
func (w countingWorker) Close()                      { w.closed.Add(1) }

func TestForEachRead_WorkerPerGoroutine(t *testing.T) {
	fn := writeReads(t, "r.fq", 10)
	var built, closed atomic.Int32
	total := 0
	err := ForEachRead(context.Background(), Config{Threads: 3}, []string{fn},
		func() (Worker[int], error) {
			built.Add(1)
			return countingWorker{built: &built, closed: &closed}, nil
		},
		func(res Result[int]) error {
			total += res.Out
			return nil
		})
	if err != nil {
		t.Fatal(err)
	}
	if built.Load() != 3 || closed.Load() != 3 {
		t.Fatalf("built=%d closed=%d, want 3/3", built.Load(), closed.Load())
	}
	if total != 80 {
		t.Fatalf("total bases %d, want 80", total)
	}
}

func TestForEachRead_VisitErrorStops(t *testing.T) {
	fn := writeReads(t, "r.fq", 500)
	boom := errors.New("boom")
	n := 0
	err := ForEachRead(context.Background(), Config{Threads: 2}, []string{fn}, idWorker,
		func(Result[string]) error {
			n++
			if n == 3 {
				return boom
			}
			return nil
		})
	if !errors.Is(err, boom) {
		t.Fatalf("want boom, got %v", err)
	}
	if n != 3 {
		t.Fatalf("visit called %d times after error, want 3", n)
	}
}

func TestForEachRead_WorkerError(t *testing.T) {
	fn := writeReads(t, "r.fq", 20)
	err := ForEachRead(context.Background(), Config{Threads: 2}, []string{fn},
		func() (Worker[int], error) {
			return WorkerFunc[int](func(r Read) (int, error) {
				if r.Index == 7 {
					return 0, errors.New("bad read")
				}
				return 0, nil
			}), nil
		},
		func(Result[int]) error { return nil })
	if err == nil || !strings.Contains(err.Error(), "bad read") || !strings.Contains(err.Error(), "r7") {
		t.Fatalf("want wrapped worker error naming r7, got %v", err)
	}
}

func TestForEachRead_FactoryError(t *testing.T) {
	fn := writeReads(t, "r.fq", 5)
	err := ForEachRead(context.Background(), Config{Threads: 2}, []string{fn},
		func() (Worker[int], error) { return nil, errors.New("no index") },
		func(Result[int]) error { return nil })
	if err == nil || !strings.Contains(err.Error(), "start worker") {
		t.Fatalf("want start worker error, got %v", err)
	}
}

func TestForEachRead_MissingFile(t *testing.T) {
	err := ForEachRead(context.Background(), Config{Threads: 1},
		[]string{filepath.Join(t.TempDir(), "nope.fa")}, idWorker,
		func(Result[string]) error { return nil })
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestForEachRead_Canceled(t *testing.T) {
	fn := writeReads(t, "r.fq", 1000)
	ctx, cancel := context.WithCancel(context.Background())
	n := 0
	err := ForEachRead(ctx, Config{Threads: 2}, []string{fn}, idWorker,
		func(Result[string]) error {
			n++
			if n == 1 {
				cancel()
			}
			return nil
		})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
	if n >= 1000 {
		t.Fatalf("cancellation did not stop the feed (%d reads visited)", n)
	}
}

func TestForEachRead_Progress(t *testing.T) {
	fn := writeReads(t, "r.fq", 5)
	var buf bytes.Buffer
	err := ForEachRead(context.Background(), Config{Threads: 1, Name: "smem", Progress: &buf}, []string{fn}, idWorker,
		func(Result[string]) error { return nil })
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "smem") {
		t.Fatalf("progress output missing prefix: %q", buf.String())
	}
}
