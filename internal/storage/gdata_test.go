package storage

import (
	"fmt"
	"testing"
	"time"
)

func openTestFileBest(t *testing.T) *FileBest {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", "")

	f, err := OpenFileBest(fmt.Sprintf("hopit_test_%d", time.Now().UnixNano()))
	if err != nil {
		t.Skipf("cannot open gdata storage: %v", err)
	}
	return f
}

func TestFileBestRoundTrip(t *testing.T) {
	f := openTestFileBest(t)

	best, err := f.LoadBest()
	if err != nil {
		t.Fatalf("LoadBest() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("absent best = %d, want 0", best)
	}

	if err := f.SaveBest(1234); err != nil {
		t.Fatalf("SaveBest() failed: %v", err)
	}
	if best, _ := f.LoadBest(); best != 1234 {
		t.Errorf("best = %d, want 1234", best)
	}
}

func TestFileBestUnparsableReadsZero(t *testing.T) {
	f := openTestFileBest(t)

	if err := f.m.SaveObjectProp(bestObject, bestProperty, []byte("not a number")); err != nil {
		t.Fatalf("setup: %v", err)
	}
	best, err := f.LoadBest()
	if err != nil {
		t.Fatalf("LoadBest() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("unparsable best = %d, want 0", best)
	}
}
