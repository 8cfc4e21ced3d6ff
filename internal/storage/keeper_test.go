package storage

import (
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"
)

type fakeBest struct {
	best    int
	loadErr error
	saveErr error
	saves   int
}

func (f *fakeBest) LoadBest() (int, error) {
	if f.loadErr != nil {
		return 0, f.loadErr
	}
	return f.best, nil
}

func (f *fakeBest) SaveBest(h int) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.best = h
	f.saves++
	return nil
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestKeeperLoadAndSave(t *testing.T) {
	backend := &fakeBest{best: 40}
	k := NewKeeper(backend, quietLogger())

	if got := k.Load(); got != 40 {
		t.Errorf("Load() = %d, want 40", got)
	}

	k.Save(90)
	if backend.best != 90 || backend.saves != 1 {
		t.Errorf("backend = %+v, want best 90 after one save", backend)
	}

	// A lower value from a stale session never overwrites.
	k.Save(60)
	if backend.best != 90 || backend.saves != 1 {
		t.Errorf("backend = %+v, lower best must not be saved", backend)
	}
}

func TestKeeperAbsorbsErrors(t *testing.T) {
	backend := &fakeBest{loadErr: errors.New("disk gone"), saveErr: errors.New("read-only")}
	k := NewKeeper(backend, quietLogger())

	if got := k.Load(); got != 0 {
		t.Errorf("Load() on failing backend = %d, want 0", got)
	}
	k.Save(10) // must not panic
}

func TestKeeperOverSQLite(t *testing.T) {
	store := openTestStore(t)
	k := NewKeeper(store, quietLogger())

	k.Save(512)
	if got := k.Load(); got != 512 {
		t.Errorf("Load() = %d, want 512", got)
	}
}
