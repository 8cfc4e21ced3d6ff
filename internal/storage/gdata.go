package storage

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/quasilyte/gdata/v2"
)

const (
	bestObject   = "score"
	bestProperty = "best"
)

// FileBest keeps the best height as decimal text in the per-user data
// directory managed by gdata.
type FileBest struct {
	m *gdata.Manager
}

// OpenFileBest opens the gdata storage for appName.
func OpenFileBest(appName string) (*FileBest, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open data dir: %w", err)
	}
	return &FileBest{m: m}, nil
}

// LoadBest returns the saved height. Absent or unparsable data yields 0.
func (f *FileBest) LoadBest() (int, error) {
	if !f.m.ObjectPropExists(bestObject, bestProperty) {
		return 0, nil
	}
	data, err := f.m.LoadObjectProp(bestObject, bestProperty)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read best height: %w", err)
	}
	best, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || best < 0 {
		return 0, nil
	}
	return best, nil
}

// SaveBest writes the height as decimal text.
func (f *FileBest) SaveBest(height int) error {
	if err := f.m.SaveObjectProp(bestObject, bestProperty, []byte(strconv.Itoa(height))); err != nil {
		return fmt.Errorf("storage: cannot write best height: %w", err)
	}
	return nil
}

var _ BestStore = (*FileBest)(nil)
