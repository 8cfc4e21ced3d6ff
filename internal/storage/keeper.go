package storage

import (
	"sync"

	"github.com/charmbracelet/log"
)

// Keeper adapts a BestStore to the game's error-free score store contract.
// Backend failures are logged and swallowed; a failed load reads as 0.
type Keeper struct {
	mu      sync.Mutex
	backend BestStore
	logger  *log.Logger
}

// NewKeeper wraps backend. A nil logger uses the default charm logger.
func NewKeeper(backend BestStore, logger *log.Logger) *Keeper {
	if logger == nil {
		logger = log.Default()
	}
	return &Keeper{backend: backend, logger: logger}
}

// Load returns the persisted best height.
func (k *Keeper) Load() int {
	k.mu.Lock()
	defer k.mu.Unlock()

	best, err := k.backend.LoadBest()
	if err != nil {
		k.logger.Warn("cannot load best height", "error", err)
		return 0
	}
	return best
}

// Save persists a new best height. Concurrent sessions never lower it.
func (k *Keeper) Save(best int) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if current, err := k.backend.LoadBest(); err == nil && current >= best {
		return
	}
	if err := k.backend.SaveBest(best); err != nil {
		k.logger.Warn("cannot save best height", "height", best, "error", err)
		return
	}
	k.logger.Info("best height saved", "height", best)
}
