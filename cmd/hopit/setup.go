package main

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hopit/internal/config"
	"github.com/vovakirdan/hopit/internal/core"
	"github.com/vovakirdan/hopit/internal/games/hopit"
	"github.com/vovakirdan/hopit/internal/logging"
	"github.com/vovakirdan/hopit/internal/platform/tui"
	"github.com/vovakirdan/hopit/internal/storage"
)

// Best height backends for --store.
const (
	storeSQLite = "sqlite"
	storeFile   = "file"
)

// appName names the gdata directory of the file backend.
const appName = "hopit"

// loadGameConfig resolves the game config and applies --difficulty.
func loadGameConfig() (config.HopConfig, error) {
	cfg, err := config.LoadHop(flagConfig)
	if err != nil {
		return config.HopConfig{}, err
	}
	if flagDifficulty != "" {
		preset := config.ParsePreset(flagDifficulty)
		if preset == "" {
			return config.HopConfig{}, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
		config.ApplyPreset(&cfg, preset)
	}
	return cfg, nil
}

// openLogger builds the logger for a command. fallback is used when --log is
// not given.
func openLogger(fallback string) (*log.Logger, io.Closer, error) {
	path := flagLogPath
	if path == "" {
		path = fallback
	}
	return logging.New(path, flagLogLevel)
}

// persistence bundles the best height store and the run history. Either may
// be nil when its backend could not be opened.
type persistence struct {
	db     *storage.Store
	keeper *storage.Keeper
}

func checkStore() error {
	if flagStore != storeSQLite && flagStore != storeFile {
		return fmt.Errorf("unknown store %q (want %s or %s)", flagStore, storeSQLite, storeFile)
	}
	return nil
}

// openPersistence opens the backends selected by --store and --db. Failures
// are logged; the game runs without persistence rather than refusing to start.
func openPersistence(logger *log.Logger) (*persistence, error) {
	if err := checkStore(); err != nil {
		return nil, err
	}

	p := &persistence{}
	db, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run database", "path", flagDBPath, "error", err)
	} else {
		p.db = db
	}

	switch flagStore {
	case storeFile:
		fb, fbErr := storage.OpenFileBest(appName)
		if fbErr != nil {
			logger.Warn("could not open best height file", "error", fbErr)
			break
		}
		p.keeper = storage.NewKeeper(fb, logger)
	case storeSQLite:
		if p.db != nil {
			p.keeper = storage.NewKeeper(p.db, logger)
		}
	}
	return p, nil
}

// serveBest returns the best height backend of the SSH server. Nil means the
// run database. A file store that cannot open is an error.
func serveBest() (storage.BestStore, error) {
	if err := checkStore(); err != nil {
		return nil, err
	}
	if flagStore != storeFile {
		return nil, nil
	}
	fb, err := storage.OpenFileBest(appName)
	if err != nil {
		return nil, err
	}
	return fb, nil
}

// gameOptions wires the store and audio into a new game.
func (p *persistence) gameOptions(a hopit.Audio) []hopit.Option {
	opts := []hopit.Option{hopit.WithAudio(a)}
	if p.keeper != nil {
		opts = append(opts, hopit.WithStore(p.keeper))
	}
	return opts
}

// history returns the run database, or nil when it is unavailable.
func (p *persistence) history() tui.RunHistory {
	if p.db == nil {
		return nil
	}
	return p.db
}

// Close releases the run database.
func (p *persistence) Close(logger *log.Logger) {
	if p.db == nil {
		return
	}
	if err := p.db.Close(); err != nil {
		logger.Warn("cannot close run database", "error", err)
	}
}

// runtimeConfig builds the per-run config from the global flags.
func runtimeConfig(w, h int) core.RuntimeConfig {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return core.RuntimeConfig{
		ScreenW:  w,
		ScreenH:  h,
		TickRate: flagFPS,
		Seed:     seed,
	}
}
