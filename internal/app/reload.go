package app

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/dshills/areaselect/internal/config"
	"github.com/dshills/areaselect/internal/renderer/backend"
)

// reloadResult carries a reloaded configuration into the event loop.
type reloadResult struct {
	path string
	cfg  *config.Config
	err  error
}

// reloader reloads the config file whenever it changes and hands the
// result to the event loop as an interrupt, so application state is only
// touched from the loop goroutine.
type reloader struct {
	watcher *config.Watcher
	wg      sync.WaitGroup
}

func startReloader(path string, b backend.Backend, logger zerolog.Logger) (*reloader, error) {
	w, err := config.NewWatcher(path)
	if err != nil {
		return nil, err
	}
	r := &reloader{watcher: w}
	r.wg.Add(1)
	go r.loop(b, logger)
	return r, nil
}

func (r *reloader) loop(b backend.Backend, logger zerolog.Logger) {
	defer r.wg.Done()
	changes, errs := r.watcher.Changes(), r.watcher.Errors()
	for changes != nil || errs != nil {
		select {
		case ch, ok := <-changes:
			if !ok {
				changes = nil
				continue
			}
			cfg, err := config.Load(ch.Path)
			b.PostInterrupt(reloadResult{path: ch.Path, cfg: cfg, err: err})
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			logger.Warn().Err(err).Msg("config watcher")
		}
	}
}

func (r *reloader) close() {
	_ = r.watcher.Close()
	r.wg.Wait()
}
