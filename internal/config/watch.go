package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/Faultbox/skybridge/internal/logger"
)

// Watcher reloads a config file whenever it changes on disk.
type Watcher struct {
	path string
	fs   *fsnotify.Watcher
}

// NewWatcher starts watching path. The parent directory is watched so that
// editors which save by renaming over the file are picked up too.
func NewWatcher(path string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watching %s: %w", path, err)
	}
	return &Watcher{path: filepath.Clean(path), fs: fw}, nil
}

// Run calls onChange with the reloaded config after every change to the
// file, until ctx is done. CLI flags are reapplied on each reload. A file
// that fails to load or validate is logged and skipped.
//
// onChange runs on the watcher goroutine.
func (w *Watcher) Run(ctx context.Context, onChange func(*Config)) error {
	defer w.fs.Close()
	log := logger.Named("config")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.path || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			cfg := Default()
			if err := loadFromFile(cfg, w.path); err != nil {
				log.Warn("config reload failed", zap.String("path", w.path), zap.Error(err))
				continue
			}
			applyFlags(cfg)
			if err := cfg.Validate(); err != nil {
				log.Warn("reloaded config rejected", zap.Error(err))
				continue
			}
			log.Info("config reloaded", zap.String("path", w.path))
			onChange(cfg)

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			log.Warn("config watcher error", zap.Error(err))
		}
	}
}
