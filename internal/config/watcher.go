package config

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/hamed0406/endpointprobe/internal/domain"
)

// Watcher keeps the latest valid copy of an instance file. A reload that
// fails validation keeps the previous copy.
type Watcher struct {
	path string
	log  *zap.Logger

	mu      sync.RWMutex
	current Instances
}

func NewWatcher(path string, log *zap.Logger) (*Watcher, error) {
	if log == nil {
		log = zap.NewNop()
	}
	in, err := LoadInstances(path)
	if err != nil {
		return nil, err
	}
	return &Watcher{path: filepath.Clean(path), log: log, current: in}, nil
}

// Endpoints returns a fresh, resolved snapshot for one pass.
func (w *Watcher) Endpoints() []domain.EndpointConfig {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.current.Resolved()
}

func (w *Watcher) Defaults() domain.Defaults {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.current.InitConfig
}

func (w *Watcher) Reload() error {
	in, err := LoadInstances(w.path)
	if err != nil {
		w.log.Warn("instances_reload_failed", zap.String("path", w.path), zap.Error(err))
		return err
	}
	w.mu.Lock()
	w.current = in
	w.mu.Unlock()
	w.log.Info("instances_reloaded", zap.String("path", w.path), zap.Int("instances", len(in.Endpoints)))
	return nil
}

// Run reloads on changes until ctx is cancelled. The parent directory is
// watched so editors that replace the file are handled too.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("fsnotify: %w", err)
	}
	defer fw.Close()
	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("watch %q: %w", w.path, err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				_ = w.Reload()
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("instances_watch_error", zap.Error(err))
		}
	}
}
