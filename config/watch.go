package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/bep/debounce"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const reloadDelay = 250 * time.Millisecond

// Watch reloads path whenever it changes and hands the new config to
// onChange. Bursts of writes collapse into one reload. A file that fails
// to load is logged and the previous config stays in effect. Watch blocks
// until ctx is done, and onChange is not called after that.
func Watch(ctx context.Context, path string, logger *zap.Logger, onChange func(*Config)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	// editors replace files, so watch the directory
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watching %v: %w", path, err)
	}

	target := filepath.Clean(path)
	debounced := debounce.New(reloadDelay)
	reload := func() {
		// a reload queued before cancel fires after Watch returns
		if ctx.Err() != nil {
			return
		}
		cfg, err := Load(path)
		if err != nil {
			logger.Warn("Config reload failed", zap.String("path", path), zap.Error(err))
			return
		}
		logger.Info("Config reloaded", zap.String("path", path))
		onChange(cfg)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				debounced(reload)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Config watcher error", zap.Error(err))
		}
	}
}
