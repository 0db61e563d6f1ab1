package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// reloadDebounce coalesces the burst of events an editor save produces.
const reloadDebounce = 100 * time.Millisecond

// Watch reloads the theme file at path whenever it is written and sends each
// successfully parsed catalog on the returned channel. Files that fail to
// parse are logged and skipped. The channel is closed when ctx is done.
func Watch(ctx context.Context, path string, logger *log.Logger) (<-chan Catalog, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: cannot resolve %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: cannot create watcher: %w", err)
	}

	// Watch the directory so editors that replace the file are still seen.
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("config: cannot watch %s: %w", filepath.Dir(abs), err)
	}

	out := make(chan Catalog, 1)
	go watchLoop(ctx, w, abs, logger, out)
	return out, nil
}

func watchLoop(ctx context.Context, w *fsnotify.Watcher, path string, logger *log.Logger, out chan<- Catalog) {
	defer close(out)
	defer w.Close()

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return

		case event, ok := <-w.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(reloadDebounce)
			} else {
				timer.Reset(reloadDebounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			cat, err := LoadFile(path)
			if err != nil {
				logger.Warn("theme reload failed", "path", path, "error", err)
				continue
			}
			logger.Info("themes reloaded", "path", path, "themes", len(cat.Themes))
			select {
			case out <- cat:
			case <-ctx.Done():
				return
			}

		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			logger.Warn("watcher error", "error", err)
		}
	}
}
