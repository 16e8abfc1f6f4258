package config

import (
	"log/slog"
	"time"

	"github.com/philipparndt/gooutline/pkg/watcher"
)

// ReloadDebounce collapses the burst of events editors emit on save
const ReloadDebounce = 200 * time.Millisecond

// WatchOutline re-reads the config file whenever it changes and pushes the
// outline section onto queue. Invalid files are logged and skipped. The
// caller drains queue on its main loop and closes the returned watcher.
func (l *Loader) WatchOutline(queue *watcher.Queue[OutlineConfig], logger *slog.Logger) (*watcher.FileWatcher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	fw, err := watcher.NewFileWatcher(ReloadDebounce, logger)
	if err != nil {
		return nil, err
	}

	err = fw.Watch([]string{l.path}, func(path string) {
		cfg, err := l.Load()
		if err != nil {
			logger.Warn("config reload failed", "path", path, "error", err)
			return
		}
		logger.Info("config reloaded", "path", path, "style", cfg.Outline.Style)
		queue.Push(cfg.Outline)
	})
	if err != nil {
		fw.Close()
		return nil, err
	}

	fw.Start()
	return fw, nil
}
