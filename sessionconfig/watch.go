package sessionconfig

import (
	"context"
	"log/slog"

	"github.com/fsnotify/fsnotify"
)

// Watcher hot-reloads a TraderConfig's RiskLimits from path whenever the
// file changes on disk, without restarting the session. Only RiskLimits are
// re-applied: trader identity, instruments and venues are fixed for the
// lifetime of a session.
type Watcher struct {
	path    string
	fsw     *fsnotify.Watcher
	onLimit func(RiskLimits)
	logger  *slog.Logger
}

// NewWatcher creates a Watcher for path. onLimit is invoked with the freshly
// decoded RiskLimits on every write event.
func NewWatcher(path string, onLimit func(RiskLimits), logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(path); err != nil {
		_ = fsw.Close()
		return nil, err
	}
	return &Watcher{path: path, fsw: fsw, onLimit: onLimit, logger: logger}, nil
}

// Run drains filesystem events until ctx is canceled, reloading and
// forwarding RiskLimits on every write/create event.
func (w *Watcher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			cfg, err := Load(w.path)
			if err != nil {
				w.logger.Warn("sessionconfig: reload failed", "path", w.path, "error", err)
				continue
			}
			w.onLimit(cfg.RiskLimits)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("sessionconfig: watch error", "path", w.path, "error", err)
		}
	}
}

// Close releases the underlying filesystem watch.
func (w *Watcher) Close() error { return w.fsw.Close() }
