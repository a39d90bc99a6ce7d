package preview

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/seostudio/internal/foundation/errors"
	"git.home.luguber.info/inful/seostudio/internal/logfields"
)

// watcher triggers a debounced callback when one file changes. It watches
// the parent directory so editors that replace files on save are seen.
type watcher struct {
	path     string
	debounce time.Duration
	fsw      *fsnotify.Watcher
	logger   *slog.Logger
	onChange func()

	mu    sync.Mutex
	timer *time.Timer
}

func newWatcher(path string, debounce time.Duration, logger *slog.Logger, onChange func()) (*watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to resolve watch path").
			WithContext("path", path).
			Build()
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryRuntime, "failed to create file watcher").Build()
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to watch directory").
			WithContext("path", filepath.Dir(abs)).
			Build()
	}
	logger.Info("Watching keyword file", logfields.Path(abs))
	return &watcher{path: abs, debounce: debounce, fsw: fsw, logger: logger, onChange: onChange}, nil
}

func (w *watcher) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				w.logger.Debug("Keyword file changed", logfields.Path(event.Name), slog.String("op", event.Op.String()))
				w.schedule()
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Error("Watcher error", logfields.Error(err))
		}
	}
}

func (w *watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.onChange)
}

func (w *watcher) close() {
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()
	_ = w.fsw.Close()
}
