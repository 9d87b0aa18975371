package status

import (
	"context"
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	hclog "github.com/hashicorp/go-hclog"
)

// MarkerWatcher signals on C whenever the marker file changes. The parent
// directory is watched because the marker is created and removed, not edited.
type MarkerWatcher struct {
	C       <-chan struct{}
	watcher *fsnotify.Watcher
	done    chan struct{}
}

func WatchMarker(path string, logger hclog.Logger) (*MarkerWatcher, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	fsW, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsW.Add(filepath.Dir(path)); err != nil {
		_ = fsW.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}
	out := make(chan struct{}, 1)
	w := &MarkerWatcher{C: out, watcher: fsW, done: make(chan struct{})}
	name := filepath.Base(path)
	go func() {
		defer close(out)
		for {
			select {
			case <-w.done:
				return
			case event, ok := <-fsW.Events:
				if !ok {
					return
				}
				if filepath.Base(event.Name) != name {
					continue
				}
				select {
				case out <- struct{}{}:
				default:
				}
			case err, ok := <-fsW.Errors:
				if !ok {
					return
				}
				logger.Warn("marker watcher error", "error", err)
			}
		}
	}()
	return w, nil
}

func (w *MarkerWatcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}

// Run shows the live view until the user quits or ctx is cancelled.
func Run(ctx context.Context, port Port, markerPath string, logger hclog.Logger) error {
	var changes <-chan struct{}
	w, err := WatchMarker(markerPath, logger)
	if err != nil {
		if logger != nil {
			logger.Warn("live reload disabled", "error", err)
		}
	} else {
		defer func() { _ = w.Close() }()
		changes = w.C
	}
	_, err = tea.NewProgram(New(port, changes), tea.WithContext(ctx)).Run()
	return err
}
