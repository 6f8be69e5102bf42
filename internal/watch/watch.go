// Package watch monitors a script file and reports debounced change events,
// feeding the restart loop of watch mode.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/fsnotify/fsnotify"
)

// defaultDebounce coalesces the write/rename bursts editors produce when
// saving into a single change event.
const defaultDebounce = 300 * time.Millisecond

// Watcher reports changes to a single script file.
type Watcher struct {
	path     string
	debounce time.Duration
	fsw      *fsnotify.Watcher
	changes  chan string
}

// New watches the script at path. The parent directory is monitored rather
// than the file itself: editors typically replace files by rename, which
// drops a watch registered on the old inode.
func New(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch: resolve path: %w", err)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch: add %s: %w", filepath.Dir(abs), err)
	}
	return &Watcher{
		path:     abs,
		debounce: defaultDebounce,
		fsw:      fsw,
		changes:  make(chan string, 1),
	}, nil
}

// Changes delivers one value per debounced change burst. The channel is
// closed when Run returns.
func (w *Watcher) Changes() <-chan string {
	return w.changes
}

// Run blocks until ctx is cancelled, forwarding debounced change events. A
// clean cancellation returns nil.
func (w *Watcher) Run(ctx context.Context) error {
	defer close(w.changes)
	defer w.fsw.Close()

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil

		case evt, ok := <-w.fsw.Events:
			if !ok {
				return fmt.Errorf("watch: event channel closed unexpectedly")
			}
			if filepath.Clean(evt.Name) != w.path {
				continue
			}
			if !evt.Has(fsnotify.Write) && !evt.Has(fsnotify.Create) && !evt.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerC = timer.C
			} else {
				timer.Reset(w.debounce)
			}

		case <-timerC:
			timer = nil
			timerC = nil
			select {
			case w.changes <- w.path:
			default:
				// A pending notification already covers this burst.
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return fmt.Errorf("watch: error channel closed unexpectedly")
			}
			log.Warn("watch error", "path", w.path, "err", err)
		}
	}
}
