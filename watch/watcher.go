// Package watch notifies callers when generator documents change.
package watch

import (
	"context"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/teranos/xmlprops/errors"
	"github.com/teranos/xmlprops/logger"
	"github.com/teranos/xmlprops/pipeline"
)

// DefaultDebounce groups bursts of file events into one notification.
const DefaultDebounce = 300 * time.Millisecond

// ChangeCallback receives the sorted base names of the documents that
// changed since the previous notification.
type ChangeCallback func(changed []string)

// Watcher watches one markup directory for document changes.
type Watcher struct {
	dir            string
	excludes       []string
	watcher        *fsnotify.Watcher
	log            *zap.SugaredLogger
	debouncePeriod time.Duration

	mu            sync.Mutex
	callbacks     []ChangeCallback
	pending       map[string]bool
	debounceTimer *time.Timer

	// deliverMu serializes callback delivery across timer goroutines
	deliverMu sync.Mutex

	stopOnce sync.Once
	stopped  chan struct{}
}

// New creates a watcher for dir. Call Run to start receiving events.
func New(dir string, excludes []string, log *zap.SugaredLogger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, errors.Wrapf(err, "failed to watch %s", dir)
	}

	return &Watcher{
		dir:            dir,
		excludes:       excludes,
		watcher:        fw,
		log:            log,
		debouncePeriod: DefaultDebounce,
		pending:        make(map[string]bool),
		stopped:        make(chan struct{}),
	}, nil
}

// SetDebounce changes the debounce period. Call before Run.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.debouncePeriod = d
}

// OnChange registers a callback for debounced change notifications.
func (w *Watcher) OnChange(cb ChangeCallback) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.callbacks = append(w.callbacks, cb)
}

// Run processes file events until ctx is cancelled or Stop is called.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.Stop()

	w.log.Infow("Watching markup directory",
		logger.FieldDir, w.dir)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-w.stopped:
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !relevant(event) || !pipeline.IsDocument(event.Name, w.excludes) {
				continue
			}
			w.log.Debugw("Document changed",
				logger.FieldDocument, filepath.Base(event.Name),
				logger.FieldOperation, event.Op.String())
			w.schedule(filepath.Base(event.Name))

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Warnw("Watcher error",
				logger.FieldError, err)
		}
	}
}

// Stop ends Run and releases the underlying watcher. Pending notifications
// are dropped.
func (w *Watcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		close(w.stopped)

		w.mu.Lock()
		if w.debounceTimer != nil {
			w.debounceTimer.Stop()
		}
		w.mu.Unlock()

		err = w.watcher.Close()
	})
	return err
}

func relevant(event fsnotify.Event) bool {
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)
}

// schedule records a change and restarts the debounce timer.
func (w *Watcher) schedule(name string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.pending[name] = true
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.debounceTimer = time.AfterFunc(w.debouncePeriod, w.flush)
}

// flush delivers the pending change set to every callback. A flush that
// fires while callbacks are still running waits for them and then delivers
// everything that accumulated meanwhile.
func (w *Watcher) flush() {
	w.deliverMu.Lock()
	defer w.deliverMu.Unlock()

	select {
	case <-w.stopped:
		return
	default:
	}

	w.mu.Lock()
	changed := make([]string, 0, len(w.pending))
	for name := range w.pending {
		changed = append(changed, name)
	}
	w.pending = make(map[string]bool)
	callbacks := make([]ChangeCallback, len(w.callbacks))
	copy(callbacks, w.callbacks)
	w.mu.Unlock()

	if len(changed) == 0 {
		return
	}
	sort.Strings(changed)

	for _, cb := range callbacks {
		cb(changed)
	}
}
