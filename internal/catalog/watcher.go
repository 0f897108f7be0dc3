package catalog

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce collapses the bursts of events editors produce on save.
const debounce = 100 * time.Millisecond

// Reload is emitted after the catalog file changes. Exactly one of Catalog
// and Err is set.
type Reload struct {
	Catalog *Catalog
	Err     error
}

// Watcher monitors a catalog file and reloads it when it changes.
type Watcher struct {
	Path    string
	Reloads <-chan Reload // Read-only external channel

	reloads chan Reload // Internal write channel
	done    chan struct{}
	watcher *fsnotify.Watcher
}

// NewWatcher creates a watcher for the catalog at path.
func NewWatcher(path string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ch := make(chan Reload, 1)
	return &Watcher{
		Path:    path,
		Reloads: ch,
		reloads: ch,
		done:    make(chan struct{}),
		watcher: fw,
	}, nil
}

// Start begins watching. The parent directory is watched rather than the file
// so that save-by-rename still reports changes.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(filepath.Dir(w.Path)); err != nil {
		return err
	}
	go w.loop()
	return nil
}

// Stop closes the watcher and the Reloads channel.
func (w *Watcher) Stop() {
	w.watcher.Close()
	<-w.done
	close(w.reloads)
}

func (w *Watcher) loop() {
	defer close(w.done)

	var pending time.Time
	ticker := time.NewTicker(debounce)
	defer ticker.Stop()

	target := filepath.Clean(w.Path)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				if !pending.IsZero() {
					w.emit()
				}
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove) {
				pending = time.Now()
			}

		case <-ticker.C:
			if !pending.IsZero() && time.Since(pending) >= debounce {
				w.emit()
				pending = time.Time{}
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are non-fatal.
		}
	}
}

// emit publishes the current file contents. Only the newest reload is kept
// when the consumer falls behind.
func (w *Watcher) emit() {
	var r Reload
	r.Catalog, r.Err = Load(w.Path)
	if r.Err != nil {
		r.Catalog = nil
	}
	select {
	case w.reloads <- r:
	default:
		select {
		case <-w.reloads:
		default:
		}
		w.reloads <- r
	}
}
