package config

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDebounce collapses the burst of events editors emit on save.
const reloadDebounce = 100 * time.Millisecond

// Reload is delivered by a Watcher for every change to the watched file.
// Err is set when the new contents could not be loaded; Config is then the zero value.
type Reload struct {
	Config HeliConfig
	Err    error
}

// Watcher reloads a configuration file whenever it changes on disk.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	updates chan Reload
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// NewWatcher starts watching path. The parent directory is watched rather than
// the file so editors that replace the file on save are still observed.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve config path %s: %w", path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create config watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		path:    abs,
		watcher: fw,
		updates: make(chan Reload, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Updates returns the channel of reload results. It is closed when the watcher stops.
func (w *Watcher) Updates() <-chan Reload {
	return w.updates
}

// Close stops the watcher and waits for its goroutine to exit.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.done)
	defer close(w.updates)

	// Reload fires once the file has been quiet for reloadDebounce.
	reload := time.NewTimer(reloadDebounce)
	reload.Stop()
	defer reload.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			reload.Reset(reloadDebounce)

		case <-reload.C:
			cfg, err := LoadHeliFile(w.path)
			if err != nil {
				cfg = HeliConfig{}
			}
			w.publish(Reload{Config: cfg, Err: err})

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.publish(Reload{Err: fmt.Errorf("config watcher: %w", err)})

		case <-w.closeCh:
			return
		}
	}
}

// publish replaces any unread reload so consumers only see the newest one.
func (w *Watcher) publish(r Reload) {
	for {
		select {
		case w.updates <- r:
			return
		case <-w.closeCh:
			return
		default:
		}
		select {
		case <-w.updates:
		default:
		}
	}
}
