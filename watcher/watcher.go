// Package watcher runs a callback when a file is saved.
package watcher

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const DefaultDelay = 250 * time.Millisecond

// Watcher debounces write events for a single file. Editors that save by
// renaming a new file into place are handled by watching the directory.
type Watcher struct {
	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	path     string
	delay    time.Duration
	onChange func(string)
	verbose  bool
}

func New(path string, delay time.Duration, onChange func(string)) (*Watcher, error) {
	if delay <= 0 {
		delay = DefaultDelay
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(absPath)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", path, err)
	}
	return &Watcher{
		watcher:  fw,
		path:     absPath,
		delay:    delay,
		onChange: onChange,
	}, nil
}

// SetVerbose enables logging of ignored events.
func (w *Watcher) SetVerbose(verbose bool) {
	w.verbose = verbose
}

// Run delivers debounced change notifications until ctx is done or the
// watcher is closed. onChange runs on the caller's goroutine, so no
// notification is delivered after Run returns.
func (w *Watcher) Run(ctx context.Context) error {
	w.mu.Lock()
	fw := w.watcher
	w.mu.Unlock()
	if fw == nil {
		return fmt.Errorf("watcher closed")
	}
	var debounceTimer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
	}()
	for {
		select {
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				if w.verbose {
					log.Printf("watcher: ignoring %s\n", event)
				}
				continue
			}
			if debounceTimer == nil {
				debounceTimer = time.NewTimer(w.delay)
			} else {
				debounceTimer.Reset(w.delay)
			}
			fire = debounceTimer.C
		case <-fire:
			fire = nil
			w.onChange(w.path)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			log.Printf("ERROR: file watcher: %v\n", err)
		case <-ctx.Done():
			return w.Close()
		}
	}
}

func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.watcher == nil {
		return nil
	}
	err := w.watcher.Close()
	w.watcher = nil
	return err
}
