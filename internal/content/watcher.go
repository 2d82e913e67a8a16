package content

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

const defaultDebounce = 300 * time.Millisecond

// Watcher reloads a Service when files under the content root change.
// Bursts of events (editors writing temp files, renames) collapse into one reload.
type Watcher struct {
	fsw      *fsnotify.Watcher
	root     string
	svc      Service
	debounce time.Duration
	done     chan struct{}
}

func NewWatcher(root string, svc Service) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create content watcher: %w", err)
	}

	if err := fsw.Add(root); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", root, err)
	}
	w := &Watcher{
		fsw:      fsw,
		root:     filepath.Clean(root),
		svc:      svc,
		debounce: defaultDebounce,
		done:     make(chan struct{}),
	}

	// fsnotify is not recursive. Missing subdirectories are picked up by Run
	// when they are created.
	for _, dir := range w.subdirs() {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			continue
		}
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, fmt.Errorf("watch %s: %w", dir, err)
		}
	}

	return w, nil
}

func (w *Watcher) subdirs() []string {
	return []string{filepath.Join(w.root, "data"), filepath.Join(w.root, BlogDir)}
}

// watchCreatedDir starts watching a content subdirectory created after startup.
func (w *Watcher) watchCreatedDir(name string) {
	for _, dir := range w.subdirs() {
		if filepath.Clean(name) != dir {
			continue
		}
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			return
		}
		if err := w.fsw.Add(dir); err != nil {
			log.Warn().Err(err).Str("dir", dir).Msg("Failed to watch new content directory")
			return
		}
		log.Debug().Str("dir", dir).Msg("Watching new content directory")
	}
}

// Run blocks until ctx is cancelled or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) {
	defer close(w.done)

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
				continue
			}
			log.Debug().Str("path", ev.Name).Str("op", ev.Op.String()).Msg("Content change detected")
			if ev.Has(fsnotify.Create) {
				w.watchCreatedDir(ev.Name)
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Warn().Err(err).Msg("Content watcher error")
		case <-fire:
			fire = nil
			if err := w.svc.Reload(); err != nil {
				log.Warn().Err(err).Msg("Keeping previous content after failed reload")
			}
		}
	}
}

// Done is closed once Run has returned.
func (w *Watcher) Done() <-chan struct{} {
	return w.done
}

func (w *Watcher) Close() error {
	return w.fsw.Close()
}
