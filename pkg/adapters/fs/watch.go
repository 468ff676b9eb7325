package fs

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime/debug"
	"sync"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/notex/pkg/core"
)

const debounceDelay = 50 * time.Millisecond

// Watch reports changes to note files made by anyone, including this process.
// An empty pattern uses the repository's note pattern. The returned channel
// is closed when ctx is cancelled.
func (r *Repository) Watch(ctx context.Context, pattern string) (<-chan core.Event, error) {
	if pattern == "" {
		pattern = r.config.Pattern
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid watch pattern %q", pattern)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(r.Path); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", r.Path, err)
	}

	events := make(chan core.Event, 16)
	w := &watchLoop{
		repo:      r,
		pattern:   pattern,
		watcher:   watcher,
		events:    events,
		debouncer: newDebouncer(debounceDelay),
	}
	r.setWatcherActive(true)

	lifecycle.Go(ctx, w.run, lifecycle.WithErrorHandler(func(err error) {
		r.reportWatchError(fmt.Errorf("watcher stopped: %w", err))
	}))

	return events, nil
}

type watchLoop struct {
	repo      *Repository
	pattern   string
	watcher   *fsnotify.Watcher
	events    chan core.Event
	debouncer *debouncer
}

func (w *watchLoop) run(ctx context.Context) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("watcher panic: %v", recovered)
			if w.repo.config.Logger.Enabled(ctx, slog.LevelDebug) {
				w.repo.config.Logger.Error("watcher panic", "error", err, "stack", string(debug.Stack()))
			}
		}
	}()
	defer close(w.events)
	defer w.debouncer.stop()
	defer w.repo.setWatcherActive(false)
	defer w.watcher.Close()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			w.handle(ctx, event)

		case wErr, ok := <-w.watcher.Errors:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			w.repo.reportWatchError(wErr)
		}
	}
}

// handle filters, maps and debounces a single filesystem event.
func (w *watchLoop) handle(ctx context.Context, event fsnotify.Event) {
	name := filepath.Base(event.Name)
	if ok, _ := doublestar.Match(w.pattern, name); !ok {
		return
	}

	eType := mapEventType(event)
	if eType == "" {
		return
	}

	id, err := ParseFileName(name)
	if err != nil {
		w.repo.config.Logger.Debug("ignoring event for unrecognised file", "path", event.Name, "error", err)
		return
	}

	w.debouncer.add(core.Event{Type: eType, ID: id, Timestamp: time.Now().Unix()}, func(e core.Event) {
		select {
		case w.events <- e:
		case <-ctx.Done():
		case <-w.debouncer.quit:
		}
	})
}

func mapEventType(event fsnotify.Event) core.EventType {
	switch {
	case event.Has(fsnotify.Create):
		return core.EventCreate
	case event.Has(fsnotify.Write):
		return core.EventModify
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		return core.EventDelete
	default:
		return ""
	}
}

func (r *Repository) reportWatchError(err error) {
	r.config.Logger.Error("fsnotify error", "error", err)
	if r.config.ErrorHandler != nil {
		r.config.ErrorHandler(err)
	}
}

// debouncer coalesces bursts of events for the same note into the last one.
type debouncer struct {
	delay   time.Duration
	mu      sync.Mutex
	timers  map[int]*time.Timer
	pending map[int]core.Event
	wg      sync.WaitGroup
	quit    chan struct{}
	stopped bool
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{
		delay:   delay,
		timers:  make(map[int]*time.Timer),
		pending: make(map[int]core.Event),
		quit:    make(chan struct{}),
	}
}

func (d *debouncer) add(e core.Event, fire func(core.Event)) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	d.pending[e.ID] = e
	if _, scheduled := d.timers[e.ID]; scheduled {
		return
	}

	d.wg.Add(1)
	d.timers[e.ID] = time.AfterFunc(d.delay, func() {
		defer d.wg.Done()

		d.mu.Lock()
		ev := d.pending[e.ID]
		delete(d.pending, e.ID)
		delete(d.timers, e.ID)
		d.mu.Unlock()

		fire(ev)
	})
}

// stop drops pending events and waits for callbacks already running.
func (d *debouncer) stop() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	d.stopped = true
	close(d.quit)
	for id, t := range d.timers {
		if t.Stop() {
			d.wg.Done()
		}
		delete(d.timers, id)
	}
	d.mu.Unlock()

	d.wg.Wait()
}
