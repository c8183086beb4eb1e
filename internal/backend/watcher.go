package backend

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/atomicstack/listbox-control/internal/menu"
)

// Event conveys a reloaded menu definition or the error hit while reading it.
type Event struct {
	Path       string
	Definition menu.Definition
	Err        error
}

// Loader reads the menu definition the watcher tracks.
type Loader func() (menu.Definition, error)

// DefaultInterval is used when NewWatcher receives a non-positive interval.
const DefaultInterval = time.Second

var statFn = os.Stat

type fileStamp struct {
	modTime time.Time
	size    int64
	missing bool
}

// Watcher polls an items file at a fixed interval and publishes an event
// each time its modification time or size changes.
type Watcher struct {
	path     string
	interval time.Duration
	load     Loader

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher creates a watcher for path that calls load after each change.
func NewWatcher(path string, interval time.Duration, load Loader) *Watcher {
	if interval <= 0 {
		interval = DefaultInterval
	}
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		path:     path,
		interval: interval,
		load:     load,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 4),
	}

	last := w.stamp()
	w.wg.Add(1)
	go w.poll(newThrottle(250*time.Millisecond), last)

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns a channel of reload events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher. The poller exits after its current check
// completes; use Wait if a clean drain is required (e.g. in tests).
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the poller goroutine has exited and the events channel
// is closed. Call after Stop when a clean shutdown is required.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (s fileStamp) equal(o fileStamp) bool {
	return s.missing == o.missing && s.size == o.size && s.modTime.Equal(o.modTime)
}

func (w *Watcher) stamp() fileStamp {
	info, err := statFn(w.path)
	if err != nil {
		return fileStamp{missing: true}
	}
	return fileStamp{modTime: info.ModTime(), size: info.Size()}
}

// poll compares each tick against last, the stamp taken when the watcher
// was created.
func (w *Watcher) poll(limit *throttle, last fileStamp) {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
		}
		current := w.stamp()
		if current.equal(last) {
			continue
		}
		last = current
		if !limit.wait(w.ctx) {
			return
		}
		def, err := w.load()
		evt := Event{Path: w.path, Definition: def, Err: err}
		select {
		case <-w.ctx.Done():
			return
		case w.events <- evt:
		}
	}
}
