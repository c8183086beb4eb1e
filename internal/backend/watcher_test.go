package backend

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/atomicstack/listbox-control/internal/menu"
)

func writeItems(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

// waitFor drains events until match accepts one. A write may be observed
// half-done, so intermediate events are skipped.
func waitFor(t *testing.T, w *Watcher, match func(Event) bool) Event {
	t.Helper()
	deadline := time.After(3 * time.Second)
	for {
		select {
		case evt, ok := <-w.Events():
			require.True(t, ok, "events channel closed early")
			if match(evt) {
				return evt
			}
		case <-deadline:
			t.Fatal("timed out waiting for reload event")
			return Event{}
		}
	}
}

func TestWatcherEmitsOnChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.toml")
	writeItems(t, path, "title = \"A\"\n[[items]]\nlabel = \"One\"\n")

	w := NewWatcher(path, 10*time.Millisecond, func() (menu.Definition, error) {
		return menu.LoadFile(path)
	})
	defer func() {
		w.Stop()
		w.Wait()
	}()

	writeItems(t, path, "title = \"B\"\n[[items]]\nlabel = \"One\"\n[[items]]\nlabel = \"Two\"\n")

	evt := waitFor(t, w, func(evt Event) bool { return evt.Err == nil && evt.Definition.Title == "B" })
	require.Equal(t, path, evt.Path)
	require.Equal(t, []string{"One", "Two"}, evt.Definition.Labels())
}

func TestWatcherReportsLoadErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.yaml")
	writeItems(t, path, "items:\n  - label: One\n")

	w := NewWatcher(path, 10*time.Millisecond, func() (menu.Definition, error) {
		return menu.LoadFile(path)
	})
	defer func() {
		w.Stop()
		w.Wait()
	}()

	writeItems(t, path, "items:\n  - label: \"\"\n    kind: spaceship\n")

	evt := waitFor(t, w, func(evt Event) bool { return evt.Err != nil })
	require.Contains(t, evt.Err.Error(), "items.yaml")
}

func TestWatcherClosesEventsAfterStop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.toml")
	w := NewWatcher(path, 0, func() (menu.Definition, error) { return menu.Default(), nil })
	w.Stop()
	w.Wait()

	select {
	case _, ok := <-w.Events():
		require.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("events channel not closed")
	}
}

func TestThrottleSpacesCalls(t *testing.T) {
	ctx := context.Background()
	th := newThrottle(20 * time.Millisecond)
	start := time.Now()
	require.True(t, th.wait(ctx))
	require.True(t, th.wait(ctx))
	require.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)

	var disabled *throttle
	require.True(t, disabled.wait(ctx))
}

func TestThrottleStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	th := newThrottle(time.Hour)
	require.True(t, th.wait(ctx))
	cancel()
	require.False(t, th.wait(ctx))
}
