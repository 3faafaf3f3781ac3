package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeTestConfig(t *testing.T, path, glossaryID string) {
	t.Helper()
	content := `
atlas:
  endpoint: "http://atlas.test:21000"
  glossary_id: "` + glossaryID + `"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
}

func TestWatcherReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "atlasdcat.yaml")
	writeTestConfig(t, path, "before")

	w, err := NewWatcher(WatcherConfig{Path: path, DebounceDelay: 10 * time.Millisecond})
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := w.Start(ctx); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	writeTestConfig(t, path, "after")

	select {
	case event := <-w.Events():
		if event.Error != nil {
			t.Fatalf("reload error: %v", event.Error)
		}
		if event.Config.Atlas.GlossaryID != "after" {
			t.Errorf("expected glossary id after, got %s", event.Config.Atlas.GlossaryID)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no reload event within timeout")
	}
}

func TestWatcherStopClosesEvents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "atlasdcat.yaml")
	writeTestConfig(t, path, "glossary-1")

	w, err := NewWatcher(WatcherConfig{Path: path, DebounceDelay: 10 * time.Millisecond})
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := w.Start(ctx); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	// A change may be mid-debounce when Stop is called; that must not panic.
	writeTestConfig(t, path, "glossary-2")
	if err := w.Stop(); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}

	select {
	case _, ok := <-w.Events():
		if ok {
			// Drain a reload that slipped in before the close.
			if _, ok := <-w.Events(); ok {
				t.Error("events channel not closed after Stop")
			}
		}
	case <-time.After(5 * time.Second):
		t.Fatal("events channel not closed within timeout")
	}
}
