package wm

import (
	"context"
	"sync"
	"testing"

	"github.com/1broseidon/fbtile/internal/config"
)

func newTestLoop(t *testing.T) (*Loop, context.CancelFunc) {
	t.Helper()
	m, err := NewManager(config.DefaultConfig(), &recordingRedrawer{})
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	loop := NewLoop(m)
	ctx, cancel := context.WithCancel(context.Background())
	go loop.Run(ctx)
	return loop, cancel
}

func TestLoopSerializesConcurrentMutations(t *testing.T) {
	loop, cancel := newTestLoop(t)
	defer cancel()

	var wg sync.WaitGroup
	for i := 0; i < config.MaxWindowsPerWorkspace*2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			loop.AddWindow("shell")
		}()
	}
	wg.Wait()

	status := loop.Status()
	if status.WindowCount != config.MaxWindowsPerWorkspace {
		t.Fatalf("window count = %d, want %d", status.WindowCount, config.MaxWindowsPerWorkspace)
	}
}

func TestLoopStatusReflectsMutations(t *testing.T) {
	loop, cancel := newTestLoop(t)
	defer cancel()

	loop.AddWindow("editor")
	loop.AddWindow("logs")
	loop.CycleFocus(-1)

	status := loop.Status()
	if status.WindowCount != 2 || status.FocusedIndex != 0 {
		t.Fatalf("unexpected status: %+v", status)
	}
	if len(status.WindowTitles) != 2 || status.WindowTitles[1] != "logs" {
		t.Fatalf("titles = %v", status.WindowTitles)
	}
	if status.ActiveLayout != string(config.LayoutGrid) {
		t.Fatalf("active layout = %q, want %q", status.ActiveLayout, config.LayoutGrid)
	}
}

func TestLoopListLayouts(t *testing.T) {
	loop, cancel := newTestLoop(t)
	defer cancel()

	loop.CycleLayout()

	data := loop.ListLayouts()
	if len(data.Layouts) != len(config.LayoutTypes()) {
		t.Fatalf("got %d layouts, want %d", len(data.Layouts), len(config.LayoutTypes()))
	}
	if data.ActiveLayout != string(config.LayoutGrid.Next()) {
		t.Fatalf("active layout = %q, want %q", data.ActiveLayout, config.LayoutGrid.Next())
	}
}
