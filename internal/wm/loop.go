package wm

import (
	"context"

	"github.com/1broseidon/fbtile/internal/config"
	"github.com/1broseidon/fbtile/internal/ipc"
)

// Loop is the daemon's single execution context. It owns the Manager:
// every mutation, whether from a key press or an IPC connection, runs as
// a closure on the loop goroutine, so workspace state needs no locks.
type Loop struct {
	manager *Manager
	actions chan func()
}

func NewLoop(manager *Manager) *Loop {
	return &Loop{
		manager: manager,
		actions: make(chan func(), 16),
	}
}

// Run executes queued actions until ctx is cancelled. It must be the
// only goroutine touching the Manager.
func (l *Loop) Run(ctx context.Context) {
	for {
		select {
		case fn := <-l.actions:
			fn()
		case <-ctx.Done():
			return
		}
	}
}

// Do runs fn on the loop goroutine and waits for it to complete. Safe to
// call from any goroutine except the loop itself.
func (l *Loop) Do(fn func(m *Manager)) {
	done := make(chan struct{})
	l.actions <- func() {
		fn(l.manager)
		close(done)
	}
	<-done
}

// Status implements ipc.Controller.
func (l *Loop) Status() ipc.StatusData {
	var status ipc.StatusData
	l.Do(func(m *Manager) {
		ws := m.Active()
		titles := make([]string, ws.Count)
		for i := 0; i < ws.Count; i++ {
			titles[i] = ws.Windows[i].Title
		}
		status = ipc.StatusData{
			ActiveWorkspace: m.ActiveIndex(),
			WindowCount:     ws.Count,
			FocusedIndex:    ws.Focused,
			ActiveLayout:    string(ws.Layout.Type),
			WindowTitles:    titles,
		}
	})
	return status
}

// AddWindow implements ipc.Controller.
func (l *Loop) AddWindow(title string) {
	l.Do(func(m *Manager) { m.AddWindow(title) })
}

// CloseWindow implements ipc.Controller.
func (l *Loop) CloseWindow() {
	l.Do(func(m *Manager) { m.CloseFocused() })
}

// CycleFocus implements ipc.Controller.
func (l *Loop) CycleFocus(direction int) {
	l.Do(func(m *Manager) { m.CycleFocus(direction) })
}

// CycleLayout implements ipc.Controller.
func (l *Loop) CycleLayout() {
	l.Do(func(m *Manager) { m.CycleLayout() })
}

// ListLayouts implements ipc.Controller.
func (l *Loop) ListLayouts() ipc.LayoutsData {
	var data ipc.LayoutsData
	l.Do(func(m *Manager) {
		types := config.LayoutTypes()
		names := make([]string, len(types))
		for i, t := range types {
			names[i] = string(t)
		}
		data = ipc.LayoutsData{
			Layouts:      names,
			ActiveLayout: string(m.Active().Layout.Type),
		}
	})
	return data
}
