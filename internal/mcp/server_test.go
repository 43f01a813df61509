package mcp

import (
	"context"
	"testing"

	"github.com/1broseidon/fbtile/internal/ipc"
)

type fakeConn struct {
	status       ipc.StatusData
	added        []string
	closed       int
	focusCalls   []string
	layoutCycles int
	layouts      ipc.LayoutsData
}

func (f *fakeConn) GetStatus() (*ipc.StatusData, error) {
	status := f.status
	return &status, nil
}

func (f *fakeConn) AddWindow(title string) error {
	f.added = append(f.added, title)
	f.status.WindowCount++
	f.status.FocusedIndex = f.status.WindowCount - 1
	return nil
}

func (f *fakeConn) CloseWindow() error {
	f.closed++
	if f.status.WindowCount > 0 {
		f.status.WindowCount--
	}
	return nil
}

func (f *fakeConn) CycleFocus(direction string) error {
	f.focusCalls = append(f.focusCalls, direction)
	return nil
}

func (f *fakeConn) CycleLayout() error {
	f.layoutCycles++
	return nil
}

func (f *fakeConn) ListLayouts() (*ipc.LayoutsData, error) {
	layouts := f.layouts
	return &layouts, nil
}

func TestHandleGetStatus(t *testing.T) {
	conn := &fakeConn{status: ipc.StatusData{
		WindowCount:  3,
		FocusedIndex: 2,
		ActiveLayout: "grid",
		WindowTitles: []string{"a", "b", "c"},
	}}
	s := NewServer(conn)

	_, out, err := s.handleGetStatus(context.Background(), nil, GetStatusInput{})
	if err != nil {
		t.Fatalf("handleGetStatus failed: %v", err)
	}
	if out.WindowCount != 3 || out.FocusedIndex != 2 || out.ActiveLayout != "grid" {
		t.Fatalf("unexpected output: %+v", out)
	}
}

func TestHandleAddWindowReportsNewState(t *testing.T) {
	conn := &fakeConn{}
	s := NewServer(conn)

	_, out, err := s.handleAddWindow(context.Background(), nil, AddWindowInput{Title: "editor"})
	if err != nil {
		t.Fatalf("handleAddWindow failed: %v", err)
	}
	if len(conn.added) != 1 || conn.added[0] != "editor" {
		t.Fatalf("added = %v, want [editor]", conn.added)
	}
	if out.WindowCount != 1 || out.FocusedIndex != 0 {
		t.Fatalf("unexpected output: %+v", out)
	}
}

func TestHandleCycleFocusValidatesDirection(t *testing.T) {
	conn := &fakeConn{}
	s := NewServer(conn)

	if _, _, err := s.handleCycleFocus(context.Background(), nil, CycleFocusInput{Direction: "up"}); err == nil {
		t.Fatal("invalid direction accepted")
	}
	if len(conn.focusCalls) != 0 {
		t.Fatalf("focus cycled despite invalid direction: %v", conn.focusCalls)
	}

	if _, _, err := s.handleCycleFocus(context.Background(), nil, CycleFocusInput{}); err != nil {
		t.Fatalf("default direction failed: %v", err)
	}
	if len(conn.focusCalls) != 1 || conn.focusCalls[0] != "next" {
		t.Fatalf("focusCalls = %v, want [next]", conn.focusCalls)
	}
}

func TestHandleListLayouts(t *testing.T) {
	conn := &fakeConn{layouts: ipc.LayoutsData{
		Layouts:      []string{"horizontal", "vertical", "grid", "fullscreen", "master-stack"},
		ActiveLayout: "fullscreen",
	}}
	s := NewServer(conn)

	_, out, err := s.handleListLayouts(context.Background(), nil, ListLayoutsInput{})
	if err != nil {
		t.Fatalf("handleListLayouts failed: %v", err)
	}
	if len(out.Layouts) != 5 || out.ActiveLayout != "fullscreen" {
		t.Fatalf("unexpected output: %+v", out)
	}
}
