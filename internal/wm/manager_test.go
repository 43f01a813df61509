package wm

import (
	"strings"
	"testing"

	"github.com/1broseidon/fbtile/internal/config"
)

// recordingRedrawer counts redraw invocations.
type recordingRedrawer struct {
	calls int
}

func (r *recordingRedrawer) Redraw(ws *Workspace) {
	r.calls++
}

func newTestManager(t *testing.T) (*Manager, *recordingRedrawer) {
	t.Helper()
	rec := &recordingRedrawer{}
	m, err := NewManager(config.DefaultConfig(), rec)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	return m, rec
}

func TestAddWindow_FocusesNewWindow(t *testing.T) {
	m, rec := newTestManager(t)

	m.AddWindow("one")
	m.AddWindow("two")

	ws := m.Active()
	if ws.Count != 2 {
		t.Fatalf("count = %d, want 2", ws.Count)
	}
	if ws.Focused != 1 {
		t.Fatalf("focus = %d, want 1", ws.Focused)
	}
	if ws.Windows[0].Title != "one" || ws.Windows[1].Title != "two" {
		t.Fatalf("unexpected titles: %q, %q", ws.Windows[0].Title, ws.Windows[1].Title)
	}
	if ws.Windows[1].PID != 1 {
		t.Fatalf("pid = %d, want insertion index 1", ws.Windows[1].PID)
	}
	if !ws.Windows[0].Open || !ws.Windows[1].Open {
		t.Fatalf("windows not marked open")
	}
	if rec.calls != 2 {
		t.Fatalf("redraw calls = %d, want 2", rec.calls)
	}
}

func TestAddWindow_TruncatesLongTitles(t *testing.T) {
	m, _ := newTestManager(t)

	m.AddWindow(strings.Repeat("x", 100))

	if got := len(m.Active().Windows[0].Title); got != config.MaxTitleLength {
		t.Fatalf("title length = %d, want %d", got, config.MaxTitleLength)
	}
}

func TestAddWindow_AtCapacityIsNoop(t *testing.T) {
	m, rec := newTestManager(t)

	for i := 0; i < config.MaxWindowsPerWorkspace; i++ {
		m.AddWindow("win")
	}
	callsBefore := rec.calls

	m.AddWindow("overflow")

	ws := m.Active()
	if ws.Count != config.MaxWindowsPerWorkspace {
		t.Fatalf("count = %d, want %d", ws.Count, config.MaxWindowsPerWorkspace)
	}
	if rec.calls != callsBefore {
		t.Fatalf("no-op add triggered a redraw")
	}
}

func TestCloseFocused_CompactsPreservingOrder(t *testing.T) {
	m, _ := newTestManager(t)
	m.AddWindow("a")
	m.AddWindow("b")
	m.AddWindow("c")
	m.Active().Focused = 1

	m.CloseFocused()

	ws := m.Active()
	if ws.Count != 2 {
		t.Fatalf("count = %d, want 2", ws.Count)
	}
	if ws.Windows[0].Title != "a" || ws.Windows[1].Title != "c" {
		t.Fatalf("survivors out of order: %q, %q", ws.Windows[0].Title, ws.Windows[1].Title)
	}
	if ws.Focused > 1 {
		t.Fatalf("focus = %d, want <= 1", ws.Focused)
	}
}

func TestCloseFocused_LastWindowResetsFocus(t *testing.T) {
	m, _ := newTestManager(t)
	m.AddWindow("only")

	m.CloseFocused()

	ws := m.Active()
	if ws.Count != 0 {
		t.Fatalf("count = %d, want 0", ws.Count)
	}
	if ws.Focused != 0 {
		t.Fatalf("focus = %d, want 0", ws.Focused)
	}
	if ws.Windows[0].Open {
		t.Fatalf("slot 0 still marked open after close")
	}
}

func TestCloseFocused_ClampToNewLastIndex(t *testing.T) {
	m, _ := newTestManager(t)
	m.AddWindow("a")
	m.AddWindow("b")
	m.AddWindow("c") // focus is 2

	m.CloseFocused()

	ws := m.Active()
	if ws.Count != 2 {
		t.Fatalf("count = %d, want 2", ws.Count)
	}
	if ws.Focused != 1 {
		t.Fatalf("focus = %d, want clamped 1", ws.Focused)
	}
}

func TestCloseFocused_EmptyIsNoop(t *testing.T) {
	m, rec := newTestManager(t)

	m.CloseFocused()

	if rec.calls != 0 {
		t.Fatalf("no-op close triggered a redraw")
	}
}

func TestCycleFocus_WrapsBothDirections(t *testing.T) {
	m, _ := newTestManager(t)
	for i := 0; i < 4; i++ {
		m.AddWindow("win")
	}
	ws := m.Active()
	ws.Focused = 3

	m.CycleFocus(1)
	if ws.Focused != 0 {
		t.Fatalf("forward wrap: focus = %d, want 0", ws.Focused)
	}

	m.CycleFocus(-1)
	if ws.Focused != 3 {
		t.Fatalf("backward wrap: focus = %d, want 3", ws.Focused)
	}
}

func TestCycleFocus_SingleWindowStaysPut(t *testing.T) {
	m, _ := newTestManager(t)
	m.AddWindow("only")

	m.CycleFocus(1)

	if got := m.Active().Focused; got != 0 {
		t.Fatalf("focus = %d, want 0", got)
	}
}

func TestCycleFocus_EmptyIsNoop(t *testing.T) {
	m, rec := newTestManager(t)

	m.CycleFocus(1)

	if rec.calls != 0 {
		t.Fatalf("no-op cycle triggered a redraw")
	}
}

func TestCycleLayout_FullCycleRestoresDefaults(t *testing.T) {
	m, _ := newTestManager(t)
	ws := m.Active()

	start := ws.Layout.Type
	// Customize the current layout; cycling must not preserve this.
	ws.Layout.GapSize = 99

	seen := map[config.LayoutType]bool{start: true}
	for i := 0; i < 5; i++ {
		m.CycleLayout()
		seen[ws.Layout.Type] = true

		want := config.BuiltinLayouts()[ws.Layout.Type]
		if ws.Layout != want {
			t.Fatalf("layout %s not reset to defaults: %+v", ws.Layout.Type, ws.Layout)
		}
	}

	if ws.Layout.Type != start {
		t.Fatalf("after 5 cycles layout = %s, want %s", ws.Layout.Type, start)
	}
	if len(seen) != 5 {
		t.Fatalf("visited %d variants, want all 5", len(seen))
	}
}

func TestCycleLayout_FixedOrder(t *testing.T) {
	m, _ := newTestManager(t)
	ws := m.Active()
	ws.Layout = config.BuiltinLayouts()[config.LayoutHorizontal]

	want := []config.LayoutType{
		config.LayoutVertical,
		config.LayoutGrid,
		config.LayoutFullscreen,
		config.LayoutMasterStack,
		config.LayoutHorizontal,
	}
	for _, wantType := range want {
		m.CycleLayout()
		if ws.Layout.Type != wantType {
			t.Fatalf("layout = %s, want %s", ws.Layout.Type, wantType)
		}
	}
}

func TestWorkspacesAreIndependent(t *testing.T) {
	m, _ := newTestManager(t)
	m.AddWindow("on-active")

	if m.ActiveIndex() != 0 {
		t.Fatalf("active index = %d, want 0", m.ActiveIndex())
	}
	// Other workspaces keep their own (empty) state.
	for i := 1; i < config.WorkspaceCount; i++ {
		if m.workspaces[i].Count != 0 {
			t.Fatalf("workspace %d count = %d, want 0", i, m.workspaces[i].Count)
		}
	}
}
