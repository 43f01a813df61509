package render

import (
	"testing"

	"github.com/1broseidon/fbtile/internal/config"
	"github.com/1broseidon/fbtile/internal/fb"
	"github.com/1broseidon/fbtile/internal/wm"
)

const (
	testWidth  = 640
	testHeight = 480
)

type fillCall struct {
	x, y, width, height int
	color               uint32
}

// recordingSurface wraps an in-memory buffer and records every FillRect
// so tests can assert on exactly which regions a redraw touched.
type recordingSurface struct {
	*fb.Buffer
	fills   []fillCall
	flushes int
}

func newRecordingSurface() *recordingSurface {
	return &recordingSurface{Buffer: fb.NewBuffer(testWidth, testHeight)}
}

func (s *recordingSurface) FillRect(x, y, width, height int, color uint32) {
	s.fills = append(s.fills, fillCall{x, y, width, height, color})
	s.Buffer.FillRect(x, y, width, height, color)
}

func (s *recordingSurface) Flush() error {
	s.flushes++
	return s.Buffer.Flush()
}

func (s *recordingSurface) reset() {
	s.fills = nil
	s.flushes = 0
}

func (s *recordingSurface) countColor(color uint32) int {
	n := 0
	for _, f := range s.fills {
		if f.color == color {
			n++
		}
	}
	return n
}

func newTestWorkspace(t *testing.T) *wm.Workspace {
	t.Helper()
	layouts := config.BuiltinLayouts()
	return &wm.Workspace{Layout: layouts[config.LayoutGrid]}
}

func addWindows(ws *wm.Workspace, n int) {
	for i := 0; i < n; i++ {
		ws.Windows[ws.Count] = wm.Window{Title: "win", PID: uint32(ws.Count), Open: true}
		ws.Focused = ws.Count
		ws.Count++
	}
}

func TestRedrawNoChangeDrawsNothing(t *testing.T) {
	surface := newRecordingSurface()
	r := NewRenderer(surface, config.LayoutGrid)
	ws := newTestWorkspace(t)
	surface.reset()

	// Fresh renderer and untouched workspace agree, so this must not
	// paint or flush anything.
	r.Redraw(ws)

	if len(surface.fills) != 0 {
		t.Fatalf("redraw with no change painted %d rects, want 0", len(surface.fills))
	}
	if surface.flushes != 0 {
		t.Fatalf("redraw with no change flushed %d times, want 0", surface.flushes)
	}
}

func TestRedrawStructuralChangePaintsAllWindows(t *testing.T) {
	surface := newRecordingSurface()
	r := NewRenderer(surface, config.LayoutGrid)
	ws := newTestWorkspace(t)
	addWindows(ws, 3)
	surface.reset()

	r.Redraw(ws)

	if got := surface.countColor(config.ColorWindowBG); got != 3 {
		t.Fatalf("got %d window interiors, want 3", got)
	}
	if surface.flushes != 1 {
		t.Fatalf("got %d flushes, want 1", surface.flushes)
	}
}

func TestRedrawFocusChangeRepaintsExactlyTwoFrames(t *testing.T) {
	surface := newRecordingSurface()
	r := NewRenderer(surface, config.LayoutGrid)
	ws := newTestWorkspace(t)
	addWindows(ws, 4)
	r.Redraw(ws)
	surface.reset()

	ws.Focused = 1
	r.Redraw(ws)

	if got := surface.countColor(config.ColorWindowBG); got != 2 {
		t.Fatalf("focus change repainted %d frames, want 2", got)
	}
	if got := surface.countColor(config.ColorBarBG); got != 0 {
		t.Fatalf("focus change erased %d rects, want 0", got)
	}
}

func TestRedrawStructuralChangeErasesPreviousRects(t *testing.T) {
	surface := newRecordingSurface()
	r := NewRenderer(surface, config.LayoutGrid)
	ws := newTestWorkspace(t)
	addWindows(ws, 2)
	r.Redraw(ws)
	surface.reset()

	addWindows(ws, 1)
	r.Redraw(ws)

	if got := surface.countColor(config.ColorBarBG); got != 2 {
		t.Fatalf("erased %d previous rects, want 2", got)
	}
	if got := surface.countColor(config.ColorWindowBG); got != 3 {
		t.Fatalf("painted %d window interiors, want 3", got)
	}
}

func TestRedrawEmptyWorkspaceDrawsIndicator(t *testing.T) {
	surface := newRecordingSurface()
	r := NewRenderer(surface, config.LayoutGrid)
	ws := newTestWorkspace(t)
	addWindows(ws, 1)
	r.Redraw(ws)
	surface.reset()

	ws.Windows[0] = wm.Window{}
	ws.Count = 0
	ws.Focused = 0
	r.Redraw(ws)

	if got := surface.countColor(config.ColorBarBG); got != 1 {
		t.Fatalf("erased %d rects, want 1", got)
	}
	if got := surface.countColor(config.ColorEmptyDesktop); got == 0 {
		t.Fatalf("empty workspace drew no indicator")
	}
	if got := surface.countColor(config.ColorWindowBG); got != 0 {
		t.Fatalf("empty workspace painted %d window interiors, want 0", got)
	}
}

func TestRedrawLayoutChangeIsStructural(t *testing.T) {
	surface := newRecordingSurface()
	r := NewRenderer(surface, config.LayoutGrid)
	ws := newTestWorkspace(t)
	addWindows(ws, 2)
	r.Redraw(ws)
	surface.reset()

	layouts := config.BuiltinLayouts()
	ws.Layout = layouts[config.LayoutHorizontal]
	r.Redraw(ws)

	if got := surface.countColor(config.ColorBarBG); got != 2 {
		t.Fatalf("layout change erased %d rects, want 2", got)
	}
	if got := surface.countColor(config.ColorWindowBG); got != 2 {
		t.Fatalf("layout change painted %d interiors, want 2", got)
	}
}

func TestRedrawFocusedFrameUsesThickBorder(t *testing.T) {
	surface := newRecordingSurface()
	r := NewRenderer(surface, config.LayoutGrid)
	ws := newTestWorkspace(t)
	addWindows(ws, 2)
	surface.reset()

	r.Redraw(ws)

	layouts := config.BuiltinLayouts()
	thick := layouts[config.LayoutGrid].BorderSize * config.FocusedBorderMultiplier
	sawThick := false
	for _, f := range surface.fills {
		if f.color == layouts[config.LayoutGrid].BorderColor && f.height == thick {
			sawThick = true
		}
	}
	if !sawThick {
		t.Fatalf("no border strip with focused thickness %d was painted", thick)
	}
}
