package wm

import (
	"fmt"
	"log"

	"github.com/1broseidon/fbtile/internal/config"
)

// Redrawer repaints the screen after a workspace mutation. Implemented by
// the render package; kept as a local interface so the store does not
// depend on how drawing happens.
type Redrawer interface {
	Redraw(ws *Workspace)
}

// Manager owns the workspace set and is the only writer of its state.
// The four mutation methods are the complete mutation surface; each one
// commits its state change fully and then triggers a redraw. No-op calls
// (add at capacity, close/cycle on empty) return without redrawing.
type Manager struct {
	workspaces [config.WorkspaceCount]Workspace
	active     int
	layouts    map[config.LayoutType]config.Layout
	redrawer   Redrawer
}

// NewManager initializes every workspace with the configured initial
// layout. cfg must have passed Validate.
func NewManager(cfg *config.Config, redrawer Redrawer) (*Manager, error) {
	initial, err := cfg.GetLayout(cfg.InitialLayout)
	if err != nil {
		return nil, fmt.Errorf("initial layout: %w", err)
	}

	layouts := make(map[config.LayoutType]config.Layout, len(cfg.Layouts))
	for t := range cfg.Layouts {
		layout, err := cfg.GetLayout(t)
		if err != nil {
			return nil, err
		}
		layouts[t] = layout
	}

	m := &Manager{
		layouts:  layouts,
		redrawer: redrawer,
	}
	for i := range m.workspaces {
		m.workspaces[i].Layout = initial
	}
	return m, nil
}

// Active returns the currently visible workspace.
func (m *Manager) Active() *Workspace {
	return &m.workspaces[m.active]
}

// ActiveIndex returns the index of the visible workspace.
func (m *Manager) ActiveIndex() int {
	return m.active
}

// AddWindow appends a window to the active workspace and focuses it.
// Silently does nothing when the workspace is full.
func (m *Manager) AddWindow(title string) {
	ws := m.Active()
	if ws.Count >= config.MaxWindowsPerWorkspace {
		log.Printf("Workspace %d full (%d windows), ignoring add", m.active, ws.Count)
		return
	}

	if len(title) > config.MaxTitleLength {
		title = title[:config.MaxTitleLength]
	}

	win := &ws.Windows[ws.Count]
	win.Title = title
	win.Open = true
	win.PID = uint32(ws.Count)
	ws.Count++
	ws.Focused = ws.Count - 1

	log.Printf("Added window %q to workspace %d (count=%d)", title, m.active, ws.Count)
	m.redrawer.Redraw(ws)
}

// CloseFocused removes the focused window, shifting later slots left so
// the survivors keep their relative tiling order. Silently does nothing
// when the workspace is empty.
func (m *Manager) CloseFocused() {
	ws := m.Active()
	if ws.Count == 0 {
		return
	}

	focused := ws.Focused
	for i := focused; i < ws.Count-1; i++ {
		ws.Windows[i] = ws.Windows[i+1]
	}
	ws.Count--
	ws.Windows[ws.Count] = Window{}

	if ws.Count == 0 {
		ws.Focused = 0
	} else if focused >= ws.Count {
		ws.Focused = ws.Count - 1
	}

	log.Printf("Closed window on workspace %d (count=%d, focus=%d)", m.active, ws.Count, ws.Focused)
	m.redrawer.Redraw(ws)
}

// CycleFocus moves the focus forward (direction > 0) or backward,
// wrapping around. Silently does nothing when the workspace is empty.
func (m *Manager) CycleFocus(direction int) {
	ws := m.Active()
	if ws.Count == 0 {
		return
	}

	if direction > 0 {
		ws.Focused = (ws.Focused + 1) % ws.Count
	} else {
		ws.Focused = (ws.Focused + ws.Count - 1) % ws.Count
	}

	m.redrawer.Redraw(ws)
}

// CycleLayout advances the active workspace to the next layout variant,
// installing that variant's configured defaults wholesale. Any prior
// customization of gap/border/ratio is discarded.
func (m *Manager) CycleLayout() {
	ws := m.Active()
	next := ws.Layout.Type.Next()
	ws.Layout = m.layouts[next]

	log.Printf("Workspace %d layout -> %s", m.active, next)
	m.redrawer.Redraw(ws)
}
