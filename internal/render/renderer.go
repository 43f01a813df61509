// Package render repaints the screen incrementally: it remembers what was
// drawn for the previous frame and repaints only the regions a workspace
// mutation actually changed.
package render

import (
	"github.com/1broseidon/fbtile/internal/config"
	"github.com/1broseidon/fbtile/internal/fb"
	"github.com/1broseidon/fbtile/internal/tiling"
	"github.com/1broseidon/fbtile/internal/wm"
)

// Renderer draws workspace frames onto a surface. Its only persistent
// state is the previous-frame snapshot: the rectangles last drawn plus the
// count, layout variant and focus index they were drawn for. The snapshot
// is updated only after the corresponding draw calls complete.
type Renderer struct {
	surface      fb.Surface
	screenWidth  int
	screenHeight int

	prevPositions [config.MaxWindowsPerWorkspace]tiling.Rect
	prevCount     int
	prevLayout    config.LayoutType
	prevFocused   int
}

// NewRenderer queries the surface geometry once and paints the initial
// background and top bar. The snapshot starts empty with the initial
// layout, so the first Redraw against an untouched workspace is a no-op.
func NewRenderer(surface fb.Surface, initialLayout config.LayoutType) *Renderer {
	width, height, _ := surface.Size()
	r := &Renderer{
		surface:      surface,
		screenWidth:  width,
		screenHeight: height,
		prevLayout:   initialLayout,
	}
	surface.FillRect(0, 0, width, height, config.ColorBarBG)
	surface.Flush()
	return r
}

// Redraw brings the screen in sync with ws. Two triggers, checked in
// order:
//
//  1. Structural change (window count or layout variant differs from the
//     snapshot): erase every previously drawn rectangle, then repaint the
//     whole workspace (or the empty-desktop indicator) and replace the
//     snapshot.
//  2. Focus-only change: repaint just the old and new focus frames and
//     update the snapshot's focus index.
//
// When neither holds nothing is drawn, so redundant invocations are free.
func (r *Renderer) Redraw(ws *wm.Workspace) {
	if ws.Count != r.prevCount || ws.Layout.Type != r.prevLayout {
		for i := 0; i < r.prevCount; i++ {
			prev := r.prevPositions[i]
			r.surface.FillRect(prev.X, prev.Y, prev.Width, prev.Height, config.ColorBarBG)
		}

		if ws.Count == 0 {
			r.drawEmptyDesktopIndicator()
		} else {
			positions := tiling.ComputePositions(
				ws.Count, ws.Layout, r.screenWidth, r.screenHeight, config.TopBarHeight,
			)
			for i := range positions {
				positions[i].PID = ws.Windows[i].PID
				r.drawWindowFrame(positions[i], ws.Layout, i == ws.Focused)
				r.prevPositions[i] = positions[i]
			}
		}

		r.prevCount = ws.Count
		r.prevLayout = ws.Layout.Type
		r.prevFocused = ws.Focused
		r.surface.Flush()
		return
	}

	if ws.Focused != r.prevFocused {
		// Geometry is unchanged but not cached beyond the drawn rects, so
		// recompute it for the two frames that need repainting.
		positions := tiling.ComputePositions(
			ws.Count, ws.Layout, r.screenWidth, r.screenHeight, config.TopBarHeight,
		)

		r.drawWindowFrame(positions[r.prevFocused], ws.Layout, false)
		r.drawWindowFrame(positions[ws.Focused], ws.Layout, true)

		r.prevFocused = ws.Focused
		r.surface.Flush()
	}
}

// drawWindowFrame paints one window: interior fill plus four border
// strips. The focused window gets a thicker border.
func (r *Renderer) drawWindowFrame(pos tiling.Rect, layout config.Layout, focused bool) {
	border := layout.BorderSize
	if focused {
		border *= config.FocusedBorderMultiplier
	}

	x, y, w, h := pos.X, pos.Y, pos.Width, pos.Height
	r.surface.FillRect(x+border, y+border, w-border*2, h-border*2, config.ColorWindowBG)
	r.surface.FillRect(x, y, w, border, layout.BorderColor)
	r.surface.FillRect(x, y+h-border, w, border, layout.BorderColor)
	r.surface.FillRect(x, y, border, h, layout.BorderColor)
	r.surface.FillRect(x+w-border, y, border, h, layout.BorderColor)
}

// drawEmptyDesktopIndicator marks an empty workspace with a small glyph
// block centered on screen.
func (r *Renderer) drawEmptyDesktopIndicator() {
	const text = "~"
	textWidth := len(text) * config.SymbolWidth
	x := (r.screenWidth - textWidth) / 2
	y := r.screenHeight/2 - config.SymbolHeight/2

	for i := 0; i < len(text); i++ {
		r.surface.FillRect(
			x+i*config.SymbolWidth, y,
			config.SymbolWidth, config.SymbolHeight,
			config.ColorEmptyDesktop,
		)
	}
}
