package tiling

import (
	"github.com/1broseidon/fbtile/internal/config"
)

// Rect represents a window position and size on screen. PID associates the
// drawn region with the window occupying it, so the differ can erase and
// redraw per window.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
	PID    uint32
}

// ComputePositions computes the on-screen rectangle for each of count
// windows under the given layout. The result has exactly count elements,
// in tiling order (index 0 is the first/master slot), or nil when count
// is 0.
//
// Pure function: integer arithmetic only, no shared state. Division
// remainders are left as unused trailing pixels rather than distributed.
// layout.MasterRatio outside (0,100) is a caller contract violation; the
// engine does not guard against it (config validation does).
func ComputePositions(count int, layout config.Layout, screenWidth, screenHeight, topOffset int) []Rect {
	if count <= 0 {
		return nil
	}

	gap := layout.GapSize
	usableHeight := screenHeight - topOffset - gap

	switch layout.Type {
	case config.LayoutHorizontal:
		return horizontalLayout(count, gap, screenWidth, usableHeight, topOffset)
	case config.LayoutVertical:
		return verticalLayout(count, gap, screenWidth, usableHeight, topOffset)
	case config.LayoutGrid:
		return gridLayout(count, gap, screenWidth, usableHeight, topOffset)
	case config.LayoutFullscreen:
		return fullscreenLayout(count, gap, screenWidth, usableHeight, topOffset)
	case config.LayoutMasterStack:
		return masterStackLayout(count, gap, screenWidth, usableHeight, topOffset, layout.MasterRatio)
	default:
		// Unreachable for validated configs.
		return nil
	}
}

// horizontalLayout splits the usable width into count equal columns.
func horizontalLayout(count, gap, screenWidth, usableHeight, topOffset int) []Rect {
	windowWidth := (screenWidth - gap*(count+1)) / count

	positions := make([]Rect, count)
	for i := range positions {
		positions[i] = Rect{
			X:      gap + i*(windowWidth+gap),
			Y:      topOffset + gap,
			Width:  windowWidth,
			Height: usableHeight - gap,
		}
	}
	return positions
}

// verticalLayout is the mirror of horizontalLayout on the height axis.
func verticalLayout(count, gap, screenWidth, usableHeight, topOffset int) []Rect {
	windowHeight := (usableHeight - gap*(count+1)) / count

	positions := make([]Rect, count)
	for i := range positions {
		positions[i] = Rect{
			X:      gap,
			Y:      topOffset + gap + i*(windowHeight+gap),
			Width:  screenWidth - gap*2,
			Height: windowHeight,
		}
	}
	return positions
}

// gridLayout arranges windows in two fixed columns. Cell sizing always
// divides by the full row count, so an odd final row leaves a blank
// region where the missing cell would be.
func gridLayout(count, gap, screenWidth, usableHeight, topOffset int) []Rect {
	cols := 2
	rows := (count + 1) / 2
	cellWidth := (screenWidth - gap*(cols+1)) / cols
	cellHeight := (usableHeight - gap*(rows+1)) / rows

	positions := make([]Rect, count)
	for i := range positions {
		col := i % cols
		row := i / cols
		positions[i] = Rect{
			X:      gap + col*(cellWidth+gap),
			Y:      topOffset + gap + row*(cellHeight+gap),
			Width:  cellWidth,
			Height: cellHeight,
		}
	}
	return positions
}

// fullscreenLayout assigns every window the identical full usable
// rectangle. Only draw order and focus distinguish the stack.
func fullscreenLayout(count, gap, screenWidth, usableHeight, topOffset int) []Rect {
	positions := make([]Rect, count)
	for i := range positions {
		positions[i] = Rect{
			X:      gap,
			Y:      topOffset + gap,
			Width:  screenWidth - gap*2,
			Height: usableHeight - gap,
		}
	}
	return positions
}

// masterStackLayout gives window 0 a left master region sized by ratio
// (percent of the screen width) and stacks the remaining windows in the
// right region. A single window fills the whole usable area.
func masterStackLayout(count, gap, screenWidth, usableHeight, topOffset, ratio int) []Rect {
	positions := make([]Rect, count)

	if count == 1 {
		positions[0] = Rect{
			X:      gap,
			Y:      topOffset + gap,
			Width:  screenWidth - gap*2,
			Height: usableHeight - gap,
		}
		return positions
	}

	masterWidth := (screenWidth * ratio / 100) - gap*2
	stackWidth := screenWidth - masterWidth - gap*3

	positions[0] = Rect{
		X:      gap,
		Y:      topOffset + gap,
		Width:  masterWidth,
		Height: usableHeight - gap,
	}

	stackCount := count - 1
	stackHeight := (usableHeight - gap*(stackCount+1)) / stackCount

	for i := 1; i < count; i++ {
		positions[i] = Rect{
			X:      masterWidth + gap*2,
			Y:      topOffset + gap + (i-1)*(stackHeight+gap),
			Width:  stackWidth,
			Height: stackHeight,
		}
	}
	return positions
}
