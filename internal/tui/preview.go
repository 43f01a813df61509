package tui

import (
	"fmt"
	"strings"

	"github.com/1broseidon/fbtile/internal/config"
	"github.com/1broseidon/fbtile/internal/tiling"
)

// previewScreenWidth is the simulated screen the preview tiles against.
const (
	previewScreenWidth  = 1920
	previewScreenHeight = 1080
)

func summarizeLayout(layout config.Layout, windowCount int) string {
	if windowCount < 1 {
		windowCount = 1
	}

	rects := tiling.ComputePositions(
		windowCount, layout, previewScreenWidth, previewScreenHeight, config.TopBarHeight,
	)
	if len(rects) == 0 {
		return "no windows"
	}

	minW, minH := rects[0].Width, rects[0].Height
	maxW, maxH := rects[0].Width, rects[0].Height
	for _, r := range rects[1:] {
		if r.Width < minW {
			minW = r.Width
		}
		if r.Height < minH {
			minH = r.Height
		}
		if r.Width > maxW {
			maxW = r.Width
		}
		if r.Height > maxH {
			maxH = r.Height
		}
	}

	if minW == maxW && minH == maxH {
		return fmt.Sprintf("%d windows, %dx%d px each", len(rects), minW, minH)
	}
	return fmt.Sprintf("%d windows, min %dx%d, max %dx%d", len(rects), minW, minH, maxW, maxH)
}

// renderASCIIPreview generates an ASCII art representation of a layout.
func renderASCIIPreview(layout config.Layout, windowCount, width, height int) []string {
	if width < 5 || height < 3 {
		return emptyCanvas(width, height)
	}

	// Create a character canvas
	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}

	rects := tiling.ComputePositions(
		windowCount, layout, previewScreenWidth, previewScreenHeight, config.TopBarHeight,
	)

	// Draw each window on the canvas
	for i, rect := range rects {
		drawTile(canvas, rect, i+1, previewScreenWidth, previewScreenHeight, width, height)
	}

	// Draw border around the entire preview area
	drawBorder(canvas, width, height)

	// Convert canvas to string lines
	lines := make([]string, height)
	for i, row := range canvas {
		lines[i] = string(row)
	}

	return lines
}

func drawTile(canvas [][]rune, rect tiling.Rect, num, screenW, screenH, canvasW, canvasH int) {
	// Map rect coordinates to canvas coordinates
	x1 := rect.X * canvasW / screenW
	y1 := rect.Y * canvasH / screenH
	x2 := (rect.X + rect.Width) * canvasW / screenW
	y2 := (rect.Y + rect.Height) * canvasH / screenH

	// Clamp to canvas bounds
	if x1 < 1 {
		x1 = 1
	}
	if y1 < 1 {
		y1 = 1
	}
	if x2 >= canvasW-1 {
		x2 = canvasW - 2
	}
	if y2 >= canvasH-1 {
		y2 = canvasH - 2
	}

	// Need at least 2x2 for a tile
	if x2 <= x1 || y2 <= y1 {
		return
	}

	// Draw tile border
	for x := x1; x <= x2; x++ {
		canvas[y1][x] = '─'
		canvas[y2][x] = '─'
	}
	for y := y1; y <= y2; y++ {
		canvas[y][x1] = '│'
		canvas[y][x2] = '│'
	}

	// Draw corners
	canvas[y1][x1] = '┌'
	canvas[y1][x2] = '┐'
	canvas[y2][x1] = '└'
	canvas[y2][x2] = '┘'

	// Draw tile number in center
	centerY := (y1 + y2) / 2
	centerX := (x1 + x2) / 2
	if centerY > y1 && centerY < y2 && centerX > x1 && centerX < x2 {
		label := fmt.Sprintf("%d", num)
		startX := centerX - len(label)/2
		for i, r := range label {
			if startX+i > x1 && startX+i < x2 {
				canvas[centerY][startX+i] = r
			}
		}
	}
}

func drawBorder(canvas [][]rune, width, height int) {
	// Top and bottom borders
	for x := 0; x < width; x++ {
		canvas[0][x] = '═'
		canvas[height-1][x] = '═'
	}

	// Left and right borders
	for y := 0; y < height; y++ {
		canvas[y][0] = '║'
		canvas[y][width-1] = '║'
	}

	// Corners
	canvas[0][0] = '╔'
	canvas[0][width-1] = '╗'
	canvas[height-1][0] = '╚'
	canvas[height-1][width-1] = '╝'
}

func emptyCanvas(width, height int) []string {
	lines := make([]string, height)
	empty := strings.Repeat(" ", width)
	for i := range lines {
		lines[i] = empty
	}
	return lines
}
