// Package tui implements an interactive layout browser. It renders ASCII
// previews of the tiling variants straight from the layout math, so what
// the preview shows is what the framebuffer will do.
package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/1broseidon/fbtile/internal/config"
	"golang.org/x/term"
)

// TUI represents the terminal user interface state.
type TUI struct {
	cfg *config.Config

	// UI state
	layouts       []config.LayoutType
	selectedIndex int
	windowCount   int // 1..6
	lastError     string

	// Terminal state
	oldState *term.State
	width    int
	height   int
}

// New creates a new TUI instance.
func New(cfg *config.Config) *TUI {
	return &TUI{
		cfg:         cfg,
		layouts:     config.LayoutTypes(),
		windowCount: 4,
	}
}

// Run starts the TUI main loop.
func (t *TUI) Run() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("tui requires an interactive terminal (stdin/stdout must be TTYs)")
	}

	// Enter raw mode
	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		return fmt.Errorf("failed to enter raw mode: %w", err)
	}
	t.oldState = oldState
	defer t.restore()

	t.updateSize()
	t.render()

	// Main event loop
	buf := make([]byte, 32)
	for {
		n, err := os.Stdin.Read(buf)
		if err != nil {
			return err
		}

		if t.handleInput(buf[:n]) {
			break
		}

		t.render()
	}

	return nil
}

func (t *TUI) restore() {
	if t.oldState != nil {
		term.Restore(int(os.Stdin.Fd()), t.oldState)
	}
	// Clear screen and show cursor on exit
	fmt.Print("\x1b[0m")   // reset
	fmt.Print("\x1b[?25h") // show cursor
	fmt.Print("\x1b[2J")   // clear screen
	fmt.Print("\x1b[H")    // home cursor
}

func (t *TUI) updateSize() {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		t.width = 80
		t.height = 24
		return
	}
	t.width = w
	t.height = h
}

// handleInput processes one chunk of raw input. Returns true to quit.
func (t *TUI) handleInput(buf []byte) bool {
	for _, b := range buf {
		switch b {
		case 'q', 0x03: // q or Ctrl+C
			return true
		case 'j':
			t.selectedIndex = (t.selectedIndex + 1) % len(t.layouts)
		case 'k':
			t.selectedIndex = (t.selectedIndex + len(t.layouts) - 1) % len(t.layouts)
		case '1', '2', '3', '4', '5', '6':
			t.windowCount = int(b - '0')
		case '+':
			if t.windowCount < config.MaxWindowsPerWorkspace {
				t.windowCount++
			}
		case '-':
			if t.windowCount > 1 {
				t.windowCount--
			}
		}
	}
	return false
}

func (t *TUI) render() {
	var sb strings.Builder
	sb.WriteString("\x1b[2J\x1b[H\x1b[?25l")

	sb.WriteString("fbtile layouts  (j/k select, 1-6 windows, q quit)\r\n\r\n")

	for i, variant := range t.layouts {
		marker := "  "
		if i == t.selectedIndex {
			marker = "> "
		}
		sb.WriteString(fmt.Sprintf("%s%s\r\n", marker, variant))
	}
	sb.WriteString("\r\n")

	selected := t.layouts[t.selectedIndex]
	layout, err := t.cfg.GetLayout(selected)
	if err != nil {
		t.lastError = err.Error()
	} else {
		previewWidth := t.width - 4
		if previewWidth > 60 {
			previewWidth = 60
		}
		previewHeight := t.height - len(t.layouts) - 8
		if previewHeight > 18 {
			previewHeight = 18
		}
		for _, line := range renderASCIIPreview(layout, t.windowCount, previewWidth, previewHeight) {
			sb.WriteString("  " + line + "\r\n")
		}
		sb.WriteString(fmt.Sprintf("\r\n  %s\r\n", summarizeLayout(layout, t.windowCount)))
	}

	if t.lastError != "" {
		sb.WriteString(fmt.Sprintf("\r\nerror: %s\r\n", t.lastError))
	}

	fmt.Print(sb.String())
}
