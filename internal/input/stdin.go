package input

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// StdinSource reads key presses from a terminal placed in raw mode and
// decodes them into KeyEvents. An ESC prefix byte marks a held Alt key,
// which is how terminals transmit Alt chords.
type StdinSource struct {
	in       *os.File
	oldState *term.State
	events   chan KeyEvent
}

// NewStdinSource switches the terminal into raw mode. Restore must be
// called before the process exits or the terminal is left unusable.
func NewStdinSource(in *os.File) (*StdinSource, error) {
	oldState, err := term.MakeRaw(int(in.Fd()))
	if err != nil {
		return nil, fmt.Errorf("failed to enter raw mode: %w", err)
	}
	return &StdinSource{
		in:       in,
		oldState: oldState,
		events:   make(chan KeyEvent, 16),
	}, nil
}

// Events returns the channel decoded key presses are delivered on. The
// channel is closed when the input stream ends.
func (s *StdinSource) Events() <-chan KeyEvent {
	return s.events
}

// Run reads and decodes input until EOF or a read error. It is meant to
// run in its own goroutine.
func (s *StdinSource) Run() {
	defer close(s.events)

	buf := make([]byte, 1)
	pendingAlt := false
	for {
		// Raw-mode reads fail when the terminal goes away; either way
		// the source is done.
		if _, err := s.in.Read(buf); err != nil {
			return
		}

		b := buf[0]
		if b == 0x1b && !pendingAlt {
			pendingAlt = true
			continue
		}

		ev := decodeByte(b)
		if pendingAlt {
			ev.Mods |= ModAlt
			pendingAlt = false
		}
		s.events <- ev
	}
}

// Restore returns the terminal to its pre-raw state.
func (s *StdinSource) Restore() error {
	return term.Restore(int(s.in.Fd()), s.oldState)
}

// decodeByte maps a raw byte to a key event. Control characters below
// 0x20 are Ctrl chords over their letter.
func decodeByte(b byte) KeyEvent {
	if b < 0x20 && b != '\t' && b != '\r' && b != '\n' {
		return KeyEvent{Key: rune(b + 'a' - 1), Mods: ModCtrl}
	}
	if b >= 'A' && b <= 'Z' {
		return KeyEvent{Key: rune(b + 'a' - 'A'), Mods: ModShift}
	}
	return KeyEvent{Key: rune(b)}
}
