// Package input maps keyboard chords to window manager actions.
package input

import (
	"fmt"
	"strings"
)

// Modifier is a bitmask of held modifier keys.
type Modifier uint8

const (
	ModAlt Modifier = 1 << iota
	ModCtrl
	ModShift
)

// KeyEvent is one decoded key press.
type KeyEvent struct {
	Key  rune
	Mods Modifier
}

type binding struct {
	key  rune
	mods Modifier
}

// Dispatcher routes key events to registered actions. It is not safe for
// concurrent use; the daemon loop is its only caller.
type Dispatcher struct {
	actions map[binding]func()
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{actions: make(map[binding]func())}
}

// Register binds a chord like "alt+n" or "ctrl+shift+q" to an action.
// The last chord component is the key, everything before it a modifier.
func (d *Dispatcher) Register(chord string, action func()) error {
	b, err := parseChord(chord)
	if err != nil {
		return fmt.Errorf("failed to register %q: %w", chord, err)
	}
	d.actions[b] = action
	return nil
}

// Dispatch runs the action bound to ev, if any. It reports whether a
// binding matched.
func (d *Dispatcher) Dispatch(ev KeyEvent) bool {
	action, ok := d.actions[binding{key: ev.Key, mods: ev.Mods}]
	if !ok {
		return false
	}
	action()
	return true
}

func parseChord(chord string) (binding, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(chord)), "+")
	if len(parts) == 0 || parts[0] == "" {
		return binding{}, fmt.Errorf("empty chord")
	}

	var b binding
	for _, part := range parts[:len(parts)-1] {
		switch part {
		case "alt":
			b.mods |= ModAlt
		case "ctrl", "control":
			b.mods |= ModCtrl
		case "shift":
			b.mods |= ModShift
		default:
			return binding{}, fmt.Errorf("unknown modifier %q", part)
		}
	}

	key := parts[len(parts)-1]
	switch key {
	case "space":
		b.key = ' '
	case "":
		return binding{}, fmt.Errorf("missing key")
	default:
		runes := []rune(key)
		if len(runes) != 1 {
			return binding{}, fmt.Errorf("unknown key %q", key)
		}
		b.key = runes[0]
	}
	return b, nil
}
