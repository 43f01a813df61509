// Package wm holds the workspace store: fixed-capacity window slots per
// workspace, the active layout, and the focus index. All mutations run on
// a single goroutine (the daemon loop); there is no locking.
package wm

import (
	"github.com/1broseidon/fbtile/internal/config"
)

// Window is the metadata for one occupied slot. A Window lives and dies
// with its slot: closing it frees the slot, nothing else owns it.
type Window struct {
	Title string
	PID   uint32
	Open  bool
}

// Workspace is one independent window grouping. Windows[0..Count-1] are
// the occupied slots in tiling order; index 0 is always the first/master
// slot. Invariant: 0 <= Focused < Count whenever Count > 0. Focused is
// ignored while the workspace is empty.
type Workspace struct {
	Windows [config.MaxWindowsPerWorkspace]Window
	Count   int
	Layout  config.Layout
	Focused int
}
