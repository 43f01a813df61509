package mcp

// GetStatusInput is the input for the get_status tool.
type GetStatusInput struct{}

// GetStatusOutput is the output for the get_status tool.
type GetStatusOutput struct {
	ActiveWorkspace int      `json:"active_workspace"`
	WindowCount     int      `json:"window_count"`
	FocusedIndex    int      `json:"focused_index"`
	ActiveLayout    string   `json:"active_layout"`
	WindowTitles    []string `json:"window_titles"`
	UptimeSeconds   int64    `json:"uptime_seconds"`
}

// AddWindowInput is the input for the add_window tool.
type AddWindowInput struct {
	Title string `json:"title,omitempty" jsonschema:"Title for the new window (default: window). Titles longer than 31 bytes are truncated."`
}

// AddWindowOutput is the output for the add_window tool.
type AddWindowOutput struct {
	WindowCount  int `json:"window_count"`
	FocusedIndex int `json:"focused_index"`
}

// CloseWindowInput is the input for the close_window tool.
type CloseWindowInput struct{}

// CloseWindowOutput is the output for the close_window tool.
type CloseWindowOutput struct {
	WindowCount  int `json:"window_count"`
	FocusedIndex int `json:"focused_index"`
}

// CycleFocusInput is the input for the cycle_focus tool.
type CycleFocusInput struct {
	Direction string `json:"direction,omitempty" jsonschema:"Direction to move focus: next or prev (default: next)"`
}

// CycleFocusOutput is the output for the cycle_focus tool.
type CycleFocusOutput struct {
	FocusedIndex int `json:"focused_index"`
}

// CycleLayoutInput is the input for the cycle_layout tool.
type CycleLayoutInput struct{}

// CycleLayoutOutput is the output for the cycle_layout tool.
type CycleLayoutOutput struct {
	ActiveLayout string `json:"active_layout"`
}

// ListLayoutsInput is the input for the list_layouts tool.
type ListLayoutsInput struct{}

// ListLayoutsOutput is the output for the list_layouts tool.
type ListLayoutsOutput struct {
	Layouts      []string `json:"layouts"`
	ActiveLayout string   `json:"active_layout"`
}
