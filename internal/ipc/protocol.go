package ipc

import (
	"encoding/json"
	"fmt"
)

// CommandType represents different IPC command types
type CommandType string

const (
	CommandGetStatus   CommandType = "GET_STATUS"
	CommandAddWindow   CommandType = "ADD_WINDOW"
	CommandCloseWindow CommandType = "CLOSE_WINDOW"
	CommandCycleFocus  CommandType = "CYCLE_FOCUS"
	CommandCycleLayout CommandType = "CYCLE_LAYOUT"
	CommandListLayouts CommandType = "LIST_LAYOUTS"
)

// Request represents an IPC request from client to server
type Request struct {
	Command CommandType     `json:"command"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Response represents an IPC response from server to client
type Response struct {
	Status string          `json:"status"` // "OK" or "ERROR"
	Data   json.RawMessage `json:"data,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// StatusData represents the data returned by GET_STATUS
type StatusData struct {
	ActiveWorkspace int      `json:"active_workspace"`
	WindowCount     int      `json:"window_count"`
	FocusedIndex    int      `json:"focused_index"`
	ActiveLayout    string   `json:"active_layout"`
	WindowTitles    []string `json:"window_titles"`
	UptimeSeconds   int64    `json:"uptime_seconds"`
	DaemonRunning   bool     `json:"daemon_running"`
}

// AddWindowPayload represents the payload for ADD_WINDOW command
type AddWindowPayload struct {
	Title string `json:"title"`
}

// CycleFocusPayload represents the payload for CYCLE_FOCUS command
type CycleFocusPayload struct {
	Direction string `json:"direction"` // "next" or "prev"
}

type LayoutsData struct {
	Layouts      []string `json:"layouts"`
	ActiveLayout string   `json:"active_layout"`
}

// NewOKResponse creates a successful response with optional data
func NewOKResponse(data interface{}) (*Response, error) {
	var dataBytes json.RawMessage
	if data != nil {
		bytes, err := json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal response data: %w", err)
		}
		dataBytes = bytes
	}

	return &Response{
		Status: "OK",
		Data:   dataBytes,
	}, nil
}

// NewErrorResponse creates an error response with a message
func NewErrorResponse(errMsg string) *Response {
	return &Response{
		Status: "ERROR",
		Error:  errMsg,
	}
}

// ParseRequest parses a request from JSON bytes
func ParseRequest(data []byte) (*Request, error) {
	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to parse request: %w", err)
	}
	return &req, nil
}

// Marshal converts a response to JSON bytes
func (r *Response) Marshal() ([]byte, error) {
	return json.Marshal(r)
}
