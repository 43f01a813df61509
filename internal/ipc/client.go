package ipc

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"
	"time"

	"github.com/1broseidon/fbtile/internal/runtimepath"
)

// Client handles IPC communication with the daemon
type Client struct {
	socketPath string
	timeout    time.Duration
}

// NewClient creates a new IPC client
func NewClient() *Client {
	socketPath, err := runtimepath.SocketPath()
	if err != nil {
		// Keep constructor non-failing; sendRequest surfaces connection errors.
		socketPath = ""
	}

	return &Client{
		socketPath: socketPath,
		timeout:    5 * time.Second,
	}
}

// sendRequest sends a request and waits for a response
func (c *Client) sendRequest(req *Request) (*Response, error) {
	// Connect to socket
	conn, err := net.DialTimeout("unix", c.socketPath, c.timeout)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to daemon: %w (is the daemon running?)", err)
	}
	defer conn.Close()

	// Set deadline
	conn.SetDeadline(time.Now().Add(c.timeout))

	// Marshal request
	reqData, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	// Send request
	reqData = append(reqData, '\n')
	if _, err := conn.Write(reqData); err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	// Read response
	reader := bufio.NewReader(conn)
	respData, err := reader.ReadBytes('\n')
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	// Parse response
	var resp Response
	if err := json.Unmarshal(respData, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	// Check for error response
	if resp.Status == "ERROR" {
		return nil, fmt.Errorf("daemon error: %s", resp.Error)
	}

	return &resp, nil
}

// GetStatus retrieves daemon status
func (c *Client) GetStatus() (*StatusData, error) {
	req := &Request{
		Command: CommandGetStatus,
	}

	resp, err := c.sendRequest(req)
	if err != nil {
		return nil, err
	}

	var status StatusData
	if err := json.Unmarshal(resp.Data, &status); err != nil {
		return nil, fmt.Errorf("failed to parse status data: %w", err)
	}

	return &status, nil
}

// AddWindow asks the daemon to open a new window with the given title.
func (c *Client) AddWindow(title string) error {
	payload, err := json.Marshal(AddWindowPayload{Title: title})
	if err != nil {
		return fmt.Errorf("failed to marshal add payload: %w", err)
	}

	req := &Request{
		Command: CommandAddWindow,
		Payload: payload,
	}

	_, err = c.sendRequest(req)
	return err
}

// CloseWindow asks the daemon to close the focused window.
func (c *Client) CloseWindow() error {
	req := &Request{
		Command: CommandCloseWindow,
	}

	_, err := c.sendRequest(req)
	return err
}

// CycleFocus moves focus in the given direction ("next" or "prev").
func (c *Client) CycleFocus(direction string) error {
	payload, err := json.Marshal(CycleFocusPayload{Direction: direction})
	if err != nil {
		return fmt.Errorf("failed to marshal focus payload: %w", err)
	}

	req := &Request{
		Command: CommandCycleFocus,
		Payload: payload,
	}

	_, err = c.sendRequest(req)
	return err
}

// CycleLayout advances the active workspace to the next layout variant.
func (c *Client) CycleLayout() error {
	req := &Request{
		Command: CommandCycleLayout,
	}

	_, err := c.sendRequest(req)
	return err
}

// ListLayouts retrieves the layout cycle order and current selection.
func (c *Client) ListLayouts() (*LayoutsData, error) {
	req := &Request{
		Command: CommandListLayouts,
	}

	resp, err := c.sendRequest(req)
	if err != nil {
		return nil, err
	}

	var data LayoutsData
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		return nil, fmt.Errorf("failed to parse layouts data: %w", err)
	}

	return &data, nil
}

// Ping checks if the daemon is responding
func (c *Client) Ping() error {
	_, err := c.GetStatus()
	return err
}
