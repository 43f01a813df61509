// Package mcp exposes the window manager's operations as MCP tools over
// stdio, backed by the daemon's IPC socket.
package mcp

import (
	"context"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/fbtile/internal/ipc"
)

const (
	ServerName    = "fbtile"
	ServerVersion = "0.1.0"
)

// Conn is the daemon connection used by tool handlers. *ipc.Client
// implements it; tests substitute a fake.
type Conn interface {
	GetStatus() (*ipc.StatusData, error)
	AddWindow(title string) error
	CloseWindow() error
	CycleFocus(direction string) error
	CycleLayout() error
	ListLayouts() (*ipc.LayoutsData, error)
}

// Server is the MCP server bridging tools to the running daemon.
type Server struct {
	mcpServer *mcpsdk.Server
	conn      Conn
}

// NewServer creates an MCP server talking to the daemon over conn.
func NewServer(conn Conn) *Server {
	s := &Server{conn: conn}

	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)

	s.registerTools()
	return s
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "get_status",
		Description: "Get the window manager's current state: active workspace, window count, focused index, active layout and window titles.",
	}, s.handleGetStatus)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "add_window",
		Description: "Open a new window in the active workspace. Silently does nothing when the workspace already holds 6 windows. The new window takes focus.",
	}, s.handleAddWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "close_window",
		Description: "Close the focused window in the active workspace. Remaining windows keep their order; focus moves to the previous slot when the last window was focused.",
	}, s.handleCloseWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "cycle_focus",
		Description: "Move focus to the next or previous window in the active workspace, wrapping around at the ends.",
	}, s.handleCycleFocus)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "cycle_layout",
		Description: "Switch the active workspace to the next layout variant: horizontal, vertical, grid, fullscreen, master-stack.",
	}, s.handleCycleLayout)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_layouts",
		Description: "List the layout variants in cycle order and report which one the active workspace is using.",
	}, s.handleListLayouts)
}
