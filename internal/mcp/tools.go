package mcp

import (
	"context"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) handleGetStatus(_ context.Context, _ *mcpsdk.CallToolRequest, _ GetStatusInput) (*mcpsdk.CallToolResult, GetStatusOutput, error) {
	status, err := s.conn.GetStatus()
	if err != nil {
		return nil, GetStatusOutput{}, err
	}

	return nil, GetStatusOutput{
		ActiveWorkspace: status.ActiveWorkspace,
		WindowCount:     status.WindowCount,
		FocusedIndex:    status.FocusedIndex,
		ActiveLayout:    status.ActiveLayout,
		WindowTitles:    status.WindowTitles,
		UptimeSeconds:   status.UptimeSeconds,
	}, nil
}

func (s *Server) handleAddWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args AddWindowInput) (*mcpsdk.CallToolResult, AddWindowOutput, error) {
	if err := s.conn.AddWindow(args.Title); err != nil {
		return nil, AddWindowOutput{}, err
	}

	status, err := s.conn.GetStatus()
	if err != nil {
		return nil, AddWindowOutput{}, err
	}
	return nil, AddWindowOutput{
		WindowCount:  status.WindowCount,
		FocusedIndex: status.FocusedIndex,
	}, nil
}

func (s *Server) handleCloseWindow(_ context.Context, _ *mcpsdk.CallToolRequest, _ CloseWindowInput) (*mcpsdk.CallToolResult, CloseWindowOutput, error) {
	if err := s.conn.CloseWindow(); err != nil {
		return nil, CloseWindowOutput{}, err
	}

	status, err := s.conn.GetStatus()
	if err != nil {
		return nil, CloseWindowOutput{}, err
	}
	return nil, CloseWindowOutput{
		WindowCount:  status.WindowCount,
		FocusedIndex: status.FocusedIndex,
	}, nil
}

func (s *Server) handleCycleFocus(_ context.Context, _ *mcpsdk.CallToolRequest, args CycleFocusInput) (*mcpsdk.CallToolResult, CycleFocusOutput, error) {
	direction := args.Direction
	switch direction {
	case "":
		direction = "next"
	case "next", "prev":
	default:
		return nil, CycleFocusOutput{}, fmt.Errorf("unknown direction %q; use next or prev", direction)
	}

	if err := s.conn.CycleFocus(direction); err != nil {
		return nil, CycleFocusOutput{}, err
	}

	status, err := s.conn.GetStatus()
	if err != nil {
		return nil, CycleFocusOutput{}, err
	}
	return nil, CycleFocusOutput{FocusedIndex: status.FocusedIndex}, nil
}

func (s *Server) handleCycleLayout(_ context.Context, _ *mcpsdk.CallToolRequest, _ CycleLayoutInput) (*mcpsdk.CallToolResult, CycleLayoutOutput, error) {
	if err := s.conn.CycleLayout(); err != nil {
		return nil, CycleLayoutOutput{}, err
	}

	status, err := s.conn.GetStatus()
	if err != nil {
		return nil, CycleLayoutOutput{}, err
	}
	return nil, CycleLayoutOutput{ActiveLayout: status.ActiveLayout}, nil
}

func (s *Server) handleListLayouts(_ context.Context, _ *mcpsdk.CallToolRequest, _ ListLayoutsInput) (*mcpsdk.CallToolResult, ListLayoutsOutput, error) {
	data, err := s.conn.ListLayouts()
	if err != nil {
		return nil, ListLayoutsOutput{}, err
	}

	return nil, ListLayoutsOutput{
		Layouts:      data.Layouts,
		ActiveLayout: data.ActiveLayout,
	}, nil
}
