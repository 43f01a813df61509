package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/1broseidon/fbtile/internal/ipc"
	"github.com/1broseidon/fbtile/internal/mcp"
)

func printMCPUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: fbtile mcp serve")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Start the MCP server on stdio transport. Tools are forwarded to the")
	fmt.Fprintln(w, "running daemon over its IPC socket.")
}

func runMCP(args []string) int {
	if len(args) == 0 {
		printMCPUsage(os.Stderr)
		return 2
	}
	if args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		printMCPUsage(os.Stdout)
		return 0
	}
	if args[0] != "serve" {
		fmt.Fprintf(os.Stderr, "Unknown mcp command: %s\n\n", args[0])
		printMCPUsage(os.Stderr)
		return 2
	}

	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() { printMCPUsage(os.Stderr) }
	if err := fs.Parse(args[1:]); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	// Logs must not pollute the stdio transport.
	log.SetOutput(os.Stderr)

	server := mcp.NewServer(ipc.NewClient())
	if err := server.Run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
