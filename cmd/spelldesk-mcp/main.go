package main

import (
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	spelldeskmcp "github.com/spelldesk/spelldesk/internal/mcp"
)

func main() {
	s := server.NewMCPServer("spelldesk", "1.0.0")
	spelldeskmcp.RegisterTools(s)

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
