package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewServer crea el servidor MCP con las herramientas del inventario registradas.
func NewServer(name, version string, tm *ToolManager) *server.MCPServer {
	s := server.NewMCPServer(name, version, server.WithToolCapabilities(true))
	tm.RegisterTools(s)
	return s
}

// ServeStdio atiende peticiones MCP por stdin/stdout hasta que se cierre la entrada.
func ServeStdio(s *server.MCPServer) error {
	return server.ServeStdio(s)
}
