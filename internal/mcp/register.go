package mcp

import mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

// RegisterAllTools wires every calculator tool and resource into the MCP server.
func RegisterAllTools(s *mcpsdk.Server, state *MCPServer) {
	registerArithmeticTools(s, state)
	registerScientificTools(s, state)
	registerMemoryTools(s, state)
	registerHistoryTools(s, state)
	registerHistoryResource(s, state)
}
