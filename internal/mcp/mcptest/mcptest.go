// Package mcptest provides test helpers for invoking gocalc MCP tools
// with swappable transports: in-process (fast) or subprocess (full binary).
package mcptest

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os/exec"
	"testing"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	internalmcp "github.com/mamaar/gocalc/internal/mcp"
)

// Session wraps an MCP ClientSession with cleanup logic.
type Session struct {
	*mcpsdk.ClientSession
	cancel context.CancelFunc
}

// Close tears down the session.
func (s *Session) Close() {
	_ = s.ClientSession.Close()
	if s.cancel != nil {
		s.cancel()
	}
}

// Transport selects how the MCP server is reached.
type Transport interface {
	connect(ctx context.Context) (*Session, error)
}

// Dial connects to an MCP server using the given transport.
func Dial(ctx context.Context, t testing.TB, transport Transport) *Session {
	t.Helper()
	sess, err := transport.connect(ctx)
	if err != nil {
		t.Fatalf("mcptest.Dial: connect: %v", err)
	}
	return sess
}

// Call invokes tool and decodes the JSON text of its single content block
// into out. It returns whether the tool reported an error.
func (s *Session) Call(ctx context.Context, t testing.TB, tool string, args map[string]any, out any) bool {
	t.Helper()
	if args == nil {
		args = map[string]any{}
	}
	result, err := s.CallTool(ctx, &mcpsdk.CallToolParams{Name: tool, Arguments: args})
	if err != nil {
		t.Fatalf("mcptest.Call(%s): %v", tool, err)
	}
	if len(result.Content) != 1 {
		t.Fatalf("mcptest.Call(%s): expected 1 content block, got %d", tool, len(result.Content))
	}
	text, ok := result.Content[0].(*mcpsdk.TextContent)
	if !ok {
		t.Fatalf("mcptest.Call(%s): expected text content, got %T", tool, result.Content[0])
	}
	if out != nil {
		if err := json.Unmarshal([]byte(text.Text), out); err != nil {
			t.Fatalf("mcptest.Call(%s): decode %q: %v", tool, text.Text, err)
		}
	}
	return result.IsError
}

// inProcess is the in-process transport using NewInMemoryTransports.
type inProcess struct{}

// InProcess returns a transport that runs the MCP server in-process.
func InProcess() Transport { return inProcess{} }

func (inProcess) connect(ctx context.Context) (*Session, error) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	state := internalmcp.NewMCPServer(logger)

	server := mcpsdk.NewServer(&mcpsdk.Implementation{Name: "gocalc", Version: "test"}, nil)
	internalmcp.RegisterAllTools(server, state)

	serverT, clientT := mcpsdk.NewInMemoryTransports()

	ctx, cancel := context.WithCancel(ctx)
	go func() { _ = server.Run(ctx, serverT) }()

	client := mcpsdk.NewClient(&mcpsdk.Implementation{Name: "test-client", Version: "1.0"}, nil)
	session, err := client.Connect(ctx, clientT, nil)
	if err != nil {
		cancel()
		return nil, err
	}
	return &Session{ClientSession: session, cancel: cancel}, nil
}

// subprocess is the subprocess transport using CommandTransport.
type subprocess struct {
	binPath string
}

// Subprocess returns a transport that shells out to the given gocalc-mcp binary.
func Subprocess(bin string) Transport { return subprocess{binPath: bin} }

func (sp subprocess) connect(ctx context.Context) (*Session, error) {
	ctx, cancel := context.WithCancel(ctx)
	cmd := exec.CommandContext(ctx, sp.binPath)

	client := mcpsdk.NewClient(&mcpsdk.Implementation{Name: "test-client", Version: "1.0"}, nil)
	session, err := client.Connect(ctx, &mcpsdk.CommandTransport{Command: cmd}, nil)
	if err != nil {
		cancel()
		return nil, err
	}
	return &Session{ClientSession: session, cancel: cancel}, nil
}
