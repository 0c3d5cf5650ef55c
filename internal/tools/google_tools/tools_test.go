package google_tools

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/teemow/meetfinder/internal/server"
)

func newTestServerContext(t *testing.T) *server.ServerContext {
	t.Helper()

	sc, err := server.NewServerContext(context.Background())
	if err != nil {
		t.Fatalf("failed to create server context: %v", err)
	}
	t.Cleanup(func() { _ = sc.Shutdown() })
	return sc
}

func callToolRequest(args map[string]interface{}) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()

	if len(result.Content) == 0 {
		t.Fatal("result has no content")
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", result.Content[0])
	}
	return text.Text
}

func TestHandleGetAuthURL(t *testing.T) {
	sc := newTestServerContext(t)

	result, err := handleGetAuthURL(context.Background(), callToolRequest(map[string]interface{}{
		"account": "work",
	}), sc)
	if err != nil {
		t.Fatalf("expected no Go error, got %v", err)
	}
	if result == nil || result.IsError {
		t.Fatalf("expected success result, got %+v", result)
	}

	text := resultText(t, result)
	if !strings.Contains(text, `account "work"`) {
		t.Errorf("expected account name in result, got %q", text)
	}
	if !strings.Contains(text, "google_save_auth_code") {
		t.Errorf("expected follow-up tool name in result, got %q", text)
	}
}

func TestHandleGetAuthURL_DefaultAccount(t *testing.T) {
	sc := newTestServerContext(t)

	result, err := handleGetAuthURL(context.Background(), callToolRequest(map[string]interface{}{}), sc)
	if err != nil {
		t.Fatalf("expected no Go error, got %v", err)
	}
	if !strings.Contains(resultText(t, result), `account "default"`) {
		t.Errorf("expected default account in result, got %q", resultText(t, result))
	}
}

func TestHandleSaveAuthCode_MissingCode(t *testing.T) {
	sc := newTestServerContext(t)

	result, err := handleSaveAuthCode(context.Background(), callToolRequest(map[string]interface{}{}), sc)
	if err != nil {
		t.Fatalf("expected no Go error, got %v", err)
	}
	if result == nil || !result.IsError {
		t.Fatal("expected error result")
	}
	if !strings.Contains(resultText(t, result), "authCode is required") {
		t.Errorf("unexpected error text: %q", resultText(t, result))
	}
}
