package slot_tools

import (
	"context"
	"os"
	"path/filepath"
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

func TestHandleFindEarliest_ArgumentValidation(t *testing.T) {
	sc := newTestServerContext(t)

	tests := []struct {
		name    string
		args    map[string]interface{}
		wantErr string
	}{
		{
			name:    "missing calendarsDir",
			args:    map[string]interface{}{"durationMinutes": 30.0, "minPeople": 2.0},
			wantErr: "calendarsDir is required",
		},
		{
			name:    "missing durationMinutes",
			args:    map[string]interface{}{"calendarsDir": "/tmp/calendars", "minPeople": 2.0},
			wantErr: "durationMinutes is required",
		},
		{
			name:    "negative durationMinutes",
			args:    map[string]interface{}{"calendarsDir": "/tmp/calendars", "durationMinutes": -5.0, "minPeople": 2.0},
			wantErr: "durationMinutes is required",
		},
		{
			name:    "missing minPeople",
			args:    map[string]interface{}{"calendarsDir": "/tmp/calendars", "durationMinutes": 30.0},
			wantErr: "minPeople is required",
		},
		{
			name:    "zero minPeople",
			args:    map[string]interface{}{"calendarsDir": "/tmp/calendars", "durationMinutes": 30.0, "minPeople": 0.0},
			wantErr: "minPeople is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := handleFindEarliest(context.Background(), callToolRequest(tt.args), sc)
			if err != nil {
				t.Fatalf("expected no Go error, got %v", err)
			}
			if result == nil || !result.IsError {
				t.Fatal("expected error result")
			}
			text := resultText(t, result)
			if !strings.Contains(text, tt.wantErr) {
				t.Errorf("expected error containing %q, got %q", tt.wantErr, text)
			}
		})
	}
}

func TestHandleFindEarliest_MissingDirectory(t *testing.T) {
	sc := newTestServerContext(t)

	args := map[string]interface{}{
		"calendarsDir":    filepath.Join(t.TempDir(), "does-not-exist"),
		"durationMinutes": 30.0,
		"minPeople":       1.0,
	}

	result, err := handleFindEarliest(context.Background(), callToolRequest(args), sc)
	if err != nil {
		t.Fatalf("expected no Go error, got %v", err)
	}
	if result == nil || !result.IsError {
		t.Fatal("expected error result")
	}
	if !strings.Contains(resultText(t, result), "Failed to load calendars") {
		t.Errorf("unexpected error text: %q", resultText(t, result))
	}
}

func TestHandleFindEarliest_AllFree(t *testing.T) {
	sc := newTestServerContext(t)

	// Only past busy time, so the group is free right now.
	dir := t.TempDir()
	writeCalendar(t, dir, "alice.txt", "2020-01-01 09:00:00 - 2020-01-01 10:00:00\n")
	writeCalendar(t, dir, "bob.txt", "2020-01-02\n")

	args := map[string]interface{}{
		"calendarsDir":    dir,
		"durationMinutes": 30.0,
		"minPeople":       2.0,
	}

	result, err := handleFindEarliest(context.Background(), callToolRequest(args), sc)
	if err != nil {
		t.Fatalf("expected no Go error, got %v", err)
	}
	if result == nil || result.IsError {
		t.Fatalf("expected success result, got %+v", result)
	}
	text := resultText(t, result)
	if !strings.HasPrefix(text, "Closest available slot: ") {
		t.Errorf("unexpected result text: %q", text)
	}
	if !strings.Contains(text, "Searched 2 calendar(s)") {
		t.Errorf("expected calendar count in result, got %q", text)
	}
}

func TestHandleFindEarliest_HeadcountTooLarge(t *testing.T) {
	sc := newTestServerContext(t)

	dir := t.TempDir()
	writeCalendar(t, dir, "alice.txt", "2020-01-01\n")

	args := map[string]interface{}{
		"calendarsDir":    dir,
		"durationMinutes": 30.0,
		"minPeople":       3.0,
	}

	result, err := handleFindEarliest(context.Background(), callToolRequest(args), sc)
	if err != nil {
		t.Fatalf("expected no Go error, got %v", err)
	}
	if result == nil || !result.IsError {
		t.Fatal("expected error result")
	}
	if !strings.Contains(resultText(t, result), "Failed to find a slot") {
		t.Errorf("unexpected error text: %q", resultText(t, result))
	}
}

func TestHandleParseRecord(t *testing.T) {
	sc := newTestServerContext(t)

	tests := []struct {
		name     string
		args     map[string]interface{}
		wantErr  bool
		wantText string
	}{
		{
			name:     "missing record",
			args:     map[string]interface{}{},
			wantErr:  true,
			wantText: "record is required",
		},
		{
			name:     "explicit range",
			args:     map[string]interface{}{"record": "2022-05-14 09:00:00 - 2022-05-14 10:00:00"},
			wantText: "Busy from 2022-05-14 09:00:00 to 2022-05-14 10:00:00",
		},
		{
			name:     "whole day",
			args:     map[string]interface{}{"record": "2022-05-14"},
			wantText: "Busy from 2022-05-14 00:00:00 to 2022-05-14 23:59:59",
		},
		{
			name:     "malformed record",
			args:     map[string]interface{}{"record": "not a record"},
			wantErr:  true,
			wantText: "Failed to parse record",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := handleParseRecord(context.Background(), callToolRequest(tt.args), sc)
			if err != nil {
				t.Fatalf("expected no Go error, got %v", err)
			}
			if result == nil {
				t.Fatal("expected result, got nil")
			}
			if result.IsError != tt.wantErr {
				t.Fatalf("IsError = %v, expected %v", result.IsError, tt.wantErr)
			}
			if !strings.Contains(resultText(t, result), tt.wantText) {
				t.Errorf("expected text containing %q, got %q", tt.wantText, resultText(t, result))
			}
		})
	}
}

func TestHandleFindFromGoogle_ArgumentValidation(t *testing.T) {
	sc := newTestServerContext(t)

	tests := []struct {
		name    string
		args    map[string]interface{}
		wantErr string
	}{
		{
			name:    "missing attendees",
			args:    map[string]interface{}{"durationMinutes": 30.0, "minPeople": 2.0},
			wantErr: "attendees is required",
		},
		{
			name: "missing durationMinutes",
			args: map[string]interface{}{
				"attendees": "alice@example.com,bob@example.com",
				"minPeople": 2.0,
			},
			wantErr: "durationMinutes is required",
		},
		{
			name: "missing minPeople",
			args: map[string]interface{}{
				"attendees":       "alice@example.com",
				"durationMinutes": 30.0,
			},
			wantErr: "minPeople is required",
		},
		{
			name: "malformed timeMax",
			args: map[string]interface{}{
				"attendees":       "alice@example.com",
				"durationMinutes": 30.0,
				"minPeople":       1.0,
				"timeMax":         "tomorrow",
			},
			wantErr: "Invalid timeMax format",
		},
		{
			name: "timeMax in the past",
			args: map[string]interface{}{
				"attendees":       "alice@example.com",
				"durationMinutes": 30.0,
				"minPeople":       1.0,
				"timeMax":         "2020-01-01T00:00:00Z",
			},
			wantErr: "timeMax must be in the future",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := handleFindFromGoogle(context.Background(), callToolRequest(tt.args), sc)
			if err != nil {
				t.Fatalf("expected no Go error, got %v", err)
			}
			if result == nil || !result.IsError {
				t.Fatal("expected error result")
			}
			text := resultText(t, result)
			if !strings.Contains(text, tt.wantErr) {
				t.Errorf("expected error containing %q, got %q", tt.wantErr, text)
			}
		})
	}
}

func writeCalendar(t *testing.T, dir, name, content string) {
	t.Helper()

	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write calendar file: %v", err)
	}
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
