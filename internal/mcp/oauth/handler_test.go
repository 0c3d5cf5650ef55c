package oauth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestHandler(t *testing.T, config *Config) *Handler {
	t.Helper()

	handler, err := NewHandler(config)
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}
	t.Cleanup(handler.Stop)
	return handler
}

func TestNewHandler_ResourceValidation(t *testing.T) {
	tests := []struct {
		name        string
		resource    string
		expectError bool
	}{
		{name: "https resource", resource: "https://mcp.example.com", expectError: false},
		{name: "http localhost", resource: "http://localhost:8080", expectError: false},
		{name: "http loopback", resource: "http://127.0.0.1:8080", expectError: false},
		{name: "http production host", resource: "http://mcp.example.com", expectError: true},
		{name: "empty resource", resource: "", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, err := NewHandler(&Config{Resource: tt.resource})

			if tt.expectError {
				if err == nil {
					handler.Stop()
					t.Error("NewHandler() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewHandler() unexpected error: %v", err)
			}
			handler.Stop()
		})
	}
}

func TestNewHandler_DefaultScopes(t *testing.T) {
	handler := newTestHandler(t, &Config{Resource: "https://mcp.example.com"})

	if len(handler.config.SupportedScopes) == 0 {
		t.Fatal("NewHandler() should set default scopes")
	}
	if !strings.Contains(handler.config.SupportedScopes[0], "calendar") {
		t.Errorf("default scope = %q, want a calendar scope", handler.config.SupportedScopes[0])
	}
}

func TestHandler_ServeProtectedResourceMetadata(t *testing.T) {
	handler := newTestHandler(t, &Config{Resource: "https://mcp.example.com"})

	req := httptest.NewRequest(http.MethodGet, "/.well-known/oauth-protected-resource", nil)
	w := httptest.NewRecorder()

	handler.ServeProtectedResourceMetadata(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var metadata ProtectedResourceMetadata
	if err := json.NewDecoder(w.Body).Decode(&metadata); err != nil {
		t.Fatalf("failed to decode metadata: %v", err)
	}

	if metadata.Resource != "https://mcp.example.com" {
		t.Errorf("resource = %q, want %q", metadata.Resource, "https://mcp.example.com")
	}
	if len(metadata.AuthorizationServers) == 0 {
		t.Error("metadata should name an authorization server")
	}
	if len(metadata.BearerMethodsSupported) == 0 || metadata.BearerMethodsSupported[0] != "header" {
		t.Errorf("bearer methods = %v, want [header]", metadata.BearerMethodsSupported)
	}
}

func TestHandler_ServeProtectedResourceMetadata_MethodNotAllowed(t *testing.T) {
	handler := newTestHandler(t, &Config{Resource: "https://mcp.example.com"})

	req := httptest.NewRequest(http.MethodPost, "/.well-known/oauth-protected-resource", nil)
	w := httptest.NewRecorder()

	handler.ServeProtectedResourceMetadata(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", w.Code, http.StatusMethodNotAllowed)
	}
}
