package server

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/meetfinder/internal/mcp/oauth"
)

// OAuthHTTPServer wraps the streamable HTTP MCP transport with OAuth 2.1
// bearer token authentication. It serves RFC 9728 Protected Resource
// Metadata so MCP clients can discover how to authorize.
type OAuthHTTPServer struct {
	mcpServer     *mcpserver.MCPServer
	oauthHandler  *oauth.Handler
	healthChecker *HealthChecker
	httpServer    *http.Server
}

// NewOAuthHTTPServer creates a new OAuth-protected HTTP server for MCP.
// The health checker is optional; when set its endpoints are served
// unauthenticated alongside the protected /mcp endpoint.
func NewOAuthHTTPServer(mcpServer *mcpserver.MCPServer, oauthHandler *oauth.Handler, healthChecker *HealthChecker) *OAuthHTTPServer {
	return &OAuthHTTPServer{
		mcpServer:     mcpServer,
		oauthHandler:  oauthHandler,
		healthChecker: healthChecker,
	}
}

// Start starts the OAuth-protected HTTP server. Blocks until the server
// stops.
func (s *OAuthHTTPServer) Start(addr string) error {
	mux := http.NewServeMux()

	// Protected Resource Metadata endpoint (RFC 9728). Unauthenticated so
	// clients can discover the authorization server after a 401.
	mux.HandleFunc("/.well-known/oauth-protected-resource", s.oauthHandler.ServeProtectedResourceMetadata)

	// Health endpoints stay unauthenticated so orchestrators can reach them.
	if s.healthChecker != nil {
		s.healthChecker.RegisterHealthEndpoints(mux)
	}

	streamableServer := mcpserver.NewStreamableHTTPServer(s.mcpServer,
		mcpserver.WithEndpointPath("/mcp"),
	)

	mcpHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		streamableServer.ServeHTTP(w, r)
	})
	mux.Handle("/mcp", s.oauthHandler.ValidateGoogleToken(mcpHandler))

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server and the OAuth handler's
// background services.
func (s *OAuthHTTPServer) Shutdown(ctx context.Context) error {
	if s.oauthHandler != nil {
		s.oauthHandler.Stop()
	}

	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

// ValidateHTTPSRequirement ensures OAuth 2.1 HTTPS compliance for the
// externally visible base URL. HTTP is allowed only for loopback addresses.
func ValidateHTTPSRequirement(baseURL string) error {
	if baseURL == "" {
		return fmt.Errorf("base URL cannot be empty")
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}

	if u.Scheme == "http" {
		host := u.Hostname()
		if host != "localhost" && host != "127.0.0.1" && host != "::1" {
			return fmt.Errorf("OAuth 2.1 requires HTTPS for production (got: %s). Use HTTPS or localhost for development", baseURL)
		}
	} else if u.Scheme != "https" {
		return fmt.Errorf("invalid URL scheme: %s. Must be http (localhost only) or https", u.Scheme)
	}

	return nil
}
