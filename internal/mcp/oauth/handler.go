package oauth

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/giantswarm/mcp-oauth/storage"
	"github.com/giantswarm/mcp-oauth/storage/memory"
	gcal "google.golang.org/api/calendar/v3"
)

// googleUserinfoEndpoint is where bearer tokens are validated.
const googleUserinfoEndpoint = "https://www.googleapis.com/oauth2/v2/userinfo"

// Config configures the OAuth resource server for the HTTP transport.
type Config struct {
	// Resource is the externally visible base URL of this server.
	// Required. Must use HTTPS except for loopback addresses.
	Resource string

	// SupportedScopes advertised in the protected resource metadata.
	// Defaults to the Google Calendar read-only scope.
	SupportedScopes []string

	// UserinfoEndpoint overrides Google's userinfo endpoint for token
	// validation. Defaults to the production endpoint; tests point this
	// at a local server.
	UserinfoEndpoint string

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Handler validates bearer tokens on MCP requests and serves the OAuth
// discovery metadata. Validated tokens are cached in the token store
// keyed by the user's email so calendar tools can reuse them.
type Handler struct {
	config *Config
	store  storage.TokenStore
	stop   func()
	logger *slog.Logger
}

// NewHandler creates a new OAuth handler backed by an in-memory token store.
func NewHandler(config *Config) (*Handler, error) {
	if config.Resource == "" {
		return nil, fmt.Errorf("resource is required")
	}

	parsedURL, err := url.Parse(config.Resource)
	if err != nil {
		return nil, fmt.Errorf("invalid resource URL: %w", err)
	}

	// Allow HTTP only for loopback addresses (development).
	if parsedURL.Scheme != "https" {
		hostname := parsedURL.Hostname()
		if hostname != "localhost" &&
			hostname != "127.0.0.1" &&
			hostname != "::1" &&
			hostname != "[::1]" {
			return nil, fmt.Errorf("resource must use HTTPS in production (got %s://)", parsedURL.Scheme)
		}
	}

	if len(config.SupportedScopes) == 0 {
		config.SupportedScopes = []string{gcal.CalendarReadonlyScope}
	}
	if config.UserinfoEndpoint == "" {
		config.UserinfoEndpoint = googleUserinfoEndpoint
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	store := memory.New()

	return &Handler{
		config: config,
		store:  store,
		stop:   store.Stop,
		logger: logger,
	}, nil
}

// Store returns the token store holding validated Google tokens.
func (h *Handler) Store() storage.TokenStore {
	return h.store
}

// Stop stops the token store's background cleanup.
func (h *Handler) Stop() {
	if h.stop != nil {
		h.stop()
	}
}

// ServeProtectedResourceMetadata serves the OAuth 2.0 Protected Resource
// Metadata (RFC 9728). MCP clients fetch this after a 401 to discover the
// authorization server for the /mcp endpoint.
func (h *Handler) ServeProtectedResourceMetadata(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Google is the authorization server; this server only validates the
	// resulting access tokens.
	metadata := ProtectedResourceMetadata{
		Resource:             h.config.Resource,
		AuthorizationServers: []string{"https://accounts.google.com"},
		BearerMethodsSupported: []string{
			"header", // Authorization: Bearer <token>
		},
		ScopesSupported: h.config.SupportedScopes,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(metadata); err != nil {
		h.logger.Error("failed to encode resource metadata", "error", err)
	}
}

// writeUnauthorizedError writes an OAuth error response with 401 status
func (h *Handler) writeUnauthorizedError(w http.ResponseWriter, errorCode, description string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Error:            errorCode,
		ErrorDescription: description,
	})
}
