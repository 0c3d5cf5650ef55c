// Package oauth protects the HTTP transport of the MCP server with Google
// OAuth bearer tokens.
//
// The server acts as an OAuth 2.0 resource server: MCP clients obtain a
// Google access token themselves and present it on every request. The
// middleware validates the token against Google's userinfo endpoint and
// caches it in a github.com/giantswarm/mcp-oauth token store keyed by the
// user's email, so the calendar tools can call the Google API on the
// caller's behalf.
//
// Protected resource metadata (RFC 9728) tells MCP clients where to find
// the authorization server. The stdio transport does not go through this
// package; it keeps using file-based tokens.
package oauth
