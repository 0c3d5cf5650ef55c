// Package google_tools provides MCP tools for Google OAuth authentication.
//
// The tools cover the out-of-band authorization flow: fetching the
// authorization URL and exchanging the resulting code for a stored token.
// Tokens are kept per account so several Google accounts can be used side
// by side.
package google_tools
