// Package cmd implements the command-line interface for meetfinder.
//
// This package provides the following commands:
//   - find: Find the earliest slot where enough people are free, based on calendar files
//   - auth: Authorize Google Calendar access for an account
//   - serve: Start the MCP server to provide slot-finding tools for AI assistants
//   - version: Display version information
//   - generate-docs: Generate markdown documentation for all MCP tools
//
// The find command is the default command when no subcommand is specified.
package cmd
