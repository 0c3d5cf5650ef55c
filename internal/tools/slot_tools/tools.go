package slot_tools

import (
	"context"
	"fmt"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/meetfinder/internal/calendar"
	"github.com/teemow/meetfinder/internal/google"
	"github.com/teemow/meetfinder/internal/server"
)

// getCalendarClient retrieves or creates a calendar client for the specified account
func getCalendarClient(ctx context.Context, account string, sc *server.ServerContext) (*calendar.Client, error) {
	client := sc.CalendarClientForAccount(account)
	if client == nil {
		// Check if token exists before trying to create client
		if !calendar.HasTokenForAccount(account) {
			return nil, fmt.Errorf("%s", google.GetAuthenticationErrorMessage(account))
		}

		var err error
		client, err = calendar.NewClientForAccount(ctx, account)
		if err != nil {
			return nil, fmt.Errorf("failed to create Calendar client for account %s: %w", account, err)
		}
		sc.SetCalendarClientForAccount(account, client)
	}
	return client, nil
}

// RegisterSlotTools registers all slot-finding tools with the MCP server
func RegisterSlotTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	if err := RegisterFindTools(s, sc); err != nil {
		return fmt.Errorf("failed to register find tools: %w", err)
	}

	if err := RegisterFreeBusyTools(s, sc); err != nil {
		return fmt.Errorf("failed to register freebusy tools: %w", err)
	}

	return nil
}
