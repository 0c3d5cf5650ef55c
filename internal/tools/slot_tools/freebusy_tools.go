package slot_tools

import (
	"context"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"go.opentelemetry.io/otel/attribute"

	"github.com/teemow/meetfinder/internal/calendar"
	"github.com/teemow/meetfinder/internal/instrumentation"
	"github.com/teemow/meetfinder/internal/interval"
	"github.com/teemow/meetfinder/internal/server"
	"github.com/teemow/meetfinder/internal/slot"
	"github.com/teemow/meetfinder/internal/tools/common"
)

// defaultSearchWindow bounds the free/busy query when no timeMax is given.
const defaultSearchWindow = 14 * 24 * time.Hour

// RegisterFreeBusyTools registers the Google Calendar backed slot search tools
// with the MCP server
func RegisterFreeBusyTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	findFromGoogleTool := mcp.NewTool("slot_find_from_google",
		mcp.WithDescription("Find the earliest time slot where enough attendees are free, based on Google Calendar free/busy data"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("attendees",
			mcp.Required(),
			mcp.Description("Comma-separated list of attendee email addresses"),
		),
		mcp.WithNumber("durationMinutes",
			mcp.Required(),
			mcp.Description("Meeting duration in minutes"),
		),
		mcp.WithNumber("minPeople",
			mcp.Required(),
			mcp.Description("Minimum number of attendees that must be free at the same time"),
		),
		mcp.WithString("timeMax",
			mcp.Description("End of the search range (RFC3339 format, default: 14 days from now)"),
		),
	)

	s.AddTool(findFromGoogleTool, common.InstrumentedToolHandlerWithService(
		"slot_find_from_google", "calendar", "freebusy", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleFindFromGoogle(ctx, request, sc)
		}))

	return nil
}

func handleFindFromGoogle(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := common.GetAccountFromArgs(args)

	attendees := common.GetAttendeesFromArgs(args)
	if len(attendees) == 0 {
		return mcp.NewToolResultError("attendees is required"), nil
	}

	durationMinutes, ok := args["durationMinutes"].(float64)
	if !ok || durationMinutes <= 0 {
		return mcp.NewToolResultError("durationMinutes is required and must be positive"), nil
	}

	minPeople, ok := args["minPeople"].(float64)
	if !ok || minPeople <= 0 {
		return mcp.NewToolResultError("minPeople is required and must be positive"), nil
	}

	now := time.Now()
	timeMax := now.Add(defaultSearchWindow)
	if timeMaxStr, ok := args["timeMax"].(string); ok && timeMaxStr != "" {
		parsed, err := time.Parse(time.RFC3339, timeMaxStr)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Invalid timeMax format: %v", err)), nil
		}
		if !parsed.After(now) {
			return mcp.NewToolResultError("timeMax must be in the future"), nil
		}
		timeMax = parsed
	}

	client, err := getCalendarClient(ctx, account, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	infos, err := client.QueryFreeBusy(now, timeMax, attendees)
	if metrics := sc.Metrics(); metrics != nil {
		status := instrumentation.StatusSuccess
		if err != nil {
			status = instrumentation.StatusError
		}
		metrics.RecordCalendarLoad(ctx, instrumentation.SourceGoogle, status)
	}
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to query free/busy: %v", err)), nil
	}

	busy := calendar.BusyMapFromFreeBusy(infos, now)

	req := slot.Request{
		DurationMinutes: int(durationMinutes),
		MinPeople:       int(minPeople),
	}

	searchCtx, span := instrumentation.StartSpan(ctx, "slot.search",
		attribute.String(instrumentation.SpanAttrSource, instrumentation.SourceGoogle),
		attribute.Int(instrumentation.SpanAttrHeadcount, req.MinPeople),
		attribute.Int(instrumentation.SpanAttrDurationMinutes, req.DurationMinutes),
	)
	defer span.End()

	searchStart := time.Now()
	start, err := slot.FindEarliest(busy, req, now)
	if metrics := sc.Metrics(); metrics != nil {
		status := instrumentation.StatusSuccess
		if err != nil {
			status = instrumentation.StatusError
		}
		metrics.RecordSlotSearch(searchCtx, instrumentation.SourceGoogle, status, time.Since(searchStart))
	}
	if err != nil {
		instrumentation.SetSpanError(span, err)
		return mcp.NewToolResultError(fmt.Sprintf("Failed to find a slot: %v", err)), nil
	}
	instrumentation.SetSpanSuccess(span)

	result := fmt.Sprintf("Closest available slot: %s\n\nChecked %d attendee calendar(s) for a %d minute meeting with at least %d attendee(s) free.",
		start.Format(interval.LayoutDateTime), len(attendees), req.DurationMinutes, req.MinPeople)

	for _, info := range infos {
		if len(info.Errors) > 0 {
			result += fmt.Sprintf("\nWarning for %s: %v", info.Calendar, info.Errors)
		}
	}

	return mcp.NewToolResultText(result), nil
}
