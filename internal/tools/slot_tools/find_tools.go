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

// RegisterFindTools registers the directory-based slot search tools with the MCP server
func RegisterFindTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	// Find earliest slot tool
	findEarliestTool := mcp.NewTool("slot_find_earliest",
		mcp.WithDescription("Find the earliest time slot where enough people are free, based on calendar files in a directory"),
		mcp.WithString("calendarsDir",
			mcp.Required(),
			mcp.Description("Path to a directory of calendar files (one .txt file per person, one busy record per line)"),
		),
		mcp.WithNumber("durationMinutes",
			mcp.Required(),
			mcp.Description("Meeting duration in minutes"),
		),
		mcp.WithNumber("minPeople",
			mcp.Required(),
			mcp.Description("Minimum number of people that must be free at the same time"),
		),
	)

	s.AddTool(findEarliestTool, common.InstrumentedToolHandler("slot_find_earliest", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleFindEarliest(ctx, request, sc)
		}))

	// Parse record tool
	parseRecordTool := mcp.NewTool("slot_parse_record",
		mcp.WithDescription("Parse a single busy record and return the interval it describes"),
		mcp.WithString("record",
			mcp.Required(),
			mcp.Description("Busy record, either 'YYYY-MM-DD HH:MM:SS - YYYY-MM-DD HH:MM:SS' or a whole-day 'YYYY-MM-DD'"),
		),
	)

	s.AddTool(parseRecordTool, common.InstrumentedToolHandler("slot_parse_record", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleParseRecord(ctx, request, sc)
		}))

	return nil
}

func handleFindEarliest(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	calendarsDir, ok := args["calendarsDir"].(string)
	if !ok || calendarsDir == "" {
		return mcp.NewToolResultError("calendarsDir is required"), nil
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

	busy, err := calendar.LoadDir(calendarsDir, now)
	if metrics := sc.Metrics(); metrics != nil {
		status := instrumentation.StatusSuccess
		if err != nil {
			status = instrumentation.StatusError
		}
		metrics.RecordCalendarLoad(ctx, instrumentation.SourceDirectory, status)
	}
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to load calendars: %v", err)), nil
	}

	req := slot.Request{
		DurationMinutes: int(durationMinutes),
		MinPeople:       int(minPeople),
	}

	searchCtx, span := instrumentation.StartSpan(ctx, "slot.search",
		attribute.String(instrumentation.SpanAttrSource, instrumentation.SourceDirectory),
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
		metrics.RecordSlotSearch(searchCtx, instrumentation.SourceDirectory, status, time.Since(searchStart))
	}
	if err != nil {
		instrumentation.SetSpanError(span, err)
		return mcp.NewToolResultError(fmt.Sprintf("Failed to find a slot: %v", err)), nil
	}
	instrumentation.SetSpanSuccess(span)

	result := fmt.Sprintf("Closest available slot: %s\n\nSearched %d calendar(s) for a %d minute meeting with at least %d attendee(s) free.",
		start.Format(interval.LayoutDateTime), busy.Len(), req.DurationMinutes, req.MinPeople)

	return mcp.NewToolResultText(result), nil
}

func handleParseRecord(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	record, ok := args["record"].(string)
	if !ok || record == "" {
		return mcp.NewToolResultError("record is required"), nil
	}

	iv, err := interval.Parse(record)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to parse record: %v", err)), nil
	}

	result := fmt.Sprintf("Busy from %s to %s",
		iv.Start.Format(interval.LayoutDateTime),
		iv.End.Format(interval.LayoutDateTime))

	return mcp.NewToolResultText(result), nil
}
