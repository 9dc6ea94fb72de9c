package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/deck/pkg/records"
)

var collectionNames = []string{
	records.KeyNotes,
	records.KeyGoals,
	records.KeyTodos,
	records.KeyResources,
	records.KeyProductivityEntries,
	records.KeyStudySessions,
	records.KeySongs,
}

func registerTools(srv *server.MCPServer, svc *Service) {
	registerAddRecordTool(srv, svc)
	registerCompleteRecordTool(srv, svc)
	registerRemoveRecordTool(srv, svc)
	registerListRecordsTool(srv, svc)
	registerListCollectionsTool(srv, svc)
	registerSearchRecordsTool(srv, svc)
	registerGetRecordTool(srv, svc)
	registerListModulesTool(srv, svc)
	registerStatsTool(srv, svc)
}

func registerAddRecordTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"add_record",
		mcp.WithDescription("Add a record to a collection. The text becomes the note body, goal or to-do title, resource link, journal accomplishment, study subject or song title."),
		mcp.WithString("collection",
			mcp.Required(),
			mcp.Description("Collection that should hold the new record."),
			mcp.Enum(collectionNames...),
		),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Text of the new record."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Collection string `json:"collection"`
			Text       string `json:"text"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		dto, err := svc.AddRecord(ctx, args.Collection, args.Text)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerCompleteRecordTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"complete_record",
		mcp.WithDescription("Mark a goal, to-do or study session as done."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Record identifier to complete."),
		),
		mcp.WithString("collection",
			mcp.Description("Optional collection; searched when omitted."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.CompleteRecord(ctx, request.GetString("collection", ""), id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerRemoveRecordTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"remove_record",
		mcp.WithDescription("Delete a record."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Record identifier to delete."),
		),
		mcp.WithString("collection",
			mcp.Description("Optional collection; searched when omitted."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.RemoveRecord(ctx, request.GetString("collection", ""), id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{"removed": dto})
	})
}

func registerListRecordsTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_records",
		mcp.WithDescription("List records for a collection or every collection."),
		mcp.WithString("collection",
			mcp.Description("Optional collection filter."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		collection := strings.TrimSpace(request.GetString("collection", ""))
		var (
			results []RecordDTO
			err     error
		)
		if collection == "" {
			results, err = svc.ListAllRecords(ctx)
		} else {
			results, err = svc.ListRecords(ctx, collection)
		}
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"collection": collection,
			"records":    results,
			"count":      len(results),
		})
	})
}

func registerListCollectionsTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_collections",
		mcp.WithDescription("List every record collection with counts."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		summaries, err := svc.ListCollections(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"collections": summaries,
			"count":       len(summaries),
		})
	})
}

func registerSearchRecordsTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"search_records",
		mcp.WithDescription("Search records by substring match across titles and details."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Case-insensitive search text."),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of records to return (default 20)."),
			mcp.Min(1),
			mcp.Max(100),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query, err := request.RequireString("query")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		limit := request.GetInt("limit", 20)

		results, err := svc.SearchRecords(ctx, query, limit)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"query":   query,
			"limit":   limit,
			"results": results,
			"count":   len(results),
		})
	})
}

func registerGetRecordTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_record",
		mcp.WithDescription("Fetch a single record by identifier."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Record identifier to fetch."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.RecordByID(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerListModulesTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_modules",
		mcp.WithDescription("List the window kinds the dashboard can open."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		mods := svc.ListModules(ctx)
		return toJSONResult(map[string]any{
			"modules": mods,
			"count":   len(mods),
		})
	})
}

func registerStatsTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"productivity_stats",
		mcp.WithDescription("Totals across the journal, to-dos, goals and study sessions."),
		mcp.WithString("window",
			mcp.Description("Look-back for recent journal entries, e.g. 3d or 1w2d. Defaults to 1w."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		st, err := svc.Stats(ctx, request.GetString("window", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(st)
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return result, nil
}
