package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	registerCollectionsResource(srv, svc)
	registerModulesResource(srv, svc)
	registerStatsResource(srv, svc)
	registerCollectionTemplate(srv, svc)
	registerRecordTemplate(srv, svc)
}

func registerCollectionsResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"deck://collections",
		"Collections",
		mcp.WithResourceDescription("All record collections with counts."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		summaries, err := svc.ListCollections(ctx)
		if err != nil {
			return nil, err
		}

		payload := map[string]any{
			"collections": summaries,
			"count":       len(summaries),
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

func registerModulesResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"deck://modules",
		"Modules",
		mcp.WithResourceDescription("Window kinds the dashboard can open."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		mods := svc.ListModules(ctx)
		return encodeResourceJSON(request.Params.URI, map[string]any{
			"modules": mods,
			"count":   len(mods),
		})
	})
}

func registerStatsResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"deck://stats",
		"Productivity",
		mcp.WithResourceDescription("Journal, to-do, goal and study totals."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		st, err := svc.Stats(ctx, "")
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, st)
	})
}

func registerCollectionTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"deck://collections/{name}",
		"Collection Records",
		mcp.WithTemplateDescription("Records that belong to a collection."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		name, _ := request.Params.Arguments["name"].(string)
		if name == "" {
			return nil, fmt.Errorf("collection name is required")
		}

		all, err := svc.ListRecords(ctx, name)
		if err != nil {
			return nil, err
		}

		payload := map[string]any{
			"collection": name,
			"count":      len(all),
			"records":    all,
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

func registerRecordTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"deck://records/{id}",
		"Record Details",
		mcp.WithTemplateDescription("A single record from any collection."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		id, _ := request.Params.Arguments["id"].(string)
		if id == "" {
			return nil, fmt.Errorf("record id is required")
		}

		dto, err := svc.RecordByID(ctx, id)
		if err != nil {
			return nil, err
		}

		payload := map[string]any{
			"record": dto,
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
