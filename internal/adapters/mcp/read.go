package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"classiflyer/internal/application/commands"
	"classiflyer/internal/domain"
	"classiflyer/internal/ports"
)

// RegisterReadTools adds all read-only tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, store ports.Store, index ports.SearchIndex) {
	s.AddTool(listTool(), listHandler(store))
	s.AddTool(showTool(), showHandler(store))
	s.AddTool(searchTool(), searchHandler(store, index))
	s.AddTool(readFileTool(), readFileHandler(store))
}

// --- list ---

func listTool() mcp.Tool {
	return mcp.NewTool("list",
		mcp.WithDescription("List binders and folders. The zone selects what to list: active binders, archived binders, archive folders, or the trash."),
		mcp.WithString("zone",
			mcp.Description("One of: active (default), archived, folders, trash."),
		),
	)
}

func listHandler(store ports.Store) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		zone := req.GetString("zone", "active")

		switch zone {
		case "active":
			entries, err := commands.NewListBindersCommand(store).Execute(ctx)
			if err != nil {
				return toolError(err)
			}
			return formatEntities(entries, formatBinderEntry)

		case "archived":
			entries, err := commands.NewListArchivedBindersCommand(store).Execute(ctx)
			if err != nil {
				return toolError(err)
			}
			return formatEntities(entries, formatBinderEntry)

		case "folders":
			folders, err := commands.NewListArchiveFoldersCommand(store).Execute(ctx)
			if err != nil {
				return toolError(err)
			}
			return formatEntities(folders, formatArchiveFolder)

		case "trash":
			listings, err := commands.NewListTrashCommand(store).Execute(ctx)
			if err != nil {
				return toolError(err)
			}
			return formatEntities(listings, formatTrashListing)

		default:
			return toolError(fmt.Errorf("invalid zone: %s (expected active, archived, folders, or trash)", zone))
		}
	}
}

// --- show ---

func showTool() mcp.Tool {
	return mcp.NewTool("show",
		mcp.WithDescription("Show one binder with its full folder and file tree."),
		mcp.WithString("id",
			mcp.Description("Binder key (e.g. classeur_3)"),
			mcp.Required(),
		),
	)
}

func showHandler(store ports.Store) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := req.GetString("id", "")
		if id == "" {
			return toolError(fmt.Errorf("id is required"))
		}

		entry, err := commands.NewShowBinderCommand(store, id).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "%s  %s  (%s)\n", entry.ID, entry.Name, entry.AppPath)
		for _, file := range entry.Files {
			fmt.Fprintf(&sb, "  %s  %s\n", file.ID, file.Name)
		}
		renderFolders(&sb, entry.Folders, "  ")
		return mcp.NewToolResultText(sb.String()), nil
	}
}

func renderFolders(sb *strings.Builder, folders map[string]*domain.Folder, prefix string) {
	for id, folder := range folders {
		fmt.Fprintf(sb, "%s%s  %s/\n", prefix, id, folder.Name)
		for fileID, file := range folder.Files {
			fmt.Fprintf(sb, "%s  %s  %s\n", prefix, fileID, file.Name)
		}
		renderFolders(sb, folder.Folders, prefix+"  ")
	}
}

// --- search ---

func searchTool() mcp.Tool {
	return mcp.NewTool("search",
		mcp.WithDescription("Search binders, folders, and files by name. Returns matches with their keys and zones."),
		mcp.WithString("query",
			mcp.Description("Search query, at least two characters"),
			mcp.Required(),
		),
	)
}

func searchHandler(store ports.Store, index ports.SearchIndex) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := req.GetString("query", "")
		if query == "" {
			return toolError(fmt.Errorf("query is required"))
		}

		// The cache is derived: rebuild from the current document so a
		// search never reflects stale state.
		doc, err := store.Snapshot(ctx)
		if err != nil {
			return toolError(err)
		}
		if _, err := index.SyncFull(doc); err != nil {
			return toolError(err)
		}

		results, err := commands.NewSearchCommand(index, query).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(results) == 0 {
			return mcp.NewToolResultText("No results found."), nil
		}

		var sb strings.Builder
		for _, r := range results {
			fmt.Fprintf(&sb, "%s  %s  [%s, %s]\n", r.EntityID, r.Name, r.Kind, r.Zone)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- read_file ---

func readFileTool() mcp.Tool {
	return mcp.NewTool("read_file",
		mcp.WithDescription("Read a managed file. Text files come back as text, anything else as a base64 data URL."),
		mcp.WithString("path",
			mcp.Description("The file's sys path, as returned by show or search"),
			mcp.Required(),
		),
	)
}

func readFileHandler(store ports.Store) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path := req.GetString("path", "")
		if path == "" {
			return toolError(fmt.Errorf("path is required"))
		}

		result, err := commands.NewReadFileCommand(store, path).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		if strings.HasPrefix(result.Mime, "text/") {
			return mcp.NewToolResultText(string(result.Data)), nil
		}
		return mcp.NewToolResultText(domain.DataURL(path, result.Data)), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatEntities[T any](entities []T, format func(T) string) (*mcp.CallToolResult, error) {
	if len(entities) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}
	var sb strings.Builder
	for _, e := range entities {
		sb.WriteString(format(e))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func formatBinderEntry(e domain.BinderEntry) string {
	return fmt.Sprintf("%s  %s  (%s)", e.ID, e.Name, e.AppPath)
}

func formatArchiveFolder(f *domain.ArchiveFolder) string {
	parent := "root"
	if f.ParentID != nil {
		parent = *f.ParentID
	}
	return fmt.Sprintf("%s  %s  (parent: %s)", f.ID, f.Name, parent)
}

func formatTrashListing(l domain.TrashListing) string {
	name := ""
	switch {
	case l.Binder != nil:
		name = l.Binder.Name
	case l.Folder != nil:
		name = l.Folder.Name + "/"
	}
	return fmt.Sprintf("%s  %s  (from %s)", l.ID, name, l.DeletedFrom)
}
