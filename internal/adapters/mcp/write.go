package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"classiflyer/internal/application/commands"
	"classiflyer/internal/domain"
	"classiflyer/internal/ports"
)

// RegisterWriteTools adds all mutating tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, store ports.Store) {
	s.AddTool(createTool(), createHandler(store))
	s.AddTool(createFolderTool(), createFolderHandler(store))
	s.AddTool(createArchiveFolderTool(), createArchiveFolderHandler(store))
	s.AddTool(uploadTool(), uploadHandler(store))
	s.AddTool(renameTool(), renameHandler(store))
	s.AddTool(setColorsTool(), setColorsHandler(store))
	s.AddTool(archiveTool(), archiveHandler(store))
	s.AddTool(unarchiveTool(), unarchiveHandler(store))
	s.AddTool(moveTool(), moveHandler(store))
	s.AddTool(trashTool(), trashHandler(store))
	s.AddTool(restoreTool(), restoreHandler(store))
	s.AddTool(purgeTool(), purgeHandler(store))
	s.AddTool(deleteTool(), deleteHandler(store))
}

func optionalKey(req mcp.CallToolRequest, name string) *string {
	if v := req.GetString(name, ""); v != "" {
		return &v
	}
	return nil
}

func colorsFromRequest(req mcp.CallToolRequest) domain.Colors {
	return domain.Colors{
		Primary:   req.GetString("primary_color", ""),
		Secondary: req.GetString("secondary_color", ""),
		Tertiary:  req.GetString("tertiary_color", ""),
	}
}

// --- create ---

func createTool() mcp.Tool {
	return mcp.NewTool("create",
		mcp.WithDescription("Create a binder in the active zone. With source_path, imports an existing directory instead of starting empty."),
		mcp.WithString("name",
			mcp.Description("Binder name"),
			mcp.Required(),
		),
		mcp.WithString("source_path",
			mcp.Description("Directory to import as the binder's content. Omit to create an empty binder."),
		),
		mcp.WithString("primary_color", mcp.Description("Primary display color, e.g. #0ea5e9")),
		mcp.WithString("secondary_color", mcp.Description("Secondary display color")),
		mcp.WithString("tertiary_color", mcp.Description("Tertiary display color")),
	)
}

func createHandler(store ports.Store) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name := req.GetString("name", "")
		colors := colorsFromRequest(req)

		if source := req.GetString("source_path", ""); source != "" {
			result, err := commands.NewCreateBinderFromFolderCommand(store, name, colors, source).Execute(ctx)
			if err != nil {
				return toolError(err)
			}
			return mcp.NewToolResultText(result.Message), nil
		}

		result, err := commands.NewCreateBinderCommand(store, name, colors).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- create_folder ---

func createFolderTool() mcp.Tool {
	return mcp.NewTool("create_folder",
		mcp.WithDescription("Create a folder inside a binder, optionally nested under another folder."),
		mcp.WithString("binder_id",
			mcp.Description("Binder key (e.g. classeur_3)"),
			mcp.Required(),
		),
		mcp.WithString("name",
			mcp.Description("Folder name"),
			mcp.Required(),
		),
		mcp.WithString("parent_folder_id",
			mcp.Description("Parent folder key. Omit to create at the binder root."),
		),
	)
}

func createFolderHandler(store ports.Store) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewCreateFolderCommand(store,
			req.GetString("binder_id", ""),
			req.GetString("name", ""),
			optionalKey(req, "parent_folder_id"))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- create_archive_folder ---

func createArchiveFolderTool() mcp.Tool {
	return mcp.NewTool("create_archive_folder",
		mcp.WithDescription("Create an archive folder for grouping archived binders, optionally nested under another archive folder."),
		mcp.WithString("name",
			mcp.Description("Folder name"),
			mcp.Required(),
		),
		mcp.WithString("parent_id",
			mcp.Description("Parent archive folder key. Omit to create at the archive root."),
		),
	)
}

func createArchiveFolderHandler(store ports.Store) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewCreateArchiveFolderCommand(store,
			req.GetString("name", ""),
			optionalKey(req, "parent_id"))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- upload ---

func uploadTool() mcp.Tool {
	return mcp.NewTool("upload",
		mcp.WithDescription("Copy external files into a binder, optionally into one of its folders. Unreadable sources are skipped."),
		mcp.WithString("binder_id",
			mcp.Description("Binder key"),
			mcp.Required(),
		),
		mcp.WithString("folder_id",
			mcp.Description("Target folder key. Omit to upload at the binder root."),
		),
		mcp.WithArray("sources",
			mcp.Description("Paths of the files to copy in"),
			mcp.Required(),
		),
	)
}

func uploadHandler(store ports.Store) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewUploadFilesCommand(store,
			req.GetString("binder_id", ""),
			optionalKey(req, "folder_id"),
			req.GetStringSlice("sources", nil))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- rename ---

func renameTool() mcp.Tool {
	return mcp.NewTool("rename",
		mcp.WithDescription("Rename a binder, an archive folder, or (with binder_id) a folder inside a binder."),
		mcp.WithString("id",
			mcp.Description("Key of the entity to rename"),
			mcp.Required(),
		),
		mcp.WithString("new_name",
			mcp.Description("The new name"),
			mcp.Required(),
		),
		mcp.WithString("binder_id",
			mcp.Description("Owning binder key, required when renaming a folder"),
		),
	)
}

func renameHandler(store ports.Store) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := req.GetString("id", "")
		newName := req.GetString("new_name", "")

		switch domain.ParseKeyType(id) {
		case domain.KeyTypeBinder:
			result, err := commands.NewRenameBinderCommand(store, id, newName).Execute(ctx)
			if err != nil {
				return toolError(err)
			}
			return mcp.NewToolResultText(result.Message), nil

		case domain.KeyTypeArchiveFolder:
			result, err := commands.NewRenameArchiveFolderCommand(store, id, newName).Execute(ctx)
			if err != nil {
				return toolError(err)
			}
			return mcp.NewToolResultText(result.Message), nil

		case domain.KeyTypeFolder:
			binderID := req.GetString("binder_id", "")
			if binderID == "" {
				return toolError(fmt.Errorf("binder_id is required to rename a folder"))
			}
			result, err := commands.NewRenameFolderCommand(store, binderID, id, newName).Execute(ctx)
			if err != nil {
				return toolError(err)
			}
			return mcp.NewToolResultText(result.Message), nil

		default:
			return toolError(fmt.Errorf("cannot rename %s: expected binder, folder, or archive folder key", id))
		}
	}
}

// --- set_colors ---

func setColorsTool() mcp.Tool {
	return mcp.NewTool("set_colors",
		mcp.WithDescription("Change a binder's display colors. Omitted colors keep their current value."),
		mcp.WithString("id",
			mcp.Description("Binder key"),
			mcp.Required(),
		),
		mcp.WithString("primary_color", mcp.Description("Primary display color")),
		mcp.WithString("secondary_color", mcp.Description("Secondary display color")),
		mcp.WithString("tertiary_color", mcp.Description("Tertiary display color")),
	)
}

func setColorsHandler(store ports.Store) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewUpdateColorsCommand(store, req.GetString("id", ""), colorsFromRequest(req))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- archive / unarchive ---

func archiveTool() mcp.Tool {
	return mcp.NewTool("archive",
		mcp.WithDescription("Move an active binder to the archived zone, optionally into an archive folder."),
		mcp.WithString("id",
			mcp.Description("Binder key"),
			mcp.Required(),
		),
		mcp.WithString("archive_folder_id",
			mcp.Description("Archive folder key. Omit to archive at the archive root."),
		),
	)
}

func archiveHandler(store ports.Store) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewArchiveCommand(store,
			req.GetString("id", ""),
			optionalKey(req, "archive_folder_id"))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

func unarchiveTool() mcp.Tool {
	return mcp.NewTool("unarchive",
		mcp.WithDescription("Move an archived binder back to the active zone."),
		mcp.WithString("id",
			mcp.Description("Binder key"),
			mcp.Required(),
		),
	)
}

func unarchiveHandler(store ports.Store) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewUnarchiveCommand(store, req.GetString("id", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- move ---

func moveTool() mcp.Tool {
	return mcp.NewTool("move",
		mcp.WithDescription("Move an archived binder into another archive folder, or to the archive root."),
		mcp.WithString("id",
			mcp.Description("Binder key"),
			mcp.Required(),
		),
		mcp.WithString("target_folder_id",
			mcp.Description("Destination archive folder key. Omit to move to the archive root."),
		),
	)
}

func moveHandler(store ports.Store) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewMoveToArchiveFolderCommand(store,
			req.GetString("id", ""),
			optionalKey(req, "target_folder_id"))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- trash / restore / purge ---

func trashTool() mcp.Tool {
	return mcp.NewTool("trash",
		mcp.WithDescription("Move a binder or an archive folder (with everything in it) to the trash."),
		mcp.WithString("id",
			mcp.Description("Binder or archive folder key"),
			mcp.Required(),
		),
	)
}

func trashHandler(store ports.Store) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := req.GetString("id", "")

		switch domain.ParseKeyType(id) {
		case domain.KeyTypeBinder:
			result, err := commands.NewTrashCommand(store, id).Execute(ctx)
			if err != nil {
				return toolError(err)
			}
			return mcp.NewToolResultText(result.Message), nil

		case domain.KeyTypeArchiveFolder:
			result, err := commands.NewTrashArchiveFolderCommand(store, id).Execute(ctx)
			if err != nil {
				return toolError(err)
			}
			return mcp.NewToolResultText(result.Message), nil

		default:
			return toolError(fmt.Errorf("cannot trash %s: expected binder or archive folder key", id))
		}
	}
}

func restoreTool() mcp.Tool {
	return mcp.NewTool("restore",
		mcp.WithDescription("Restore a trash entry to the zone it was deleted from."),
		mcp.WithString("id",
			mcp.Description("Trash entry key"),
			mcp.Required(),
		),
	)
}

func restoreHandler(store ports.Store) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewRestoreCommand(store, req.GetString("id", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

func purgeTool() mcp.Tool {
	return mcp.NewTool("purge",
		mcp.WithDescription("Permanently delete one trash entry, or the whole trash when no id is given."),
		mcp.WithString("id",
			mcp.Description("Trash entry key. Omit to empty the trash."),
		),
	)
}

func purgeHandler(store ports.Store) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if id := req.GetString("id", ""); id != "" {
			result, err := commands.NewPurgeOneCommand(store, id).Execute(ctx)
			if err != nil {
				return toolError(err)
			}
			return mcp.NewToolResultText(result.Message), nil
		}

		result, err := commands.NewPurgeAllCommand(store).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- delete ---

func deleteTool() mcp.Tool {
	return mcp.NewTool("delete",
		mcp.WithDescription("Permanently delete a binder, an archive folder, or (with binder_id) a folder inside a binder. Bypasses the trash."),
		mcp.WithString("id",
			mcp.Description("Key of the entity to delete"),
			mcp.Required(),
		),
		mcp.WithString("binder_id",
			mcp.Description("Owning binder key, required when deleting a folder"),
		),
	)
}

func deleteHandler(store ports.Store) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := req.GetString("id", "")

		switch domain.ParseKeyType(id) {
		case domain.KeyTypeBinder:
			result, err := commands.NewDeleteBinderCommand(store, id).Execute(ctx)
			if err != nil {
				return toolError(err)
			}
			return mcp.NewToolResultText(result.Message), nil

		case domain.KeyTypeArchiveFolder:
			result, err := commands.NewDeleteArchiveFolderCommand(store, id).Execute(ctx)
			if err != nil {
				return toolError(err)
			}
			return mcp.NewToolResultText(result.Message), nil

		case domain.KeyTypeFolder:
			binderID := req.GetString("binder_id", "")
			if binderID == "" {
				return toolError(fmt.Errorf("binder_id is required to delete a folder"))
			}
			result, err := commands.NewDeleteFolderCommand(store, binderID, id).Execute(ctx)
			if err != nil {
				return toolError(err)
			}
			return mcp.NewToolResultText(result.Message), nil

		default:
			return toolError(fmt.Errorf("cannot delete %s: expected binder, folder, or archive folder key", id))
		}
	}
}
