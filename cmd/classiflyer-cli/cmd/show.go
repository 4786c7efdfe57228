package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"classiflyer/internal/application/commands"
	"classiflyer/internal/domain"
)

var showCmd = &cobra.Command{
	Use:   "show <binder-id>",
	Short: "Show a binder's folder and file tree",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entry, err := commands.NewShowBinderCommand(GetStore(), args[0]).Execute(context.Background())
		if err != nil {
			return err
		}

		fmt.Printf("%s  %s  %s\n", entry.ID, entry.Name, entry.AppPath)
		for _, file := range entry.Files {
			fmt.Printf("  %s  %s\n", file.ID, file.Name)
		}
		printFolders(entry.Folders, "  ")
		return nil
	},
}

func printFolders(folders map[string]*domain.Folder, prefix string) {
	for id, folder := range folders {
		fmt.Printf("%s%s  %s/\n", prefix, id, folder.Name)
		for fileID, file := range folder.Files {
			fmt.Printf("%s  %s  %s\n", prefix, fileID, file.Name)
		}
		printFolders(folder.Folders, prefix+strings.Repeat(" ", 2))
	}
}

func init() {
	rootCmd.AddCommand(showCmd)
}
