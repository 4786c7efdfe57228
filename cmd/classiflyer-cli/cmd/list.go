package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"classiflyer/internal/application/commands"
)

var listCmd = &cobra.Command{
	Use:   "list [active|archived|folders|trash]",
	Short: "List binders, archive folders, or the trash",
	Long: `List the contents of one zone.

Examples:
  classiflyer-cli list
  classiflyer-cli list archived
  classiflyer-cli list folders
  classiflyer-cli list trash`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		zone := "active"
		if len(args) == 1 {
			zone = args[0]
		}

		switch zone {
		case "active":
			entries, err := commands.NewListBindersCommand(GetStore()).Execute(ctx)
			if err != nil {
				return err
			}
			for _, e := range entries {
				fmt.Printf("%s  %s  %s\n", e.ID, e.Name, e.AppPath)
			}

		case "archived":
			entries, err := commands.NewListArchivedBindersCommand(GetStore()).Execute(ctx)
			if err != nil {
				return err
			}
			for _, e := range entries {
				fmt.Printf("%s  %s  %s\n", e.ID, e.Name, e.AppPath)
			}

		case "folders":
			folders, err := commands.NewListArchiveFoldersCommand(GetStore()).Execute(ctx)
			if err != nil {
				return err
			}
			for _, f := range folders {
				parent := "root"
				if f.ParentID != nil {
					parent = *f.ParentID
				}
				fmt.Printf("%s  %s  (parent: %s)\n", f.ID, f.Name, parent)
			}

		case "trash":
			listings, err := commands.NewListTrashCommand(GetStore()).Execute(ctx)
			if err != nil {
				return err
			}
			for _, l := range listings {
				name := ""
				switch {
				case l.Binder != nil:
					name = l.Binder.Name
				case l.Folder != nil:
					name = l.Folder.Name + "/"
				}
				fmt.Printf("%s  %s  (from %s)\n", l.ID, name, l.DeletedFrom)
			}

		default:
			return fmt.Errorf("unknown zone: %s (expected active, archived, folders, or trash)", zone)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
