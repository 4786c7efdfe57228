package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"classiflyer/internal/application/commands"
	"classiflyer/internal/domain"
)

var deleteBinderFlag string

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Permanently delete an entity, bypassing the trash",
	Long: `Permanently delete a binder, an archive folder with everything in
it, or (with --binder) a folder inside a binder. This cannot be undone.

Examples:
  classiflyer-cli delete classeur_1
  classiflyer-cli delete archive_folder_2
  classiflyer-cli delete dossier_3 --binder classeur_1`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]
		ctx := context.Background()

		switch domain.ParseKeyType(id) {
		case domain.KeyTypeBinder:
			result, err := commands.NewDeleteBinderCommand(GetStore(), id).Execute(ctx)
			if err != nil {
				return err
			}
			fmt.Println(result.Message)

		case domain.KeyTypeArchiveFolder:
			result, err := commands.NewDeleteArchiveFolderCommand(GetStore(), id).Execute(ctx)
			if err != nil {
				return err
			}
			fmt.Println(result.Message)

		case domain.KeyTypeFolder:
			if deleteBinderFlag == "" {
				return fmt.Errorf("--binder is required to delete a folder")
			}
			result, err := commands.NewDeleteFolderCommand(GetStore(), deleteBinderFlag, id).Execute(ctx)
			if err != nil {
				return err
			}
			fmt.Println(result.Message)

		default:
			return fmt.Errorf("cannot delete %s: expected binder, folder, or archive folder key", id)
		}
		return nil
	},
}

func init() {
	deleteCmd.Flags().StringVar(&deleteBinderFlag, "binder", "", "owning binder key, for folder deletes")
	rootCmd.AddCommand(deleteCmd)
}
