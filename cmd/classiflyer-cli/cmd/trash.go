package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"classiflyer/internal/application/commands"
	"classiflyer/internal/domain"
)

var trashCmd = &cobra.Command{
	Use:   "trash <id>",
	Short: "Move a binder or archive folder to the trash",
	Long: `Move a binder, or an archive folder together with everything
placed in it, to the trash. Trashed entries can be restored until the
trash is purged.

Examples:
  classiflyer-cli trash classeur_1
  classiflyer-cli trash archive_folder_2`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]
		ctx := context.Background()

		switch domain.ParseKeyType(id) {
		case domain.KeyTypeBinder:
			result, err := commands.NewTrashCommand(GetStore(), id).Execute(ctx)
			if err != nil {
				return err
			}
			fmt.Println(result.Message)

		case domain.KeyTypeArchiveFolder:
			result, err := commands.NewTrashArchiveFolderCommand(GetStore(), id).Execute(ctx)
			if err != nil {
				return err
			}
			fmt.Println(result.Message)

		default:
			return fmt.Errorf("cannot trash %s: expected binder or archive folder key", id)
		}
		return nil
	},
}

var restoreCmd = &cobra.Command{
	Use:   "restore <id>",
	Short: "Restore a trash entry to its origin zone",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewRestoreCommand(GetStore(), args[0]).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var purgeCmd = &cobra.Command{
	Use:   "purge [id]",
	Short: "Permanently delete trash entries",
	Long: `Permanently delete one trash entry, or the whole trash when no
key is given. This cannot be undone.

Examples:
  classiflyer-cli purge classeur_1
  classiflyer-cli purge`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		if len(args) == 1 {
			result, err := commands.NewPurgeOneCommand(GetStore(), args[0]).Execute(ctx)
			if err != nil {
				return err
			}
			fmt.Println(result.Message)
			return nil
		}

		result, err := commands.NewPurgeAllCommand(GetStore()).Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(trashCmd)
	rootCmd.AddCommand(restoreCmd)
	rootCmd.AddCommand(purgeCmd)
}
