package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"classiflyer/internal/application/commands"
)

var archiveInto string

var archiveCmd = &cobra.Command{
	Use:   "archive <binder-id>",
	Short: "Archive a binder",
	Long: `Move an active binder to the archived zone, optionally into an
archive folder.

Examples:
  classiflyer-cli archive classeur_1
  classiflyer-cli archive classeur_1 --into archive_folder_2`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var into *string
		if archiveInto != "" {
			into = &archiveInto
		}

		result, err := commands.NewArchiveCommand(GetStore(), args[0], into).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var unarchiveCmd = &cobra.Command{
	Use:   "unarchive <binder-id>",
	Short: "Move an archived binder back to the active zone",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewUnarchiveCommand(GetStore(), args[0]).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var moveTarget string

var moveCmd = &cobra.Command{
	Use:   "move <binder-id>",
	Short: "Move an archived binder between archive folders",
	Long: `Move an archived binder into another archive folder, or to the
archive root when --to is omitted.

Examples:
  classiflyer-cli move classeur_1 --to archive_folder_3
  classiflyer-cli move classeur_1`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var to *string
		if moveTarget != "" {
			to = &moveTarget
		}

		result, err := commands.NewMoveToArchiveFolderCommand(GetStore(), args[0], to).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	archiveCmd.Flags().StringVar(&archiveInto, "into", "", "archive folder key")
	rootCmd.AddCommand(archiveCmd)
	rootCmd.AddCommand(unarchiveCmd)

	moveCmd.Flags().StringVar(&moveTarget, "to", "", "destination archive folder key")
	rootCmd.AddCommand(moveCmd)
}
