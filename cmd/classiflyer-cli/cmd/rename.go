package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"classiflyer/internal/application/commands"
	"classiflyer/internal/domain"
)

var renameBinderFlag string

var renameCmd = &cobra.Command{
	Use:   "rename <id> <new-name>",
	Short: "Rename a binder, folder, or archive folder",
	Long: `Rename an entity in place. The kind is detected from the key;
renaming a folder additionally needs the owning binder via --binder.

Examples:
  classiflyer-cli rename classeur_1 Invoices2024
  classiflyer-cli rename archive_folder_2 Closed
  classiflyer-cli rename dossier_3 january --binder classeur_1`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, newName := args[0], args[1]
		ctx := context.Background()

		switch domain.ParseKeyType(id) {
		case domain.KeyTypeBinder:
			result, err := commands.NewRenameBinderCommand(GetStore(), id, newName).Execute(ctx)
			if err != nil {
				return err
			}
			fmt.Println(result.Message)

		case domain.KeyTypeArchiveFolder:
			result, err := commands.NewRenameArchiveFolderCommand(GetStore(), id, newName).Execute(ctx)
			if err != nil {
				return err
			}
			fmt.Println(result.Message)

		case domain.KeyTypeFolder:
			if renameBinderFlag == "" {
				return fmt.Errorf("--binder is required to rename a folder")
			}
			result, err := commands.NewRenameFolderCommand(GetStore(), renameBinderFlag, id, newName).Execute(ctx)
			if err != nil {
				return err
			}
			fmt.Println(result.Message)

		default:
			return fmt.Errorf("cannot rename %s: expected binder, folder, or archive folder key", id)
		}
		return nil
	},
}

var (
	colorsPrimary   string
	colorsSecondary string
	colorsTertiary  string
)

var colorsCmd = &cobra.Command{
	Use:   "colors <binder-id>",
	Short: "Change a binder's display colors",
	Long: `Change a binder's display colors. Omitted colors keep their
current value.

Examples:
  classiflyer-cli colors classeur_1 --primary "#b91c1c"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		colors := domain.Colors{
			Primary:   colorsPrimary,
			Secondary: colorsSecondary,
			Tertiary:  colorsTertiary,
		}

		result, err := commands.NewUpdateColorsCommand(GetStore(), args[0], colors).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	renameCmd.Flags().StringVar(&renameBinderFlag, "binder", "", "owning binder key, for folder renames")
	rootCmd.AddCommand(renameCmd)

	colorsCmd.Flags().StringVar(&colorsPrimary, "primary", "", "primary display color")
	colorsCmd.Flags().StringVar(&colorsSecondary, "secondary", "", "secondary display color")
	colorsCmd.Flags().StringVar(&colorsTertiary, "tertiary", "", "tertiary display color")
	rootCmd.AddCommand(colorsCmd)
}
