package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"classiflyer/internal/application/commands"
	"classiflyer/internal/domain"
)

var (
	createFromPath  string
	createPrimary   string
	createSecondary string
	createTertiary  string
)

var createCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a binder",
	Long: `Create a binder in the active zone.

With --from, copies an existing directory into the new binder and indexes
its contents instead of starting empty.

Examples:
  classiflyer-cli create Invoices
  classiflyer-cli create Invoices --primary "#b91c1c"
  classiflyer-cli create Imported --from ~/Documents/old-papers`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		colors := domain.Colors{
			Primary:   createPrimary,
			Secondary: createSecondary,
			Tertiary:  createTertiary,
		}

		if createFromPath != "" {
			result, err := commands.NewCreateBinderFromFolderCommand(GetStore(), args[0], colors, createFromPath).Execute(ctx)
			if err != nil {
				return err
			}
			fmt.Println(result.Message)
			return nil
		}

		result, err := commands.NewCreateBinderCommand(GetStore(), args[0], colors).Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var archiveFolderParent string

var createArchiveFolderCmd = &cobra.Command{
	Use:   "create-archive-folder <name>",
	Short: "Create an archive folder",
	Long: `Create a folder for grouping archived binders.

Examples:
  classiflyer-cli create-archive-folder Closed
  classiflyer-cli create-archive-folder Q1 --parent archive_folder_1`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var parent *string
		if archiveFolderParent != "" {
			parent = &archiveFolderParent
		}

		result, err := commands.NewCreateArchiveFolderCommand(GetStore(), args[0], parent).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&createFromPath, "from", "", "directory to import as the binder's content")
	createCmd.Flags().StringVar(&createPrimary, "primary", "", "primary display color")
	createCmd.Flags().StringVar(&createSecondary, "secondary", "", "secondary display color")
	createCmd.Flags().StringVar(&createTertiary, "tertiary", "", "tertiary display color")
	rootCmd.AddCommand(createCmd)

	createArchiveFolderCmd.Flags().StringVar(&archiveFolderParent, "parent", "", "parent archive folder key")
	rootCmd.AddCommand(createArchiveFolderCmd)
}
