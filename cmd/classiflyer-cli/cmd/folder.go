package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"classiflyer/internal/application/commands"
)

var folderParent string

var folderCmd = &cobra.Command{
	Use:   "folder <binder-id> <name>",
	Short: "Create a folder inside a binder",
	Long: `Create a folder at the binder root, or nested with --parent.

Examples:
  classiflyer-cli folder classeur_1 2024
  classiflyer-cli folder classeur_1 january --parent dossier_3`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var parent *string
		if folderParent != "" {
			parent = &folderParent
		}

		result, err := commands.NewCreateFolderCommand(GetStore(), args[0], args[1], parent).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	folderCmd.Flags().StringVar(&folderParent, "parent", "", "parent folder key")
	rootCmd.AddCommand(folderCmd)
}
