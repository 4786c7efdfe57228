package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"classiflyer/internal/application/commands"
)

var uploadFolder string

var uploadCmd = &cobra.Command{
	Use:   "upload <binder-id> <file>...",
	Short: "Copy files into a binder",
	Long: `Copy one or more external files into a binder. Sources are copied,
never moved; unreadable sources are skipped.

Examples:
  classiflyer-cli upload classeur_1 ~/Downloads/jan.pdf
  classiflyer-cli upload classeur_1 a.pdf b.pdf --folder dossier_3`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var folder *string
		if uploadFolder != "" {
			folder = &uploadFolder
		}

		result, err := commands.NewUploadFilesCommand(GetStore(), args[0], folder, args[1:]).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var readCmd = &cobra.Command{
	Use:   "read <sys-path>",
	Short: "Print a managed file's content",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewReadFileCommand(GetStore(), args[0]).Execute(context.Background())
		if err != nil {
			return err
		}
		cmd.OutOrStdout().Write(result.Data)
		return nil
	},
}

func init() {
	uploadCmd.Flags().StringVar(&uploadFolder, "folder", "", "target folder key")
	rootCmd.AddCommand(uploadCmd)
	rootCmd.AddCommand(readCmd)
}
