package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"classiflyer/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change the configured root",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the configured root path",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(config.RootPath())
		return nil
	},
}

var configSetRootCmd = &cobra.Command{
	Use:   "set-root <path>",
	Short: "Change the root and bootstrap it",
	Long: `Point the tool at a different root directory. The directory is
created and bootstrapped if needed; existing content is never touched.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.SetRootPath(args[0]); err != nil {
			return err
		}
		fmt.Printf("Root set to %s\n", args[0])
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetRootCmd)
	rootCmd.AddCommand(configCmd)
}
