package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"classiflyer/internal/application/commands"
	"classiflyer/internal/adapters/sqlite"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search binders, folders, and files by name",
	Long: `Search the hierarchy by name with fuzzy matching. The search runs
over a derived SQLite cache rebuilt from the index.

Examples:
  classiflyer-cli search invoices
  classiflyer-cli search "jan.pdf"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		index := sqlite.NewIndex()
		if err := index.Open(rootPath); err != nil {
			return fmt.Errorf("open search index: %w", err)
		}
		defer index.Close()

		doc, err := GetStore().Snapshot(ctx)
		if err != nil {
			return err
		}
		if _, err := index.SyncFull(doc); err != nil {
			return fmt.Errorf("rebuild search index: %w", err)
		}

		results, err := commands.NewSearchCommand(index, args[0]).Execute(ctx)
		if err != nil {
			return err
		}
		if len(results) == 0 {
			fmt.Println("No results.")
			return nil
		}
		for _, r := range results {
			fmt.Printf("%s  %s  [%s, %s]\n", r.EntityID, r.Name, r.Kind, r.Zone)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
