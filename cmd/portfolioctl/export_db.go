package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/imdewan/mrdsa-dev/internal/content/sqlstore"
)

var exportDBCmd = &cobra.Command{
	Use:   "export-db <file>",
	Short: "Write the content into a SQLite snapshot",
	Long:  `Write the loaded content into a new SQLite snapshot. Point CONTENT_PATH at the file to serve from it. Existing files are never overwritten.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runExportDB,
}

func init() {
	rootCmd.AddCommand(exportDBCmd)
}

func runExportDB(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	site, err := loadSite(cmd, cfg)
	if err != nil {
		return err
	}
	if err := sqlstore.Export(cmd.Context(), args[0], site); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[0])
	return nil
}
