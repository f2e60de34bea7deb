package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Load and validate the content",
	Args:  cobra.NoArgs,
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	site, err := loadSite(cmd, cfg)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "ok: %d nav items, %d experience entries, %d projects, %d testimonials, %d technologies, %d FAQ items\n",
		len(site.Nav), len(site.Experience), len(site.Projects), len(site.Testimonials), len(site.Technologies), len(site.FAQ))
	return nil
}
