// Command portfolioctl validates, exports and pre-renders the portfolio
// content.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/imdewan/mrdsa-dev/internal/config"
	"github.com/imdewan/mrdsa-dev/internal/content"
)

var contentPath string

var rootCmd = &cobra.Command{
	Use:           "portfolioctl",
	Short:         "Portfolio content tooling",
	Long:          "portfolioctl checks the portfolio content, exports it to a SQLite snapshot and pre-renders the page for static hosting.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&contentPath, "content", "", "content file (YAML or .db snapshot); defaults to CONTENT_PATH or the embedded site")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the environment and applies the --content override.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if contentPath != "" {
		cfg.ContentPath = contentPath
	}
	return cfg, nil
}

func loadSite(cmd *cobra.Command, cfg *config.Config) (*content.Site, error) {
	site, err := cfg.ContentSource().Load(cmd.Context())
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}
	return site, nil
}
