package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/imdewan/mrdsa-dev/internal/build"
	"github.com/imdewan/mrdsa-dev/internal/web"
)

var buildCmd = &cobra.Command{
	Use:   "build <out-dir>",
	Short: "Pre-render the page for static hosting",
	Long:  `Render index.html without HTMX wiring, copy the stylesheet and scripts, and mirror STATIC_DIR (images, resume) into the output directory.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	site, err := loadSite(cmd, cfg)
	if err != nil {
		return err
	}
	srv, err := web.New(site, web.Options{
		StaticDir: cfg.StaticDir,
		Marquee:   cfg.MarqueeDuration(),
		Parallax:  cfg.Parallax(),
	})
	if err != nil {
		return err
	}

	res, err := build.Run(cmd.Context(), args[0], srv, web.Assets(), cfg.StaticDir)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "built %s: %d page, %d assets, %d media files\n", args[0], res.Pages, res.Assets, res.Media)
	return nil
}
