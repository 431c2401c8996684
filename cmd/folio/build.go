package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/foliopress/folio/internal/site"
)

func newBuildCommand() *cobra.Command {
	var cwd string
	var clean bool

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the site for production",
		Long:  `Renders every page, the stylesheet, the feed and the sitemap into the output directory.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cwd != "" {
				if err := os.Chdir(cwd); err != nil {
					return fmt.Errorf("failed to change directory to %s: %w", cwd, err)
				}
			}
			return runBuild(clean)
		},
	}

	cmd.Flags().StringVar(&cwd, "cwd", "", "Project directory (defaults to current)")
	cmd.Flags().BoolVar(&clean, "clean", true, "Remove the output directory before building")

	return cmd
}

func runBuild(clean bool) error {
	start := time.Now()
	log.Println("🚀 Building site...")

	builder, err := site.Load(".")
	if err != nil {
		return err
	}

	if clean {
		if err := os.RemoveAll(builder.OutputDir()); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to clean output directory: %w", err)
		}
	}

	if err := builder.Build(); err != nil {
		return err
	}

	log.Printf("✅ Done in %s", time.Since(start).Round(time.Millisecond))
	return nil
}
