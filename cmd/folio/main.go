package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	commit  = "dev"
	date    = "unknown"
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "folio",
		Short: "Folio - a static blog engine",
		Long: `Folio turns a directory of markdown posts, a YAML theme and a site
configuration into a fast static blog: listing pages, post pages, tag
and author pages, RSS feed and sitemap.`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	}

	rootCmd.AddCommand(newBuildCommand())
	rootCmd.AddCommand(newDevCommand())
	rootCmd.AddCommand(newNewCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
