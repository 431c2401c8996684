package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/foliopress/folio/internal/config"
)

// postScaffold holds everything needed to write a new post file
type postScaffold struct {
	Slug   string
	Title  string
	Author string
	Tags   []string
}

func newNewCommand() *cobra.Command {
	var title string
	var author string
	var tags []string
	var noInteractive bool

	cmd := &cobra.Command{
		Use:   "new [slug]",
		Short: "Create a new post",
		Long:  `Scaffolds a draft markdown post with front matter. Runs an interactive wizard on a terminal unless flags are given.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scaffold := postScaffold{
				Title:  title,
				Author: author,
				Tags:   tags,
			}
			if len(args) > 0 {
				scaffold.Slug = args[0]
			}

			interactive := !noInteractive && title == "" && isatty()
			if interactive {
				result, err := runNewWizard(scaffold)
				if err != nil {
					return err
				}
				scaffold = result
			}

			if scaffold.Slug == "" && scaffold.Title != "" {
				scaffold.Slug = slugify(scaffold.Title)
			}
			if scaffold.Slug == "" {
				return fmt.Errorf("a slug or title is required (try: folio new my-first-post)")
			}
			if scaffold.Title == "" {
				scaffold.Title = titleize(scaffold.Slug)
			}

			return createPost(scaffold)
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "Post title")
	cmd.Flags().StringVarP(&author, "author", "a", "", "Author slug from folio.yml")
	cmd.Flags().StringSliceVar(&tags, "tags", nil, "Comma-separated tags")
	cmd.Flags().BoolVar(&noInteractive, "no-interactive", false, "Skip the interactive wizard")

	return cmd
}

func createPost(scaffold postScaffold) error {
	cfg, err := config.Load(".")
	if err != nil {
		return err
	}

	dir := cfg.Paths.Content
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating content directory: %w", err)
	}

	now := time.Now()
	filename := fmt.Sprintf("%s-%s.md", now.Format("2006-01-02"), scaffold.Slug)
	path := filepath.Join(dir, filename)

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("post already exists: %s", path)
	}

	var sb strings.Builder
	sb.WriteString("---\n")
	fmt.Fprintf(&sb, "title: %s\n", scaffold.Title)
	fmt.Fprintf(&sb, "date: %s\n", now.Format("2006-01-02"))
	if scaffold.Author != "" {
		fmt.Fprintf(&sb, "author: %s\n", scaffold.Author)
	}
	if len(scaffold.Tags) > 0 {
		fmt.Fprintf(&sb, "tags: [%s]\n", strings.Join(scaffold.Tags, ", "))
	}
	sb.WriteString("draft: true\n")
	sb.WriteString("---\n\nWrite your post here.\n")

	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("writing post: %w", err)
	}

	log.Printf("📝 Created %s", path)
	return nil
}

// slugify converts a title into a URL-safe slug
func slugify(title string) string {
	var sb strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			sb.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				sb.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(sb.String(), "-")
}

// titleize turns a slug back into a readable title
func titleize(slug string) string {
	words := strings.Split(slug, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// isatty checks if we're running in a terminal
func isatty() bool {
	fileInfo, _ := os.Stdout.Stat()
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
