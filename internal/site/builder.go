// Package site turns configuration, theme and markdown content into
// a static website on disk.
package site

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/foliopress/folio/internal/cache"
	"github.com/foliopress/folio/internal/config"
	"github.com/foliopress/folio/internal/content"
	"github.com/foliopress/folio/pkg/components"
	"github.com/foliopress/folio/pkg/folio/vdom"
	html "github.com/foliopress/folio/pkg/renderer/html"
	"github.com/foliopress/folio/pkg/styling"
	"github.com/foliopress/folio/pkg/theme"
)

// Builder renders a whole site into the output directory
type Builder struct {
	root   string
	config *config.Config
	theme  *theme.Theme
	posts  *content.Library

	// Cache, when set, skips re-rendering post pages whose inputs
	// did not change between builds
	Cache *cache.Cache

	// HeadExtra is appended to every page head; the dev server uses
	// it to inject the live-reload script
	HeadExtra []*vdom.VNode
}

// Load reads config, theme and content from the project root.
func Load(root string) (*Builder, error) {
	cfg, err := config.Load(root)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	thm, err := theme.Load(filepath.Join(root, cfg.Paths.Theme))
	if err != nil {
		return nil, fmt.Errorf("loading theme: %w", err)
	}

	posts, err := content.LoadDir(filepath.Join(root, cfg.Paths.Content))
	if err != nil {
		return nil, fmt.Errorf("loading content: %w", err)
	}

	return &Builder{
		root:   root,
		config: cfg,
		theme:  thm,
		posts:  posts,
	}, nil
}

// Config exposes the loaded site configuration
func (b *Builder) Config() *config.Config { return b.config }

// OutputDir is the absolute output directory
func (b *Builder) OutputDir() string {
	return filepath.Join(b.root, b.config.Paths.Output)
}

// Build renders every page, the stylesheet, the feed and the
// sitemap, and copies static assets.
func (b *Builder) Build() error {
	out := b.OutputDir()
	if err := os.MkdirAll(out, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	ctx := components.Context{
		Theme:  b.theme,
		Author: b.config.AuthorVisibility(),
	}

	posts := b.posts.Sorted()

	if err := b.buildListings(ctx, posts); err != nil {
		return err
	}
	for i := range posts {
		if err := b.buildPost(ctx, &posts[i]); err != nil {
			return err
		}
	}
	if err := b.buildTags(ctx); err != nil {
		return err
	}
	if err := b.buildAuthors(ctx, posts); err != nil {
		return err
	}
	if err := b.writeStylesheet(); err != nil {
		return err
	}
	if err := b.writeFeed(posts); err != nil {
		return err
	}
	if err := b.writeSitemap(posts); err != nil {
		return err
	}
	if err := b.copyStatic(); err != nil {
		return err
	}

	log.Printf("🏗️  Built %d posts to %s", len(posts), b.config.Paths.Output)
	return nil
}

// writePage renders a document to <dir>/index.html under the output
// directory.
func (b *Builder) writePage(relDir string, page *vdom.VNode) error {
	dir := filepath.Join(b.OutputDir(), filepath.FromSlash(relDir))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	f, err := os.Create(filepath.Join(dir, "index.html"))
	if err != nil {
		return err
	}
	defer f.Close()

	if err := html.RenderDocument(f, page); err != nil {
		return fmt.Errorf("rendering %s: %w", relDir, err)
	}
	return nil
}

func (b *Builder) writeRaw(relPath string, data []byte) error {
	path := filepath.Join(b.OutputDir(), filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// writeStylesheet combines the theme scales with all registered
// component styles into a single styles.css.
func (b *Builder) writeStylesheet() error {
	var sb strings.Builder
	sb.WriteString(baseCSS)
	sb.WriteString(b.theme.Stylesheet())
	sb.WriteString("\n")
	sb.WriteString(styling.GetAllCSS())
	return b.writeRaw("styles.css", []byte(sb.String()))
}

// copyStatic copies the static directory verbatim into the output.
// A missing static directory is not an error.
func (b *Builder) copyStatic() error {
	src := filepath.Join(b.root, b.config.Paths.Static)
	if _, err := os.Stat(src); os.IsNotExist(err) {
		return nil
	}

	return filepath.Walk(src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		dst := filepath.Join(b.OutputDir(), rel)
		if info.IsDir() {
			return os.MkdirAll(dst, 0755)
		}
		return copyFile(path, dst)
	})
}

func copyFile(src, dst string) error {
	source, err := os.Open(src)
	if err != nil {
		return err
	}
	defer source.Close()

	destination, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer destination.Close()

	_, err = io.Copy(destination, source)
	return err
}

// paginate splits posts into pages of the configured size.
func paginate(posts []content.Post, perPage int) [][]content.Post {
	if perPage <= 0 {
		perPage = 10
	}
	var pages [][]content.Post
	for start := 0; start < len(posts); start += perPage {
		end := start + perPage
		if end > len(posts) {
			end = len(posts)
		}
		pages = append(pages, posts[start:end])
	}
	if len(pages) == 0 {
		pages = [][]content.Post{nil}
	}
	return pages
}

// absoluteURL joins a site-relative path onto the configured base URL
func (b *Builder) absoluteURL(path string) string {
	base := strings.TrimSuffix(b.config.Site.BaseURL, "/")
	return base + path
}

// baseCSS is the reset and typography every page starts from
const baseCSS = `* { box-sizing: border-box; }
body {
	margin: 0;
	font-family: var(--font-body);
	color: var(--color-text);
	background: var(--color-background);
	line-height: 1.6;
}
h1, h2, h3, h4 { font-family: var(--font-heading); line-height: 1.25; }
a { color: var(--color-accent); }
img { max-width: 100%; }
pre {
	font-family: var(--font-mono);
	background: rgba(0, 0, 0, 0.04);
	padding: 1rem;
	overflow-x: auto;
	border-radius: 6px;
}
code { font-family: var(--font-mono); font-size: 0.9em; }
`
