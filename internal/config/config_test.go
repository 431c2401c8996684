package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/foliopress/folio/pkg/components"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Site.Title != "A Folio Site" {
		t.Errorf("Site.Title = %q, want default", cfg.Site.Title)
	}
	if cfg.Listing.PostsPerPage != 10 {
		t.Errorf("PostsPerPage = %d, want 10", cfg.Listing.PostsPerPage)
	}
	if cfg.Dev.Port != 3000 {
		t.Errorf("Dev.Port = %d, want 3000", cfg.Dev.Port)
	}
}

func TestLoad_AppliesDefaultsToPartialConfig(t *testing.T) {
	dir := t.TempDir()
	content := `site:
  title: The Go Notebook
  baseUrl: https://example.com
  hideAuthors: true
authors:
  jordan:
    name: Jordan Blake
    thumbnail: /images/jordan.jpg
listing:
  avatarVariant: [authorPhoto.mobile, authorPhoto.desktop]
dev:
  port: 4000
`
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Site.Title != "The Go Notebook" {
		t.Errorf("Site.Title = %q", cfg.Site.Title)
	}
	if cfg.Site.Language != "en" {
		t.Errorf("Site.Language = %q, want default en", cfg.Site.Language)
	}
	if cfg.Paths.Content != "content/posts" {
		t.Errorf("Paths.Content = %q, want default", cfg.Paths.Content)
	}
	if cfg.Listing.PostsPerPage != 10 {
		t.Errorf("PostsPerPage = %d, want default 10", cfg.Listing.PostsPerPage)
	}
	if cfg.Dev.Port != 4000 {
		t.Errorf("Dev.Port = %d, want 4000", cfg.Dev.Port)
	}
	if len(cfg.Listing.AvatarVariant) != 2 {
		t.Errorf("AvatarVariant = %v", cfg.Listing.AvatarVariant)
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte("site: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(dir); err == nil {
		t.Error("Load() expected error for malformed YAML")
	}
}

func TestAuthorVisibility(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.AuthorVisibility() != components.AuthorShown {
		t.Error("default config should show authors")
	}

	cfg.Site.HideAuthors = true
	if cfg.AuthorVisibility() != components.AuthorHidden {
		t.Error("hideAuthors should map to AuthorHidden")
	}
}

func TestLookupAuthor(t *testing.T) {
	cfg := &Config{
		Authors: map[string]Author{
			"jordan": {Name: "Jordan Blake", Thumbnail: "/images/jordan.jpg"},
		},
	}

	author, ok := cfg.LookupAuthor("jordan")
	if !ok {
		t.Fatal("LookupAuthor() = false, want true")
	}
	if author.Slug != "jordan" {
		t.Errorf("Slug = %q, want %q", author.Slug, "jordan")
	}
	if author.Name != "Jordan Blake" {
		t.Errorf("Name = %q", author.Name)
	}

	if _, ok := cfg.LookupAuthor("nobody"); ok {
		t.Error("LookupAuthor() of unknown slug = true, want false")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.Site.Title = "Saved Site"
	cfg.Menu = []MenuItem{{Label: "Archive", Href: "/archive/"}}

	if err := Save(cfg, dir); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Site.Title != "Saved Site" {
		t.Errorf("Site.Title = %q after round trip", loaded.Site.Title)
	}
	if len(loaded.Menu) != 1 || loaded.Menu[0].Href != "/archive/" {
		t.Errorf("Menu = %v after round trip", loaded.Menu)
	}
}
