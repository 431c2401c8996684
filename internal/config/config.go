package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/foliopress/folio/pkg/components"
)

// FileName is the site configuration file looked up at the project root.
const FileName = "folio.yml"

// Config represents the folio.yml site configuration
type Config struct {
	// Site metadata
	Site SiteConfig `yaml:"site"`

	// Navigation menu, rendered in the site header
	Menu []MenuItem `yaml:"menu,omitempty"`

	// Social links, rendered in the site footer
	Social []SocialLink `yaml:"social,omitempty"`

	// Author roster keyed by slug
	Authors map[string]Author `yaml:"authors,omitempty"`

	// Paths configuration
	Paths PathsConfig `yaml:"paths,omitempty"`

	// Listing configuration
	Listing ListingConfig `yaml:"listing,omitempty"`

	// Newsletter signup configuration
	Newsletter NewsletterConfig `yaml:"newsletter,omitempty"`

	// Development server configuration
	Dev DevConfig `yaml:"dev,omitempty"`
}

// SiteConfig contains site-wide metadata
type SiteConfig struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description,omitempty"`

	// BaseURL is the absolute site root used for canonical links,
	// the RSS feed and the sitemap, e.g. "https://blog.example.com"
	BaseURL string `yaml:"baseUrl,omitempty"`

	Language string `yaml:"language,omitempty"`

	// HideAuthors suppresses author names and avatars site-wide
	HideAuthors bool `yaml:"hideAuthors,omitempty"`
}

// MenuItem is a single navigation entry
type MenuItem struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

// SocialLink is a single footer social entry
type SocialLink struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// Author is one entry of the author roster
type Author struct {
	Name      string `yaml:"name"`
	Thumbnail string `yaml:"thumbnail,omitempty"`
	Bio       string `yaml:"bio,omitempty"`
}

// PathsConfig contains the content and build directories
type PathsConfig struct {
	// Content is the directory holding markdown posts
	Content string `yaml:"content,omitempty"`

	// Output is the directory the site is built into
	Output string `yaml:"output,omitempty"`

	// Static is the directory copied verbatim into the output
	Static string `yaml:"static,omitempty"`

	// Theme is the theme definition file
	Theme string `yaml:"theme,omitempty"`
}

// ListingConfig controls index and tag listing pages
type ListingConfig struct {
	// PostsPerPage is the pagination window for listing pages
	PostsPerPage int `yaml:"postsPerPage,omitempty"`

	// AvatarVariant names the theme variants applied to listing
	// avatars, e.g. [authorPhoto.mobile, authorPhoto.desktop]
	AvatarVariant []string `yaml:"avatarVariant,omitempty"`
}

// NewsletterConfig controls the newsletter signup widget
type NewsletterConfig struct {
	Heading string `yaml:"heading,omitempty"`
	Blurb   string `yaml:"blurb,omitempty"`

	// Action is the form endpoint; the widget is hidden when empty
	Action string `yaml:"action,omitempty"`
}

// DevConfig contains development server configuration
type DevConfig struct {
	Host string `yaml:"host,omitempty"`
	Port int    `yaml:"port,omitempty"`
}

// Load loads configuration from folio.yml in projectPath, falling
// back to defaults when the file does not exist.
func Load(projectPath string) (*Config, error) {
	configPath := filepath.Join(projectPath, FileName)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", FileName, err)
	}

	applyDefaults(&config)

	return &config, nil
}

// Save writes the configuration back to folio.yml
func Save(config *Config, projectPath string) error {
	configPath := filepath.Join(projectPath, FileName)

	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Site: SiteConfig{
			Title:    "A Folio Site",
			Language: "en",
		},
		Paths: PathsConfig{
			Content: "content/posts",
			Output:  "dist",
			Static:  "public",
			Theme:   "theme.yml",
		},
		Listing: ListingConfig{
			PostsPerPage: 10,
		},
		Dev: DevConfig{
			Host: "localhost",
			Port: 3000,
		},
	}
}

// applyDefaults applies default values to missing configuration
func applyDefaults(config *Config) {
	defaults := DefaultConfig()

	if config.Site.Title == "" {
		config.Site.Title = defaults.Site.Title
	}
	if config.Site.Language == "" {
		config.Site.Language = defaults.Site.Language
	}

	if config.Paths.Content == "" {
		config.Paths.Content = defaults.Paths.Content
	}
	if config.Paths.Output == "" {
		config.Paths.Output = defaults.Paths.Output
	}
	if config.Paths.Static == "" {
		config.Paths.Static = defaults.Paths.Static
	}
	if config.Paths.Theme == "" {
		config.Paths.Theme = defaults.Paths.Theme
	}

	if config.Listing.PostsPerPage <= 0 {
		config.Listing.PostsPerPage = defaults.Listing.PostsPerPage
	}

	if config.Dev.Host == "" {
		config.Dev.Host = defaults.Dev.Host
	}
	if config.Dev.Port == 0 {
		config.Dev.Port = defaults.Dev.Port
	}
}

// AuthorVisibility maps the site-wide hideAuthors switch to the
// render context value.
func (c *Config) AuthorVisibility() components.AuthorVisibility {
	if c.Site.HideAuthors {
		return components.AuthorHidden
	}
	return components.AuthorShown
}

// LookupAuthor resolves an author slug against the roster. The
// returned Author carries the slug so templates can link to the
// author page.
func (c *Config) LookupAuthor(slug string) (components.Author, bool) {
	entry, ok := c.Authors[slug]
	if !ok {
		return components.Author{}, false
	}
	return components.Author{
		Name:      entry.Name,
		Slug:      slug,
		Thumbnail: entry.Thumbnail,
	}, true
}

// ComponentMenu converts the configured menu into component props.
func (c *Config) ComponentMenu() []components.MenuItem {
	items := make([]components.MenuItem, 0, len(c.Menu))
	for _, item := range c.Menu {
		items = append(items, components.MenuItem{Label: item.Label, Href: item.Href})
	}
	return items
}

// ComponentSocial converts the configured social links into
// component props.
func (c *Config) ComponentSocial() []components.SocialLink {
	links := make([]components.SocialLink, 0, len(c.Social))
	for _, link := range c.Social {
		links = append(links, components.SocialLink{Label: link.Label, URL: link.URL})
	}
	return links
}
