package content

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	ghtml "github.com/yuin/goldmark/renderer/html"
	"gopkg.in/yaml.v3"

	"github.com/foliopress/folio/pkg/theme"
)

var md = goldmark.New(
	goldmark.WithRendererOptions(
		ghtml.WithUnsafe(),
	),
	goldmark.WithExtensions(extension.GFM, extension.Footnote))

var frontMatterDelim = []byte("---")

// Post is a single markdown post after parsing and rendering
type Post struct {
	Slug        string
	Title       string
	Date        time.Time
	Author      string
	Tags        []string
	Excerpt     string
	Content     string
	HeroImage   string
	ReadingTime int
	Published   bool

	// AvatarVariant optionally overrides the listing-level avatar
	// variant for this post's author photo
	AvatarVariant theme.VariantSpec
}

// frontMatter is the YAML block at the top of a post file
type frontMatter struct {
	Title         string            `yaml:"title"`
	Date          string            `yaml:"date"`
	Author        string            `yaml:"author,omitempty"`
	Tags          []string          `yaml:"tags,omitempty"`
	Excerpt       string            `yaml:"excerpt,omitempty"`
	HeroImage     string            `yaml:"heroImage,omitempty"`
	Draft         bool              `yaml:"draft,omitempty"`
	AvatarVariant theme.VariantSpec `yaml:"avatarVariant,omitempty"`
}

// ParseFile reads and parses a single markdown post. The slug is
// derived from the file name, with an optional YYYY-MM-DD prefix
// stripped.
func ParseFile(path string) (*Post, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	post, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	post.Slug = SlugFromFilename(filepath.Base(path))
	return post, nil
}

// Parse parses a post from raw bytes: a YAML front matter block
// between "---" delimiters followed by markdown content.
func Parse(data []byte) (*Post, error) {
	fm, body, err := splitFrontMatter(data)
	if err != nil {
		return nil, err
	}

	var meta frontMatter
	if err := yaml.Unmarshal(fm, &meta); err != nil {
		return nil, fmt.Errorf("front matter: %w", err)
	}
	if meta.Title == "" {
		return nil, fmt.Errorf("front matter: missing title")
	}

	date, err := parseDate(meta.Date)
	if err != nil {
		return nil, fmt.Errorf("front matter: %w", err)
	}

	var buf bytes.Buffer
	if err := md.Convert(body, &buf); err != nil {
		return nil, fmt.Errorf("rendering markdown: %w", err)
	}

	excerpt := meta.Excerpt
	if excerpt == "" {
		excerpt = extractExcerpt(body)
	}

	return &Post{
		Title:         meta.Title,
		Date:          date,
		Author:        meta.Author,
		Tags:          meta.Tags,
		Excerpt:       excerpt,
		Content:       buf.String(),
		HeroImage:     meta.HeroImage,
		ReadingTime:   CalculateReadingTime(string(body)),
		Published:     !meta.Draft,
		AvatarVariant: meta.AvatarVariant,
	}, nil
}

// splitFrontMatter separates the front matter block from the body.
func splitFrontMatter(data []byte) (fm, body []byte, err error) {
	trimmed := bytes.TrimLeft(data, "\ufeff\n\r")
	if !bytes.HasPrefix(trimmed, frontMatterDelim) {
		return nil, nil, fmt.Errorf("missing front matter delimiter")
	}

	rest := trimmed[len(frontMatterDelim):]
	end := bytes.Index(rest, append([]byte("\n"), frontMatterDelim...))
	if end < 0 {
		return nil, nil, fmt.Errorf("unterminated front matter")
	}

	fm = rest[:end]
	body = rest[end+1+len(frontMatterDelim):]
	return fm, bytes.TrimLeft(body, "\n\r"), nil
}

// parseDate accepts the date formats posts actually use.
func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("missing date")
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}

// SlugFromFilename derives a URL slug from a post file name,
// stripping the extension and an optional YYYY-MM-DD- prefix.
func SlugFromFilename(name string) string {
	slug := strings.TrimSuffix(name, filepath.Ext(name))
	if len(slug) > 11 && isDatePrefix(slug[:11]) {
		slug = slug[11:]
	}
	return slug
}

func isDatePrefix(s string) bool {
	// YYYY-MM-DD-
	if s[4] != '-' || s[7] != '-' || s[10] != '-' {
		return false
	}
	for i, c := range s {
		if i == 4 || i == 7 || i == 10 {
			continue
		}
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// CalculateReadingTime estimates reading time based on word count
func CalculateReadingTime(content string) int {
	words := strings.Fields(content)
	// Average reading speed: 200-250 words per minute
	minutes := len(words) / 225
	if minutes < 1 {
		return 1
	}
	return minutes
}

// extractExcerpt takes the first paragraph of the markdown body,
// stripped of inline formatting markers.
func extractExcerpt(body []byte) string {
	for _, para := range bytes.Split(body, []byte("\n\n")) {
		text := strings.TrimSpace(string(para))
		if text == "" || strings.HasPrefix(text, "#") ||
			strings.HasPrefix(text, "```") || strings.HasPrefix(text, "![") {
			continue
		}
		text = strings.Join(strings.Fields(text), " ")
		text = strings.NewReplacer("**", "", "*", "", "`", "").Replace(text)
		if len(text) > 200 {
			text = text[:200]
			if i := strings.LastIndex(text, " "); i > 0 {
				text = text[:i]
			}
			text += "…"
		}
		return text
	}
	return ""
}

// Library holds all parsed posts for a site
type Library struct {
	posts []Post
}

// LoadDir parses every .md file in dir into a Library.
func LoadDir(dir string) (*Library, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	lib := &Library{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		post, err := ParseFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		lib.posts = append(lib.posts, *post)
	}
	return lib, nil
}

// Sorted returns published posts sorted by date (newest first)
func (l *Library) Sorted() []Post {
	sorted := make([]Post, len(l.posts))
	copy(sorted, l.posts)

	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Date.Equal(sorted[j].Date) {
			return sorted[i].Slug < sorted[j].Slug
		}
		return sorted[i].Date.After(sorted[j].Date)
	})

	var published []Post
	for _, post := range sorted {
		if post.Published {
			published = append(published, post)
		}
	}
	return published
}

// BySlug returns a published post by its slug
func (l *Library) BySlug(slug string) (*Post, error) {
	for i := range l.posts {
		if l.posts[i].Slug == slug && l.posts[i].Published {
			return &l.posts[i], nil
		}
	}
	return nil, fmt.Errorf("post not found: %s", slug)
}

// ByTag returns all published posts carrying the tag
func (l *Library) ByTag(tag string) []Post {
	var tagged []Post
	for _, post := range l.Sorted() {
		for _, t := range post.Tags {
			if strings.EqualFold(t, tag) {
				tagged = append(tagged, post)
				break
			}
		}
	}
	return tagged
}

// Tags returns every tag in use, lowercased and sorted
func (l *Library) Tags() []string {
	seen := make(map[string]bool)
	for _, post := range l.Sorted() {
		for _, t := range post.Tags {
			seen[strings.ToLower(t)] = true
		}
	}
	tags := make([]string, 0, len(seen))
	for t := range seen {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}

// Related returns posts sharing a tag with the given post
func (l *Library) Related(post Post, limit int) []Post {
	var related []Post
	for _, p := range l.Sorted() {
		if p.Slug == post.Slug {
			continue
		}
		for _, tag := range post.Tags {
			for _, t := range p.Tags {
				if strings.EqualFold(tag, t) {
					related = append(related, p)
					goto next
				}
			}
		}
	next:
		if len(related) >= limit {
			break
		}
	}
	return related
}
