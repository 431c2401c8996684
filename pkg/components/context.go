// Package components provides the presentational building blocks of a
// folio site: cards, avatars, layout shells, pagination, SEO tags and
// widgets. Every component is a pure function from props to a VNode
// tree; anything optional that is missing simply does not render.
package components

import (
	"github.com/foliopress/folio/pkg/theme"
)

// AuthorVisibility controls whether author metadata (avatar and byline)
// renders at all. It is resolved once when the render context is built
// and read by every component that shows author information.
type AuthorVisibility int

const (
	// AuthorShown renders author metadata subject to per-component gates
	AuthorShown AuthorVisibility = iota
	// AuthorHidden suppresses avatar and byline fragments unconditionally
	AuthorHidden
)

// Context carries the per-render inputs shared by all components:
// the theme's style rules and the resolved author visibility.
type Context struct {
	Theme  *theme.Theme
	Author AuthorVisibility
}

// Rules returns the theme's variant rules, or nil when no theme is set.
// Components treat a nil rule table as "everything visible".
func (c Context) Rules() theme.Rules {
	if c.Theme == nil {
		return nil
	}
	return c.Theme.Variants
}

// AuthorOmitted reports whether author metadata is globally suppressed
func (c Context) AuthorOmitted() bool {
	return c.Author == AuthorHidden
}

// Author describes a post byline: the name, the slug used to link to
// the author's page, and an optional thumbnail image reference.
type Author struct {
	Name      string
	Slug      string
	Thumbnail string
}

// MenuItem is a navigation entry
type MenuItem struct {
	Label string
	Href  string
}

// SocialLink is a footer social entry
type SocialLink struct {
	Label string
	URL   string
}

// Helper function to join classes
func joinClasses(classes ...string) string {
	result := ""
	for _, class := range classes {
		if class != "" {
			if result != "" {
				result += " "
			}
			result += class
		}
	}
	return result
}
