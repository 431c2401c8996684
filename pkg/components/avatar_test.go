package components

import (
	"testing"

	"github.com/foliopress/folio/pkg/theme"
)

func testContext(variants theme.Rules) Context {
	th := theme.Default()
	th.Variants = variants
	return Context{Theme: th}
}

func TestAvatar_Gates(t *testing.T) {
	rules := theme.Rules{
		"authorPhoto.mobile":  {"display": "none"},
		"authorPhoto.desktop": {},
		"authorPhoto.hidden":  {"display": "none"},
	}
	author := &Author{Name: "Jo Marsh", Slug: "jo-marsh", Thumbnail: "/img/jo.jpg"}

	tests := []struct {
		name    string
		ctx     Context
		props   AvatarProps
		renders bool
	}{
		{
			name:    "full author renders",
			ctx:     testContext(rules),
			props:   AvatarProps{Author: author, Variant: theme.Variant("authorPhoto.desktop")},
			renders: true,
		},
		{
			name:    "author metadata suppressed",
			ctx:     Context{Theme: testContext(rules).Theme, Author: AuthorHidden},
			props:   AvatarProps{Author: author, Variant: theme.Variant("authorPhoto.desktop")},
			renders: false,
		},
		{
			name:    "variant resolves hidden",
			ctx:     testContext(rules),
			props:   AvatarProps{Author: author, Variant: theme.Variant("authorPhoto.hidden")},
			renders: false,
		},
		{
			name: "later breakpoint overrides hidden mobile variant",
			ctx:  testContext(rules),
			props: AvatarProps{
				Author:  author,
				Variant: theme.VariantSpec{"authorPhoto.mobile", "authorPhoto.desktop"},
			},
			renders: true,
		},
		{
			name:    "no thumbnail never renders",
			ctx:     testContext(rules),
			props:   AvatarProps{Author: &Author{Name: "Jo", Slug: "jo"}, Variant: theme.Variant("authorPhoto.desktop")},
			renders: false,
		},
		{
			name:    "nil author",
			ctx:     testContext(rules),
			props:   AvatarProps{Variant: theme.Variant("authorPhoto.desktop")},
			renders: false,
		},
		{
			name:    "empty rules default to visible",
			ctx:     testContext(nil),
			props:   AvatarProps{Author: author, Variant: theme.Variant("authorPhoto.hidden")},
			renders: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := Avatar(tt.ctx, tt.props)
			if (node != nil) != tt.renders {
				t.Errorf("Avatar rendered = %v, want %v", node != nil, tt.renders)
			}
		})
	}
}

func TestAuthorName_Gates(t *testing.T) {
	tests := []struct {
		name    string
		ctx     Context
		author  *Author
		renders bool
	}{
		{
			name:    "name and slug render",
			ctx:     Context{},
			author:  &Author{Name: "Jo Marsh", Slug: "jo-marsh"},
			renders: true,
		},
		{
			name:    "missing slug suppresses name",
			ctx:     Context{},
			author:  &Author{Name: "Jo Marsh"},
			renders: false,
		},
		{
			name:    "missing name",
			ctx:     Context{},
			author:  &Author{Slug: "jo-marsh"},
			renders: false,
		},
		{
			name:    "author metadata suppressed",
			ctx:     Context{Author: AuthorHidden},
			author:  &Author{Name: "Jo Marsh", Slug: "jo-marsh"},
			renders: false,
		},
		{
			name:    "nil author",
			ctx:     Context{},
			author:  nil,
			renders: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := AuthorName(tt.ctx, AuthorNameProps{Author: tt.author})
			if (node != nil) != tt.renders {
				t.Errorf("AuthorName rendered = %v, want %v", node != nil, tt.renders)
			}
		})
	}
}

func TestAuthorGates_Independent(t *testing.T) {
	ctx := Context{}

	// Thumbnail but no slug: avatar renders, name does not
	avatarOnly := &Author{Name: "Jo", Thumbnail: "/img/jo.jpg"}
	if Avatar(ctx, AvatarProps{Author: avatarOnly}) == nil {
		t.Error("expected avatar-only render")
	}
	if AuthorName(ctx, AuthorNameProps{Author: avatarOnly}) != nil {
		t.Error("expected name to be suppressed without a slug")
	}

	// Name and slug but no thumbnail: name renders, avatar does not
	nameOnly := &Author{Name: "Jo", Slug: "jo"}
	if Avatar(ctx, AvatarProps{Author: nameOnly}) != nil {
		t.Error("expected avatar to be suppressed without a thumbnail")
	}
	if AuthorName(ctx, AuthorNameProps{Author: nameOnly}) == nil {
		t.Error("expected name-only render")
	}
}
