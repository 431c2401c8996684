package components

import (
	"github.com/foliopress/folio/pkg/folio/vdom"
	"github.com/foliopress/folio/pkg/styling"
	"github.com/foliopress/folio/pkg/theme"
	"github.com/foliopress/folio/pkg/vex/builder"
)

var avatarStyle = styling.StyleWithRegistry(`
.avatar {
	width: 2rem;
	height: 2rem;
	border-radius: 50%;
	object-fit: cover;
}
.byline {
	font-size: 0.875rem;
	color: var(--color-muted);
	text-decoration: none;
}
.byline:hover {
	text-decoration: underline;
}
`)

// AvatarProps defines the properties for the Avatar component
type AvatarProps struct {
	Author *Author

	// Variant names the breakpoint style variants that decide whether
	// the avatar renders at all, e.g. authorPhoto.mobile/desktop
	Variant theme.VariantSpec

	Class string
}

// Avatar renders an author thumbnail, or nothing.
// The avatar renders only when author metadata is not suppressed, the
// theme's variant rules resolve visible, and the author actually
// carries a thumbnail reference.
func Avatar(ctx Context, props AvatarProps) *vdom.VNode {
	if ctx.AuthorOmitted() {
		return nil
	}
	if !theme.IsVisible(props.Variant, ctx.Rules()) {
		return nil
	}
	if props.Author == nil || props.Author.Thumbnail == "" {
		return nil
	}

	classes := []string{avatarStyle.Class("avatar")}
	for _, v := range props.Variant {
		classes = append(classes, theme.ClassName(v))
	}
	if props.Class != "" {
		classes = append(classes, props.Class)
	}

	return builder.Img().
		Class(joinClasses(classes...)).
		Src(props.Author.Thumbnail).
		Alt(props.Author.Name).
		Loading("lazy").
		Build()
}

// AuthorNameProps defines the properties for the AuthorName component
type AuthorNameProps struct {
	Author *Author
	Class  string
}

// AuthorName renders a linked author byline, or nothing.
// The name renders only when author metadata is not suppressed and the
// author carries both a name and a slug to link to.
func AuthorName(ctx Context, props AuthorNameProps) *vdom.VNode {
	if ctx.AuthorOmitted() {
		return nil
	}
	if props.Author == nil || props.Author.Name == "" || props.Author.Slug == "" {
		return nil
	}

	classes := []string{avatarStyle.Class("byline")}
	if props.Class != "" {
		classes = append(classes, props.Class)
	}

	return builder.A().
		Class(joinClasses(classes...)).
		Href("/authors/" + props.Author.Slug + "/").
		Text(props.Author.Name).
		Build()
}
