package components

import (
	"github.com/foliopress/folio/pkg/folio/vdom"
	"github.com/foliopress/folio/pkg/styling"
	"github.com/foliopress/folio/pkg/vex/builder"
)

var layoutStyle = styling.StyleWithRegistry(`
.siteHeader {
	border-bottom: 1px solid rgba(0, 0, 0, 0.08);
}
.siteHeaderInner {
	max-width: 60rem;
	margin: 0 auto;
	padding: 1rem 1.25rem;
	display: flex;
	align-items: center;
	justify-content: space-between;
}
.siteTitle {
	margin: 0;
	font-family: var(--font-heading);
	font-size: 1.25rem;
}
.siteTitle a {
	color: var(--color-text);
	text-decoration: none;
}
.siteNav {
	display: flex;
	gap: 1.25rem;
}
.siteNav a {
	color: var(--color-muted);
	text-decoration: none;
	font-size: 0.9375rem;
}
.siteNav a:hover {
	color: var(--color-accent);
}
.siteMain {
	max-width: 60rem;
	margin: 0 auto;
	padding: 2rem 1.25rem;
}
`)

// LayoutProps defines the page shell
type LayoutProps struct {
	// Seo supplies the head metadata for this page
	Seo SeoProps

	SiteTitle string
	Menu      []MenuItem
	Social    []SocialLink

	// Content is the page body placed inside <main>
	Content *vdom.VNode

	// Widgets render between the main content and the site footer,
	// e.g. the newsletter signup
	Widgets []*vdom.VNode

	// HeadExtra appends nodes to <head>, used by the dev server to
	// inject the live-reload script
	HeadExtra []*vdom.VNode
}

// Layout wraps page content with the full document shell: head with
// SEO tags and stylesheet link, site header with navigation, main
// content area, widgets, and the site footer.
func Layout(ctx Context, props LayoutProps) *vdom.VNode {
	head := builder.Head().Children(
		builder.Meta().Charset("utf-8").Build(),
		builder.Meta().
			Name("viewport").
			Content("width=device-width, initial-scale=1").
			Build(),
		Seo(props.Seo),
		builder.Link().Rel("stylesheet").Href("/styles.css").Build(),
		builder.Link().
			Rel("alternate").
			Type("application/rss+xml").
			Href("/feed.xml").
			Build(),
	)
	head.Children(props.HeadExtra...)

	header := builder.Header().
		Class(layoutStyle.Class("siteHeader")).
		Children(
			builder.Div().
				Class(layoutStyle.Class("siteHeaderInner")).
				Children(
					builder.H1().
						Class(layoutStyle.Class("siteTitle")).
						Children(
							builder.A().Href("/").Text(props.SiteTitle).Build(),
						).Build(),
					siteNav(props.Menu),
				).Build(),
		).Build()

	var bodyChildren []*vdom.VNode
	bodyChildren = append(bodyChildren, header)
	bodyChildren = append(bodyChildren,
		builder.Main().
			Class(layoutStyle.Class("siteMain")).
			Children(props.Content).
			Build(),
	)
	bodyChildren = append(bodyChildren, props.Widgets...)
	bodyChildren = append(bodyChildren, SiteFooter(SiteFooterProps{
		SiteTitle: props.SiteTitle,
		Social:    props.Social,
	}))

	return builder.Html().
		Lang("en").
		Children(
			head.Build(),
			builder.Body().Children(bodyChildren...).Build(),
		).Build()
}

func siteNav(menu []MenuItem) *vdom.VNode {
	if len(menu) == 0 {
		return nil
	}

	var links []*vdom.VNode
	for _, item := range menu {
		links = append(links,
			builder.A().Href(item.Href).Text(item.Label).Build(),
		)
	}

	return builder.Nav().
		Class(layoutStyle.Class("siteNav")).
		AriaLabel("Main").
		Children(links...).
		Build()
}
