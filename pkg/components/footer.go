package components

import (
	"fmt"
	"time"

	"github.com/foliopress/folio/pkg/folio/vdom"
	"github.com/foliopress/folio/pkg/styling"
	"github.com/foliopress/folio/pkg/vex/builder"
)

var footerStyle = styling.StyleWithRegistry(`
.siteFooter {
	border-top: 1px solid rgba(0, 0, 0, 0.08);
	margin-top: 3rem;
}
.siteFooterInner {
	max-width: 60rem;
	margin: 0 auto;
	padding: 1.5rem 1.25rem;
	display: flex;
	align-items: center;
	justify-content: space-between;
	font-size: 0.875rem;
	color: var(--color-muted);
}
.socialLinks {
	display: flex;
	gap: 1rem;
}
.socialLinks a {
	color: var(--color-muted);
	text-decoration: none;
}
.socialLinks a:hover {
	color: var(--color-accent);
}
`)

// SiteFooterProps defines the properties for the SiteFooter component
type SiteFooterProps struct {
	SiteTitle string
	Social    []SocialLink
}

// SiteFooter renders the site-wide footer with copyright and social links
func SiteFooter(props SiteFooterProps) *vdom.VNode {
	var children []*vdom.VNode

	children = append(children,
		builder.Span().
			Text(fmt.Sprintf("© %d %s", time.Now().Year(), props.SiteTitle)).
			Build(),
	)

	if len(props.Social) > 0 {
		var links []*vdom.VNode
		for _, s := range props.Social {
			links = append(links,
				builder.A().
					Href(s.URL).
					Rel("me noopener").
					Target("_blank").
					Text(s.Label).
					Build(),
			)
		}
		children = append(children,
			builder.Div().
				Class(footerStyle.Class("socialLinks")).
				Children(links...).
				Build(),
		)
	}

	return builder.Footer().
		Class(footerStyle.Class("siteFooter")).
		Children(
			builder.Div().
				Class(footerStyle.Class("siteFooterInner")).
				Children(children...).
				Build(),
		).Build()
}
