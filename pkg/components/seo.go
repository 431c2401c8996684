package components

import (
	"github.com/foliopress/folio/pkg/folio/vdom"
	"github.com/foliopress/folio/pkg/vex/builder"
)

// SeoProps defines the head metadata for a page
type SeoProps struct {
	Title       string
	SiteTitle   string
	Description string
	Canonical   string
	Image       string

	// Type is the Open Graph object type, "website" or "article"
	Type string
}

// Seo renders the head tag group for a page: title, description,
// canonical link, and Open Graph / Twitter card metadata. Optional
// fields that are empty are simply skipped.
func Seo(props SeoProps) *vdom.VNode {
	title := props.Title
	if title == "" {
		title = props.SiteTitle
	} else if props.SiteTitle != "" && title != props.SiteTitle {
		title = title + " | " + props.SiteTitle
	}

	ogType := props.Type
	if ogType == "" {
		ogType = "website"
	}

	var tags []*vdom.VNode

	tags = append(tags, builder.Title().Text(title).Build())

	if props.Description != "" {
		tags = append(tags,
			builder.Meta().Name("description").Content(props.Description).Build(),
			builder.Meta().Property("og:description").Content(props.Description).Build(),
			builder.Meta().Name("twitter:description").Content(props.Description).Build(),
		)
	}

	tags = append(tags,
		builder.Meta().Property("og:title").Content(title).Build(),
		builder.Meta().Property("og:type").Content(ogType).Build(),
	)

	if props.Canonical != "" {
		tags = append(tags,
			builder.Link().Rel("canonical").Href(props.Canonical).Build(),
			builder.Meta().Property("og:url").Content(props.Canonical).Build(),
		)
	}

	if props.Image != "" {
		tags = append(tags,
			builder.Meta().Property("og:image").Content(props.Image).Build(),
			builder.Meta().Name("twitter:card").Content("summary_large_image").Build(),
			builder.Meta().Name("twitter:image").Content(props.Image).Build(),
		)
	} else {
		tags = append(tags,
			builder.Meta().Name("twitter:card").Content("summary").Build(),
		)
	}

	return vdom.NewFragment(tags...)
}
