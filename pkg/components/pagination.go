package components

import (
	"fmt"

	"github.com/foliopress/folio/pkg/folio/vdom"
	"github.com/foliopress/folio/pkg/styling"
	"github.com/foliopress/folio/pkg/vex/builder"
)

var paginationStyle = styling.StyleWithRegistry(`
.pagination {
	display: flex;
	align-items: center;
	justify-content: center;
	gap: 0.75rem;
	margin-top: 2.5rem;
}
.pageLink {
	color: var(--color-accent);
	text-decoration: none;
	padding: 0.25rem 0.5rem;
}
.pageCurrent {
	color: var(--color-muted);
	padding: 0.25rem 0.5rem;
}
`)

// PaginationProps defines the properties for the Pagination component
type PaginationProps struct {
	// Current is the 1-based page number being rendered
	Current int
	// Total is the number of listing pages
	Total int
	// BasePath is the listing root, e.g. "/"; page N > 1 lives at
	// BasePath + "page/N/"
	BasePath string
}

// PagePath returns the URL path of a listing page
func PagePath(basePath string, page int) string {
	if page <= 1 {
		return basePath
	}
	return fmt.Sprintf("%spage/%d/", basePath, page)
}

// Pagination renders older/newer navigation between listing pages.
// Returns nil when there is a single page.
func Pagination(props PaginationProps) *vdom.VNode {
	if props.Total <= 1 {
		return nil
	}

	var children []*vdom.VNode

	if props.Current > 1 {
		children = append(children,
			builder.A().
				Class(paginationStyle.Class("pageLink")).
				Href(PagePath(props.BasePath, props.Current-1)).
				Rel("prev").
				Text("← Newer").
				Build(),
		)
	}

	children = append(children,
		builder.Span().
			Class(paginationStyle.Class("pageCurrent")).
			Text(fmt.Sprintf("Page %d of %d", props.Current, props.Total)).
			Build(),
	)

	if props.Current < props.Total {
		children = append(children,
			builder.A().
				Class(paginationStyle.Class("pageLink")).
				Href(PagePath(props.BasePath, props.Current+1)).
				Rel("next").
				Text("Older →").
				Build(),
		)
	}

	return builder.Nav().
		Class(paginationStyle.Class("pagination")).
		AriaLabel("Pagination").
		Children(children...).
		Build()
}
