package components

import (
	"fmt"
	"time"

	"github.com/foliopress/folio/pkg/folio/vdom"
	"github.com/foliopress/folio/pkg/styling"
	"github.com/foliopress/folio/pkg/theme"
	"github.com/foliopress/folio/pkg/vex/builder"
)

var cardStyle = styling.StyleWithRegistry(`
.card {
	display: flex;
	flex-direction: column;
	background: var(--color-background);
	border-radius: 8px;
	overflow: hidden;
	box-shadow: 0 1px 3px rgba(0, 0, 0, 0.12);
}
.cardImage img {
	width: 100%;
	height: auto;
	display: block;
}
.cardBody {
	padding: 1.25rem;
	flex: 1;
}
.cardTitle {
	margin: 0 0 0.5rem;
	font-family: var(--font-heading);
	font-size: 1.25rem;
}
.cardTitle a {
	color: var(--color-text);
	text-decoration: none;
}
.cardExcerpt {
	margin: 0;
	color: var(--color-muted);
	line-height: 1.6;
}
.cardFooter {
	display: flex;
	align-items: center;
	gap: 0.5rem;
	padding: 0 1.25rem 1.25rem;
}
.cardMeta {
	margin-left: auto;
	font-size: 0.8125rem;
	color: var(--color-muted);
}
.cardGrid {
	display: grid;
	grid-template-columns: 1fr;
	gap: 1.5rem;
}
`)

// CardProps defines the properties for the Card component
type CardProps struct {
	Title       string
	Excerpt     string
	Href        string
	Image       string
	ImageAlt    string
	Date        time.Time
	ReadingTime int
	Author      *Author

	// AvatarVariant is passed through to the footer's Avatar gate
	AvatarVariant theme.VariantSpec

	Class string
}

// Card renders a post preview card
func Card(ctx Context, props CardProps) *vdom.VNode {
	classes := []string{cardStyle.Class("card")}
	if props.Class != "" {
		classes = append(classes, props.Class)
	}

	card := builder.Article().Class(joinClasses(classes...))

	var children []*vdom.VNode

	if props.Image != "" {
		imgAlt := props.ImageAlt
		if imgAlt == "" {
			imgAlt = props.Title
		}

		children = append(children,
			builder.A().
				Class(cardStyle.Class("cardImage")).
				Href(props.Href).
				Children(
					builder.Img().
						Src(props.Image).
						Alt(imgAlt).
						Loading("lazy").
						Build(),
				).Build(),
		)
	}

	var bodyChildren []*vdom.VNode

	if props.Title != "" {
		bodyChildren = append(bodyChildren,
			builder.H3().
				Class(cardStyle.Class("cardTitle")).
				Children(
					builder.A().
						Href(props.Href).
						Text(props.Title).
						Build(),
				).Build(),
		)
	}

	if props.Excerpt != "" {
		bodyChildren = append(bodyChildren,
			builder.P().
				Class(cardStyle.Class("cardExcerpt")).
				Text(props.Excerpt).
				Build(),
		)
	}

	children = append(children,
		builder.Div().
			Class(cardStyle.Class("cardBody")).
			Children(bodyChildren...).
			Build(),
	)

	if footer := CardFooter(ctx, CardFooterProps{
		Author:        props.Author,
		AvatarVariant: props.AvatarVariant,
		Date:          props.Date,
		ReadingTime:   props.ReadingTime,
	}); footer != nil {
		children = append(children, footer)
	}

	return card.Children(children...).Build()
}

// CardFooterProps defines the properties for the CardFooter component
type CardFooterProps struct {
	Author        *Author
	AvatarVariant theme.VariantSpec
	Date          time.Time
	ReadingTime   int
}

// CardFooter renders the byline row of a card: avatar and author name
// (each independently gated), plus date and reading time metadata.
// Returns nil when there is nothing to show.
func CardFooter(ctx Context, props CardFooterProps) *vdom.VNode {
	var children []*vdom.VNode

	if avatar := Avatar(ctx, AvatarProps{
		Author:  props.Author,
		Variant: props.AvatarVariant,
	}); avatar != nil {
		children = append(children, avatar)
	}

	if name := AuthorName(ctx, AuthorNameProps{Author: props.Author}); name != nil {
		children = append(children, name)
	}

	if meta := cardMeta(props.Date, props.ReadingTime); meta != nil {
		children = append(children, meta)
	}

	if len(children) == 0 {
		return nil
	}

	return builder.Footer().
		Class(cardStyle.Class("cardFooter")).
		Children(children...).
		Build()
}

func cardMeta(date time.Time, readingTime int) *vdom.VNode {
	var parts string
	if !date.IsZero() {
		parts = date.Format("January 2, 2006")
	}
	if readingTime > 0 {
		if parts != "" {
			parts += " · "
		}
		parts += fmt.Sprintf("%d min read", readingTime)
	}
	if parts == "" {
		return nil
	}

	span := builder.Span().Class(cardStyle.Class("cardMeta"))
	if !date.IsZero() {
		return span.Children(
			builder.Time().
				Datetime(date.Format("2006-01-02")).
				Text(parts).
				Build(),
		).Build()
	}
	return span.Text(parts).Build()
}

// CardGridProps defines the properties for the CardGrid component
type CardGridProps struct {
	Cards []*vdom.VNode // Pre-built card VNodes
	Class string
}

// CardGrid arranges cards in the listing grid
func CardGrid(props CardGridProps) *vdom.VNode {
	classes := []string{cardStyle.Class("cardGrid")}
	if props.Class != "" {
		classes = append(classes, props.Class)
	}

	return builder.Div().
		Class(joinClasses(classes...)).
		Children(props.Cards...).
		Build()
}
