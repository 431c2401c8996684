package components

import (
	"github.com/foliopress/folio/pkg/folio/vdom"
	"github.com/foliopress/folio/pkg/styling"
	"github.com/foliopress/folio/pkg/vex/builder"
)

var newsletterStyle = styling.StyleWithRegistry(`
.newsletter {
	max-width: 60rem;
	margin: 3rem auto 0;
	padding: 2rem 1.25rem;
	text-align: center;
}
.newsletterHeading {
	margin: 0 0 0.5rem;
	font-family: var(--font-heading);
}
.newsletterBlurb {
	margin: 0 0 1rem;
	color: var(--color-muted);
}
.newsletterForm {
	display: flex;
	justify-content: center;
	gap: 0.5rem;
}
.newsletterInput {
	padding: 0.5rem 0.75rem;
	border: 1px solid rgba(0, 0, 0, 0.2);
	border-radius: 4px;
	min-width: 16rem;
}
.newsletterButton {
	padding: 0.5rem 1rem;
	background: var(--color-accent);
	color: #fff;
	border: none;
	border-radius: 4px;
	cursor: pointer;
}
`)

// NewsletterProps defines the properties for the Newsletter widget
type NewsletterProps struct {
	Heading string
	Blurb   string
	// Action is the subscribe endpoint the form posts to. An empty
	// action disables the widget entirely.
	Action string
}

// Newsletter renders an email signup widget, or nothing when no
// subscribe endpoint is configured
func Newsletter(props NewsletterProps) *vdom.VNode {
	if props.Action == "" {
		return nil
	}

	heading := props.Heading
	if heading == "" {
		heading = "Subscribe to the newsletter"
	}

	var children []*vdom.VNode
	children = append(children,
		builder.H2().
			Class(newsletterStyle.Class("newsletterHeading")).
			Text(heading).
			Build(),
	)

	if props.Blurb != "" {
		children = append(children,
			builder.P().
				Class(newsletterStyle.Class("newsletterBlurb")).
				Text(props.Blurb).
				Build(),
		)
	}

	children = append(children,
		builder.Form().
			Class(newsletterStyle.Class("newsletterForm")).
			Action(props.Action).
			Method("post").
			Children(
				builder.Label().
					For("newsletter-email").
					Class("visually-hidden").
					Text("Email address").
					Build(),
				builder.Input().
					Class(newsletterStyle.Class("newsletterInput")).
					ID("newsletter-email").
					Type("email").
					Name("email").
					Placeholder("you@example.com").
					Required(true).
					Build(),
				builder.Button().
					Class(newsletterStyle.Class("newsletterButton")).
					Type("submit").
					Text("Subscribe").
					Build(),
			).Build(),
	)

	return builder.Section().
		Class(newsletterStyle.Class("newsletter")).
		AriaLabel("Newsletter signup").
		Children(children...).
		Build()
}
