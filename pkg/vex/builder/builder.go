package builder

import (
	"github.com/foliopress/folio/pkg/folio/vdom"
)

// ElementBuilder provides a fluent API for constructing element VNodes
type ElementBuilder struct {
	tag      string
	props    vdom.Props
	children []*vdom.VNode
}

// Element creates a builder for an arbitrary tag
func Element(tag string) *ElementBuilder {
	return &ElementBuilder{
		tag:   tag,
		props: make(vdom.Props),
	}
}

// Build finalizes the builder and returns the VNode
func (b *ElementBuilder) Build() *vdom.VNode {
	props := b.props
	if len(props) == 0 {
		props = nil
	}
	return vdom.NewElement(b.tag, props, b.children...)
}

// Children appends child nodes
func (b *ElementBuilder) Children(children ...*vdom.VNode) *ElementBuilder {
	for _, child := range children {
		if child != nil {
			b.children = append(b.children, child)
		}
	}
	return b
}

// Text appends an escaped text child
func (b *ElementBuilder) Text(text string) *ElementBuilder {
	b.children = append(b.children, vdom.NewText(text))
	return b
}

// Raw appends a raw HTML child
func (b *ElementBuilder) Raw(html string) *ElementBuilder {
	b.children = append(b.children, vdom.NewRaw(html))
	return b
}

// Attr sets an arbitrary attribute
func (b *ElementBuilder) Attr(key string, value any) *ElementBuilder {
	b.props[key] = value
	return b
}

// === Element constructors ===

// Html creates an <html> element builder
func Html() *ElementBuilder { return Element("html") }

// Head creates a <head> element builder
func Head() *ElementBuilder { return Element("head") }

// Body creates a <body> element builder
func Body() *ElementBuilder { return Element("body") }

// Title creates a <title> element builder
func Title() *ElementBuilder { return Element("title") }

// Meta creates a <meta> element builder
func Meta() *ElementBuilder { return Element("meta") }

// Link creates a <link> element builder
func Link() *ElementBuilder { return Element("link") }

// Script creates a <script> element builder
func Script() *ElementBuilder { return Element("script") }

// Div creates a <div> element builder
func Div() *ElementBuilder { return Element("div") }

// Span creates a <span> element builder
func Span() *ElementBuilder { return Element("span") }

// A creates an <a> element builder
func A() *ElementBuilder { return Element("a") }

// Img creates an <img> element builder
func Img() *ElementBuilder { return Element("img") }

// P creates a <p> element builder
func P() *ElementBuilder { return Element("p") }

// H1 creates an <h1> element builder
func H1() *ElementBuilder { return Element("h1") }

// H2 creates an <h2> element builder
func H2() *ElementBuilder { return Element("h2") }

// H3 creates an <h3> element builder
func H3() *ElementBuilder { return Element("h3") }

// H4 creates an <h4> element builder
func H4() *ElementBuilder { return Element("h4") }

// Nav creates a <nav> element builder
func Nav() *ElementBuilder { return Element("nav") }

// Main creates a <main> element builder
func Main() *ElementBuilder { return Element("main") }

// Header creates a <header> element builder
func Header() *ElementBuilder { return Element("header") }

// Footer creates a <footer> element builder
func Footer() *ElementBuilder { return Element("footer") }

// Article creates an <article> element builder
func Article() *ElementBuilder { return Element("article") }

// Section creates a <section> element builder
func Section() *ElementBuilder { return Element("section") }

// Aside creates an <aside> element builder
func Aside() *ElementBuilder { return Element("aside") }

// Ul creates a <ul> element builder
func Ul() *ElementBuilder { return Element("ul") }

// Ol creates an <ol> element builder
func Ol() *ElementBuilder { return Element("ol") }

// Li creates an <li> element builder
func Li() *ElementBuilder { return Element("li") }

// Time creates a <time> element builder
func Time() *ElementBuilder { return Element("time") }

// Form creates a <form> element builder
func Form() *ElementBuilder { return Element("form") }

// Input creates an <input> element builder
func Input() *ElementBuilder { return Element("input") }

// Button creates a <button> element builder
func Button() *ElementBuilder { return Element("button") }

// Label creates a <label> element builder
func Label() *ElementBuilder { return Element("label") }

// Small creates a <small> element builder
func Small() *ElementBuilder { return Element("small") }

// Figure creates a <figure> element builder
func Figure() *ElementBuilder { return Element("figure") }

// Figcaption creates a <figcaption> element builder
func Figcaption() *ElementBuilder { return Element("figcaption") }
