package html

import (
	"fmt"
	"html"
	"io"
	"sort"
	"strings"

	"github.com/foliopress/folio/pkg/folio/vdom"
)

// voidElements are HTML elements that cannot have children
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// booleanAttributes are HTML attributes that are boolean flags
var booleanAttributes = map[string]bool{
	"checked":   true,
	"disabled":  true,
	"readonly":  true,
	"required":  true,
	"selected":  true,
	"defer":     true,
	"async":     true,
	"multiple":  true,
	"autofocus": true,
}

// HTMLApplier renders VNodes to HTML
type HTMLApplier struct {
	w   io.Writer
	err error
}

// NewHTMLApplier creates a new HTML applier
func NewHTMLApplier(w io.Writer) *HTMLApplier {
	return &HTMLApplier{w: w}
}

// Apply renders a VNode tree to HTML
func (a *HTMLApplier) Apply(node *vdom.VNode) error {
	if node == nil {
		return nil
	}

	a.renderNode(node)
	return a.err
}

// write helper that tracks errors
func (a *HTMLApplier) write(s string) {
	if a.err != nil {
		return
	}
	_, a.err = io.WriteString(a.w, s)
}

// renderNode renders a single VNode
func (a *HTMLApplier) renderNode(node *vdom.VNode) {
	if node == nil || a.err != nil {
		return
	}

	switch node.Kind {
	case vdom.KindText:
		// HTML escape text content to prevent XSS
		a.write(html.EscapeString(node.Text))

	case vdom.KindRaw:
		// Pre-rendered markup (markdown output) is emitted verbatim
		a.write(node.Text)

	case vdom.KindElement:
		a.renderElement(node)

	case vdom.KindFragment:
		// Fragments just render their children
		for i := range node.Kids {
			a.renderNode(&node.Kids[i])
		}
	}
}

// renderElement renders an element node
func (a *HTMLApplier) renderElement(node *vdom.VNode) {
	// Start tag
	a.write("<")
	a.write(node.Tag)

	// Render attributes
	if node.Props != nil {
		for _, key := range sortedKeys(node.Props) {
			value := node.Props[key]

			// Handle boolean attributes
			if booleanAttributes[key] {
				if v, ok := value.(bool); ok && v {
					a.write(" ")
					a.write(key)
				}
				continue
			}

			// Regular attributes
			valueStr := fmt.Sprintf("%v", value)

			// Security: prevent javascript: URLs in href/src attributes
			if (key == "href" || key == "src") && strings.HasPrefix(strings.ToLower(valueStr), "javascript:") {
				valueStr = "#"
			}

			a.write(" ")
			a.write(key)
			a.write(`="`)
			a.write(html.EscapeString(valueStr))
			a.write(`"`)
		}
	}

	// Close opening tag
	a.write(">")

	// Void elements don't have closing tags or children
	if voidElements[node.Tag] {
		return
	}

	// Script and style tags should not have their content escaped
	isRawTextElement := node.Tag == "script" || node.Tag == "style"
	for i := range node.Kids {
		if isRawTextElement {
			a.renderRawNode(&node.Kids[i])
		} else {
			a.renderNode(&node.Kids[i])
		}
	}

	// Closing tag
	a.write("</")
	a.write(node.Tag)
	a.write(">")
}

// renderRawNode renders a node without HTML escaping (for script/style content)
func (a *HTMLApplier) renderRawNode(node *vdom.VNode) {
	if node == nil || a.err != nil {
		return
	}

	switch node.Kind {
	case vdom.KindText, vdom.KindRaw:
		a.write(node.Text)

	case vdom.KindElement:
		// This shouldn't happen inside script/style but handle anyway
		a.renderElement(node)

	case vdom.KindFragment:
		for i := range node.Kids {
			a.renderRawNode(&node.Kids[i])
		}
	}
}

// sortedKeys returns the prop keys in a stable order so rendered
// output is deterministic across builds.
func sortedKeys(props vdom.Props) []string {
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// RenderToString is a convenience function to render a VNode to a string
func RenderToString(node *vdom.VNode) (string, error) {
	var buf strings.Builder
	applier := NewHTMLApplier(&buf)
	if err := applier.Apply(node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderDocument renders a complete HTML document with doctype
func RenderDocument(w io.Writer, root *vdom.VNode) error {
	if _, err := io.WriteString(w, "<!DOCTYPE html>\n"); err != nil {
		return err
	}
	applier := NewHTMLApplier(w)
	return applier.Apply(root)
}
