package vdom

// VKind represents the type of virtual node
type VKind uint8

const (
	// KindElement represents an HTML element node
	KindElement VKind = iota
	// KindText represents an escaped text node
	KindText
	// KindRaw represents pre-rendered HTML emitted verbatim,
	// e.g. the body of a markdown post after processing
	KindRaw
	// KindFragment represents a fragment (multiple children without parent)
	KindFragment
)

// Props represents the attributes of a VNode
type Props map[string]any

// VNode represents a virtual markup node.
// This struct is immutable - once created, it should never be modified.
type VNode struct {
	// Kind determines the type of this node
	Kind VKind

	// Tag is the element tag name (e.g., "div", "article")
	// Only used when Kind == KindElement
	Tag string

	// Props contains all attributes for this node
	Props Props

	// Kids contains child nodes
	// For KindText and KindRaw, this is nil
	Kids []VNode

	// Text content (KindText) or raw HTML (KindRaw)
	Text string
}

// NewElement creates a new element VNode
func NewElement(tag string, props Props, children ...*VNode) *VNode {
	kids := make([]VNode, 0, len(children))
	for _, child := range children {
		if child != nil {
			kids = append(kids, *child)
		}
	}

	return &VNode{
		Kind:  KindElement,
		Tag:   tag,
		Props: props,
		Kids:  kids,
	}
}

// NewText creates a new text VNode
func NewText(text string) *VNode {
	return &VNode{
		Kind: KindText,
		Text: text,
	}
}

// NewRaw creates a VNode whose content is emitted without escaping.
// Callers are responsible for the safety of the markup they pass in;
// the content pipeline only feeds it HTML produced by the markdown
// renderer.
func NewRaw(html string) *VNode {
	return &VNode{
		Kind: KindRaw,
		Text: html,
	}
}

// NewFragment creates a new fragment VNode
func NewFragment(children ...*VNode) *VNode {
	kids := make([]VNode, 0, len(children))
	for _, child := range children {
		if child != nil {
			kids = append(kids, *child)
		}
	}

	return &VNode{
		Kind: KindFragment,
		Kids: kids,
	}
}

// IsElement returns true if this is an element node
func (v VNode) IsElement() bool {
	return v.Kind == KindElement
}

// IsText returns true if this is a text node
func (v VNode) IsText() bool {
	return v.Kind == KindText
}

// IsRaw returns true if this is a raw HTML node
func (v VNode) IsRaw() bool {
	return v.Kind == KindRaw
}

// IsFragment returns true if this is a fragment node
func (v VNode) IsFragment() bool {
	return v.Kind == KindFragment
}
