package builder

// === Global Attributes ===

// Class sets the class attribute
func (b *ElementBuilder) Class(class string) *ElementBuilder {
	if class != "" {
		b.props["class"] = class
	}
	return b
}

// ID sets the id attribute
func (b *ElementBuilder) ID(id string) *ElementBuilder {
	b.props["id"] = id
	return b
}

// Lang sets the lang attribute
func (b *ElementBuilder) Lang(lang string) *ElementBuilder {
	b.props["lang"] = lang
	return b
}

// Role sets the role attribute
func (b *ElementBuilder) Role(role string) *ElementBuilder {
	b.props["role"] = role
	return b
}

// AriaLabel sets the aria-label attribute
func (b *ElementBuilder) AriaLabel(label string) *ElementBuilder {
	b.props["aria-label"] = label
	return b
}

// === Link & Media Attributes ===

// Href sets the href attribute
func (b *ElementBuilder) Href(href string) *ElementBuilder {
	b.props["href"] = href
	return b
}

// Target sets the target attribute
func (b *ElementBuilder) Target(target string) *ElementBuilder {
	b.props["target"] = target
	return b
}

// Rel sets the rel attribute
func (b *ElementBuilder) Rel(rel string) *ElementBuilder {
	b.props["rel"] = rel
	return b
}

// Src sets the src attribute
func (b *ElementBuilder) Src(src string) *ElementBuilder {
	b.props["src"] = src
	return b
}

// Alt sets the alt attribute
func (b *ElementBuilder) Alt(alt string) *ElementBuilder {
	b.props["alt"] = alt
	return b
}

// Width sets the width attribute
func (b *ElementBuilder) Width(width string) *ElementBuilder {
	b.props["width"] = width
	return b
}

// Height sets the height attribute
func (b *ElementBuilder) Height(height string) *ElementBuilder {
	b.props["height"] = height
	return b
}

// Loading sets the loading attribute (lazy, eager)
func (b *ElementBuilder) Loading(loading string) *ElementBuilder {
	b.props["loading"] = loading
	return b
}

// Datetime sets the datetime attribute on <time> elements
func (b *ElementBuilder) Datetime(dt string) *ElementBuilder {
	b.props["datetime"] = dt
	return b
}

// === Form Attributes ===

// Name sets the name attribute
func (b *ElementBuilder) Name(name string) *ElementBuilder {
	b.props["name"] = name
	return b
}

// Type sets the type attribute
func (b *ElementBuilder) Type(t string) *ElementBuilder {
	b.props["type"] = t
	return b
}

// Value sets the value attribute
func (b *ElementBuilder) Value(value string) *ElementBuilder {
	b.props["value"] = value
	return b
}

// Placeholder sets the placeholder attribute
func (b *ElementBuilder) Placeholder(placeholder string) *ElementBuilder {
	b.props["placeholder"] = placeholder
	return b
}

// Required sets the required attribute
func (b *ElementBuilder) Required(required bool) *ElementBuilder {
	if required {
		b.props["required"] = true
	}
	return b
}

// Action sets the action attribute
func (b *ElementBuilder) Action(action string) *ElementBuilder {
	b.props["action"] = action
	return b
}

// Method sets the method attribute
func (b *ElementBuilder) Method(method string) *ElementBuilder {
	b.props["method"] = method
	return b
}

// For sets the for attribute on <label> elements
func (b *ElementBuilder) For(id string) *ElementBuilder {
	b.props["for"] = id
	return b
}

// === Meta Attributes ===

// Charset sets the charset attribute
func (b *ElementBuilder) Charset(charset string) *ElementBuilder {
	b.props["charset"] = charset
	return b
}

// Content sets the content attribute
func (b *ElementBuilder) Content(content string) *ElementBuilder {
	b.props["content"] = content
	return b
}

// Property sets the property attribute (Open Graph tags)
func (b *ElementBuilder) Property(property string) *ElementBuilder {
	b.props["property"] = property
	return b
}
