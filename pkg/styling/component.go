// Package styling provides scoped component CSS. Each component
// declares its stylesheet once; class names are hashed so rules from
// different components cannot collide, and a global registry collects
// everything the build writes to styles.css.
package styling

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
)

// ComponentStyle represents a component's scoped styles
type ComponentStyle struct {
	// Hash identifies this stylesheet, derived from its content
	Hash string

	// names maps original class names to hashed class names,
	// e.g. "card" -> "_a1b2c3_card"
	names map[string]string

	// CSS is the stylesheet content with selectors rewritten to the
	// hashed class names
	CSS string
}

// Style creates a new ComponentStyle from raw CSS
func Style(css string) *ComponentStyle {
	sum := sha256.Sum256([]byte(css))
	hash := "_" + hex.EncodeToString(sum[:])[:6]

	names := make(map[string]string)
	for _, class := range classNames(css) {
		scoped := hash + "_" + strings.NewReplacer(".", "_", ":", "_").Replace(class)
		names[class] = scoped
	}

	// Replace longest names first so ".card" does not clobber ".cardFooter"
	ordered := make([]string, 0, len(names))
	for original := range names {
		ordered = append(ordered, original)
	}
	sort.Slice(ordered, func(i, j int) bool { return len(ordered[i]) > len(ordered[j]) })

	scoped := css
	for _, original := range ordered {
		scoped = strings.ReplaceAll(scoped, "."+original, "."+names[original])
	}

	return &ComponentStyle{
		Hash:  hash,
		names: names,
		CSS:   scoped,
	}
}

// classNames extracts the class selectors declared in css
func classNames(css string) []string {
	css = stripComments(css)

	seen := make(map[string]bool)
	var out []string

	for i := 0; i < len(css); i++ {
		if css[i] != '.' {
			continue
		}
		j := i + 1
		for j < len(css) && isSelectorChar(css[j]) {
			j++
		}
		if j > i+1 {
			name := css[i+1 : j]
			if !seen[name] {
				seen[name] = true
				out = append(out, name)
			}
		}
		i = j - 1
	}

	return out
}

func isSelectorChar(c byte) bool {
	return c == '-' || c == '_' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func stripComments(css string) string {
	var b strings.Builder
	for {
		start := strings.Index(css, "/*")
		if start < 0 {
			b.WriteString(css)
			return b.String()
		}
		b.WriteString(css[:start])
		end := strings.Index(css[start+2:], "*/")
		if end < 0 {
			return b.String()
		}
		css = css[start+2+end+2:]
	}
}

// Class returns the hashed class name for the given original name.
// Falls back to the original name for unknown classes.
func (c *ComponentStyle) Class(name string) string {
	if c == nil {
		return name
	}
	if v, ok := c.names[name]; ok {
		return v
	}
	return name
}

// Classes returns multiple hashed class names separated by spaces
func (c *ComponentStyle) Classes(names ...string) string {
	hashed := make([]string, 0, len(names))
	for _, name := range names {
		hashed = append(hashed, c.Class(name))
	}
	return strings.Join(hashed, " ")
}

// Has returns whether a class name exists in this component's styles
func (c *ComponentStyle) Has(name string) bool {
	if c == nil || c.names == nil {
		return false
	}
	_, ok := c.names[name]
	return ok
}
