// Package theme models a site theme: responsive breakpoints, color and
// font scales, and named style variants that components resolve at
// render time.
package theme

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Decl is a single style declaration: CSS property -> value.
// A declaration may or may not carry a "display" property.
type Decl map[string]string

// Rules maps a style variant name to its declaration. Missing names
// resolve to an empty declaration.
type Rules map[string]Decl

// Theme is the style configuration of a site, loaded from theme.yml
type Theme struct {
	// Breakpoints are min-width thresholds in mobile-first order,
	// e.g. ["640px", "1024px"]
	Breakpoints []string `yaml:"breakpoints"`

	// Colors maps color scale names to CSS values
	Colors map[string]string `yaml:"colors"`

	// Fonts maps font scale names to font stacks
	Fonts map[string]string `yaml:"fonts"`

	// Variants are the named style overrides components reference
	Variants Rules `yaml:"variants"`
}

// Default returns the theme used when no theme.yml exists
func Default() *Theme {
	return &Theme{
		Breakpoints: []string{"640px", "1024px"},
		Colors: map[string]string{
			"background": "#ffffff",
			"text":       "#1a202c",
			"muted":      "#718096",
			"accent":     "#3b82f6",
		},
		Fonts: map[string]string{
			"body":    `Georgia, serif`,
			"heading": `"Helvetica Neue", Arial, sans-serif`,
			"mono":    `"SF Mono", Menlo, monospace`,
		},
		Variants: Rules{},
	}
}

// Load reads a theme file. A missing file yields the default theme.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}

	var t Theme
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse theme file: %w", err)
	}

	applyDefaults(&t)
	return &t, nil
}

func applyDefaults(t *Theme) {
	defaults := Default()

	if len(t.Breakpoints) == 0 {
		t.Breakpoints = defaults.Breakpoints
	}
	if t.Colors == nil {
		t.Colors = defaults.Colors
	} else {
		for k, v := range defaults.Colors {
			if _, ok := t.Colors[k]; !ok {
				t.Colors[k] = v
			}
		}
	}
	if t.Fonts == nil {
		t.Fonts = defaults.Fonts
	}
	if t.Variants == nil {
		t.Variants = Rules{}
	}
}

// CSS serializes a declaration as a property block, properties sorted
// for stable output
func (d Decl) CSS() string {
	if len(d) == 0 {
		return ""
	}

	props := make([]string, 0, len(d))
	for k := range d {
		props = append(props, k)
	}
	sort.Strings(props)

	var b strings.Builder
	for _, p := range props {
		b.WriteString("  ")
		b.WriteString(p)
		b.WriteString(": ")
		b.WriteString(d[p])
		b.WriteString(";\n")
	}
	return b.String()
}

// ClassName converts a variant name to the CSS class the stylesheet
// generator emits for it, e.g. "authorPhoto.mobile" -> "authorPhoto-mobile"
func ClassName(variant string) string {
	return strings.ReplaceAll(variant, ".", "-")
}

// Stylesheet generates the theme's CSS: custom properties for the
// color and font scales followed by one class rule per variant
func (t *Theme) Stylesheet() string {
	var b strings.Builder

	b.WriteString(":root {\n")
	for _, name := range sortedKeys(t.Colors) {
		fmt.Fprintf(&b, "  --color-%s: %s;\n", name, t.Colors[name])
	}
	for _, name := range sortedKeys(t.Fonts) {
		fmt.Fprintf(&b, "  --font-%s: %s;\n", name, t.Fonts[name])
	}
	b.WriteString("}\n")

	variants := make([]string, 0, len(t.Variants))
	for name := range t.Variants {
		variants = append(variants, name)
	}
	sort.Strings(variants)

	for _, name := range variants {
		decl := t.Variants[name]
		if len(decl) == 0 {
			continue
		}
		fmt.Fprintf(&b, ".%s {\n%s}\n", ClassName(name), decl.CSS())
	}

	return b.String()
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
