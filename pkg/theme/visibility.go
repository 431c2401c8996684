package theme

import "gopkg.in/yaml.v3"

// VariantSpec is an ordered sequence of style variant names, one per
// responsive breakpoint in mobile-first order. A single-variant spec
// is the common case.
type VariantSpec []string

// Variant builds a single-entry spec
func Variant(name string) VariantSpec {
	return VariantSpec{name}
}

// UnmarshalYAML accepts either a scalar variant name or a sequence of
// breakpoint variant names
func (s *VariantSpec) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var name string
		if err := value.Decode(&name); err != nil {
			return err
		}
		*s = VariantSpec{name}
		return nil
	case yaml.SequenceNode:
		var names []string
		if err := value.Decode(&names); err != nil {
			return err
		}
		*s = VariantSpec(names)
		return nil
	}
	*s = nil
	return nil
}

// IsVisible reports whether an element styled by spec should render at
// all under the given rules.
//
// Each entry of the sequence resolves in order: a declaration whose display
// property is the literal "none" marks that step hidden, anything else
// (including an unknown variant or an empty rule table) marks it
// visible. The final step decides the result, so a later breakpoint
// without "display: none" overrides an earlier hidden one. An earlier
// "none" never hides the element on its own.
//
// Pure function of its inputs; absent or malformed input degrades to
// visible rather than failing.
func IsVisible(spec VariantSpec, rules Rules) bool {
	hidden := false
	for _, name := range spec {
		hidden = rules[name]["display"] == "none"
	}
	return !hidden
}
