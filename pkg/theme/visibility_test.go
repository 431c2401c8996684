package theme

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestIsVisible(t *testing.T) {
	rules := Rules{
		"authorPhoto.mobile":  {"display": "none"},
		"authorPhoto.desktop": {},
		"hidden":              {"display": "none", "width": "0"},
		"inline":              {"display": "inline-block"},
	}

	tests := []struct {
		name    string
		spec    VariantSpec
		rules   Rules
		visible bool
	}{
		{
			name:    "no display restriction",
			spec:    Variant("inline"),
			rules:   rules,
			visible: true,
		},
		{
			name:    "single hidden variant",
			spec:    Variant("hidden"),
			rules:   rules,
			visible: false,
		},
		{
			name:    "unknown variant",
			spec:    Variant("doesNotExist"),
			rules:   rules,
			visible: true,
		},
		{
			name:    "empty rule table",
			spec:    Variant("hidden"),
			rules:   Rules{},
			visible: true,
		},
		{
			name:    "nil rule table",
			spec:    Variant("hidden"),
			rules:   nil,
			visible: true,
		},
		{
			name:    "empty spec",
			spec:    nil,
			rules:   rules,
			visible: true,
		},
		{
			name:    "later visible breakpoint overrides earlier hidden one",
			spec:    VariantSpec{"authorPhoto.mobile", "authorPhoto.desktop"},
			rules:   rules,
			visible: true,
		},
		{
			name:    "final breakpoint hidden",
			spec:    VariantSpec{"authorPhoto.desktop", "authorPhoto.mobile"},
			rules:   rules,
			visible: false,
		},
		{
			name:    "all breakpoints hidden",
			spec:    VariantSpec{"hidden", "hidden"},
			rules:   rules,
			visible: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsVisible(tt.spec, tt.rules); got != tt.visible {
				t.Errorf("IsVisible(%v) = %v, want %v", tt.spec, got, tt.visible)
			}
		})
	}
}

func TestIsVisible_Pure(t *testing.T) {
	rules := Rules{"gone": {"display": "none"}}
	spec := VariantSpec{"gone", "shown"}

	first := IsVisible(spec, rules)
	for i := 0; i < 100; i++ {
		if IsVisible(spec, rules) != first {
			t.Fatal("IsVisible returned different results for identical inputs")
		}
	}
}

func TestIsVisible_NoHiddenEntries(t *testing.T) {
	// Any rule table without a "display: none" entry resolves visible
	// regardless of the variant sequence
	rules := Rules{
		"a": {"display": "block"},
		"b": {"color": "red"},
		"c": {},
	}

	specs := []VariantSpec{
		Variant("a"),
		Variant("b"),
		Variant("c"),
		{"a", "b", "c"},
		{"missing", "a"},
	}

	for _, spec := range specs {
		if !IsVisible(spec, rules) {
			t.Errorf("IsVisible(%v) = false, want true", spec)
		}
	}
}

func TestVariantSpec_UnmarshalYAML(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		expected VariantSpec
	}{
		{
			name:     "scalar",
			yaml:     `variant: authorPhoto`,
			expected: VariantSpec{"authorPhoto"},
		},
		{
			name:     "sequence",
			yaml:     `variant: [authorPhoto.mobile, authorPhoto.desktop]`,
			expected: VariantSpec{"authorPhoto.mobile", "authorPhoto.desktop"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var doc struct {
				Variant VariantSpec `yaml:"variant"`
			}
			if err := yaml.Unmarshal([]byte(tt.yaml), &doc); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(doc.Variant) != len(tt.expected) {
				t.Fatalf("expected %d entries, got %d", len(tt.expected), len(doc.Variant))
			}
			for i := range tt.expected {
				if doc.Variant[i] != tt.expected[i] {
					t.Errorf("entry %d = %q, want %q", i, doc.Variant[i], tt.expected[i])
				}
			}
		})
	}
}
