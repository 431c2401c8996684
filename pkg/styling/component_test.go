package styling

import (
	"strings"
	"testing"
)

func TestStyle(t *testing.T) {
	css := `
		.card {
			background: white;
			padding: 1rem;
		}
		.cardFooter {
			color: gray;
		}
	`

	style := Style(css)

	if style.Hash == "" {
		t.Error("Expected hash to be generated")
	}

	cardClass := style.Class("card")
	if !strings.HasPrefix(cardClass, "_") {
		t.Errorf("Expected hashed class name to start with _, got %s", cardClass)
	}
	if cardClass == style.Class("cardFooter") {
		t.Error("Distinct classes should hash to distinct names")
	}

	// Scoped CSS references hashed names, not the originals
	if !strings.Contains(style.CSS, "."+cardClass) {
		t.Errorf("Expected scoped CSS to contain %s", cardClass)
	}
	if strings.Contains(style.CSS, ".card {") {
		t.Error("Expected original selector to be rewritten")
	}
}

func TestStyle_UnknownClassFallsBack(t *testing.T) {
	style := Style(`.known { color: red; }`)

	if got := style.Class("unknown"); got != "unknown" {
		t.Errorf("Class(unknown) = %q, want passthrough", got)
	}

	var nilStyle *ComponentStyle
	if got := nilStyle.Class("anything"); got != "anything" {
		t.Errorf("nil style Class = %q, want passthrough", got)
	}
}

func TestComponentStyle_Classes(t *testing.T) {
	style := Style(`
		.btn { padding: 1rem; }
		.primary { background: blue; }
	`)

	combined := style.Classes("btn", "primary")
	parts := strings.Fields(combined)
	if len(parts) != 2 {
		t.Fatalf("Expected 2 classes, got %d", len(parts))
	}
	if parts[0] != style.Class("btn") || parts[1] != style.Class("primary") {
		t.Errorf("Classes() = %q, order not preserved", combined)
	}
}

func TestClassNames(t *testing.T) {
	tests := []struct {
		name     string
		css      string
		expected []string
	}{
		{
			name:     "single class",
			css:      `.card { color: red; }`,
			expected: []string{"card"},
		},
		{
			name:     "hyphenated class",
			css:      `.btn-primary { background: blue; }`,
			expected: []string{"btn-primary"},
		},
		{
			name:     "comment ignored",
			css:      `/* .ghost { } */ .real { }`,
			expected: []string{"real"},
		},
		{
			name: "media query",
			css: `
				.container { }
				@media (min-width: 768px) {
					.container { }
					.wide { }
				}
			`,
			expected: []string{"container", "wide"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			names := classNames(tt.css)
			for _, expected := range tt.expected {
				found := false
				for _, name := range names {
					if name == expected {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("Expected class name %s not found in %v", expected, names)
				}
			}
		})
	}
}

func TestRegistry(t *testing.T) {
	Reset()

	style1 := StyleWithRegistry(`.test1 { color: red; }`)
	_ = StyleWithRegistry(`.test2 { color: blue; }`)

	allCSS := GetAllCSS()
	if !strings.Contains(allCSS, "color: red") {
		t.Error("Expected style1 CSS in registry")
	}
	if !strings.Contains(allCSS, "color: blue") {
		t.Error("Expected style2 CSS in registry")
	}

	// Identical CSS registers once
	style3 := StyleWithRegistry(`.test1 { color: red; }`)
	if style3.Hash != style1.Hash {
		t.Error("Expected same hash for identical CSS")
	}
	if GetAllCSS() != allCSS {
		t.Error("Registry should not contain duplicate styles")
	}
}
