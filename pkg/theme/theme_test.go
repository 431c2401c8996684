package theme

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_MissingFile(t *testing.T) {
	th, err := Load(filepath.Join(t.TempDir(), "theme.yml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(th.Breakpoints) == 0 {
		t.Error("expected default breakpoints")
	}
	if th.Colors["background"] == "" {
		t.Error("expected default background color")
	}
	if th.Variants == nil {
		t.Error("expected non-nil variants table")
	}
}

func TestLoad_MergesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.yml")
	content := `
colors:
  accent: "#ff0000"
variants:
  authorPhoto.mobile:
    display: none
  authorPhoto.desktop:
    border-radius: 50%
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	th, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if th.Colors["accent"] != "#ff0000" {
		t.Errorf("accent = %q, want overridden value", th.Colors["accent"])
	}
	if th.Colors["background"] == "" {
		t.Error("expected default background to be merged in")
	}
	if th.Variants["authorPhoto.mobile"]["display"] != "none" {
		t.Error("expected authorPhoto.mobile display:none")
	}
	if !IsVisible(VariantSpec{"authorPhoto.mobile", "authorPhoto.desktop"}, th.Variants) {
		t.Error("desktop variant should override the mobile hidden entry")
	}
}

func TestLoad_Malformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.yml")
	if err := os.WriteFile(path, []byte("{not yaml"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed theme file")
	}
}

func TestClassName(t *testing.T) {
	tests := []struct {
		variant  string
		expected string
	}{
		{"card", "card"},
		{"authorPhoto.mobile", "authorPhoto-mobile"},
		{"footer.wide.dark", "footer-wide-dark"},
	}

	for _, tt := range tests {
		if got := ClassName(tt.variant); got != tt.expected {
			t.Errorf("ClassName(%q) = %q, want %q", tt.variant, got, tt.expected)
		}
	}
}

func TestStylesheet(t *testing.T) {
	th := Default()
	th.Variants = Rules{
		"authorPhoto.mobile": {"display": "none"},
		"card":               {"padding": "1rem", "border-radius": "8px"},
		"empty":              {},
	}

	css := th.Stylesheet()

	if !strings.Contains(css, "--color-background:") {
		t.Error("expected color custom properties")
	}
	if !strings.Contains(css, ".authorPhoto-mobile {") {
		t.Error("expected variant class rule")
	}
	if !strings.Contains(css, "display: none;") {
		t.Error("expected display declaration")
	}
	if strings.Contains(css, ".empty") {
		t.Error("empty declarations should not emit a rule")
	}

	// Deterministic output
	if th.Stylesheet() != css {
		t.Error("stylesheet output is not stable")
	}
}
