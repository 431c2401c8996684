package components

import (
	"strings"
	"testing"

	html "github.com/foliopress/folio/pkg/renderer/html"
)

func TestPagePath(t *testing.T) {
	tests := []struct {
		base     string
		page     int
		expected string
	}{
		{"/", 1, "/"},
		{"/", 2, "/page/2/"},
		{"/tags/go/", 1, "/tags/go/"},
		{"/tags/go/", 3, "/tags/go/page/3/"},
	}

	for _, tt := range tests {
		if got := PagePath(tt.base, tt.page); got != tt.expected {
			t.Errorf("PagePath(%q, %d) = %q, want %q", tt.base, tt.page, got, tt.expected)
		}
	}
}

func TestPagination(t *testing.T) {
	tests := []struct {
		name        string
		props       PaginationProps
		nilNode     bool
		contains    []string
		notContains []string
	}{
		{
			name:    "single page renders nothing",
			props:   PaginationProps{Current: 1, Total: 1, BasePath: "/"},
			nilNode: true,
		},
		{
			name:        "first page has only older link",
			props:       PaginationProps{Current: 1, Total: 3, BasePath: "/"},
			contains:    []string{`href="/page/2/"`, "Page 1 of 3", `rel="next"`},
			notContains: []string{`rel="prev"`},
		},
		{
			name:     "middle page has both links",
			props:    PaginationProps{Current: 2, Total: 3, BasePath: "/"},
			contains: []string{`href="/"`, `href="/page/3/"`, "Page 2 of 3"},
		},
		{
			name:        "last page has only newer link",
			props:       PaginationProps{Current: 3, Total: 3, BasePath: "/"},
			contains:    []string{`href="/page/2/"`, `rel="prev"`},
			notContains: []string{`rel="next"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := Pagination(tt.props)
			if tt.nilNode {
				if node != nil {
					t.Fatal("expected nil node")
				}
				return
			}

			out, err := html.RenderToString(node)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q: %s", want, out)
				}
			}
			for _, unwanted := range tt.notContains {
				if strings.Contains(out, unwanted) {
					t.Errorf("output should not contain %q: %s", unwanted, out)
				}
			}
		})
	}
}

func TestNewsletter(t *testing.T) {
	if Newsletter(NewsletterProps{}) != nil {
		t.Error("newsletter without an action should not render")
	}

	node := Newsletter(NewsletterProps{
		Heading: "Stay in the loop",
		Blurb:   "Go articles, monthly.",
		Action:  "https://list.example.com/subscribe",
	})

	out, err := html.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{
		"Stay in the loop",
		"Go articles, monthly.",
		`action="https://list.example.com/subscribe"`,
		`type="email"`,
		"required",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestSeo(t *testing.T) {
	node := Seo(SeoProps{
		Title:       "Understanding Goroutines",
		SiteTitle:   "The Go Notebook",
		Description: "Concurrency basics.",
		Canonical:   "https://example.com/understanding-goroutines/",
		Image:       "https://example.com/images/goroutines.jpg",
		Type:        "article",
	})

	out, err := html.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{
		"<title>Understanding Goroutines | The Go Notebook</title>",
		`property="og:type"`,
		`content="article"`,
		`rel="canonical"`,
		`name="twitter:card"`,
		`content="summary_large_image"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %s", want, out)
		}
	}
}

func TestLayout_WrapsContent(t *testing.T) {
	ctx := testContext(nil)
	page := Layout(ctx, LayoutProps{
		Seo:       SeoProps{SiteTitle: "The Go Notebook"},
		SiteTitle: "The Go Notebook",
		Menu: []MenuItem{
			{Label: "Archive", Href: "/archive/"},
		},
		Social: []SocialLink{
			{Label: "GitHub", URL: "https://github.com/example"},
		},
		Content: Card(ctx, CardProps{Title: "Hello", Href: "/hello/"}),
	})

	out, err := html.RenderToString(page)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{
		`<html lang="en">`,
		`rel="stylesheet"`,
		"The Go Notebook",
		`href="/archive/"`,
		"Hello",
		"https://github.com/example",
		"<footer",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}
