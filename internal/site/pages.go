package site

import (
	"bytes"
	"fmt"
	"log"
	"strings"

	"github.com/foliopress/folio/internal/cache"
	"github.com/foliopress/folio/internal/content"
	"github.com/foliopress/folio/pkg/components"
	"github.com/foliopress/folio/pkg/folio/vdom"
	html "github.com/foliopress/folio/pkg/renderer/html"
	"github.com/foliopress/folio/pkg/theme"
	"github.com/foliopress/folio/pkg/vex/builder"
)

// layoutProps assembles the shared page shell props
func (b *Builder) layoutProps(seo components.SeoProps, body *vdom.VNode) components.LayoutProps {
	props := components.LayoutProps{
		Seo:       seo,
		SiteTitle: b.config.Site.Title,
		Menu:      b.config.ComponentMenu(),
		Social:    b.config.ComponentSocial(),
		Content:   body,
		HeadExtra: b.HeadExtra,
	}
	if b.config.Newsletter.Action != "" {
		props.Widgets = append(props.Widgets, components.Newsletter(components.NewsletterProps{
			Heading: b.config.Newsletter.Heading,
			Blurb:   b.config.Newsletter.Blurb,
			Action:  b.config.Newsletter.Action,
		}))
	}
	return props
}

// postCard converts a post into card props, resolving its author
// against the roster.
func (b *Builder) postCard(ctx components.Context, post content.Post) *vdom.VNode {
	props := components.CardProps{
		Title:         post.Title,
		Excerpt:       post.Excerpt,
		Href:          "/posts/" + post.Slug + "/",
		Image:         post.HeroImage,
		Date:          post.Date,
		ReadingTime:   post.ReadingTime,
		AvatarVariant: b.avatarVariant(post),
	}
	if author, ok := b.config.LookupAuthor(post.Author); ok {
		props.Author = &author
	}
	return components.Card(ctx, props)
}

// avatarVariant picks the post's override or the listing default
func (b *Builder) avatarVariant(post content.Post) theme.VariantSpec {
	if len(post.AvatarVariant) > 0 {
		return post.AvatarVariant
	}
	return theme.VariantSpec(b.config.Listing.AvatarVariant)
}

// buildListings renders the index page and its /page/N/ follow-ups.
func (b *Builder) buildListings(ctx components.Context, posts []content.Post) error {
	pages := paginate(posts, b.config.Listing.PostsPerPage)

	for i, pagePosts := range pages {
		pageNum := i + 1

		var cards []*vdom.VNode
		for _, post := range pagePosts {
			cards = append(cards, b.postCard(ctx, post))
		}

		body := vdom.NewFragment(
			components.CardGrid(components.CardGridProps{Cards: cards}),
			components.Pagination(components.PaginationProps{
				Current:  pageNum,
				Total:    len(pages),
				BasePath: "/",
			}),
		)

		seo := components.SeoProps{
			SiteTitle:   b.config.Site.Title,
			Description: b.config.Site.Description,
			Canonical:   b.absoluteURL(components.PagePath("/", pageNum)),
		}
		if pageNum > 1 {
			seo.Title = fmt.Sprintf("Page %d", pageNum)
		}

		page := components.Layout(ctx, b.layoutProps(seo, body))

		relDir := "."
		if pageNum > 1 {
			relDir = fmt.Sprintf("page/%d", pageNum)
		}
		if err := b.writePage(relDir, page); err != nil {
			return err
		}
	}
	return nil
}

// buildPost renders one post page, consulting the render cache when
// one is attached.
func (b *Builder) buildPost(ctx components.Context, post *content.Post) error {
	key := "posts/" + post.Slug
	hash := b.postHash(post)

	if b.Cache != nil {
		if data, ok := b.Cache.Get(key, hash); ok {
			return b.writeRaw("posts/"+post.Slug+"/index.html", data)
		}
	}

	page := components.Layout(ctx, b.layoutProps(
		components.SeoProps{
			Title:       post.Title,
			SiteTitle:   b.config.Site.Title,
			Description: post.Excerpt,
			Canonical:   b.absoluteURL("/posts/" + post.Slug + "/"),
			Image:       post.HeroImage,
			Type:        "article",
		},
		b.postArticle(ctx, post),
	))

	var buf bytes.Buffer
	if err := html.RenderDocument(&buf, page); err != nil {
		return fmt.Errorf("rendering post %s: %w", post.Slug, err)
	}

	if b.Cache != nil {
		deps := []string{b.config.Paths.Theme, "folio.yml"}
		if err := b.Cache.Put(key, hash, buf.Bytes(), deps); err != nil {
			// Cache trouble must not fail the build
			log.Printf("⚠️  Cache write failed: %v", err)
		}
	}

	return b.writeRaw("posts/"+post.Slug+"/index.html", buf.Bytes())
}

// postHash fingerprints every input a post page is rendered from
func (b *Builder) postHash(post *content.Post) string {
	var sb strings.Builder
	sb.WriteString(post.Title)
	sb.WriteString(post.Date.String())
	sb.WriteString(post.Author)
	sb.WriteString(strings.Join(post.Tags, ","))
	sb.WriteString(post.Excerpt)
	sb.WriteString(post.Content)
	sb.WriteString(post.HeroImage)
	sb.WriteString(strings.Join(post.AvatarVariant, ","))
	return cache.HashBytes([]byte(sb.String()))
}

// postArticle builds the article body: hero, header with byline,
// rendered markdown, tags and related posts.
func (b *Builder) postArticle(ctx components.Context, post *content.Post) *vdom.VNode {
	var children []*vdom.VNode

	if post.HeroImage != "" {
		children = append(children,
			builder.Img().
				Class(postStyle.Class("postHero")).
				Src(post.HeroImage).
				Alt(post.Title).
				Build(),
		)
	}

	header := builder.Header().Children(
		builder.H1().Class(postStyle.Class("postTitle")).Text(post.Title).Build(),
		b.postByline(ctx, post),
	).Build()
	children = append(children, header)

	children = append(children,
		builder.Div().
			Class(postStyle.Class("postBody")).
			Raw(post.Content).
			Build(),
	)

	if tags := b.tagList(post.Tags); tags != nil {
		children = append(children, tags)
	}
	if related := b.relatedSection(ctx, post); related != nil {
		children = append(children, related)
	}

	return builder.Article().
		Class(postStyle.Class("post")).
		Children(children...).
		Build()
}

// postByline renders date, reading time and the author fragments,
// each behind its own gate.
func (b *Builder) postByline(ctx components.Context, post *content.Post) *vdom.VNode {
	items := []*vdom.VNode{
		builder.Time().
			Datetime(post.Date.Format("2006-01-02")).
			Text(post.Date.Format("January 2, 2006")).
			Build(),
		builder.Span().Text(fmt.Sprintf("%d min read", post.ReadingTime)).Build(),
	}

	if author, ok := b.config.LookupAuthor(post.Author); ok {
		variant := b.avatarVariant(*post)
		if avatar := components.Avatar(ctx, components.AvatarProps{
			Author:  &author,
			Variant: variant,
		}); avatar != nil {
			items = append(items, avatar)
		}
		if name := components.AuthorName(ctx, components.AuthorNameProps{
			Author: &author,
		}); name != nil {
			items = append(items, name)
		}
	}

	return builder.Div().
		Class(postStyle.Class("postByline")).
		Children(items...).
		Build()
}

func (b *Builder) tagList(tags []string) *vdom.VNode {
	if len(tags) == 0 {
		return nil
	}
	var links []*vdom.VNode
	for _, tag := range tags {
		links = append(links,
			builder.A().
				Href("/tags/"+strings.ToLower(tag)+"/").
				Text("#"+tag).
				Build(),
		)
	}
	return builder.Nav().
		Class(postStyle.Class("postTags")).
		AriaLabel("Tags").
		Children(links...).
		Build()
}

func (b *Builder) relatedSection(ctx components.Context, post *content.Post) *vdom.VNode {
	related := b.posts.Related(*post, 3)
	if len(related) == 0 {
		return nil
	}

	var cards []*vdom.VNode
	for _, p := range related {
		cards = append(cards, b.postCard(ctx, p))
	}

	return builder.Section().
		Class(postStyle.Class("postRelated")).
		Children(
			builder.H2().Text("Related posts").Build(),
			components.CardGrid(components.CardGridProps{Cards: cards}),
		).Build()
}

// buildTags renders a listing page per tag.
func (b *Builder) buildTags(ctx components.Context) error {
	for _, tag := range b.posts.Tags() {
		tagged := b.posts.ByTag(tag)

		var cards []*vdom.VNode
		for _, post := range tagged {
			cards = append(cards, b.postCard(ctx, post))
		}

		body := vdom.NewFragment(
			builder.H1().Text("#"+tag).Build(),
			components.CardGrid(components.CardGridProps{Cards: cards}),
		)

		page := components.Layout(ctx, b.layoutProps(
			components.SeoProps{
				Title:     "#" + tag,
				SiteTitle: b.config.Site.Title,
				Canonical: b.absoluteURL("/tags/" + tag + "/"),
			},
			body,
		))

		if err := b.writePage("tags/"+tag, page); err != nil {
			return err
		}
	}
	return nil
}

// buildAuthors renders a page per roster author listing their posts.
func (b *Builder) buildAuthors(ctx components.Context, posts []content.Post) error {
	for slug, entry := range b.config.Authors {
		var cards []*vdom.VNode
		for _, post := range posts {
			if post.Author == slug {
				cards = append(cards, b.postCard(ctx, post))
			}
		}

		var intro []*vdom.VNode
		intro = append(intro, builder.H1().Text(entry.Name).Build())
		if entry.Bio != "" {
			intro = append(intro, builder.P().Text(entry.Bio).Build())
		}

		body := vdom.NewFragment(
			builder.Header().Children(intro...).Build(),
			components.CardGrid(components.CardGridProps{Cards: cards}),
		)

		page := components.Layout(ctx, b.layoutProps(
			components.SeoProps{
				Title:     entry.Name,
				SiteTitle: b.config.Site.Title,
				Canonical: b.absoluteURL("/authors/" + slug + "/"),
			},
			body,
		))

		if err := b.writePage("authors/"+slug, page); err != nil {
			return err
		}
	}
	return nil
}
