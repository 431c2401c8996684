package site

import (
	"encoding/xml"
	"fmt"
	"sort"
	"time"

	"github.com/foliopress/folio/internal/content"
)

// rssFeed is the RSS 2.0 document written to feed.xml
type rssFeed struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Language    string    `xml:"language,omitempty"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	GUID        string `xml:"guid"`
	PubDate     string `xml:"pubDate"`
	Description string `xml:"description,omitempty"`
}

// feedLimit caps how many posts the feed carries
const feedLimit = 20

func (b *Builder) writeFeed(posts []content.Post) error {
	feed := rssFeed{
		Version: "2.0",
		Channel: rssChannel{
			Title:       b.config.Site.Title,
			Link:        b.absoluteURL("/"),
			Description: b.config.Site.Description,
			Language:    b.config.Site.Language,
		},
	}

	for i, post := range posts {
		if i >= feedLimit {
			break
		}
		link := b.absoluteURL("/posts/" + post.Slug + "/")
		feed.Channel.Items = append(feed.Channel.Items, rssItem{
			Title:       post.Title,
			Link:        link,
			GUID:        link,
			PubDate:     post.Date.Format(time.RFC1123Z),
			Description: post.Excerpt,
		})
	}

	data, err := xml.MarshalIndent(feed, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling feed: %w", err)
	}
	return b.writeRaw("feed.xml", append([]byte(xml.Header), data...))
}

// urlSet is the sitemap.org document written to sitemap.xml
type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

func (b *Builder) writeSitemap(posts []content.Post) error {
	set := urlSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs: []sitemapURL{
			{Loc: b.absoluteURL("/")},
		},
	}

	for _, post := range posts {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:     b.absoluteURL("/posts/" + post.Slug + "/"),
			LastMod: post.Date.Format("2006-01-02"),
		})
	}
	for _, tag := range b.posts.Tags() {
		set.URLs = append(set.URLs, sitemapURL{
			Loc: b.absoluteURL("/tags/" + tag + "/"),
		})
	}
	slugs := make([]string, 0, len(b.config.Authors))
	for slug := range b.config.Authors {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)
	for _, slug := range slugs {
		set.URLs = append(set.URLs, sitemapURL{
			Loc: b.absoluteURL("/authors/" + slug + "/"),
		})
	}

	data, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling sitemap: %w", err)
	}
	return b.writeRaw("sitemap.xml", append([]byte(xml.Header), data...))
}
