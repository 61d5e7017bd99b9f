// Package content serves the site's pages to the reader. Pages are the
// blog's real markup, embedded at build time, parsed into a document
// surface and reduced to Markdown for the viewport.
package content

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"inkwell/internal/dom"
	"inkwell/internal/errors"
)

//go:embed pages/*.html
var pagesFS embed.FS

// Page is one loaded blog page: its raw markup, its parsed interactive
// surface, and accessors for the readable article content.
type Page struct {
	Slug  string
	Title string

	// Document is the page's interactive surface; the theme controller
	// binds to it.
	Document *dom.HTMLDocument

	raw string
}

// Slugs lists the available pages in sorted order.
func Slugs() []string {
	entries, err := pagesFS.ReadDir("pages")
	if err != nil {
		return nil
	}
	var slugs []string
	for _, e := range entries {
		name := e.Name()
		if strings.HasSuffix(name, ".html") {
			slugs = append(slugs, strings.TrimSuffix(name, ".html"))
		}
	}
	sort.Strings(slugs)
	return slugs
}

// Load reads and parses the page with the given slug.
func Load(slug string) (*Page, error) {
	raw, err := pagesFS.ReadFile("pages/" + slug + ".html")
	if err != nil {
		return nil, errors.New(errors.CodePageNotFound, fmt.Sprintf("page %q not found", slug), err)
	}

	doc, err := dom.ParseHTML(strings.NewReader(string(raw)))
	if err != nil {
		return nil, err
	}

	title := slug
	gq, err := goquery.NewDocumentFromReader(strings.NewReader(string(raw)))
	if err == nil {
		if t := strings.TrimSpace(gq.Find("title").First().Text()); t != "" {
			title = t
		}
	}

	return &Page{
		Slug:     slug,
		Title:    title,
		Document: doc,
		raw:      string(raw),
	}, nil
}

// ArticleHTML extracts the page's article markup, dropping navigation
// and footer chrome.
func (p *Page) ArticleHTML() (string, error) {
	gq, err := goquery.NewDocumentFromReader(strings.NewReader(p.raw))
	if err != nil {
		return "", errors.New(errors.CodeParseFailed, "parse page for extraction", err)
	}
	article := gq.Find("article").First()
	if article.Length() == 0 {
		return "", errors.New(errors.CodeParseFailed, fmt.Sprintf("page %q has no article", p.Slug), nil)
	}
	html, err := goquery.OuterHtml(article)
	if err != nil {
		return "", errors.New(errors.CodeParseFailed, "serialize article", err)
	}
	return html, nil
}

// Markdown converts the article to Markdown using the given converter.
func (p *Page) Markdown(conv *Converter) (string, error) {
	html, err := p.ArticleHTML()
	if err != nil {
		return "", err
	}
	return conv.Convert(html)
}
