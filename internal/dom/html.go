package dom

import (
	"fmt"
	"io"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"inkwell/internal/errors"
)

// HTMLDocument is a Document backed by real page markup parsed with
// goquery. Class, checked and text mutations are applied to the parsed
// tree, so Html reflects them. A parsed document is already interactive:
// it reports a "complete" ready state.
type HTMLDocument struct {
	doc *goquery.Document

	// Click handlers survive repeated lookups of the same element by
	// keying on the underlying parse-tree node.
	handlers map[*html.Node][]func()
}

// ParseHTML parses page markup into an HTMLDocument.
func ParseHTML(r io.Reader) (*HTMLDocument, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, errors.New(errors.CodeParseFailed, "parse page markup", err)
	}
	return &HTMLDocument{
		doc:      doc,
		handlers: map[*html.Node][]func(){},
	}, nil
}

// Root returns the page body.
func (d *HTMLDocument) Root() Element {
	return &htmlElement{doc: d, sel: d.doc.Find("body").First()}
}

// ElementByID looks up an element by its id attribute.
func (d *HTMLDocument) ElementByID(id string) (Element, bool) {
	sel := d.doc.Find("#" + id).First()
	if sel.Length() == 0 {
		return nil, false
	}
	return &htmlElement{doc: d, sel: sel}, true
}

// ElementsByClass returns every element carrying the class token.
func (d *HTMLDocument) ElementsByClass(name string) []Element {
	var out []Element
	d.doc.Find("." + name).Each(func(_ int, sel *goquery.Selection) {
		out = append(out, &htmlElement{doc: d, sel: sel})
	})
	return out
}

// ReadyState always reports "complete": parsing finished before the
// document was handed out.
func (d *HTMLDocument) ReadyState() string { return StateComplete }

// Html serializes the document, including any mutations applied through
// its elements.
func (d *HTMLDocument) Html() (string, error) {
	s, err := d.doc.Html()
	if err != nil {
		return "", fmt.Errorf("serialize page: %w", err)
	}
	return s, nil
}

type htmlElement struct {
	doc *HTMLDocument
	sel *goquery.Selection
}

func (e *htmlElement) node() *html.Node {
	if len(e.sel.Nodes) == 0 {
		return nil
	}
	return e.sel.Nodes[0]
}

func (e *htmlElement) ID() string { return e.sel.AttrOr("id", "") }

func (e *htmlElement) AddClass(name string) { e.sel.AddClass(name) }

func (e *htmlElement) RemoveClass(name string) { e.sel.RemoveClass(name) }

func (e *htmlElement) HasClass(name string) bool { return e.sel.HasClass(name) }

func (e *htmlElement) Checked() bool {
	_, ok := e.sel.Attr("checked")
	return ok
}

func (e *htmlElement) SetChecked(v bool) {
	if v {
		e.sel.SetAttr("checked", "checked")
		return
	}
	e.sel.RemoveAttr("checked")
}

func (e *htmlElement) Text() string { return e.sel.Text() }

func (e *htmlElement) SetText(s string) { e.sel.SetText(s) }

func (e *htmlElement) OnClick(fn func()) {
	n := e.node()
	if n == nil {
		return
	}
	e.doc.handlers[n] = append(e.doc.handlers[n], fn)
}

func (e *htmlElement) Click() {
	n := e.node()
	if n == nil {
		return
	}
	for _, fn := range e.doc.handlers[n] {
		fn()
	}
}
