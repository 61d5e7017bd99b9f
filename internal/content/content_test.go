package content

import (
	"strings"
	"testing"

	"inkwell/internal/errors"
	"inkwell/internal/theme"
)

func TestSlugsListsEmbeddedPages(t *testing.T) {
	slugs := Slugs()
	if len(slugs) < 2 {
		t.Fatalf("expected at least 2 embedded pages, got %v", slugs)
	}
	found := map[string]bool{}
	for _, s := range slugs {
		found[s] = true
	}
	if !found["index"] || !found["field-notes"] {
		t.Fatalf("expected index and field-notes pages, got %v", slugs)
	}
}

func TestLoadParsesPage(t *testing.T) {
	page, err := Load("index")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if page.Slug != "index" {
		t.Fatalf("Slug = %q, want index", page.Slug)
	}
	if !strings.Contains(page.Title, "Paper Trails") {
		t.Fatalf("Title = %q, want the site title", page.Title)
	}
	if page.Document == nil {
		t.Fatal("expected a parsed document surface")
	}
}

func TestLoadMissingPage(t *testing.T) {
	_, err := Load("no-such-page")
	if err == nil {
		t.Fatal("expected error for missing page")
	}
	if !errors.IsCode(err, errors.CodePageNotFound) {
		t.Fatalf("error code = %v, want page_not_found", errors.CodeOf(err))
	}
}

func TestPagesCarryToggleControls(t *testing.T) {
	for _, slug := range Slugs() {
		page, err := Load(slug)
		if err != nil {
			t.Fatalf("Load(%q) failed: %v", slug, err)
		}
		if _, ok := page.Document.ElementByID(theme.DesktopToggleID); !ok {
			t.Errorf("page %q is missing the desktop toggle", slug)
		}
		if _, ok := page.Document.ElementByID(theme.MobileToggleID); !ok {
			t.Errorf("page %q is missing the mobile toggle", slug)
		}
		if got := len(page.Document.ElementsByClass(theme.ToggleButtonClass)); got < 2 {
			t.Errorf("page %q has %d toggle buttons, want at least 2", slug, got)
		}
	}
}

func TestArticleHTMLDropsChrome(t *testing.T) {
	page, err := Load("field-notes")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	html, err := page.ArticleHTML()
	if err != nil {
		t.Fatalf("ArticleHTML failed: %v", err)
	}
	if !strings.Contains(html, "archive that lied") {
		t.Fatal("article heading missing from extraction")
	}
	if strings.Contains(html, "site-nav") {
		t.Fatal("navigation chrome should not survive extraction")
	}
}

func TestMarkdownConversion(t *testing.T) {
	page, err := Load("field-notes")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	md, err := page.Markdown(NewConverter())
	if err != nil {
		t.Fatalf("Markdown failed: %v", err)
	}
	if !strings.Contains(md, "# Field notes") {
		t.Fatalf("expected an h1 heading in markdown, got:\n%s", md)
	}
	if !strings.Contains(md, "Headers are aspirational") {
		t.Fatal("list content missing from markdown")
	}
	if !strings.Contains(md, "windows-1252") {
		t.Fatal("table content missing from markdown")
	}
}

func TestConverterRejectsEmptyInput(t *testing.T) {
	_, err := NewConverter().Convert("   ")
	if err == nil {
		t.Fatal("expected error for empty input")
	}
	if !errors.IsCode(err, errors.CodeParseFailed) {
		t.Fatalf("error code = %v, want parse_failed", errors.CodeOf(err))
	}
}
