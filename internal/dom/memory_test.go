package dom

import "testing"

func TestMemoryDocumentLookup(t *testing.T) {
	doc := NewMemoryDocument()
	doc.AddElement("theme-toggle", "toggle-btn")
	doc.AddElement("theme-toggle-mobile", "toggle-btn")
	doc.AddElement("nav")

	if _, ok := doc.ElementByID("theme-toggle"); !ok {
		t.Fatal("expected theme-toggle to be found")
	}
	if _, ok := doc.ElementByID("missing"); ok {
		t.Fatal("expected missing id lookup to fail")
	}
	if got := len(doc.ElementsByClass("toggle-btn")); got != 2 {
		t.Fatalf("expected 2 toggle-btn elements, got %d", got)
	}
	if got := len(doc.ElementsByClass("nope")); got != 0 {
		t.Fatalf("expected no elements for unknown class, got %d", got)
	}
}

func TestMemoryElementFacets(t *testing.T) {
	doc := NewMemoryDocument()
	el := doc.AddElement("toggle")

	if el.Checked() {
		t.Fatal("new element should be unchecked")
	}
	el.SetChecked(true)
	if !el.Checked() {
		t.Fatal("SetChecked(true) not observed")
	}

	el.SetText("Dark")
	if got := el.Text(); got != "Dark" {
		t.Fatalf("Text() = %q, want Dark", got)
	}

	el.AddClass("active")
	if !el.HasClass("active") {
		t.Fatal("AddClass not observed")
	}
	el.RemoveClass("active")
	if el.HasClass("active") {
		t.Fatal("RemoveClass not observed")
	}
}

func TestMemoryElementClickOrder(t *testing.T) {
	doc := NewMemoryDocument()
	el := doc.AddElement("toggle")

	var order []int
	el.OnClick(func() { order = append(order, 1) })
	el.OnClick(func() { order = append(order, 2) })

	el.Click()
	el.Click()

	want := []int{1, 2, 1, 2}
	if len(order) != len(want) {
		t.Fatalf("handler invocations = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("handler invocations = %v, want %v", order, want)
		}
	}
}

func TestMarkLoadedIsMonotonic(t *testing.T) {
	doc := NewMemoryDocument()
	if doc.Loaded() {
		t.Fatal("new document should not be loaded")
	}

	doc.MarkLoaded()
	doc.MarkLoaded() // second call must not panic on the closed channel
	if !doc.Loaded() {
		t.Fatal("document should be loaded after MarkLoaded")
	}
}

func TestCapabilityWrappers(t *testing.T) {
	base := NewMemoryDocument()

	notify := NotifyDocument{base}
	select {
	case <-notify.LoadNotify():
		t.Fatal("LoadNotify fired before MarkLoaded")
	default:
	}

	probe := ProbeDocument{base}
	if err := probe.ScrollProbe(); err == nil {
		t.Fatal("ScrollProbe should fail before load")
	}

	state := StateDocument{base}
	if got := state.ReadyState(); got != StateLoading {
		t.Fatalf("ReadyState() = %q, want %q", got, StateLoading)
	}

	base.MarkLoaded()

	select {
	case <-notify.LoadNotify():
	default:
		t.Fatal("LoadNotify should be closed after MarkLoaded")
	}
	if err := probe.ScrollProbe(); err != nil {
		t.Fatalf("ScrollProbe after load: %v", err)
	}
	if got := state.ReadyState(); !Interactive(got) {
		t.Fatalf("ReadyState() = %q, want interactive", got)
	}
}

func TestInteractive(t *testing.T) {
	if Interactive(StateLoading) {
		t.Fatal("loading should not be interactive")
	}
	if !Interactive(StateLoaded) || !Interactive(StateComplete) {
		t.Fatal("loaded and complete should both be interactive")
	}
}
