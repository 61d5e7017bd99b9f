package analytics

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

type captured struct {
	mu     sync.Mutex
	events []event
}

func (c *captured) add(ev event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, ev)
}

func (c *captured) wait(t *testing.T, n int) []event {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		c.mu.Lock()
		if len(c.events) >= n {
			out := append([]event(nil), c.events...)
			c.mu.Unlock()
			return out
		}
		c.mu.Unlock()
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %d events", n)
	return nil
}

func newCollector(t *testing.T) (*httptest.Server, *captured) {
	t.Helper()
	col := &captured{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			t.Errorf("read body: %v", err)
			return
		}
		var ev event
		if err := json.Unmarshal(body, &ev); err != nil {
			t.Errorf("decode event: %v", err)
			return
		}
		col.add(ev)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)
	return srv, col
}

func TestTrackDeliversEvent(t *testing.T) {
	srv, col := newCollector(t)
	c := New(srv.URL, "wk-test")

	c.Track("theme_changed", map[string]any{"mode": "dark"})

	events := col.wait(t, 1)
	ev := events[0]
	if ev.Type != "track" || ev.Event != "theme_changed" {
		t.Fatalf("unexpected event: %+v", ev)
	}
	if ev.WriteKey != "wk-test" {
		t.Fatalf("writeKey = %q, want wk-test", ev.WriteKey)
	}
	if got := ev.Properties["mode"]; got != "dark" {
		t.Fatalf("properties[mode] = %v, want dark", got)
	}
}

func TestIdentifyAndPage(t *testing.T) {
	srv, col := newCollector(t)
	c := New(srv.URL, "")

	c.Identify("reader-1", map[string]any{"plan": "free"})
	c.Page("field-notes")

	events := col.wait(t, 2)
	types := map[string]bool{}
	for _, ev := range events {
		types[ev.Type] = true
	}
	if !types["identify"] || !types["page"] {
		t.Fatalf("expected identify and page events, got %+v", events)
	}
}

func TestEmptyEndpointIsNoop(t *testing.T) {
	c := New("", "key")
	// Must not panic or block.
	c.Track("ignored", nil)
	c.Identify("nobody", nil)
	c.Page("nowhere")
}

func TestUnreachableCollectorIsSilent(t *testing.T) {
	c := New("http://127.0.0.1:1/nope", "key")

	done := make(chan struct{})
	go func() {
		c.Track("dropped", nil)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Track blocked on unreachable collector")
	}
}

func TestNilClientIsSafe(t *testing.T) {
	var c *Client
	c.Track("nothing", nil)
}
