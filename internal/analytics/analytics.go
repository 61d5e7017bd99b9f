// Package analytics is a fire-and-forget event client mirroring the
// site's analytics snippet: identify, page and track calls that never
// block the caller and whose failures are dropped silently. Nothing in
// the application depends on delivery.
package analytics

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"inkwell/internal/debug"
)

const sendTimeout = 3 * time.Second

// Client delivers events to a collector endpoint. The zero endpoint
// yields a no-op client, so call sites never need to branch.
type Client struct {
	endpoint string
	writeKey string
	httpc    *http.Client
}

// New creates a client. An empty endpoint disables delivery.
func New(endpoint, writeKey string) *Client {
	return &Client{
		endpoint: endpoint,
		writeKey: writeKey,
		httpc:    &http.Client{Timeout: sendTimeout},
	}
}

// event is the wire shape of a single call.
type event struct {
	Type       string         `json:"type"`
	WriteKey   string         `json:"writeKey,omitempty"`
	UserID     string         `json:"userId,omitempty"`
	Event      string         `json:"event,omitempty"`
	Name       string         `json:"name,omitempty"`
	Properties map[string]any `json:"properties,omitempty"`
	Traits     map[string]any `json:"traits,omitempty"`
	SentAt     time.Time      `json:"sentAt"`
}

// Identify associates traits with a user.
func (c *Client) Identify(userID string, traits map[string]any) {
	c.send(event{Type: "identify", UserID: userID, Traits: traits})
}

// Track records a named event with optional properties.
func (c *Client) Track(name string, props map[string]any) {
	c.send(event{Type: "track", Event: name, Properties: props})
}

// Page records a page view.
func (c *Client) Page(name string) {
	c.send(event{Type: "page", Name: name})
}

// send delivers the event on a background goroutine. The caller returns
// immediately; delivery errors are only ever debug-logged.
func (c *Client) send(ev event) {
	if c == nil || c.endpoint == "" {
		return
	}
	ev.WriteKey = c.writeKey
	ev.SentAt = time.Now().UTC()

	go func() {
		body, err := json.Marshal(ev)
		if err != nil {
			debug.Logf("analytics: marshal %s event: %v", ev.Type, err)
			return
		}
		resp, err := c.httpc.Post(c.endpoint, "application/json", bytes.NewReader(body))
		if err != nil {
			debug.Logf("analytics: %s event dropped: %v", ev.Type, err)
			return
		}
		_ = resp.Body.Close()
	}()
}
