package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"pet-care-hub/internal/ports/assistant"
)

func fakeGemini(t *testing.T, reply string) (*httptest.Server, *[]generateRequest) {
	t.Helper()

	seen := &[]generateRequest{}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-goog-api-key") == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req generateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		*seen = append(*seen, req)

		resp := generateResponse{}
		resp.Candidates = append(resp.Candidates, struct {
			Content content `json:"content"`
		}{Content: content{Role: "model", Parts: []part{{Text: reply}}}})

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	return ts, seen
}

func TestClient_SendKeepsHistoryPerSession(t *testing.T) {
	ts, seen := fakeGemini(t, "ok")
	defer ts.Close()

	c, err := NewClient(Config{BaseURL: ts.URL, APIKey: "test-key", Model: "gemini-2.5-flash"})
	if err != nil {
		t.Fatalf("NewClient error: %v", err)
	}

	ctx := context.Background()
	session, err := c.CreateSession(ctx)
	if err != nil {
		t.Fatalf("CreateSession error: %v", err)
	}

	if _, err := c.Send(ctx, session, "first"); err != nil {
		t.Fatalf("Send #1 error: %v", err)
	}
	if _, err := c.Send(ctx, session, "second"); err != nil {
		t.Fatalf("Send #2 error: %v", err)
	}

	// el segundo request lleva el historial completo: user, model, user
	if len(*seen) != 2 {
		t.Fatalf("expected 2 upstream calls, got %d", len(*seen))
	}
	second := (*seen)[1]
	if len(second.Contents) != 3 {
		t.Fatalf("expected 3 turns in history, got %d", len(second.Contents))
	}
	if second.Contents[0].Parts[0].Text != "first" || second.Contents[1].Role != "model" {
		t.Fatalf("unexpected history %#v", second.Contents)
	}
	if second.Contents[2].Parts[0].Text != "second" {
		t.Fatalf("expected latest message last, got %#v", second.Contents[2])
	}
}

func TestClient_NotConfigured(t *testing.T) {
	c, err := NewClient(Config{BaseURL: "", APIKey: ""})
	if err != nil {
		t.Fatalf("NewClient error: %v", err)
	}

	if _, err := c.CreateSession(context.Background()); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestClient_UpstreamFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"quota"}`, http.StatusTooManyRequests)
	}))
	defer ts.Close()

	c, _ := NewClient(Config{BaseURL: ts.URL, APIKey: "test-key"})
	session, _ := c.CreateSession(context.Background())

	if _, err := c.Send(context.Background(), session, "hi"); !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}

func TestClient_UnknownSession(t *testing.T) {
	ts, _ := fakeGemini(t, "ok")
	defer ts.Close()

	c, _ := NewClient(Config{BaseURL: ts.URL, APIKey: "test-key"})

	_, err := c.Send(context.Background(), assistant.Session{ID: "nope"}, "hi")
	if err == nil {
		t.Fatalf("expected error for unknown session")
	}
}
