package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"pet-care-hub/internal/platform/httpclient"
	"pet-care-hub/internal/ports/assistant"

	"github.com/google/uuid"
)

var (
	ErrNotConfigured = errors.New("gemini client not configured")
	ErrUpstream      = errors.New("gemini upstream error")
)

// Config del cliente Gemini.
// BaseURL, APIKey y Model normalmente vienen de env vars (ver internal/config).
type Config struct {
	BaseURL string
	APIKey  string
	Model   string

	// Timeout del request HTTP. Si es <=0 se usa el default del httpclient.
	Timeout time.Duration
}

// Client implementa assistant.ChatService contra la REST API generateContent.
// El API remoto es stateless por request, así que la "sesión" vive acá:
// guardamos el historial por sesión y lo mandamos completo en cada send.
type Client struct {
	http   *httpclient.Client
	apiKey string
	model  string

	mu       sync.Mutex
	sessions map[string][]content
}

func NewClient(cfg Config) (*Client, error) {
	hc, err := httpclient.NewWithBaseURL(strings.TrimSpace(cfg.BaseURL), cfg.Timeout)
	if err != nil {
		return nil, err
	}

	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = "gemini-2.5-flash"
	}

	return &Client{
		http:     hc,
		apiKey:   strings.TrimSpace(cfg.APIKey),
		model:    model,
		sessions: make(map[string][]content),
	}, nil
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.http != nil && c.http.BaseURL != "" && c.apiKey != ""
}

func (c *Client) CreateSession(ctx context.Context) (assistant.Session, error) {
	if !c.IsConfigured() {
		return assistant.Session{}, ErrNotConfigured
	}

	id := uuid.NewString()

	c.mu.Lock()
	c.sessions[id] = make([]content, 0)
	c.mu.Unlock()

	return assistant.Session{ID: id}, nil
}

func (c *Client) Send(ctx context.Context, session assistant.Session, text string) (string, error) {
	if !c.IsConfigured() {
		return "", ErrNotConfigured
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", errors.New("gemini: empty message")
	}

	c.mu.Lock()
	history, ok := c.sessions[session.ID]
	c.mu.Unlock()
	if !ok {
		return "", errors.New("gemini: unknown session")
	}

	turns := append(append([]content{}, history...), content{
		Role:  "user",
		Parts: []part{{Text: text}},
	})

	req := generateRequest{Contents: turns}
	var resp generateResponse

	path := fmt.Sprintf("/v1beta/models/%s:generateContent", c.model)
	headers := map[string]string{"x-goog-api-key": c.apiKey}

	if err := c.http.DoJSON(ctx, http.MethodPost, path, headers, req, &resp); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	reply := resp.firstText()
	if reply == "" {
		return "", fmt.Errorf("%w: empty candidate", ErrUpstream)
	}

	c.mu.Lock()
	c.sessions[session.ID] = append(turns, content{
		Role:  "model",
		Parts: []part{{Text: reply}},
	})
	c.mu.Unlock()

	return reply, nil
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

func (r *generateResponse) firstText() string {
	for _, cand := range r.Candidates {
		for _, p := range cand.Content.Parts {
			if s := strings.TrimSpace(p.Text); s != "" {
				return s
			}
		}
	}
	return ""
}
