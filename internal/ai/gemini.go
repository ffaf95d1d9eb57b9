// Package ai talks to the Gemini Generative Language API and builds the
// prompts the assistant and the expense analyzer send to it.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	DefaultModel   = "gemini-2.0-flash"
)

// ErrNoCandidates is returned when the API answers without any usable text.
var ErrNoCandidates = errors.New("no candidates in response")

// Generator produces narrative text from ordered prompt parts. The HTTP
// handlers depend on this interface so tests can stub the API away.
type Generator interface {
	Generate(ctx context.Context, parts ...string) (string, error)
}

// Client calls the generateContent endpoint for a fixed model.
type Client struct {
	apiKey  string
	model   string
	baseURL string
	httpc   *http.Client
}

type Option func(*Client)

// WithBaseURL overrides the API endpoint, used by tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpc = h }
}

func NewClient(apiKey, model string, timeout time.Duration, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("api key is required")
	}
	if model == "" {
		model = DefaultModel
	}
	c := &Client{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultBaseURL,
		httpc:   &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

type (
	generateRequest struct {
		Contents []content `json:"contents"`
	}

	content struct {
		Role  string `json:"role,omitempty"`
		Parts []part `json:"parts"`
	}

	part struct {
		Text string `json:"text"`
	}

	generateResponse struct {
		Candidates []struct {
			Content content `json:"content"`
		} `json:"candidates"`
		Error *struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
)

// Generate sends the prompt parts as a single user turn and returns the first
// candidate's text.
func (c *Client) Generate(ctx context.Context, parts ...string) (string, error) {
	ps := make([]part, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		ps = append(ps, part{Text: p})
	}
	if len(ps) == 0 {
		return "", errors.New("empty prompt")
	}

	body, err := json.Marshal(generateRequest{Contents: []content{{Role: "user", Parts: ps}}})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("call generate api: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	var gr generateResponse
	if err := json.Unmarshal(raw, &gr); err != nil {
		return "", fmt.Errorf("decode response (status %d): %w", resp.StatusCode, err)
	}
	if resp.StatusCode != http.StatusOK {
		if gr.Error != nil {
			return "", fmt.Errorf("generate api status %d: %s", resp.StatusCode, gr.Error.Message)
		}
		return "", fmt.Errorf("generate api status %d", resp.StatusCode)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return "", ErrNoCandidates
	}

	var sb strings.Builder
	for _, p := range gr.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", ErrNoCandidates
	}
	return text, nil
}
