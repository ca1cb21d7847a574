package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jonathan/resume-editor/internal/portable"
	"github.com/jonathan/resume-editor/internal/types"
)

// DefaultBaseURL is the gateway address used when none is configured.
const DefaultBaseURL = "http://localhost:8000"

// Ack is the gateway's reply to a save. Status is shown to the user as is.
type Ack struct {
	Status  string `json:"status"`
	ID      string `json:"id,omitempty"`
	SavedAt string `json:"saved_at,omitempty"`
}

// Client talks to the gateway over HTTP. It imposes no timeout of its own;
// callers bound calls through their context.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient returns a client for baseURL.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{BaseURL: strings.TrimRight(baseURL, "/"), HTTPClient: http.DefaultClient}
}

// Save posts doc wrapped as {"data": doc} to /save-resume.
func (c *Client) Save(ctx context.Context, doc types.Document) (Ack, error) {
	body, err := portable.MarshalEnvelope(doc)
	if err != nil {
		return Ack{}, &Error{Op: "save", Cause: err}
	}
	var ack Ack
	if err := c.post(ctx, "save", "/save-resume", body, &ack); err != nil {
		return Ack{}, err
	}
	return ack, nil
}

// Enhance asks the gateway to rewrite content of section.
func (c *Client) Enhance(ctx context.Context, section, content string) (string, error) {
	body, err := json.Marshal(map[string]string{"section": section, "content": content})
	if err != nil {
		return "", &Error{Op: "enhance", Cause: err}
	}
	var resp struct {
		EnhancedContent string `json:"enhanced_content"`
	}
	if err := c.post(ctx, "enhance", "/ai-enhance", body, &resp); err != nil {
		return "", err
	}
	return resp.EnhancedContent, nil
}

func (c *Client) post(ctx context.Context, op, path string, body []byte, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return &Error{Op: op, Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return &Error{Op: op, Cause: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Op: op, StatusCode: resp.StatusCode, Cause: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{Op: op, StatusCode: resp.StatusCode, Message: errorMessage(data)}
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &Error{Op: op, StatusCode: resp.StatusCode, Cause: fmt.Errorf("invalid response: %w", err)}
	}
	return nil
}

// errorMessage extracts {"error": ...} or FastAPI style {"detail": ...}.
func errorMessage(data []byte) string {
	var body struct {
		Error  string `json:"error"`
		Detail any    `json:"detail"`
	}
	if json.Unmarshal(data, &body) == nil {
		if body.Error != "" {
			return body.Error
		}
		if s, ok := body.Detail.(string); ok && s != "" {
			return s
		}
	}
	return strings.TrimSpace(string(data))
}
