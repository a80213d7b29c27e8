package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

type ChatPart struct {
	Text string `json:"text"`
}

type ChatContent struct {
	Parts []*ChatPart `json:"parts"`
	Role  string      `json:"role"`
}

type ChatRequest struct {
	Contents []*ChatContent `json:"contents"`
}

const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Config carries the externally supplied upstream settings. Nothing here is
// read from process globals, the caller decides where the values come from.
type Config struct {
	BaseURL string // e.g. https://generativelanguage.googleapis.com/v1beta/models
	Model   string // default model when the request does not name one
	APIKey  string
}

// Client talks to the Google generateContent endpoint.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// NewClient builds a client around an injected *http.Client so transports
// and timeouts stay under the caller's control. A nil httpClient gets a
// sane default.
func NewClient(cfg Config, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 60 * time.Second}
	}
	return &Client{cfg: cfg, httpClient: httpClient}
}

// ResolveModel picks the request model when set, else the configured default.
func (c *Client) ResolveModel(model string) string {
	if strings.TrimSpace(model) != "" {
		return model
	}
	return c.cfg.Model
}

// GenerateContent posts the multi-turn payload and returns the raw response
// body. The body is handed back untouched; extraction is the caller's
// concern so nothing is lost when the upstream shape changes.
func (c *Client) GenerateContent(ctx context.Context, model string, contents []*ChatContent) (string, error) {
	payload := ChatRequest{Contents: contents}
	payloadJson, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/%s:generateContent?key=%s", strings.TrimSuffix(c.cfg.BaseURL, "/"), model, c.cfg.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(payloadJson))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return "", err
	}

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf(
			"status error, got status %d. with response body %s",
			res.StatusCode,
			string(resBody),
		)
	}

	return string(resBody), nil
}
