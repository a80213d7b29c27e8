// Package imagegen talks to the RapidAPI Flux image endpoint and extracts
// image URLs from its loosely specified response bodies.
package imagegen

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

// DefaultSize is used when the caller leaves the size blank.
const DefaultSize = "1-1"

type Config struct {
	URL          string
	RapidAPIHost string
	RapidAPIKey  string
}

type generateBody struct {
	Prompt  string `json:"prompt"`
	StyleId int    `json:"style_id"`
	Size    string `json:"size"`
}

type Client struct {
	cfg        Config
	httpClient *http.Client
}

func NewClient(cfg Config, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 120 * time.Second}
	}
	return &Client{cfg: cfg, httpClient: httpClient}
}

// ResolveSize applies the "1-1" default for blank sizes.
func ResolveSize(size string) string {
	if strings.TrimSpace(size) == "" {
		return DefaultSize
	}
	return size
}

// Generate posts {prompt, style_id, size} with the RapidAPI routing headers
// and returns the raw response body.
func (c *Client) Generate(ctx context.Context, prompt string, styleId int, size string) (string, error) {
	payload := generateBody{
		Prompt:  prompt,
		StyleId: styleId,
		Size:    ResolveSize(size),
	}
	payloadJson, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL, bytes.NewBuffer(payloadJson))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-rapidapi-host", c.cfg.RapidAPIHost)
	req.Header.Set("x-rapidapi-key", c.cfg.RapidAPIKey)

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
