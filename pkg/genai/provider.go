package genai

import "context"

// TextGenerator defines the contract the orchestration layer needs from a
// text model backend. *Client is the production implementation; tests swap
// in a stub.
type TextGenerator interface {
	// ResolveModel picks the effective model for a request.
	ResolveModel(model string) string

	// GenerateContent sends the multi-turn payload and returns the raw
	// response body.
	GenerateContent(ctx context.Context, model string, contents []*ChatContent) (string, error)
}
