package imagegen

import "context"

// ImageGenerator defines the contract the orchestration layer needs from an
// image model backend.
type ImageGenerator interface {
	// Generate submits a prompt/style/size request and returns the raw
	// response body.
	Generate(ctx context.Context, prompt string, styleId int, size string) (string, error)
}
