package generator

import "context"

// Generator turns a prompt into model-written text, bounded by maxOutputTokens.
type Generator interface {
	Generate(ctx context.Context, prompt string, maxOutputTokens int) (string, error)
}
