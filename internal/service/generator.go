package service

import (
	"context"
	"errors"
)

var (
	// ErrGeneratorNotConfigured signals that an operation requiring text
	// generation was invoked without a configured generator.
	ErrGeneratorNotConfigured = errors.New("LLM client is not configured")

	// ErrGeneration signals that the upstream generation call failed or
	// returned an empty result.
	ErrGeneration = errors.New("text generation failed")

	// ErrMalformedAnalysis signals that the generator's output could not
	// be parsed as the expected analysis JSON.
	ErrMalformedAnalysis = errors.New("malformed analysis output")
)

// TextGenerator is the single port to an external text-generation
// capability. Implementations return either free text or strict JSON,
// depending on the prompt, and wrap failures in ErrGeneration.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
