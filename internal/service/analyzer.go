package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/arakitakashi/homework-coach-robo-sub000/internal/model"
)

// AnalyzerService turns a child utterance into a structured understanding
// assessment via the text generator. It never substitutes a default on
// failure: configuration, generation, and parse errors are propagated so
// the caller can pick its own fallback policy.
type AnalyzerService struct {
	generator TextGenerator
}

// NewAnalyzerService creates an analyzer. A nil generator is allowed;
// Analyze then fails with ErrGeneratorNotConfigured.
func NewAnalyzerService(generator TextGenerator) *AnalyzerService {
	return &AnalyzerService{generator: generator}
}

// Analyze assesses one child utterance in the context of the current
// problem. One generator call per invocation, no caching, no retry.
func (s *AnalyzerService) Analyze(ctx context.Context, utterance string, dlg *model.DialogueContext) (*model.ResponseAnalysis, error) {
	if s.generator == nil {
		return nil, ErrGeneratorNotConfigured
	}

	prompt := BuildAnalysisPrompt(utterance, dlg)
	raw, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var analysis model.ResponseAnalysis
	if err := json.Unmarshal([]byte(stripJSONFences(raw)), &analysis); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedAnalysis, err)
	}
	if err := analysis.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedAnalysis, err)
	}
	if analysis.KeyInsights == nil {
		analysis.KeyInsights = []string{}
	}
	return &analysis, nil
}
