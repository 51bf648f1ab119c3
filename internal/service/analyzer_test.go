package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/arakitakashi/homework-coach-robo-sub000/internal/model"
)

// fakeGenerator is a scripted TextGenerator for tests. When replyFn is
// set it decides per prompt; otherwise reply/err are returned as-is.
type fakeGenerator struct {
	mu      sync.Mutex
	prompts []string

	reply   string
	err     error
	replyFn func(prompt string) (string, error)
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	f.mu.Lock()
	f.prompts = append(f.prompts, prompt)
	f.mu.Unlock()
	if f.replyFn != nil {
		return f.replyFn(prompt)
	}
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func (f *fakeGenerator) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.prompts)
}

func (f *fakeGenerator) lastPrompt() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.prompts) == 0 {
		return ""
	}
	return f.prompts[len(f.prompts)-1]
}

func testContext() *model.DialogueContext {
	return model.NewDialogueContext("test-session", "3 + 5 = ?", 2)
}

func TestAnalyzeSuccess(t *testing.T) {
	gen := &fakeGenerator{
		reply: `{"understanding_level": 7, "is_correct_direction": true, "needs_clarification": false, "key_insights": ["knows addition"]}`,
	}
	analyzer := NewAnalyzerService(gen)

	analysis, err := analyzer.Analyze(context.Background(), "I add three and five", testContext())
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if analysis.UnderstandingLevel != 7 {
		t.Errorf("understanding = %d, want 7", analysis.UnderstandingLevel)
	}
	if !analysis.IsCorrectDirection {
		t.Error("expected correct direction")
	}
	if analysis.NeedsClarification {
		t.Error("expected no clarification needed")
	}
	if len(analysis.KeyInsights) != 1 || analysis.KeyInsights[0] != "knows addition" {
		t.Errorf("key insights = %v", analysis.KeyInsights)
	}
}

func TestAnalyzeDefaultsInsightsToEmpty(t *testing.T) {
	gen := &fakeGenerator{
		reply: `{"understanding_level": 5, "is_correct_direction": false, "needs_clarification": true}`,
	}
	analyzer := NewAnalyzerService(gen)

	analysis, err := analyzer.Analyze(context.Background(), "hmm", testContext())
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if analysis.KeyInsights == nil || len(analysis.KeyInsights) != 0 {
		t.Errorf("key insights should default to empty list, got %v", analysis.KeyInsights)
	}
}

func TestAnalyzeAcceptsFencedJSON(t *testing.T) {
	gen := &fakeGenerator{
		reply: "```json\n{\"understanding_level\": 3, \"is_correct_direction\": false, \"needs_clarification\": true, \"key_insights\": []}\n```",
	}
	analyzer := NewAnalyzerService(gen)

	analysis, err := analyzer.Analyze(context.Background(), "what?", testContext())
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if analysis.UnderstandingLevel != 3 {
		t.Errorf("understanding = %d, want 3", analysis.UnderstandingLevel)
	}
}

func TestAnalyzeNotConfigured(t *testing.T) {
	analyzer := NewAnalyzerService(nil)

	_, err := analyzer.Analyze(context.Background(), "I think it's 8", testContext())
	if !errors.Is(err, ErrGeneratorNotConfigured) {
		t.Errorf("err = %v, want ErrGeneratorNotConfigured", err)
	}
}

func TestAnalyzeGenerationError(t *testing.T) {
	gen := &fakeGenerator{err: ErrGeneration}
	analyzer := NewAnalyzerService(gen)

	_, err := analyzer.Analyze(context.Background(), "I think it's 8", testContext())
	if !errors.Is(err, ErrGeneration) {
		t.Errorf("err = %v, want ErrGeneration", err)
	}
}

func TestAnalyzeMalformedOutput(t *testing.T) {
	testCases := []struct {
		name  string
		reply string
	}{
		{"not json", "sure, the child seems confused"},
		{"out of bounds", `{"understanding_level": 15, "is_correct_direction": true, "needs_clarification": false}`},
		{"negative level", `{"understanding_level": -2, "is_correct_direction": true, "needs_clarification": false}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			analyzer := NewAnalyzerService(&fakeGenerator{reply: tc.reply})
			_, err := analyzer.Analyze(context.Background(), "x", testContext())
			if !errors.Is(err, ErrMalformedAnalysis) {
				t.Errorf("err = %v, want ErrMalformedAnalysis", err)
			}
		})
	}
}
