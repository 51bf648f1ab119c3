package coach

import (
	"testing"

	"github.com/arakitakashi/homework-coach-robo-sub000/internal/model"
)

func TestDetectClassification(t *testing.T) {
	detector := NewDetector()

	testCases := []struct {
		name      string
		utterance string
		wantType  model.AnswerRequestType
	}{
		{"explicit request", "just tell me the answer!", model.AnswerRequestExplicit},
		{"explicit give me", "come on, give me the answer", model.AnswerRequestExplicit},
		{"explicit uppercase", "TELL ME THE ANSWER", model.AnswerRequestExplicit},
		{"implicit frustration", "I don't know, it's too hard", model.AnswerRequestImplicit},
		{"implicit give up", "i give up", model.AnswerRequestImplicit},
		{"no request", "I think it's 8", model.AnswerRequestNone},
		{"plain reasoning", "maybe I should add them first", model.AnswerRequestNone},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := detector.Detect(tc.utterance)
			if got.RequestType != tc.wantType {
				t.Errorf("Detect(%q) type = %q, want %q", tc.utterance, got.RequestType, tc.wantType)
			}
			if err := got.Validate(); err != nil {
				t.Errorf("Detect(%q) produced invalid analysis: %v", tc.utterance, err)
			}
		})
	}
}

func TestDetectConfidenceBands(t *testing.T) {
	detector := NewDetector()

	explicit := detector.Detect("just tell me the answer")
	if explicit.Confidence < 0.8 {
		t.Errorf("explicit confidence = %.2f, want >= 0.8", explicit.Confidence)
	}
	if len(explicit.DetectedPhrases) == 0 {
		t.Error("explicit detection should report detected phrases")
	}

	implicit := detector.Detect("this is too hard")
	if implicit.Confidence < 0.5 || implicit.Confidence > 0.7 {
		t.Errorf("implicit confidence = %.2f, want within 0.5..0.7", implicit.Confidence)
	}

	multiImplicit := detector.Detect("I don't know, it's too hard")
	if multiImplicit.Confidence <= implicit.Confidence {
		t.Errorf("two implicit matches should raise confidence: %.2f vs %.2f",
			multiImplicit.Confidence, implicit.Confidence)
	}

	none := detector.Detect("the triangle has three sides")
	if none.Confidence != 0.0 {
		t.Errorf("none confidence = %.2f, want 0.0", none.Confidence)
	}
	if len(none.DetectedPhrases) != 0 {
		t.Errorf("none detection should report no phrases, got %v", none.DetectedPhrases)
	}
}

func TestDetectExplicitWinsOverImplicit(t *testing.T) {
	detector := NewDetector()

	// Contains both "tell me the answer" and "i can't".
	got := detector.Detect("I can't do this, tell me the answer")
	if got.RequestType != model.AnswerRequestExplicit {
		t.Errorf("mixed utterance type = %q, want explicit", got.RequestType)
	}
}

func TestDetectIsDeterministic(t *testing.T) {
	detector := NewDetector()
	utterance := "I don't know what to do"

	first := detector.Detect(utterance)
	for i := 0; i < 10; i++ {
		again := detector.Detect(utterance)
		if again.RequestType != first.RequestType || again.Confidence != first.Confidence {
			t.Fatalf("Detect is not deterministic: %+v vs %+v", again, first)
		}
	}
}
