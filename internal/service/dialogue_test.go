package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/arakitakashi/homework-coach-robo-sub000/internal/model"
)

func TestGenerateQuestionRecordsHistory(t *testing.T) {
	gen := &fakeGenerator{reply: "What is the problem asking you to find?"}
	svc := NewDialogueService(gen, nil)

	dlg := testContext()
	text, err := svc.GenerateQuestion(context.Background(), dlg, model.QuestionUnderstandingCheck, model.ToneEncouraging)
	if err != nil {
		t.Fatalf("GenerateQuestion: %v", err)
	}
	if text != "What is the problem asking you to find?" {
		t.Errorf("unexpected question: %q", text)
	}

	history := svc.QuestionHistory()
	if len(history) != 1 || history[0] != text {
		t.Errorf("history = %v, want the generated question", history)
	}

	if !strings.Contains(gen.lastPrompt(), dlg.Problem) {
		t.Error("question prompt should embed the problem text")
	}
}

func TestGenerateQuestionNotConfigured(t *testing.T) {
	svc := NewDialogueService(nil, nil)

	_, err := svc.GenerateQuestion(context.Background(), testContext(), model.QuestionHint, model.ToneNeutral)
	if !errors.Is(err, ErrGeneratorNotConfigured) {
		t.Errorf("err = %v, want ErrGeneratorNotConfigured", err)
	}
}

func TestGenerateHintResponseReassurance(t *testing.T) {
	gen := &fakeGenerator{reply: "It's okay! What if we look at the first number?"}
	svc := NewDialogueService(gen, nil)

	dlg := testContext()
	if _, err := svc.GenerateHintResponse(context.Background(), dlg, true); err != nil {
		t.Fatalf("GenerateHintResponse: %v", err)
	}
	if !strings.Contains(gen.lastPrompt(), "reassuring") {
		t.Error("answer-request hint prompt should lead with reassurance")
	}

	if _, err := svc.GenerateHintResponse(context.Background(), dlg, false); err != nil {
		t.Fatalf("GenerateHintResponse: %v", err)
	}
	if strings.Contains(gen.lastPrompt(), "reassuring") {
		t.Error("plain hint prompt should not carry the reassurance instruction")
	}
}

func TestGenerateHintResponseUsesCurrentLevel(t *testing.T) {
	gen := &fakeGenerator{reply: "hint"}
	svc := NewDialogueService(gen, nil)

	dlg := testContext()
	if err := dlg.SetHintLevel(3); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.GenerateHintResponse(context.Background(), dlg, false); err != nil {
		t.Fatalf("GenerateHintResponse: %v", err)
	}
	if !strings.Contains(gen.lastPrompt(), "partial support") {
		t.Error("level 3 hint prompt should use the partial support instruction")
	}
}

func TestDetectAnswerRequestKeywordIsAuthoritative(t *testing.T) {
	gen := &fakeGenerator{reply: `{"request_type": "none", "confidence": 0.9}`}
	svc := NewDialogueService(gen, nil)

	got := svc.DetectAnswerRequest(context.Background(), "please tell me the answer")
	if got.RequestType != model.AnswerRequestExplicit {
		t.Errorf("type = %q, want explicit", got.RequestType)
	}
	if gen.callCount() != 0 {
		t.Errorf("generator consulted %d times for an explicit match, want 0", gen.callCount())
	}
}

func TestDetectAnswerRequestAssistRefinesNone(t *testing.T) {
	gen := &fakeGenerator{reply: `{"request_type": "implicit", "confidence": 0.65}`}
	svc := NewDialogueService(gen, nil)

	got := svc.DetectAnswerRequest(context.Background(), "ugh, whatever, you do it")
	if got.RequestType != model.AnswerRequestImplicit {
		t.Errorf("type = %q, want implicit after assist", got.RequestType)
	}
	if got.Confidence != 0.65 {
		t.Errorf("confidence = %.2f, want 0.65", got.Confidence)
	}
}

func TestDetectAnswerRequestAssistFailureKeepsKeywordVerdict(t *testing.T) {
	gen := &fakeGenerator{err: ErrGeneration}
	svc := NewDialogueService(gen, nil)

	got := svc.DetectAnswerRequest(context.Background(), "the sky is blue")
	if got.RequestType != model.AnswerRequestNone {
		t.Errorf("type = %q, want none when assist fails", got.RequestType)
	}
}

func TestDetectAnswerRequestWithoutGenerator(t *testing.T) {
	svc := NewDialogueService(nil, nil)

	got := svc.DetectAnswerRequest(context.Background(), "I don't know")
	if got.RequestType != model.AnswerRequestImplicit {
		t.Errorf("type = %q, want implicit from the keyword pass alone", got.RequestType)
	}
}
