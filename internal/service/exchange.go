package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/arakitakashi/homework-coach-robo-sub000/internal/coach"
	"github.com/arakitakashi/homework-coach-robo-sub000/internal/model"
	"github.com/arakitakashi/homework-coach-robo-sub000/internal/store"
)

// ExchangeService runs one full coaching exchange: detect an answer
// request, analyze the utterance, advance the hint level, generate the
// reply, and persist the updated context. It is the layer that applies
// the fallback policy: analysis and generation failures degrade to the
// fixed templates with a logged warning, while a missing session or
// invalid input stays a hard error.
type ExchangeService struct {
	store    store.SessionStore
	dialogue *DialogueService
	notifier Notifier
}

// NewExchangeService creates the exchange pipeline.
func NewExchangeService(sessionStore store.SessionStore, dialogue *DialogueService) *ExchangeService {
	return &ExchangeService{
		store:    sessionStore,
		dialogue: dialogue,
	}
}

// SetNotifier sets the notifier for exchange events.
func (s *ExchangeService) SetNotifier(n Notifier) {
	s.notifier = n
}

// HandleUtterance processes one child utterance and returns the coach's
// reply with the updated dialogue state.
func (s *ExchangeService) HandleUtterance(ctx context.Context, sessionID, utterance string) (*model.MessageResponse, error) {
	if strings.TrimSpace(utterance) == "" {
		return nil, fmt.Errorf("%w: utterance is empty", model.ErrValidation)
	}

	dlg, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	// The cheap keyword pass always runs.
	answerReq := s.dialogue.DetectAnswerRequest(ctx, utterance)

	// Analysis is best-effort: on failure the exchange proceeds without
	// it (the policy then holds the level and uses the defaults).
	degraded := false
	analysis, err := s.dialogue.AnalyzeResponse(ctx, utterance, dlg)
	if err != nil {
		log.Printf("Warning: analysis unavailable for session %s: %v", sessionID, err)
		analysis = nil
		degraded = true
	}

	dlg.AppendChildTurn(utterance, analysis)

	prevLevel := dlg.HintLevel
	newLevel := s.dialogue.Advance(dlg, analysis)
	if err := dlg.SetHintLevel(newLevel); err != nil {
		return nil, err
	}
	levelChanged := newLevel != prevLevel

	dlg.Tone = s.dialogue.DetermineTone(analysis, dlg)

	var (
		reply string
		qt    model.QuestionType
	)
	if answerReq.IsRequest() {
		qt = model.QuestionHint
		reply, err = s.dialogue.GenerateHintResponse(ctx, dlg, true)
	} else {
		qt = s.dialogue.DetermineQuestionType(analysis, dlg)
		reply, err = s.dialogue.GenerateQuestion(ctx, dlg, qt, dlg.Tone)
	}
	if err != nil {
		log.Printf("Warning: generation unavailable for session %s: %v", sessionID, err)
		reply = s.fallbackReply(dlg, qt, answerReq.IsRequest())
		degraded = true
	}

	dlg.AppendAssistantTurn(reply, &qt)

	if err := s.store.Update(ctx, dlg); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		if levelChanged {
			s.notifier.NotifySession(sessionID, EventHintLevelChanged, map[string]interface{}{
				"sessionId":     sessionID,
				"hintLevel":     dlg.HintLevel,
				"hintLevelName": coach.HintLevelName(dlg.HintLevel),
			})
		}
		s.notifier.NotifySession(sessionID, EventCoachMessage, map[string]interface{}{
			"sessionId": sessionID,
			"reply":     reply,
			"tone":      dlg.Tone,
		})
	}

	return &model.MessageResponse{
		Reply:         reply,
		QuestionType:  qt,
		HintLevel:     dlg.HintLevel,
		HintLevelName: coach.HintLevelName(dlg.HintLevel),
		LevelChanged:  levelChanged,
		Tone:          dlg.Tone,
		AnswerRequest: answerReq,
		Analysis:      analysis,
		Degraded:      degraded,
	}, nil
}

// fallbackReply substitutes the fixed template for the failed
// generation, keyed by hint level for hints and by question type
// otherwise.
func (s *ExchangeService) fallbackReply(dlg *model.DialogueContext, qt model.QuestionType, isAnswerRequest bool) string {
	if isAnswerRequest || qt == model.QuestionHint {
		return coach.HintFallback(dlg.HintLevel)
	}
	return coach.QuestionFallback(qt)
}
