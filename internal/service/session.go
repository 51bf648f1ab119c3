package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/arakitakashi/homework-coach-robo-sub000/internal/model"
	"github.com/arakitakashi/homework-coach-robo-sub000/internal/repository"
	"github.com/arakitakashi/homework-coach-robo-sub000/internal/store"
)

// SessionService handles the coaching-session lifecycle: creation with
// token issue, retrieval, and ending with archival.
type SessionService struct {
	store       store.SessionStore
	transcripts repository.TranscriptRepo
	authSvc     *AuthService
	notifier    Notifier
}

// NewSessionService creates a session service. The transcript repo may
// be nil; ended sessions are then discarded instead of archived.
func NewSessionService(sessionStore store.SessionStore, transcripts repository.TranscriptRepo, authSvc *AuthService) *SessionService {
	return &SessionService{
		store:       sessionStore,
		transcripts: transcripts,
		authSvc:     authSvc,
	}
}

// SetNotifier sets the notifier for session events.
func (s *SessionService) SetNotifier(n Notifier) {
	s.notifier = n
}

// CreateSession starts a coaching session for one problem-solving
// attempt and issues a session-scoped token.
func (s *SessionService) CreateSession(ctx context.Context, problem string, grade int, characterType string) (*model.CreateSessionResponse, error) {
	if strings.TrimSpace(problem) == "" {
		return nil, fmt.Errorf("%w: problem text is required", model.ErrValidation)
	}
	if err := model.ValidateGrade(grade); err != nil {
		return nil, err
	}

	dlg, err := s.store.Create(ctx, problem, grade, characterType)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	token, err := s.authSvc.GenerateSessionToken(dlg.SessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}

	return &model.CreateSessionResponse{
		SessionID: dlg.SessionID,
		Token:     token,
		HintLevel: dlg.HintLevel,
		Tone:      dlg.Tone,
	}, nil
}

// GetSession returns the dialogue context for a session.
func (s *SessionService) GetSession(ctx context.Context, sessionID string) (*model.DialogueContext, error) {
	return s.store.Get(ctx, sessionID)
}

// SaveSession writes a mutated context back to the store.
func (s *SessionService) SaveSession(ctx context.Context, dlg *model.DialogueContext) error {
	return s.store.Update(ctx, dlg)
}

// EndSession archives the transcript and removes the session from the
// store. Archive failures are logged but do not block deletion.
func (s *SessionService) EndSession(ctx context.Context, sessionID string) error {
	dlg, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return err
	}

	if s.transcripts != nil {
		transcript := &model.Transcript{
			SessionID:      dlg.SessionID,
			Problem:        dlg.Problem,
			Grade:          dlg.Grade,
			CharacterType:  dlg.CharacterType,
			FinalHintLevel: dlg.HintLevel,
			FinalTone:      dlg.Tone,
			Turns:          dlg.Turns,
			StartedAt:      dlg.CreatedAt,
		}
		if err := s.transcripts.Archive(ctx, transcript); err != nil {
			log.Printf("Warning: failed to archive session %s: %v", sessionID, err)
		}
	}

	if err := s.store.Delete(ctx, sessionID); err != nil {
		return err
	}

	if s.notifier != nil {
		s.notifier.NotifySession(sessionID, EventSessionEnded, map[string]string{
			"sessionId": sessionID,
		})
	}
	return nil
}
