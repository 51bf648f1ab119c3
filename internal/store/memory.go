package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/arakitakashi/homework-coach-robo-sub000/internal/model"
)

// MemoryStore is the in-process reference session store. It hands out
// copies so mutations only become visible through Update.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*model.DialogueContext
}

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*model.DialogueContext),
	}
}

func (s *MemoryStore) Create(_ context.Context, problem string, grade int, characterType string) (*model.DialogueContext, error) {
	if err := model.ValidateGrade(grade); err != nil {
		return nil, err
	}
	dlg := model.NewDialogueContext(uuid.New().String(), problem, grade)
	dlg.CharacterType = characterType

	s.mu.Lock()
	s.sessions[dlg.SessionID] = cloneContext(dlg)
	s.mu.Unlock()
	return dlg, nil
}

func (s *MemoryStore) Get(_ context.Context, sessionID string) (*model.DialogueContext, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	dlg, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return cloneContext(dlg), nil
}

func (s *MemoryStore) Update(_ context.Context, dlg *model.DialogueContext) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[dlg.SessionID]; !ok {
		return ErrSessionNotFound
	}
	s.sessions[dlg.SessionID] = cloneContext(dlg)
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[sessionID]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, sessionID)
	return nil
}

func (s *MemoryStore) CreatedAt(_ context.Context, sessionID string) (time.Time, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	dlg, ok := s.sessions[sessionID]
	if !ok {
		return time.Time{}, ErrSessionNotFound
	}
	return dlg.CreatedAt, nil
}

func cloneContext(dlg *model.DialogueContext) *model.DialogueContext {
	out := *dlg
	out.Turns = make([]model.DialogueTurn, len(dlg.Turns))
	copy(out.Turns, dlg.Turns)
	for i, turn := range dlg.Turns {
		if turn.Analysis != nil {
			a := *turn.Analysis
			a.KeyInsights = append([]string(nil), turn.Analysis.KeyInsights...)
			out.Turns[i].Analysis = &a
		}
		if turn.QuestionType != nil {
			qt := *turn.QuestionType
			out.Turns[i].QuestionType = &qt
		}
	}
	return &out
}
