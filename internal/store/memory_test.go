package store

import (
	"context"
	"errors"
	"testing"

	"github.com/arakitakashi/homework-coach-robo-sub000/internal/model"
)

func TestMemoryStoreCreate(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	dlg, err := s.Create(ctx, "3 + 5 = ?", 2, "robot")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if dlg.SessionID == "" {
		t.Error("Create should assign a session id")
	}
	if dlg.HintLevel != 1 {
		t.Errorf("new session hint level = %d, want 1", dlg.HintLevel)
	}
	if dlg.Tone != model.ToneEncouraging {
		t.Errorf("new session tone = %q, want encouraging", dlg.Tone)
	}
	if len(dlg.Turns) != 0 {
		t.Errorf("new session has %d turns, want 0", len(dlg.Turns))
	}
	if dlg.CreatedAt.IsZero() {
		t.Error("new session should record a creation time")
	}

	createdAt, err := s.CreatedAt(ctx, dlg.SessionID)
	if err != nil {
		t.Fatalf("CreatedAt: %v", err)
	}
	if !createdAt.Equal(dlg.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", createdAt, dlg.CreatedAt)
	}
}

func TestMemoryStoreCreateRejectsBadGrade(t *testing.T) {
	s := NewMemoryStore()

	for _, grade := range []int{0, 4, -1} {
		if _, err := s.Create(context.Background(), "problem", grade, ""); !errors.Is(err, model.ErrValidation) {
			t.Errorf("Create(grade=%d) err = %v, want validation error", grade, err)
		}
	}
}

func TestMemoryStoreMutationsRequireUpdate(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	dlg, err := s.Create(ctx, "12 - 4 = ?", 1, "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Mutating a fetched copy must not leak into the store.
	fetched, err := s.Get(ctx, dlg.SessionID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	fetched.AppendChildTurn("I think 8", nil)

	again, err := s.Get(ctx, dlg.SessionID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(again.Turns) != 0 {
		t.Errorf("mutation leaked into store: %d turns", len(again.Turns))
	}

	// Writing back makes it visible.
	if err := s.Update(ctx, fetched); err != nil {
		t.Fatalf("Update: %v", err)
	}
	after, err := s.Get(ctx, dlg.SessionID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(after.Turns) != 1 {
		t.Errorf("after update: %d turns, want 1", len(after.Turns))
	}
}

func TestMemoryStoreUpdateDoesNotCreate(t *testing.T) {
	s := NewMemoryStore()

	ghost := model.NewDialogueContext("no-such-session", "problem", 1)
	if err := s.Update(context.Background(), ghost); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Update of missing session err = %v, want ErrSessionNotFound", err)
	}
}

func TestMemoryStoreDelete(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	dlg, err := s.Create(ctx, "problem", 3, "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := s.Delete(ctx, dlg.SessionID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Get(ctx, dlg.SessionID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Get after delete err = %v, want ErrSessionNotFound", err)
	}
	if err := s.Delete(ctx, dlg.SessionID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("second delete err = %v, want ErrSessionNotFound", err)
	}
	if _, err := s.CreatedAt(ctx, dlg.SessionID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("CreatedAt after delete err = %v, want ErrSessionNotFound", err)
	}
}
