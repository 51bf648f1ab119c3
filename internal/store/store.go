package store

import (
	"context"
	"errors"
	"time"

	"github.com/arakitakashi/homework-coach-robo-sub000/internal/model"
)

// ErrSessionNotFound signals that no session exists for the given id.
var ErrSessionNotFound = errors.New("session not found")

// SessionStore is keyed storage of dialogue contexts. The store owns the
// canonical copy; callers mutate a fetched copy and write it back via
// Update. Concurrent writers to the same session race with
// last-write-wins semantics; callers that care must serialize access per
// session.
type SessionStore interface {
	// Create builds a fresh context at hint level 1 with an empty turn
	// log and stores it under a new unique session id.
	Create(ctx context.Context, problem string, grade int, characterType string) (*model.DialogueContext, error)

	// Get returns the context for the session, or ErrSessionNotFound.
	Get(ctx context.Context, sessionID string) (*model.DialogueContext, error)

	// Update replaces the stored context. It never creates: a missing
	// session yields ErrSessionNotFound.
	Update(ctx context.Context, dlg *model.DialogueContext) error

	// Delete removes the session, or returns ErrSessionNotFound.
	Delete(ctx context.Context, sessionID string) error

	// CreatedAt returns the session's creation time, or
	// ErrSessionNotFound.
	CreatedAt(ctx context.Context, sessionID string) (time.Time, error)
}
