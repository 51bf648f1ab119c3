package model

import "github.com/golang-jwt/jwt/v5"

// SessionClaims are the JWT claims carried by a session-scoped token.
type SessionClaims struct {
	SessionID string `json:"sessionId"`
	jwt.RegisteredClaims
}

// CreateSessionResponse is returned when a coaching session is created.
type CreateSessionResponse struct {
	SessionID string `json:"sessionId"`
	Token     string `json:"token"`
	HintLevel int    `json:"currentHintLevel"`
	Tone      Tone   `json:"tone"`
}
