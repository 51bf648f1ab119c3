package model

import (
	"fmt"
	"time"
)

// Tone is the affective register applied to the next coach utterance.
type Tone string

const (
	ToneEncouraging Tone = "encouraging"
	ToneNeutral     Tone = "neutral"
	ToneEmpathetic  Tone = "empathetic"
)

// QuestionType classifies an assistant turn.
type QuestionType string

const (
	QuestionUnderstandingCheck QuestionType = "understanding_check"
	QuestionThinkingGuide      QuestionType = "thinking_guide"
	QuestionHint               QuestionType = "hint"
)

// Role identifies the speaker of a dialogue turn.
type Role string

const (
	RoleChild     Role = "child"
	RoleAssistant Role = "assistant"
)

// Boundary constants for externally supplied values.
const (
	MinHintLevel = 1
	MaxHintLevel = 3
	MinGrade     = 1
	MaxGrade     = 3
)

// DialogueTurn is one utterance in a coaching conversation.
// QuestionType is set only on assistant turns; Analysis only on child
// turns that were analyzed.
type DialogueTurn struct {
	Role         Role              `json:"role" bson:"role"`
	Content      string            `json:"content" bson:"content"`
	Timestamp    time.Time         `json:"timestamp" bson:"timestamp"`
	QuestionType *QuestionType     `json:"questionType,omitempty" bson:"questionType,omitempty"`
	Analysis     *ResponseAnalysis `json:"responseAnalysis,omitempty" bson:"responseAnalysis,omitempty"`
}

// DialogueContext is the aggregate root for one coaching conversation.
// The session store owns the canonical copy; callers mutate a fetched
// copy and write it back through the store's Update.
type DialogueContext struct {
	SessionID     string         `json:"sessionId" bson:"sessionId"`
	Problem       string         `json:"problem" bson:"problem"`
	Grade         int            `json:"grade" bson:"grade"`
	CharacterType string         `json:"characterType,omitempty" bson:"characterType,omitempty"`
	HintLevel     int            `json:"currentHintLevel" bson:"currentHintLevel"`
	Tone          Tone           `json:"tone" bson:"tone"`
	Turns         []DialogueTurn `json:"turns" bson:"turns"`
	CreatedAt     time.Time      `json:"createdAt" bson:"createdAt"`

	// LevelChangedAt is the turn index at which HintLevel last changed.
	LevelChangedAt int `json:"levelChangedAt" bson:"levelChangedAt"`
}

// NewDialogueContext creates a context at hint level 1 with an empty turn
// log and the encouraging default tone.
func NewDialogueContext(sessionID, problem string, grade int) *DialogueContext {
	return &DialogueContext{
		SessionID: sessionID,
		Problem:   problem,
		Grade:     grade,
		HintLevel: MinHintLevel,
		Tone:      ToneEncouraging,
		Turns:     []DialogueTurn{},
		CreatedAt: time.Now(),
	}
}

// AppendChildTurn records a child utterance, optionally with its analysis.
func (c *DialogueContext) AppendChildTurn(content string, analysis *ResponseAnalysis) {
	c.Turns = append(c.Turns, DialogueTurn{
		Role:      RoleChild,
		Content:   content,
		Timestamp: time.Now(),
		Analysis:  analysis,
	})
}

// AppendAssistantTurn records a coach utterance, optionally tagged with
// its question type.
func (c *DialogueContext) AppendAssistantTurn(content string, qt *QuestionType) {
	c.Turns = append(c.Turns, DialogueTurn{
		Role:         RoleAssistant,
		Content:      content,
		Timestamp:    time.Now(),
		QuestionType: qt,
	})
}

// SetHintLevel moves the context to a new hint level and remembers where
// in the turn log the change happened. Out-of-range levels are rejected
// so the 1..3 invariant holds at the data-model boundary.
func (c *DialogueContext) SetHintLevel(level int) error {
	if err := ValidateHintLevel(level); err != nil {
		return err
	}
	if level != c.HintLevel {
		c.HintLevel = level
		c.LevelChangedAt = len(c.Turns)
	}
	return nil
}

// TurnsAtCurrentLevel counts turns recorded since the hint level last
// changed.
func (c *DialogueContext) TurnsAtCurrentLevel() int {
	return len(c.Turns) - c.LevelChangedAt
}

// ValidateHintLevel rejects levels outside 1..3.
func ValidateHintLevel(level int) error {
	if level < MinHintLevel || level > MaxHintLevel {
		return fmt.Errorf("%w: hint level %d outside %d..%d", ErrValidation, level, MinHintLevel, MaxHintLevel)
	}
	return nil
}

// ValidateGrade rejects grades outside 1..3.
func ValidateGrade(grade int) error {
	if grade < MinGrade || grade > MaxGrade {
		return fmt.Errorf("%w: grade %d outside %d..%d", ErrValidation, grade, MinGrade, MaxGrade)
	}
	return nil
}
