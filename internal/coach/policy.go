package coach

import (
	"github.com/arakitakashi/homework-coach-robo-sub000/internal/model"
)

// PolicyConfig tunes the hint-progression rules.
type PolicyConfig struct {
	// MinTurnsBeforeAdvance is the number of turns that must be recorded
	// at the current level before any advance is considered.
	MinTurnsBeforeAdvance int

	// StruggleThreshold is the understanding level below which a child
	// counts as struggling.
	StruggleThreshold int

	// StrongUnderstanding is the understanding level at or above which
	// the level holds steady regardless of turn count.
	StrongUnderstanding int
}

// DefaultPolicyConfig returns the production hint-progression settings.
func DefaultPolicyConfig() *PolicyConfig {
	return &PolicyConfig{
		MinTurnsBeforeAdvance: 2,
		StruggleThreshold:     4,
		StrongUnderstanding:   7,
	}
}

// Policy owns the hint-level progression rules: when the dialogue may
// move from the current hint level to the next, and which question type
// and tone the next coach utterance should carry. It performs no I/O.
type Policy struct {
	config *PolicyConfig
}

// NewPolicy creates a policy engine. A nil config selects the defaults.
func NewPolicy(config *PolicyConfig) *Policy {
	if config == nil {
		config = DefaultPolicyConfig()
	}
	return &Policy{config: config}
}

// Advance decides the next hint level for the dialogue. It returns
// either the current level or the current level plus one, never more:
// level 3 is a ceiling, fewer than MinTurnsBeforeAdvance turns at the
// current level always holds, strong understanding holds regardless of
// turn count, and only evidence of struggle moves the level up.
func (p *Policy) Advance(ctx *model.DialogueContext, analysis *model.ResponseAnalysis) int {
	if ctx.HintLevel >= model.MaxHintLevel {
		return model.MaxHintLevel
	}
	if ctx.TurnsAtCurrentLevel() < p.config.MinTurnsBeforeAdvance {
		return ctx.HintLevel
	}
	if analysis == nil {
		return ctx.HintLevel
	}
	if analysis.UnderstandingLevel >= p.config.StrongUnderstanding && analysis.IsCorrectDirection {
		return ctx.HintLevel
	}
	if p.isStruggling(analysis) {
		return ctx.HintLevel + 1
	}
	return ctx.HintLevel
}

// ShouldAdvance is the simplified external signal for callers that do
// not want the full hint-level mechanics: true only below the ceiling
// and once at least two turns have occurred in the session.
func (p *Policy) ShouldAdvance(ctx *model.DialogueContext) bool {
	return ctx.HintLevel < model.MaxHintLevel && len(ctx.Turns) >= p.config.MinTurnsBeforeAdvance
}

// DetermineTone selects the affective register for the next utterance.
// Sustained difficulty reads empathetic, clear progress encouraging,
// everything else neutral. A missing analysis keeps the session default.
func (p *Policy) DetermineTone(analysis *model.ResponseAnalysis, ctx *model.DialogueContext) model.Tone {
	if analysis == nil {
		return model.ToneEncouraging
	}
	sustained := analysis.UnderstandingLevel < p.config.StruggleThreshold &&
		!analysis.IsCorrectDirection &&
		ctx.TurnsAtCurrentLevel() >= p.config.MinTurnsBeforeAdvance
	if sustained {
		return model.ToneEmpathetic
	}
	if analysis.UnderstandingLevel >= p.config.StrongUnderstanding && analysis.IsCorrectDirection {
		return model.ToneEncouraging
	}
	return model.ToneNeutral
}

// DetermineQuestionType selects the pedagogical move for the next coach
// utterance.
func (p *Policy) DetermineQuestionType(analysis *model.ResponseAnalysis, ctx *model.DialogueContext) model.QuestionType {
	if analysis == nil {
		return model.QuestionUnderstandingCheck
	}
	if analysis.UnderstandingLevel < p.config.StruggleThreshold {
		return model.QuestionUnderstandingCheck
	}
	if ctx.HintLevel >= 2 && analysis.NeedsClarification {
		return model.QuestionHint
	}
	if analysis.IsCorrectDirection {
		return model.QuestionThinkingGuide
	}
	return model.QuestionUnderstandingCheck
}

func (p *Policy) isStruggling(analysis *model.ResponseAnalysis) bool {
	return analysis.UnderstandingLevel < p.config.StruggleThreshold ||
		!analysis.IsCorrectDirection ||
		analysis.NeedsClarification
}
