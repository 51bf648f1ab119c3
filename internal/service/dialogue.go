package service

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/arakitakashi/homework-coach-robo-sub000/internal/coach"
	"github.com/arakitakashi/homework-coach-robo-sub000/internal/model"
)

// DialogueService is the façade over the coaching core: it combines the
// answer-request detector, the response analyzer, and the hint policy
// with prompt construction and the text generator. It does not persist
// anything; callers write mutated contexts back through the session
// store.
type DialogueService struct {
	generator TextGenerator // may be nil when no LLM is configured
	detectGen TextGenerator // optional cheaper model for detection assist
	detector  *coach.Detector
	policy    *coach.Policy
	analyzer  *AnalyzerService

	mu              sync.Mutex
	questionHistory []string
}

// NewDialogueService creates the orchestrator. A nil generator disables
// generation-backed operations; they fail with ErrGeneratorNotConfigured
// and callers substitute the fixed templates.
func NewDialogueService(generator TextGenerator, policy *coach.Policy) *DialogueService {
	if policy == nil {
		policy = coach.NewPolicy(nil)
	}
	return &DialogueService{
		generator: generator,
		detector:  coach.NewDetector(),
		policy:    policy,
		analyzer:  NewAnalyzerService(generator),
	}
}

// SetAnalyzer overrides the analyzer, e.g. to bind it to a different
// model than the one used for coaching replies.
func (s *DialogueService) SetAnalyzer(analyzer *AnalyzerService) {
	s.analyzer = analyzer
}

// SetDetectGenerator sets a dedicated generator for the LLM-assisted
// detection pass.
func (s *DialogueService) SetDetectGenerator(gen TextGenerator) {
	s.detectGen = gen
}

// GenerateQuestion produces the next coach question. The generated text
// is recorded in the in-memory question history.
func (s *DialogueService) GenerateQuestion(ctx context.Context, dlg *model.DialogueContext, qt model.QuestionType, tone model.Tone) (string, error) {
	if s.generator == nil {
		return "", ErrGeneratorNotConfigured
	}
	text, err := s.generator.Generate(ctx, BuildQuestionPrompt(dlg, qt, tone))
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	s.questionHistory = append(s.questionHistory, text)
	s.mu.Unlock()
	return text, nil
}

// GenerateHintResponse produces a hint at the context's current level.
// When the utterance was an answer request, the prompt leads with
// reassurance before the hint.
func (s *DialogueService) GenerateHintResponse(ctx context.Context, dlg *model.DialogueContext, isAnswerRequest bool) (string, error) {
	if s.generator == nil {
		return "", ErrGeneratorNotConfigured
	}
	prompt := BuildHintPrompt(dlg, dlg.HintLevel, dlg.Tone)
	if isAnswerRequest {
		prompt += "\n\nThe child just asked for the answer directly. Start by reassuring them that not knowing yet is fine, then give the hint. Do not give the answer."
	}
	return s.generator.Generate(ctx, prompt)
}

// DetectAnswerRequest classifies the utterance. The keyword pass always
// runs and is authoritative for explicit and implicit verdicts; when it
// finds nothing and a generator is available, the generator may refine
// the none/implicit boundary. Assist failures keep the keyword verdict.
func (s *DialogueService) DetectAnswerRequest(ctx context.Context, utterance string) model.AnswerRequestAnalysis {
	result := s.detector.Detect(utterance)
	assist := s.detectGen
	if assist == nil {
		assist = s.generator
	}
	if result.RequestType != model.AnswerRequestNone || assist == nil {
		return result
	}

	raw, err := assist.Generate(ctx, BuildDetectPrompt(utterance))
	if err != nil {
		return result
	}
	var refined struct {
		RequestType string  `json:"request_type"`
		Confidence  float64 `json:"confidence"`
	}
	if err := json.Unmarshal([]byte(stripJSONFences(raw)), &refined); err != nil {
		return result
	}
	if refined.RequestType == string(model.AnswerRequestImplicit) && refined.Confidence >= 0.0 && refined.Confidence <= 1.0 {
		return model.AnswerRequestAnalysis{
			RequestType:     model.AnswerRequestImplicit,
			Confidence:      refined.Confidence,
			DetectedPhrases: []string{},
		}
	}
	return result
}

// AnalyzeResponse delegates to the response analyzer. Configuration,
// generation, and parse errors are propagated unchanged.
func (s *DialogueService) AnalyzeResponse(ctx context.Context, utterance string, dlg *model.DialogueContext) (*model.ResponseAnalysis, error) {
	return s.analyzer.Analyze(ctx, utterance, dlg)
}

// Advance applies the hint-progression rule to the context.
func (s *DialogueService) Advance(dlg *model.DialogueContext, analysis *model.ResponseAnalysis) int {
	return s.policy.Advance(dlg, analysis)
}

// ShouldAdvance is the simplified progression signal.
func (s *DialogueService) ShouldAdvance(dlg *model.DialogueContext) bool {
	return s.policy.ShouldAdvance(dlg)
}

// DetermineTone selects the tone for the next utterance.
func (s *DialogueService) DetermineTone(analysis *model.ResponseAnalysis, dlg *model.DialogueContext) model.Tone {
	return s.policy.DetermineTone(analysis, dlg)
}

// DetermineQuestionType selects the next pedagogical move.
func (s *DialogueService) DetermineQuestionType(analysis *model.ResponseAnalysis, dlg *model.DialogueContext) model.QuestionType {
	return s.policy.DetermineQuestionType(analysis, dlg)
}

// QuestionHistory returns a copy of the questions generated so far.
func (s *DialogueService) QuestionHistory() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	history := make([]string, len(s.questionHistory))
	copy(history, s.questionHistory)
	return history
}
