package service

import (
	"fmt"
	"strings"

	"github.com/arakitakashi/homework-coach-robo-sub000/internal/model"
)

// Prompt builders for the coaching dialogue. All of them are
// deterministic string templates over the dialogue context.

var toneInstructions = map[model.Tone]string{
	model.ToneEncouraging: "Speak warmly and cheer the child on. Celebrate every bit of progress.",
	model.ToneNeutral:     "Speak calmly and plainly, without strong emotional coloring.",
	model.ToneEmpathetic:  "Acknowledge that this feels hard. Be gentle and patient before guiding.",
}

var questionTypeInstructions = map[model.QuestionType]string{
	model.QuestionUnderstandingCheck: "Ask one short question that checks whether the child understands what the problem is asking.",
	model.QuestionThinkingGuide:      "Ask one short question that nudges the child toward the next step of their own reasoning.",
	model.QuestionHint:               "Offer one small hint phrased as a question, revealing only the smallest useful piece.",
}

// hintLevelInstructions escalate structural support. Every level forbids
// disclosing the final answer.
var hintLevelInstructions = map[int]string{
	1: "Level 1 (problem understanding confirmation): help the child restate what the problem is asking in their own words. Never reveal the final answer or any intermediate result.",
	2: "Level 2 (recall of prior knowledge): remind the child of a similar problem or rule they already know and ask them to connect it. Never reveal the final answer.",
	3: "Level 3 (partial support): walk through only the first step together, then hand the reasoning back to the child. Never state the final answer.",
}

// BuildQuestionPrompt combines the tone instruction, the question-type
// instruction, and the problem text.
func BuildQuestionPrompt(dlg *model.DialogueContext, qt model.QuestionType, tone model.Tone) string {
	return fmt.Sprintf(`You are a Socratic homework coach for a grade %d child. Never give the final answer.
%s
%s

Problem: %s

Reply with a single short utterance suitable for a young child.`,
		dlg.Grade, toneInstructions[tone], questionTypeInstructions[qt], dlg.Problem)
}

// BuildAnalysisPrompt instructs strict JSON output describing how well
// the child's utterance shows understanding of the problem.
func BuildAnalysisPrompt(utterance string, dlg *model.DialogueContext) string {
	return fmt.Sprintf(`You are assessing a grade %d child's response while they solve a problem.
Return ONLY valid JSON matching this schema:
{
  "understanding_level": 0 to 10,
  "is_correct_direction": true or false,
  "needs_clarification": true or false,
  "key_insights": ["short note", "..."]
}

Problem: %s
Child's response: %s

Score how well the response shows understanding of the problem, whether
the child is heading in a correct direction, and whether their statement
needs clarification. List at most three key insights.`,
		dlg.Grade, dlg.Problem, utterance)
}

// BuildHintPrompt selects the hint-level-specific instruction plus a
// tone instruction.
func BuildHintPrompt(dlg *model.DialogueContext, hintLevel int, tone model.Tone) string {
	instr, ok := hintLevelInstructions[hintLevel]
	if !ok {
		instr = hintLevelInstructions[1]
	}
	return fmt.Sprintf(`You are a Socratic homework coach for a grade %d child.
%s
%s

Problem: %s

Reply with a single short utterance suitable for a young child.`,
		dlg.Grade, toneInstructions[tone], instr, dlg.Problem)
}

// BuildDetectPrompt asks the generator to refine a borderline
// answer-request classification.
func BuildDetectPrompt(utterance string) string {
	return fmt.Sprintf(`A child working on homework said: %q
Return ONLY valid JSON:
{
  "request_type": "none" or "implicit",
  "confidence": 0.0 to 1.0
}

Decide whether the child is implicitly asking to be told the answer
(giving up, unable to continue without it) or just talking about the
problem.`, utterance)
}

// stripJSONFences removes a markdown code fence if the model wrapped its
// JSON output in one. The content itself is still parsed strictly.
func stripJSONFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}
