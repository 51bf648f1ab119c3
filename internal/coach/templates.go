package coach

import "github.com/arakitakashi/homework-coach-robo-sub000/internal/model"

// Fixed template text used when generation is unavailable. The wording
// is part of the external contract and must stay stable.

var hintLevelNames = map[int]string{
	1: "problem understanding confirmation",
	2: "recall of prior knowledge",
	3: "partial support",
}

var hintFallbacks = map[int]string{
	1: "What do you think this problem is asking?",
	2: "Do you remember a similar problem we did before? Let's recall it.",
	3: "Let's do just the first step together.",
}

var questionFallbacks = map[model.QuestionType]string{
	model.QuestionUnderstandingCheck: "What do you think this problem is asking?",
	model.QuestionThinkingGuide:      "What could we try first? Let's think about it together.",
	model.QuestionHint:               "Do you remember a similar problem we did before? Let's recall it.",
}

// HintLevelName returns the fixed name of a hint level, or an empty
// string for levels outside 1..3.
func HintLevelName(level int) string {
	return hintLevelNames[level]
}

// HintFallback returns the fixed fallback hint for a level. Levels
// outside 1..3 fall back to the level 1 text.
func HintFallback(level int) string {
	if s, ok := hintFallbacks[level]; ok {
		return s
	}
	return hintFallbacks[1]
}

// QuestionFallback returns the fixed fallback question for a question
// type. Unknown types fall back to the understanding check.
func QuestionFallback(qt model.QuestionType) string {
	if s, ok := questionFallbacks[qt]; ok {
		return s
	}
	return questionFallbacks[model.QuestionUnderstandingCheck]
}
