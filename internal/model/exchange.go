package model

// MessageRequest is an inbound child utterance.
type MessageRequest struct {
	Content string `json:"content"`
}

// MessageResponse carries the coach's reply and the updated dialogue
// state after one exchange.
type MessageResponse struct {
	Reply         string                `json:"reply"`
	QuestionType  QuestionType          `json:"questionType"`
	HintLevel     int                   `json:"currentHintLevel"`
	HintLevelName string                `json:"hintLevelName"`
	LevelChanged  bool                  `json:"levelChanged"`
	Tone          Tone                  `json:"tone"`
	AnswerRequest AnswerRequestAnalysis `json:"answerRequest"`
	Analysis      *ResponseAnalysis     `json:"analysis,omitempty"`

	// Degraded is true when generation or analysis failed and the reply
	// came from the fixed templates.
	Degraded bool `json:"degraded,omitempty"`
}
