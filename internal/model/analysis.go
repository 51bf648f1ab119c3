package model

import (
	"errors"
	"fmt"
)

// ErrValidation marks a value outside its documented bounds at an
// external-facing boundary.
var ErrValidation = errors.New("validation error")

// ResponseAnalysis is the outcome of analyzing one child utterance.
type ResponseAnalysis struct {
	UnderstandingLevel int      `json:"understanding_level" bson:"understandingLevel"`
	IsCorrectDirection bool     `json:"is_correct_direction" bson:"isCorrectDirection"`
	NeedsClarification bool     `json:"needs_clarification" bson:"needsClarification"`
	KeyInsights        []string `json:"key_insights" bson:"keyInsights"`
}

// Validate checks the 0..10 understanding bound.
func (a *ResponseAnalysis) Validate() error {
	if a.UnderstandingLevel < 0 || a.UnderstandingLevel > 10 {
		return fmt.Errorf("%w: understanding level %d outside 0..10", ErrValidation, a.UnderstandingLevel)
	}
	return nil
}

// AnswerRequestType classifies whether a child asked for the answer
// outright.
type AnswerRequestType string

const (
	AnswerRequestNone     AnswerRequestType = "none"
	AnswerRequestExplicit AnswerRequestType = "explicit"
	AnswerRequestImplicit AnswerRequestType = "implicit"
)

// AnswerRequestAnalysis is the outcome of scanning an utterance for
// "give me the answer" signals.
type AnswerRequestAnalysis struct {
	RequestType     AnswerRequestType `json:"request_type" bson:"requestType"`
	Confidence      float64           `json:"confidence" bson:"confidence"`
	DetectedPhrases []string          `json:"detected_phrases" bson:"detectedPhrases"`
}

// IsRequest reports whether any answer-request signal was detected.
func (a *AnswerRequestAnalysis) IsRequest() bool {
	return a.RequestType != AnswerRequestNone
}

// Validate checks the 0.0..1.0 confidence bound and the request-type
// literal.
func (a *AnswerRequestAnalysis) Validate() error {
	if a.Confidence < 0.0 || a.Confidence > 1.0 {
		return fmt.Errorf("%w: confidence %.2f outside 0.0..1.0", ErrValidation, a.Confidence)
	}
	switch a.RequestType {
	case AnswerRequestNone, AnswerRequestExplicit, AnswerRequestImplicit:
		return nil
	default:
		return fmt.Errorf("%w: unknown request type %q", ErrValidation, a.RequestType)
	}
}
