package coach

import (
	"strings"

	"github.com/arakitakashi/homework-coach-robo-sub000/internal/model"
)

// Phrase sets scanned by the detector. Explicit phrases ask for the
// answer outright; implicit ones signal frustration that often precedes
// an answer request.
var defaultExplicitPhrases = []string{
	"tell me the answer",
	"give me the answer",
	"what's the answer",
	"what is the answer",
	"just tell me",
	"say the answer",
}

var defaultImplicitPhrases = []string{
	"i can't",
	"i cant",
	"i don't know",
	"i dont know",
	"too hard",
	"i give up",
	"no idea",
	"impossible",
}

// Detector classifies a single utterance as a request for the direct
// answer. It is deterministic, side-effect-free, and makes no external
// calls.
type Detector struct {
	explicit []string
	implicit []string
}

// NewDetector creates a detector with the default phrase sets.
func NewDetector() *Detector {
	return &Detector{
		explicit: defaultExplicitPhrases,
		implicit: defaultImplicitPhrases,
	}
}

// Detect scans the utterance for answer-request signals. Explicit
// matches always win over implicit ones when both phrase sets match.
func (d *Detector) Detect(utterance string) model.AnswerRequestAnalysis {
	lowered := strings.ToLower(utterance)

	if matched := matchPhrases(lowered, d.explicit); len(matched) > 0 {
		return model.AnswerRequestAnalysis{
			RequestType:     model.AnswerRequestExplicit,
			Confidence:      explicitConfidence(len(matched)),
			DetectedPhrases: matched,
		}
	}

	if matched := matchPhrases(lowered, d.implicit); len(matched) > 0 {
		conf := 0.6
		if len(matched) >= 2 {
			conf = 0.7
		}
		return model.AnswerRequestAnalysis{
			RequestType:     model.AnswerRequestImplicit,
			Confidence:      conf,
			DetectedPhrases: matched,
		}
	}

	return model.AnswerRequestAnalysis{
		RequestType:     model.AnswerRequestNone,
		Confidence:      0.0,
		DetectedPhrases: []string{},
	}
}

func matchPhrases(lowered string, phrases []string) []string {
	var matched []string
	for _, p := range phrases {
		if strings.Contains(lowered, p) {
			matched = append(matched, p)
		}
	}
	return matched
}

func explicitConfidence(matches int) float64 {
	conf := 0.8 + 0.05*float64(matches-1)
	if conf > 0.95 {
		conf = 0.95
	}
	return conf
}
