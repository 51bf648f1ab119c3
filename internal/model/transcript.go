package model

import "time"

// Transcript is the archived record of an ended coaching session.
type Transcript struct {
	ID             string         `json:"id,omitempty" bson:"_id,omitempty"`
	SessionID      string         `json:"sessionId" bson:"sessionId"`
	Problem        string         `json:"problem" bson:"problem"`
	Grade          int            `json:"grade" bson:"grade"`
	CharacterType  string         `json:"characterType,omitempty" bson:"characterType,omitempty"`
	FinalHintLevel int            `json:"finalHintLevel" bson:"finalHintLevel"`
	FinalTone      Tone           `json:"finalTone" bson:"finalTone"`
	Turns          []DialogueTurn `json:"turns" bson:"turns"`
	StartedAt      time.Time      `json:"startedAt" bson:"startedAt"`
	EndedAt        time.Time      `json:"endedAt" bson:"endedAt"`
}
