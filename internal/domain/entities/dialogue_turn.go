package entities

// DialogueTurn is one speaker utterance recovered from a transcript.
type DialogueTurn struct {
	Timestamp string `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`
	Speaker   string `json:"speaker" yaml:"speaker"`
	Text      string `json:"text" yaml:"text"`
}

// HasTimestamp reports whether the turn carries a timestamp
func (t DialogueTurn) HasTimestamp() bool {
	return t.Timestamp != ""
}
