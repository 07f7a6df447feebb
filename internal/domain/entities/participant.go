package entities

import "strings"

// Participant is a person named in the meeting, with an optional role.
type Participant struct {
	Name string `json:"name" yaml:"name"`
	Role string `json:"role,omitempty" yaml:"role,omitempty"`
}

// Key returns the dedup key for the participant (case-folded name)
func (p Participant) Key() string {
	return strings.ToLower(strings.TrimSpace(p.Name))
}
