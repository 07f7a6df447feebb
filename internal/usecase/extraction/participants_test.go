package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/johnquangdev/meeting-recap/internal/domain/entities"
)

func TestExtractParticipants_LabeledBlock(t *testing.T) {
	text := "Participants: Sarah Johnson (Product Manager), Michael Chen (Engineering Lead)"

	got := ExtractParticipants(text)
	assert.Equal(t, []entities.Participant{
		{Name: "Sarah Johnson", Role: "Product Manager"},
		{Name: "Michael Chen", Role: "Engineering Lead"},
	}, got)
}

func TestExtractParticipants_MultilineBlock(t *testing.T) {
	text := "Attendees:\n- Alice Smith - Designer\n- Bob\n\nAlice Smith: hello"

	got := ExtractParticipants(text)
	assert.Equal(t, []entities.Participant{
		{Name: "Alice Smith", Role: "Designer"},
		{Name: "Bob"},
	}, got)
}

func TestExtractParticipants_SemicolonsAndParens(t *testing.T) {
	text := "Present: Dana (Lead; Growth); Eli: Analyst\nDana: let's start"

	got := ExtractParticipants(text)
	assert.Equal(t, []entities.Participant{
		{Name: "Dana", Role: "Lead; Growth"},
		{Name: "Eli", Role: "Analyst"},
	}, got)
}

func TestExtractParticipants_SpeakerFallback(t *testing.T) {
	text := "Meeting Title: Sync\n" +
		"[00:01] Alice: Hi all.\n" +
		"[00:02] bob: hello\n" +
		"[00:03] Alice: Bye.\n" +
		"[00:04] ALICE: again.\n" +
		"http: //example.com\n" +
		"X: y"

	got := ExtractParticipants(text)
	assert.Equal(t, []entities.Participant{{Name: "Alice"}, {Name: "bob"}}, got)
}

func TestExtractParticipants_RoleInference(t *testing.T) {
	text := "Alice: Hello everyone.\nBob: Hi.\nAlice is the project lead.\nBob is going to ship it."

	got := ExtractParticipants(text)
	assert.Equal(t, []entities.Participant{
		{Name: "Alice", Role: "project lead"},
		{Name: "Bob"},
	}, got)
}

func TestParticipantExtractor_CustomStoplist(t *testing.T) {
	text := "Alice: Hello everyone.\nAlice is the project lead."
	e := &ParticipantExtractor{
		VerbStoplist:  []string{"project"},
		LabelStoplist: DefaultLabelStoplist,
	}

	got := e.Extract(text)
	assert.Equal(t, []entities.Participant{{Name: "Alice"}}, got)
}

func TestParticipantExtractor_WithExtraVerbs(t *testing.T) {
	text := "Alice: Hello everyone.\nAlice is the project lead."
	base := NewParticipantExtractor()
	e := base.WithExtraVerbs(" Project ", "")

	assert.Equal(t, []entities.Participant{{Name: "Alice"}}, e.Extract(text))
	assert.Len(t, base.VerbStoplist, len(DefaultVerbStoplist))
	assert.Len(t, e.VerbStoplist, len(DefaultVerbStoplist)+1)
}

func TestExtractParticipants_Empty(t *testing.T) {
	got := ExtractParticipants("nothing labeled here")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestExtractParticipants_NoDuplicateNames(t *testing.T) {
	text := "Participants: Ann, ann, ANN (Host), Ben"

	got := ExtractParticipants(text)
	seen := map[string]bool{}
	for _, p := range got {
		assert.False(t, seen[p.Key()], "duplicate participant %q", p.Name)
		seen[p.Key()] = true
	}
	assert.Len(t, got, 2)
}

func TestExtractParticipants_UnknownSpeakerCounts(t *testing.T) {
	text := "[09:00] Unknown: Hello there\n[09:01] Bob: Hi all"

	got := ExtractParticipants(text)
	assert.Equal(t, []entities.Participant{{Name: "Unknown"}, {Name: "Bob"}}, got)
}
