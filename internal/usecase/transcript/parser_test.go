package transcript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-recap/internal/domain/entities"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    entities.TranscriptFormat
	}{
		{"object", `{"speaker":"A"}`, entities.TranscriptFormatJSON},
		{"array", `[{"speaker":"A","text":"hi"}]`, entities.TranscriptFormatJSON},
		{"bracketed text is not json", "[00:01] Alice: hi\n[Meeting ends]", entities.TranscriptFormatTXT},
		{"csv header", "timestamp,speaker,text\n00:01,A,hi", entities.TranscriptFormatCSV},
		{"csv speaker only", "Speaker,Text\nA,hi", entities.TranscriptFormatCSV},
		{"plain text", "Alice: hello there", entities.TranscriptFormatTXT},
		{"empty", "   ", entities.TranscriptFormatTXT},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectFormat(tt.content))
		})
	}
}

func TestParseCSV_WithHeader(t *testing.T) {
	content := "timestamp,speaker,text\n00:01,Alice,Hello\n00:02,Bob,Hi"

	turns := parseCSV(content)
	require.Len(t, turns, 2)
	assert.Equal(t, entities.DialogueTurn{Timestamp: "00:01", Speaker: "Alice", Text: "Hello"}, turns[0])
	assert.Equal(t, entities.DialogueTurn{Timestamp: "00:02", Speaker: "Bob", Text: "Hi"}, turns[1])
}

func TestParseCSV_ReorderedHeader(t *testing.T) {
	content := "Message,Person,Timestamp\nHello there,Alice,00:01"

	turns := parseCSV(content)
	require.Len(t, turns, 1)
	assert.Equal(t, "00:01", turns[0].Timestamp)
	assert.Equal(t, "Alice", turns[0].Speaker)
	assert.Equal(t, "Hello there", turns[0].Text)
}

func TestParseCSV_QuotedFields(t *testing.T) {
	content := `timestamp,speaker,text
00:01,Alice,"Hello, world"
00:02,Bob,"She said ""ship it"""`

	turns := parseCSV(content)
	require.Len(t, turns, 2)
	assert.Equal(t, "Hello, world", turns[0].Text)
	assert.Equal(t, `She said "ship it"`, turns[1].Text)
}

func TestParseCSV_ShortRowsAndMissingSpeaker(t *testing.T) {
	content := "timestamp,speaker,text\nlonely\n00:03,,no speaker here"

	turns := parseCSV(content)
	require.Len(t, turns, 1)
	assert.Equal(t, UnknownSpeaker, turns[0].Speaker)
	assert.Equal(t, "no speaker here", turns[0].Text)
}

func TestParseCSV_RoundTrip(t *testing.T) {
	content := "timestamp,speaker,text\n00:00:05,Alice,We start now\n00:00:09,Bob,Sounds good\n00:01:10,Carol,Let us wrap up"

	p := NewParser(nil)
	res := p.Normalize(content, entities.TranscriptFormatUnknown)

	require.True(t, res.Parsed)
	assert.Equal(t, entities.TranscriptFormatCSV, res.Format)
	assert.Equal(t, "[00:00:05] Alice: We start now\n[00:00:09] Bob: Sounds good\n[00:01:10] Carol: Let us wrap up", res.Text)
}

func TestParseJSON_Aliases(t *testing.T) {
	content := `[
		{"time": "00:01", "person": "Alice", "message": "Hello"},
		{"name": "Bob", "content": "Hi", "timestamp": 12},
		{"text": "anonymous"}
	]`

	turns, err := parseJSON(content)
	require.NoError(t, err)
	require.Len(t, turns, 3)
	assert.Equal(t, entities.DialogueTurn{Timestamp: "00:01", Speaker: "Alice", Text: "Hello"}, turns[0])
	assert.Equal(t, entities.DialogueTurn{Timestamp: "12", Speaker: "Bob", Text: "Hi"}, turns[1])
	assert.Equal(t, UnknownSpeaker, turns[2].Speaker)
}

func TestParseJSON_AliasPriority(t *testing.T) {
	turns, err := parseJSON(`[{"speaker": "Primary", "name": "Secondary", "text": "a", "message": "b"}]`)
	require.NoError(t, err)
	require.Len(t, turns, 1)
	assert.Equal(t, "Primary", turns[0].Speaker)
	assert.Equal(t, "a", turns[0].Text)
}

func TestParseJSON_Unrecognized(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"object", `{"speaker": "A", "text": "b"}`},
		{"empty array", `[]`},
		{"unknown keys", `[{"foo": "bar"}]`},
		{"malformed", `[{"speaker": "A"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseJSON(tt.content)
			assert.ErrorIs(t, err, ErrUnrecognizedStructure)
		})
	}
}

func TestParseJSON_CodeFence(t *testing.T) {
	turns, err := parseJSON("```json\n[{\"speaker\":\"A\",\"text\":\"hi\"}]\n```")
	require.NoError(t, err)
	require.Len(t, turns, 1)
	assert.Equal(t, "A", turns[0].Speaker)
}

func TestParseTXT_Continuation(t *testing.T) {
	content := "Meeting notes\nAlice: Hello\nthere\nBob: Hi"

	turns := parseTXT(content)
	require.Len(t, turns, 2)
	assert.Equal(t, "Alice", turns[0].Speaker)
	assert.Equal(t, "Hello there", turns[0].Text)
	assert.Equal(t, "Bob", turns[1].Speaker)
	assert.Equal(t, "Hi", turns[1].Text)
}

func TestParseTXT_Timestamps(t *testing.T) {
	content := "09:15 Alice: Morning\n1:02:03 Bob: Later\n[10:00] Carol: Bracketed"

	turns := parseTXT(content)
	require.Len(t, turns, 3)
	assert.Equal(t, entities.DialogueTurn{Timestamp: "09:15", Speaker: "Alice", Text: "Morning"}, turns[0])
	assert.Equal(t, entities.DialogueTurn{Timestamp: "1:02:03", Speaker: "Bob", Text: "Later"}, turns[1])
	assert.Equal(t, entities.DialogueTurn{Timestamp: "10:00", Speaker: "Carol", Text: "Bracketed"}, turns[2])
}

func TestRender(t *testing.T) {
	turns := []entities.DialogueTurn{
		{Timestamp: "00:01", Speaker: "Alice", Text: "Hello"},
		{Speaker: "Bob", Text: "Hi"},
	}
	assert.Equal(t, "[00:01] Alice: Hello\nBob: Hi", Render(turns))
	assert.Equal(t, "", Render(nil))
}

func TestRender_ReparsesAsText(t *testing.T) {
	turns := []entities.DialogueTurn{
		{Timestamp: "00:01", Speaker: "Alice", Text: "Hello"},
		{Timestamp: "00:02", Speaker: "Bob", Text: "Hi"},
	}
	assert.Equal(t, turns, parseTXT(Render(turns)))
}

func TestNormalize_FallsBackToRawText(t *testing.T) {
	p := NewParser(nil)

	tests := []struct {
		name    string
		content string
		hint    entities.TranscriptFormat
	}{
		{"malformed json", `{"speaker": broken}`, entities.TranscriptFormatUnknown},
		{"json object", `{"title": "weekly"}`, entities.TranscriptFormatJSON},
		{"no dialogue", "just some notes without any labels", entities.TranscriptFormatTXT},
		{"unsupported hint", "Alice: hi", entities.TranscriptFormat("xml")},
		{"empty", "", entities.TranscriptFormatUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := p.Normalize(tt.content, tt.hint)
			assert.False(t, res.Parsed)
			assert.Equal(t, tt.content, res.Text)
			assert.Error(t, res.Err)
		})
	}
}

func TestParseTurns(t *testing.T) {
	turns, err := ParseTurns("timestamp,speaker,text\n00:01,Ana,Hello\n00:02,Ben,Hi", entities.TranscriptFormatUnknown)
	require.NoError(t, err)
	assert.Equal(t, []entities.DialogueTurn{
		{Timestamp: "00:01", Speaker: "Ana", Text: "Hello"},
		{Timestamp: "00:02", Speaker: "Ben", Text: "Hi"},
	}, turns)

	_, err = ParseTurns(`{"title": "not a list"}`, entities.TranscriptFormatJSON)
	assert.ErrorIs(t, err, ErrUnrecognizedStructure)

	_, err = ParseTurns("", entities.TranscriptFormatTXT)
	assert.ErrorIs(t, err, ErrNoDialogue)
}
