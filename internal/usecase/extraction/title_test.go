package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/johnquangdev/meeting-recap/internal/domain/entities"
)

func TestExtractTitle(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"meeting title wins", "Title: other\nMeeting Title: Q2 Planning", "Q2 Planning"},
		{"title label", "Alice: hi\nTitle: Weekly Sync", "Weekly Sync"},
		{"first readable line", "\n\n  Standup notes  \nAlice: hi", "Standup notes"},
		{"empty", "", entities.DefaultTitle},
		{"binary", "\x00\x01\x02\n\x03", entities.DefaultTitle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractTitle(tt.text))
		})
	}
}

func TestIsReadable(t *testing.T) {
	assert.True(t, IsReadable("Hello, world"))
	assert.False(t, IsReadable("---"))
	assert.False(t, IsReadable("abc\x00def"))
	assert.False(t, IsReadable(string([]byte{0xff, 0xfe, 'a'})))
}

func TestSplitSentences(t *testing.T) {
	got := SplitSentences("Hello there. How are you?  Fine!! trailing")
	assert.Equal(t, []string{"Hello there.", "How are you?", "Fine!!"}, got)
	assert.Empty(t, SplitSentences("no terminator"))
}
