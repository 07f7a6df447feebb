package followup

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-recap/internal/domain/entities"
)

func testRecord() entities.MeetingRecord {
	return entities.MeetingRecord{
		Title:        "Q2 Planning",
		Date:         "04/15/2025",
		Participants: []entities.Participant{{Name: "Michael"}, {Name: "Emma"}, {Name: "Alex"}},
		Summary:      "We set priorities. Migration comes first.",
		KeyDecisions: []string{"Focus on the database migration."},
		ActionItems: []entities.ActionItem{
			{Person: "Michael", Task: "Michael will lead the database migration.", DueDate: "May 31st"},
			{Person: "Emma", Task: "Emma will lead the dashboard redesign."},
			{Person: "Michael", Task: "Michael will document the rollback plan."},
		},
	}
}

func TestCompose_Team(t *testing.T) {
	draft, err := NewComposer("").Compose(testRecord(), "")
	require.NoError(t, err)

	assert.Equal(t, AllRecipients, draft.Recipient)
	assert.Equal(t, "Follow-up: Q2 Planning", draft.Subject)
	assert.Contains(t, draft.Body, "Hi Team,\n\nHere's a summary of our \"Q2 Planning\" meeting on 04/15/2025:")
	assert.Contains(t, draft.Body, "### 📋 Summary\n- We set priorities\n- Migration comes first.\n")
	assert.Contains(t, draft.Body, "### ✅ Key Decisions\n- Focus on the database migration.\n")
	assert.Contains(t, draft.Body,
		"- **Michael**: Michael will lead the database migration. (Due: May 31st)\n"+
			"- **Emma**: Emma will lead the dashboard redesign.\n"+
			"- **Michael**: Michael will document the rollback plan.\n")
	assert.Contains(t, draft.Body, "### 📅 Next Steps")
	assert.True(t, strings.HasSuffix(draft.Body, "Best regards,\n"+DefaultSender))
}

func TestCompose_Person(t *testing.T) {
	draft, err := NewComposer("Sarah").Compose(testRecord(), "Michael")
	require.NoError(t, err)

	assert.Equal(t, "Michael", draft.Recipient)
	assert.Contains(t, draft.Body, "Hi Michael,\n\nI wanted to follow up on our \"Q2 Planning\" meeting on 04/15/2025.")
	assert.Contains(t, draft.Body, "### 📋 Meeting Summary\nWe set priorities. Migration comes first.\n")
	assert.Contains(t, draft.Body,
		"### 🛠️ Your Action Items\n"+
			"- Michael will lead the database migration. (Due: May 31st)\n"+
			"- Michael will document the rollback plan.\n")
	assert.NotContains(t, draft.Body, "dashboard redesign")
	assert.NotContains(t, draft.Body, "Next Steps")
	assert.Contains(t, draft.Body, "Best regards,\nSarah")
}

func TestCompose_ParticipantWithoutItems(t *testing.T) {
	draft, err := NewComposer("").Compose(testRecord(), "alex")
	require.NoError(t, err)
	assert.Contains(t, draft.Body, "### 🛠️ Your Action Items\n\n")
}

func TestCompose_UnknownRecipient(t *testing.T) {
	_, err := NewComposer("").Compose(testRecord(), "Zoe")
	assert.ErrorIs(t, err, ErrUnknownRecipient)
}

func TestRecipients(t *testing.T) {
	assert.Equal(t, []string{"Michael", "Emma"}, Recipients(testRecord()))
	assert.Empty(t, Recipients(entities.MeetingRecord{}))
}
