package presenter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/johnquangdev/meeting-recap/internal/domain/entities"
	"github.com/johnquangdev/meeting-recap/internal/usecase/followup"
)

func TestToStoredRecordResponse(t *testing.T) {
	stored := entities.NewStoredRecord(testRecord(), entities.TranscriptFormatCSV, time.Hour)
	stored.SourceName = "meeting.csv"

	resp := ToStoredRecordResponse(stored)

	assert.Equal(t, stored.ID.String(), resp.ID)
	assert.Equal(t, "csv", resp.Format)
	assert.Equal(t, "meeting.csv", resp.SourceName)
	assert.Equal(t, "Q2 Roadmap | Planning", resp.Record.Title)
	assert.Len(t, resp.Record.Participants, 2)
	assert.Equal(t, "PM", resp.Record.Participants[0].Role)
	assert.Equal(t, "May 31st", resp.Record.ActionItems[0].DueDate)
	assert.Nil(t, ToStoredRecordResponse(nil))
}

func TestToMeetingRecordResponse_EmptyCollectionsStayNonNil(t *testing.T) {
	resp := ToMeetingRecordResponse(entities.MeetingRecord{})

	assert.NotNil(t, resp.Participants)
	assert.NotNil(t, resp.KeyDecisions)
	assert.NotNil(t, resp.ActionItems)
}

func TestToEmailDraftResponse(t *testing.T) {
	draft := followup.Draft{Recipient: "Michael", Subject: "Follow-up: x", Body: "Hi Michael"}

	resp := ToEmailDraftResponse(draft, testRecord())

	assert.Equal(t, "Michael", resp.Recipient)
	assert.Equal(t, []string{"Michael"}, resp.Recipients)
}
