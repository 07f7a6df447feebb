package presenter

import (
	"github.com/johnquangdev/meeting-recap/internal/adapter/dto/transcript"
	"github.com/johnquangdev/meeting-recap/internal/domain/entities"
	"github.com/johnquangdev/meeting-recap/internal/usecase/followup"
)

// ToMeetingRecordResponse converts a MeetingRecord to its DTO
func ToMeetingRecordResponse(r entities.MeetingRecord) transcript.MeetingRecordResponse {
	participants := make([]transcript.ParticipantResponse, len(r.Participants))
	for i, p := range r.Participants {
		participants[i] = transcript.ParticipantResponse{Name: p.Name, Role: p.Role}
	}

	items := make([]transcript.ActionItemResponse, len(r.ActionItems))
	for i, item := range r.ActionItems {
		items[i] = transcript.ActionItemResponse{
			Person:  item.Person,
			Task:    item.Task,
			DueDate: item.DueDate,
			Status:  item.Status,
		}
	}

	decisions := make([]string, len(r.KeyDecisions))
	copy(decisions, r.KeyDecisions)

	return transcript.MeetingRecordResponse{
		Title:        r.Title,
		Date:         r.Date,
		Participants: participants,
		Summary:      r.Summary,
		KeyDecisions: decisions,
		ActionItems:  items,
	}
}

// ToStoredRecordResponse converts a StoredRecord to its DTO
func ToStoredRecordResponse(s *entities.StoredRecord) *transcript.StoredRecordResponse {
	if s == nil {
		return nil
	}
	return &transcript.StoredRecordResponse{
		ID:         s.ID.String(),
		Format:     s.Format.String(),
		SourceName: s.SourceName,
		CreatedAt:  s.CreatedAt,
		ExpiresAt:  s.ExpiresAt,
		Record:     ToMeetingRecordResponse(s.Record),
	}
}

// ToProcessTranscriptResponse converts a freshly stored record to the upload response
func ToProcessTranscriptResponse(s *entities.StoredRecord) *transcript.ProcessTranscriptResponse {
	if s == nil {
		return nil
	}
	return &transcript.ProcessTranscriptResponse{ID: s.ID.String(), ExpiresAt: s.ExpiresAt}
}

// ToEmailDraftResponse converts a draft and lists the possible recipients
func ToEmailDraftResponse(d followup.Draft, r entities.MeetingRecord) *transcript.EmailDraftResponse {
	return &transcript.EmailDraftResponse{
		Recipient:  d.Recipient,
		Subject:    d.Subject,
		Body:       d.Body,
		Recipients: followup.Recipients(r),
	}
}
