package transcript

import "time"

// ProcessTranscriptResponse is returned after a transcript was processed and stored
type ProcessTranscriptResponse struct {
	ID        string    `json:"id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ParticipantResponse represents a meeting participant
type ParticipantResponse struct {
	Name string `json:"name"`
	Role string `json:"role,omitempty"`
}

// ActionItemResponse represents an action item
type ActionItemResponse struct {
	Person  string `json:"person"`
	Task    string `json:"task"`
	DueDate string `json:"dueDate,omitempty"`
	Status  string `json:"status,omitempty"`
}

// MeetingRecordResponse represents the structured meeting
type MeetingRecordResponse struct {
	Title        string                `json:"title"`
	Date         string                `json:"date"`
	Participants []ParticipantResponse `json:"participants"`
	Summary      string                `json:"summary"`
	KeyDecisions []string              `json:"keyDecisions"`
	ActionItems  []ActionItemResponse  `json:"actionItems"`
}

// StoredRecordResponse represents a stored meeting record with its metadata
type StoredRecordResponse struct {
	ID         string                `json:"id"`
	Format     string                `json:"format"`
	SourceName string                `json:"source_name,omitempty"`
	CreatedAt  time.Time             `json:"created_at"`
	ExpiresAt  time.Time             `json:"expires_at"`
	Record     MeetingRecordResponse `json:"record"`
}

// EmailDraftResponse represents a follow-up email draft
type EmailDraftResponse struct {
	Recipient  string   `json:"recipient"`
	Subject    string   `json:"subject"`
	Body       string   `json:"body"`
	Recipients []string `json:"recipients"`
}
