package transcript

// ProcessTranscriptRequest represents a JSON transcript submission
type ProcessTranscriptRequest struct {
	Content    string `json:"content" validate:"required_without=UseDemo"`
	Format     string `json:"format,omitempty" validate:"omitempty,transcript_format"`
	SourceName string `json:"source_name,omitempty" validate:"omitempty,max=255"`
	UseDemo    bool   `json:"use_demo,omitempty"`
}

// ExtractTranscriptRequest represents a one-off extraction that is not stored
type ExtractTranscriptRequest struct {
	Content string `json:"content" validate:"required"`
	Format  string `json:"format,omitempty" validate:"omitempty,transcript_format"`
}

// ExportRecordRequest represents query parameters for exporting a record
type ExportRecordRequest struct {
	Format string `query:"format" validate:"omitempty,oneof=json yaml yml md markdown"`
}

// EmailDraftRequest represents query parameters for a follow-up draft
type EmailDraftRequest struct {
	Person string `query:"person" validate:"omitempty,max=200"`
}
