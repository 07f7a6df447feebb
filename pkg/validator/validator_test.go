package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-recap/internal/adapter/dto/transcript"
)

func TestCustomValidator_ProcessTranscriptRequest(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		req     transcript.ProcessTranscriptRequest
		wantErr bool
	}{
		{name: "content", req: transcript.ProcessTranscriptRequest{Content: "Ana: hi"}},
		{name: "demo without content", req: transcript.ProcessTranscriptRequest{UseDemo: true}},
		{name: "empty", req: transcript.ProcessTranscriptRequest{}, wantErr: true},
		{name: "known format", req: transcript.ProcessTranscriptRequest{Content: "x", Format: "csv"}},
		{name: "auto format", req: transcript.ProcessTranscriptRequest{Content: "x", Format: "auto"}},
		{name: "format alias", req: transcript.ProcessTranscriptRequest{Content: "x", Format: "Plain"}},
		{name: "unknown format", req: transcript.ProcessTranscriptRequest{Content: "x", Format: "docx"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCustomValidator_ExportRecordRequest(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&transcript.ExportRecordRequest{}))
	assert.NoError(t, v.Validate(&transcript.ExportRecordRequest{Format: "md"}))
	assert.Error(t, v.Validate(&transcript.ExportRecordRequest{Format: "pdf"}))
}

func TestFieldErrors(t *testing.T) {
	v := New()

	err := v.Validate(&transcript.ProcessTranscriptRequest{Format: "docx"})
	require.Error(t, err)
	assert.Equal(t, map[string]string{
		"content": "required_without",
		"format":  TagTranscriptFormat,
	}, FieldErrors(err))

	assert.Nil(t, FieldErrors(nil))
	assert.Nil(t, FieldErrors(assert.AnError))
}
