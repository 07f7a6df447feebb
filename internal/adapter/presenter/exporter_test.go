package presenter

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/johnquangdev/meeting-recap/internal/domain/entities"
)

func testRecord() entities.MeetingRecord {
	return entities.MeetingRecord{
		Title:        "Q2 Roadmap | Planning",
		Date:         "04/15/2025",
		Participants: []entities.Participant{{Name: "Sarah", Role: "PM"}, {Name: "Michael"}},
		Summary:      "We agreed on **priorities**.",
		KeyDecisions: []string{"Focus on the migration."},
		ActionItems: []entities.ActionItem{{
			Person:  "Michael",
			Task:    "Michael will lead the migration | phase 1.",
			DueDate: "May 31st",
			Status:  entities.ActionItemStatusPending,
		}},
	}
}

func TestNewExporter(t *testing.T) {
	tests := []struct {
		format  string
		wantExt string
		wantErr bool
	}{
		{"", "json", false},
		{"json", "json", false},
		{"YAML", "yaml", false},
		{"yml", "yaml", false},
		{"md", "md", false},
		{"markdown", "md", false},
		{"pdf", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			e, err := NewExporter(tt.format)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantExt, e.Extension())
		})
	}
}

func TestJSONExporter_Export(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&JSONExporter{}).Export(testRecord(), &buf))

	var got entities.MeetingRecord
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, testRecord(), got)
	assert.Contains(t, buf.String(), `"keyDecisions"`)
	assert.Contains(t, buf.String(), `"dueDate": "May 31st"`)
}

func TestYAMLExporter_Export(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&YAMLExporter{}).Export(testRecord(), &buf))

	var got entities.MeetingRecord
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, testRecord(), got)
	assert.Contains(t, buf.String(), "keyDecisions:")
}

func TestMarkdownExporter_Export(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&MarkdownExporter{}).Export(testRecord(), &buf))
	out := buf.String()

	assert.Contains(t, out, "# Q2 Roadmap | Planning\n\n**Date:** 04/15/2025\n")
	assert.Contains(t, out, "- Sarah (PM)\n- Michael\n")
	assert.Contains(t, out, `We agreed on \*\*priorities\*\*.`)
	assert.Contains(t, out, "1. Focus on the migration.\n")
	assert.Contains(t, out, `| Michael | Michael will lead the migration \| phase 1. | May 31st | Pending |`)
}

func TestMarkdownExporter_EmptyRecord(t *testing.T) {
	var buf bytes.Buffer
	record := entities.NewMeetingRecord(time.Now())
	require.NoError(t, (&MarkdownExporter{}).Export(record, &buf))

	assert.Contains(t, buf.String(), "_None identified._")
	assert.NotContains(t, buf.String(), "| Owner |")
}

func TestExportFileName(t *testing.T) {
	e, _ := NewExporter("md")
	assert.Equal(t, "q2-roadmap-planning.md", ExportFileName(testRecord(), e))
	assert.Equal(t, "meeting.md", ExportFileName(entities.MeetingRecord{Title: "!!!"}, e))
}
