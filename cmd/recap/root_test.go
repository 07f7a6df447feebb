package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-recap/internal/domain/entities"
)

const cliTranscript = `Meeting Title: Launch Sync
Date: 05/02/2025
Participants: Ana (PM), Ben (Engineer)

Ana: We decided to ship the beta on Friday.
Ben: I will prepare the release notes by Thursday.
`

func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func writeTranscript(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestExtractCmd_JSON(t *testing.T) {
	path := writeTranscript(t, "launch.txt", cliTranscript)

	out, err := runCLI(t, "", "extract", path)
	require.NoError(t, err)

	var record entities.MeetingRecord
	require.NoError(t, json.Unmarshal([]byte(out), &record))
	assert.Equal(t, "Launch Sync", record.Title)
	assert.Equal(t, "05/02/2025", record.Date)
	assert.Len(t, record.Participants, 2)
}

func TestExtractCmd_Stdin(t *testing.T) {
	out, err := runCLI(t, cliTranscript, "extract", "-", "--format", "txt", "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "title: Launch Sync")
}

func TestExtractCmd_Markdown(t *testing.T) {
	path := writeTranscript(t, "launch.txt", cliTranscript)

	out, err := runCLI(t, "", "extract", path, "-o", "md")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "# Launch Sync"))
}

func TestExtractCmd_Errors(t *testing.T) {
	path := writeTranscript(t, "launch.txt", cliTranscript)

	_, err := runCLI(t, "", "extract", path, "--format", "docx")
	assert.ErrorIs(t, err, entities.ErrUnsupportedFormat)

	_, err = runCLI(t, "", "extract", path, "-o", "pdf")
	assert.Error(t, err)

	_, err = runCLI(t, "", "extract", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)

	_, err = runCLI(t, "", "extract")
	assert.Error(t, err)
}

func TestDemoCmd(t *testing.T) {
	out, err := runCLI(t, "", "demo")
	require.NoError(t, err)

	var record entities.MeetingRecord
	require.NoError(t, json.Unmarshal([]byte(out), &record))
	assert.Equal(t, "Q2 Product Roadmap Planning", record.Title)
	assert.Equal(t, "04/15/2025", record.Date)
}

func TestEmailCmd(t *testing.T) {
	path := writeTranscript(t, "launch.txt", cliTranscript)

	out, err := runCLI(t, "", "email", path, "--sender", "Tester")
	require.NoError(t, err)
	assert.Contains(t, out, "To: all")
	assert.Contains(t, out, "Subject: Follow-up: Launch Sync")
	assert.Contains(t, out, "Tester")

	_, err = runCLI(t, "", "email", path, "--person", "Zed")
	assert.Error(t, err)
}

func TestShowCmd(t *testing.T) {
	path := writeTranscript(t, "launch.txt", cliTranscript)

	out, err := runCLI(t, "", "show", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Launch Sync")
	assert.Contains(t, out, "05/02/2025")
	assert.Contains(t, out, "Ana")
	assert.Contains(t, out, "Key Decisions")
}
