package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"comply/internal/compliance"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestFormsCommand(t *testing.T) {
	out, err := execute(t, "forms")
	require.NoError(t, err)
	assert.Contains(t, out, "penetration-test")
	assert.NotContains(t, out, "board-meeting")

	out, err = execute(t, "forms", "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "board-meeting")
}

func TestValidateCommand(t *testing.T) {
	t.Run("valid yaml payload", func(t *testing.T) {
		path := writeFile(t, "minutes.yaml", `
submissionDate: "2024-06-03"
attendees: Alice, Bob
date: "2024-05-30"
meetingMinutes: Approved the budget.
meetingMinutesApprovedBy: Alice
approvedDate: "2024-06-01"
`)
		out, err := execute(t, "validate", "--type", "board-meeting", "--file", path)
		require.NoError(t, err)
		assert.Contains(t, out, "board-meeting payload is valid")
	})

	t.Run("field errors are listed", func(t *testing.T) {
		path := writeFile(t, "minutes.json", `{"submissionDate": "2024-06-03", "date": "2024-05-30"}`)
		out, err := execute(t, "validate", "--type", "board-meeting", "--file", path)
		require.ErrorIs(t, err, errInvalidPayload)
		assert.Contains(t, out, "attendees")
		assert.Contains(t, out, "meetingMinutesApprovedBy")
	})

	t.Run("unknown form type", func(t *testing.T) {
		path := writeFile(t, "payload.json", `{}`)
		_, err := execute(t, "validate", "--type", "tax-return", "--file", path)
		require.Error(t, err)
		assert.NotErrorIs(t, err, errInvalidPayload)
	})

	t.Run("unsupported file extension", func(t *testing.T) {
		path := writeFile(t, "payload.txt", `{}`)
		_, err := execute(t, "validate", "--type", "board-meeting", "--file", path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported payload file")
	})
}

const snapshotYAML = `
organization: org_1
policies: {done: 3, total: 4}
people: {done: 1, total: 2}
tasks:
  - id: tsk_done
    title: Enable MFA
    status: done
  - id: tsk_open
    title: Rotate keys
    status: todo
submissions:
  - form_type: penetration_test
    submitted_at: 2026-10-01T09:00:00Z
`

func TestScoreCommand(t *testing.T) {
	path := writeFile(t, "snapshot.yaml", snapshotYAML)

	out, err := execute(t, "score", "--snapshot", path, "--now", "2026-10-16T00:00:00Z", "--json")
	require.NoError(t, err)

	var overview compliance.Overview
	require.NoError(t, json.Unmarshal([]byte(out), &overview))
	require.Len(t, overview.Categories, 4)
	assert.Equal(t, 75, overview.Categories[0].Percentage)
	assert.Equal(t, 50, overview.Categories[1].Percentage)
	assert.Equal(t, 1, overview.Categories[2].Done)
	assert.Equal(t, 50, overview.Categories[3].Percentage)
	require.Len(t, overview.IncompleteTasks, 1)
	assert.Equal(t, "tsk_open", overview.IncompleteTasks[0].ID)
	for _, d := range overview.OutstandingDocuments {
		assert.NotEqual(t, "penetration-test", string(d.FormType))
	}

	out, err = execute(t, "score", "--snapshot", path, "--now", "2026-10-16T00:00:00Z")
	require.NoError(t, err)
	assert.Contains(t, out, "Rotate keys")
}

func TestScoreCommandErrors(t *testing.T) {
	t.Run("bad now", func(t *testing.T) {
		path := writeFile(t, "snapshot.yaml", snapshotYAML)
		_, err := execute(t, "score", "--snapshot", path, "--now", "yesterday")
		require.Error(t, err)
	})

	t.Run("unknown form type", func(t *testing.T) {
		path := writeFile(t, "snapshot.yaml", "organization: org_1\nsubmissions:\n  - form_type: tax-return\n    submitted_at: 2026-10-01T09:00:00Z\n")
		_, err := execute(t, "score", "--snapshot", path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "tax-return")
	})

	t.Run("missing organization", func(t *testing.T) {
		path := writeFile(t, "snapshot.yaml", "policies: {done: 1, total: 1}\n")
		_, err := execute(t, "score", "--snapshot", path)
		require.Error(t, err)
	})
}

func TestFindingURLCommand(t *testing.T) {
	t.Setenv("COMPLY_APP_BASE_URL", "")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "task",
			args: []string{"--base", "https://app.example.com/", "--org", "org_1", "--task", "tsk_1"},
			want: "https://app.example.com/org_1/tasks/tsk_1\n",
		},
		{
			name: "submission",
			args: []string{"--base", "https://app.example.com", "--org", "org_1", "--submission", "sub_1", "--form-type", "board-meeting"},
			want: "https://app.example.com/org_1/documents/board-meeting/submissions/sub_1\n",
		},
		{
			name: "document",
			args: []string{"--base", "https://app.example.com", "--org", "org_1", "--form-type", "network-diagram"},
			want: "https://app.example.com/org_1/documents/network-diagram\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, append([]string{"finding-url"}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}

	t.Run("base from environment", func(t *testing.T) {
		t.Setenv("COMPLY_APP_BASE_URL", "https://env.example.com")
		out, err := execute(t, "finding-url", "--org", "org_1", "--form-type", "network-diagram")
		require.NoError(t, err)
		assert.Equal(t, "https://env.example.com/org_1/documents/network-diagram\n", out)
	})

	errorCases := map[string][]string{
		"missing base":                   {"--org", "org_1", "--task", "tsk_1"},
		"missing target":                 {"--base", "https://app.example.com", "--org", "org_1"},
		"submission without form type":   {"--base", "https://app.example.com", "--org", "org_1", "--submission", "sub_1"},
		"task with form type":            {"--base", "https://app.example.com", "--org", "org_1", "--task", "tsk_1", "--form-type", "network-diagram"},
		"id with path characters":        {"--base", "https://app.example.com", "--org", "org_1", "--task", "../admin"},
		"organization with path segment": {"--base", "https://app.example.com", "--org", "org/1", "--task", "tsk_1"},
	}
	for name, args := range errorCases {
		t.Run(name, func(t *testing.T) {
			_, err := execute(t, append([]string{"finding-url"}, args...)...)
			require.Error(t, err)
		})
	}
}
