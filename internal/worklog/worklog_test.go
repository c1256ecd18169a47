package worklog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmoraes/tj-feed/internal/model"
	"github.com/cmoraes/tj-feed/internal/worklog"
)

func writeWorklog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "2021-09-30.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadFile(t *testing.T) {
	path := writeWorklog(t, `time_spent,issue_name,issue_description
30min,communication_9,Meetings
0.5h,management_6,Weekly review
7.5h,my_proj_13,Module implementation
`)

	entries, err := worklog.ReadFile(path)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, model.TimeEntry{Duration: 30, IssueName: "communication_9", IssueDescription: "Meetings"}, entries[0])
	assert.Equal(t, model.TimeEntry{Duration: 30, IssueName: "management_6", IssueDescription: "Weekly review"}, entries[1])
	assert.Equal(t, model.TimeEntry{Duration: 450, IssueName: "my_proj_13", IssueDescription: "Module implementation"}, entries[2])
}

func TestReadFileOptionalDescription(t *testing.T) {
	path := writeWorklog(t, `time_spent,issue_name,issue_description
30min,communication_9,
45min,management_6
`)

	entries, err := worklog.ReadFile(path)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Empty(t, entries[0].IssueDescription)
	assert.Empty(t, entries[1].IssueDescription)
}

func TestReadFileDuplicateIssuesKept(t *testing.T) {
	path := writeWorklog(t, `time_spent,issue_name,issue_description
30min,my_proj_13,Morning
60min,my_proj_13,Afternoon
`)

	entries, err := worklog.ReadFile(path)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, entries[0].IssueName, entries[1].IssueName)
}

func TestReadFileHeaderOnly(t *testing.T) {
	path := writeWorklog(t, "time_spent,issue_name,issue_description\n")

	entries, err := worklog.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestReadFileWrongHeader(t *testing.T) {
	for _, content := range []string{
		"",
		"issue_name,time_spent,issue_description\n",
		"time_spent,issue_name\n",
		"Time_Spent,Issue_Name,Issue_Description\n",
	} {
		path := writeWorklog(t, content)
		_, err := worklog.ReadFile(path)
		require.Error(t, err, "content %q", content)

		var headerErr *worklog.HeaderError
		assert.ErrorAs(t, err, &headerErr, "content %q", content)
	}
}

func TestReadFileMalformedDuration(t *testing.T) {
	path := writeWorklog(t, `time_spent,issue_name,issue_description
30min,communication_9,Meetings
twenty,management_6,Weekly review
`)

	entries, err := worklog.ReadFile(path)
	require.Error(t, err)
	assert.Nil(t, entries)

	var rowErr *worklog.RowError
	require.ErrorAs(t, err, &rowErr)
	assert.Equal(t, 2, rowErr.Row)
	assert.Equal(t, path, rowErr.File)
	assert.ErrorIs(t, err, model.ErrMalformedDuration)
}

func TestReadFileEmptyIssueName(t *testing.T) {
	path := writeWorklog(t, `time_spent,issue_name,issue_description
30min,,Meetings
`)

	_, err := worklog.ReadFile(path)
	require.Error(t, err)

	var rowErr *worklog.RowError
	require.ErrorAs(t, err, &rowErr)
	assert.Equal(t, 1, rowErr.Row)
}

func TestReadFileMissing(t *testing.T) {
	_, err := worklog.ReadFile(filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
