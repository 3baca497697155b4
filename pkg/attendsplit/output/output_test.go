package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/attendsplit/pkg/attendsplit/models"
)

func sampleManifest() *models.Manifest {
	return &models.Manifest{
		Source: "roster.xlsx",
		Sheet:  "Sheet1",
		Format: "pdf",
		Files: []models.OutputFile{
			{Path: "out/Class A.pdf", Groups: []int{1}, Rows: 5},
			{Path: "out/Class B.pdf", Groups: []int{2}, Rows: 4},
		},
		Groups: []models.GroupSummary{
			{Index: 1, Title: "Class A", Rows: 5, File: "out/Class A.pdf"},
			{Index: 2, Title: "Class B", Rows: 4, File: "out/Class B.pdf"},
		},
	}
}

func TestToJSON(t *testing.T) {
	m := sampleManifest()

	compact, err := ToJSON(m, false)
	require.NoError(t, err)
	assert.NotContains(t, string(compact), "\n")

	pretty, err := ToJSON(m, true)
	require.NoError(t, err)
	assert.Contains(t, string(pretty), "\n  \"source\": \"roster.xlsx\"")

	var got models.Manifest
	require.NoError(t, json.Unmarshal(pretty, &got))
	if diff := cmp.Diff(*m, got); diff != "" {
		t.Errorf("manifest mismatch (-want +got):\n%s", diff)
	}
}

func TestToMarkdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ToMarkdown(&buf, sampleManifest()))

	out := buf.String()
	assert.Contains(t, out, "# Attendance export: roster.xlsx")
	assert.Contains(t, out, "## Groups")
	assert.Contains(t, out, "Class B")
	assert.Contains(t, out, "`Class A.pdf`")
}

func TestToMarkdownNoGroups(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ToMarkdown(&buf, &models.Manifest{Source: "empty.xlsx"}))
	assert.Contains(t, buf.String(), "No groups were exported.")
}

func TestWriteSummary(t *testing.T) {
	dir := t.TempDir()

	mdPath := filepath.Join(dir, "summary.md")
	require.NoError(t, WriteSummary(mdPath, sampleManifest()))
	data, err := os.ReadFile(mdPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "## Groups")

	jsonPath := filepath.Join(dir, "summary.json")
	require.NoError(t, WriteSummary(jsonPath, sampleManifest()))
	data, err = os.ReadFile(jsonPath)
	require.NoError(t, err)
	assert.True(t, json.Valid(data))
}
