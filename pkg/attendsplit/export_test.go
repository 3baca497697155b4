package attendsplit

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/attendsplit/pkg/attendsplit/models"
	"github.com/ukaji3/attendsplit/pkg/attendsplit/render"
	"go.uber.org/zap/zaptest"
)

func exportOptions(t *testing.T) Options {
	opts := DefaultOptions()
	opts.OutputDir = filepath.Join(t.TempDir(), "out")
	opts.Logger = zaptest.NewLogger(t)
	return opts
}

func sampleGroups() []models.Group {
	return Split(models.Table{
		Header: []string{"Name", "Sun"},
		Rows: [][]string{
			{DefaultMarker, ""}, {"Class 1/2", ""}, {"Dana", "x"},
			{DefaultMarker, ""}, {"Class 3", ""}, {"Noa", ""},
		},
	}, DefaultMarker)
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestExportPerGroup(t *testing.T) {
	opts := exportOptions(t)

	m, err := Export(context.Background(), "roster.xlsx", sampleGroups(), opts)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"Class 1_2.pdf", "Class 3.pdf"}, listDir(t, opts.OutputDir))
	require.Len(t, m.Files, 2)
	assert.Equal(t, filepath.Join(opts.OutputDir, "Class 1_2.pdf"), m.Files[0].Path)
	assert.Equal(t, []int{1}, m.Files[0].Groups)
	assert.Equal(t, 3, m.Files[0].Rows)
	assert.False(t, m.Combined)
	assert.Equal(t, "pdf", m.Format)

	data, err := os.ReadFile(m.Files[1].Path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))

	info, err := os.Stat(m.Files[1].Path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())
}

func TestExportCombined(t *testing.T) {
	opts := exportOptions(t)
	opts.Combine = true

	m, err := Export(context.Background(), filepath.Join("in", "roster.xlsx"), sampleGroups(), opts)
	require.NoError(t, err)

	assert.Equal(t, []string{"roster.pdf"}, listDir(t, opts.OutputDir))
	require.Len(t, m.Files, 1)
	assert.Equal(t, []int{1, 2}, m.Files[0].Groups)
	assert.Equal(t, 6, m.Files[0].Rows)
	assert.True(t, m.Combined)
	assert.Equal(t, "roster.xlsx", m.Source)
	require.Len(t, m.Groups, 2)
	assert.Equal(t, "Class 3", m.Groups[1].Title)
}

func TestExportCombinedName(t *testing.T) {
	opts := exportOptions(t)
	opts.Combine = true
	opts.CombinedName = "week:12"
	opts.Format = render.FormatDOCX

	_, err := Export(context.Background(), "roster.xlsx", sampleGroups(), opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"week_12.docx"}, listDir(t, opts.OutputDir))
}

func TestExportParallel(t *testing.T) {
	var groups []models.Group
	for i := 1; i <= 8; i++ {
		groups = append(groups, models.Group{
			Index: i,
			Title: Title(models.Table{}, i),
			Table: models.Table{Rows: [][]string{{"row", "x"}}},
		})
	}
	opts := exportOptions(t)
	opts.Jobs = 4

	m, err := Export(context.Background(), "roster.xlsx", groups, opts)
	require.NoError(t, err)
	assert.Len(t, listDir(t, opts.OutputDir), 8)
	for i, f := range m.Files {
		assert.Equal(t, []int{i + 1}, f.Groups)
	}
}

func TestExportErrors(t *testing.T) {
	t.Run("no groups", func(t *testing.T) {
		_, err := Export(context.Background(), "roster.xlsx", nil, exportOptions(t))
		assert.ErrorIs(t, err, ErrNoGroups)
	})

	t.Run("unknown format", func(t *testing.T) {
		opts := exportOptions(t)
		opts.Format = "odt"
		_, err := Export(context.Background(), "roster.xlsx", sampleGroups(), opts)
		assert.ErrorIs(t, err, render.ErrUnknownFormat)
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := Export(ctx, "roster.xlsx", sampleGroups(), exportOptions(t))
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("target is a directory", func(t *testing.T) {
		opts := exportOptions(t)
		require.NoError(t, os.MkdirAll(filepath.Join(opts.OutputDir, "Class 3.pdf"), 0o755))

		_, err := Export(context.Background(), "roster.xlsx", sampleGroups(), opts)
		var exportErr *ExportError
		require.ErrorAs(t, err, &exportErr)
		assert.Equal(t, 2, exportErr.Group)

		for _, name := range listDir(t, opts.OutputDir) {
			assert.NotContains(t, name, ".attendsplit-", "temporary file left behind")
		}
	})
}

func TestRun(t *testing.T) {
	path := writeWorkbook(t, "roster.xlsx", attendanceRows())
	opts := exportOptions(t)

	m, err := Run(context.Background(), path, opts)
	require.NoError(t, err)

	assert.Equal(t, "Sheet1", m.Sheet)
	assert.ElementsMatch(t, []string{"Class 1_2.pdf", "Class 3.pdf"}, listDir(t, opts.OutputDir))
	require.Len(t, m.Groups, 2)
	assert.Equal(t, 5, m.Groups[0].Rows)
	assert.Equal(t, 5, m.Groups[1].Rows)
}

func TestRunCombined(t *testing.T) {
	path := writeWorkbook(t, "roster.xlsx", attendanceRows())
	opts := exportOptions(t)
	opts.Combine = true

	m, err := Run(context.Background(), path, opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"roster.pdf"}, listDir(t, opts.OutputDir))
	assert.Equal(t, []int{1, 2}, m.Files[0].Groups)
}
