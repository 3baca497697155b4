package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "pdf", cfg.Format)
	assert.Equal(t, ".", cfg.OutputDir)
	assert.Equal(t, 1, cfg.Jobs)
	assert.True(t, cfg.IncludeHeader())
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want error
	}{
		{"docx", Config{Format: "DOCX", Jobs: 2}, nil},
		{"empty format", Config{Jobs: 1}, nil},
		{"bad format", Config{Format: "html", Jobs: 1}, ErrInvalidFormat},
		{"zero jobs", Config{Format: "pdf"}, ErrInvalidJobs},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoadExplicit(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "c.yaml", `
font: /fonts/Heebo.ttf
format: docx
output_dir: out
combine: true
header: false
mirror_columns: true
jobs: 3
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/fonts/Heebo.ttf", cfg.Font)
	assert.Equal(t, "docx", cfg.Format)
	assert.Equal(t, "out", cfg.OutputDir)
	assert.True(t, cfg.Combine)
	assert.False(t, cfg.IncludeHeader())
	assert.True(t, cfg.MirrorColumns)
	assert.Equal(t, 3, cfg.Jobs)
}

func TestLoadKeepsDefaultsForMissingKeys(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "c.yaml", "combine: true\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Combine)
	assert.Equal(t, "pdf", cfg.Format)
	assert.Equal(t, 1, cfg.Jobs)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, ErrConfigNotFound)

	_, err = Load(writeConfig(t, dir, "bad.yaml", "jobs: [1"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, dir, "invalid.yaml", "format: odt\n"))
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestLoadSearchesWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, DefaultConfigFile, "jobs: 5\n")
	t.Chdir(dir)

	assert.Equal(t, DefaultConfigFile, FindConfigFile(""))
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Jobs)
}
