// Package config loads attendsplit settings from YAML.
package config

import (
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// AppName is the application name used for XDG directory paths.
const AppName = "attendsplit"

// Config holds file-level defaults. Command-line flags override them.
type Config struct {
	// Font is the UTF-8 TrueType font used for PDF output.
	Font string `yaml:"font"`
	// Format is the output format, "pdf" or "docx".
	Format string `yaml:"format"`
	// OutputDir is where documents are written.
	OutputDir string `yaml:"output_dir"`
	// Combine writes all groups into one document.
	Combine bool `yaml:"combine"`
	// Header treats the first row as a header. Unset means true.
	Header *bool `yaml:"header"`
	// MirrorColumns lays columns out right to left.
	MirrorColumns bool `yaml:"mirror_columns"`
	// Jobs bounds parallel rendering.
	Jobs int `yaml:"jobs"`
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	return &Config{
		Format:    "pdf",
		OutputDir: ".",
		Jobs:      1,
	}
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Format) {
	case "", "pdf", "docx":
	default:
		return ErrInvalidFormat
	}
	if c.Jobs < 1 {
		return ErrInvalidJobs
	}
	return nil
}

// IncludeHeader reports whether the first row is a header.
func (c *Config) IncludeHeader() bool {
	return c.Header == nil || *c.Header
}

// XDGConfigDir returns the XDG config directory for attendsplit.
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}
