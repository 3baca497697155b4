package config

import "errors"

// Configuration errors. Validate returns the first one that applies.
var (
	// ErrConfigNotFound is returned when an explicitly named file does not exist.
	ErrConfigNotFound = errors.New("configuration file not found")

	// ErrInvalidFormat is returned when format is neither pdf nor docx.
	ErrInvalidFormat = errors.New("invalid format: must be pdf or docx")

	// ErrInvalidJobs is returned when jobs is not positive.
	ErrInvalidJobs = errors.New("invalid jobs: must be positive")
)
