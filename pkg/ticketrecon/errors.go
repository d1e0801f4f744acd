package ticketrecon

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrUnknownMode indicates an unrecognized processing mode.
var ErrUnknownMode = errors.New("unknown processing mode")

// ProcessError represents a structural failure while processing one
// file. Parse misses are not errors; only undecodable input or a
// broken configuration surfaces here.
type ProcessError struct {
	File  string
	Stage string // "decode", "build", "config"
	Err   error
}

func (e *ProcessError) Error() string {
	return fmt.Sprintf("processing error in file %q (%s): %v", e.File, e.Stage, e.Err)
}

func (e *ProcessError) Unwrap() error {
	return e.Err
}

// NewProcessError creates a new ProcessError.
func NewProcessError(file, stage string, err error) *ProcessError {
	return &ProcessError{
		File:  file,
		Stage: stage,
		Err:   err,
	}
}
