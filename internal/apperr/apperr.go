package apperr

import "errors"

var (
	// ErrValidation is a generic sentinel for malformed caller input.
	// Nothing is written before it is raised.
	ErrValidation = errors.New("validation error")
	// ErrNotFound is a generic sentinel for missing resources.
	ErrNotFound = errors.New("not found")
	// ErrNoConfidentMatch means no catalog course cleared the syllabus
	// matching threshold. Callers must surface it rather than guess.
	ErrNoConfidentMatch = errors.New("no confident match")
	// ErrUnsupportedFile rejects an upload before any matching runs.
	ErrUnsupportedFile = errors.New("unsupported file type")
)
