package service

import "errors"

var (
	// ErrAudioNotFound reports a recording that is missing, a directory or
	// empty. It is returned before any network call is made.
	ErrAudioNotFound = errors.New("audio not found")

	ErrInvalidMemoryRequest = errors.New("invalid memory request")
	ErrNothingToPlay        = errors.New("push event carries no audio reference")
)
