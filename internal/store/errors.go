package store

import "errors"

// Sentinel errors returned by the artifact journal and file storage.
// Callers should use [errors.Is] to match against these values.
var (
	// ErrArtifactNotFound is returned when no journal entry matches the
	// requested artifact ID.
	ErrArtifactNotFound = errors.New("artifact not found")

	// ErrArtifactNotSaved is returned when an INSERT completes without error
	// but affects no rows.
	ErrArtifactNotSaved = errors.New("artifact was not saved")

	// ErrEmptyArtifact is returned when asked to store zero bytes.
	ErrEmptyArtifact = errors.New("artifact has no data")
)
