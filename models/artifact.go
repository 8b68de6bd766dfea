package models

import "time"

// ArtifactSource tells which push event produced an artifact.
type ArtifactSource string

const (
	ArtifactFromResponse ArtifactSource = "response"
	ArtifactFromMessage  ArtifactSource = "message"
)

// Artifact describes a fetched audio file handed to playback.
type Artifact struct {
	ID         string
	Name       string
	Source     ArtifactSource
	Text       string
	RemoteURL  string
	LocalPath  string
	Size       int64
	ReceivedAt time.Time
}
