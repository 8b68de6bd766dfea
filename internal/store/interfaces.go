// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store keeps fetched audio artifacts on the device: the bytes in a
// directory on disk and a journal row per artifact in a local SQLite
// database.
package store

import (
	"context"

	"github.com/platanus-hack/platanus-hack-25-team-35/models"
)

// ArtifactRepository is the SQLite journal of delivered artifacts.
type ArtifactRepository interface {
	// Save records a delivered artifact.
	Save(ctx context.Context, artifact models.Artifact) error

	// Get returns the artifact with id or ErrArtifactNotFound.
	Get(ctx context.Context, id string) (models.Artifact, error)

	// ListRecent returns up to limit artifacts, newest first.
	ListRecent(ctx context.Context, limit uint64) ([]models.Artifact, error)
}

// ArtifactFileStorage persists artifact bytes.
type ArtifactFileStorage interface {
	// Write stores data for artifact and returns the resulting local path.
	Write(ctx context.Context, artifact models.Artifact, data []byte) (string, error)
}
