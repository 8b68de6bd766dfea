// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/platanus-hack/platanus-hack-25-team-35/internal/logger"
	"github.com/platanus-hack/platanus-hack-25-team-35/models"
)

// ArtifactSink is the device playback sink: it writes the bytes to disk and
// journals the artifact. A player process picks files up from the artifact
// directory.
type ArtifactSink struct {
	files      ArtifactFileStorage
	repository ArtifactRepository
	logger     *logger.Logger
}

func NewArtifactSink(files ArtifactFileStorage, repository ArtifactRepository, log *logger.Logger) *ArtifactSink {
	return &ArtifactSink{
		files:      files,
		repository: repository,
		logger:     log.WithComponent("sink"),
	}
}

func (s *ArtifactSink) Deliver(ctx context.Context, artifact models.Artifact, data []byte) error {
	path, err := s.files.Write(ctx, artifact, data)
	if err != nil {
		return fmt.Errorf("store artifact %s: %w", artifact.ID, err)
	}
	artifact.LocalPath = path
	artifact.Size = int64(len(data))

	if err = s.repository.Save(ctx, artifact); err != nil {
		// the file stays; it is still playable without a journal row
		return fmt.Errorf("journal artifact %s: %w", artifact.ID, err)
	}

	s.logger.Info().
		Str("artifact_id", artifact.ID).
		Str("source", string(artifact.Source)).
		Str("path", path).
		Msg("artifact ready for playback")
	return nil
}
