// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/platanus-hack/platanus-hack-25-team-35/internal/adapter"
	"github.com/platanus-hack/platanus-hack-25-team-35/internal/logger"
	"github.com/platanus-hack/platanus-hack-25-team-35/models"
)

type clientUploadService struct {
	serverAdapter adapter.ServerAdapter
	logger        *logger.Logger
}

func NewClientUploadService(serverAdapter adapter.ServerAdapter, log *logger.Logger) ClientUploadService {
	return &clientUploadService{
		serverAdapter: serverAdapter,
		logger:        log.WithComponent("upload"),
	}
}

func (s *clientUploadService) Upload(ctx context.Context, req models.UploadRequest) (models.UploadResult, error) {
	if len(req.AudioBytes) == 0 {
		s.logger.Error().Str("op", "upload").Str("target", req.SourcePath).Err(ErrAudioNotFound).Msg("nothing to upload")
		return models.UploadResult{}, fmt.Errorf("%w: no audio bytes", ErrAudioNotFound)
	}

	s.logger.Info().
		Str("op", "upload").
		Str("target", req.SourcePath).
		Int("bytes", len(req.AudioBytes)).
		Msg("uploading recording")

	started := time.Now()
	result, err := s.serverAdapter.ProcessAudio(ctx, req)
	if err != nil {
		s.logger.Error().
			Str("op", "upload").
			Str("target", req.SourcePath).
			Int("status", adapter.StatusCodeOf(err)).
			Err(err).
			Msg("upload failed")
		return models.UploadResult{}, fmt.Errorf("upload %s: %w", req.SourcePath, err)
	}

	s.logger.Info().
		Str("op", "upload").
		Str("target", req.SourcePath).
		Dur("took", time.Since(started)).
		Int("items_saved", result.ItemsSaved).
		Str("transcription", result.Transcription).
		Msg("upload acknowledged")

	return result, nil
}

func (s *clientUploadService) UploadFile(ctx context.Context, path string) (models.UploadResult, error) {
	data, err := readAudio(path)
	if err != nil {
		s.logger.Error().Str("op", "upload").Str("target", path).Err(err).Msg("cannot read recording")
		return models.UploadResult{}, err
	}

	return s.Upload(ctx, models.UploadRequest{
		AudioBytes: data,
		SourcePath: path,
		FileName:   filepath.Base(path),
	})
}
