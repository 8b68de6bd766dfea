package service

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/platanus-hack/platanus-hack-25-team-35/internal/adapter"
	"github.com/platanus-hack/platanus-hack-25-team-35/internal/logger"
	"github.com/platanus-hack/platanus-hack-25-team-35/models"
)

type clientMessageService struct {
	serverAdapter adapter.ServerAdapter
	deviceName    string
	logger        *logger.Logger
}

func NewClientMessageService(serverAdapter adapter.ServerAdapter, deviceName string, log *logger.Logger) ClientMessageService {
	return &clientMessageService{
		serverAdapter: serverAdapter,
		deviceName:    deviceName,
		logger:        log.WithComponent("message"),
	}
}

func (s *clientMessageService) SendFile(ctx context.Context, path string) (models.AudioMessageResult, error) {
	data, err := readAudio(path)
	if err != nil {
		s.logger.Error().Str("op", "send_message").Str("target", path).Err(err).Msg("cannot read recording")
		return models.AudioMessageResult{}, err
	}

	result, err := s.serverAdapter.SendAudioMessage(ctx, models.AudioMessageRequest{
		AudioBytes: data,
		SourcePath: path,
		FileName:   filepath.Base(path),
		From:       s.deviceName,
	})
	if err != nil {
		s.logger.Error().
			Str("op", "send_message").
			Str("target", path).
			Int("status", adapter.StatusCodeOf(err)).
			Err(err).
			Msg("walkie-talkie message failed")
		return models.AudioMessageResult{}, fmt.Errorf("send message %s: %w", path, err)
	}

	s.logger.Info().Str("op", "send_message").Str("file_url", result.FileURL).Msg("walkie-talkie message sent")
	return result, nil
}
