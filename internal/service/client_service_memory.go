package service

import (
	"context"
	"fmt"

	"github.com/platanus-hack/platanus-hack-25-team-35/internal/adapter"
	"github.com/platanus-hack/platanus-hack-25-team-35/internal/logger"
	"github.com/platanus-hack/platanus-hack-25-team-35/internal/validators"
	"github.com/platanus-hack/platanus-hack-25-team-35/models"
)

type clientMemoryService struct {
	serverAdapter adapter.ServerAdapter
	validator     validators.Validator
	logger        *logger.Logger
}

func NewClientMemoryService(serverAdapter adapter.ServerAdapter, validator validators.Validator, log *logger.Logger) ClientMemoryService {
	return &clientMemoryService{
		serverAdapter: serverAdapter,
		validator:     validator,
		logger:        log.WithComponent("memory"),
	}
}

func (s *clientMemoryService) Save(ctx context.Context, textoOriginal string, items []models.MemoryItem) (models.SaveMemoryResponse, error) {
	req := models.SaveMemoryRequest{TextoOriginal: textoOriginal, Items: items}
	if err := s.validator.Validate(ctx, req); err != nil {
		s.logger.Error().Str("op", "save_memory").Err(err).Msg("invalid memory items")
		return models.SaveMemoryResponse{}, fmt.Errorf("%w: %w", ErrInvalidMemoryRequest, err)
	}

	resp, err := s.serverAdapter.SaveMemory(ctx, req)
	if err != nil {
		s.logger.Error().Str("op", "save_memory").Int("status", adapter.StatusCodeOf(err)).Err(err).Msg("save memory failed")
		return models.SaveMemoryResponse{}, fmt.Errorf("save memory: %w", err)
	}

	s.logger.Info().Str("op", "save_memory").Int("count", resp.Count).Ints64("ids", resp.IDs).Msg("memory saved")
	return resp, nil
}

func (s *clientMemoryService) Load(ctx context.Context, limit int, tipo models.MemoryType) ([]models.MemoryItem, error) {
	if limit <= 0 {
		limit = models.DefaultMemoryLimit
	}

	req := models.LoadMemoryRequest{Limit: limit, Tipo: tipo}
	if err := s.validator.Validate(ctx, req); err != nil {
		s.logger.Error().Str("op", "load_memory").Err(err).Msg("invalid memory filter")
		return nil, fmt.Errorf("%w: %w", ErrInvalidMemoryRequest, err)
	}

	items, err := s.serverAdapter.LoadMemory(ctx, req)
	if err != nil {
		s.logger.Error().Str("op", "load_memory").Int("status", adapter.StatusCodeOf(err)).Err(err).Msg("load memory failed")
		return nil, fmt.Errorf("load memory: %w", err)
	}

	s.logger.Debug().Str("op", "load_memory").Int("returned", len(items)).Msg("memory loaded")
	return items, nil
}
