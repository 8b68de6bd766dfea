package store

import (
	"context"
	"fmt"

	"github.com/platanus-hack/platanus-hack-25-team-35/internal/config"
	"github.com/platanus-hack/platanus-hack-25-team-35/internal/logger"
)

// ClientStorages groups the device storage layer.
type ClientStorages struct {
	ArtifactRepository ArtifactRepository
	ArtifactFiles      ArtifactFileStorage
	Sink               *ArtifactSink

	db *DB
}

// NewClientStorages opens the SQLite journal at cfg.DSN, runs pending
// migrations and prepares cfg.ArtifactDir.
func NewClientStorages(ctx context.Context, cfg config.DeviceStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	files, err := NewArtifactFileStorage(cfg.ArtifactDir, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	repo := NewArtifactRepository(db, logger)
	return &ClientStorages{
		ArtifactRepository: repo,
		ArtifactFiles:      files,
		Sink:               NewArtifactSink(files, repo, logger),
		db:                 db,
	}, nil
}

// Close releases the database.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
