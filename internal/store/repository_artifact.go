package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/platanus-hack/platanus-hack-25-team-35/internal/logger"
	"github.com/platanus-hack/platanus-hack-25-team-35/models"
)

type artifactRepository struct {
	*DB
	logger *logger.Logger
}

func NewArtifactRepository(db *DB, logger *logger.Logger) ArtifactRepository {
	return &artifactRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *artifactRepository) Save(ctx context.Context, artifact models.Artifact) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertArtifactQuery(artifact)
	if err != nil {
		return fmt.Errorf("build insert artifact query: %w", err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "artifactRepository.Save").
			Str("artifact_id", artifact.ID).
			Msg("failed to insert artifact")
		return fmt.Errorf("failed to save artifact (id=%s): %w", artifact.ID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrArtifactNotSaved
	}

	return nil
}

func (r *artifactRepository) Get(ctx context.Context, id string) (models.Artifact, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetArtifactQuery(id)
	if err != nil {
		return models.Artifact{}, fmt.Errorf("build get artifact query: %w", err)
	}

	a, err := scanArtifact(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Artifact{}, ErrArtifactNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "artifactRepository.Get").
			Str("artifact_id", id).
			Msg("failed to query artifact")
		return models.Artifact{}, fmt.Errorf("failed to get artifact (id=%s): %w", id, err)
	}

	return a, nil
}

func (r *artifactRepository) ListRecent(ctx context.Context, limit uint64) ([]models.Artifact, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListRecentArtifactsQuery(limit)
	if err != nil {
		return nil, fmt.Errorf("build list artifacts query: %w", err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "artifactRepository.ListRecent").Msg("failed to query artifacts")
		return nil, fmt.Errorf("failed to list artifacts: %w", err)
	}
	defer rows.Close()

	var out []models.Artifact
	for rows.Next() {
		a, err := scanArtifact(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan artifact: %w", err)
		}
		out = append(out, a)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate artifacts: %w", err)
	}

	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanArtifact(row rowScanner) (models.Artifact, error) {
	var (
		a          models.Artifact
		source     string
		receivedAt time.Time
	)
	if err := row.Scan(&a.ID, &a.Name, &source, &a.Text, &a.RemoteURL, &a.LocalPath, &a.Size, &receivedAt); err != nil {
		return models.Artifact{}, err
	}
	a.Source = models.ArtifactSource(source)
	a.ReceivedAt = receivedAt
	return a, nil
}
