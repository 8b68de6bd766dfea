package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/platanus-hack/platanus-hack-25-team-35/internal/logger"
	"github.com/platanus-hack/platanus-hack-25-team-35/models"
)

// artifactFileStorage writes each artifact to its own file under dir. Files
// appear atomically: bytes go to a temp file first and are renamed into
// place.
type artifactFileStorage struct {
	dir    string
	logger *logger.Logger
}

func NewArtifactFileStorage(dir string, logger *logger.Logger) (ArtifactFileStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create artifact dir %s: %w", dir, err)
	}
	return &artifactFileStorage{dir: dir, logger: logger}, nil
}

func (s *artifactFileStorage) Write(ctx context.Context, artifact models.Artifact, data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyArtifact
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	final := filepath.Join(s.dir, fileName(artifact))

	tmp, err := os.CreateTemp(s.dir, ".artifact-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		cleanup()
		return "", fmt.Errorf("write artifact: %w", err)
	}
	if err = tmp.Close(); err != nil {
		cleanup()
		return "", fmt.Errorf("close artifact: %w", err)
	}
	if err = os.Rename(tmpName, final); err != nil {
		cleanup()
		return "", fmt.Errorf("move artifact into place: %w", err)
	}

	s.logger.Debug().Str("func", "artifactFileStorage.Write").Str("path", final).Int("bytes", len(data)).Msg("artifact written")
	return final, nil
}

// fileName is "<id>-<name>" with path separators stripped from name.
func fileName(a models.Artifact) string {
	name := strings.NewReplacer("/", "_", `\`, "_").Replace(a.Name)
	if name == "" || name == "." || name == ".." {
		name = "audio"
	}
	if a.ID == "" {
		return name
	}
	return a.ID + "-" + name
}
