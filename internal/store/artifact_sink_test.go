package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platanus-hack/platanus-hack-25-team-35/internal/config"
	"github.com/platanus-hack/platanus-hack-25-team-35/internal/logger"
	"github.com/platanus-hack/platanus-hack-25-team-35/models"
)

func TestClientStorages_DeliverRoundTrip(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	storages, err := NewClientStorages(ctx, config.DeviceStorage{
		DSN:         filepath.Join(dir, "device.db"),
		ArtifactDir: filepath.Join(dir, "artifacts"),
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	a := models.Artifact{
		ID:         "id-1",
		Name:       "response-1.mp3",
		Source:     models.ArtifactFromResponse,
		Text:       "hola",
		RemoteURL:  "/uploads/audio/response-1.mp3",
		ReceivedAt: time.Date(2025, 11, 22, 10, 0, 0, 0, time.UTC),
	}
	require.NoError(t, storages.Sink.Deliver(ctx, a, []byte("mp3")))

	got, err := storages.ArtifactRepository.Get(ctx, "id-1")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "artifacts", "id-1-response-1.mp3"), got.LocalPath)
	assert.Equal(t, int64(3), got.Size)
	assert.Equal(t, models.ArtifactFromResponse, got.Source)
	assert.True(t, a.ReceivedAt.Equal(got.ReceivedAt))

	data, err := os.ReadFile(got.LocalPath)
	require.NoError(t, err)
	assert.Equal(t, []byte("mp3"), data)

	recent, err := storages.ArtifactRepository.ListRecent(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, recent, 1)
}

func TestClientStorages_InMemory(t *testing.T) {
	storages, err := NewClientStorages(context.Background(), config.DeviceStorage{
		DSN:         memoryDSN,
		ArtifactDir: t.TempDir(),
	}, logger.Nop())
	require.NoError(t, err)
	defer storages.Close()

	_, err = storages.ArtifactRepository.Get(context.Background(), "none")
	assert.ErrorIs(t, err, ErrArtifactNotFound)
}

func TestArtifactSink_Deliver_EmptyData(t *testing.T) {
	files, err := NewArtifactFileStorage(t.TempDir(), logger.Nop())
	require.NoError(t, err)
	sink := NewArtifactSink(files, nil, logger.Nop())

	err = sink.Deliver(context.Background(), models.Artifact{ID: "x"}, nil)
	assert.ErrorIs(t, err, ErrEmptyArtifact)
}
