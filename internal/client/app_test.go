package client

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platanus-hack/platanus-hack-25-team-35/internal/adapter"
	"github.com/platanus-hack/platanus-hack-25-team-35/internal/config"
	"github.com/platanus-hack/platanus-hack-25-team-35/internal/logger"
	"github.com/platanus-hack/platanus-hack-25-team-35/internal/reconnect"
	"github.com/platanus-hack/platanus-hack-25-team-35/internal/service"
	"github.com/platanus-hack/platanus-hack-25-team-35/internal/store"
	"github.com/platanus-hack/platanus-hack-25-team-35/internal/testserver"
	"github.com/platanus-hack/platanus-hack-25-team-35/models"
)

// ── Helpers ──

func testConfig(t *testing.T, serverURL string) config.DeviceConfig {
	t.Helper()
	dir := t.TempDir()
	return config.DeviceConfig{
		Adapter:   config.DeviceAdapter{BaseURL: serverURL, RequestTimeout: 2 * time.Second, UploadTimeout: 2 * time.Second},
		Transport: config.DeviceTransport{BaseURL: serverURL, ConnectTimeout: time.Second},
		Reconnect: config.DeviceReconnect{Delay: 20 * time.Millisecond},
		Storage:   config.DeviceStorage{DSN: filepath.Join(dir, "device.db"), ArtifactDir: filepath.Join(dir, "artifacts")},
		App:       config.DeviceApp{Name: "kitchen"},
	}
}

type harness struct {
	app      *App
	device   *Device
	storages *store.ClientStorages
	done     chan error
	cancel   context.CancelFunc
}

func startApp(t *testing.T, cfg config.DeviceConfig) *harness {
	t.Helper()
	log := logger.Nop()

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	require.NoError(t, err)

	storages, err := store.NewClientStorages(context.Background(), cfg.Storage, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	device, err := NewDevice(cfg, log)
	require.NoError(t, err)

	services := service.NewClientServices(serverAdapter, storages.Sink, cfg.App, log)
	app := NewApp(device, services, serverAdapter, cfg.App, log)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()
	t.Cleanup(cancel)

	return &harness{app: app, device: device, storages: storages, done: done, cancel: cancel}
}

func (h *harness) stop(t *testing.T) {
	t.Helper()
	h.cancel()
	select {
	case err := <-h.done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("app did not stop")
	}
}

func waitSID(t *testing.T, srv *testserver.Server) string {
	t.Helper()
	select {
	case sid := <-srv.Connected():
		return sid
	case <-time.After(3 * time.Second):
		t.Fatal("device never connected")
		return ""
	}
}

// ── End to end ──

func TestApp_UploadOnConnectAndPlayResponse(t *testing.T) {
	srv := testserver.New()
	defer srv.Close()

	cfg := testConfig(t, srv.URL())
	cfg.App.UploadPath = filepath.Join(t.TempDir(), "utterance.wav")
	require.NoError(t, os.WriteFile(cfg.App.UploadPath, []byte("RIFFwav"), 0o600))

	h := startApp(t, cfg)
	waitSID(t, srv)

	require.Eventually(t, func() bool { return len(srv.Uploads()) == 1 }, 3*time.Second, 10*time.Millisecond)
	up := srv.Uploads()[0]
	assert.Equal(t, "/api/agent/process-audio", up.Path)
	assert.Equal(t, "utterance.wav", up.FileName)
	assert.Equal(t, []byte("RIFFwav"), up.Data)
	assert.Equal(t, 1, srv.Requests("GET /api/activities"))

	srv.SetArtifact("/uploads/audio/response-1.mp3", []byte("mp3data"))
	require.NoError(t, srv.Emit(models.EventAgentResponse, models.AgentResponse{
		Text:     "Tu cita es mañana",
		AudioURL: "/uploads/audio/response-1.mp3",
	}))
	// a response without audio must not trigger a download
	require.NoError(t, srv.Emit(models.EventAgentResponse, models.AgentResponse{Text: "solo texto"}))

	var recent []models.Artifact
	require.Eventually(t, func() bool {
		var err error
		recent, err = h.storages.ArtifactRepository.ListRecent(context.Background(), 10)
		return err == nil && len(recent) == 1
	}, 3*time.Second, 10*time.Millisecond)

	assert.Equal(t, "response-1.mp3", recent[0].Name)
	assert.Equal(t, "Tu cita es mañana", recent[0].Text)
	data, err := os.ReadFile(recent[0].LocalPath)
	require.NoError(t, err)
	assert.Equal(t, []byte("mp3data"), data)
	assert.Equal(t, 1, srv.Requests("GET /uploads/audio/response-1.mp3"))

	h.stop(t)
}

func TestApp_ReconnectsAfterDropAndStopsOnShutdown(t *testing.T) {
	srv := testserver.New()
	defer srv.Close()

	h := startApp(t, testConfig(t, srv.URL()))
	first := waitSID(t, srv)

	srv.DropConnections()
	second := waitSID(t, srv)
	assert.NotEqual(t, first, second)
	require.Eventually(t, func() bool {
		return h.device.Controller.State() == reconnect.Connected
	}, 3*time.Second, 10*time.Millisecond)

	h.stop(t)
	assert.Equal(t, reconnect.Terminated, h.device.Controller.State())

	connects := srv.ConnectCount()
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, connects, srv.ConnectCount(), "no connects after shutdown")
	require.Eventually(t, func() bool { return srv.ActiveConnections() == 0 }, 3*time.Second, 10*time.Millisecond)
}

func TestApp_WalkieTalkieStartupMessage(t *testing.T) {
	srv := testserver.New()
	defer srv.Close()

	cfg := testConfig(t, srv.URL())
	cfg.App.MessagePath = filepath.Join(t.TempDir(), "ptt.wav")
	require.NoError(t, os.WriteFile(cfg.App.MessagePath, []byte("pcm"), 0o600))

	h := startApp(t, cfg)
	waitSID(t, srv)

	require.Eventually(t, func() bool { return len(srv.Uploads()) == 1 }, 3*time.Second, 10*time.Millisecond)
	up := srv.Uploads()[0]
	assert.Equal(t, "/api/audio/message", up.Path)
	assert.Equal(t, "kitchen", up.From)

	h.stop(t)
}

func TestApp_UnreachableServerStopsCleanly(t *testing.T) {
	srv := testserver.New()
	url := srv.URL()
	srv.Close()

	h := startApp(t, testConfig(t, url))
	require.Eventually(t, func() bool {
		return h.device.Controller.Attempts() >= 2
	}, 3*time.Second, 5*time.Millisecond)

	h.stop(t)
	assert.Equal(t, reconnect.Terminated, h.device.Controller.State())
}
