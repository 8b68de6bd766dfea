// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platanus-hack/platanus-hack-25-team-35/internal/config"
	"github.com/platanus-hack/platanus-hack-25-team-35/internal/logger"
	"github.com/platanus-hack/platanus-hack-25-team-35/models"
)

// newTestAdapter builds an httpServerAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	return newTestAdapterWithTimeouts(t, serverURL, time.Second, time.Second)
}

func newTestAdapterWithTimeouts(t *testing.T, serverURL string, request, upload time.Duration) *httpServerAdapter {
	t.Helper()
	cfg := config.DeviceAdapter{BaseURL: serverURL, RequestTimeout: request, UploadTimeout: upload}

	a, err := NewHTTPServerAdapter(cfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func readMultipartFile(t *testing.T, r *http.Request) (string, []byte) {
	t.Helper()
	require.NoError(t, r.ParseMultipartForm(1<<20))
	f, hdr, err := r.FormFile("file")
	require.NoError(t, err)
	defer f.Close()
	data, err := io.ReadAll(f)
	require.NoError(t, err)
	return hdr.Filename, data
}

// ── constructor ──────────────────────────────────────────────────────────────

func TestNewHTTPServerAdapter_InvalidURL(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.DeviceAdapter{BaseURL: "  "}, logger.Nop())

	require.Error(t, err)
}

// ── ProcessAudio ─────────────────────────────────────────────────────────────

func TestProcessAudio_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/agent/process-audio", r.URL.Path)

		name, data := readMultipartFile(t, r)
		assert.Equal(t, "clip.wav", name)
		assert.Equal(t, []byte("RIFF-audio"), data)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"transcription":"hola","items_saved":2,"response_text":"Anotado","interaction_type":"conversation"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.ProcessAudio(context.Background(), models.UploadRequest{AudioBytes: []byte("RIFF-audio"), FileName: "clip.wav"})

	require.NoError(t, err)
	assert.Equal(t, "hola", got.Transcription)
	assert.Equal(t, 2, got.ItemsSaved)
	assert.Equal(t, "Anotado", got.ResponseText)
	assert.Equal(t, "conversation", got.InteractionType)
}

func TestProcessAudio_DefaultFileName(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name, _ := readMultipartFile(t, r)
		assert.Equal(t, "audio.wav", name)
		_, _ = w.Write([]byte(`{"items_saved":0}`))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).ProcessAudio(context.Background(), models.UploadRequest{AudioBytes: []byte{1}})

	require.NoError(t, err)
}

func TestProcessAudio_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Processing error"}`))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).ProcessAudio(context.Background(), models.UploadRequest{AudioBytes: []byte{1}})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternalServerError)

	var reqErr *RequestError
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, http.StatusInternalServerError, reqErr.StatusCode)
	assert.Equal(t, `{"error":"Processing error"}`, reqErr.Body)
	assert.Equal(t, "process-audio", reqErr.Op)
}

func TestProcessAudio_NonOKSuccessStatusIsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"items_saved":1}`))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).ProcessAudio(context.Background(), models.UploadRequest{AudioBytes: []byte{1}})

	assert.ErrorIs(t, err, ErrUnexpectedStatus)
	assert.Equal(t, http.StatusCreated, StatusCodeOf(err))
}

func TestProcessAudio_BadRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"No audio file uploaded"}`))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).ProcessAudio(context.Background(), models.UploadRequest{AudioBytes: []byte{1}})

	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestProcessAudio_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).ProcessAudio(context.Background(), models.UploadRequest{AudioBytes: []byte{1}})

	assert.ErrorIs(t, err, ErrMalformedResponse)
	assert.Equal(t, http.StatusOK, StatusCodeOf(err))
}

func TestProcessAudio_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	a := newTestAdapterWithTimeouts(t, srv.URL, time.Second, 50*time.Millisecond)
	_, err := a.ProcessAudio(context.Background(), models.UploadRequest{AudioBytes: []byte{1}})

	assert.ErrorIs(t, err, ErrTimeout)
	assert.Zero(t, StatusCodeOf(err))
}

func TestProcessAudio_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := newTestAdapter(t, url).ProcessAudio(context.Background(), models.UploadRequest{AudioBytes: []byte{1}})

	assert.ErrorIs(t, err, ErrNetwork)
}

// ── SendAudioMessage ─────────────────────────────────────────────────────────

func TestSendAudioMessage_Created(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/audio/message", r.URL.Path)
		_, data := readMultipartFile(t, r)
		assert.Equal(t, []byte("ptt"), data)
		assert.Equal(t, "device", r.FormValue("from"))

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":4,"from_source":"device","file_url":"/uploads/audio/message-1.wav"}`))
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).SendAudioMessage(context.Background(), models.AudioMessageRequest{AudioBytes: []byte("ptt"), From: "device"})

	require.NoError(t, err)
	assert.Equal(t, "/uploads/audio/message-1.wav", got.FileURL)
	assert.Equal(t, int64(4), got.ID)
}

func TestSendAudioMessage_OKIsUnexpected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).SendAudioMessage(context.Background(), models.AudioMessageRequest{AudioBytes: []byte("ptt")})

	assert.ErrorIs(t, err, ErrUnexpectedStatus)
}

// ── Memory ───────────────────────────────────────────────────────────────────

func TestSaveMemory_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/agent/memory", r.URL.Path)

		var body models.SaveMemoryRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "mañana tengo doctor y compré pan", body.TextoOriginal)
		assert.Len(t, body.Items, 2)

		_, _ = w.Write([]byte(`{"success":true,"ids":[11,12],"count":2}`))
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).SaveMemory(context.Background(), models.SaveMemoryRequest{
		TextoOriginal: "mañana tengo doctor y compré pan",
		Items: []models.MemoryItem{
			{Tipo: models.MemoryEvento, Descripcion: "doctor"},
			{Tipo: models.MemoryRecuerdo, Descripcion: "compré pan"},
		},
	})

	require.NoError(t, err)
	assert.True(t, got.Success)
	assert.Equal(t, 2, got.Count)
	assert.Equal(t, []int64{11, 12}, got.IDs)
}

func TestLoadMemory_QueryParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		assert.Equal(t, "Evento", r.URL.Query().Get("tipo"))
		_, _ = w.Write([]byte(`[{"id":3,"tipo":"Evento","descripcion":"doctor","timestamp_guardado":"2025-11-22T10:00:00Z"}]`))
	}))
	defer srv.Close()

	items, err := newTestAdapter(t, srv.URL).LoadMemory(context.Background(), models.LoadMemoryRequest{Limit: 5, Tipo: models.MemoryEvento})

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "2025-11-22T10:00:00Z", items[0].TimestampGuardado)
}

func TestLoadMemory_DefaultLimitNoTipo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "30", r.URL.Query().Get("limit"))
		assert.False(t, r.URL.Query().Has("tipo"))
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	items, err := newTestAdapter(t, srv.URL).LoadMemory(context.Background(), models.LoadMemoryRequest{})

	require.NoError(t, err)
	assert.Empty(t, items)
}

// ── FetchArtifact ────────────────────────────────────────────────────────────

func TestFetchArtifact_RelativeReference(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/uploads/audio/response-1.mp3", r.URL.Path)
		_, _ = w.Write([]byte("ID3 mp3"))
	}))
	defer srv.Close()

	data, err := newTestAdapter(t, srv.URL).FetchArtifact(context.Background(), "/uploads/audio/response-1.mp3")

	require.NoError(t, err)
	assert.Equal(t, []byte("ID3 mp3"), data)
}

func TestFetchArtifact_AbsoluteReference(t *testing.T) {
	cdn := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("cdn bytes"))
	}))
	defer cdn.Close()

	a := newTestAdapter(t, "http://127.0.0.1:1")
	data, err := a.FetchArtifact(context.Background(), cdn.URL+"/r.mp3")

	require.NoError(t, err)
	assert.Equal(t, []byte("cdn bytes"), data)
}

func TestFetchArtifact_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).FetchArtifact(context.Background(), "/uploads/gone.mp3")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, http.StatusNotFound, StatusCodeOf(err))
}

func TestFetchArtifact_EmptyReference(t *testing.T) {
	_, err := newTestAdapter(t, "http://127.0.0.1:1").FetchArtifact(context.Background(), "")

	assert.ErrorIs(t, err, ErrInvalidReference)
}

func TestResolveArtifactURL(t *testing.T) {
	a := newTestAdapter(t, "http://10.0.0.2:8080")

	got, err := a.resolveArtifactURL("uploads/x.mp3")
	require.NoError(t, err)
	assert.Equal(t, "http://10.0.0.2:8080/uploads/x.mp3", got)

	got, err = a.resolveArtifactURL("https://files.example.com/y.mp3")
	require.NoError(t, err)
	assert.Equal(t, "https://files.example.com/y.mp3", got)
}

// ── Ping ─────────────────────────────────────────────────────────────────────

func TestPing(t *testing.T) {
	var unhealthy atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/activities", r.URL.Path)
		if unhealthy.Load() {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	require.NoError(t, a.Ping(context.Background()))

	unhealthy.Store(true)
	assert.ErrorIs(t, a.Ping(context.Background()), ErrServiceUnavailable)
}

// ── RequestError ─────────────────────────────────────────────────────────────

func TestRequestError_Error(t *testing.T) {
	err := &RequestError{Op: "save-memory", Target: "/api/agent/memory", StatusCode: 500, Body: "db down", Err: ErrInternalServerError}

	assert.Equal(t, "save-memory /api/agent/memory: status 500: internal server error: db down", err.Error())
	assert.Zero(t, StatusCodeOf(errors.New("plain")))
}
