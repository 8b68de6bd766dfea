// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/platanus-hack/platanus-hack-25-team-35/internal/adapter"
	"github.com/platanus-hack/platanus-hack-25-team-35/internal/logger"
	"github.com/platanus-hack/platanus-hack-25-team-35/internal/mock"
	"github.com/platanus-hack/platanus-hack-25-team-35/models"
)

type fixedID string

func (f fixedID) Generate() string { return string(f) }

func pushEvent(t *testing.T, name string, payload any) models.PushEvent {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	return models.PushEvent{Name: name, Payload: raw, ReceivedAt: time.Date(2025, 11, 22, 10, 0, 0, 0, time.UTC)}
}

func newTestFetcher(t *testing.T, cfg ResponseFetcherConfig) (*ResponseFetcher, *mock.MockServerAdapter, *mock.MockPlaybackSink) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockSink := mock.NewMockPlaybackSink(ctrl)
	return NewResponseFetcher(mockAdapter, mockSink, fixedID("artifact-1"), cfg, logger.Nop()), mockAdapter, mockSink
}

// ── agent_response ───────────────────────────────────────────────────────────

func TestResponseFetcher_AgentResponse_FetchesAndDelivers(t *testing.T) {
	f, mockAdapter, mockSink := newTestFetcher(t, ResponseFetcherConfig{})
	ctx := context.Background()
	ev := pushEvent(t, models.EventAgentResponse, models.AgentResponse{
		Text:     "Tu cita es mañana",
		AudioURL: "/uploads/audio/response-7.mp3",
	})

	mockAdapter.EXPECT().FetchArtifact(ctx, "/uploads/audio/response-7.mp3").Return([]byte("mp3"), nil).Times(1)
	mockSink.EXPECT().
		Deliver(ctx, models.Artifact{
			ID:         "artifact-1",
			Name:       "response-7.mp3",
			Source:     models.ArtifactFromResponse,
			Text:       "Tu cita es mañana",
			RemoteURL:  "/uploads/audio/response-7.mp3",
			Size:       3,
			ReceivedAt: ev.ReceivedAt,
		}, []byte("mp3")).
		Return(nil).Times(1)

	require.NoError(t, f.HandleAgentResponse(ctx, ev))
}

func TestResponseFetcher_AgentResponse_EmptyURLNoFetch(t *testing.T) {
	f, _, _ := newTestFetcher(t, ResponseFetcherConfig{})

	ev := pushEvent(t, models.EventAgentResponse, models.AgentResponse{Text: "sin audio"})
	require.NoError(t, f.HandleAgentResponse(context.Background(), ev))
}

func TestResponseFetcher_AgentResponse_FetchFailureIsHandled(t *testing.T) {
	f, mockAdapter, _ := newTestFetcher(t, ResponseFetcherConfig{})

	mockAdapter.EXPECT().FetchArtifact(gomock.Any(), gomock.Any()).
		Return(nil, &adapter.RequestError{StatusCode: 404, Err: adapter.ErrNotFound})

	ev := pushEvent(t, models.EventAgentResponse, models.AgentResponse{AudioURL: "/uploads/audio/gone.mp3"})
	assert.NoError(t, f.HandleAgentResponse(context.Background(), ev))
}

func TestResponseFetcher_AgentResponse_SinkFailureIsHandled(t *testing.T) {
	f, mockAdapter, mockSink := newTestFetcher(t, ResponseFetcherConfig{})

	mockAdapter.EXPECT().FetchArtifact(gomock.Any(), gomock.Any()).Return([]byte("x"), nil)
	mockSink.EXPECT().Deliver(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	ev := pushEvent(t, models.EventAgentResponse, models.AgentResponse{AudioURL: "/a.mp3"})
	assert.NoError(t, f.HandleAgentResponse(context.Background(), ev))
}

func TestResponseFetcher_AgentResponse_MalformedPayload(t *testing.T) {
	f, _, _ := newTestFetcher(t, ResponseFetcherConfig{})

	ev := models.PushEvent{Name: models.EventAgentResponse, Payload: json.RawMessage(`"just a string"`)}
	assert.Error(t, f.HandleAgentResponse(context.Background(), ev))
}

// ── audio_message ────────────────────────────────────────────────────────────

func TestResponseFetcher_AudioMessage_PlaybackDisabled(t *testing.T) {
	f, _, _ := newTestFetcher(t, ResponseFetcherConfig{DeviceName: "kitchen"})

	ev := pushEvent(t, models.EventAudioMessage, models.AudioMessage{From: "web", FileURL: "/uploads/audio/m.wav"})
	require.NoError(t, f.HandleAudioMessage(context.Background(), ev))
}

func TestResponseFetcher_AudioMessage_SkipsOwnMessages(t *testing.T) {
	f, _, _ := newTestFetcher(t, ResponseFetcherConfig{DeviceName: "kitchen", PlayAudioMessages: true})

	ev := pushEvent(t, models.EventAudioMessage, models.AudioMessage{From: "kitchen", FileURL: "/uploads/audio/m.wav"})
	require.NoError(t, f.HandleAudioMessage(context.Background(), ev))
}

func TestResponseFetcher_AudioMessage_FetchesOthers(t *testing.T) {
	f, mockAdapter, mockSink := newTestFetcher(t, ResponseFetcherConfig{DeviceName: "kitchen", PlayAudioMessages: true})

	mockAdapter.EXPECT().FetchArtifact(gomock.Any(), "/uploads/audio/m.wav").Return([]byte("wav"), nil)
	mockSink.EXPECT().
		Deliver(gomock.Any(), gomock.Any(), []byte("wav")).
		DoAndReturn(func(_ context.Context, a models.Artifact, _ []byte) error {
			assert.Equal(t, models.ArtifactFromMessage, a.Source)
			assert.Equal(t, "web", a.Text)
			assert.Equal(t, "m.wav", a.Name)
			return nil
		})

	ev := pushEvent(t, models.EventAudioMessage, models.AudioMessage{From: "web", FileURL: "/uploads/audio/m.wav"})
	require.NoError(t, f.HandleAudioMessage(context.Background(), ev))
}

// ── helpers ──────────────────────────────────────────────────────────────────

func TestArtifactName(t *testing.T) {
	assert.Equal(t, "response-7.mp3", artifactName("/uploads/audio/response-7.mp3"))
	assert.Equal(t, "a.wav", artifactName("http://host:8080/x/a.wav?sig=1"))
	assert.Equal(t, "audio", artifactName(""))
	assert.Equal(t, "audio", artifactName("http://host/"))
}
