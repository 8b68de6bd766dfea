// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"time"

	"github.com/platanus-hack/platanus-hack-25-team-35/internal/adapter"
	"github.com/platanus-hack/platanus-hack-25-team-35/internal/logger"
	"github.com/platanus-hack/platanus-hack-25-team-35/internal/utils"
	"github.com/platanus-hack/platanus-hack-25-team-35/models"
)

// IDGenerator names fetched artifacts.
type IDGenerator interface {
	Generate() string
}

// ResponseFetcherConfig controls which walkie-talkie messages get played.
type ResponseFetcherConfig struct {
	// DeviceName is compared with the sender of audio_message so the device
	// does not play back its own broadcasts.
	DeviceName string
	// PlayAudioMessages enables fetching of walkie-talkie traffic.
	PlayAudioMessages bool
}

// ResponseFetcher downloads the audio referenced by push events and hands
// it to a PlaybackSink. Download failures are logged and the event is
// considered handled.
type ResponseFetcher struct {
	serverAdapter adapter.ServerAdapter
	sink          PlaybackSink
	ids           IDGenerator
	cfg           ResponseFetcherConfig
	logger        *logger.Logger
}

func NewResponseFetcher(serverAdapter adapter.ServerAdapter, sink PlaybackSink, ids IDGenerator, cfg ResponseFetcherConfig, log *logger.Logger) *ResponseFetcher {
	return &ResponseFetcher{
		serverAdapter: serverAdapter,
		sink:          sink,
		ids:           ids,
		cfg:           cfg,
		logger:        log.WithComponent("fetcher"),
	}
}

// HandleAgentResponse is the agent_response handler.
func (f *ResponseFetcher) HandleAgentResponse(ctx context.Context, ev models.PushEvent) error {
	var resp models.AgentResponse
	if err := ev.Decode(&resp); err != nil {
		return fmt.Errorf("decode %s: %w", ev.Name, err)
	}

	log := f.eventLogger(ctx, ev)
	log.Info().Str("text", resp.Text).Str("type", resp.Type).Msg("agent response received")

	if resp.AudioURL == "" {
		log.Debug().Msg("agent response without audio")
		return nil
	}

	f.fetch(ctx, log, models.Artifact{
		Source:     models.ArtifactFromResponse,
		Text:       resp.Text,
		RemoteURL:  resp.AudioURL,
		ReceivedAt: ev.ReceivedAt,
	})
	return nil
}

// HandleAudioMessage is the audio_message handler. Messages are only
// fetched when playback of walkie-talkie traffic is enabled and the sender
// is some other device.
func (f *ResponseFetcher) HandleAudioMessage(ctx context.Context, ev models.PushEvent) error {
	var msg models.AudioMessage
	if err := ev.Decode(&msg); err != nil {
		return fmt.Errorf("decode %s: %w", ev.Name, err)
	}

	log := f.eventLogger(ctx, ev)
	log.Info().Str("from", msg.From).Str("file_url", msg.FileURL).Msg("walkie-talkie message received")

	switch {
	case !f.cfg.PlayAudioMessages:
		return nil
	case msg.From == f.cfg.DeviceName:
		log.Debug().Msg("skipping own walkie-talkie message")
		return nil
	case msg.FileURL == "":
		log.Warn().Err(ErrNothingToPlay).Msg("walkie-talkie message without file")
		return nil
	}

	f.fetch(ctx, log, models.Artifact{
		Source:     models.ArtifactFromMessage,
		Text:       msg.From,
		RemoteURL:  msg.FileURL,
		ReceivedAt: ev.ReceivedAt,
	})
	return nil
}

func (f *ResponseFetcher) fetch(ctx context.Context, log *logger.Logger, artifact models.Artifact) {
	started := time.Now()
	data, err := f.serverAdapter.FetchArtifact(ctx, artifact.RemoteURL)
	if err != nil {
		log.Error().
			Str("op", "fetch_artifact").
			Str("target", artifact.RemoteURL).
			Int("status", adapter.StatusCodeOf(err)).
			Err(err).
			Msg("artifact download failed")
		return
	}

	artifact.ID = f.ids.Generate()
	artifact.Name = artifactName(artifact.RemoteURL)
	artifact.Size = int64(len(data))
	if artifact.ReceivedAt.IsZero() {
		artifact.ReceivedAt = time.Now()
	}

	if err = f.sink.Deliver(ctx, artifact, data); err != nil {
		log.Error().
			Str("op", "deliver_artifact").
			Str("target", artifact.RemoteURL).
			Str("artifact_id", artifact.ID).
			Err(err).
			Msg("playback sink rejected artifact")
		return
	}

	log.Info().
		Str("op", "fetch_artifact").
		Str("target", artifact.RemoteURL).
		Str("artifact_id", artifact.ID).
		Int64("bytes", artifact.Size).
		Dur("took", time.Since(started)).
		Msg("artifact delivered")
}

func (f *ResponseFetcher) eventLogger(ctx context.Context, ev models.PushEvent) *logger.Logger {
	l := f.logger.With().Str("event", ev.Name)
	if seq, ok := utils.GetEventSeqFromContext(ctx); ok {
		l = l.Uint64("seq", seq)
	}
	return &logger.Logger{Logger: l.Logger()}
}

// artifactName is the last path segment of ref, or "audio" when ref has
// none.
func artifactName(ref string) string {
	p := ref
	if u, err := url.Parse(ref); err == nil {
		p = u.Path
	}
	name := path.Base(p)
	if name == "." || name == "/" || name == "" {
		return "audio"
	}
	return name
}
