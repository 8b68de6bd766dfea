// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the synchronous HTTP side of the device's
// conversation with the central server.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from resty and the wire format. Every failed call is reported as a
// [*RequestError] carrying the operation, the target, the HTTP status and the
// response body; its Unwrap chain yields one of the sentinels in errors.go so
// callers can use [errors.Is] (e.g. [ErrTimeout], [ErrInternalServerError]).
package adapter

import (
	"context"

	"github.com/platanus-hack/platanus-hack-25-team-35/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines the request/response contracts of the server API.
// No call is retried.
type ServerAdapter interface {
	// ProcessAudio uploads one recording to POST /api/agent/process-audio as
	// multipart field "file" and returns the parsed acknowledgment. Only
	// HTTP 200 is a success.
	ProcessAudio(ctx context.Context, req models.UploadRequest) (models.UploadResult, error)

	// SendAudioMessage posts a walkie-talkie message to POST
	// /api/audio/message with multipart fields "file" and "from". Only HTTP
	// 201 is a success.
	SendAudioMessage(ctx context.Context, req models.AudioMessageRequest) (models.AudioMessageResult, error)

	// SaveMemory stores structured memory items via POST /api/agent/memory.
	SaveMemory(ctx context.Context, req models.SaveMemoryRequest) (models.SaveMemoryResponse, error)

	// LoadMemory lists stored memory items, newest first, via
	// GET /api/agent/memory.
	LoadMemory(ctx context.Context, req models.LoadMemoryRequest) ([]models.MemoryItem, error)

	// FetchArtifact downloads the resource at ref, resolved against the
	// server endpoint, and returns its bytes. Only HTTP 200 is a success.
	FetchArtifact(ctx context.Context, ref string) ([]byte, error)

	// Ping calls GET /api/activities and returns nil when the server
	// answers 200.
	Ping(ctx context.Context) error
}
