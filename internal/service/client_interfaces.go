package service

import (
	"context"

	"github.com/platanus-hack/platanus-hack-25-team-35/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_services_mock.go -package=mock

// ClientUploadService sends recorded utterances for processing. The
// synthesized answer is not part of the result; it arrives later on the push
// channel as agent_response.
type ClientUploadService interface {
	// Upload posts req.AudioBytes. Empty bytes yield ErrAudioNotFound without
	// touching the network.
	Upload(ctx context.Context, req models.UploadRequest) (models.UploadResult, error)

	// UploadFile reads the recording at path and uploads it. A missing path,
	// a directory or an empty file yields ErrAudioNotFound.
	UploadFile(ctx context.Context, path string) (models.UploadResult, error)
}

// ClientMessageService broadcasts walkie-talkie messages on behalf of the
// device.
type ClientMessageService interface {
	// SendFile posts the recording at path with the device name as sender.
	SendFile(ctx context.Context, path string) (models.AudioMessageResult, error)
}

// ClientMemoryService stores and lists structured memory items.
type ClientMemoryService interface {
	// Save validates items and stores them, tagged with the utterance they
	// were extracted from.
	Save(ctx context.Context, textoOriginal string, items []models.MemoryItem) (models.SaveMemoryResponse, error)

	// Load lists stored items newest first. limit <= 0 asks for the server
	// default page; an empty tipo means all types.
	Load(ctx context.Context, limit int, tipo models.MemoryType) ([]models.MemoryItem, error)
}

// PlaybackSink receives every fetched audio artifact. Playback itself is
// outside the device core.
type PlaybackSink interface {
	Deliver(ctx context.Context, artifact models.Artifact, data []byte) error
}
