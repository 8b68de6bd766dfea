package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/platanus-hack/platanus-hack-25-team-35/internal/config"
	"github.com/platanus-hack/platanus-hack-25-team-35/internal/logger"
	"github.com/platanus-hack/platanus-hack-25-team-35/internal/utils"
	"github.com/platanus-hack/platanus-hack-25-team-35/models"
)

const (
	pathProcessAudio = "/api/agent/process-audio"
	pathMemory       = "/api/agent/memory"
	pathAudioMessage = "/api/audio/message"
	pathLiveness     = "/api/activities"

	defaultUploadFileName = "audio.wav"
)

type httpServerAdapter struct {
	client  *utils.HTTPClient
	baseURL *url.URL

	requestTimeout time.Duration
	uploadTimeout  time.Duration

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the resty implementation of
// [ServerAdapter]. It normalises and validates cfg.BaseURL.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a URL.
func NewHTTPServerAdapter(cfg config.DeviceAdapter, log *logger.Logger) (ServerAdapter, error) {
	raw, err := utils.NormalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}
	baseURL, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	client := utils.NewHTTPClient()
	client.SetBaseURL(raw)

	return &httpServerAdapter{
		client:         client,
		baseURL:        baseURL,
		requestTimeout: cfg.RequestTimeout,
		uploadTimeout:  cfg.UploadTimeout,
		logger:         log.WithComponent("adapter"),
	}, nil
}

func (h *httpServerAdapter) withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}

// ProcessAudio implements [ServerAdapter].
func (h *httpServerAdapter) ProcessAudio(ctx context.Context, req models.UploadRequest) (models.UploadResult, error) {
	const op = "process-audio"

	ctx, cancel := h.withTimeout(ctx, h.uploadTimeout)
	defer cancel()

	fileName := req.FileName
	if fileName == "" {
		fileName = defaultUploadFileName
	}

	h.logger.Debug().
		Str("op", op).
		Str("source", req.SourcePath).
		Int("size", len(req.AudioBytes)).
		Msg("uploading audio")

	started := time.Now()
	resp, err := h.client.R().
		SetContext(ctx).
		SetFileReader("file", fileName, bytes.NewReader(req.AudioBytes)).
		Post(pathProcessAudio)
	if err != nil {
		return models.UploadResult{}, mapTransportError(op, pathProcessAudio, err)
	}

	h.logger.Debug().
		Str("op", op).
		Int("status", resp.StatusCode()).
		Dur("elapsed", time.Since(started)).
		Msg("upload answered")

	if err = mapHTTPError(op, pathProcessAudio, resp, http.StatusOK); err != nil {
		return models.UploadResult{}, err
	}

	var result models.UploadResult
	if err = decodeBody(op, pathProcessAudio, resp, &result); err != nil {
		return models.UploadResult{}, err
	}

	return result, nil
}

// SendAudioMessage implements [ServerAdapter].
func (h *httpServerAdapter) SendAudioMessage(ctx context.Context, req models.AudioMessageRequest) (models.AudioMessageResult, error) {
	const op = "send-audio-message"

	ctx, cancel := h.withTimeout(ctx, h.uploadTimeout)
	defer cancel()

	fileName := req.FileName
	if fileName == "" {
		fileName = defaultUploadFileName
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetFileReader("file", fileName, bytes.NewReader(req.AudioBytes)).
		SetFormData(map[string]string{"from": req.From}).
		Post(pathAudioMessage)
	if err != nil {
		return models.AudioMessageResult{}, mapTransportError(op, pathAudioMessage, err)
	}
	if err = mapHTTPError(op, pathAudioMessage, resp, http.StatusCreated); err != nil {
		return models.AudioMessageResult{}, err
	}

	var result models.AudioMessageResult
	if err = decodeBody(op, pathAudioMessage, resp, &result); err != nil {
		return models.AudioMessageResult{}, err
	}

	return result, nil
}

// SaveMemory implements [ServerAdapter].
func (h *httpServerAdapter) SaveMemory(ctx context.Context, req models.SaveMemoryRequest) (models.SaveMemoryResponse, error) {
	const op = "save-memory"

	ctx, cancel := h.withTimeout(ctx, h.requestTimeout)
	defer cancel()

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(pathMemory)
	if err != nil {
		return models.SaveMemoryResponse{}, mapTransportError(op, pathMemory, err)
	}
	if err = mapHTTPError(op, pathMemory, resp, http.StatusOK); err != nil {
		return models.SaveMemoryResponse{}, err
	}

	var result models.SaveMemoryResponse
	if err = decodeBody(op, pathMemory, resp, &result); err != nil {
		return models.SaveMemoryResponse{}, err
	}

	return result, nil
}

// LoadMemory implements [ServerAdapter].
func (h *httpServerAdapter) LoadMemory(ctx context.Context, req models.LoadMemoryRequest) ([]models.MemoryItem, error) {
	const op = "load-memory"

	ctx, cancel := h.withTimeout(ctx, h.requestTimeout)
	defer cancel()

	limit := req.Limit
	if limit <= 0 {
		limit = models.DefaultMemoryLimit
	}

	r := h.client.R().
		SetContext(ctx).
		SetQueryParam("limit", strconv.Itoa(limit))
	if req.Tipo != "" {
		r.SetQueryParam("tipo", string(req.Tipo))
	}

	resp, err := r.Get(pathMemory)
	if err != nil {
		return nil, mapTransportError(op, pathMemory, err)
	}
	if err = mapHTTPError(op, pathMemory, resp, http.StatusOK); err != nil {
		return nil, err
	}

	var items []models.MemoryItem
	if err = decodeBody(op, pathMemory, resp, &items); err != nil {
		return nil, err
	}

	return items, nil
}

// FetchArtifact implements [ServerAdapter].
func (h *httpServerAdapter) FetchArtifact(ctx context.Context, ref string) ([]byte, error) {
	const op = "fetch-artifact"

	target, err := h.resolveArtifactURL(ref)
	if err != nil {
		return nil, &RequestError{Op: op, Target: ref, Err: fmt.Errorf("%w: %w", ErrInvalidReference, err)}
	}

	ctx, cancel := h.withTimeout(ctx, h.requestTimeout)
	defer cancel()

	resp, err := h.client.R().
		SetContext(ctx).
		Get(target)
	if err != nil {
		return nil, mapTransportError(op, target, err)
	}
	if err = mapHTTPError(op, target, resp, http.StatusOK); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

// Ping implements [ServerAdapter].
func (h *httpServerAdapter) Ping(ctx context.Context) error {
	const op = "ping"

	ctx, cancel := h.withTimeout(ctx, h.requestTimeout)
	defer cancel()

	resp, err := h.client.R().
		SetContext(ctx).
		Get(pathLiveness)
	if err != nil {
		return mapTransportError(op, pathLiveness, err)
	}

	return mapHTTPError(op, pathLiveness, resp, http.StatusOK)
}

// resolveArtifactURL turns a server-relative reference like
// "/uploads/audio/x.mp3" into an absolute URL; absolute references are kept.
func (h *httpServerAdapter) resolveArtifactURL(ref string) (string, error) {
	if ref == "" {
		return "", fmt.Errorf("empty reference")
	}

	u, err := url.Parse(ref)
	if err != nil {
		return "", err
	}

	return h.baseURL.ResolveReference(u).String(), nil
}

func decodeBody(op, target string, resp *resty.Response, v any) error {
	if err := json.Unmarshal(resp.Body(), v); err != nil {
		return &RequestError{
			Op:         op,
			Target:     target,
			StatusCode: resp.StatusCode(),
			Body:       truncate(string(resp.Body())),
			Err:        fmt.Errorf("%w: %w", ErrMalformedResponse, err),
		}
	}
	return nil
}

func truncate(s string) string {
	if len(s) > maxErrorBody {
		return s[:maxErrorBody]
	}
	return s
}
