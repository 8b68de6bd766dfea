package config

import (
	"fmt"
	"time"
)

// DeviceAdapter holds the settings of the HTTP server adapter.
type DeviceAdapter struct {
	// BaseURL is the normalised server endpoint.
	BaseURL string
	// RequestTimeout bounds memory, message, liveness and artifact requests.
	RequestTimeout time.Duration
	// UploadTimeout bounds a single process-audio upload.
	UploadTimeout time.Duration
}

// DeviceTransport holds the settings of the push channel session.
type DeviceTransport struct {
	// BaseURL is the normalised server endpoint the push channel URL is
	// derived from.
	BaseURL string
	// ConnectTimeout bounds dialing plus the handshake.
	ConnectTimeout time.Duration
}

// DeviceReconnect holds the reconnection controller settings.
type DeviceReconnect struct {
	// Delay is the fixed wait between attempts.
	Delay time.Duration
}

// DeviceStorage holds the local storage settings.
type DeviceStorage struct {
	DSN         string
	ArtifactDir string
}

// DeviceApp holds identity and one-shot actions.
type DeviceApp struct {
	Name              string
	PlayAudioMessages bool
	UploadPath        string
	MessagePath       string
}

// DeviceConfig is the validated device configuration assembled from
// [StructuredConfig].
type DeviceConfig struct {
	Adapter   DeviceAdapter
	Transport DeviceTransport
	Reconnect DeviceReconnect
	Storage   DeviceStorage
	App       DeviceApp
	LogFile   string
}

// GetDeviceConfig builds and validates the device config view from the
// merged structured configuration.
func GetDeviceConfig(args []string) (*DeviceConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return NewDeviceConfig(cfg)
}

// NewDeviceConfig maps cfg to a [DeviceConfig] and validates it.
func NewDeviceConfig(cfg *StructuredConfig) (*DeviceConfig, error) {
	deviceCfg := &DeviceConfig{
		Adapter: DeviceAdapter{
			BaseURL:        cfg.Server.URL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			UploadTimeout:  cfg.Adapter.UploadTimeout,
		},
		Transport: DeviceTransport{
			BaseURL:        cfg.Server.URL,
			ConnectTimeout: cfg.Transport.ConnectTimeout,
		},
		Reconnect: DeviceReconnect{Delay: cfg.Reconnect.Delay},
		Storage: DeviceStorage{
			DSN:         cfg.Storage.DB.DSN,
			ArtifactDir: cfg.Storage.Files.ArtifactDir,
		},
		App: DeviceApp{
			Name:              cfg.Device.Name,
			PlayAudioMessages: cfg.Device.PlayAudioMessages,
			UploadPath:        cfg.Device.UploadPath,
			MessagePath:       cfg.Device.MessagePath,
		},
		LogFile: cfg.Log.File,
	}

	if err := deviceCfg.validate(); err != nil {
		return nil, err
	}

	return deviceCfg, nil
}
