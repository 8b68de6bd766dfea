package config

import (
	"fmt"

	"github.com/platanus-hack/platanus-hack-25-team-35/internal/utils"
)

// validate checks the view and normalises the server URL in place.
func (cfg *DeviceConfig) validate() error {
	baseURL, err := utils.NormalizeBaseURL(cfg.Adapter.BaseURL)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidServerConfigs, err)
	}
	cfg.Adapter.BaseURL = baseURL
	cfg.Transport.BaseURL = baseURL

	if cfg.Adapter.RequestTimeout <= 0 || cfg.Adapter.UploadTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Transport.ConnectTimeout <= 0 {
		return ErrInvalidTransportConfigs
	}

	if cfg.Reconnect.Delay <= 0 {
		return ErrInvalidReconnectConfigs
	}

	if cfg.Storage.DSN == "" || cfg.Storage.ArtifactDir == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.Name == "" {
		return ErrInvalidDeviceConfigs
	}

	return nil
}
