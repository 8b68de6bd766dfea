package config

import "errors"

var (
	ErrInvalidServerConfigs    = errors.New("invalid server configuration")
	ErrInvalidAdapterConfigs   = errors.New("invalid adapter configuration")
	ErrInvalidTransportConfigs = errors.New("invalid transport configuration")
	ErrInvalidReconnectConfigs = errors.New("invalid reconnect configuration")
	ErrInvalidStorageConfigs   = errors.New("invalid storage configuration")
	ErrInvalidDeviceConfigs    = errors.New("invalid device configuration")
	ErrUnsupportedConfigFile   = errors.New("unsupported config file extension")
)
