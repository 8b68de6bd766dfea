// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the device
// daemon. It is populated by merging values from command-line flags,
// environment variables, an optional JSON or YAML file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Server holds the central server endpoint.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds timeouts of the synchronous HTTP calls.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Transport holds push channel settings.
	Transport Transport `envPrefix:"TRANSPORT_"`

	// Reconnect holds the reconnection cadence.
	Reconnect Reconnect `envPrefix:"RECONNECT_"`

	// Storage holds the local artifact journal and file store settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Device holds identity and one-shot actions of this device.
	Device Device `envPrefix:"DEVICE_"`

	// Log holds logging output settings.
	Log Log `envPrefix:"LOG_"`

	// ConfigFilePath is the optional path to a JSON (.json) or YAML
	// (.yaml, .yml) configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	ConfigFilePath string `env:"CONFIG"`
}

// Server describes where the central server lives.
type Server struct {
	// URL is the base endpoint, e.g. http://localhost:8080. Both the HTTP
	// API and the push channel are derived from it.
	URL string `env:"URL"`
}

// Adapter holds per-operation timeouts.
type Adapter struct {
	// RequestTimeout bounds memory, message and artifact requests.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// UploadTimeout bounds a single process-audio upload.
	UploadTimeout time.Duration `env:"UPLOAD_TIMEOUT"`
}

// Transport holds push channel settings.
type Transport struct {
	// ConnectTimeout bounds dialing plus the session handshake.
	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT"`
}

// Reconnect holds the reconnection cadence.
type Reconnect struct {
	// Delay is the fixed wait between connection attempts.
	Delay time.Duration `env:"DELAY"`
}

// Storage groups the configuration for the local storage backends.
type Storage struct {
	DB    DB    `envPrefix:"DB_"`
	Files Files `envPrefix:"FILES_"`
}

// DB holds the SQLite connection string of the artifact journal.
type DB struct {
	DSN string `env:"DSN"`
}

// Files holds the directory delivered audio artifacts are written to.
type Files struct {
	ArtifactDir string `env:"ARTIFACT_DIR"`
}

// Device identifies this device and its optional one-shot actions.
type Device struct {
	// Name is sent as the "from" field of walkie-talkie messages and used to
	// ignore the echo of our own messages.
	Name string `env:"NAME"`

	// PlayAudioMessages enables fetching walkie-talkie audio sent by others.
	PlayAudioMessages bool `env:"PLAY_AUDIO_MESSAGES"`

	// UploadPath, when set, is uploaded once after the first connection.
	UploadPath string `env:"UPLOAD_PATH"`

	// MessagePath, when set, is sent as a walkie-talkie message once after
	// the first connection.
	MessagePath string `env:"MESSAGE_PATH"`
}

// Log holds logging output settings.
type Log struct {
	// File is an optional path; empty means stdout.
	File string `env:"FILE"`
}

// Default values applied when no other source sets a field.
const (
	DefaultServerURL      = "http://localhost:8080"
	DefaultRequestTimeout = 10 * time.Second
	DefaultUploadTimeout  = 30 * time.Second
	DefaultConnectTimeout = 10 * time.Second
	DefaultReconnectDelay = 5 * time.Second
	DefaultDSN            = "device.db"
	DefaultArtifactDir    = "artifacts"
	DefaultDeviceName     = "device"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Server:    Server{URL: DefaultServerURL},
		Adapter:   Adapter{RequestTimeout: DefaultRequestTimeout, UploadTimeout: DefaultUploadTimeout},
		Transport: Transport{ConnectTimeout: DefaultConnectTimeout},
		Reconnect: Reconnect{Delay: DefaultReconnectDelay},
		Storage: Storage{
			DB:    DB{DSN: DefaultDSN},
			Files: Files{ArtifactDir: DefaultArtifactDir},
		},
		Device: Device{Name: DefaultDeviceName},
	}
}

// GetStructuredConfig assembles the merged configuration from args
// (typically os.Args[1:]), the environment, the optional config file and
// defaults, in that priority order.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(args).
		withEnv().
		withFile().
		withDefaults().
		build()
}
