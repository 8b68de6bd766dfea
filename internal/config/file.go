package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors [StructuredConfig] for JSON and YAML files. Durations
// accept either Go duration strings ("5s") or integer nanoseconds.
type fileConfig struct {
	Server struct {
		URL string `json:"url" yaml:"url"`
	} `json:"server" yaml:"server"`

	Adapter struct {
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
		UploadTimeout  Duration `json:"upload_timeout" yaml:"upload_timeout"`
	} `json:"adapter" yaml:"adapter"`

	Transport struct {
		ConnectTimeout Duration `json:"connect_timeout" yaml:"connect_timeout"`
	} `json:"transport" yaml:"transport"`

	Reconnect struct {
		Delay Duration `json:"delay" yaml:"delay"`
	} `json:"reconnect" yaml:"reconnect"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" yaml:"dsn"`
		} `json:"db" yaml:"db"`
		Files struct {
			ArtifactDir string `json:"artifact_dir" yaml:"artifact_dir"`
		} `json:"files" yaml:"files"`
	} `json:"storage" yaml:"storage"`

	Device struct {
		Name              string `json:"name" yaml:"name"`
		PlayAudioMessages bool   `json:"play_audio_messages" yaml:"play_audio_messages"`
		UploadPath        string `json:"upload_path" yaml:"upload_path"`
		MessagePath       string `json:"message_path" yaml:"message_path"`
	} `json:"device" yaml:"device"`

	Log struct {
		File string `json:"file" yaml:"file"`
	} `json:"log" yaml:"log"`
}

// parseFile decodes the config file at path, choosing the decoder by
// extension.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err = json.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedConfigFile, path)
	}

	return fc.toStructured(), nil
}

func (fc *fileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		Server: Server{URL: fc.Server.URL},
		Adapter: Adapter{
			RequestTimeout: time.Duration(fc.Adapter.RequestTimeout),
			UploadTimeout:  time.Duration(fc.Adapter.UploadTimeout),
		},
		Transport: Transport{ConnectTimeout: time.Duration(fc.Transport.ConnectTimeout)},
		Reconnect: Reconnect{Delay: time.Duration(fc.Reconnect.Delay)},
		Storage: Storage{
			DB:    DB{DSN: fc.Storage.DB.DSN},
			Files: Files{ArtifactDir: fc.Storage.Files.ArtifactDir},
		},
		Device: Device{
			Name:              fc.Device.Name,
			PlayAudioMessages: fc.Device.PlayAudioMessages,
			UploadPath:        fc.Device.UploadPath,
			MessagePath:       fc.Device.MessagePath,
		},
		Log: Log{File: fc.Log.File},
	}
}

// Duration is a time.Duration that decodes from a duration string or from an
// integer number of nanoseconds.
type Duration time.Duration

func parseDurationValue(v any) (Duration, error) {
	switch value := v.(type) {
	case nil:
		return 0, nil
	case float64:
		return Duration(time.Duration(value)), nil
	case int:
		return Duration(time.Duration(value)), nil
	case string:
		d, err := time.ParseDuration(value)
		if err != nil {
			return 0, err
		}
		return Duration(d), nil
	default:
		return 0, fmt.Errorf("invalid duration %v", v)
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	parsed, err := parseDurationValue(v)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var v any
	if err := node.Decode(&v); err != nil {
		return err
	}

	parsed, err := parseDurationValue(v)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalJSON implements json.Marshaler.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
