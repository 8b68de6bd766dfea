package config

import (
	"flag"
	"fmt"
	"io"
)

// parseFlags parses args into a partial [StructuredConfig]. Unset flags leave
// their fields zero so lower-priority sources can fill them.
func parseFlags(args []string) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}

	fs := flag.NewFlagSet("device", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.Server.URL, "s", "", "Server base URL, e.g. http://localhost:8080")
	fs.StringVar(&cfg.Server.URL, "server", "", "Server base URL (alias)")
	fs.StringVar(&cfg.ConfigFilePath, "c", "", "JSON or YAML config file path")
	fs.StringVar(&cfg.ConfigFilePath, "config", "", "JSON or YAML config file path (alias)")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "request-timeout", 0, "Timeout of memory/message/artifact requests")
	fs.DurationVar(&cfg.Adapter.UploadTimeout, "upload-timeout", 0, "Timeout of an audio upload")
	fs.DurationVar(&cfg.Transport.ConnectTimeout, "connect-timeout", 0, "Timeout of dial plus handshake")
	fs.DurationVar(&cfg.Reconnect.Delay, "reconnect-delay", 0, "Fixed delay between connection attempts")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "SQLite DSN of the artifact journal")
	fs.StringVar(&cfg.Storage.Files.ArtifactDir, "artifacts", "", "Directory for delivered audio")
	fs.StringVar(&cfg.Device.Name, "name", "", "Device name used as walkie-talkie sender")
	fs.BoolVar(&cfg.Device.PlayAudioMessages, "play-messages", false, "Fetch walkie-talkie messages from others")
	fs.StringVar(&cfg.Device.UploadPath, "upload", "", "Audio file to upload once connected")
	fs.StringVar(&cfg.Device.MessagePath, "message", "", "Audio file to send as a walkie-talkie message once connected")
	fs.StringVar(&cfg.Log.File, "log-file", "", "Append logs to this file instead of stdout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return cfg, nil
}
