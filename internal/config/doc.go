// Package config provides configuration loading, merging, and validation
// facilities for the device daemon.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win over later ones for non-zero fields):
//  1. Command-line flags
//  2. Environment variables
//  3. JSON or YAML config file
//  4. Built-in defaults
//
// The main entry points are [GetStructuredConfig] for the raw merged
// configuration and [GetDeviceConfig] for the validated per-component view.
package config
