// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// buildInfoUnset is reported for metadata not injected at link time.
const buildInfoUnset = "N/A"

// AppBuildInfo carries immutable build-time metadata embedded into the
// device binary by linker flags and logged at startup.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo constructs [AppBuildInfo]; empty values are reported as
// "N/A".
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: orUnset(buildVersion),
		buildDate:    orUnset(buildDate),
		buildCommit:  orUnset(buildCommit),
	}
}

func orUnset(v string) string {
	if v == "" {
		return buildInfoUnset
	}
	return v
}

// BuildVersion returns the semantic version string of the build.
func (a AppBuildInfo) BuildVersion() string {
	return a.buildVersion
}

// BuildDate returns the build timestamp string.
func (a AppBuildInfo) BuildDate() string {
	return a.buildDate
}

// BuildCommit returns the source-control commit hash used for the build.
func (a AppBuildInfo) BuildCommit() string {
	return a.buildCommit
}
