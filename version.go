package pxshot

import (
	"github.com/blang/semver"
)

// Version is the SDK release, reported in the default User-Agent
const Version = "1.0.0"

const (
	// DefaultBaseURL is the production API endpoint
	DefaultBaseURL = "https://api.pxshot.com"

	sdkName = "pxshot-go"
)

// SemVer returns Version as a parsed semantic version so callers can
// compare SDK releases.
func SemVer() semver.Version {
	return semver.MustParse(Version)
}

// DefaultUserAgent returns the User-Agent sent when none is configured
func DefaultUserAgent() string {
	return sdkName + "/" + SemVer().String()
}
