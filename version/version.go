package version

import (
	"strings"

	"github.com/carlmjohnson/versioninfo"
)

var (
	// Version of frogctl, overridden with ldflags in release builds
	Version = versioninfo.Version
	// GitCommit the binary was built from
	GitCommit = versioninfo.Revision
	// Environment is "release" for tagged builds
	Environment = "development"
)

// IsPre is true when the current frogctl version is a prerelease
func IsPre() bool {
	return strings.Contains(Version, "-")
}
