package version

import (
	"github.com/Masterminds/semver/v3"
)

var (
	parsedVersion  *semver.Version
	parseAttempted bool
)

// resetParsedVersion clears the cached parsed version for testing.
func resetParsedVersion() {
	parsedVersion = nil
	parseAttempted = false
}

// Parsed returns the parsed semantic version, or nil if unparseable.
// This is computed lazily on first call and cached.
func Parsed() *semver.Version {
	if parsedVersion != nil || parseAttempted {
		return parsedVersion
	}
	parseAttempted = true

	v, err := semver.NewVersion(Version)
	if err != nil {
		return nil
	}
	parsedVersion = v
	return parsedVersion
}

// IsPrerelease returns true if the current version is a pre-release.
func IsPrerelease() bool {
	v := Parsed()
	if v == nil {
		return false
	}
	return v.Prerelease() != ""
}

// IsDevBuild returns true if this is a development build (no valid semver).
func IsDevBuild() bool {
	return Parsed() == nil
}

// UserAgent returns the HTTP user agent, "skillsm/<version>". Tagged builds
// report the normalized semver without the leading "v".
func UserAgent() string {
	v := Parsed()
	if v == nil {
		return "skillsm/dev"
	}
	return "skillsm/" + v.String()
}
