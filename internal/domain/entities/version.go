package entities

import (
	"strings"

	"golang.org/x/mod/semver"
)

// IsUpgradeAvailable reports whether latest is an upgrade over current.
// Versions that are not semantic versions fall back to plain inequality.
func IsUpgradeAvailable(current, latest string) bool {
	if latest == "" {
		return false
	}

	cur, lat := canonicalVersion(current), canonicalVersion(latest)
	if semver.IsValid(cur) && semver.IsValid(lat) {
		return semver.Compare(cur, lat) < 0
	}

	return strings.TrimSpace(current) != strings.TrimSpace(latest)
}

func canonicalVersion(version string) string {
	version = strings.TrimSpace(version)
	if version == "" || strings.HasPrefix(version, "v") {
		return version
	}
	return "v" + version
}
