package utils

import (
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/jwalton/gchalk"
)

// PrettyVersion returns a colored Minecraft version for terminal printing.
// Pre-releases are dimmed, snapshots ("19w02a") are gray.
func PrettyVersion(version string) string {
	if _, err := semver.NewVersion(version); err != nil {
		return gchalk.Gray(version)
	}

	versionParts := strings.SplitN(version, "-", 2)
	prettyVersion := gchalk.Bold(versionParts[0])
	if len(versionParts) == 2 {
		prettyVersion += gchalk.Dim("-" + versionParts[1])
	}
	return prettyVersion
}
