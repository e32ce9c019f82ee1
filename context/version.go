package context

import "github.com/blang/semver/v4"

// version is this module's release version, parsed once at init time and
// surfaced through VersionInfo (spec §6 "Version reporting"). It is bumped
// by hand at release time, the same way the teacher repository's own
// releases are tagged.
const version = "0.1.0"

var parsedVersion = semver.MustParse(version)

// VersionInfo returns the module's semantic version.
func VersionInfo() semver.Version {
	return parsedVersion
}
