// Package misc keeps program identity: name, version and build hash.
package misc

import (
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
)

// set with -ldflags "-X kata/misc.version=... -X kata/misc.gitHash=..."
var (
	appName = ""
	version = ""
	gitHash = ""
)

// GetAppName returns program name (executable name without extension when
// not set at build time).
func GetAppName() string {
	if len(appName) > 0 {
		return appName
	}
	name := filepath.Base(os.Args[0])
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// GetVersion returns program version, falls back to module version from build
// info.
func GetVersion() string {
	if len(version) > 0 {
		return version
	}
	if bi, ok := debug.ReadBuildInfo(); ok && len(bi.Main.Version) > 0 {
		return bi.Main.Version
	}
	return "(devel)"
}

// GetGitHash returns VCS revision program was built from.
func GetGitHash() string {
	if len(gitHash) > 0 {
		return gitHash
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}
