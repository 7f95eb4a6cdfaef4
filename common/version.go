package common

import "runtime/debug"

const unknownVersion = "unknown"

// Version returns the module version, or the VCS revision for development builds.
func Version() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return unknownVersion
	}

	if bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		return bi.Main.Version
	}

	var revision string
	var modified bool
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
			if len(revision) > 12 {
				revision = revision[:12]
			}
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}

	if revision == "" {
		return unknownVersion
	}
	if modified {
		revision += "-dirty"
	}
	return revision
}
