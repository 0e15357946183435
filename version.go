package vector

// Version is the current version of the go-vector library
const Version = "1.0.0"

// VersionInfo contains detailed version information
type VersionInfo struct {
	// Version is the semantic version
	Version string
	// EnvDir is the environment directory format supported
	EnvDir string
}

// GetVersion returns the current version information
func GetVersion() VersionInfo {
	return VersionInfo{
		Version: Version,
		EnvDir:  "daemontools/runit",
	}
}
