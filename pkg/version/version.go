package version

// Version represents the current version of loggedprint
const Version = "1.0.0"

// BuildVersion returns the version string for display
func BuildVersion() string {
	return "loggedprint version " + Version
}
