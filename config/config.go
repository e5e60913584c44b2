package config

// Version is set at build time with -ldflags
var Version string

func SetVersion(version string) {
	if len(version) == 0 {
		version = "dev"
	}
	Version = version
}
