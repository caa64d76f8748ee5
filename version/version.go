package version

// Set at build time via -ldflags.
var (
	Version   = "dev"
	Commit    = "none"
	BuildTime = "unknown"
)

func GetVersion() string {
	return Version
}

func GetFullVersion() string {
	return Version + " (" + Commit + ") built at " + BuildTime
}
