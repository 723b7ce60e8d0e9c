package config

import "fmt"

// Build arguments, set via ldflags by the build pipeline.
var (
	ModuleName = "avalanche-faucet"
	Commit     = "< 40 chars git commit hash via ldflags not set >"
	BuildDate  = "1970-01-01T00:00:00+00:00"
)

// GetFormattedBuildArgs returns "<ModuleName> @ <Commit> (<BuildDate>)".
func GetFormattedBuildArgs() string {
	return fmt.Sprintf("%v @ %v (%v)", ModuleName, Commit, BuildDate)
}
