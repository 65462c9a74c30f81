// Package version holds the build version, overridden at link time with
// -ldflags "-X github.com/battlesnakeio/arcade/version.Version=...".
package version

// Version of the arcade binary.
var Version = "dev"
