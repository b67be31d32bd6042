// Package version records build metadata injected at link time via
// -ldflags "-X github.com/dwikygilang/framecheck/pkg/version.Version=...".
package version

// Version is the semantic version of the binary.
var Version = "dev"

// Commit is the Git commit hash the binary was built from.
var Commit = "none"

// Date is the build timestamp.
var Date = "unknown"
