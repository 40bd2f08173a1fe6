// Package meta holds build metadata for bidsort.
package meta

// Version is the bidsort release, set at link time with
// -ldflags "-X github.com/nicholas-fedor/bidsort/internal/meta.Version=v1.2.3".
var Version = "v0.0.0-unknown"
