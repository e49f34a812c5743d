// Package build holds build-time information.
package build

// Version is the scrutineer release version.
// It defaults to "dev" and can be overwritten by linker flags:
//
//	go build -ldflags "-X github.com/Smattr/scrutineer/internal/build.Version=1.0.0"
var Version = "dev"
