// Package build provides build information that is linked into the application. Other
// packages within this project can use this information in logs etc..
package build

var (
	// Version is the build version of the application. It is set at link time with
	// -ldflags "-X github.com/tdeslauriers/noncryptor/internal/build.Version=...".
	Version = "dev"

	// Commit is the git commit the application was built from.
	Commit = "none"

	// Date is the date the application was built.
	Date = "unknown"
)
