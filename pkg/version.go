// Package padron provides version information for the padron application.
package padron

// Version and Build are set during compilation with ldflags.
var (
	Version = "v0.1.0"
	Build   = "n/a"
)
