// Package larder holds module-level metadata shared by the CLI and tests.
package larder

// Version is the current release version.
const Version = "0.1.0"
