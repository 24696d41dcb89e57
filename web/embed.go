// Package web ships the browser dashboard inside the binary so the
// viewer deploys as a single executable.
package web

import "embed"

//go:embed static
var Static embed.FS
