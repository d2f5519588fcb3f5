// Package web holds the server-rendered views, embedded so the binary and
// the tests need no working-directory setup.
package web

import "embed"

//go:embed templates/*.html
var Templates embed.FS
