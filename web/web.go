// Package web holds the episode page template and its static assets.
package web

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.html static
var Files embed.FS

// Static is the tree served at the site root (stylesheet, page script, posters).
func Static() fs.FS {
	sub, err := fs.Sub(Files, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
