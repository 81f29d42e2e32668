// Package web embeds the built single-page frontend.
package web

import (
	"embed"
	"io/fs"
)

//go:embed dist
var dist embed.FS

// Dist returns the bundle rooted at its top directory, so index.html is at "index.html".
func Dist() fs.FS {
	sub, err := fs.Sub(dist, "dist")
	if err != nil {
		// dist is embedded at build time; Sub only fails on an invalid path
		panic(err)
	}
	return sub
}
