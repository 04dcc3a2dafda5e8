// Package public embeds the stylesheet served under /public/static.
package public

import (
	"embed"
	"io/fs"
)

//go:embed static/*
var static embed.FS

// StaticFS returns the embedded static tree rooted at static/.
func StaticFS() (fs.FS, error) {
	return fs.Sub(static, "static")
}
