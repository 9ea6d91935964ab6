// Package assets embeds the default maps and textures.
package assets

import (
	"embed"
	"io/fs"
	"os"
)

//go:embed maps textures
var embedded embed.FS

// FS returns dir from disk when set, otherwise the embedded assets.
func FS(dir string) fs.FS {
	if dir != "" {
		return os.DirFS(dir)
	}
	return embedded
}
