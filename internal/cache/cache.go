// Package cache prunes stale entries from the on-disk cache directory.
package cache

import (
	"os"
	"path/filepath"
	"time"

	"github.com/anisan-cli/aniserve/filesystem"
	"github.com/anisan-cli/aniserve/where"
	"github.com/spf13/afero"
)

// TTL is the age past which a cache file is considered abandoned. Individual
// entries carry their own lifetimes; this sweep only reclaims files no code
// path has touched for a long time.
const TTL = 30 * 24 * time.Hour

// CollectGarbage prunes expired cache files from the filesystem.
func CollectGarbage() {
	dir := where.Cache()
	_ = afero.Walk(filesystem.API(), dir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}

		if filepath.Ext(path) == ".json" && time.Since(info.ModTime()) > TTL {
			_ = filesystem.API().Remove(path)
		}

		return nil
	})
}
