package core

import (
	"io/fs"
	"path/filepath"
)

// DirSize walks the tree rooted at path and sums file sizes. Sizing is
// advisory — unreadable entries contribute nothing rather than erroring.
func DirSize(path string) int64 {
	var total int64
	_ = filepath.WalkDir(path, func(_ string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		if info, ierr := d.Info(); ierr == nil {
			total += info.Size()
		}
		return nil
	})
	return total
}
