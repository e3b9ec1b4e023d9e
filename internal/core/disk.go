package core

import "golang.org/x/sys/unix"

// FreeSpace reports the number of bytes available to the invoking user on
// the volume containing path.
func FreeSpace(path string) (uint64, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return 0, err
	}
	return st.Bavail * uint64(st.Bsize), nil
}
