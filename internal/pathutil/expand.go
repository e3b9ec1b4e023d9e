package pathutil

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandHome replaces a leading "~" with the invoking user's home
// directory. Only the bare "~" shorthand is supported — "~user" forms are
// returned unchanged, as are paths that do not start with a tilde.
func ExpandHome(path string) string {
	if path == "~" {
		return homeDir()
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(homeDir(), path[2:])
	}
	return path
}

// HasGlobMeta reports whether s contains any filepath.Match metacharacters.
func HasGlobMeta(s string) bool {
	return strings.ContainsAny(s, `*?[`)
}

func homeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return os.Getenv("HOME")
}
