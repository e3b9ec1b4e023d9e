package remove

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lakshaymaurya-felt/officemole/internal/config"
)

func bundlePattern(path string) config.PathPattern {
	return config.PathPattern{Pattern: path, Scope: config.ScopeBundle, Description: filepath.Base(path)}
}

func TestDiscoverKeepsOnlyExistingDirectories(t *testing.T) {
	root := t.TempDir()
	word := filepath.Join(root, "Microsoft Word.app")
	excel := filepath.Join(root, "Microsoft Excel.app")
	mkdirs(t, word, excel)

	// A plain file at a bundle path does not count as an installed bundle.
	fileBundle := filepath.Join(root, "Microsoft OneNote.app")
	require.NoError(t, os.WriteFile(fileBundle, []byte("not a bundle"), 0o644))

	bundles := []config.PathPattern{
		bundlePattern(filepath.Join(root, "missing.app")),
		bundlePattern(word),
		bundlePattern(fileBundle),
		bundlePattern(excel),
	}

	var reported []string
	found := Discover(bundles, func(path string) { reported = append(reported, path) })

	// Input order preserved, absences and non-directories excluded.
	require.Len(t, found, 2)
	assert.Equal(t, word, found[0].Path)
	assert.Equal(t, excel, found[1].Path)
	assert.Equal(t, config.ScopeBundle, found[0].Scope)

	// Every find reported immediately, absences never reported.
	assert.Equal(t, []string{word, excel}, reported)
}

func TestDiscoverExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	mkdirs(t, filepath.Join(home, "Applications", "Microsoft Word.app"))

	found := Discover([]config.PathPattern{bundlePattern("~/Applications/Microsoft Word.app")}, nil)
	require.Len(t, found, 1)
	assert.Equal(t, filepath.Join(home, "Applications", "Microsoft Word.app"), found[0].Path)
}

func TestDiscoverNilReport(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, filepath.Join(root, "Microsoft Word.app"))

	assert.NotPanics(t, func() {
		Discover([]config.PathPattern{bundlePattern(filepath.Join(root, "Microsoft Word.app"))}, nil)
	})
}
