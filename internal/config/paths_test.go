package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lakshaymaurya-felt/officemole/internal/pathutil"
)

func TestAppBundlesAreExactPaths(t *testing.T) {
	bundles := AppBundles()
	require.NotEmpty(t, bundles)

	seen := make(map[string]bool)
	for _, b := range bundles {
		assert.Equal(t, ScopeBundle, b.Scope, b.Pattern)
		assert.True(t, strings.HasPrefix(b.Pattern, "/Applications/"), b.Pattern)
		assert.True(t, strings.HasSuffix(b.Pattern, ".app"), b.Pattern)
		assert.False(t, pathutil.HasGlobMeta(b.Pattern), "bundle paths must never glob: %s", b.Pattern)
		assert.NotEmpty(t, b.Description, b.Pattern)

		assert.False(t, seen[b.Pattern], "duplicate bundle entry: %s", b.Pattern)
		seen[b.Pattern] = true
	}
}

func TestSupportPatternsAreWellFormed(t *testing.T) {
	patterns := SupportPatterns()
	require.NotEmpty(t, patterns)

	for _, p := range patterns {
		assert.Equal(t, ScopeSupport, p.Scope, p.Pattern)
		assert.NotEmpty(t, p.Description, p.Pattern)

		rooted := strings.HasPrefix(p.Pattern, "/") || strings.HasPrefix(p.Pattern, "~/")
		assert.True(t, rooted, "pattern must be absolute or home-relative: %s", p.Pattern)

		// Every pattern needs a glob-free root at least two segments deep,
		// or the depth-bounded search would start at a volume root.
		expanded := pathutil.ExpandHome(p.Pattern)
		segments := strings.Split(strings.TrimPrefix(expanded, "/"), "/")
		require.Greater(t, len(segments), 2, p.Pattern)
		assert.False(t, pathutil.HasGlobMeta(segments[0]), p.Pattern)
	}
}

func TestNeverDeletePathsCoverCriticalRoots(t *testing.T) {
	guard := make(map[string]bool)
	for _, p := range NeverDeletePaths() {
		guard[p] = true
	}

	for _, critical := range []string{"/", "/Applications", "/Library", "/System", "~", "~/Library"} {
		assert.True(t, guard[critical], "missing guard entry: %s", critical)
	}

	// The guard must protect the parent of every support pattern.
	for _, p := range SupportPatterns() {
		dir := p.Pattern[:strings.LastIndex(p.Pattern, "/")]
		if dir == "" {
			dir = "/"
		}
		assert.True(t, guard[dir], "support pattern parent unguarded: %s", dir)
	}
}

func TestMaxGlobDepth(t *testing.T) {
	assert.Equal(t, 3, MaxGlobDepth)
}
