package remove

import (
	"iter"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/lakshaymaurya-felt/officemole/internal/config"
	"github.com/lakshaymaurya-felt/officemole/internal/logging"
	"github.com/lakshaymaurya-felt/officemole/internal/pathutil"
)

// Resolver expands support-artifact path patterns against the live
// filesystem. Resolution is lazy and restartable: every call re-walks the
// filesystem, nothing is cached.
type Resolver struct {
	// MaxDepth is how many levels below a pattern's fixed root the search
	// descends. Entries nested deeper are never discovered.
	MaxDepth int

	logger zerolog.Logger
}

// NewResolver returns a resolver bounded to the configured glob depth.
func NewResolver() *Resolver {
	return &Resolver{
		MaxDepth: config.MaxGlobDepth,
		logger:   logging.GetLogger("resolver"),
	}
}

// Resolve returns a lazy sequence of existing entries matching pattern.
// The home-directory shorthand is expanded first. The pattern's directory
// part may itself contain wildcards (expanded with single-segment glob
// semantics); the base name is then matched against entry names up to
// MaxDepth levels below each resolved root. A pattern that matches nothing
// yields an empty sequence — that is not an error. Unreadable subtrees are
// skipped silently; system-protected directories are expected to deny
// access and surfacing that would drown the operator in noise.
func (r *Resolver) Resolve(pattern string) iter.Seq[string] {
	return func(yield func(string) bool) {
		expanded := pathutil.ExpandHome(pattern)
		dir, base := filepath.Split(expanded)
		dir = filepath.Clean(dir)
		if base == "" {
			return
		}

		roots := []string{dir}
		if pathutil.HasGlobMeta(dir) {
			matches, err := filepath.Glob(dir)
			if err != nil || len(matches) == 0 {
				return
			}
			roots = matches
		}

		for _, root := range roots {
			if !r.walkMatch(root, base, 1, yield) {
				return
			}
		}
	}
}

// walkMatch searches root for entries whose name matches the base pattern,
// descending at most MaxDepth levels. Matched entries are yielded and not
// descended into — they are removed whole, so reporting their contents
// would only double-count. Returns false once the consumer stops iterating.
func (r *Resolver) walkMatch(root, base string, depth int, yield func(string) bool) bool {
	entries, err := os.ReadDir(root)
	if err != nil {
		r.logger.Debug().Err(err).Str("dir", root).Msg("skipping unreadable directory")
		return true
	}

	for _, e := range entries {
		full := filepath.Join(root, e.Name())

		ok, err := filepath.Match(base, e.Name())
		if err != nil {
			// Malformed pattern: matches nothing, by the same rule as
			// a pattern whose root does not exist.
			r.logger.Debug().Err(err).Str("pattern", base).Msg("bad match pattern")
			return true
		}
		if ok {
			if !yield(full) {
				return false
			}
			continue
		}

		// ReadDir does not follow symlinks, so IsDir is false for links
		// and cycles cannot occur.
		if e.IsDir() && depth < r.MaxDepth {
			if !r.walkMatch(full, base, depth+1, yield) {
				return false
			}
		}
	}
	return true
}
